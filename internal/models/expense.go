package models

import "time"

// PaidBy represents the payment method of an expense
type PaidBy string

const (
	PaidByBank PaidBy = "Bank"
	PaidByCard PaidBy = "Card"
	PaidByCash PaidBy = "Cash"
)

// ExpenseCategory represents an expense category. Categories are shared
// across users; expenses are scoped to their creator.
type ExpenseCategory struct {
	Base
	Name string `gorm:"not null" json:"name"`

	Expenses []Expense `gorm:"foreignKey:CategoryID" json:"expenses,omitempty"`
}

// Expense represents a single expense or income record.
//
// Amount is stored as a non-negative magnitude; IsSpend alone distinguishes
// spending from income. The sign convention of earlier schema revisions
// (negated amount for spending) is not preserved.
type Expense struct {
	Base
	Name         string    `gorm:"not null" json:"name"`
	PaidBy       PaidBy    `gorm:"not null;default:Cash" json:"paid_by"`
	Amount       float64   `gorm:"not null;default:0" json:"amount"`
	// No default tag here: gorm omits zero-value fields that carry one,
	// which would turn a stored false (income) back into the column default.
	IsSpend      bool      `gorm:"not null" json:"is_spend"`
	CategoryID   uint      `gorm:"not null" json:"category_id"`
	CreatedByID  uint      `gorm:"not null;index" json:"created_by_id"`
	PaymentDate  time.Time `json:"payment_date"`
	OtherDetails string    `json:"other_details"`

	Category  ExpenseCategory `gorm:"foreignKey:CategoryID" json:"category"`
	CreatedBy *User           `gorm:"foreignKey:CreatedByID" json:"-"`
}
