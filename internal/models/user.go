package models

// User represents the user model in the database
type User struct {
	Base
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	HashedPassword string `gorm:"not null" json:"-"`

	// SHA-256 hex digest of the currently valid refresh token. Cleared on
	// logout so a stolen refresh token cannot be replayed afterwards.
	RefreshTokenHash string `gorm:"size:64" json:"-"`

	Expenses []Expense      `gorm:"foreignKey:CreatedByID" json:"expenses,omitempty"`
	Groups   []ExpenseGroup `gorm:"foreignKey:OwnerID" json:"groups,omitempty"`
}
