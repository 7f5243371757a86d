package services

import (
	"context"
	"time"

	"github.com/rekib0023/expense-sharing-backend/internal/models"
	"github.com/rekib0023/expense-sharing-backend/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(ctx context.Context, firstName, lastName, email, password string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	AttemptLogin(ctx context.Context, email, password string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	StoreRefreshTokenHash(ctx context.Context, userID uint, tokenHash string) error
	GetRefreshTokenHash(ctx context.Context, userID uint) (string, error)
	ClearRefreshTokenHash(ctx context.Context, userID uint) error
	ListUsers(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.User], error)
}

// CategoryServicer defines the contract for expense-category business logic.
type CategoryServicer interface {
	CreateCategory(ctx context.Context, name string) (*models.ExpenseCategory, error)
	GetCategories(ctx context.Context) ([]models.ExpenseCategory, error)
	GetCategoryByID(ctx context.Context, id uint) (*models.ExpenseCategory, error)
}

// ExpenseInput carries the writable fields of an expense.
type ExpenseInput struct {
	Name         string
	PaidBy       models.PaidBy
	Amount       float64
	IsSpend      bool
	CategoryID   uint
	PaymentDate  time.Time
	OtherDetails string
}

// ExpenseFilter holds the optional query parameters of the expense list
// endpoint. Type selects the discriminator ("category" or "paid_by") matched
// against Value; the amount bounds are inclusive and apply to the stored
// magnitude.
type ExpenseFilter struct {
	Type     string
	Value    string
	AmountGT *float64
	AmountLT *float64
}

// ExpenseServicer defines the contract for expense business logic.
type ExpenseServicer interface {
	CreateExpense(ctx context.Context, userID uint, in ExpenseInput) (*models.Expense, error)
	GetExpenses(ctx context.Context, userID uint, filter ExpenseFilter) ([]models.Expense, error)
	GetExpenseByID(ctx context.Context, userID, expenseID uint) (*models.Expense, error)
	UpdateExpense(ctx context.Context, userID, expenseID uint, in ExpenseInput) (*models.Expense, error)
	DeleteExpense(ctx context.Context, userID, expenseID uint) error
	GroupExpenses(ctx context.Context, userID uint, by string) (map[string][]models.Expense, error)
}

// ChartServicer defines the contract for chart data shaping.
type ChartServicer interface {
	CategoryExpenseRows(ctx context.Context, userID uint) ([][]interface{}, error)
}

// GroupServicer defines the contract for expense-group and friend logic.
type GroupServicer interface {
	CreateGroup(ctx context.Context, ownerID uint, name, desc string) (*models.ExpenseGroup, error)
	GetGroups(ctx context.Context, userID uint) ([]models.ExpenseGroup, error)
	GetGroupByID(ctx context.Context, userID, groupID uint) (*models.ExpenseGroup, error)
	AddMember(ctx context.Context, callerID, groupID, userID uint) (*models.ExpenseGroupUser, error)
	GetMembers(ctx context.Context, callerID, groupID uint) ([]models.ExpenseGroupUser, error)
	AddFriend(ctx context.Context, userID, friendID uint) (*models.Friend, error)
	GetFriends(ctx context.Context, userID uint) ([]models.Friend, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(ctx context.Context, userID uint, action, resourceType string, resourceID uint, ipAddress string)
}
