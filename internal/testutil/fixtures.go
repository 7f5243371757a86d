package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rekib0023/expense-sharing-backend/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	n := nextID()
	user := &models.User{
		FirstName:      fmt.Sprintf("Test%d", n),
		LastName:       "User",
		Email:          email,
		HashedPassword: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates an expense category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.ExpenseCategory {
	t.Helper()
	return CreateTestCategoryWithName(t, db, fmt.Sprintf("Test Category %d", nextID()))
}

// CreateTestCategoryWithName creates an expense category with the given name.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, name string) *models.ExpenseCategory {
	t.Helper()

	category := &models.ExpenseCategory{Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestExpense creates a cash expense of the given amount for the user.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID, categoryID uint, amount float64) *models.Expense {
	t.Helper()
	return CreateTestExpensePaidBy(t, db, userID, categoryID, amount, models.PaidByCash)
}

// CreateTestExpensePaidBy creates an expense with the given payment method.
func CreateTestExpensePaidBy(t *testing.T, db *gorm.DB, userID, categoryID uint, amount float64, paidBy models.PaidBy) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Name:        fmt.Sprintf("Test Expense %d", nextID()),
		PaidBy:      paidBy,
		Amount:      amount,
		IsSpend:     true,
		CategoryID:  categoryID,
		CreatedByID: userID,
		PaymentDate: time.Now(),
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestGroup creates an expense group owned by the given user, with the
// owner as its first member.
func CreateTestGroup(t *testing.T, db *gorm.DB, ownerID uint) *models.ExpenseGroup {
	t.Helper()

	group := &models.ExpenseGroup{
		Name:    fmt.Sprintf("Test Group %d", nextID()),
		OwnerID: ownerID,
	}
	if err := db.Create(group).Error; err != nil {
		t.Fatalf("failed to create test group: %v", err)
	}

	member := &models.ExpenseGroupUser{UserID: ownerID, GroupID: group.ID}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("failed to create test group owner membership: %v", err)
	}
	return group
}
