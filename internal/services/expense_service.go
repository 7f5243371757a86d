package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/rekib0023/expense-sharing-backend/internal/errors"
	"github.com/rekib0023/expense-sharing-backend/internal/models"
	"github.com/rekib0023/expense-sharing-backend/internal/repository"
)

// expenseService handles expense business logic. Expenses are always scoped
// to their creator; a caller can never read or mutate another user's rows.
type expenseService struct {
	expenses   *repository.Repository[models.Expense]
	categories CategoryServicer
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB, categories CategoryServicer) ExpenseServicer {
	return &expenseService{
		expenses:   repository.New[models.Expense](db),
		categories: categories,
	}
}

// CreateExpense validates the input and inserts a new expense for the user.
// Amounts are stored as non-negative magnitudes; is_spend carries the
// spend/income distinction.
func (s *expenseService) CreateExpense(ctx context.Context, userID uint, in ExpenseInput) (*models.Expense, error) {
	if in.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "expense name is required")
	}
	if in.Amount < 0 {
		return nil, apperrors.ErrNegativeAmount
	}
	if _, err := s.categories.GetCategoryByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	if in.PaidBy == "" {
		in.PaidBy = models.PaidByCash
	}
	if in.PaymentDate.IsZero() {
		in.PaymentDate = time.Now()
	}

	expense := &models.Expense{
		Name:         in.Name,
		PaidBy:       in.PaidBy,
		Amount:       in.Amount,
		IsSpend:      in.IsSpend,
		CategoryID:   in.CategoryID,
		CreatedByID:  userID,
		PaymentDate:  in.PaymentDate,
		OtherDetails: in.OtherDetails,
	}
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}

	return s.reload(ctx, expense.ID)
}

// GetExpenses retrieves the caller's expenses, newest payment first, with
// the optional discriminator and amount-range filters applied conjunctively.
func (s *expenseService) GetExpenses(ctx context.Context, userID uint, filter ExpenseFilter) ([]models.Expense, error) {
	q := s.expenses.DB(ctx).
		Preload("Category").
		Where("created_by_id = ?", userID)

	switch filter.Type {
	case "":
		// no discriminator filter
	case "category":
		category, err := s.categoryByName(ctx, filter.Value)
		if err != nil {
			return nil, err
		}
		q = q.Where("category_id = ?", category.ID)
	case "paid_by":
		q = q.Where("paid_by = ?", filter.Value)
	default:
		return nil, apperrors.ErrInvalidFilter
	}

	// Both bounds are inclusive.
	if filter.AmountGT != nil {
		q = q.Where("amount >= ?", *filter.AmountGT)
	}
	if filter.AmountLT != nil {
		q = q.Where("amount <= ?", *filter.AmountLT)
	}

	var expenses []models.Expense
	if err := q.Order("payment_date DESC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	return expenses, nil
}

// GetExpenseByID retrieves one of the caller's expenses.
func (s *expenseService) GetExpenseByID(ctx context.Context, userID, expenseID uint) (*models.Expense, error) {
	var expense models.Expense
	err := s.expenses.DB(ctx).
		Preload("Category").
		Where("id = ? AND created_by_id = ?", expenseID, userID).
		First(&expense).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrExpenseNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// UpdateExpense replaces all writable fields of one of the caller's expenses.
func (s *expenseService) UpdateExpense(ctx context.Context, userID, expenseID uint, in ExpenseInput) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(ctx, userID, expenseID)
	if err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "expense name is required")
	}
	if in.Amount < 0 {
		return nil, apperrors.ErrNegativeAmount
	}
	if _, err := s.categories.GetCategoryByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	expense.Name = in.Name
	expense.Amount = in.Amount
	expense.IsSpend = in.IsSpend
	expense.CategoryID = in.CategoryID
	expense.OtherDetails = in.OtherDetails
	if in.PaidBy != "" {
		expense.PaidBy = in.PaidBy
	}
	if !in.PaymentDate.IsZero() {
		expense.PaymentDate = in.PaymentDate
	}

	if err := s.expenses.Save(ctx, expense); err != nil {
		return nil, err
	}
	return s.reload(ctx, expense.ID)
}

// DeleteExpense removes one of the caller's expenses. Hard delete.
func (s *expenseService) DeleteExpense(ctx context.Context, userID, expenseID uint) error {
	expense, err := s.GetExpenseByID(ctx, userID, expenseID)
	if err != nil {
		return err
	}
	return s.expenses.Delete(ctx, expense)
}

// GroupExpenses partitions all of the caller's expenses by the given
// discriminator into a map from discriminator value to expense list. Single
// O(n) pass; group emission order is map order.
func (s *expenseService) GroupExpenses(ctx context.Context, userID uint, by string) (map[string][]models.Expense, error) {
	if by != "category" && by != "paid_by" {
		return nil, apperrors.ErrInvalidGrouping
	}

	expenses, err := s.GetExpenses(ctx, userID, ExpenseFilter{})
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]models.Expense)
	for _, e := range expenses {
		key := string(e.PaidBy)
		if by == "category" {
			key = e.Category.Name
		}
		groups[key] = append(groups[key], e)
	}
	return groups, nil
}

func (s *expenseService) categoryByName(ctx context.Context, name string) (*models.ExpenseCategory, error) {
	var category models.ExpenseCategory
	err := s.expenses.DB(ctx).Where("name = ?", name).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNoCategoryFilter
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// reload rereads an expense with its category joined in.
func (s *expenseService) reload(ctx context.Context, id uint) (*models.Expense, error) {
	var expense models.Expense
	if err := s.expenses.DB(ctx).Preload("Category").First(&expense, id).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}
