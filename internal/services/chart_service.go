package services

import (
	"context"

	"gorm.io/gorm"

	apperrors "github.com/rekib0023/expense-sharing-backend/internal/errors"
	"github.com/rekib0023/expense-sharing-backend/internal/models"
)

// chartService shapes aggregated expense data for charting frontends.
type chartService struct {
	db *gorm.DB
}

// NewChartService creates a new ChartServicer.
func NewChartService(db *gorm.DB) ChartServicer {
	return &chartService{db: db}
}

// CategoryExpenseRows sums the caller's expense amounts per category and
// shapes the result as chart rows: a header row followed by one
// [name, total] row per category, ordered by category name.
func (s *chartService) CategoryExpenseRows(ctx context.Context, userID uint) ([][]interface{}, error) {
	type categoryTotal struct {
		Name  string
		Total float64
	}

	var totals []categoryTotal
	err := s.db.WithContext(ctx).
		Model(&models.Expense{}).
		Select("expense_categories.name AS name, SUM(expenses.amount) AS total").
		Joins("JOIN expense_categories ON expense_categories.id = expenses.category_id").
		Where("expenses.created_by_id = ?", userID).
		Group("expense_categories.name").
		Order("expense_categories.name").
		Scan(&totals).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	rows := make([][]interface{}, 0, len(totals)+1)
	rows = append(rows, []interface{}{"Category", "Amount"})
	for _, t := range totals {
		rows = append(rows, []interface{}{t.Name, t.Total})
	}
	return rows, nil
}
