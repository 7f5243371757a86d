package services

import (
	"context"

	"gorm.io/gorm"

	apperrors "github.com/rekib0023/expense-sharing-backend/internal/errors"
	"github.com/rekib0023/expense-sharing-backend/internal/models"
	"github.com/rekib0023/expense-sharing-backend/internal/repository"
)

// categoryService handles expense-category business logic.
type categoryService struct {
	categories *repository.Repository[models.ExpenseCategory]
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{categories: repository.New[models.ExpenseCategory](db)}
}

// CreateCategory creates a category, reusing an existing row with the same
// name rather than inserting a duplicate.
func (s *categoryService) CreateCategory(ctx context.Context, name string) (*models.ExpenseCategory, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	category := &models.ExpenseCategory{Name: name}
	if err := s.categories.GetOrCreate(ctx, category, "name = ?", name); err != nil {
		return nil, err
	}
	return category, nil
}

// GetCategories retrieves all categories.
func (s *categoryService) GetCategories(ctx context.Context) ([]models.ExpenseCategory, error) {
	var categories []models.ExpenseCategory
	if err := s.categories.List(ctx, &categories, nil); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategoryByID retrieves a category by ID.
func (s *categoryService) GetCategoryByID(ctx context.Context, id uint) (*models.ExpenseCategory, error) {
	category, err := s.categories.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperrors.ErrCategoryNotFound
	}
	return category, nil
}
