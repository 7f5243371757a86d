// Package repository provides a generic data-access layer over GORM,
// parameterized by model type. It replaces per-model query boilerplate with a
// single operation set: Get, GetBy, GetOr404, GetOrCreate, Create, Save,
// Delete, List.
//
// Every operation threads the request context into GORM, so each inbound
// request gets its own session scope; there is no process-wide shared
// session. All mutating operations commit immediately.
package repository

import (
	"context"
	"errors"
	"reflect"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "github.com/rekib0023/expense-sharing-backend/internal/errors"
)

// Repository provides generic CRUD operations for a single model type T.
type Repository[T any] struct {
	db *gorm.DB
}

// New creates a Repository bound to the given database handle.
func New[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// DB exposes a request-scoped handle for queries the generic surface does
// not cover (aggregations, joins).
func (r *Repository[T]) DB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Name returns the model's type name, used in not-found messages.
func (r *Repository[T]) Name() string {
	var entity T
	return reflect.TypeOf(entity).Name()
}

// Get retrieves an entity by primary key. Returns (nil, nil) when absent.
func (r *Repository[T]) Get(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).First(&entity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &entity, nil
}

// GetBy retrieves the first entity matching the given equality conditions.
// Returns (nil, nil) when nothing matches. The tie-break between multiple
// matches is unordered.
func (r *Repository[T]) GetBy(ctx context.Context, query interface{}, args ...interface{}) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Where(query, args...).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &entity, nil
}

// GetOr404 retrieves an entity by primary key, returning a NOT_FOUND error
// carrying the model type name when absent.
func (r *Repository[T]) GetOr404(ctx context.Context, id uint) (*T, error) {
	entity, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, "Item "+r.Name()+" not found")
	}
	return entity, nil
}

// GetOrCreate loads the first entity matching query, inserting the given
// entity when nothing matches. After the call the entity holds the persisted
// row either way.
func (r *Repository[T]) GetOrCreate(ctx context.Context, entity *T, query interface{}, args ...interface{}) error {
	if err := r.db.WithContext(ctx).Where(query, args...).FirstOrCreate(entity).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Create inserts the entity and commits immediately. The entity is updated
// in place with its generated id and timestamps. Associations are never
// written through; relations are expressed via their foreign-key columns.
func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Save persists in-place mutations of an already-loaded entity and commits
// immediately.
func (r *Repository[T]) Save(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Delete removes the entity's row. This is a hard delete.
func (r *Repository[T]) Delete(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Delete(entity).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// List loads all entities matching the given conditions into dest.
func (r *Repository[T]) List(ctx context.Context, dest *[]T, query interface{}, args ...interface{}) error {
	q := r.db.WithContext(ctx)
	if query != nil {
		q = q.Where(query, args...)
	}
	if err := q.Find(dest).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
