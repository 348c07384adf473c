// Package repository wraps gorm behind a small generic data-access contract.
// Related collections are requested with typed Include flags instead of
// free-form strings, one constant per mapped association.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gamestore/apperr"
)

// Include names a mapped association that may be eagerly loaded.
type Include string

const (
	IncludeCart       Include = "Cart"
	IncludeOwnedGames Include = "OwnedGames"
	IncludeCategories Include = "Categories"
	IncludeGames      Include = "Games"
)

// Repository is the shared data-access base embedded by the concrete
// per-entity repositories.
type Repository[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// scope returns a query with the requested associations preloaded.
func (r *Repository[T]) scope(ctx context.Context, includes []Include) *gorm.DB {
	tx := r.db.WithContext(ctx)
	for _, include := range includes {
		tx = tx.Preload(string(include))
	}
	return tx
}

func (r *Repository[T]) FindByID(ctx context.Context, id uint, includes ...Include) (*T, error) {
	var entity T
	if err := r.scope(ctx, includes).First(&entity, id).Error; err != nil {
		return nil, translate(err)
	}
	return &entity, nil
}

func (r *Repository[T]) FindOne(ctx context.Context, query string, args []interface{}, includes ...Include) (*T, error) {
	var entity T
	if err := r.scope(ctx, includes).Where(query, args...).First(&entity).Error; err != nil {
		return nil, translate(err)
	}
	return &entity, nil
}

func (r *Repository[T]) FindAll(ctx context.Context, includes ...Include) ([]T, error) {
	var entities []T
	if err := r.scope(ctx, includes).Find(&entities).Error; err != nil {
		return nil, translate(err)
	}
	return entities, nil
}

// Add persists a new entity; the generated id is written back into it.
func (r *Repository[T]) Add(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return translate(err)
	}
	return nil
}

// Update replaces the stored row for the entity's id.
func (r *Repository[T]) Update(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *Repository[T]) Remove(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Delete(entity).Error; err != nil {
		return translate(err)
	}
	return nil
}

// translate converts gorm errors into the shared taxonomy. Storage faults
// are never retried here; callers surface them as internal errors.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	return apperr.Wrap(apperr.ErrStorage, "%v", err)
}
