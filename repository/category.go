package repository

import (
	"context"

	"gorm.io/gorm"

	"gamestore/models"
)

type CategoryRepository struct {
	*Repository[models.Category]
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{Repository: New[models.Category](db), db: db}
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string, includes ...Include) (*models.Category, error) {
	return r.FindOne(ctx, "name = ?", []interface{}{name}, includes...)
}

func (r *CategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (r *CategoryRepository) FindAllByNameIn(ctx context.Context, names []string, includes ...Include) ([]models.Category, error) {
	var categories []models.Category
	if err := r.scope(ctx, includes).Where("name IN ?", names).Find(&categories).Error; err != nil {
		return nil, translate(err)
	}
	return categories, nil
}
