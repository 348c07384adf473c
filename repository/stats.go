package repository

import (
	"context"

	"gorm.io/gorm"

	"gamestore/models"
)

// StatsRepository serves the dashboard counts, including the two join
// relations that have no model of their own.
type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(r.db.WithContext(ctx).Model(&models.AppUser{}))
}

func (r *StatsRepository) CountGames(ctx context.Context) (int64, error) {
	return r.count(r.db.WithContext(ctx).Model(&models.Game{}))
}

func (r *StatsRepository) CountCategories(ctx context.Context) (int64, error) {
	return r.count(r.db.WithContext(ctx).Model(&models.Category{}))
}

func (r *StatsRepository) CountCartItems(ctx context.Context) (int64, error) {
	return r.count(r.db.WithContext(ctx).Table("cart_games"))
}

func (r *StatsRepository) CountOwnedGames(ctx context.Context) (int64, error) {
	return r.count(r.db.WithContext(ctx).Table("owned_games"))
}

func (r *StatsRepository) count(tx *gorm.DB) (int64, error) {
	var n int64
	if err := tx.Count(&n).Error; err != nil {
		return 0, translate(err)
	}
	return n, nil
}
