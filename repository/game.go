package repository

import (
	"context"

	"gorm.io/gorm"

	"gamestore/models"
)

type GameRepository struct {
	*Repository[models.Game]
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{Repository: New[models.Game](db), db: db}
}

func (r *GameRepository) FindByName(ctx context.Context, name string, includes ...Include) (*models.Game, error) {
	return r.FindOne(ctx, "name = ?", []interface{}{name}, includes...)
}

func (r *GameRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Game{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (r *GameRepository) FindAllContainingCategory(ctx context.Context, categoryName string, includes ...Include) ([]models.Game, error) {
	var games []models.Game
	err := r.scope(ctx, includes).
		Joins("JOIN game_categories ON game_categories.game_id = games.id").
		Joins("JOIN categories ON categories.id = game_categories.category_id").
		Where("categories.name = ?", categoryName).
		Find(&games).Error
	if err != nil {
		return nil, translate(err)
	}
	return games, nil
}

// FindCartByUserID loads the games currently in a user's cart straight from
// the join relation, so display includes can be requested per game.
func (r *GameRepository) FindCartByUserID(ctx context.Context, userID uint, includes ...Include) ([]models.Game, error) {
	var games []models.Game
	err := r.scope(ctx, includes).
		Joins("JOIN cart_games ON cart_games.game_id = games.id").
		Where("cart_games.app_user_id = ?", userID).
		Find(&games).Error
	if err != nil {
		return nil, translate(err)
	}
	return games, nil
}

// FindLibraryByUserID loads a user's owned games from the join relation.
func (r *GameRepository) FindLibraryByUserID(ctx context.Context, userID uint, includes ...Include) ([]models.Game, error) {
	var games []models.Game
	err := r.scope(ctx, includes).
		Joins("JOIN owned_games ON owned_games.game_id = games.id").
		Where("owned_games.app_user_id = ?", userID).
		Find(&games).Error
	if err != nil {
		return nil, translate(err)
	}
	return games, nil
}
