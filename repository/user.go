package repository

import (
	"context"

	"gorm.io/gorm"

	"gamestore/models"
)

type AppUserRepository struct {
	*Repository[models.AppUser]
	db *gorm.DB
}

func NewAppUserRepository(db *gorm.DB) *AppUserRepository {
	return &AppUserRepository{Repository: New[models.AppUser](db), db: db}
}

func (r *AppUserRepository) FindByUsername(ctx context.Context, username string, includes ...Include) (*models.AppUser, error) {
	return r.FindOne(ctx, "username = ?", []interface{}{username}, includes...)
}

// Update persists the whole aggregate: the user row plus the current state
// of the Cart and OwnedGames sets. Association replace is what makes
// removals durable; a plain save would only upsert.
func (r *AppUserRepository) Update(ctx context.Context, user *models.AppUser) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		if err := replaceAssociation(tx, user, "Cart", user.Cart); err != nil {
			return err
		}
		return replaceAssociation(tx, user, "OwnedGames", user.OwnedGames)
	})
	if err != nil {
		return translate(err)
	}
	return nil
}

func replaceAssociation(tx *gorm.DB, user *models.AppUser, name string, games []models.Game) error {
	assoc := tx.Model(user).Association(name)
	if len(games) == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(games)
}
