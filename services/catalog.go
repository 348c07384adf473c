package services

import (
	"context"
	"errors"

	"gamestore/apperr"
	"gamestore/models"
	"gamestore/repository"
)

// GameCatalogStore is the slice of the game repository the catalog needs.
type GameCatalogStore interface {
	FindByID(ctx context.Context, id uint, includes ...repository.Include) (*models.Game, error)
	FindByName(ctx context.Context, name string, includes ...repository.Include) (*models.Game, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindAll(ctx context.Context, includes ...repository.Include) ([]models.Game, error)
	FindAllContainingCategory(ctx context.Context, categoryName string, includes ...repository.Include) ([]models.Game, error)
	FindLibraryByUserID(ctx context.Context, userID uint, includes ...repository.Include) ([]models.Game, error)
	Add(ctx context.Context, game *models.Game) error
	Update(ctx context.Context, game *models.Game) error
	Remove(ctx context.Context, game *models.Game) error
}

// CategoryStore is the slice of the category repository the catalog needs.
type CategoryStore interface {
	FindByID(ctx context.Context, id uint, includes ...repository.Include) (*models.Category, error)
	FindByName(ctx context.Context, name string, includes ...repository.Include) (*models.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindAllByNameIn(ctx context.Context, names []string, includes ...repository.Include) ([]models.Category, error)
	FindAll(ctx context.Context, includes ...repository.Include) ([]models.Category, error)
	Add(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Remove(ctx context.Context, category *models.Category) error
}

// CatalogService owns game and category management: existence and name
// uniqueness checks, category assignment, partial updates.
type CatalogService struct {
	games      GameCatalogStore
	categories CategoryStore
}

func NewCatalogService(games GameCatalogStore, categories CategoryStore) *CatalogService {
	return &CatalogService{games: games, categories: categories}
}

func (s *CatalogService) ListGames(ctx context.Context) ([]models.Game, error) {
	return s.games.FindAll(ctx, repository.IncludeCategories)
}

func (s *CatalogService) FindGameByName(ctx context.Context, name string) (*models.Game, error) {
	return s.games.FindByName(ctx, name, repository.IncludeCategories)
}

func (s *CatalogService) ListGamesByCategory(ctx context.Context, categoryName string) ([]models.Game, error) {
	return s.games.FindAllContainingCategory(ctx, categoryName, repository.IncludeCategories)
}

func (s *CatalogService) GetGame(ctx context.Context, id uint) (*models.Game, error) {
	return s.games.FindByID(ctx, id, repository.IncludeCategories)
}

// ListLibrary returns the games a user owns.
func (s *CatalogService) ListLibrary(ctx context.Context, userID uint) ([]models.Game, error) {
	return s.games.FindLibraryByUserID(ctx, userID, repository.IncludeCategories)
}

// AddGame creates a game after checking name uniqueness and resolving every
// requested category name. A single unknown category rejects the request.
func (s *CatalogService) AddGame(ctx context.Context, input models.GameAdditionInput) (*models.Game, error) {
	taken, err := s.games.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Wrap(apperr.ErrConflict, "game %q already exists", input.Name)
	}

	categories, err := s.resolveCategories(ctx, input.Categories)
	if err != nil {
		return nil, err
	}

	game := models.Game{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Categories:  categories,
	}
	if err := s.games.Add(ctx, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// PatchGame applies a partial update. Nil fields keep their stored values;
// a category list, when present, is resolved and replaced wholesale.
func (s *CatalogService) PatchGame(ctx context.Context, id uint, input models.GamePatchInput) error {
	game, err := s.games.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if input.Name != nil && *input.Name != "" && *input.Name != game.Name {
		taken, err := s.games.ExistsByName(ctx, *input.Name)
		if err != nil {
			return err
		}
		if taken {
			return apperr.Wrap(apperr.ErrConflict, "game %q already exists", *input.Name)
		}
		game.Name = *input.Name
	}
	if input.Description != nil && *input.Description != "" {
		game.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return apperr.Wrap(apperr.ErrBadRequest, "price must not be negative")
		}
		game.Price = *input.Price
	}
	if input.ImageURL != nil && *input.ImageURL != "" {
		game.ImageURL = *input.ImageURL
	}
	if input.Categories != nil {
		categories, err := s.resolveCategories(ctx, input.Categories)
		if err != nil {
			return err
		}
		game.Categories = categories
	}

	return s.games.Update(ctx, game)
}

func (s *CatalogService) RemoveGame(ctx context.Context, id uint) error {
	game, err := s.games.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.games.Remove(ctx, game)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.FindAll(ctx)
}

func (s *CatalogService) FindCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	return s.categories.FindByName(ctx, name)
}

func (s *CatalogService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CatalogService) AddCategory(ctx context.Context, input models.CategoryAdditionInput) (*models.Category, error) {
	taken, err := s.categories.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Wrap(apperr.ErrConflict, "category %q already exists", input.Name)
	}

	category := models.Category{Name: input.Name, Description: input.Description}
	if err := s.categories.Add(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id uint, input models.CategoryUpdateInput) error {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if input.Name != "" && input.Name != category.Name {
		taken, err := s.categories.ExistsByName(ctx, input.Name)
		if err != nil {
			return err
		}
		if taken {
			return apperr.Wrap(apperr.ErrConflict, "category %q already exists", input.Name)
		}
		category.Name = input.Name
	}
	if input.Description != "" {
		category.Description = input.Description
	}

	return s.categories.Update(ctx, category)
}

func (s *CatalogService) RemoveCategory(ctx context.Context, id uint) error {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.categories.Remove(ctx, category)
}

// resolveCategories maps names onto stored categories; any name with no
// matching category makes the whole request invalid.
func (s *CatalogService) resolveCategories(ctx context.Context, names []string) ([]models.Category, error) {
	categories, err := s.categories.FindAllByNameIn(ctx, names)
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}
	if len(categories) != len(names) {
		return nil, apperr.Wrap(apperr.ErrBadRequest, "unknown category in %v", names)
	}
	return categories, nil
}
