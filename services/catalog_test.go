package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore/apperr"
	"gamestore/models"
	"gamestore/repository"
)

type fakeCatalogGames struct {
	games   map[uint]*models.Game
	updated *models.Game
	removed *models.Game
	nextID  uint
}

func newFakeCatalogGames(games ...models.Game) *fakeCatalogGames {
	f := &fakeCatalogGames{games: make(map[uint]*models.Game), nextID: 100}
	for i := range games {
		g := games[i]
		f.games[g.ID] = &g
	}
	return f
}

func (f *fakeCatalogGames) FindByID(_ context.Context, id uint, _ ...repository.Include) (*models.Game, error) {
	if g, ok := f.games[id]; ok {
		return g, nil
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeCatalogGames) FindByName(_ context.Context, name string, _ ...repository.Include) (*models.Game, error) {
	for _, g := range f.games {
		if g.Name == name {
			return g, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeCatalogGames) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, g := range f.games {
		if g.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCatalogGames) FindAll(_ context.Context, _ ...repository.Include) ([]models.Game, error) {
	var out []models.Game
	for _, g := range f.games {
		out = append(out, *g)
	}
	return out, nil
}

func (f *fakeCatalogGames) FindAllContainingCategory(_ context.Context, categoryName string, _ ...repository.Include) ([]models.Game, error) {
	var out []models.Game
	for _, g := range f.games {
		for _, c := range g.Categories {
			if c.Name == categoryName {
				out = append(out, *g)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeCatalogGames) FindLibraryByUserID(_ context.Context, _ uint, _ ...repository.Include) ([]models.Game, error) {
	return nil, nil
}

func (f *fakeCatalogGames) Add(_ context.Context, game *models.Game) error {
	f.nextID++
	game.ID = f.nextID
	f.games[game.ID] = game
	return nil
}

func (f *fakeCatalogGames) Update(_ context.Context, game *models.Game) error {
	f.updated = game
	f.games[game.ID] = game
	return nil
}

func (f *fakeCatalogGames) Remove(_ context.Context, game *models.Game) error {
	f.removed = game
	delete(f.games, game.ID)
	return nil
}

type fakeCategories struct {
	categories map[uint]*models.Category
	nextID     uint
}

func newFakeCategories(categories ...models.Category) *fakeCategories {
	f := &fakeCategories{categories: make(map[uint]*models.Category), nextID: 100}
	for i := range categories {
		c := categories[i]
		f.categories[c.ID] = &c
	}
	return f
}

func (f *fakeCategories) FindByID(_ context.Context, id uint, _ ...repository.Include) (*models.Category, error) {
	if c, ok := f.categories[id]; ok {
		return c, nil
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeCategories) FindByName(_ context.Context, name string, _ ...repository.Include) (*models.Category, error) {
	for _, c := range f.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeCategories) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, c := range f.categories {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategories) FindAllByNameIn(_ context.Context, names []string, _ ...repository.Include) ([]models.Category, error) {
	var out []models.Category
	for _, name := range names {
		for _, c := range f.categories {
			if c.Name == name {
				out = append(out, *c)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeCategories) FindAll(_ context.Context, _ ...repository.Include) ([]models.Category, error) {
	var out []models.Category
	for _, c := range f.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCategories) Add(_ context.Context, category *models.Category) error {
	f.nextID++
	category.ID = f.nextID
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategories) Update(_ context.Context, category *models.Category) error {
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategories) Remove(_ context.Context, category *models.Category) error {
	delete(f.categories, category.ID)
	return nil
}

var rpg = models.Category{ID: 1, Name: "RPG"}

func TestAddGame(t *testing.T) {
	games := newFakeCatalogGames()
	categories := newFakeCategories(rpg)
	svc := NewCatalogService(games, categories)

	game, err := svc.AddGame(context.Background(), models.GameAdditionInput{
		Name:        "Witcher",
		Description: "Monster hunting",
		Price:       29.99,
		Categories:  []string{"RPG"},
	})
	require.NoError(t, err)
	assert.NotZero(t, game.ID)
	require.Len(t, game.Categories, 1)
	assert.Equal(t, "RPG", game.Categories[0].Name)
}

func TestAddGame_DuplicateName(t *testing.T) {
	games := newFakeCatalogGames(models.Game{ID: 1, Name: "Witcher"})
	svc := NewCatalogService(games, newFakeCategories(rpg))

	_, err := svc.AddGame(context.Background(), models.GameAdditionInput{
		Name:       "Witcher",
		Categories: []string{"RPG"},
	})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestAddGame_UnknownCategory(t *testing.T) {
	svc := NewCatalogService(newFakeCatalogGames(), newFakeCategories(rpg))

	_, err := svc.AddGame(context.Background(), models.GameAdditionInput{
		Name:       "Witcher",
		Categories: []string{"RPG", "Sports"},
	})
	assert.ErrorIs(t, err, apperr.ErrBadRequest)
}

func TestPatchGame(t *testing.T) {
	games := newFakeCatalogGames(models.Game{ID: 1, Name: "Witcher", Price: 29.99})
	svc := NewCatalogService(games, newFakeCategories(rpg))

	price := 9.99
	description := "On sale"
	err := svc.PatchGame(context.Background(), 1, models.GamePatchInput{
		Price:       &price,
		Description: &description,
	})
	require.NoError(t, err)
	require.NotNil(t, games.updated)
	assert.Equal(t, 9.99, games.updated.Price)
	assert.Equal(t, "On sale", games.updated.Description)
	assert.Equal(t, "Witcher", games.updated.Name)
}

func TestPatchGame_NegativePrice(t *testing.T) {
	games := newFakeCatalogGames(models.Game{ID: 1, Name: "Witcher", Price: 29.99})
	svc := NewCatalogService(games, newFakeCategories())

	price := -1.0
	err := svc.PatchGame(context.Background(), 1, models.GamePatchInput{Price: &price})
	assert.ErrorIs(t, err, apperr.ErrBadRequest)
	assert.Nil(t, games.updated)
}

func TestPatchGame_NotFound(t *testing.T) {
	svc := NewCatalogService(newFakeCatalogGames(), newFakeCategories())

	price := 1.0
	err := svc.PatchGame(context.Background(), 7, models.GamePatchInput{Price: &price})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPatchGame_RenameCollision(t *testing.T) {
	games := newFakeCatalogGames(
		models.Game{ID: 1, Name: "Witcher"},
		models.Game{ID: 2, Name: "Fortnite"},
	)
	svc := NewCatalogService(games, newFakeCategories())

	name := "Fortnite"
	err := svc.PatchGame(context.Background(), 1, models.GamePatchInput{Name: &name})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestRemoveGame(t *testing.T) {
	games := newFakeCatalogGames(models.Game{ID: 1, Name: "Witcher"})
	svc := NewCatalogService(games, newFakeCategories())

	require.NoError(t, svc.RemoveGame(context.Background(), 1))
	require.NotNil(t, games.removed)

	err := svc.RemoveGame(context.Background(), 1)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListGamesByCategory(t *testing.T) {
	games := newFakeCatalogGames(
		models.Game{ID: 1, Name: "Witcher", Categories: []models.Category{rpg}},
		models.Game{ID: 2, Name: "Fortnite"},
	)
	svc := NewCatalogService(games, newFakeCategories(rpg))

	found, err := svc.ListGamesByCategory(context.Background(), "RPG")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Witcher", found[0].Name)
}

func TestAddCategory_DuplicateName(t *testing.T) {
	svc := NewCatalogService(newFakeCatalogGames(), newFakeCategories(rpg))

	_, err := svc.AddCategory(context.Background(), models.CategoryAdditionInput{Name: "RPG"})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestUpdateCategory_RenameCollision(t *testing.T) {
	categories := newFakeCategories(rpg, models.Category{ID: 2, Name: "Sports"})
	svc := NewCatalogService(newFakeCatalogGames(), categories)

	err := svc.UpdateCategory(context.Background(), 2, models.CategoryUpdateInput{Name: "RPG"})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestUpdateCategory(t *testing.T) {
	categories := newFakeCategories(rpg)
	svc := NewCatalogService(newFakeCatalogGames(), categories)

	err := svc.UpdateCategory(context.Background(), 1, models.CategoryUpdateInput{Description: "Role playing"})
	require.NoError(t, err)

	updated, err := svc.GetCategory(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Role playing", updated.Description)
	assert.Equal(t, "RPG", updated.Name)
}
