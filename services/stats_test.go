package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatsStore struct {
	users, games, categories, cartItems, owned int64
	err                                        error
}

func (f *fakeStatsStore) CountUsers(context.Context) (int64, error)      { return f.users, f.err }
func (f *fakeStatsStore) CountGames(context.Context) (int64, error)      { return f.games, f.err }
func (f *fakeStatsStore) CountCategories(context.Context) (int64, error) { return f.categories, f.err }
func (f *fakeStatsStore) CountCartItems(context.Context) (int64, error)  { return f.cartItems, f.err }
func (f *fakeStatsStore) CountOwnedGames(context.Context) (int64, error) { return f.owned, f.err }

func TestDashboard(t *testing.T) {
	svc := NewStatsService(&fakeStatsStore{users: 3, games: 10, categories: 4, cartItems: 7, owned: 12})

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalUsers)
	assert.Equal(t, int64(10), stats.TotalGames)
	assert.Equal(t, int64(4), stats.TotalCategories)
	assert.Equal(t, int64(7), stats.CartItems)
	assert.Equal(t, int64(12), stats.OwnedGames)
}

func TestDashboard_StoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	svc := NewStatsService(&fakeStatsStore{err: storeErr})

	_, err := svc.Dashboard(context.Background())
	assert.ErrorIs(t, err, storeErr)
}
