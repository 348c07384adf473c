package services

import (
	"context"
	"sync"
)

// StatsStore exposes the counts the dashboard aggregates.
type StatsStore interface {
	CountUsers(ctx context.Context) (int64, error)
	CountGames(ctx context.Context) (int64, error)
	CountCategories(ctx context.Context) (int64, error)
	CountCartItems(ctx context.Context) (int64, error)
	CountOwnedGames(ctx context.Context) (int64, error)
}

type DashboardStats struct {
	TotalUsers      int64 `json:"total_users"`
	TotalGames      int64 `json:"total_games"`
	TotalCategories int64 `json:"total_categories"`
	CartItems       int64 `json:"cart_items"`
	OwnedGames      int64 `json:"owned_games"`
}

// StatsService computes dashboard statistics. Each count is an independent
// query, so they run in parallel and the first error wins.
type StatsService struct {
	store StatsStore
}

func NewStatsService(store StatsStore) *StatsService {
	return &StatsService{store: store}
}

func (s *StatsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	counts := []struct {
		count func(context.Context) (int64, error)
		dest  *int64
	}{
		{s.store.CountUsers, &stats.TotalUsers},
		{s.store.CountGames, &stats.TotalGames},
		{s.store.CountCategories, &stats.TotalCategories},
		{s.store.CountCartItems, &stats.CartItems},
		{s.store.CountOwnedGames, &stats.OwnedGames},
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, c := range counts {
		wg.Add(1)
		go func(count func(context.Context) (int64, error), dest *int64) {
			defer wg.Done()
			n, err := count(ctx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			*dest = n
		}(c.count, c.dest)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return stats, nil
}
