package services

import (
	"context"
	"errors"

	"gamestore/apperr"
	"gamestore/models"
	"gamestore/repository"
)

// UserStore is the slice of the user repository the services depend on.
type UserStore interface {
	FindByID(ctx context.Context, id uint, includes ...repository.Include) (*models.AppUser, error)
	FindByUsername(ctx context.Context, username string, includes ...repository.Include) (*models.AppUser, error)
	Add(ctx context.Context, user *models.AppUser) error
	Update(ctx context.Context, user *models.AppUser) error
}

// GameStore is the slice of the game repository the cart service depends on.
type GameStore interface {
	FindByID(ctx context.Context, id uint, includes ...repository.Include) (*models.Game, error)
	FindCartByUserID(ctx context.Context, userID uint, includes ...repository.Include) ([]models.Game, error)
}

// CartService enforces the ownership and conflict rules around cart mutation
// and purchase. Every mutation loads the acting user's aggregate, changes the
// borrowed collections in place and persists the whole aggregate in a single
// update; there is no per-item persistence and no concurrency control beyond
// what the store provides for one aggregate write.
type CartService struct {
	users UserStore
	games GameStore
}

func NewCartService(users UserStore, games GameStore) *CartService {
	return &CartService{users: users, games: games}
}

// ViewCart returns the target user's cart with categories populated for
// display. Viewing is by id only; the caller does not have to be the owner.
func (s *CartService) ViewCart(ctx context.Context, targetUserID uint) ([]models.Game, error) {
	if _, err := s.users.FindByID(ctx, targetUserID, repository.IncludeCart); err != nil {
		return nil, err
	}
	return s.games.FindCartByUserID(ctx, targetUserID, repository.IncludeCategories)
}

// AddGameToCart appends a game to the acting user's own cart. Owned games and
// games already in the cart are rejected with a conflict, not absorbed.
func (s *CartService) AddGameToCart(ctx context.Context, actingUsername string, targetUserID, gameID uint) error {
	acting, err := s.actingUser(ctx, actingUsername, repository.IncludeCart, repository.IncludeOwnedGames)
	if err != nil {
		return err
	}
	if acting.ID != targetUserID {
		return apperr.Wrap(apperr.ErrForbidden, "cart belongs to another user")
	}
	if acting.OwnsGame(gameID) {
		return apperr.Wrap(apperr.ErrConflict, "game %d is already owned", gameID)
	}
	if acting.HasInCart(gameID) {
		return apperr.Wrap(apperr.ErrConflict, "game %d is already in the cart", gameID)
	}

	game, err := s.games.FindByID(ctx, gameID)
	if err != nil {
		return err
	}

	acting.Cart = append(acting.Cart, *game)
	return s.users.Update(ctx, acting)
}

// RemoveGameFromCart removes one game from the acting user's cart, or clears
// the cart entirely when gameID is nil. Clearing is unconditional; removing a
// game that is not in the cart is a not-found.
func (s *CartService) RemoveGameFromCart(ctx context.Context, actingUsername string, targetUserID uint, gameID *uint) error {
	acting, err := s.actingUser(ctx, actingUsername, repository.IncludeCart)
	if err != nil {
		return err
	}
	if acting.ID != targetUserID {
		return apperr.Wrap(apperr.ErrForbidden, "cart belongs to another user")
	}

	if gameID == nil {
		acting.Cart = nil
		return s.users.Update(ctx, acting)
	}

	if !acting.HasInCart(*gameID) {
		return apperr.Wrap(apperr.ErrNotFound, "game %d is not in the cart", *gameID)
	}
	kept := acting.Cart[:0]
	for _, g := range acting.Cart {
		if g.ID != *gameID {
			kept = append(kept, g)
		}
	}
	acting.Cart = kept
	return s.users.Update(ctx, acting)
}

// Checkout moves every game in the cart into the owned set and empties the
// cart, all within one aggregate update. An empty cart is a conflict.
func (s *CartService) Checkout(ctx context.Context, actingUsername string, targetUserID uint) error {
	acting, err := s.actingUser(ctx, actingUsername, repository.IncludeCart, repository.IncludeOwnedGames)
	if err != nil {
		return err
	}
	if acting.ID != targetUserID {
		return apperr.Wrap(apperr.ErrForbidden, "cart belongs to another user")
	}
	if len(acting.Cart) == 0 {
		return apperr.Wrap(apperr.ErrConflict, "cart is empty")
	}

	acting.OwnedGames = append(acting.OwnedGames, acting.Cart...)
	acting.Cart = nil
	return s.users.Update(ctx, acting)
}

// actingUser loads the authenticated user's current aggregate state. An empty
// username or an unknown one both mean the request carries no usable identity.
func (s *CartService) actingUser(ctx context.Context, username string, includes ...repository.Include) (*models.AppUser, error) {
	if username == "" {
		return nil, apperr.Wrap(apperr.ErrUnauthorized, "no identity")
	}
	user, err := s.users.FindByUsername(ctx, username, includes...)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.Wrap(apperr.ErrUnauthorized, "unknown principal %q", username)
		}
		return nil, err
	}
	return user, nil
}
