package services

import (
	"context"
	"errors"

	"gamestore/apperr"
	"gamestore/models"
	"gamestore/utils"
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(user *models.AppUser) (string, error)
}

// AuthService handles registration and credential checks. Passwords are
// stored as bcrypt hashes; tokens carry username, email and role claims.
type AuthService struct {
	users  UserStore
	tokens TokenIssuer
}

func NewAuthService(users UserStore, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Authenticate verifies the credentials and returns a signed token.
// An unknown username is a not-found, a wrong password an unauthorized.
func (s *AuthService) Authenticate(ctx context.Context, input models.LoginInput) (string, error) {
	user, err := s.users.FindByUsername(ctx, input.Username)
	if err != nil {
		return "", err
	}
	if !utils.CheckPassword(user.Password, input.Password) {
		return "", apperr.Wrap(apperr.ErrUnauthorized, "invalid password")
	}
	return s.tokens.Issue(user)
}

// Register creates a new account. Mismatched password confirmation is a bad
// request; a taken username is a conflict.
func (s *AuthService) Register(ctx context.Context, input models.RegisterInput) (*models.AppUser, error) {
	if input.Password != input.Password2 {
		return nil, apperr.Wrap(apperr.ErrBadRequest, "passwords do not match")
	}

	_, err := s.users.FindByUsername(ctx, input.Username)
	if err == nil {
		return nil, apperr.Wrap(apperr.ErrConflict, "username %q is taken", input.Username)
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.AppUser{
		Username: input.Username,
		Email:    input.Email,
		Password: hash,
		Role:     models.RoleUser,
	}
	if err := s.users.Add(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
