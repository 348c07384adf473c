package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore/apperr"
	"gamestore/models"
	"gamestore/utils"
)

type staticTokenIssuer struct{}

func (staticTokenIssuer) Issue(user *models.AppUser) (string, error) {
	return "token-for-" + user.Username, nil
}

func TestAuthenticate(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	users := newFakeUserStore(&models.AppUser{ID: 1, Username: "john", Password: hash})
	svc := NewAuthService(users, staticTokenIssuer{})

	token, err := svc.Authenticate(context.Background(), models.LoginInput{
		Username: "john",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-for-john", token)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	users := newFakeUserStore(&models.AppUser{ID: 1, Username: "john", Password: hash})
	svc := NewAuthService(users, staticTokenIssuer{})

	_, err = svc.Authenticate(context.Background(), models.LoginInput{
		Username: "john",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), staticTokenIssuer{})

	_, err := svc.Authenticate(context.Background(), models.LoginInput{
		Username: "ghost",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRegister(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users, staticTokenIssuer{})

	user, err := svc.Register(context.Background(), models.RegisterInput{
		Username:  "john",
		Email:     "john@example.com",
		Password:  "secret123",
		Password2: "secret123",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")
	assert.True(t, utils.CheckPassword(user.Password, "secret123"))
}

func TestRegister_PasswordMismatch(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), staticTokenIssuer{})

	_, err := svc.Register(context.Background(), models.RegisterInput{
		Username:  "john",
		Email:     "john@example.com",
		Password:  "secret123",
		Password2: "secret124",
	})
	assert.ErrorIs(t, err, apperr.ErrBadRequest)
}

func TestRegister_UsernameTaken(t *testing.T) {
	users := newFakeUserStore(&models.AppUser{ID: 1, Username: "john"})
	svc := NewAuthService(users, staticTokenIssuer{})

	_, err := svc.Register(context.Background(), models.RegisterInput{
		Username:  "john",
		Email:     "john@example.com",
		Password:  "secret123",
		Password2: "secret123",
	})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}
