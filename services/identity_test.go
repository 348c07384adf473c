package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore/apperr"
	"gamestore/utils"
)

func TestResolveUsername(t *testing.T) {
	username, err := ResolveUsername(&utils.Claims{Username: "john"})
	require.NoError(t, err)
	assert.Equal(t, "john", username)
}

func TestResolveUsername_NoClaims(t *testing.T) {
	_, err := ResolveUsername(nil)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestResolveUsername_MissingName(t *testing.T) {
	_, err := ResolveUsername(&utils.Claims{Email: "john@example.com"})
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}
