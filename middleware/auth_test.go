package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore/models"
	"gamestore/utils"
)

func authTestRouter(t *testing.T, tokens *utils.TokenManager, extra ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	chain := append([]gin.HandlerFunc{Auth(tokens)}, extra...)
	r.GET("/protected", append(chain, func(c *gin.Context) {
		claims := ClaimsFromContext(c)
		require.NotNil(t, claims)
		c.JSON(http.StatusOK, gin.H{"username": claims.Username})
	})...)
	return r
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := utils.NewTokenManager("secret")
	token, err := tokens.Issue(&models.AppUser{Username: "john", Role: models.RoleUser})
	require.NoError(t, err)

	r := authTestRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "john")
}

func TestAuth_MissingHeader(t *testing.T) {
	r := authTestRouter(t, utils.NewTokenManager("secret"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_BadToken(t *testing.T) {
	r := authTestRouter(t, utils.NewTokenManager("secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	tokens := utils.NewTokenManager("secret")
	r := authTestRouter(t, tokens, RequireAdmin())

	adminToken, err := tokens.Issue(&models.AppUser{Username: "root", Role: models.RoleAdmin})
	require.NoError(t, err)
	userToken, err := tokens.Issue(&models.AppUser{Username: "john", Role: models.RoleUser})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
