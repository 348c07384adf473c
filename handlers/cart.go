package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gamestore/cache"
	"gamestore/middleware"
	"gamestore/models"
	"gamestore/monitoring"
	"gamestore/services"
)

type CartHandler struct {
	carts *services.CartService
}

func NewCartHandler(carts *services.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// ViewCart - GET /users/:userId/cart
func (h *CartHandler) ViewCart(c *gin.Context) {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	if cache.IsRedisAvailable() {
		var cached []models.Game
		if err := cache.Get(cartCacheKey(userID), &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	games, err := h.carts.ViewCart(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if cache.IsRedisAvailable() {
		cache.SetUserCart(userID, games)
	}

	c.JSON(http.StatusOK, games)
}

// AddGameToCart - POST /users/:userId/cart?gameId=5
func (h *CartHandler) AddGameToCart(c *gin.Context) {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	gameID, err := parseID(c.Query("gameId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
		return
	}

	username, _ := services.ResolveUsername(middleware.ClaimsFromContext(c))

	if err := h.carts.AddGameToCart(c.Request.Context(), username, userID, gameID); err != nil {
		monitoring.CartOperations.WithLabelValues("add", "rejected").Inc()
		abortWithError(c, err)
		return
	}

	monitoring.CartOperations.WithLabelValues("add", "ok").Inc()
	cache.InvalidateUserCart(userID)
	c.Status(http.StatusNoContent)
}

// RemoveGameFromCart - DELETE /users/:userId/cart?gameId=5
// Without gameId the whole cart is cleared.
func (h *CartHandler) RemoveGameFromCart(c *gin.Context) {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var gameID *uint
	if raw := c.Query("gameId"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
			return
		}
		gameID = &id
	}

	username, _ := services.ResolveUsername(middleware.ClaimsFromContext(c))

	if err := h.carts.RemoveGameFromCart(c.Request.Context(), username, userID, gameID); err != nil {
		monitoring.CartOperations.WithLabelValues("remove", "rejected").Inc()
		abortWithError(c, err)
		return
	}

	monitoring.CartOperations.WithLabelValues("remove", "ok").Inc()
	cache.InvalidateUserCart(userID)
	c.Status(http.StatusNoContent)
}

// Checkout - POST /users/:userId/cart/buy
func (h *CartHandler) Checkout(c *gin.Context) {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	username, _ := services.ResolveUsername(middleware.ClaimsFromContext(c))

	if err := h.carts.Checkout(c.Request.Context(), username, userID); err != nil {
		monitoring.CartOperations.WithLabelValues("checkout", "rejected").Inc()
		abortWithError(c, err)
		return
	}

	monitoring.CartOperations.WithLabelValues("checkout", "ok").Inc()
	cache.InvalidateUserCart(userID)
	cache.InvalidateUserLibrary(userID)
	c.Status(http.StatusNoContent)
}

func cartCacheKey(userID uint) string {
	return cache.CartCachePrefix + strconv.FormatUint(uint64(userID), 10)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
