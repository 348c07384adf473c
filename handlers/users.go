package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gamestore/cache"
	"gamestore/models"
	"gamestore/repository"
	"gamestore/services"
)

type UserHandler struct {
	users   *repository.AppUserRepository
	catalog *services.CatalogService
}

func NewUserHandler(users *repository.AppUserRepository, catalog *services.CatalogService) *UserHandler {
	return &UserHandler{users: users, catalog: catalog}
}

// FindUsers - GET /users, with optional ?username= lookup
func (h *UserHandler) FindUsers(c *gin.Context) {
	if username := c.Query("username"); username != "" {
		user, err := h.users.FindByUsername(c.Request.Context(), username)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
		return
	}

	users, err := h.users.FindAll(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// FindUserByID - GET /users/:userId
func (h *UserHandler) FindUserByID(c *gin.Context) {
	id, err := parseID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// FindLibrary - GET /users/:userId/library
func (h *UserHandler) FindLibrary(c *gin.Context) {
	id, err := parseID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	if cache.IsRedisAvailable() {
		var cached []models.Game
		if err := cache.Get(cache.LibraryCachePrefix+strconv.FormatUint(uint64(id), 10), &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	if _, err := h.users.FindByID(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}

	games, err := h.catalog.ListLibrary(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if cache.IsRedisAvailable() {
		cache.SetUserLibrary(id, games)
	}

	c.JSON(http.StatusOK, games)
}
