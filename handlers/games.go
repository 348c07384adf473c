package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gamestore/cache"
	"gamestore/models"
	"gamestore/services"
	"gamestore/utils"
)

type GameHandler struct {
	catalog *services.CatalogService
}

func NewGameHandler(catalog *services.CatalogService) *GameHandler {
	return &GameHandler{catalog: catalog}
}

// FindGames - GET /games, with ?name= exact lookup or ?category= filter.
// Asking for both at once is rejected.
func (h *GameHandler) FindGames(c *gin.Context) {
	name := c.Query("name")
	category := c.Query("category")

	if name != "" && category != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and category are mutually exclusive"})
		return
	}

	if name != "" {
		game, err := h.catalog.FindGameByName(c.Request.Context(), name)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, game)
		return
	}

	if category != "" {
		games, err := h.catalog.ListGamesByCategory(c.Request.Context(), category)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, games)
		return
	}

	// Full catalog goes through cache
	if cache.IsRedisAvailable() {
		var cached []models.Game
		if err := cache.Get(cache.GamesCacheKey, &cached); err == nil {
			utils.Log.Debug("Cache HIT: games")
			c.JSON(http.StatusOK, cached)
			return
		}
		utils.Log.Debug("Cache MISS: games")
	}

	games, err := h.catalog.ListGames(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	if cache.IsRedisAvailable() {
		cache.SetGames(games)
	}

	c.JSON(http.StatusOK, games)
}

// FindGameByID - GET /games/:id
func (h *GameHandler) FindGameByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
		return
	}

	if cache.IsRedisAvailable() {
		var cached models.Game
		if err := cache.Get(cache.GameCachePrefix+strconv.FormatUint(uint64(id), 10), &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	game, err := h.catalog.GetGame(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if cache.IsRedisAvailable() {
		cache.SetGame(id, game)
	}

	c.JSON(http.StatusOK, game)
}

// AddGame - POST /games (admin)
func (h *GameHandler) AddGame(c *gin.Context) {
	var input models.GameAdditionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	game, err := h.catalog.AddGame(c.Request.Context(), input)
	if err != nil {
		abortWithError(c, err)
		return
	}

	cache.InvalidateGamesList()
	c.JSON(http.StatusCreated, game)
}

// PatchGame - PATCH /games/:id (admin)
func (h *GameHandler) PatchGame(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
		return
	}

	var input models.GamePatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.catalog.PatchGame(c.Request.Context(), id, input); err != nil {
		abortWithError(c, err)
		return
	}

	cache.InvalidateGame(id)
	cache.InvalidateGamesList()
	c.Status(http.StatusNoContent)
}

// RemoveGame - DELETE /games/:id (admin)
func (h *GameHandler) RemoveGame(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
		return
	}

	if err := h.catalog.RemoveGame(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}

	cache.InvalidateGame(id)
	cache.InvalidateGamesList()
	c.Status(http.StatusNoContent)
}
