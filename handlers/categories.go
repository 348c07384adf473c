package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamestore/cache"
	"gamestore/models"
	"gamestore/services"
	"gamestore/utils"
)

type CategoryHandler struct {
	catalog *services.CatalogService
}

func NewCategoryHandler(catalog *services.CatalogService) *CategoryHandler {
	return &CategoryHandler{catalog: catalog}
}

// FindCategories - GET /categories, with optional ?name= lookup
func (h *CategoryHandler) FindCategories(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		category, err := h.catalog.FindCategoryByName(c.Request.Context(), name)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
		return
	}

	if cache.IsRedisAvailable() {
		var cached []models.Category
		if err := cache.Get(cache.CategoryCacheKey, &cached); err == nil {
			utils.Log.Debug("Cache HIT: categories")
			c.JSON(http.StatusOK, cached)
			return
		}
		utils.Log.Debug("Cache MISS: categories")
	}

	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	if cache.IsRedisAvailable() {
		cache.SetCategories(categories)
	}

	c.JSON(http.StatusOK, categories)
}

// FindCategoryByID - GET /categories/:id
func (h *CategoryHandler) FindCategoryByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}

	category, err := h.catalog.GetCategory(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// AddCategory - POST /categories (admin)
func (h *CategoryHandler) AddCategory(c *gin.Context) {
	var input models.CategoryAdditionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	category, err := h.catalog.AddCategory(c.Request.Context(), input)
	if err != nil {
		abortWithError(c, err)
		return
	}

	cache.InvalidateCategories()
	c.JSON(http.StatusCreated, category)
}

// UpdateCategory - PUT /categories/:id (admin)
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}

	var input models.CategoryUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.catalog.UpdateCategory(c.Request.Context(), id, input); err != nil {
		abortWithError(c, err)
		return
	}

	// Games embed category info, so both caches go stale
	cache.InvalidateCategories()
	cache.InvalidateGamesList()
	c.Status(http.StatusNoContent)
}

// RemoveCategory - DELETE /categories/:id (admin)
func (h *CategoryHandler) RemoveCategory(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}

	if err := h.catalog.RemoveCategory(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}

	cache.InvalidateCategories()
	cache.InvalidateGamesList()
	c.Status(http.StatusNoContent)
}
