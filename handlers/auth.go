package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamestore/models"
	"gamestore/monitoring"
	"gamestore/services"
	"gamestore/utils"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Authenticate - POST /authenticate
func (h *AuthHandler) Authenticate(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	token, err := h.auth.Authenticate(c.Request.Context(), input)
	if err != nil {
		monitoring.AuthenticationAttempts.WithLabelValues("failure").Inc()
		abortWithError(c, err)
		return
	}

	monitoring.AuthenticationAttempts.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Register - POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var input models.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	user, err := h.auth.Register(c.Request.Context(), input)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}
