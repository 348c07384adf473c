package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamestore/apperr"
	"gamestore/utils"
)

// abortWithError maps a taxonomy error onto its HTTP status. Infrastructure
// faults are logged and hidden behind a generic message.
func abortWithError(c *gin.Context, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		utils.Log.WithError(err).Error("Internal error")
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
