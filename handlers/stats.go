package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamestore/monitoring"
	"gamestore/services"
)

type StatsHandler struct {
	stats *services.StatsService
}

func NewStatsHandler(stats *services.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Dashboard - GET /stats (admin)
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.stats.Dashboard(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	monitoring.TotalUsers.Set(float64(stats.TotalUsers))
	monitoring.TotalGames.Set(float64(stats.TotalGames))

	c.JSON(http.StatusOK, gin.H{"statistics": stats})
}
