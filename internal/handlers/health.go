package handlers

import (
	"net/http"

	et "expense_tracker"

	"github.com/gin-gonic/gin"
)

const (
	statusOK          = "ok"
	statusUnavailable = "unavailable"
)

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  expense_tracker.HealthResponse
// @Failure      503  {object}  expense_tracker.HealthResponse
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	if err := h.services.Ping(c.Request.Context()); err != nil {
		if h.log != nil {
			h.log.Errorw("health_ping_failed", "err", err)
		}
		c.JSON(http.StatusServiceUnavailable, et.HealthResponse{Status: statusUnavailable})
		return
	}
	c.JSON(http.StatusOK, et.HealthResponse{Status: statusOK})
}
