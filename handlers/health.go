package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/isaacwassouf/cricket-betting-service/modules"
)

type HealthHandler struct {
	svc *modules.BettingService
}

func NewHealthHandler(svc *modules.BettingService) *HealthHandler {
	return &HealthHandler{svc: svc}
}

// Check reports whether the store answers a ping.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.svc.BettingServiceDB.Ping(ctx); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
