package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/webthingsio/mailchimp-proxy/pkg/logger"
)

const pingTimeout = 5 * time.Second

func (h *Handler) initHealthRoutes(api gin.IRouter) {
	api.GET("/health", h.health)
}

type healthResponse struct {
	Status string `json:"status"`
} // @name HealthResponse

// @Summary Health
// @Tags Health
// @Description Liveness; with deep=true also checks that the mailing list provider answers
// @ModuleID health
// @Produce  json
// @Param deep query bool false "ping the provider"
// @Success 200 {object} healthResponse
// @Failure 503 {object} healthResponse
// @Router /health [get]
func (h *Handler) health(c *gin.Context) {
	if c.Query("deep") != "true" || h.pinger == nil {
		c.JSON(http.StatusOK, healthResponse{Status: "ok"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		logger.Warn("provider ping failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}

	c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}
