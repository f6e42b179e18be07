package v1

import (
	"context"

	"github.com/webthingsio/mailchimp-proxy/internal/metrics"
	"github.com/webthingsio/mailchimp-proxy/internal/service"

	"github.com/gin-gonic/gin"
)

// @title Mailchimp Proxy API
// @version 1.0
// @description Forwards newsletter subscriptions to a Mailchimp list.

// @BasePath /

// Pinger checks that the mailing list provider is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	pinger   Pinger
}

func NewHandler(
	services *service.Services,
	metrics *metrics.Metrics,
	pinger Pinger,
) *Handler {
	return &Handler{
		services: services,
		metrics:  metrics,
		pinger:   pinger,
	}
}

func (h *Handler) Init(router gin.IRouter) {
	h.initNewsletterRoutes(router)
	h.initHealthRoutes(router)
}
