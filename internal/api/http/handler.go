package apiHttp

import (
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	ginzap "github.com/gin-contrib/zap"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/webthingsio/mailchimp-proxy/docs"
	"github.com/webthingsio/mailchimp-proxy/pkg/limiter"
	"github.com/webthingsio/mailchimp-proxy/pkg/logger"
	"github.com/webthingsio/mailchimp-proxy/pkg/validator"

	internalV1 "github.com/webthingsio/mailchimp-proxy/internal/api/http/internal/v1"
	"github.com/webthingsio/mailchimp-proxy/internal/config"
	"github.com/webthingsio/mailchimp-proxy/internal/metrics"
	"github.com/webthingsio/mailchimp-proxy/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	pinger   internalV1.Pinger
}

func NewHandlers(
	services *service.Services,
	metrics *metrics.Metrics,
	pinger internalV1.Pinger,
) *Handler {
	return &Handler{
		services: services,
		metrics:  metrics,
		pinger:   pinger,
	}
}

func (h *Handler) Init(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	validator.RegisterGinValidator()

	router.Use(
		requestIDMiddleware,
		ginzap.Ginzap(logger.Logger(), time.RFC3339, true),
		corsMiddleware(cfg.HttpServer.CorsAllowedOrigins),
		gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics", "/swagger"})),
		limiter.Limit(cfg.Limiter.RPS, cfg.Limiter.Burst, cfg.Limiter.TTL),
	)
	router.Use(ginzap.RecoveryWithZap(logger.Logger(), true))

	if cfg.HttpServer.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.NewHandler(), ginSwagger.InstanceName("internal")))
	}

	if cfg.Metrics.Enabled && h.metrics != nil {
		router.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	}

	router.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	h.initAPI(router)

	return router
}

func (h *Handler) initAPI(router *gin.Engine) {
	internalHandlersV1 := internalV1.NewHandler(h.services, h.metrics, h.pinger)
	internalHandlersV1.Init(router)
}
