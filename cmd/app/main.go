package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	apiHttp "github.com/webthingsio/mailchimp-proxy/internal/api/http"
	"github.com/webthingsio/mailchimp-proxy/internal/config"
	"github.com/webthingsio/mailchimp-proxy/internal/metrics"
	"github.com/webthingsio/mailchimp-proxy/internal/server"
	"github.com/webthingsio/mailchimp-proxy/internal/service"
	"github.com/webthingsio/mailchimp-proxy/pkg/email/mailchimp"
	"github.com/webthingsio/mailchimp-proxy/pkg/logger"
)

func main() {
	// Init cfg from environment variables and flags
	cfg := config.MustLoad()

	logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting mailchimp proxy", zap.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	mailchimpOpts := []mailchimp.Option{mailchimp.WithTimeout(cfg.Mailchimp.Timeout)}
	if cfg.Mailchimp.BaseURL != "" {
		mailchimpOpts = append(mailchimpOpts, mailchimp.WithBaseURL(cfg.Mailchimp.BaseURL))
	}
	mailchimpClient, err := mailchimp.NewClient(cfg.Mailchimp.APIKey, mailchimpOpts...)
	if err != nil {
		logger.Error("mailchimp client creation failed", zap.Error(err))
		return
	}
	logger.Info("mailchimp client ready", zap.String("base_url", mailchimpClient.BaseURL()))

	// Services & API Handlers
	services := service.NewServices(service.Deps{
		Config:        cfg,
		EmailProvider: mailchimpClient,
	})
	handlers := apiHttp.NewHandlers(services, metrics.New(), mailchimpClient)

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("error occurred while running http server", zap.Error(err))
			os.Exit(1)
		}
	}()
	logger.Info("server started", zap.String("addr", srv.Addr()))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		logger.Error("failed to stop server", zap.Error(err))
	}

	logger.Info("app stopped")
}
