package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bloggie/bloggie-web/internal/core/service"
	"github.com/bloggie/bloggie-web/internal/infrastructure/api"
	"github.com/bloggie/bloggie-web/internal/infrastructure/config"
	"github.com/bloggie/bloggie-web/internal/web"
	"github.com/bloggie/bloggie-web/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bloggie-web: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Development(),
	})

	client := api.NewClient(cfg.APIBaseURL, &http.Client{Timeout: 15 * time.Second}, log)
	authSvc := service.NewAuthService(client, log)
	feedSvc := service.NewFeedService(client, log)

	e, err := web.NewRouter(cfg, authSvc, feedSvc, client, log)
	if err != nil {
		return fmt.Errorf("building router: %w", err)
	}

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting bloggie web")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
