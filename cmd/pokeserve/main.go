package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mauricio-alvarez/pokeserve/internal/api"
	"github.com/mauricio-alvarez/pokeserve/internal/config"
	"github.com/mauricio-alvarez/pokeserve/internal/logging"
	"github.com/mauricio-alvarez/pokeserve/internal/pokeapi"
	"github.com/mauricio-alvarez/pokeserve/internal/search"
	"github.com/mauricio-alvarez/pokeserve/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("pokeserve: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogDir, "pokeserve")
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	st, err := newStore(cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	fetcher := pokeapi.New(cfg.PokeAPIURL, logger.Named("pokeapi"))
	svc := search.New(st, fetcher, cfg.ImageBaseURL, logger.Named("search"))
	srv := api.NewServer(svc, st, cfg.ImageDir, logger.Named("http"))

	httpServer := &http.Server{
		Addr:    cfg.Addr(),
		Handler: srv,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("pokemon service starting",
			zap.String("addr", cfg.Addr()),
			zap.String("driver", cfg.DatabaseDriver))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func newStore(cfg *config.Config, logger *zap.Logger) (store.Store, error) {
	slog := logger.Named("store")
	if cfg.DatabaseDriver == "sqlite" {
		return store.NewSQLite(cfg.DatabaseURL, slog)
	}
	return store.NewMySQL(cfg.DatabaseURL, cfg.DatabaseAPIKey, slog)
}
