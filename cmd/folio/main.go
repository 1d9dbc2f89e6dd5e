package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"folio/internal/logging"
	"folio/internal/store"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		logger := logging.New(logging.Config{})
		logger.Fatal(err, "load config")
	}

	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logging.SetGlobalLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		logger.Fatal(err, "open database")
	}
	defer db.Close()

	dataStore := store.New(db)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: newHTTPHandler(cfg, dataStore),
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(err, "server shutdown")
		}
	}()

	logger.Info("API listening on " + cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(err, "server error")
	}
}
