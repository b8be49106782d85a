package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"gallery/internal/app/server/api"
	"gallery/internal/app/server/catalog"
	"gallery/internal/app/server/config"
	"gallery/internal/infrastructure/storage/sqlite"
	"gallery/internal/utils/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	conf, err := config.Load()
	if err != nil {
		slog.Error("config error", "error", err)
		os.Exit(1)
	}

	log := logger.WithLevel(conf.Env, conf.Logger.LogLevel, os.Stderr)

	if err := run(conf, log); err != nil {
		log.Error("stub server stopped", "error", err)
		os.Exit(1)
	}
}

func run(conf *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := conf.EnsureDirs(); err != nil {
		return err
	}

	storage, err := sqlite.New(ctx, conf.DB.Path)
	if err != nil {
		return err
	}
	defer storage.Close()

	repo := sqlite.NewPaintingRepository(storage, log)
	service := catalog.NewService(repo, conf.Server.UploadDir, log)

	srv := &http.Server{
		Addr:              conf.Server.Address,
		Handler:           api.New(service, storage, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("stub server started", "address", conf.Server.Address, "db", conf.DB.Path)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
