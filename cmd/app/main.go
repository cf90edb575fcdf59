package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"school-service/internal/config"
	httpserver "school-service/internal/http-server"
	svc "school-service/internal/service"
	"school-service/internal/storage/jsonfile"
	"school-service/internal/storage/postgres"
	"school-service/internal/storage/redisdoc"
	"school-service/pkg/handlers/slogpretty"
	"school-service/pkg/sl"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

type storage interface {
	svc.Store
	Close() error
}

func main() {

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting API", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage.Driver))
	log.Debug("Debug messages are enabled")

	var store storage
	var err error

	switch cfg.Storage.Driver {
	case "jsonfile":
		store, err = jsonfile.New(cfg.Storage.Path)
	case "redis":
		store, err = redisdoc.New(cfg.Storage.RedisAddr)
	case "postgres":
		store, err = postgres.New(cfg.Storage.PostgresDSN)
	default:
		log.Error("Unknown storage driver", slog.String("driver", cfg.Storage.Driver))
		os.Exit(1)
	}

	if err != nil {
		log.Error("Failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	service := svc.NewService(store)

	router := httpserver.NewRouter(log, service)

	serv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	serverErrCh := make(chan error, 1)

	go func() {
		log.Info("Starting HTTP server", slog.String("addr", cfg.Address))
		if err := serv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		} else {
			serverErrCh <- nil
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("Received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErrCh:
		if err != nil {
			log.Error("HTTP server stopped unexpectedly", sl.Err(err))
		} else {
			log.Info("HTTP server stopped gracefully")
		}
	}

	shutdownTimeout := cfg.HTTPServer.ShutdownTimeout

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info("Shutting down HTTP server", slog.String("timeout", shutdownTimeout.String()))

	if err := serv.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", sl.Err(err))
	} else {
		log.Info("Server shutdown complete")
	}

	if store != nil {
		if err := store.Close(); err != nil {
			log.Error("Failed to close storage", sl.Err(err))
		} else {
			log.Info("Storage closed")
		}
	}

	log.Info("Shutdown finished, server stopped")

}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}
