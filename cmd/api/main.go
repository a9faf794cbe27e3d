// @title			Animal Tracker API
// @version		1.0
// @description	CRUD de registros de animales de refugio / hogar temporal.
// @BasePath		/
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"animal-tracker/internal/adapters/storage"
	"animal-tracker/internal/platform/config"
	"animal-tracker/internal/platform/logger"
	"animal-tracker/internal/router"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "archivo YAML de configuración (opcional)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		// el logger puede no existir todavía
		os.Stderr.WriteString("animal-tracker: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.AppName,
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Error("storage open failed", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Warn("storage close", zap.Error(err))
		}
	}()

	r := router.NewRouter(router.Options{
		Repo:         st.Repo,
		Logger:       log,
		MaxBodyBytes: cfg.HTTP.MaxBodyBytes,
		StaticDir:    cfg.HTTP.StaticDir,
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server",
			zap.String("addr", cfg.Addr),
			zap.String("driver", cfg.Storage.Driver),
			zap.Bool("redis", cfg.Redis.Addr != ""),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", zap.Error(err))
			return err
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
