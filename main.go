package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"church_admin/api"
	"church_admin/config"
	"church_admin/db"
	"church_admin/logger"
	"church_admin/metrics"
	"church_admin/routes"
	"church_admin/storage"
	"church_admin/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found")
	}
	if err := run(); err != nil {
		slog.Error("Console stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.Init(cfg.LogLevel, cfg.LogFormat)

	st, closeStorage, err := openStorage(cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", cfg.StorageDriver, err)
	}
	defer closeStorage()

	recorder := metrics.NewRecorder()
	client := api.New(cfg.BaseURL(), cfg.APITimeout, st,
		api.WithLogger(log),
		api.WithObserver(recorder),
	)

	appStore, err := store.New(context.Background(), client, st, log)
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	defer appStore.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	routes.SetupRoutes(r, routes.Deps{
		Store:   appStore,
		Storage: st,
		Counter: client,
		Kiosk:   client,
		Metrics: recorder,

		AllowedOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Console listening", "port", cfg.ServerPort, "api", cfg.BaseURL())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		return fmt.Errorf("listen failed: %w", err)
	case <-quit:
	}
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}
	return nil
}

// openStorage picks the persistence driver for the session and preferences.
func openStorage(cfg *config.Config) (storage.Storage, func(), error) {
	switch cfg.StorageDriver {
	case "memory":
		return storage.NewMemory(), func() {}, nil

	case "file":
		f, err := storage.OpenFile(cfg.StoragePath)
		if err != nil {
			return nil, nil, err
		}
		return f, func() {}, nil

	case "postgres":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		database, err := db.Initialize(ctx, db.Config{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			DBName:   cfg.DBName,
			SSLMode:  cfg.DBSSLMode,

			MaxOpenConns:    cfg.DBMaxOpenConns,
			MaxIdleConns:    cfg.DBMaxIdleConns,
			ConnMaxLifetime: cfg.DBConnMaxLifetime,
		})
		if err != nil {
			return nil, nil, err
		}
		if err := db.InitSchema(database); err != nil {
			database.Close()
			return nil, nil, fmt.Errorf("error initializing database schema: %w", err)
		}
		return db.NewKVStore(database), func() { database.Close() }, nil

	case "redis":
		rdb, err := storage.NewRedis(storage.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, err
		}
		return rdb, func() { rdb.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}
