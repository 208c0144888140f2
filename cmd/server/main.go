package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"picko/internal/catalog"
	"picko/internal/commons"
	"picko/internal/config"
	"picko/internal/infrastructure/localstore"
	"picko/internal/infrastructure/logger"
	"picko/internal/order"
	"picko/internal/server"
	"picko/internal/theme"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	store, err := localstore.Open(cfg.Storage.Dir)
	if err != nil {
		zapLogger.Fatal("opening local store", zap.Error(err))
	}
	zapLogger.Info("local store opened", zap.String("dir", store.Dir()))

	orderCtrl, err := order.NewModule(store, zapLogger)
	if err != nil {
		zapLogger.Fatal("initializing order store", zap.Error(err))
	}
	catalogCtrl := catalog.NewController(zapLogger)
	themeCtrl := theme.NewController(theme.NewService(store, cfg.Theme.Default, zapLogger), zapLogger)

	router := server.NewRouter(orderCtrl, catalogCtrl, themeCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

func loadConfig() (*config.Config, error) {
	if path := os.Getenv("PICKO_CONFIG"); path != "" {
		return commons.LoadConfig(path)
	}
	return config.Load()
}
