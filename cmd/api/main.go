package main

import (
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"go-catalog-ws/internal/config"
	"go-catalog-ws/internal/repository"
	"go-catalog-ws/internal/router"
	"go-catalog-ws/internal/service"
	"go-catalog-ws/internal/ws"
	"go-catalog-ws/pkg/jwt"
	"go-catalog-ws/pkg/logger"
)

func main() {
	// 1. Load Env
	cfg := config.Load()

	log, err := logger.Init(cfg.LogMode, cfg.LogFile)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	if cfg.EnvFileLoaded {
		zap.S().Debug(".env file loaded")
	}

	// 2. Setup Store
	store, closeStore, err := repository.OpenStore(cfg)
	if err != nil {
		zap.S().Fatalw("failed to open product store", "driver", cfg.StoreDriver, "error", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			zap.S().Warnw("failed to close product store", "error", err)
		}
	}()

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	tokens := jwt.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	productRepo := repository.NewProductRepo(store)
	catalogService := service.NewCatalogService(productRepo, wsHub, cfg.PlaceholderImageURL)
	authService := service.NewAuthService(cfg.AdminPasswordHash, tokens)

	if !authService.Enabled() {
		zap.S().Warn("ADMIN_PASSWORD_HASH is not set, product writes are unauthenticated")
	}

	// 5. Setup Fiber
	app := router.New(router.Deps{
		Catalog:     catalogService,
		Auth:        authService,
		Tokens:      tokens,
		Hub:         wsHub,
		StoreDriver: cfg.StoreDriver,
		AccessLog:   true,
	})

	// 6. Graceful Shutdown
	go func() {
		zap.S().Infow("starting server", "port", cfg.Port, "store", cfg.StoreDriver)
		if err := app.Listen(":" + cfg.Port); err != nil {
			zap.S().Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.S().Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		zap.S().Errorw("Server forced to shutdown", "error", err)
	}
	wsHub.Stop()

	zap.S().Info("Server exited")
}
