package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"giftcard-shop/config"
	_ "giftcard-shop/docs"
	"giftcard-shop/libs"
	"giftcard-shop/routes"

	"github.com/gin-gonic/gin"
)

// @title Gift Card Shop API
// @version 1.0
// @description Catalog, storefront content and session cart for digital gift cards.
// @BasePath /
func main() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger, err := libs.NewLogger(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	catalog, closeCatalog := routes.NewCatalog(cfg, logger)
	defer closeCatalog()

	server, err := routes.NewServer(cfg, logger, catalog)
	if err != nil {
		logger.Fatal("failed to build server", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go server.Carts.Run(ctx)

	port := ":" + cfg.Port
	logger.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv, "locale", cfg.Locale)
	logger.Info("swagger ui", "url", "http://localhost:"+cfg.Port+"/swagger/index.html")

	if err := server.Router.Run(port); err != nil {
		logger.Fatal("failed to start server", "error", err)
	}
}
