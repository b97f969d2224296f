package api

import (
	"context"
	"log"
	"net/http"
	"sync"

	"giftcard-shop/config"
	"giftcard-shop/libs"
	"giftcard-shop/routes"

	"github.com/gin-gonic/gin"
)

var (
	server *routes.Server
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg := config.FromEnv()
		logger, err := libs.NewLogger("production")
		if err != nil {
			log.Fatalf("Failed to create logger: %v", err)
		}

		catalog, _ := routes.NewCatalog(cfg, logger)

		server, err = routes.NewServer(cfg, logger, catalog)
		if err != nil {
			logger.Fatal("failed to build server", "error", err)
		}
		go server.Carts.Run(context.Background())
	})
}

// Handler is the serverless entry point.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	server.Router.ServeHTTP(w, r)
}
