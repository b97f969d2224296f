package routes

import (
	"context"

	"giftcard-shop/config"
	"giftcard-shop/controllers"
	"giftcard-shop/handler"
	"giftcard-shop/libs"
	"giftcard-shop/middleware"
	"giftcard-shop/repositories"
	"giftcard-shop/services"
	"giftcard-shop/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Server struct {
	Router *gin.Engine
	Carts  *services.CartService
}

// NewCatalog picks the postgres catalog when a database is configured and the built-in one
// otherwise, and puts the redis cache in front. The returned func releases the connections.
func NewCatalog(cfg *config.Config, logger *libs.Logger) (repositories.CatalogRepository, func()) {
	var base repositories.CatalogRepository = repositories.NewStaticCatalog()
	closers := []func(){}

	if cfg.DatabaseConfigured() {
		pool, err := config.ConnectDB(cfg, logger)
		if err != nil {
			logger.Warn("database unavailable, using built-in catalog", "error", err)
		} else {
			base = repositories.NewPostgresCatalog(pool)
			closers = append(closers, pool.Close)
		}
	}

	client := config.ConnectRedis(cfg, logger)
	if client != nil {
		closers = append(closers, func() { _ = client.Close() })
	}
	catalog := repositories.NewCachedCatalog(base, client, logger)
	catalog.Invalidate(context.Background())

	return catalog, func() {
		for _, c := range closers {
			c()
		}
	}
}

func NewServer(cfg *config.Config, logger *libs.Logger, catalog repositories.CatalogRepository) (*Server, error) {
	formatter, err := utils.NewCurrencyFormatter(cfg.Locale, cfg.CurrencySign)
	if err != nil {
		return nil, err
	}

	carts := services.NewCartService(catalog, formatter, logger, cfg.CartSessionTTL, cfg.NotificationBacklog)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))

	SetupRoutes(router, Handlers{
		Catalog: controllers.NewCatalogController(services.NewCatalogService(catalog, formatter)),
		Content: controllers.NewContentController(repositories.NewContentRepository()),
		Cart:    controllers.NewCartController(carts),
	}, cfg.AppEnv == "production")

	return &Server{Router: router, Carts: carts}, nil
}

type Handlers struct {
	Catalog *controllers.CatalogController
	Content *controllers.ContentController
	Cart    *controllers.CartController
}

func SetupRoutes(router *gin.Engine, h Handlers, secureCookies bool) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	router.GET("/", gin.WrapF(handler.Handler))

	router.GET("/catalog", h.Catalog.GetGiftCards)
	router.GET("/catalog/:id", h.Catalog.GetGiftCardByID)

	router.GET("/content/features", h.Content.GetFeatures)
	router.GET("/content/steps", h.Content.GetSteps)
	router.GET("/content/faqs", h.Content.GetFAQs)

	session := router.Group("/")
	session.Use(middleware.SessionMiddleware(secureCookies))
	{
		session.GET("/cart", h.Cart.GetCart)
		session.POST("/cart/items", h.Cart.AddItem)
		session.PATCH("/cart/items/:id", h.Cart.ChangeQuantity)
		session.DELETE("/cart/items/:id", h.Cart.RemoveItem)
		session.POST("/cart/checkout", h.Cart.Checkout)
		session.GET("/notifications", h.Cart.GetNotifications)
	}
}
