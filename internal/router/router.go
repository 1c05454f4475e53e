// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/medlavka/storefront/internal/catalog"
	"github.com/medlavka/storefront/internal/config"
	"github.com/medlavka/storefront/internal/handlers"
	"github.com/medlavka/storefront/internal/middleware"
	"github.com/medlavka/storefront/internal/services"
	"github.com/medlavka/storefront/internal/store"
	"github.com/medlavka/storefront/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config, cache *catalog.Cache, broker *catalog.Broker) *gin.Engine {
	// Initialize services
	st := store.NewPostgres(db)
	notificationService := services.NewNotificationService(cfg)
	authService := services.NewAuthService(cfg)
	bookService := services.NewBookService(st, notificationService)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(cache)
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(bookService)
	eventsHandler := handlers.NewEventsHandler(broker)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	v1 := r.Group("/v1")
	{
		// Storefront read surface
		shop := v1.Group("")
		shop.Use(middleware.GeneralRateLimit())
		{
			shop.GET("/books", catalogHandler.GetBooks)
			shop.GET("/books/:id", catalogHandler.GetBook)
			shop.GET("/categories", catalogHandler.GetCategories)
			shop.GET("/events", eventsHandler.Stream)
		}

		// Authorization gate. The password route carries no limiter: a wrong
		// submission followed by the correct one must always get through.
		auth := v1.Group("/auth")
		{
			auth.POST("/telegram", authHandler.TelegramLogin)
			auth.POST("/password", authHandler.PasswordLogin)
		}

		// Admin surface
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminRequired(), middleware.AdminRateLimit())
		{
			admin.POST("/books", adminHandler.CreateBook)
			admin.PUT("/books/:id", adminHandler.UpdateBook)
			admin.DELETE("/books/:id", adminHandler.DeleteBook)
			admin.POST("/catalog/reset", adminHandler.ResetCatalog)
		}
	}

	return r
}
