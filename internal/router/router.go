// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/flipbase/flipbase-backend/internal/config"
	"github.com/flipbase/flipbase-backend/internal/handlers"
	"github.com/flipbase/flipbase-backend/internal/middleware"
	"github.com/flipbase/flipbase-backend/internal/services"
	"github.com/flipbase/flipbase-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	authService := services.NewAuthService(db, cfg)
	bidService := services.NewBidService(db)
	partService := services.NewPartService(db)
	catalogService := services.NewCatalogService(db)
	customerService := services.NewCustomerService(db)
	userService := services.NewUserService(db)
	analyticsService := services.NewAnalyticsService(db, cfg.Geo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	bidHandler := handlers.NewBidHandler(bidService)
	partHandler := handlers.NewPartHandler(partService)
	phonePartHandler := handlers.NewPhonePartHandler(catalogService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	userHandler := handlers.NewUserHandler(userService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	api := r.Group("/api")
	{
		// Authentication routes
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Public routes; the storefront and its tracker need no token.
		api.GET("/bids/inventory", bidHandler.GetInventory)
		api.POST("/analytics/track", analyticsHandler.Track)
		api.POST("/analytics/cart", analyticsHandler.TrackCart)

		// Bid routes
		bids := api.Group("/bids")
		bids.Use(middleware.AuthRequired(db))
		{
			bids.GET("", bidHandler.GetBids)
			bids.GET("/inventory/all", bidHandler.GetAllInventory)
			bids.GET("/sold", bidHandler.GetSold)
			bids.GET("/average-price/:modelName", bidHandler.GetAveragePrice)
			bids.GET("/:id", bidHandler.GetBid)
			bids.POST("", bidHandler.CreateBid)
			bids.PUT("/:id", bidHandler.UpdateBid)
			bids.PUT("/:id/buyer", bidHandler.UpdateBuyer)
			bids.PUT("/:id/sell", bidHandler.SellBid)
			bids.DELETE("/:id", middleware.AdminRequired(db), bidHandler.DeleteBid)
		}

		// Part routes
		parts := api.Group("/parts")
		parts.Use(middleware.AuthRequired(db))
		{
			parts.GET("", partHandler.GetParts)
			parts.POST("", partHandler.CreateParts)
			parts.PUT("/:id", middleware.AdminRequired(db), partHandler.UpdatePart)
			parts.DELETE("/:id", middleware.AdminRequired(db), partHandler.DeletePart)
		}

		// Catalog routes
		phoneParts := api.Group("/phone-parts")
		phoneParts.Use(middleware.AuthRequired(db))
		{
			phoneParts.GET("", phonePartHandler.GetPhoneParts)
			phoneParts.POST("", middleware.AdminRequired(db), phonePartHandler.CreatePhonePart)
			phoneParts.PUT("/:id", middleware.AdminRequired(db), phonePartHandler.UpdatePhonePart)
			phoneParts.DELETE("/:id", middleware.AdminRequired(db), phonePartHandler.DeletePhonePart)
		}

		// Customer routes
		customers := api.Group("/customers")
		customers.Use(middleware.AuthRequired(db))
		{
			customers.GET("/search", customerHandler.SearchCustomers)
		}

		// User routes
		users := api.Group("/users")
		users.Use(middleware.AuthRequired(db))
		{
			users.GET("/me", userHandler.GetMe)
			users.PUT("/me", userHandler.UpdateMe)
			users.POST("/change-password", userHandler.ChangePassword)
			users.GET("", middleware.AdminRequired(db), userHandler.GetUsers)
			users.POST("", middleware.AdminRequired(db), userHandler.CreateUser)
			users.PUT("/:id", middleware.AdminRequired(db), userHandler.UpdateUser)
			users.DELETE("/:id", middleware.AdminRequired(db), userHandler.DeleteUser)
		}
	}

	return r
}
