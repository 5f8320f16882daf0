package main

import (
	"log"
	"net/http"
	"time"

	"smart_canteen/internal/config"
	"smart_canteen/internal/database"
	"smart_canteen/internal/handlers"
	"smart_canteen/internal/middleware"
	"smart_canteen/internal/redis"
	"smart_canteen/internal/repository"
	"smart_canteen/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis (menu cache); the API still works without it
	var menuCache services.MenuCache
	redisClient, err := redis.Initialize(cfg.RedisURL, time.Duration(cfg.CacheTTL)*time.Second)
	if err != nil {
		log.Printf("Warning: Redis unavailable, menu caching disabled: %v", err)
	} else {
		menuCache = redisClient
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	canteenRepo := repository.NewCanteenRepository(db)
	itemRepo := repository.NewItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	canteenService := services.NewCanteenService(canteenRepo)
	itemService := services.NewItemService(itemRepo, canteenRepo, menuCache)
	orderService := services.NewOrderService(orderRepo, itemRepo, canteenRepo, nil)

	// Initialize handlers
	tokenTTL := time.Duration(cfg.TokenTTLHours) * time.Hour
	authHandler := handlers.NewAuthHandler(userService, cfg.JWTSecret, tokenTTL)
	canteenHandler := handlers.NewCanteenHandler(canteenService)
	itemHandler := handlers.NewItemHandler(itemService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Setup routes
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Smart Canteen API is running...")
	})

	protect := middleware.Protect(cfg.JWTSecret)
	ownerOnly := middleware.OwnerOnly()

	api := router.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/canteens", canteenHandler.GetCanteens)
		api.POST("/canteens", protect, ownerOnly, canteenHandler.AddCanteen)
		api.GET("/canteens/my", protect, ownerOnly, canteenHandler.GetMyCanteen)

		api.GET("/items", itemHandler.GetAllItems)
		api.POST("/items", protect, ownerOnly, itemHandler.AddItem)
		api.GET("/items/canteen/:canteenId", itemHandler.GetItemsByCanteen)
		api.PUT("/items/:id", protect, ownerOnly, itemHandler.UpdateItem)
		api.DELETE("/items/:id", protect, ownerOnly, itemHandler.DeleteItem)

		api.POST("/orders", protect, orderHandler.PlaceOrder)
		api.GET("/orders/my", protect, orderHandler.GetMyOrders)
		api.GET("/orders/canteen/:canteenId", protect, ownerOnly, orderHandler.GetCanteenOrders)
		api.PUT("/orders/:id/order-status", protect, ownerOnly, orderHandler.UpdateOrderStatus)
		api.PUT("/orders/:id/payment-status", protect, ownerOnly, orderHandler.UpdatePaymentStatus)
		api.DELETE("/orders/canteen/:canteenId/all", protect, ownerOnly, orderHandler.DeleteAllOrders)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
