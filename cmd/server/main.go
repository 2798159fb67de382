package main

import (
	"log"
	"time"

	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/config"
	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/database"
	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/handlers"
	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/redis"
	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/repository"
	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/services"

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

	// Initialize Redis. The dashboard cache is the only consumer, so the
	// server still runs without it.
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Redis unavailable, dashboard caching disabled: %v", err)
		redisClient = nil
	}

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	qualityRepo := repository.NewQualityCheckRepository(db)

	// Initialize services
	orderService := services.NewOrderService(orderRepo, orderItemRepo, catalogRepo, redisClient)
	paymentService := services.NewPaymentService(orderRepo, orderItemRepo, redisClient)
	customerService := services.NewCustomerService(customerRepo)
	catalogService := services.NewCatalogService(catalogRepo)
	qualityService := services.NewQualityService(qualityRepo, orderRepo)
	dashboardService := services.NewDashboardService(
		orderRepo, orderItemRepo, redisClient, time.Duration(cfg.DashboardCacheTTL)*time.Second)

	// Initialize handlers
	orderHandler := handlers.NewOrderHandler(orderService, paymentService)
	apiHandler := handlers.NewAPIHandler(customerService, catalogService, qualityService, dashboardService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		api.GET("/orders", orderHandler.ListOrders)
		api.POST("/orders", orderHandler.CreateOrder)
		api.GET("/orders/:id", orderHandler.GetOrder)
		api.PUT("/orders/:id", orderHandler.UpdateOrder)
		api.DELETE("/orders/:id", orderHandler.DeleteOrder)
		api.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

		api.GET("/orders/:id/payments", orderHandler.GetPayments)
		api.POST("/orders/:id/payments/mark-all-paid", orderHandler.MarkAllPaid)
		api.POST("/orders/:id/payments/mark-all-pending", orderHandler.MarkAllPending)
		api.PATCH("/order-items/:id/payment", orderHandler.UpdateItemPayment)

		api.GET("/customers", apiHandler.FindCustomers)
		api.POST("/customers", apiHandler.CreateCustomer)

		api.GET("/catalog/items", apiHandler.GetActiveItems)
		api.POST("/catalog/items", apiHandler.CreateItem)
		api.PUT("/catalog/items/:id", apiHandler.UpdateItem)
		api.DELETE("/catalog/items/:id", apiHandler.DeactivateItem)
		api.GET("/catalog/service-types", apiHandler.GetActiveServiceTypes)
		api.POST("/catalog/service-types", apiHandler.CreateServiceType)
		api.PUT("/catalog/service-types/:id", apiHandler.UpdateServiceType)
		api.DELETE("/catalog/service-types/:id", apiHandler.DeactivateServiceType)

		api.GET("/quality-checks", apiHandler.ListQualityChecks)
		api.POST("/quality-checks", apiHandler.CreateQualityCheck)

		api.GET("/dashboard/stats", apiHandler.GetDashboardStats)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
