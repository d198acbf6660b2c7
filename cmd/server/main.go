package main

import (
	"log"

	"github.com/RCnetmiles/Lab-Label/internal/config"
	"github.com/RCnetmiles/Lab-Label/internal/database"
	"github.com/RCnetmiles/Lab-Label/internal/handlers"
	"github.com/RCnetmiles/Lab-Label/internal/services"
	"github.com/RCnetmiles/Lab-Label/internal/ws"

	_ "github.com/RCnetmiles/Lab-Label/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Lab Rat API
// @version         1.0
// @description     Chemical labeling quiz: requisition forms in, verdicts out
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)
	database.Seed(db)

	hub := ws.NewHub()

	productService := services.NewProductService(db)
	verificationService := services.NewVerificationService(productService)

	productHandler := handlers.NewProductHandler(productService, cfg.ProductBatch)
	verifyHandler := handlers.NewVerifyHandler(verificationService, hub)
	monitorHandler := handlers.NewMonitorHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/monitor", monitorHandler.HandleMonitor)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)
		api.GET("/products", productHandler.ListProducts)
		api.POST("/verify", verifyHandler.VerifyAnswer)
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
