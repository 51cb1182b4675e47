package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"storefront-api/config"
	_ "storefront-api/docs"
	"storefront-api/middleware"
	"storefront-api/routes"
)

// @title Storefront API
// @version 1.0
// @description User registration, authentication and order storage backend.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.LoadConfig()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	pool := config.ConnectDB(cfg)
	defer pool.Close()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))
	routes.SetupRoutes(router, pool, cfg)

	port := ":" + cfg.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
