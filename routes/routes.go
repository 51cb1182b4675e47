package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront-api/config"
	"storefront-api/controllers"
	"storefront-api/middleware"
	"storefront-api/repositories"
	"storefront-api/services"
)

func SetupRoutes(router *gin.Engine, pool *pgxpool.Pool, cfg *config.Config) {
	userRepo := repositories.NewPGUserRepository(pool)
	orderRepo := repositories.NewPGOrderRepository(pool)

	authCtrl := controllers.NewAuthController(services.NewAuthService(userRepo, cfg.JWTSecret))
	orderCtrl := controllers.NewOrderController(services.NewOrderService(orderRepo))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.String(http.StatusOK, "Orders API is working!")
		})

		api.POST("/auth/register", middleware.APIKeyMiddleware(cfg.APIKey), authCtrl.Register)
		api.POST("/auth/login", authCtrl.Login)
		api.POST("/auth/admin/login", authCtrl.AdminLogin)

		api.POST("/orders", orderCtrl.PlaceOrder)
		api.GET("/orders", orderCtrl.ListOrders)

		// TODO: put AuthMiddleware in front of this once the admin
		// dashboard sends its bearer token.
		api.GET("/admin/orders", orderCtrl.ListAdminOrders)
	}
}
