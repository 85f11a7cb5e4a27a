package routes

import (
	"servibook_backend/internal/handlers"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "servibook_backend/docs"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the HTTP API and the swagger UI.
func RegisterRoutes(router *gin.Engine, appHandlers *handlers.AppHandlers, authMW gin.HandlerFunc) {
	api := router.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.WorkerHandler.RegisterRoutes(api, authMW)
		appHandlers.CustomerHandler.RegisterRoutes(api, authMW)
		appHandlers.ServiceHandler.RegisterRoutes(api, authMW)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
