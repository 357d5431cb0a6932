package routes

import (
	"Scramblio/controllers"
	"Scramblio/services/registry"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, reg *registry.Registry) {
	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", controllers.Health())

	// API routes group
	api := router.Group("/api")

	api.POST("/create-room", controllers.CreateRoom(reg))

	api.GET("/rooms", controllers.ListPublicRooms(reg))

	api.GET("/room/:id", controllers.GetRoomInfo(reg))
}
