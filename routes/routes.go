package routes

import (
	"github.com/Meera-417/VastraKart/utils"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.New()

	// Middleware goes on before any routes so every handler sits behind it
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	// API version group
	api := router.Group("/api/v1")
	{
		initStorefrontRoutes(api)
		initAdminRoutes(api)
	}

	return router
}
