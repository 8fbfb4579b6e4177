package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/wizard-2006/CrimeLogix/internal/handlers"
	"github.com/wizard-2006/CrimeLogix/internal/repositories"
)

// SetupRoutes registers every route group on the engine.
func SetupRoutes(
	router *gin.Engine,
	users repositories.UserRepository,
	authHandler *handlers.AuthHandler,
	recordHandler *handlers.RecordHandler,
) {
	api := router.Group("/api")
	v1 := api.Group("/v1")

	SetupAuthRoutes(v1, users, authHandler)
	SetupRecordRoutes(v1, users, recordHandler)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
