package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/wizard-2006/CrimeLogix/internal/auth"
	"github.com/wizard-2006/CrimeLogix/internal/handlers"
	"github.com/wizard-2006/CrimeLogix/internal/repositories"
)

// SetupAuthRoutes registers the authentication endpoints.
func SetupAuthRoutes(v1 *gin.RouterGroup, users repositories.UserRepository, handler *handlers.AuthHandler) {
	public := v1.Group("/auth")
	{
		public.POST("/login", handler.Login)
	}

	protected := v1.Group("/auth")
	protected.Use(auth.JWTMiddleware(users))
	{
		protected.POST("/logout", handler.Logout)
		protected.GET("/me", handler.Me)
	}
}
