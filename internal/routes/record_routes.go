package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/wizard-2006/CrimeLogix/internal/auth"
	"github.com/wizard-2006/CrimeLogix/internal/handlers"
	"github.com/wizard-2006/CrimeLogix/internal/models"
	"github.com/wizard-2006/CrimeLogix/internal/repositories"
)

// SetupRecordRoutes registers the record workflow endpoints. Every route
// requires authentication; the approval workflow is admin only.
func SetupRecordRoutes(v1 *gin.RouterGroup, users repositories.UserRepository, handler *handlers.RecordHandler) {
	records := v1.Group("/records")
	records.Use(auth.JWTMiddleware(users))
	{
		adminOnly := auth.RequireRoles(models.RoleAdmin)
		adminOrOfficer := auth.RequireRoles(models.RoleAdmin, models.RoleOfficer)

		// Admin approval workflow. Registered before /:id so the static
		// segments are not captured as record ids.
		records.GET("/pending", adminOnly, handler.GetPendingRecords)
		records.GET("/stats", adminOnly, handler.GetRecordStats)
		records.PUT("/:id/approve", adminOnly, handler.ApproveRecord)
		records.PUT("/:id/reject", adminOnly, handler.RejectRecord)

		records.POST("/manual", handler.InsertRecordManually)

		records.GET("", handler.GetAllRecords)
		records.POST("", adminOrOfficer, handler.CreateCompleteRecord)

		records.GET("/:id", handler.GetRecord)
		records.PUT("/:id/link", adminOrOfficer, handler.LinkChildToRecord)
		records.PUT("/:id", adminOrOfficer, handler.UpdateRecord)
		records.DELETE("/:id", adminOnly, handler.DeleteRecord)
	}
}
