package routes

import (
	"resourcecal/handlers"
	"resourcecal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterResourceRoutes registers the scheduling endpoints. Reads are public;
// commands require a bearer token.
func RegisterResourceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/resources")
	{
		api.GET("/:id/availability", hb.GetAvailabilityHandler)
		api.GET("/:id/events", hb.GetEventsHandler)
		api.GET("/:id/calendar.ics", hb.ExportCalendarHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.PUT("/:id/weekly-availability", hb.PlanWeeklyAvailabilityHandler)
		protected.POST("/:id/blockades", hb.BlockTimeHandler)
		protected.POST("/:id/blockades/ical", hb.ImportCalendarHandler)
		protected.DELETE("/:id/batches/:batchId", hb.ReleaseBatchHandler)
		protected.POST("/:id/batches/:batchId/release-with-buffer", hb.ReleaseWithBufferHandler)
		protected.DELETE("/batches/:batchId", hb.BatchReleaseHandler)
	}
}

// RegisterHealthRoute registers the health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes registers all application routes.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	RegisterHealthRoute(r, hb)
	RegisterResourceRoutes(r, hb)
}
