// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the endpoint handlers registered by routes.
type HandlerBundle struct {
	// Commands
	PlanWeeklyAvailabilityHandler gin.HandlerFunc
	BlockTimeHandler              gin.HandlerFunc
	ImportCalendarHandler         gin.HandlerFunc
	ReleaseBatchHandler           gin.HandlerFunc
	ReleaseWithBufferHandler      gin.HandlerFunc
	BatchReleaseHandler           gin.HandlerFunc

	// Queries
	GetAvailabilityHandler gin.HandlerFunc
	GetEventsHandler       gin.HandlerFunc
	ExportCalendarHandler  gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle wires every resource endpoint of h.
func NewHandlerBundle(h *ResourceHandler) *HandlerBundle {
	return &HandlerBundle{
		PlanWeeklyAvailabilityHandler: h.PlanWeeklyAvailabilityHandler,
		BlockTimeHandler:              h.BlockTimeHandler,
		ImportCalendarHandler:         h.ImportCalendarHandler,
		ReleaseBatchHandler:           h.ReleaseBatchHandler,
		ReleaseWithBufferHandler:      h.ReleaseWithBufferHandler,
		BatchReleaseHandler:           h.BatchReleaseHandler,
		GetAvailabilityHandler:        h.GetAvailabilityHandler,
		GetEventsHandler:              h.GetEventsHandler,
		ExportCalendarHandler:         h.ExportCalendarHandler,
		HealthHandler:                 HealthHandler,
	}
}
