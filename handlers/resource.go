package handlers

import (
	"net/http"
	"time"

	"resourcecal/models"
	"resourcecal/services/availability"
	"resourcecal/timespan"
	"resourcecal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ResourceHandler serves the /api/resources endpoints.
type ResourceHandler struct {
	Service availability.AvailabilityService
}

func NewResourceHandler(svc availability.AvailabilityService) *ResourceHandler {
	return &ResourceHandler{Service: svc}
}

func (h *ResourceHandler) resourceID(c *gin.Context) (availability.ResourceID, bool) {
	id, err := availability.ParseResourceID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid resource ID", err.Error())
		return "", false
	}
	return id, true
}

func (h *ResourceHandler) batchID(c *gin.Context) (availability.BatchID, bool) {
	id, err := availability.ParseBatchID(c.Param("batchId"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid batch ID", err.Error())
		return "", false
	}
	return id, true
}

func (h *ResourceHandler) PlanWeeklyAvailabilityHandler(c *gin.Context) {
	resourceID, ok := h.resourceID(c)
	if !ok {
		return
	}
	var req models.PlanWeeklyAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	publishDate, err := availability.ParsePublishDate(req.PublishDate)
	if err != nil {
		respondError(c, "Invalid publish date", err)
		return
	}
	week, err := availability.WeekFromStrings(req.Week)
	if err != nil {
		respondError(c, "Invalid week", err)
		return
	}

	if err := h.Service.PlanWeeklyAvailability(c.Request.Context(), resourceID, publishDate, week); err != nil {
		respondError(c, "Failed to plan weekly availability", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Weekly availability planned",
		"publishDate": publishDate.String(),
		"week":        week.Strings(),
	})
}

// BlockTimeHandler answers 201 when the blockade was accepted and 200 with the
// rejection event otherwise.
func (h *ResourceHandler) BlockTimeHandler(c *gin.Context) {
	resourceID, ok := h.resourceID(c)
	if !ok {
		return
	}
	var req models.BlockTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	kind, err := availability.ParseBlockadeType(req.Type)
	if err != nil {
		respondError(c, "Invalid blockade type", err)
		return
	}
	span, err := timespan.ParseDateTimeSpanIn(req.DateTimeSpan, h.Service.Location())
	if err != nil {
		respondError(c, "Invalid date time span", err)
		return
	}

	out, err := h.Service.BlockAvailableTime(c.Request.Context(), availability.BlockCommand{
		ResourceID:   resourceID,
		BlockadeID:   availability.BlockadeID(req.BlockadeID),
		Type:         kind,
		DateTimeSpan: span,
		BatchID:      availability.BatchID(req.BatchID),
	})
	if err != nil {
		respondError(c, "Failed to block time", err)
		return
	}
	if subject, ok := c.Get("subject"); ok {
		getLogger(c).Info("block requested", zap.Any("subject", subject), zap.Bool("accepted", out.Accepted))
	}

	status := http.StatusOK
	if out.Accepted {
		status = http.StatusCreated
	}
	c.JSON(status, out)
}

// ImportCalendarHandler reads a VCALENDAR body; ?type= picks the blockade type,
// exception by default.
func (h *ResourceHandler) ImportCalendarHandler(c *gin.Context) {
	resourceID, ok := h.resourceID(c)
	if !ok {
		return
	}
	kind, err := availability.ParseBlockadeType(c.DefaultQuery("type", availability.Exception.String()))
	if err != nil {
		respondError(c, "Invalid blockade type", err)
		return
	}
	body, err := c.GetRawData()
	if err != nil || len(body) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Missing calendar body", "")
		return
	}

	outcomes, err := h.Service.ImportCalendar(c.Request.Context(), resourceID, kind, string(body))
	if err != nil {
		respondError(c, "Failed to import calendar", err)
		return
	}
	accepted := 0
	for _, o := range outcomes {
		if o.Accepted {
			accepted++
		}
	}
	c.JSON(http.StatusOK, gin.H{"accepted": accepted, "outcomes": outcomes})
}

func (h *ResourceHandler) ReleaseBatchHandler(c *gin.Context) {
	resourceID, ok := h.resourceID(c)
	if !ok {
		return
	}
	batchID, ok := h.batchID(c)
	if !ok {
		return
	}
	if err := h.Service.ReleaseBlockedTime(c.Request.Context(), resourceID, batchID); err != nil {
		respondError(c, "Failed to release blocked time", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blocked time released", "batchId": batchID})
}

func (h *ResourceHandler) ReleaseWithBufferHandler(c *gin.Context) {
	resourceID, ok := h.resourceID(c)
	if !ok {
		return
	}
	batchID, ok := h.batchID(c)
	if !ok {
		return
	}
	var req models.ReleaseWithBufferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	span, err := timespan.ParseDateTimeSpanIn(req.DateTimeSpan, h.Service.Location())
	if err != nil {
		respondError(c, "Invalid date time span", err)
		return
	}

	out, err := h.Service.ReleaseBlockedTimeWithBuffer(c.Request.Context(), resourceID, batchID, availability.BlockadeID(req.BlockadeID), span)
	if err != nil {
		respondError(c, "Failed to release blocked time", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// BatchReleaseHandler releases a batch without knowing its resource.
func (h *ResourceHandler) BatchReleaseHandler(c *gin.Context) {
	batchID, ok := h.batchID(c)
	if !ok {
		return
	}
	if err := h.Service.BatchReleaseBlockedTime(c.Request.Context(), batchID); err != nil {
		respondError(c, "Failed to release batch", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blocked time released", "batchId": batchID})
}

// GetAvailabilityHandler reads ?date=YYYY-MM-DD, today when omitted.
func (h *ResourceHandler) GetAvailabilityHandler(c *gin.Context) {
	resourceID, ok := h.resourceID(c)
	if !ok {
		return
	}
	now := h.Service.Now()
	loc := now.Location()
	date := now
	if q := c.Query("date"); q != "" {
		d, err := time.ParseInLocation(timespan.DateLayout, q, loc)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid date", "expected YYYY-MM-DD")
			return
		}
		date = d
	}
	y, m, d := date.Date()
	date = time.Date(y, m, d, 0, 0, 0, 0, loc)

	view, err := h.Service.Availability(c.Request.Context(), resourceID, date)
	if err != nil {
		respondError(c, "Failed to compute availability", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ResourceHandler) GetEventsHandler(c *gin.Context) {
	resourceID, ok := h.resourceID(c)
	if !ok {
		return
	}
	events, err := h.Service.History(c.Request.Context(), resourceID)
	if err != nil {
		respondError(c, "Failed to load events", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resourceId": resourceID, "events": events})
}

func (h *ResourceHandler) ExportCalendarHandler(c *gin.Context) {
	resourceID, ok := h.resourceID(c)
	if !ok {
		return
	}
	doc, err := h.Service.ExportCalendar(c.Request.Context(), resourceID)
	if err != nil {
		respondError(c, "Failed to export calendar", err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+resourceID.String()+".ics")
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(doc))
}

// HealthHandler reports the last dependency check.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status, "healthy": status.Healthy()})
}
