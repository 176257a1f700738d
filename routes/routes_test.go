package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resourcecal/handlers"

	"github.com/gin-gonic/gin"
)

func stub(status int) gin.HandlerFunc {
	return func(c *gin.Context) { c.Status(status) }
}

func TestRegisterRoutes_AuthOnCommands(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hb := &handlers.HandlerBundle{
		PlanWeeklyAvailabilityHandler: stub(http.StatusOK),
		BlockTimeHandler:              stub(http.StatusCreated),
		ImportCalendarHandler:         stub(http.StatusOK),
		ReleaseBatchHandler:           stub(http.StatusOK),
		ReleaseWithBufferHandler:      stub(http.StatusOK),
		BatchReleaseHandler:           stub(http.StatusOK),
		GetAvailabilityHandler:        stub(http.StatusOK),
		GetEventsHandler:              stub(http.StatusOK),
		ExportCalendarHandler:         stub(http.StatusOK),
		HealthHandler:                 stub(http.StatusOK),
	}
	r := gin.New()
	RegisterRoutes(r, hb)

	const id = "ffffffff-0000-0000-0000-000000000000"
	cases := []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/api/resources/" + id + "/availability", http.StatusOK},
		{http.MethodGet, "/api/resources/" + id + "/events", http.StatusOK},
		{http.MethodGet, "/api/resources/" + id + "/calendar.ics", http.StatusOK},
		{http.MethodPut, "/api/resources/" + id + "/weekly-availability", http.StatusUnauthorized},
		{http.MethodPost, "/api/resources/" + id + "/blockades", http.StatusUnauthorized},
		{http.MethodPost, "/api/resources/" + id + "/blockades/ical", http.StatusUnauthorized},
		{http.MethodDelete, "/api/resources/" + id + "/batches/b", http.StatusUnauthorized},
		{http.MethodPost, "/api/resources/" + id + "/batches/b/release-with-buffer", http.StatusUnauthorized},
		{http.MethodDelete, "/api/resources/batches/b", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, strings.NewReader("")))
			if w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}
