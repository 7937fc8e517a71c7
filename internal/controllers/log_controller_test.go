package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"eld_logbook/internal/models"
	"eld_logbook/internal/routes"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return routes.SetupRouter()
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validTimeline = `{
	"trip": {
		"current_location": "Chicago, IL",
		"pickup_location": "Columbus, OH",
		"dropoff_location": "Baltimore, MD"
	},
	"log_entries": [
		{"start_time": "2024-03-01T08:00:00Z", "end_time": "2024-03-01T12:00:00Z", "duty_status": "driving", "miles": 230},
		{"start_time": "2024-03-01T12:00:00Z", "end_time": "2024-03-01T12:30:00Z", "duty_status": "on_duty_not_driving",
		 "reason": "Fueling", "location": "Fuel Stop at 230 miles", "coordinates": {"lon": -83.2, "lat": 40.1}},
		{"start_time": "2024-03-01T12:30:00Z", "end_time": "2024-03-02T08:00:00Z", "duty_status": "off_duty"}
	]
}`

func TestBuildDailyLogsEndpoint(t *testing.T) {
	w := postJSON(t, newRouter(), "/api/logs/daily", validTimeline)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		DailyLogs []models.DailyLog `json:"daily_logs"`
		Stops     struct {
			Type     string            `json:"type"`
			Features []json.RawMessage `json:"features"`
		} `json:"stops"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if len(resp.DailyLogs) != 2 {
		t.Fatalf("daily_logs = %d, want 2", len(resp.DailyLogs))
	}
	day1 := resp.DailyLogs[0]
	if day1.Date != "2024-03-01" {
		t.Errorf("day 1 date = %q", day1.Date)
	}
	if day1.Totals.Driving != 4.0 || day1.Totals.TotalOnDuty != 4.5 {
		t.Errorf("day 1 totals = %+v", day1.Totals)
	}
	if day1.From != "Chicago, IL" {
		t.Errorf("day 1 from = %q, want trip fallback", day1.From)
	}
	if day1.TotalMilesDriving != 230 {
		t.Errorf("day 1 miles = %v, want 230", day1.TotalMilesDriving)
	}

	if resp.Stops.Type != "FeatureCollection" || len(resp.Stops.Features) != 1 {
		t.Errorf("stops = %+v, want 1-feature collection", resp.Stops)
	}
}

func TestBuildDailyLogsEndpointEmptyTimeline(t *testing.T) {
	w := postJSON(t, newRouter(), "/api/logs/daily", `{"log_entries": []}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		DailyLogs []models.DailyLog `json:"daily_logs"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.DailyLogs == nil || len(resp.DailyLogs) != 0 {
		t.Errorf("daily_logs = %v, want empty list", resp.DailyLogs)
	}
}

func TestBuildDailyLogsEndpointRejectsOverlap(t *testing.T) {
	body := `{"log_entries": [
		{"start_time": "2024-03-01T09:00:00Z", "end_time": "2024-03-01T11:00:00Z", "duty_status": "driving"},
		{"start_time": "2024-03-01T10:00:00Z", "end_time": "2024-03-01T12:00:00Z", "duty_status": "on_duty_not_driving"}
	]}`
	w := postJSON(t, newRouter(), "/api/logs/daily", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "overlap") {
		t.Errorf("body = %s, want overlap error", w.Body.String())
	}
}

func TestBuildDailyLogsEndpointRejectsBadGeometry(t *testing.T) {
	body := `{"route_geometry": {"type": "Point", "coordinates": [-87.6, 41.9]}, "log_entries": []}`
	w := postJSON(t, newRouter(), "/api/logs/daily", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestRenderLogSheetEndpoint(t *testing.T) {
	r := newRouter()

	w := postJSON(t, r, "/api/logs/sheet", validTimeline)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	sheet := w.Body.String()
	if !strings.Contains(sheet, "Driver's Daily Log (24 hours)") || !strings.Contains(sheet, "March 1, 2024") {
		t.Errorf("sheet = %s", sheet)
	}

	// Explicit second day.
	withDate := strings.TrimSuffix(validTimeline, "}") + `, "date": "2024-03-02"}`
	w = postJSON(t, r, "/api/logs/sheet", withDate)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "March 2, 2024") {
		t.Errorf("sheet = %s", w.Body.String())
	}

	// Unknown date.
	withDate = strings.TrimSuffix(validTimeline, "}") + `, "date": "2024-03-09"}`
	w = postJSON(t, r, "/api/logs/sheet", withDate)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	// Empty timeline.
	w = postJSON(t, r, "/api/logs/sheet", `{"log_entries": []}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	newRouter().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
