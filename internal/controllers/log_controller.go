package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"eld_logbook/internal/engine"
	"eld_logbook/internal/logsheet"
	"eld_logbook/internal/mapdata"
	"eld_logbook/internal/models"
)

// --- Helper Structs for Request Bodies ---

// buildLogsInput is the payload the route/schedule service posts: the
// trip metadata, its computed duty timeline, and optionally the route
// polyline (opaque GeoJSON, validated and passed through).
type buildLogsInput struct {
	Trip          models.TripInfo    `json:"trip"`
	RouteGeometry json.RawMessage    `json:"route_geometry,omitempty"`
	LogEntries    []models.DutyEntry `json:"log_entries"`
}

// renderSheetInput additionally names which day to render. An empty
// date means the first day of the trip.
type renderSheetInput struct {
	buildLogsInput
	Date string `json:"date"`
}

// --- Log Controller Functions ---

// BuildDailyLogs converts a posted duty timeline into per-day log
// sheets plus the stop markers for the map. An empty timeline is not
// an error: the response carries an empty list and the frontend shows
// "no logs available".
func BuildDailyLogs(c *gin.Context) {
	var input buildLogsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("BuildDailyLogs: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if _, err := mapdata.DecodeRoutePolyline(input.RouteGeometry); err != nil {
		logrus.WithError(err).Warn("BuildDailyLogs: bad route geometry")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid route geometry: " + err.Error()})
		return
	}

	logs, err := engine.BuildDailyLogs(input.LogEntries, input.Trip)
	if err != nil {
		var mt *engine.MalformedTimelineError
		if errors.As(err, &mt) {
			logrus.WithError(err).Warn("BuildDailyLogs: malformed timeline")
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   mt.Error(),
				"entries": []int{mt.First, mt.Second},
			})
			return
		}
		logrus.WithError(err).Error("BuildDailyLogs: engine failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build daily logs."})
		return
	}
	if logs == nil {
		logs = []models.DailyLog{}
	}

	stops, err := mapdata.StopsFeatureCollection(input.LogEntries)
	if err != nil {
		logrus.WithError(err).Error("BuildDailyLogs: stop marker encoding failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode stop markers."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"daily_logs": logs,
		"stops":      stops,
	})
}

// RenderLogSheet builds the daily logs for a posted timeline and
// responds with one day's sheet rendered as plain text, the same
// totals/recap/remarks layout the PDF export uses.
func RenderLogSheet(c *gin.Context) {
	var input renderSheetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("RenderLogSheet: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	logs, err := engine.BuildDailyLogs(input.LogEntries, input.Trip)
	if err != nil {
		var mt *engine.MalformedTimelineError
		if errors.As(err, &mt) {
			c.JSON(http.StatusBadRequest, gin.H{"error": mt.Error()})
			return
		}
		logrus.WithError(err).Error("RenderLogSheet: engine failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build daily logs."})
		return
	}
	if len(logs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No logs available for this trip."})
		return
	}

	lg := logs[0]
	if input.Date != "" {
		found := false
		for _, candidate := range logs {
			if candidate.Date == input.Date {
				lg = candidate
				found = true
				break
			}
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "No log for date " + input.Date})
			return
		}
	}

	c.String(http.StatusOK, logsheet.RenderText(lg))
}
