// Package logsheet owns the presentation side of the daily log: the
// one authoritative status-to-label/color table, the discretized
// occupancy grid, and the remarks list. Every renderer (the interactive
// grid view and the exported document) consumes what this package
// computes; none re-derives status-at-time on its own.
package logsheet

import (
	"fmt"

	"eld_logbook/internal/engine"
	"eld_logbook/internal/models"
	"eld_logbook/internal/timeutil"
)

// statusLabels and statusColors are the single shared presentation
// table. The labels are the form's row captions verbatim; the colors
// are the tokens both the screen grid and the exported sheet use, so
// the two renderings stay consistent.
var statusLabels = map[models.DutyStatus]string{
	models.StatusOffDuty:          "1. Off Duty",
	models.StatusSleeperBerth:     "2. Sleeper Berth",
	models.StatusDriving:          "3. Driving",
	models.StatusOnDutyNotDriving: "4. On Duty (not driving)",
}

var statusColors = map[models.DutyStatus]string{
	models.StatusOffDuty:          "#10b981",
	models.StatusSleeperBerth:     "#3b82f6",
	models.StatusDriving:          "#ef4444",
	models.StatusOnDutyNotDriving: "#f59e0b",
}

// EmptyCellColor is the fill for slots no status covers.
const EmptyCellColor = "#e5e7eb"

// Label returns the form row caption for a status.
func Label(s models.DutyStatus) string {
	return statusLabels[s]
}

// Color returns the fill color token for a status.
func Color(s models.DutyStatus) string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return EmptyCellColor
}

// Row is one of the four grid rows: a status and, per 15-minute slot
// of the day, whether that status is active there.
type Row struct {
	Status models.DutyStatus
	Cells  [engine.SlotsPerDay]bool
}

// Grid is the discretized 24-hour occupancy grid for one daily log, in
// form row order.
type Grid [4]Row

// BuildGrid samples the log's status at every 15-minute slot. It is
// purely for rendering; hour totals come from the engine's interval
// arithmetic, never from counting these cells.
func BuildGrid(lg models.DailyLog) Grid {
	var g Grid
	for i, s := range models.FormRowOrder {
		g[i].Status = s
	}
	for slot := 0; slot < engine.SlotsPerDay; slot++ {
		status, ok := engine.StatusAtMinute(lg, slot*engine.SlotMinutes)
		if !ok {
			continue
		}
		for i := range g {
			if g[i].Status == status {
				g[i].Cells[slot] = true
				break
			}
		}
	}
	return g
}

// Remarks builds the form's remarks list: every entry carrying a
// reason, formatted "{time}: {reason} ({location})", in chronological
// order.
func Remarks(lg models.DailyLog) []string {
	var remarks []string
	for _, e := range lg.Entries {
		if e.Reason == "" {
			continue
		}
		remarks = append(remarks, fmt.Sprintf("%s: %s (%s)",
			timeutil.FormatClock(e.StartTime), e.Reason, e.Location))
	}
	return remarks
}
