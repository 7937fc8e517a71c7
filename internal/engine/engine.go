// Package engine turns a trip's duty-status timeline into per-day log
// sheets: it splits the timeline at UTC midnight, computes hour totals
// per status from exact interval arithmetic, and fills in the rolling
// 7-day / 5-day recap block. It is pure computation over its input,
// holds no state, and is safe to call from any number of goroutines.
package engine

import (
	"fmt"
	"time"

	"eld_logbook/internal/models"
	"eld_logbook/internal/timeutil"
)

const (
	// SlotMinutes is the grid resolution of the paper form: 4 cells
	// per hour, 96 per day. Rendering samples at this resolution;
	// totals never do.
	SlotMinutes = 15
	SlotsPerDay = 24 * 60 / SlotMinutes

	// MaxCycleHours70 and MaxCycleHours60 are the two HOS cycle caps
	// the recap block reports remaining hours against. Bookkeeping
	// only; no compliance rule is enforced here.
	MaxCycleHours70 = 70.0
	MaxCycleHours60 = 60.0

	recapWindow7 = 7
	recapWindow5 = 5
)

// MalformedTimelineError reports a timeline that violates the input
// contract: entries overlapping in time, out of chronological order,
// carrying an unknown duty status, or with a non-positive duration.
// First and Second are the indices of the offending pair; Second is -1
// when a single entry is at fault. The upstream schedule computation
// owns producing a valid timeline, so this is a data error, not a user
// error, and is not recoverable here.
type MalformedTimelineError struct {
	First  int
	Second int
	Reason string
}

func (e *MalformedTimelineError) Error() string {
	if e.Second < 0 {
		return fmt.Sprintf("malformed timeline: entry %d: %s", e.First, e.Reason)
	}
	return fmt.Sprintf("malformed timeline: entries %d and %d: %s", e.First, e.Second, e.Reason)
}

// BuildDailyLogs converts a chronologically sorted, non-overlapping
// duty-entry timeline into one DailyLog per UTC calendar day the trip
// touches, sorted ascending by date. Renderers depend on that order
// (tab index = day index).
//
// An empty timeline yields an empty (nil) slice and no error; that is
// the documented contract, callers render "no logs available" rather
// than failing. Invalid input yields a *MalformedTimelineError.
//
// The input slice is never mutated; entries landing in a log are
// copies clipped to the day's boundaries.
func BuildDailyLogs(entries []models.DutyEntry, trip models.TripInfo) ([]models.DailyLog, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	if err := validate(entries); err != nil {
		return nil, err
	}

	lastEnd := entries[0].EndTime
	for _, e := range entries {
		if e.EndTime.After(lastEnd) {
			lastEnd = e.EndTime
		}
	}
	firstDay := timeutil.StartOfDay(entries[0].StartTime)
	// A timeline ending exactly at midnight must not open a log for
	// the day it only touches at instant zero.
	lastDay := timeutil.StartOfDay(lastEnd.Add(-time.Nanosecond))

	var logs []models.DailyLog
	onDuty := make(map[string]time.Duration)
	for d := firstDay; !d.After(lastDay); d = d.AddDate(0, 0, 1) {
		lg, onDutyDur := buildDay(d, entries, trip)
		onDuty[lg.Date] = onDutyDur
		logs = append(logs, lg)
	}

	// Recap needs every day's on-duty total, so it runs as a second
	// pass. Days before the trip start contribute zero.
	for i := range logs {
		day, _ := logs[i].Day()
		last7 := windowHours(onDuty, day, recapWindow7)
		last5 := windowHours(onDuty, day, recapWindow5)
		logs[i].Recap = models.Recap{
			TotalOnDutyLast7Days:       last7,
			TotalOnDutyLast5Days:       last5,
			HoursAvailableTomorrow70Hr: max(0, MaxCycleHours70-last7),
			HoursAvailableTomorrow60Hr: max(0, MaxCycleHours60-last7),
		}
	}
	return logs, nil
}

// validate enforces the timeline input contract.
func validate(entries []models.DutyEntry) error {
	for i, e := range entries {
		if !e.DutyStatus.Valid() {
			return &MalformedTimelineError{First: i, Second: -1,
				Reason: fmt.Sprintf("unknown duty status %q", e.DutyStatus)}
		}
		if !e.StartTime.Before(e.EndTime) {
			return &MalformedTimelineError{First: i, Second: -1,
				Reason: fmt.Sprintf("non-positive duration (%s to %s)",
					e.StartTime.Format(time.RFC3339), e.EndTime.Format(time.RFC3339))}
		}
		if i == 0 {
			continue
		}
		prev := entries[i-1]
		if e.StartTime.Before(prev.StartTime) {
			return &MalformedTimelineError{First: i - 1, Second: i,
				Reason: fmt.Sprintf("not sorted by start time (%s after %s)",
					prev.StartTime.Format(time.RFC3339), e.StartTime.Format(time.RFC3339))}
		}
		if e.StartTime.Before(prev.EndTime) {
			return &MalformedTimelineError{First: i - 1, Second: i,
				Reason: fmt.Sprintf("overlap between %s and %s",
					e.StartTime.Format(time.RFC3339), prev.EndTime.Format(time.RFC3339))}
		}
	}
	return nil
}

// buildDay builds the log for the day starting at UTC midnight d and
// returns it together with the day's on-duty duration for the recap
// pass. Totals come from the clipped interval lengths; time.Duration
// arithmetic is integer nanoseconds, so a fully covered day sums to
// exactly 24 hours with none of the drift grid-cell counting has.
func buildDay(d time.Time, entries []models.DutyEntry, trip models.TripInfo) (models.DailyLog, time.Duration) {
	dayEnd := d.AddDate(0, 0, 1)

	var dayEntries []models.DutyEntry
	byStatus := make(map[models.DutyStatus]time.Duration, 4)
	var miles float64

	for _, e := range entries {
		clipStart := e.StartTime
		if clipStart.Before(d) {
			clipStart = d
		}
		clipEnd := e.EndTime
		if clipEnd.After(dayEnd) {
			clipEnd = dayEnd
		}
		if !clipEnd.After(clipStart) {
			continue
		}

		byStatus[e.DutyStatus] += clipEnd.Sub(clipStart)

		clipped := e
		clipped.StartTime = clipStart
		clipped.EndTime = clipEnd
		if timeutil.SameDay(e.StartTime, d) {
			if e.DutyStatus == models.StatusDriving {
				miles += e.Miles
			}
		} else {
			// Miles belong to the day the segment started on; the
			// spill-over half of a split segment carries none.
			clipped.Miles = 0
		}
		dayEntries = append(dayEntries, clipped)
	}

	onDutyDur := byStatus[models.StatusDriving] + byStatus[models.StatusOnDutyNotDriving]
	totalDur := onDutyDur + byStatus[models.StatusOffDuty] + byStatus[models.StatusSleeperBerth]

	lg := models.DailyLog{
		Date:              timeutil.DayKey(d),
		From:              trip.CurrentLocation,
		To:                trip.DropoffLocation,
		TotalMilesDriving: miles,
		TotalMileage:      miles,
		Entries:           dayEntries,
		Totals: models.Totals{
			OffDuty:          byStatus[models.StatusOffDuty].Hours(),
			SleeperBerth:     byStatus[models.StatusSleeperBerth].Hours(),
			Driving:          byStatus[models.StatusDriving].Hours(),
			OnDutyNotDriving: byStatus[models.StatusOnDutyNotDriving].Hours(),
			TotalOnDuty:      onDutyDur.Hours(),
			TotalHours:       totalDur.Hours(),
		},
	}
	if len(dayEntries) > 0 {
		if loc := dayEntries[0].Location; loc != "" {
			lg.From = loc
		}
		if loc := dayEntries[len(dayEntries)-1].Location; loc != "" {
			lg.To = loc
		}
	}
	return lg, onDutyDur
}

// windowHours sums the on-duty hours of day and the days-1 calendar
// days preceding it. Missing days count as zero.
func windowHours(onDuty map[string]time.Duration, day time.Time, days int) float64 {
	var sum time.Duration
	for i := 0; i < days; i++ {
		sum += onDuty[timeutil.DayKey(day.AddDate(0, 0, -i))]
	}
	return sum.Hours()
}

// StatusAtMinute returns the duty status active at the given minute of
// the log's day (0..1439), or ok=false for uncovered time. Entries are
// walked in chronological order and the first containing interval
// wins; with a valid non-overlapping timeline there is never a second.
func StatusAtMinute(lg models.DailyLog, minute int) (models.DutyStatus, bool) {
	day, err := lg.Day()
	if err != nil {
		return "", false
	}
	for _, e := range lg.Entries {
		start := timeutil.MinuteOfDay(e.StartTime)
		end := 24 * 60
		if timeutil.SameDay(e.EndTime, day) {
			end = timeutil.MinuteOfDay(e.EndTime)
		}
		if minute >= start && minute < end {
			return e.DutyStatus, true
		}
	}
	return "", false
}
