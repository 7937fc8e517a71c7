package models

import "time"

// Totals holds one calendar day's hours per duty status, in fractional
// hours. TotalOnDuty is lines 3 & 4 of the form (driving + on duty not
// driving); TotalHours is all four lines and equals 24.0 for a day the
// timeline fully covers.
type Totals struct {
	OffDuty          float64 `json:"off_duty"`
	SleeperBerth     float64 `json:"sleeper_berth"`
	Driving          float64 `json:"driving"`
	OnDutyNotDriving float64 `json:"on_duty_not_driving"`
	TotalOnDuty      float64 `json:"total_on_duty"`
	TotalHours       float64 `json:"total_hours"`
}

// ForStatus returns the per-status hour total for one of the four
// duty statuses.
func (t Totals) ForStatus(s DutyStatus) float64 {
	switch s {
	case StatusOffDuty:
		return t.OffDuty
	case StatusSleeperBerth:
		return t.SleeperBerth
	case StatusDriving:
		return t.Driving
	case StatusOnDutyNotDriving:
		return t.OnDutyNotDriving
	}
	return 0
}

// Recap is the rolling multi-day summary block at the bottom of the
// form. The 7-day window is the day itself plus the 6 preceding
// calendar days; the 5-day window is analogous.
type Recap struct {
	TotalOnDutyLast7Days       float64 `json:"total_on_duty_last_7_days"`
	TotalOnDutyLast5Days       float64 `json:"total_on_duty_last_5_days"`
	HoursAvailableTomorrow70Hr float64 `json:"hours_available_tomorrow_70hr"`
	HoursAvailableTomorrow60Hr float64 `json:"hours_available_tomorrow_60hr"`
}

// DailyLog is one calendar day's derived view of the duty timeline,
// keyed by Date (UTC calendar date, formatted 2006-01-02). Entries are
// the timeline segments clipped to this day's boundaries; a segment
// spanning midnight appears in both adjacent days. DailyLogs hold no
// independent state and are recomputed from the entry list on every
// engine call.
type DailyLog struct {
	Date              string      `json:"date"`
	From              string      `json:"from"`
	To                string      `json:"to"`
	TotalMilesDriving float64     `json:"total_miles_driving"`
	TotalMileage      float64     `json:"total_mileage"`
	Entries           []DutyEntry `json:"entries"`
	Totals            Totals      `json:"totals"`
	Recap             Recap       `json:"recap"`
}

// Day parses the log's Date as a UTC calendar day.
func (l DailyLog) Day() (time.Time, error) {
	return time.ParseInLocation("2006-01-02", l.Date, time.UTC)
}
