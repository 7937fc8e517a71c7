package models

import (
	"time"
)

// DutyStatus is one of the four mutually exclusive states a driver
// occupies at any instant on the daily log form.
type DutyStatus string

const (
	StatusOffDuty          DutyStatus = "off_duty"
	StatusSleeperBerth     DutyStatus = "sleeper_berth"
	StatusDriving          DutyStatus = "driving"
	StatusOnDutyNotDriving DutyStatus = "on_duty_not_driving"
)

// FormRowOrder is the row order of the paper log form (lines 1-4).
// Renderers iterate this; nothing else defines an ordering.
var FormRowOrder = [4]DutyStatus{
	StatusOffDuty,
	StatusSleeperBerth,
	StatusDriving,
	StatusOnDutyNotDriving,
}

// Valid reports whether s is one of the four known duty statuses.
func (s DutyStatus) Valid() bool {
	switch s {
	case StatusOffDuty, StatusSleeperBerth, StatusDriving, StatusOnDutyNotDriving:
		return true
	}
	return false
}

// DutyEntry is one immutable segment of the duty-status timeline as
// produced by the upstream route/schedule service. Timestamps are
// RFC 3339 on the wire and may cross a calendar-day boundary.
// Reason and Location are free text and only present for stops
// (fueling, rest, pickup, dropoff). Unknown upstream fields are
// dropped by the JSON decoder, never interpreted.
type DutyEntry struct {
	StartTime   time.Time   `json:"start_time" binding:"required"`
	EndTime     time.Time   `json:"end_time" binding:"required"`
	DutyStatus  DutyStatus  `json:"duty_status" binding:"required"`
	Location    string      `json:"location,omitempty"`
	Miles       float64     `json:"miles,omitempty"`
	Reason      string      `json:"reason,omitempty"`
	Coordinates *Coordinate `json:"coordinates,omitempty"`
}

// Duration returns the entry's unclipped length.
func (e DutyEntry) Duration() time.Duration {
	return e.EndTime.Sub(e.StartTime)
}

// TripInfo is trip-level metadata owned by the route service. The log
// engine copies it into the daily logs for display but does not
// interpret it.
type TripInfo struct {
	CurrentLocation string `json:"current_location"`
	PickupLocation  string `json:"pickup_location"`
	DropoffLocation string `json:"dropoff_location"`
}
