// Package mapdata builds the payloads the map view draws: stop markers
// extracted from the duty timeline, encoded as GeoJSON, and validation
// of the opaque route polyline the upstream route service supplies.
// Route geometry is round-tripped, never computed here.
package mapdata

import (
	"fmt"
	"strings"
	"time"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"

	"eld_logbook/internal/models"
)

// Stop marker categories used by the frontend for icon selection.
const (
	StopTypeRest  = "rest"
	StopTypeFuel  = "fuel"
	StopTypeOther = "other"
)

// Stop is one marker on the trip map: a timeline entry that had a
// reason and a resolved coordinate.
type Stop struct {
	Type          string            `json:"type"`
	Location      models.Coordinate `json:"location"`
	Time          time.Time         `json:"time"`
	DurationHours float64           `json:"duration"`
	DutyStatus    models.DutyStatus `json:"duty_status"`
	Reason        string            `json:"reason"`
}

// Stops filters the timeline down to entries that should appear as map
// markers: those carrying a reason and coordinates. Order follows the
// timeline.
func Stops(entries []models.DutyEntry) []Stop {
	var stops []Stop
	for _, e := range entries {
		if e.Reason == "" || e.Coordinates == nil {
			continue
		}
		stops = append(stops, Stop{
			Type:          classify(e.Reason),
			Location:      *e.Coordinates,
			Time:          e.StartTime,
			DurationHours: e.Duration().Hours(),
			DutyStatus:    e.DutyStatus,
			Reason:        e.Reason,
		})
	}
	return stops
}

// classify buckets a stop reason for icon selection.
func classify(reason string) string {
	r := strings.ToLower(reason)
	switch {
	case strings.Contains(r, "fuel"):
		return StopTypeFuel
	case strings.Contains(r, "rest"), strings.Contains(r, "break"):
		return StopTypeRest
	default:
		return StopTypeOther
	}
}

// StopsFeatureCollection encodes the timeline's stops as a GeoJSON
// FeatureCollection of points, the shape the map component consumes
// directly.
func StopsFeatureCollection(entries []models.DutyEntry) (*gjson.FeatureCollection, error) {
	fc := &gjson.FeatureCollection{Features: []*gjson.Feature{}}
	for i, s := range Stops(entries) {
		point := geom.NewPointFlat(geom.XY, []float64{s.Location.Lng, s.Location.Lat})
		fc.Features = append(fc.Features, &gjson.Feature{
			ID:       fmt.Sprintf("stop-%d", i),
			Geometry: point,
			Properties: map[string]interface{}{
				"type":        s.Type,
				"time":        s.Time.UTC().Format(time.RFC3339),
				"duration":    s.DurationHours,
				"duty_status": string(s.DutyStatus),
				"reason":      s.Reason,
			},
		})
	}
	return fc, nil
}

// DecodeRoutePolyline parses the upstream route geometry and checks it
// is a GeoJSON LineString. The geometry itself stays opaque; callers
// only forward it.
func DecodeRoutePolyline(raw []byte) (*geom.LineString, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var g geom.T
	if err := gjson.Unmarshal(raw, &g); err != nil {
		return nil, fmt.Errorf("parsing route geometry: %w", err)
	}
	ls, ok := g.(*geom.LineString)
	if !ok {
		return nil, fmt.Errorf("route geometry must be a LineString, got %T", g)
	}
	return ls, nil
}
