package models

import (
	"encoding/json"
	"fmt"
)

// Coordinate is the single tagged coordinate shape used everywhere
// inside the service. Upstream payloads are inconsistent about how they
// spell a point ({lat,lng}, {lat,lon}, or a GeoJSON-style [lon,lat]
// array), so the conversion happens exactly once, here, at the JSON
// boundary. Internal code never branches on wire shape.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var obj struct {
		Lat *float64 `json:"lat"`
		Lng *float64 `json:"lng"`
		Lon *float64 `json:"lon"`
	}
	if err := json.Unmarshal(data, &obj); err == nil && obj.Lat != nil {
		c.Lat = *obj.Lat
		switch {
		case obj.Lng != nil:
			c.Lng = *obj.Lng
		case obj.Lon != nil:
			c.Lng = *obj.Lon
		default:
			return fmt.Errorf("coordinate object missing lng/lon: %s", data)
		}
		return nil
	}

	// GeoJSON position order: [lon, lat]
	var arr []float64
	if err := json.Unmarshal(data, &arr); err == nil {
		if len(arr) < 2 {
			return fmt.Errorf("coordinate array needs 2 elements, got %d", len(arr))
		}
		c.Lng = arr[0]
		c.Lat = arr[1]
		return nil
	}

	return fmt.Errorf("unrecognized coordinate shape: %s", data)
}
