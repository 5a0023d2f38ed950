// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Coordinates is a WGS84 position.
type Coordinates struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

// Point converts to an orb point, which is ordered (long, lat).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Long, c.Lat}
}

// CoordinatesFromPoint converts an orb point back to Coordinates.
func CoordinatesFromPoint(p orb.Point) Coordinates {
	return Coordinates{Lat: p.Lat(), Long: p.Lon()}
}

// InBounds reports whether the position is a finite point on Earth.
func (c Coordinates) InBounds() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Long) ||
		math.IsInf(c.Lat, 0) || math.IsInf(c.Long, 0) {
		return false
	}

	return c.Lat >= -90 && c.Lat <= 90 && c.Long >= -180 && c.Long <= 180
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.6f, %.6f", c.Lat, c.Long)
}
