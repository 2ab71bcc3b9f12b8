package geo

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/rotisserie/eris"
)

// Coordinate - точка WGS84 в десятичных градусах. В JSON кодируется как [lng, lat].
type Coordinate struct {
	Lng float64
	Lat float64
}

// NewCoordinate создает координату из пары (долгота, широта)
func NewCoordinate(lng, lat float64) Coordinate {
	return Coordinate{Lng: lng, Lat: lat}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("[%g, %g]", c.Lng, c.Lat)
}

func (c Coordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{c.Lng, c.Lat})
}

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("coordinate must be a [lng, lat] array: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("coordinate must have exactly 2 elements, got %d", len(pair))
	}
	c.Lng, c.Lat = pair[0], pair[1]
	return nil
}

func (c Coordinate) finite() bool {
	return !math.IsNaN(c.Lng) && !math.IsInf(c.Lng, 0) &&
		!math.IsNaN(c.Lat) && !math.IsInf(c.Lat, 0)
}

// ValidateCoordinate проверяет, что координата конечна и лежит в допустимом диапазоне
func ValidateCoordinate(c Coordinate) error {
	if !c.finite() {
		return eris.Wrapf(ErrInvalidCoordinate, "geo: non-finite coordinate %s", c)
	}
	if math.Abs(c.Lat) > 90 {
		return eris.Wrapf(ErrInvalidCoordinate, "geo: latitude %g out of range", c.Lat)
	}
	if math.Abs(c.Lng) > 180 {
		return eris.Wrapf(ErrInvalidCoordinate, "geo: longitude %g out of range", c.Lng)
	}
	return nil
}
