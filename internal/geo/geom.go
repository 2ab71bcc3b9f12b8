package geo

import (
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
)

// flatCoords раскладывает координаты в плоский массив для go-geom
func flatCoords(coords []Coordinate) []float64 {
	flat := make([]float64, 0, len(coords)*2)
	for _, c := range coords {
		flat = append(flat, c.Lng, c.Lat)
	}
	return flat
}

// Polygon преобразует кольцо в полигон go-geom (SRID 4326)
func (r Ring) Polygon() *geom.Polygon {
	return geom.NewPolygonFlat(geom.XY, flatCoords(r), []int{len(r) * 2}).SetSRID(4326)
}

// RingFromPolygon извлекает внешнее кольцо полигона go-geom
func RingFromPolygon(p *geom.Polygon) (Ring, error) {
	if p == nil || p.NumLinearRings() == 0 {
		return nil, eris.Wrap(ErrInvalidGeometry, "geo: polygon has no rings")
	}
	coords := p.LinearRing(0).Coords()
	ring := make(Ring, 0, len(coords))
	for _, c := range coords {
		ring = append(ring, Coordinate{Lng: c.X(), Lat: c.Y()})
	}
	if err := ring.Validate(); err != nil {
		return nil, err
	}
	return ring, nil
}

// LineString преобразует ломаную в go-geom
func LineString(coords []Coordinate) *geom.LineString {
	return geom.NewLineStringFlat(geom.XY, flatCoords(coords)).SetSRID(4326)
}

// Point преобразует координату в точку go-geom
func Point(c Coordinate) *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{c.Lng, c.Lat}).SetSRID(4326)
}
