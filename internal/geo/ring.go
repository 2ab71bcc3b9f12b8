package geo

import (
	"math"

	"github.com/rotisserie/eris"
)

// Ring - замкнутая последовательность координат, описывающая границу полигона.
// Первая и последняя точки совпадают.
type Ring []Coordinate

// Bounds - ограничивающий прямоугольник в градусах
type Bounds struct {
	MinLng, MinLat float64
	MaxLng, MaxLat float64
}

// CloseRing возвращает замкнутое кольцо. Если кольцо уже замкнуто, возвращается исходный срез.
func CloseRing(coords []Coordinate) Ring {
	if len(coords) == 0 {
		return Ring{}
	}
	if coords[0] == coords[len(coords)-1] && len(coords) > 1 {
		return Ring(coords)
	}
	ring := make(Ring, 0, len(coords)+1)
	ring = append(ring, coords...)
	return append(ring, coords[0])
}

// IsClosed сообщает, совпадают ли первая и последняя точки
func (r Ring) IsClosed() bool {
	return len(r) > 1 && r[0] == r[len(r)-1]
}

// DistinctVertices возвращает количество различных вершин кольца
func (r Ring) DistinctVertices() int {
	seen := make(map[Coordinate]struct{}, len(r))
	for _, c := range r {
		seen[c] = struct{}{}
	}
	return len(seen)
}

// Validate проверяет, что кольцо замкнуто, содержит не менее 3 различных вершин
// и все его координаты корректны
func (r Ring) Validate() error {
	if len(r) == 0 {
		return eris.Wrap(ErrInvalidGeometry, "geo: empty ring")
	}
	for i, c := range r {
		if err := ValidateCoordinate(c); err != nil {
			return eris.Wrapf(ErrInvalidGeometry, "geo: ring vertex %d: %v", i, err)
		}
	}
	if !r.IsClosed() {
		return eris.Wrap(ErrInvalidGeometry, "geo: ring is not closed")
	}
	if n := r.DistinctVertices(); n < 3 {
		return eris.Wrapf(ErrInvalidGeometry, "geo: ring has %d distinct vertices, need at least 3", n)
	}
	return nil
}

// Clone возвращает независимую копию кольца
func (r Ring) Clone() Ring {
	if r == nil {
		return nil
	}
	out := make(Ring, len(r))
	copy(out, r)
	return out
}

// Bounds вычисляет ограничивающий прямоугольник кольца
func (r Ring) Bounds() Bounds {
	b := Bounds{
		MinLng: math.Inf(1), MinLat: math.Inf(1),
		MaxLng: math.Inf(-1), MaxLat: math.Inf(-1),
	}
	for _, c := range r {
		b.MinLng = math.Min(b.MinLng, c.Lng)
		b.MinLat = math.Min(b.MinLat, c.Lat)
		b.MaxLng = math.Max(b.MaxLng, c.Lng)
		b.MaxLat = math.Max(b.MaxLat, c.Lat)
	}
	return b
}

// Contains проверяет попадание точки в прямоугольник (граница включительно)
func (b Bounds) Contains(c Coordinate) bool {
	return c.Lng >= b.MinLng-epsilon && c.Lng <= b.MaxLng+epsilon &&
		c.Lat >= b.MinLat-epsilon && c.Lat <= b.MaxLat+epsilon
}

// overlapsSegment - быстрая отбраковка отрезка, чей прямоугольник не пересекает b
func (b Bounds) overlapsSegment(a, c Coordinate) bool {
	return math.Max(a.Lng, c.Lng) >= b.MinLng-epsilon && math.Min(a.Lng, c.Lng) <= b.MaxLng+epsilon &&
		math.Max(a.Lat, c.Lat) >= b.MinLat-epsilon && math.Min(a.Lat, c.Lat) <= b.MaxLat+epsilon
}

// prepareRing замыкает кольцо при необходимости и проверяет его
func prepareRing(r Ring) (Ring, error) {
	if len(r) == 0 {
		return nil, eris.Wrap(ErrInvalidGeometry, "geo: empty ring")
	}
	ring := CloseRing(r)
	if err := ring.Validate(); err != nil {
		return nil, err
	}
	return ring, nil
}
