package geo

import (
	"math"

	"github.com/rotisserie/eris"
)

const (
	// EarthRadiusKm - средний радиус Земли
	EarthRadiusKm = 6371.0088

	// KmPerDegree - приближенное число километров в одном градусе дуги
	KmPerDegree = 111.0

	// epsilon - допуск для проверок коллинеарности и попадания на границу, в градусах
	epsilon = 1e-12
)

// GreatCircleDistanceKm вычисляет расстояние между двумя точками по формуле гаверсинусов
func GreatCircleDistanceKm(a, b Coordinate) (float64, error) {
	if err := ValidateCoordinate(a); err != nil {
		return 0, err
	}
	if err := ValidateCoordinate(b); err != nil {
		return 0, err
	}
	if a == b {
		return 0, nil
	}

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	deltaLat := (b.Lat - a.Lat) * math.Pi / 180
	deltaLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	h = math.Min(1, math.Max(0, h))

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c, nil
}

// CirclePolygon строит правильный многоугольник из pointCount вершин вокруг center.
// Радиус задается в градусах, вершины откладываются в плоскости (lng, lat).
func CirclePolygon(center Coordinate, radiusDegrees float64, pointCount int) (Ring, error) {
	if err := ValidateCoordinate(center); err != nil {
		return nil, err
	}
	if math.IsNaN(radiusDegrees) || math.IsInf(radiusDegrees, 0) || radiusDegrees <= 0 {
		return nil, eris.Wrapf(ErrInvalidGeometry, "geo: circle radius must be positive, got %g", radiusDegrees)
	}
	if pointCount < 3 {
		return nil, eris.Wrapf(ErrInvalidGeometry, "geo: circle needs at least 3 points, got %d", pointCount)
	}

	ring := make(Ring, 0, pointCount+1)
	for i := 0; i < pointCount; i++ {
		angle := float64(i) / float64(pointCount) * 2 * math.Pi
		ring = append(ring, Coordinate{
			Lng: center.Lng + radiusDegrees*math.Cos(angle),
			Lat: center.Lat + radiusDegrees*math.Sin(angle),
		})
	}
	return append(ring, ring[0]), nil
}

// PointInPolygon проверяет попадание точки в полигон методом трассировки луча.
// Точки на границе считаются внутренними.
func PointInPolygon(point Coordinate, polygon Ring) (bool, error) {
	if err := ValidateCoordinate(point); err != nil {
		return false, err
	}
	ring, err := prepareRing(polygon)
	if err != nil {
		return false, err
	}
	return ringContains(ring, point), nil
}

// LineIntersectsPolygon сообщает, имеет ли ломаная хотя бы одну общую точку
// с границей или внутренностью полигона. Ломаная из одной точки и отрезки
// нулевой длины сводятся к проверке точки.
func LineIntersectsPolygon(line []Coordinate, polygon Ring) (bool, error) {
	if len(line) == 0 {
		return false, eris.Wrap(ErrInvalidGeometry, "geo: empty line")
	}
	for i, c := range line {
		if err := ValidateCoordinate(c); err != nil {
			return false, eris.Wrapf(ErrInvalidGeometry, "geo: line vertex %d: %v", i, err)
		}
	}
	ring, err := prepareRing(polygon)
	if err != nil {
		return false, err
	}

	if len(line) == 1 {
		return ringContains(ring, line[0]), nil
	}

	bounds := ring.Bounds()
	for i := 1; i < len(line); i++ {
		a, b := line[i-1], line[i]
		if !bounds.overlapsSegment(a, b) {
			continue
		}
		if ringContains(ring, a) || ringContains(ring, b) {
			return true, nil
		}
		for k := 1; k < len(ring); k++ {
			if segmentsIntersect(a, b, ring[k-1], ring[k]) {
				return true, nil
			}
		}
	}
	return false, nil
}

// ringContains - трассировка луча по замкнутому проверенному кольцу
func ringContains(ring Ring, p Coordinate) bool {
	if !ring.Bounds().Contains(p) {
		return false
	}

	inside := false
	for i := 1; i < len(ring); i++ {
		a, b := ring[i-1], ring[i]
		if onSegment(p, a, b) {
			return true
		}
		if (a.Lat > p.Lat) != (b.Lat > p.Lat) &&
			p.Lng < (b.Lng-a.Lng)*(p.Lat-a.Lat)/(b.Lat-a.Lat)+a.Lng {
			inside = !inside
		}
	}
	return inside
}

// orientation возвращает знак векторного произведения (b-a)x(c-a)
func orientation(a, b, c Coordinate) int {
	v := (b.Lng-a.Lng)*(c.Lat-a.Lat) - (b.Lat-a.Lat)*(c.Lng-a.Lng)
	switch {
	case v > epsilon:
		return 1
	case v < -epsilon:
		return -1
	}
	return 0
}

// withinBox проверяет, что p лежит в прямоугольнике отрезка ab
func withinBox(p, a, b Coordinate) bool {
	return p.Lng <= math.Max(a.Lng, b.Lng)+epsilon && p.Lng >= math.Min(a.Lng, b.Lng)-epsilon &&
		p.Lat <= math.Max(a.Lat, b.Lat)+epsilon && p.Lat >= math.Min(a.Lat, b.Lat)-epsilon
}

// onSegment проверяет, что p лежит на отрезке ab
func onSegment(p, a, b Coordinate) bool {
	return orientation(a, b, p) == 0 && withinBox(p, a, b)
}

// segmentsIntersect - пересечение отрезков p1p2 и q1q2, включая касание и коллинеарное наложение
func segmentsIntersect(p1, p2, q1, q2 Coordinate) bool {
	o1 := orientation(p1, p2, q1)
	o2 := orientation(p1, p2, q2)
	o3 := orientation(q1, q2, p1)
	o4 := orientation(q1, q2, p2)

	if o1 != o2 && o3 != o4 {
		return true
	}

	switch {
	case o1 == 0 && withinBox(q1, p1, p2):
		return true
	case o2 == 0 && withinBox(q2, p1, p2):
		return true
	case o3 == 0 && withinBox(p1, q1, q2):
		return true
	case o4 == 0 && withinBox(p2, q1, q2):
		return true
	}
	return false
}
