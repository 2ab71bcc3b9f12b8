package geo

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(minLng, minLat, maxLng, maxLat float64) Ring {
	return Ring{
		{Lng: minLng, Lat: minLat},
		{Lng: maxLng, Lat: minLat},
		{Lng: maxLng, Lat: maxLat},
		{Lng: minLng, Lat: maxLat},
		{Lng: minLng, Lat: minLat},
	}
}

func TestGreatCircleDistanceKm_Symmetric(t *testing.T) {
	points := []Coordinate{
		{Lng: 77.2090, Lat: 28.6139},
		{Lng: 72.8777, Lat: 19.0760},
		{Lng: 0, Lat: 0},
		{Lng: -179.5, Lat: -45},
		{Lng: 179.5, Lat: 89.9},
	}
	for _, a := range points {
		self, err := GreatCircleDistanceKm(a, a)
		require.NoError(t, err)
		assert.Equal(t, 0.0, self)

		for _, b := range points {
			ab, err := GreatCircleDistanceKm(a, b)
			require.NoError(t, err)
			ba, err := GreatCircleDistanceKm(b, a)
			require.NoError(t, err)
			assert.InDelta(t, ab, ba, 1e-9)
			assert.GreaterOrEqual(t, ab, 0.0)
			assert.False(t, math.IsNaN(ab))
		}
	}
}

func TestGreatCircleDistanceKm_KnownValues(t *testing.T) {
	d, err := GreatCircleDistanceKm(Coordinate{Lng: 77.0, Lat: 28.0}, Coordinate{Lng: 77.1, Lat: 28.1})
	require.NoError(t, err)
	assert.InDelta(t, 14.83, d, 0.01)

	// Дели - Мумбаи, около 1148 км
	d, err = GreatCircleDistanceKm(Coordinate{Lng: 77.2090, Lat: 28.6139}, Coordinate{Lng: 72.8777, Lat: 19.0760})
	require.NoError(t, err)
	assert.InDelta(t, 1148, d, 2)
}

func TestGreatCircleDistanceKm_InvalidCoordinate(t *testing.T) {
	_, err := GreatCircleDistanceKm(Coordinate{Lng: math.NaN(), Lat: 0}, Coordinate{})
	assert.True(t, errors.Is(err, ErrInvalidCoordinate))

	_, err = GreatCircleDistanceKm(Coordinate{}, Coordinate{Lng: 0, Lat: 91})
	assert.True(t, errors.Is(err, ErrInvalidCoordinate))
}

func TestCirclePolygon_ClosedAndOnRadius(t *testing.T) {
	center := Coordinate{Lng: 77.2090, Lat: 28.6139}
	radius := 0.002

	ring, err := CirclePolygon(center, radius, 12)
	require.NoError(t, err)
	require.Len(t, ring, 13)
	assert.Equal(t, ring[0], ring[len(ring)-1])
	require.NoError(t, ring.Validate())

	// Вершины лежат на окружности в градусах; в километрах расстояние
	// меняется от r*cos(lat) до r по мере поворота
	maxKm := radius * 2 * math.Pi * EarthRadiusKm / 360
	minKm := maxKm * math.Cos(center.Lat*math.Pi/180)
	for _, v := range ring {
		planar := math.Hypot(v.Lng-center.Lng, v.Lat-center.Lat)
		assert.InDelta(t, radius, planar, 1e-12)

		km, err := GreatCircleDistanceKm(center, v)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, km, minKm*0.999)
		assert.LessOrEqual(t, km, maxKm*1.001)
	}
}

func TestCirclePolygon_Deterministic(t *testing.T) {
	center := Coordinate{Lng: 80.2707, Lat: 13.0827}
	a, err := CirclePolygon(center, 0.002, 12)
	require.NoError(t, err)
	b, err := CirclePolygon(center, 0.002, 12)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCirclePolygon_Invalid(t *testing.T) {
	_, err := CirclePolygon(Coordinate{}, 0, 12)
	assert.True(t, errors.Is(err, ErrInvalidGeometry))

	_, err = CirclePolygon(Coordinate{}, 0.002, 2)
	assert.True(t, errors.Is(err, ErrInvalidGeometry))

	_, err = CirclePolygon(Coordinate{Lng: 200}, 0.002, 12)
	assert.True(t, errors.Is(err, ErrInvalidCoordinate))
}

func TestPointInPolygon(t *testing.T) {
	ring := square(0, 0, 1, 1)

	tests := []struct {
		name  string
		point Coordinate
		want  bool
	}{
		{"center", Coordinate{Lng: 0.5, Lat: 0.5}, true},
		{"outside right", Coordinate{Lng: 1.5, Lat: 0.5}, false},
		{"outside below", Coordinate{Lng: 0.5, Lat: -0.1}, false},
		{"on edge", Coordinate{Lng: 1, Lat: 0.5}, true},
		{"on bottom edge", Coordinate{Lng: 0.25, Lat: 0}, true},
		{"on vertex", Coordinate{Lng: 0, Lat: 0}, true},
		{"on top vertex", Coordinate{Lng: 1, Lat: 1}, true},
		{"collinear outside", Coordinate{Lng: 2, Lat: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PointInPolygon(tt.point, ring)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPointInPolygon_OpenRingIsClosed(t *testing.T) {
	open := square(0, 0, 1, 1)[:4]
	got, err := PointInPolygon(Coordinate{Lng: 0.5, Lat: 0.5}, open)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestPointInPolygon_Concave(t *testing.T) {
	// П-образный полигон: выемка сверху
	ring := Ring{
		{Lng: 0, Lat: 0}, {Lng: 3, Lat: 0}, {Lng: 3, Lat: 3}, {Lng: 2, Lat: 3},
		{Lng: 2, Lat: 1}, {Lng: 1, Lat: 1}, {Lng: 1, Lat: 3}, {Lng: 0, Lat: 3},
		{Lng: 0, Lat: 0},
	}
	in, err := PointInPolygon(Coordinate{Lng: 0.5, Lat: 2}, ring)
	require.NoError(t, err)
	assert.True(t, in)

	notch, err := PointInPolygon(Coordinate{Lng: 1.5, Lat: 2}, ring)
	require.NoError(t, err)
	assert.False(t, notch)
}

func TestPointInPolygon_InvalidGeometry(t *testing.T) {
	_, err := PointInPolygon(Coordinate{}, Ring{})
	assert.True(t, errors.Is(err, ErrInvalidGeometry))

	_, err = PointInPolygon(Coordinate{}, Ring{{Lng: 0, Lat: 0}, {Lng: 1, Lat: 1}, {Lng: 0, Lat: 0}})
	assert.True(t, errors.Is(err, ErrInvalidGeometry))

	bad := square(0, 0, 1, 1)
	bad[2] = Coordinate{Lng: math.Inf(1), Lat: 1}
	_, err = PointInPolygon(Coordinate{}, bad)
	assert.True(t, errors.Is(err, ErrInvalidGeometry))
}

func TestLineIntersectsPolygon(t *testing.T) {
	ring := square(0, 0, 1, 1)

	tests := []struct {
		name string
		line []Coordinate
		want bool
	}{
		{"crosses through", []Coordinate{{Lng: -1, Lat: 0.5}, {Lng: 2, Lat: 0.5}}, true},
		{"fully inside", []Coordinate{{Lng: 0.2, Lat: 0.2}, {Lng: 0.8, Lat: 0.8}}, true},
		{"starts inside", []Coordinate{{Lng: 0.5, Lat: 0.5}, {Lng: 5, Lat: 5}}, true},
		{"touches vertex", []Coordinate{{Lng: -1, Lat: 1}, {Lng: 1, Lat: -1}}, true},
		{"runs along edge", []Coordinate{{Lng: -1, Lat: 0}, {Lng: 2, Lat: 0}}, true},
		{"misses", []Coordinate{{Lng: 2, Lat: 2}, {Lng: 3, Lat: 3}}, false},
		{"passes diagonally outside", []Coordinate{{Lng: -1, Lat: 1.5}, {Lng: 1.5, Lat: 3}}, false},
		{"single point inside", []Coordinate{{Lng: 0.5, Lat: 0.5}}, true},
		{"single point outside", []Coordinate{{Lng: 5, Lat: 5}}, false},
		{"zero length inside", []Coordinate{{Lng: 0.5, Lat: 0.5}, {Lng: 0.5, Lat: 0.5}}, true},
		{"polyline second segment crosses", []Coordinate{{Lng: 2, Lat: 2}, {Lng: 2, Lat: 0.5}, {Lng: 0.5, Lat: 0.5}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LineIntersectsPolygon(tt.line, ring)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLineIntersectsPolygon_Invalid(t *testing.T) {
	_, err := LineIntersectsPolygon(nil, square(0, 0, 1, 1))
	assert.True(t, errors.Is(err, ErrInvalidGeometry))

	_, err = LineIntersectsPolygon([]Coordinate{{Lng: math.NaN()}, {}}, square(0, 0, 1, 1))
	assert.True(t, errors.Is(err, ErrInvalidGeometry))

	_, err = LineIntersectsPolygon([]Coordinate{{}, {Lng: 1}}, nil)
	assert.True(t, errors.Is(err, ErrInvalidGeometry))
}

func TestCoordinate_JSON(t *testing.T) {
	data, err := json.Marshal(Coordinate{Lng: 77.209, Lat: 28.6139})
	require.NoError(t, err)
	assert.JSONEq(t, `[77.209, 28.6139]`, string(data))

	var c Coordinate
	require.Error(t, json.Unmarshal([]byte(`[1]`), &c))
	require.Error(t, json.Unmarshal([]byte(`{"lng": 1}`), &c))
}

func TestRing_PolygonRoundTrip(t *testing.T) {
	ring, err := CirclePolygon(Coordinate{Lng: 72.8777, Lat: 19.0760}, 0.002, 12)
	require.NoError(t, err)

	back, err := RingFromPolygon(ring.Polygon())
	require.NoError(t, err)
	assert.Equal(t, ring, back)

	_, err = RingFromPolygon(nil)
	assert.True(t, errors.Is(err, ErrInvalidGeometry))
}

func TestCloseRing(t *testing.T) {
	open := []Coordinate{{Lng: 0, Lat: 0}, {Lng: 1, Lat: 0}, {Lng: 1, Lat: 1}}
	closed := CloseRing(open)
	require.Len(t, closed, 4)
	assert.True(t, closed.IsClosed())
	assert.Len(t, open, 3)

	again := CloseRing(closed)
	assert.Equal(t, closed, again)
	assert.Equal(t, 3, closed.DistinctVertices())
}
