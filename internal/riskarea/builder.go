package riskarea

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/models"
)

const (
	// DefaultRadiusDegrees - радиус геозоны вокруг происшествия, примерно 200 м
	DefaultRadiusDegrees = 0.002
	// DefaultVertexCount - число вершин многоугольника, аппроксимирующего круг
	DefaultVertexCount = 12
)

// Builder строит геозоны из колец и происшествий. Не хранит состояние и не пишет в хранилище.
type Builder struct {
	radiusDegrees float64
	vertexCount   int
	now           func() time.Time
	newID         func() string
}

// Option настраивает Builder
type Option func(*Builder)

// WithRadiusDegrees задает радиус круговой геозоны в градусах
func WithRadiusDegrees(r float64) Option {
	return func(b *Builder) {
		b.radiusDegrees = r
	}
}

// WithVertexCount задает число вершин круговой геозоны
func WithVertexCount(n int) Option {
	return func(b *Builder) {
		b.vertexCount = n
	}
}

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		b.now = now
	}
}

// WithIDGenerator подменяет генератор идентификаторов
func WithIDGenerator(newID func() string) Option {
	return func(b *Builder) {
		b.newID = newID
	}
}

// NewBuilder создает Builder с параметрами по умолчанию
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		radiusDegrees: DefaultRadiusDegrees,
		vertexCount:   DefaultVertexCount,
		now:           func() time.Time { return time.Now().UTC() },
		newID:         func() string { return "crime-area-" + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BuildRiskArea проверяет кольцо, замыкает его при необходимости и присваивает
// новой геозоне идентификатор и время создания
func (b *Builder) BuildRiskArea(label string, ring geo.Ring) (models.RiskArea, error) {
	if len(ring) == 0 {
		return models.RiskArea{}, eris.Wrap(geo.ErrInvalidGeometry, "riskarea: empty ring")
	}
	closed := geo.CloseRing(ring).Clone()
	if err := closed.Validate(); err != nil {
		return models.RiskArea{}, eris.Wrapf(err, "riskarea: build %q", label)
	}

	return models.RiskArea{
		ID:        b.newID(),
		Name:      label,
		Polygon:   closed,
		CreatedAt: b.now(),
	}, nil
}

// BuildFromIncidents строит по одной круговой геозоне на каждое происшествие.
// Результат идет в порядке входных данных; пересекающиеся зоны не объединяются.
func (b *Builder) BuildFromIncidents(incidents []models.Incident) ([]models.RiskArea, error) {
	areas := make([]models.RiskArea, 0, len(incidents))
	for i, inc := range incidents {
		ring, err := geo.CirclePolygon(inc.Location, b.radiusDegrees, b.vertexCount)
		if err != nil {
			return nil, eris.Wrapf(err, "riskarea: incident %d (%s)", i, inc.ID)
		}
		area, err := b.BuildRiskArea(AreaName(inc), ring)
		if err != nil {
			return nil, eris.Wrapf(err, "riskarea: incident %d (%s)", i, inc.ID)
		}
		area.IncidentID = inc.ID
		areas = append(areas, area)
	}
	return areas, nil
}

// AreaName формирует название геозоны из типа происшествия, района и города
func AreaName(inc models.Incident) string {
	return fmt.Sprintf("%s in %s, %s", inc.CrimeType, inc.District, inc.City)
}
