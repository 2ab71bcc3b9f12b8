// Package generator создает синтетические происшествия для демонстрации и тестов
package generator

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/models"
)

const (
	// DefaultCount - размер набора по умолчанию
	DefaultCount = 200
	// DefaultRadiusKm - радиус разброса происшествий вокруг центра города
	DefaultRadiusKm = 5.0
	// Window - происшествия датируются последними 30 днями
	Window = 30 * 24 * time.Hour
)

// ErrInvalidCount - запрошено отрицательное число происшествий
var ErrInvalidCount = errors.New("generator: count must not be negative")

// Sampling - способ выбора точки внутри круга
type Sampling string

const (
	// AngleRadius - угол и радиус равномерны, точки гуще у центра
	AngleRadius Sampling = "angle_radius"
	// UniformDisk - равномерное распределение по площади круга
	UniformDisk Sampling = "uniform_disk"
)

// ParseSampling разбирает название способа выборки
func ParseSampling(s string) (Sampling, error) {
	switch Sampling(s) {
	case "", AngleRadius:
		return AngleRadius, nil
	case UniformDisk:
		return UniformDisk, nil
	}
	return "", fmt.Errorf("unknown sampling %q", s)
}

// Generator создает происшествия по справочнику. Безопасен для конкурентного вызова.
type Generator struct {
	catalog  *Catalog
	radiusKm float64
	sampling Sampling
	now      func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

// Option настраивает Generator
type Option func(*Generator)

// WithSeed делает результат воспроизводимым
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.rnd = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

func WithRadiusKm(km float64) Option {
	return func(g *Generator) {
		g.radiusKm = km
	}
}

func WithSampling(s Sampling) Option {
	return func(g *Generator) {
		g.sampling = s
	}
}

func WithCatalog(c *Catalog) Option {
	return func(g *Generator) {
		g.catalog = c
	}
}

// New создает генератор со встроенным справочником
func New(opts ...Option) (*Generator, error) {
	g := &Generator{
		radiusKm: DefaultRadiusKm,
		sampling: AngleRadius,
		now:      time.Now,
		rnd:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.catalog == nil {
		c, err := DefaultCatalog()
		if err != nil {
			return nil, err
		}
		g.catalog = c
	}
	if g.radiusKm < 0 || math.IsNaN(g.radiusKm) || math.IsInf(g.radiusKm, 0) {
		return nil, fmt.Errorf("generator: invalid radius %v km", g.radiusKm)
	}
	if _, err := ParseSampling(string(g.sampling)); err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	return g, nil
}

// Generate создает ровно count происшествий
func (g *Generator) Generate(count int) ([]models.Incident, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now().UTC()
	incidents := make([]models.Incident, 0, count)
	for i := 0; i < count; i++ {
		city := g.catalog.Cities[g.rnd.IntN(len(g.catalog.Cities))]
		district := city.Districts[g.rnd.IntN(len(city.Districts))]
		crime := g.catalog.CrimeTypes[g.rnd.IntN(len(g.catalog.CrimeTypes))]

		location := g.location(city.Center)
		// Точка у центра на границе допустимого диапазона может выйти за пределы
		if err := geo.ValidateCoordinate(location); err != nil {
			return nil, fmt.Errorf("generator: incident %d in %s: %w", i, city.Name, err)
		}

		incidents = append(incidents, models.Incident{
			ID:            g.incidentID(),
			City:          city.Name,
			District:      district,
			Location:      location,
			CrimeType:     crime.Type,
			Description:   crime.Descriptions[g.rnd.IntN(len(crime.Descriptions))],
			Timestamp:     now.Add(-time.Duration(g.rnd.Int64N(int64(Window)))),
			Severity:      crime.Severities[g.rnd.IntN(len(crime.Severities))],
			Status:        models.Statuses[g.rnd.IntN(len(models.Statuses))],
			PoliceStation: district + " Police Station",
		})
	}
	return incidents, nil
}

// location выбирает точку в круге радиуса radiusKm вокруг центра
func (g *Generator) location(center geo.Coordinate) geo.Coordinate {
	radiusDeg := g.radiusKm / geo.KmPerDegree
	angle := g.rnd.Float64() * 2 * math.Pi
	u := g.rnd.Float64()
	if g.sampling == UniformDisk {
		u = math.Sqrt(u)
	}
	r := u * radiusDeg
	return geo.Coordinate{
		Lng: center.Lng + r*math.Cos(angle),
		Lat: center.Lat + r*math.Sin(angle),
	}
}

// incidentID возвращает "incident-" и 9 символов base36
func (g *Generator) incidentID() string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, 9)
	for i := range b {
		b[i] = alphabet[g.rnd.IntN(len(alphabet))]
	}
	return "incident-" + string(b)
}

// Seed преобразует строку в зерно генератора: число как есть, иначе хэш строки
func Seed(s string) uint64 {
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return v
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}
