package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom/encoding/geojson"
	"golang.org/x/sync/errgroup"

	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/mapview"
	"github.com/shenikar/safe_route_system/internal/models"
	"github.com/shenikar/safe_route_system/internal/riskarea"
	"github.com/shenikar/safe_route_system/internal/route"
	"github.com/shenikar/safe_route_system/internal/webhook"
)

//go:generate mockgen -source=safety.go -destination=mocks/mock_safety.go -package=mocks

// DefaultBatchConcurrency - число маршрутов пакета, оцениваемых одновременно
const DefaultBatchConcurrency = 8

// RiskAreaStore определяет контракт для сохранения набора геозон
type RiskAreaStore interface {
	Save(ctx context.Context, set *riskarea.Set) bool
	Load(ctx context.Context) *riskarea.Set
	Clear(ctx context.Context) error
}

// IncidentGenerator создает синтетические происшествия
type IncidentGenerator interface {
	Generate(count int) ([]models.Incident, error)
}

// GeneratorFactory создает генератор; seed != nil делает результат воспроизводимым
type GeneratorFactory func(seed *uint64) (IncidentGenerator, error)

// RouteRequest - маршрут из пакетного запроса
type RouteRequest struct {
	Start geo.Coordinate
	End   geo.Coordinate
}

// RebuildResult - итог пересборки геозон
type RebuildResult struct {
	Incidents int  `json:"incidents"`
	RiskAreas int  `json:"riskAreas"`
	Persisted bool `json:"persisted"`
}

// MapLayers - слои карты. Route - последний оцененный маршрут, если он есть.
type MapLayers struct {
	Incidents *geojson.FeatureCollection `json:"incidents"`
	RiskAreas *geojson.FeatureCollection `json:"riskAreas"`
	Route     *geojson.FeatureCollection `json:"route,omitempty"`
}

// SafetyService определяет контракт бизнес-логики: происшествия, геозоны и оценка маршрутов
type SafetyService interface {
	RestoreRiskAreas(ctx context.Context) int
	GenerateIncidents(ctx context.Context, count int, seed *uint64) (RebuildResult, error)
	IngestIncidents(ctx context.Context, incidents []models.Incident) (RebuildResult, error)
	ListIncidents(ctx context.Context) ([]models.Incident, error)
	IncidentStats(ctx context.Context) (models.IncidentStats, error)
	RebuildRiskAreas(ctx context.Context, incidents []models.Incident) (RebuildResult, error)
	CreateRiskArea(ctx context.Context, name string, ring geo.Ring) (models.RiskArea, error)
	ListRiskAreas(ctx context.Context) ([]models.RiskArea, error)
	DeleteRiskArea(ctx context.Context, id string) (bool, error)
	EvaluateRoute(ctx context.Context, start, end geo.Coordinate, incidents []models.Incident) (models.Route, error)
	EvaluateRoutes(ctx context.Context, requests []RouteRequest) ([]models.Route, error)
	CheckLocation(ctx context.Context, point geo.Coordinate) (models.PointCheck, error)
	MapView(ctx context.Context) (MapLayers, error)
}

// Options - необязательные параметры сервиса
type Options struct {
	BatchConcurrency int
	Now              func() time.Time
}

type safetyService struct {
	builder      *riskarea.Builder
	evaluator    *route.Evaluator
	registry     *riskarea.Registry
	store        RiskAreaStore
	publisher    webhook.AlertPublisher
	newGenerator GeneratorFactory
	logger       *logrus.Logger
	concurrency  int
	now          func() time.Time

	// writeMu упорядочивает изменения набора вместе с их сохранением
	writeMu sync.Mutex

	// incidentsMu защищает происшествия и замену набора геозон, собранного из них
	incidentsMu sync.RWMutex
	incidents   []models.Incident

	routeMu   sync.RWMutex
	lastRoute *models.Route
}

func NewSafetyService(
	builder *riskarea.Builder,
	store RiskAreaStore,
	publisher webhook.AlertPublisher,
	newGenerator GeneratorFactory,
	logger *logrus.Logger,
	opts Options,
) SafetyService {
	if publisher == nil {
		publisher = webhook.NoopPublisher{}
	}
	if opts.BatchConcurrency < 1 {
		opts.BatchConcurrency = DefaultBatchConcurrency
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &safetyService{
		builder:      builder,
		evaluator:    route.NewEvaluator(),
		registry:     riskarea.NewRegistry(nil),
		store:        store,
		publisher:    publisher,
		newGenerator: newGenerator,
		logger:       logger,
		concurrency:  opts.BatchConcurrency,
		now:          opts.Now,
		incidents:    []models.Incident{},
	}
}

// RestoreRiskAreas загружает сохраненный набор геозон и делает его активным
func (s *safetyService) RestoreRiskAreas(ctx context.Context) int {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safety",
		"method":  "RestoreRiskAreas",
	})

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	loaded := s.store.Load(ctx)
	_, _ = s.registry.Update(func(*riskarea.Set) (*riskarea.Set, error) { return loaded, nil })

	log.WithField("count", loaded.Len()).Info("Risk areas restored")
	return loaded.Len()
}

// GenerateIncidents заменяет набор происшествий синтетическим и пересобирает геозоны
func (s *safetyService) GenerateIncidents(ctx context.Context, count int, seed *uint64) (RebuildResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safety",
		"method":  "GenerateIncidents",
		"count":   count,
	})
	log.Info("Generating synthetic incidents")

	gen, err := s.newGenerator(seed)
	if err != nil {
		log.WithError(err).Error("Failed to create incident generator")
		return RebuildResult{}, fmt.Errorf("service: could not create generator: %w", err)
	}
	incidents, err := gen.Generate(count)
	if err != nil {
		log.WithError(err).Error("Failed to generate incidents")
		return RebuildResult{}, fmt.Errorf("service: could not generate incidents: %w", err)
	}
	return s.IngestIncidents(ctx, incidents)
}

// IngestIncidents заменяет набор происшествий и пересобирает геозоны
func (s *safetyService) IngestIncidents(ctx context.Context, incidents []models.Incident) (RebuildResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safety",
		"method":  "IngestIncidents",
		"count":   len(incidents),
	})

	stored := make([]models.Incident, len(incidents))
	copy(stored, incidents)

	result, err := s.rebuild(ctx, stored, true)
	if err != nil {
		log.WithError(err).Error("Failed to rebuild risk areas for ingested incidents")
		return RebuildResult{}, err
	}

	log.Info("Incidents ingested successfully")
	return result, nil
}

// ListIncidents возвращает текущий набор происшествий
func (s *safetyService) ListIncidents(ctx context.Context) ([]models.Incident, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.incidentsMu.RLock()
	defer s.incidentsMu.RUnlock()

	out := make([]models.Incident, len(s.incidents))
	copy(out, s.incidents)
	return out, nil
}

// IncidentStats считает распределение происшествий по городам, типам, тяжести и статусам
func (s *safetyService) IncidentStats(ctx context.Context) (models.IncidentStats, error) {
	incidents, err := s.ListIncidents(ctx)
	if err != nil {
		return models.IncidentStats{}, err
	}
	return models.NewIncidentStats(incidents), nil
}

// RebuildRiskAreas строит по геозоне на происшествие и целиком заменяет активный набор.
// incidents == nil означает текущий набор происшествий.
func (s *safetyService) RebuildRiskAreas(ctx context.Context, incidents []models.Incident) (RebuildResult, error) {
	if err := ctx.Err(); err != nil {
		return RebuildResult{}, err
	}
	return s.rebuild(ctx, incidents, false)
}

// rebuild заменяет набор геозон; при replaceIncidents в той же критической секции
// заменяется и набор происшествий
func (s *safetyService) rebuild(ctx context.Context, incidents []models.Incident, replaceIncidents bool) (RebuildResult, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if incidents == nil {
		// происшествия меняются только под writeMu
		s.incidentsMu.RLock()
		incidents = s.incidents
		s.incidentsMu.RUnlock()
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "safety",
		"method":    "RebuildRiskAreas",
		"incidents": len(incidents),
	})
	log.Info("Rebuilding risk areas")

	areas, err := s.builder.BuildFromIncidents(incidents)
	if err != nil {
		log.WithError(err).Warn("Failed to build risk areas")
		return RebuildResult{}, fmt.Errorf("service: could not build risk areas: %w", err)
	}

	s.incidentsMu.Lock()
	set, err := s.registry.Replace(areas)
	if err == nil && replaceIncidents {
		s.incidents = incidents
	}
	s.incidentsMu.Unlock()
	if err != nil {
		log.WithError(err).Error("Failed to replace risk area set")
		return RebuildResult{}, fmt.Errorf("service: could not replace risk areas: %w", err)
	}
	persisted := s.store.Save(ctx, set)

	log.WithFields(logrus.Fields{"risk_areas": set.Len(), "persisted": persisted}).Info("Risk areas rebuilt")
	return RebuildResult{Incidents: len(incidents), RiskAreas: set.Len(), Persisted: persisted}, nil
}

// CreateRiskArea добавляет геозону из переданного кольца
func (s *safetyService) CreateRiskArea(ctx context.Context, name string, ring geo.Ring) (models.RiskArea, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safety",
		"method":  "CreateRiskArea",
		"name":    name,
	})
	log.Info("Attempting to create a risk area")

	area, err := s.builder.BuildRiskArea(name, ring)
	if err != nil {
		log.WithError(err).Warn("Rejected risk area geometry")
		return models.RiskArea{}, fmt.Errorf("service: could not create risk area: %w", err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	set, err := s.registry.Add(area)
	if err != nil {
		log.WithError(err).Error("Failed to add risk area")
		return models.RiskArea{}, fmt.Errorf("service: could not add risk area: %w", err)
	}
	s.store.Save(ctx, set)

	log.WithField("risk_area_id", area.ID).Info("Risk area created successfully")
	return area, nil
}

// ListRiskAreas возвращает активный набор геозон
func (s *safetyService) ListRiskAreas(ctx context.Context) ([]models.RiskArea, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.registry.Current().Areas(), nil
}

// DeleteRiskArea удаляет геозону и сообщает, была ли она в наборе
func (s *safetyService) DeleteRiskArea(ctx context.Context, id string) (bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "safety",
		"method":       "DeleteRiskArea",
		"risk_area_id": id,
	})

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	set, removed := s.registry.Delete(id)
	if !removed {
		log.Warn("Attempted to delete a non-existent risk area")
		return false, nil
	}
	s.store.Save(ctx, set)

	log.Info("Risk area deleted successfully")
	return true, nil
}

// EvaluateRoute оценивает прямой маршрут. Если переданы происшествия, геозоны сначала пересобираются.
// Некорректные концы маршрута отклоняются до пересборки.
func (s *safetyService) EvaluateRoute(ctx context.Context, start, end geo.Coordinate, incidents []models.Incident) (models.Route, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safety",
		"method":  "EvaluateRoute",
		"start":   start.String(),
		"end":     end.String(),
	})

	for _, c := range []geo.Coordinate{start, end} {
		if err := geo.ValidateCoordinate(c); err != nil {
			log.WithError(err).Warn("Rejected route endpoint")
			return models.Route{}, fmt.Errorf("service: could not evaluate route: %w", err)
		}
	}

	if incidents != nil {
		if _, err := s.IngestIncidents(ctx, incidents); err != nil {
			return models.Route{}, err
		}
	}

	result, err := s.evaluator.Evaluate(start, end, s.registry.Current().Areas())
	if err != nil {
		log.WithError(err).Warn("Failed to evaluate route")
		return models.Route{}, fmt.Errorf("service: could not evaluate route: %w", err)
	}

	log.WithFields(logrus.Fields{"is_safe": result.IsSafe, "distance_km": result.DistanceKm}).Info("Route evaluated")
	s.routeMu.Lock()
	s.lastRoute = &result
	s.routeMu.Unlock()

	s.alert(ctx, result)
	return result, nil
}

// EvaluateRoutes оценивает пакет маршрутов по одному снимку набора геозон
func (s *safetyService) EvaluateRoutes(ctx context.Context, requests []RouteRequest) ([]models.Route, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safety",
		"method":  "EvaluateRoutes",
		"count":   len(requests),
	})

	areas := s.registry.Current().Areas()
	results := make([]models.Route, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, req := range requests {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := s.evaluator.Evaluate(req.Start, req.End, areas)
			if err != nil {
				return fmt.Errorf("route %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.WithError(err).Warn("Failed to evaluate route batch")
		return nil, fmt.Errorf("service: could not evaluate routes: %w", err)
	}

	unsafe := 0
	for _, r := range results {
		if !r.IsSafe {
			unsafe++
			s.alert(ctx, r)
		}
	}
	log.WithField("unsafe", unsafe).Info("Route batch evaluated")
	return results, nil
}

// CheckLocation проверяет, находится ли точка в геозоне
func (s *safetyService) CheckLocation(ctx context.Context, point geo.Coordinate) (models.PointCheck, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safety",
		"method":  "CheckLocation",
		"point":   point.String(),
	})
	log.Info("Checking location")

	check, err := s.evaluator.CheckPoint(point, s.registry.Current().Areas())
	if err != nil {
		log.WithError(err).Warn("Failed to check location")
		return models.PointCheck{}, fmt.Errorf("service: could not check location: %w", err)
	}

	log.WithField("in_danger", check.InDanger).Info("Location check completed")
	return check, nil
}

// MapView собирает слои карты из текущих происшествий, геозон и последнего маршрута
func (s *safetyService) MapView(ctx context.Context) (MapLayers, error) {
	if err := ctx.Err(); err != nil {
		return MapLayers{}, err
	}

	s.incidentsMu.RLock()
	layers := MapLayers{
		Incidents: mapview.Incidents(s.incidents),
		RiskAreas: mapview.RiskAreas(s.registry.Current().Areas()),
	}
	s.incidentsMu.RUnlock()

	s.routeMu.RLock()
	if s.lastRoute != nil {
		layers.Route = mapview.Route(*s.lastRoute)
	}
	s.routeMu.RUnlock()
	return layers, nil
}

// alert публикует уведомление об опасном маршруте; ошибка публикации только логируется
func (s *safetyService) alert(ctx context.Context, r models.Route) {
	if r.IsSafe {
		return
	}
	if err := s.publisher.Publish(ctx, webhook.NewRouteAlert(r, s.now().UTC())); err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "safety",
			"method":  "alert",
		}).WithError(err).Warn("Failed to publish route alert")
	}
}
