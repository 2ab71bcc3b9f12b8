package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/models"
	"github.com/shenikar/safe_route_system/internal/riskarea"
	"github.com/shenikar/safe_route_system/internal/storage"
)

// DefaultKey - ключ, под которым хранится набор геозон
const DefaultKey = "high_risk_areas"

// ErrPersistenceUnavailable - хранилище недоступно, набор не сохранен или не прочитан
var ErrPersistenceUnavailable = errors.New("persistence unavailable")

// ErrCorruptPayload - сохраненное значение не удалось разобрать
var ErrCorruptPayload = errors.New("corrupt risk area payload")

// storedArea - запись геозоны в хранилище, полигон в формате GeoJSON
type storedArea struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	IncidentID string          `json:"incidentId,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	Polygon    json.RawMessage `json:"polygon"`
}

// RiskAreaStore сохраняет весь набор геозон одной записью под фиксированным ключом.
// Ошибки хранилища не пробрасываются: они логируются, а вызывающий получает пустой набор или false.
type RiskAreaStore struct {
	kv      storage.KeyValueStore
	key     string
	timeout time.Duration
	log     *logrus.Logger
}

func NewRiskAreaStore(kv storage.KeyValueStore, key string, timeout time.Duration, log *logrus.Logger) *RiskAreaStore {
	if key == "" {
		key = DefaultKey
	}
	return &RiskAreaStore{
		kv:      kv,
		key:     key,
		timeout: timeout,
		log:     log,
	}
}

func (s *RiskAreaStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// Save записывает набор целиком и сообщает, удалось ли это
func (s *RiskAreaStore) Save(ctx context.Context, set *riskarea.Set) bool {
	logger := s.log.WithFields(logrus.Fields{
		"repository": "RiskAreaStore",
		"method":     "Save",
		"key":        s.key,
	})

	payload, err := EncodeAreas(set.Areas())
	if err != nil {
		logger.WithError(err).Error("Failed to encode risk areas")
		return false
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.kv.Set(ctx, s.key, payload); err != nil {
		logger.WithError(fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)).Warn("Risk areas were not persisted")
		return false
	}
	logger.WithField("count", set.Len()).Debug("Risk areas persisted")
	return true
}

// Load читает сохраненный набор. Отсутствие ключа, недоступность хранилища
// и поврежденные данные дают пустой набор.
func (s *RiskAreaStore) Load(ctx context.Context) *riskarea.Set {
	logger := s.log.WithFields(logrus.Fields{
		"repository": "RiskAreaStore",
		"method":     "Load",
		"key":        s.key,
	})

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	payload, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			logger.Debug("No persisted risk areas")
			return riskarea.EmptySet()
		}
		logger.WithError(fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)).Warn("Risk areas were not loaded")
		return riskarea.EmptySet()
	}

	areas, err := DecodeAreas(payload)
	if err != nil {
		logger.WithError(err).Warn("Persisted risk areas are corrupt, starting empty")
		return riskarea.EmptySet()
	}
	set, err := riskarea.NewSet(areas...)
	if err != nil {
		logger.WithError(fmt.Errorf("%w: %v", ErrCorruptPayload, err)).Warn("Persisted risk areas are corrupt, starting empty")
		return riskarea.EmptySet()
	}
	logger.WithField("count", set.Len()).Debug("Risk areas loaded")
	return set
}

// Clear удаляет сохраненный набор
func (s *RiskAreaStore) Clear(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.kv.Remove(ctx, s.key); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}
	return nil
}

// EncodeAreas сериализует геозоны в JSON-массив с полигонами GeoJSON
func EncodeAreas(areas []models.RiskArea) (string, error) {
	records := make([]storedArea, 0, len(areas))
	for _, a := range areas {
		polygon, err := geojson.Marshal(a.Polygon.Polygon())
		if err != nil {
			return "", fmt.Errorf("failed to encode polygon of %s: %w", a.ID, err)
		}
		records = append(records, storedArea{
			ID:         a.ID,
			Name:       a.Name,
			IncidentID: a.IncidentID,
			CreatedAt:  a.CreatedAt,
			Polygon:    polygon,
		})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("failed to encode risk areas: %w", err)
	}
	return string(data), nil
}

// DecodeAreas разбирает результат EncodeAreas
func DecodeAreas(payload string) ([]models.RiskArea, error) {
	var records []storedArea
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptPayload, err)
	}

	areas := make([]models.RiskArea, 0, len(records))
	for _, r := range records {
		var g geom.T
		if err := geojson.Unmarshal(r.Polygon, &g); err != nil {
			return nil, fmt.Errorf("%w: area %s: %v", ErrCorruptPayload, r.ID, err)
		}
		polygon, ok := g.(*geom.Polygon)
		if !ok {
			return nil, fmt.Errorf("%w: area %s: expected Polygon, got %T", ErrCorruptPayload, r.ID, g)
		}
		ring, err := geo.RingFromPolygon(polygon)
		if err != nil {
			return nil, fmt.Errorf("%w: area %s: %v", ErrCorruptPayload, r.ID, err)
		}
		areas = append(areas, models.RiskArea{
			ID:         r.ID,
			Name:       r.Name,
			Polygon:    ring,
			CreatedAt:  r.CreatedAt,
			IncidentID: r.IncidentID,
		})
	}
	return areas, nil
}
