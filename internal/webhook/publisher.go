package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	// AlertQueueKey - список Redis, в который складываются уведомления об опасных маршрутах
	AlertQueueKey = "route_alerts"
)

// RouteAlert - уведомление о маршруте, проходящем через геозону
type RouteAlert struct {
	Start              geo.Coordinate `json:"start"`
	End                geo.Coordinate `json:"end"`
	DistanceKm         float64        `json:"distanceKm"`
	IntersectedAreaIDs []string       `json:"intersectedAreaIds"`
	Timestamp          time.Time      `json:"timestamp"`
}

// NewRouteAlert собирает уведомление по результату оценки маршрута
func NewRouteAlert(route models.Route, at time.Time) RouteAlert {
	return RouteAlert{
		Start:              route.Start,
		End:                route.End,
		DistanceKm:         route.DistanceKm,
		IntersectedAreaIDs: route.IntersectedAreaIDs,
		Timestamp:          at,
	}
}

// AlertPublisher - интерфейс для публикации уведомлений
type AlertPublisher interface {
	Publish(ctx context.Context, alert RouteAlert) error
}

// RedisAlertPublisher - реализация AlertPublisher поверх очереди Redis
type RedisAlertPublisher struct {
	redisClient redis.Cmdable
}

// NewRedisAlertPublisher создает новый RedisAlertPublisher
func NewRedisAlertPublisher(client redis.Cmdable) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		redisClient: client,
	}
}

// Publish кладет уведомление в левую часть очереди
func (p *RedisAlertPublisher) Publish(ctx context.Context, alert RouteAlert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal route alert: %w", err)
	}

	if err := p.redisClient.LPush(ctx, AlertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish route alert to Redis: %w", err)
	}
	return nil
}

// NoopPublisher отбрасывает уведомления, когда Redis не настроен
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, RouteAlert) error {
	return nil
}
