// Package app собирает зависимости сервиса по конфигурации: хранилище, Redis, генератор и сервис безопасности.
package app

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/safe_route_system/internal/config"
	"github.com/shenikar/safe_route_system/internal/generator"
	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/repository"
	"github.com/shenikar/safe_route_system/internal/riskarea"
	"github.com/shenikar/safe_route_system/internal/service"
	"github.com/shenikar/safe_route_system/internal/storage"
	"github.com/shenikar/safe_route_system/internal/webhook"
	"github.com/shenikar/safe_route_system/pkg/postgres"
	redisclient "github.com/shenikar/safe_route_system/pkg/redis"
	"github.com/shenikar/safe_route_system/pkg/sqlite"
)

// MigrationsSource - расположение миграций Postgres относительно рабочей директории
const MigrationsSource = "file://migrations"

// Resources - открытые внешние ресурсы приложения
type Resources struct {
	Store storage.KeyValueStore
	// RedisClient равен nil, если REDIS_ADDR не задан
	RedisClient *redis.Client

	closers []func()
}

// Close освобождает ресурсы в обратном порядке открытия
func (r *Resources) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
	r.closers = nil
}

// Open подключает Redis (если задан) и открывает хранилище, выбранное STORE_DRIVER
func Open(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*Resources, error) {
	res := &Resources{}

	if cfg.RedisAddr != "" {
		client, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		res.RedisClient = client
		res.closers = append(res.closers, func() { _ = client.Close() })
		log.Info("Successfully connected to Redis")
	}

	switch cfg.StoreDriver {
	case config.StoreMemory, "":
		res.Store = storage.NewMemoryStore()
	case config.StoreRedis:
		if res.RedisClient == nil {
			res.Close()
			return nil, eris.New("redis store requires REDIS_ADDR")
		}
		res.Store = storage.NewRedisStore(res.RedisClient)
	case config.StorePostgres:
		if err := postgres.RunMigrations(cfg.DatabaseURL, MigrationsSource, log); err != nil {
			res.Close()
			return nil, err
		}
		pool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
		if err != nil {
			res.Close()
			return nil, err
		}
		res.closers = append(res.closers, pool.Close)
		res.Store = storage.NewPostgresStore(pool)
		log.Info("Successfully connected to PostgreSQL")
	case config.StoreSQLite:
		db, err := sqlite.NewSQLiteDB(cfg.SQLitePath)
		if err != nil {
			res.Close()
			return nil, err
		}
		res.closers = append(res.closers, func() { _ = db.Close() })
		store, err := storage.NewSQLiteStore(ctx, db)
		if err != nil {
			res.Close()
			return nil, err
		}
		res.Store = store
		log.WithField("path", cfg.SQLitePath).Info("Opened SQLite store")
	default:
		res.Close()
		return nil, eris.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	return res, nil
}

// AlertsEnabled сообщает, нужно ли публиковать уведомления об опасных маршрутах
func (r *Resources) AlertsEnabled(cfg *config.Config) bool {
	return r.RedisClient != nil && cfg.WebhookURL != ""
}

// NewGeneratorFactory создает фабрику генераторов с параметрами из конфигурации
func NewGeneratorFactory(cfg *config.Config, catalog *generator.Catalog) (service.GeneratorFactory, error) {
	sampling, err := generator.ParseSampling(cfg.GeneratorSampling)
	if err != nil {
		return nil, eris.Wrap(err, "generator sampling")
	}
	radius := cfg.GeneratorRadiusKm
	if radius <= 0 {
		radius = generator.DefaultRadiusKm
	}

	return func(seed *uint64) (service.IncidentGenerator, error) {
		opts := []generator.Option{
			generator.WithCatalog(catalog),
			generator.WithRadiusKm(radius),
			generator.WithSampling(sampling),
		}
		if seed != nil {
			opts = append(opts, generator.WithSeed(*seed))
		}
		gen, err := generator.New(opts...)
		if err != nil {
			return nil, err
		}
		return gen, nil
	}, nil
}

// CityCentres возвращает центры городов справочника для импорта записей без координат
func CityCentres(catalog *generator.Catalog) map[string]geo.Coordinate {
	centres := make(map[string]geo.Coordinate, len(catalog.Cities))
	for _, city := range catalog.Cities {
		centres[city.Name] = city.Center
	}
	return centres
}

// NewSafetyService собирает сервис безопасности поверх открытых ресурсов
func NewSafetyService(cfg *config.Config, res *Resources, catalog *generator.Catalog, log *logrus.Logger) (service.SafetyService, error) {
	builder := riskarea.NewBuilder(
		riskarea.WithRadiusDegrees(cfg.RiskRadiusDegrees),
		riskarea.WithVertexCount(cfg.RiskVertexCount),
	)

	storeTimeout := cfg.StoreTimeout
	if storeTimeout <= 0 {
		storeTimeout = 3 * time.Second
	}
	areaStore := repository.NewRiskAreaStore(res.Store, cfg.StoreKey, storeTimeout, log)

	var publisher webhook.AlertPublisher = webhook.NoopPublisher{}
	if res.AlertsEnabled(cfg) {
		publisher = webhook.NewRedisAlertPublisher(res.RedisClient)
	}

	newGenerator, err := NewGeneratorFactory(cfg, catalog)
	if err != nil {
		return nil, err
	}

	return service.NewSafetyService(builder, areaStore, publisher, newGenerator, log, service.Options{
		BatchConcurrency: cfg.BatchConcurrency,
	}), nil
}
