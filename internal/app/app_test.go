package app

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/safe_route_system/internal/config"
	"github.com/shenikar/safe_route_system/internal/generator"
	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/storage"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	return log
}

func testConfig() *config.Config {
	return &config.Config{
		StoreDriver:       config.StoreMemory,
		StoreKey:          "high_risk_areas",
		RiskRadiusDegrees: 0.002,
		RiskVertexCount:   12,
		GeneratorRadiusKm: 5,
		GeneratorSampling: "angle_radius",
		BatchConcurrency:  4,
	}
}

func TestOpen_Memory(t *testing.T) {
	res, err := Open(context.Background(), testConfig(), testLogger())
	require.NoError(t, err)
	defer res.Close()

	assert.IsType(t, &storage.MemoryStore{}, res.Store)
	assert.Nil(t, res.RedisClient)
	assert.False(t, res.AlertsEnabled(&config.Config{WebhookURL: "http://example.com"}))
}

func TestOpen_SQLite(t *testing.T) {
	cfg := testConfig()
	cfg.StoreDriver = config.StoreSQLite
	cfg.SQLitePath = filepath.Join(t.TempDir(), "areas.db")

	res, err := Open(context.Background(), cfg, testLogger())
	require.NoError(t, err)
	defer res.Close()

	ctx := context.Background()
	require.NoError(t, res.Store.Set(ctx, "k", "v"))
	value, err := res.Store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}

func TestOpen_Errors(t *testing.T) {
	tests := []struct {
		name   string
		driver string
	}{
		{"redis without address", config.StoreRedis},
		{"unknown driver", "etcd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.StoreDriver = tt.driver
			_, err := Open(context.Background(), cfg, testLogger())
			assert.Error(t, err)
		})
	}
}

func TestNewGeneratorFactory(t *testing.T) {
	catalog, err := generator.DefaultCatalog()
	require.NoError(t, err)

	factory, err := NewGeneratorFactory(testConfig(), catalog)
	require.NoError(t, err)

	seed := uint64(7)
	first, err := factory(&seed)
	require.NoError(t, err)
	second, err := factory(&seed)
	require.NoError(t, err)

	a, err := first.Generate(5)
	require.NoError(t, err)
	b, err := second.Generate(5)
	require.NoError(t, err)
	for i := range a {
		assert.Equal(t, a[i].Location, b[i].Location)
		assert.Equal(t, a[i].CrimeType, b[i].CrimeType)
	}

	cfg := testConfig()
	cfg.GeneratorSampling = "spiral"
	_, err = NewGeneratorFactory(cfg, catalog)
	assert.Error(t, err)
}

func TestCityCentres(t *testing.T) {
	catalog, err := generator.DefaultCatalog()
	require.NoError(t, err)

	centres := CityCentres(catalog)

	assert.Len(t, centres, len(catalog.Cities))
	assert.Equal(t, geo.Coordinate{Lng: 77.2090, Lat: 28.6139}, centres["Delhi"])
}

func TestNewSafetyService_GenerateAndEvaluate(t *testing.T) {
	cfg := testConfig()
	log := testLogger()
	catalog, err := generator.DefaultCatalog()
	require.NoError(t, err)

	res, err := Open(context.Background(), cfg, log)
	require.NoError(t, err)
	defer res.Close()

	svc, err := NewSafetyService(cfg, res, catalog, log)
	require.NoError(t, err)

	ctx := context.Background()
	seed := uint64(42)
	result, err := svc.GenerateIncidents(ctx, 20, &seed)
	require.NoError(t, err)
	assert.Equal(t, 20, result.Incidents)
	assert.Equal(t, 20, result.RiskAreas)
	assert.True(t, result.Persisted)

	// Новый сервис поверх того же хранилища восстанавливает набор
	restored, err := NewSafetyService(cfg, res, catalog, log)
	require.NoError(t, err)
	assert.Equal(t, 20, restored.RestoreRiskAreas(ctx))
}
