package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/safe_route_system/internal/config"
	"github.com/shenikar/safe_route_system/internal/generator"
	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/ingest"
	"github.com/shenikar/safe_route_system/internal/mapview"
	"github.com/shenikar/safe_route_system/internal/models"
	"github.com/shenikar/safe_route_system/internal/service"
	"github.com/shenikar/safe_route_system/internal/service/mocks"
)

var apiKeyHeader = map[string]string{"X-API-Key": "test-api-key"}

// newTestHandler создает Handler с мокированным сервисом и ключом test-api-key
func newTestHandler(t *testing.T) (*Handler, *mocks.MockSafetyService, *gin.Engine) {
	return newTestHandlerWithConfig(t, &config.Config{
		APIKeys: []string{"test-api-key"},
	})
}

func newTestHandlerWithConfig(t *testing.T, cfg *config.Config) (*Handler, *mocks.MockSafetyService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockSafetyService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	importer := ingest.NewImporter(map[string]geo.Coordinate{
		"Delhi": {Lng: 77.2090, Lat: 28.6139},
	}, func() time.Time { return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC) })

	handler := NewHandler(mockService, importer, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestHealthCheck_NoAuth(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAuth_MissingAndInvalidKey(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/risk-areas", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = makeRequest(router, http.MethodGet, "/api/v1/risk-areas", nil, map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_BearerToken(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().ListRiskAreas(gomock.Any()).Return([]models.RiskArea{}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/risk-areas", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestAuth_DisabledWithoutKeys(t *testing.T) {
	_, mockService, router := newTestHandlerWithConfig(t, &config.Config{})
	mockService.EXPECT().ListRiskAreas(gomock.Any()).Return([]models.RiskArea{}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/risk-areas", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit_Exceeded(t *testing.T) {
	_, mockService, router := newTestHandlerWithConfig(t, &config.Config{
		RateLimitRPS:   0.001,
		RateLimitBurst: 1,
	})
	mockService.EXPECT().ListRiskAreas(gomock.Any()).Return([]models.RiskArea{}, nil).Times(1)

	first := makeRequest(router, http.MethodGet, "/api/v1/risk-areas", nil)
	second := makeRequest(router, http.MethodGet, "/api/v1/risk-areas", nil)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestGenerateIncidents_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	seed := uint64(42)
	mockService.EXPECT().
		GenerateIncidents(gomock.Any(), 50, gomock.Eq(&seed)).
		Return(service.RebuildResult{Incidents: 50, RiskAreas: 50, Persisted: true}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/generate",
		jsonBody(t, GenerateIncidentsRequest{Count: 50, Seed: &seed}), apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"incidents":50,"riskAreas":50,"persisted":true}`, w.Body.String())
}

func TestGenerateIncidents_DefaultCount(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		GenerateIncidents(gomock.Any(), generator.DefaultCount, gomock.Nil()).
		Return(service.RebuildResult{Incidents: generator.DefaultCount, RiskAreas: generator.DefaultCount}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/generate",
		strings.NewReader(`{}`), apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGenerateIncidents_NegativeCountFromService(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		GenerateIncidents(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(service.RebuildResult{}, fmt.Errorf("service: could not generate incidents: %w", generator.ErrInvalidCount))

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/generate",
		strings.NewReader(`{"count":3}`), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateIncidents_ValidationError(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/generate",
		strings.NewReader(`{"count":-5}`), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateIncidents_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		GenerateIncidents(gomock.Any(), 10, gomock.Nil()).
		Return(service.RebuildResult{}, errors.New("generator failed"))

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/generate",
		strings.NewReader(`{"count":10}`), apiKeyHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "generator failed")
}

func TestImportIncidents_CSV(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	data := "CRIME_ID,CITY,DISTRICT,STATE,CRIME_HEAD\n" +
		"C1,Delhi,New Delhi,Delhi,THEFT\n" +
		",,,Delhi,MURDER\n"

	mockService.EXPECT().
		IngestIncidents(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, incidents []models.Incident) (service.RebuildResult, error) {
			require.Len(t, incidents, 1)
			assert.Equal(t, "C1", incidents[0].ID)
			assert.Equal(t, geo.Coordinate{Lng: 77.2090, Lat: 28.6139}, incidents[0].Location)
			return service.RebuildResult{Incidents: 1, RiskAreas: 1, Persisted: true}, nil
		})

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/import",
		strings.NewReader(data), apiKeyHeader, map[string]string{"Content-Type": "text/csv; charset=utf-8"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"incidents":1,"riskAreas":1,"persisted":true}`, w.Body.String())
}

func TestImportIncidents_CSVMissingColumns(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/import",
		strings.NewReader("CITY,DISTRICT\nDelhi,New Delhi\n"), apiKeyHeader, map[string]string{"Content-Type": "text/csv"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportIncidents_JSONInvalidLocation(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/import",
		strings.NewReader(`[{"id":"x","location":[77.2,95]}]`), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListIncidents(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	incidents := []models.Incident{
		{
			ID:        "incident-abc",
			City:      "Delhi",
			District:  "New Delhi",
			Location:  geo.Coordinate{Lng: 77.2, Lat: 28.6},
			CrimeType: models.CrimeTheft,
			Severity:  models.SeverityMedium,
			Status:    models.StatusReported,
		},
	}
	mockService.EXPECT().ListIncidents(gomock.Any()).Return(incidents, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents", nil, apiKeyHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "incident-abc", resp[0].ID)
	assert.Equal(t, "theft", resp[0].CrimeType)
	assert.Equal(t, geo.Coordinate{Lng: 77.2, Lat: 28.6}, resp[0].Location)
}

func TestGetStats(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	stats := models.IncidentStats{
		Total:      2,
		ByCity:     map[string]int{"Delhi": 2},
		ByType:     map[models.CrimeType]int{models.CrimeTheft: 1, models.CrimeAssault: 1},
		BySeverity: map[models.Severity]int{models.SeverityMedium: 1, models.SeverityHigh: 1},
		ByStatus:   map[models.Status]int{models.StatusReported: 2},
	}
	mockService.EXPECT().IncidentStats(gomock.Any()).Return(stats, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/stats", nil, apiKeyHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 1, resp.BySeverity["high"])
	assert.Equal(t, map[string]int{"theft": 1, "assault": 1}, resp.ByType)
	assert.Equal(t, 2, resp.ByStatus["reported"])
}

func TestCreateRiskArea_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	coords := []geo.Coordinate{{Lng: 0, Lat: 0}, {Lng: 1, Lat: 0}, {Lng: 1, Lat: 1}}
	created := models.RiskArea{
		ID:        "area-1",
		Name:      "manual",
		Polygon:   geo.Ring{{Lng: 0, Lat: 0}, {Lng: 1, Lat: 0}, {Lng: 1, Lat: 1}, {Lng: 0, Lat: 0}},
		CreatedAt: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
	}
	mockService.EXPECT().
		CreateRiskArea(gomock.Any(), "manual", geo.Ring(coords)).
		Return(created, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/risk-areas",
		jsonBody(t, CreateRiskAreaRequest{Name: "manual", Coordinates: coords}), apiKeyHeader)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp RiskAreaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "area-1", resp.ID)
	assert.Len(t, resp.Coordinates, 4)
	assert.Contains(t, w.Body.String(), `"coordinates":[[0,0],[1,0],[1,1],[0,0]]`)
}

func TestCreateRiskArea_InvalidGeometry(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		CreateRiskArea(gomock.Any(), "bad", gomock.Any()).
		Return(models.RiskArea{}, geo.ErrInvalidGeometry)

	w := makeRequest(router, http.MethodPost, "/api/v1/risk-areas",
		strings.NewReader(`{"name":"bad","coordinates":[[0,0],[0,0],[1,1]]}`), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRiskArea_ValidationError(t *testing.T) {
	_, _, router := newTestHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"too few coordinates", `{"name":"x","coordinates":[[0,0],[1,1]]}`},
		{"missing name", `{"coordinates":[[0,0],[1,0],[1,1]]}`},
		{"malformed coordinate", `{"name":"x","coordinates":[[0,0,0],[1,0],[1,1]]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := makeRequest(router, http.MethodPost, "/api/v1/risk-areas", strings.NewReader(tt.body), apiKeyHeader)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestDeleteRiskArea(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().DeleteRiskArea(gomock.Any(), "area-1").Return(true, nil)
	w := makeRequest(router, http.MethodDelete, "/api/v1/risk-areas/area-1", nil, apiKeyHeader)
	assert.Equal(t, http.StatusNoContent, w.Code)

	mockService.EXPECT().DeleteRiskArea(gomock.Any(), "missing").Return(false, nil)
	w = makeRequest(router, http.MethodDelete, "/api/v1/risk-areas/missing", nil, apiKeyHeader)
	assert.Equal(t, http.StatusNotFound, w.Code)

	mockService.EXPECT().DeleteRiskArea(gomock.Any(), "boom").Return(false, errors.New("store down"))
	w = makeRequest(router, http.MethodDelete, "/api/v1/risk-areas/boom", nil, apiKeyHeader)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRebuildRiskAreas(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		RebuildRiskAreas(gomock.Any(), gomock.Nil()).
		Return(service.RebuildResult{Incidents: 3, RiskAreas: 3, Persisted: false}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/risk-areas/rebuild", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"incidents":3,"riskAreas":3,"persisted":false}`, w.Body.String())
}

func TestEvaluateRoute_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	start := geo.Coordinate{Lng: 77.0, Lat: 28.0}
	end := geo.Coordinate{Lng: 77.1, Lat: 28.1}
	mockService.EXPECT().
		EvaluateRoute(gomock.Any(), start, end, gomock.Nil()).
		Return(models.Route{
			Start:      start,
			End:        end,
			Geometry:   []geo.Coordinate{start, end},
			DistanceKm: 14.83,
			IsSafe:     true,
		}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/routes/evaluate",
		strings.NewReader(`{"start":[77.0,28.0],"end":[77.1,28.1]}`), apiKeyHeader)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"start":[77,28],
		"end":[77.1,28.1],
		"geometry":[[77,28],[77.1,28.1]],
		"distanceKm":14.83,
		"durationSeconds":null,
		"isSafe":true,
		"intersectedAreaIds":[]
	}`, w.Body.String())
}

func TestEvaluateRoute_WithIncidents(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		EvaluateRoute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Len(1)).
		Return(models.Route{IsSafe: false, IntersectedAreaIDs: []string{"area-1"}}, nil)

	body := `{"start":[77.2,28.6],"end":[77.3,28.7],"incidents":[{"id":"i1","location":[77.25,28.65],"crimeType":"theft"}]}`
	w := makeRequest(router, http.MethodPost, "/api/v1/routes/evaluate", strings.NewReader(body), apiKeyHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp RouteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.IsSafe)
	assert.Equal(t, []string{"area-1"}, resp.IntersectedAreaIDs)
}

func TestEvaluateRoute_InvalidCoordinate(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		EvaluateRoute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Route{}, geo.ErrInvalidCoordinate)

	w := makeRequest(router, http.MethodPost, "/api/v1/routes/evaluate",
		strings.NewReader(`{"start":[77.0,91.0],"end":[77.1,28.1]}`), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEvaluateRoute_MissingEnd(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/routes/evaluate",
		strings.NewReader(`{"start":[77.0,28.0]}`), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEvaluateRoutes_Batch(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expected := []service.RouteRequest{
		{Start: geo.Coordinate{Lng: 77.0, Lat: 28.0}, End: geo.Coordinate{Lng: 77.1, Lat: 28.1}},
		{Start: geo.Coordinate{Lng: 72.8, Lat: 19.0}, End: geo.Coordinate{Lng: 72.9, Lat: 19.1}},
	}
	mockService.EXPECT().
		EvaluateRoutes(gomock.Any(), expected).
		Return([]models.Route{{IsSafe: true}, {IsSafe: false, IntersectedAreaIDs: []string{"a"}}}, nil)

	body := `{"routes":[{"start":[77.0,28.0],"end":[77.1,28.1]},{"start":[72.8,19.0],"end":[72.9,19.1]}]}`
	w := makeRequest(router, http.MethodPost, "/api/v1/routes/evaluate/batch", strings.NewReader(body), apiKeyHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []RouteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.True(t, resp[0].IsSafe)
	assert.Equal(t, []string{}, resp[0].IntersectedAreaIDs)
	assert.False(t, resp[1].IsSafe)
}

func TestEvaluateRoutes_Invalid(t *testing.T) {
	_, _, router := newTestHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"empty routes", `{"routes":[]}`},
		{"missing end", `{"routes":[{"start":[77.0,28.0]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := makeRequest(router, http.MethodPost, "/api/v1/routes/evaluate/batch", strings.NewReader(tt.body), apiKeyHeader)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCheckLocation(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	point := geo.Coordinate{Lng: 77.2091, Lat: 28.6140}
	mockService.EXPECT().
		CheckLocation(gomock.Any(), point).
		Return(models.PointCheck{Point: point, InDanger: true, AreaID: "area-1", AreaName: "theft in New Delhi, Delhi"}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/location/check",
		jsonBody(t, map[string]float64{"latitude": 28.6140, "longitude": 77.2091}), apiKeyHeader)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"inDanger":true,"areaId":"area-1","areaName":"theft in New Delhi, Delhi"}`, w.Body.String())
}

func TestCheckLocation_ValidationError(t *testing.T) {
	_, _, router := newTestHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"latitude out of range", `{"latitude":95,"longitude":77}`},
		{"missing longitude", `{"latitude":28.6}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := makeRequest(router, http.MethodPost, "/api/v1/location/check", strings.NewReader(tt.body), apiKeyHeader)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestMapGeoJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().MapView(gomock.Any()).Return(service.MapLayers{
		Incidents: &geojson.FeatureCollection{Features: []*geojson.Feature{}},
		RiskAreas: &geojson.FeatureCollection{Features: []*geojson.Feature{}},
	}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/map/geojson", nil, apiKeyHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "FeatureCollection", resp["incidents"]["type"])
	assert.Equal(t, "FeatureCollection", resp["riskAreas"]["type"])
	assert.NotContains(t, resp, "route")
}

func TestMapGeoJSON_WithRoute(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().MapView(gomock.Any()).Return(service.MapLayers{
		Incidents: &geojson.FeatureCollection{Features: []*geojson.Feature{}},
		RiskAreas: &geojson.FeatureCollection{Features: []*geojson.Feature{}},
		Route:     mapview.Route(models.Route{
			Start:    geo.Coordinate{Lng: 77.19, Lat: 28.61},
			End:      geo.Coordinate{Lng: 77.23, Lat: 28.61},
			Geometry: []geo.Coordinate{{Lng: 77.19, Lat: 28.61}, {Lng: 77.23, Lat: 28.61}},
			IsSafe:   false,
		}),
	}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/map/geojson", nil, apiKeyHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	features, ok := resp["route"]["features"].([]any)
	require.True(t, ok)
	require.Len(t, features, 1)
	assert.Equal(t, mapview.UnsafeRouteColor, features[0].(map[string]any)["properties"].(map[string]any)["color"])
}
