package v1

import (
	"time"

	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/models"
)

// GenerateIncidentsRequest DTO для генерации синтетических происшествий
// @Description DTO для генерации синтетических происшествий
type GenerateIncidentsRequest struct {
	Count int     `json:"count" validate:"omitempty,min=1,max=10000"`
	Seed  *uint64 `json:"seed,omitempty"`
}

// RebuildResponse DTO с итогом пересборки геозон
// @Description DTO с итогом пересборки геозон
type RebuildResponse struct {
	Incidents int  `json:"incidents"`
	RiskAreas int  `json:"riskAreas"`
	Persisted bool `json:"persisted"`
}

// IncidentResponse DTO для ответа с информацией о происшествии
// @Description DTO для ответа с информацией о происшествии
type IncidentResponse struct {
	ID            string         `json:"id"`
	City          string         `json:"city"`
	District      string         `json:"district"`
	Location      geo.Coordinate `json:"location" swaggertype:"array,number"`
	CrimeType     string         `json:"crimeType"`
	Description   string         `json:"description"`
	Timestamp     time.Time      `json:"timestamp"`
	Severity      string         `json:"severity"`
	Status        string         `json:"status"`
	PoliceStation string         `json:"policeStation"`
}

// StatsResponse DTO для ответа со статистикой происшествий
// @Description DTO для ответа со статистикой происшествий
type StatsResponse struct {
	Total      int            `json:"total"`
	ByCity     map[string]int `json:"byCity"`
	ByType     map[string]int `json:"byType"`
	BySeverity map[string]int `json:"bySeverity"`
	ByStatus   map[string]int `json:"byStatus"`
}

// CreateRiskAreaRequest DTO для создания геозоны по кольцу координат
// @Description DTO для создания геозоны; кольцо замыкается автоматически
type CreateRiskAreaRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=255"`
	Coordinates []geo.Coordinate `json:"coordinates" validate:"required,min=3" swaggertype:"array,object"`
}

// RiskAreaResponse DTO для ответа с геозоной
// @Description DTO для ответа с геозоной
type RiskAreaResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Coordinates []geo.Coordinate `json:"coordinates" swaggertype:"array,object"`
	IncidentID  string           `json:"incidentId,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// EvaluateRouteRequest DTO для оценки маршрута
// @Description DTO для оценки маршрута; incidents пересобирает геозоны перед оценкой
type EvaluateRouteRequest struct {
	Start     *geo.Coordinate   `json:"start" validate:"required" swaggertype:"array,number"`
	End       *geo.Coordinate   `json:"end" validate:"required" swaggertype:"array,number"`
	Incidents []models.Incident `json:"incidents,omitempty"`
}

// RoutePoints DTO с началом и концом маршрута
type RoutePoints struct {
	Start *geo.Coordinate `json:"start" validate:"required" swaggertype:"array,number"`
	End   *geo.Coordinate `json:"end" validate:"required" swaggertype:"array,number"`
}

// BatchEvaluateRequest DTO для пакетной оценки маршрутов
// @Description DTO для пакетной оценки маршрутов
type BatchEvaluateRequest struct {
	Routes []RoutePoints `json:"routes" validate:"required,min=1,max=1000,dive"`
}

// RouteResponse DTO для ответа с оценкой маршрута
// @Description DTO для ответа с оценкой маршрута
type RouteResponse struct {
	Start              geo.Coordinate   `json:"start" swaggertype:"array,number"`
	End                geo.Coordinate   `json:"end" swaggertype:"array,number"`
	Geometry           []geo.Coordinate `json:"geometry" swaggertype:"array,object"`
	DistanceKm         float64          `json:"distanceKm"`
	DurationSeconds    *float64         `json:"durationSeconds"`
	IsSafe             bool             `json:"isSafe"`
	IntersectedAreaIDs []string         `json:"intersectedAreaIds"`
}

// LocationCheckRequest DTO для проверки координат
// @Description DTO для проверки координат
type LocationCheckRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// LocationCheckResponse DTO для ответа на проверку координат
// @Description DTO для ответа на проверку координат
type LocationCheckResponse struct {
	InDanger bool   `json:"inDanger"`
	AreaID   string `json:"areaId,omitempty"`
	AreaName string `json:"areaName,omitempty"`
}
