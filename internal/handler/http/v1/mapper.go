package v1

import (
	"github.com/shenikar/safe_route_system/internal/models"
	"github.com/shenikar/safe_route_system/internal/service"
)

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model models.Incident) IncidentResponse {
	return IncidentResponse{
		ID:            model.ID,
		City:          model.City,
		District:      model.District,
		Location:      model.Location,
		CrimeType:     string(model.CrimeType),
		Description:   model.Description,
		Timestamp:     model.Timestamp,
		Severity:      string(model.Severity),
		Status:        string(model.Status),
		PoliceStation: model.PoliceStation,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []models.Incident) []IncidentResponse {
	responses := make([]IncidentResponse, len(incidents))
	for i, model := range incidents {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// ModelToStatsResponse преобразует статистику в DTO; ключи категорий становятся строками
func ModelToStatsResponse(stats models.IncidentStats) StatsResponse {
	return StatsResponse{
		Total:      stats.Total,
		ByCity:     countsByName(stats.ByCity),
		ByType:     countsByName(stats.ByType),
		BySeverity: countsByName(stats.BySeverity),
		ByStatus:   countsByName(stats.ByStatus),
	}
}

func countsByName[K ~string](counts map[K]int) map[string]int {
	out := make(map[string]int, len(counts))
	for k, n := range counts {
		out[string(k)] = n
	}
	return out
}

func ModelToRiskAreaResponse(area models.RiskArea) RiskAreaResponse {
	return RiskAreaResponse{
		ID:          area.ID,
		Name:        area.Name,
		Coordinates: area.Polygon,
		IncidentID:  area.IncidentID,
		CreatedAt:   area.CreatedAt,
	}
}

func ModelsToRiskAreaResponses(areas []models.RiskArea) []RiskAreaResponse {
	responses := make([]RiskAreaResponse, len(areas))
	for i, area := range areas {
		responses[i] = ModelToRiskAreaResponse(area)
	}
	return responses
}

// ModelToRouteResponse преобразует оценку маршрута в DTO; список геозон в ответе никогда не null
func ModelToRouteResponse(route models.Route) RouteResponse {
	ids := route.IntersectedAreaIDs
	if ids == nil {
		ids = []string{}
	}
	return RouteResponse{
		Start:              route.Start,
		End:                route.End,
		Geometry:           route.Geometry,
		DistanceKm:         route.DistanceKm,
		DurationSeconds:    route.DurationSeconds,
		IsSafe:             route.IsSafe,
		IntersectedAreaIDs: ids,
	}
}

func ModelsToRouteResponses(routes []models.Route) []RouteResponse {
	responses := make([]RouteResponse, len(routes))
	for i, route := range routes {
		responses[i] = ModelToRouteResponse(route)
	}
	return responses
}

func RebuildResultToResponse(result service.RebuildResult) RebuildResponse {
	return RebuildResponse{
		Incidents: result.Incidents,
		RiskAreas: result.RiskAreas,
		Persisted: result.Persisted,
	}
}

// BatchRequestToRoutes преобразует пакетный запрос в запросы сервиса
func BatchRequestToRoutes(req BatchEvaluateRequest) []service.RouteRequest {
	routes := make([]service.RouteRequest, len(req.Routes))
	for i, r := range req.Routes {
		routes[i] = service.RouteRequest{Start: *r.Start, End: *r.End}
	}
	return routes
}
