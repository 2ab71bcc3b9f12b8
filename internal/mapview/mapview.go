// Package mapview собирает GeoJSON-слои для отображения на карте
package mapview

import (
	"strings"

	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/models"
)

const (
	SafeRouteColor   = "#4CAF50"
	UnsafeRouteColor = "#FF5252"
	RiskAreaColor    = "#ff0000"
)

var severityColors = map[models.Severity]string{
	models.SeverityLow:    "#3B82F6",
	models.SeverityMedium: "#F59E0B",
	models.SeverityHigh:   "#EF4444",
}

// SeverityColor возвращает цвет маркера; неизвестная степень окрашивается как medium
func SeverityColor(s models.Severity) string {
	if c, ok := severityColors[s]; ok {
		return c
	}
	return severityColors[models.SeverityMedium]
}

// RiskAreas - слой полигонов геозон
func RiskAreas(areas []models.RiskArea) *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(areas))}
	for _, a := range areas {
		props := map[string]any{
			"id":          a.ID,
			"name":        a.Name,
			"description": "High risk area: " + a.Name,
			"color":       RiskAreaColor,
			"createdAt":   a.CreatedAt,
		}
		if a.IncidentID != "" {
			props["incidentId"] = a.IncidentID
		}
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:         a.ID,
			Geometry:   a.Polygon.Polygon(),
			Properties: props,
		})
	}
	return fc
}

// Incidents - слой точек происшествий
func Incidents(incidents []models.Incident) *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(incidents))}
	for _, inc := range incidents {
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       inc.ID,
			Geometry: geo.Point(inc.Location),
			Properties: map[string]any{
				"city":          inc.City,
				"district":      inc.District,
				"crimeType":     inc.CrimeType,
				"title":         title(inc.CrimeType),
				"description":   inc.Description,
				"timestamp":     inc.Timestamp,
				"severity":      inc.Severity,
				"status":        inc.Status,
				"policeStation": inc.PoliceStation,
				"color":         SeverityColor(inc.Severity),
			},
		})
	}
	return fc
}

// Route - слой с линией маршрута, цвет зависит от безопасности
func Route(route models.Route) *geojson.FeatureCollection {
	color := SafeRouteColor
	if !route.IsSafe {
		color = UnsafeRouteColor
	}
	props := map[string]any{
		"isSafe":             route.IsSafe,
		"distanceKm":         route.DistanceKm,
		"color":              color,
		"intersectedAreaIds": route.IntersectedAreaIDs,
	}
	if route.DurationSeconds != nil {
		props["durationSeconds"] = *route.DurationSeconds
	}
	return &geojson.FeatureCollection{
		Features: []*geojson.Feature{{
			Geometry:   geo.LineString(route.Geometry),
			Properties: props,
		}},
	}
}

// title превращает "suspicious_activity" в "Suspicious Activity"
func title(ct models.CrimeType) string {
	words := strings.Split(string(ct), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
