package models

import "github.com/shenikar/safe_route_system/internal/geo"

// Route - результат оценки прямого маршрута. Не сохраняется.
type Route struct {
	Start              geo.Coordinate   `json:"start"`
	End                geo.Coordinate   `json:"end"`
	Geometry           []geo.Coordinate `json:"geometry"`
	DistanceKm         float64          `json:"distanceKm"`
	DurationSeconds    *float64         `json:"durationSeconds"`
	IsSafe             bool             `json:"isSafe"`
	IntersectedAreaIDs []string         `json:"intersectedAreaIds,omitempty"`
}

// PointCheck - результат проверки точки на попадание в опасную зону
type PointCheck struct {
	Point    geo.Coordinate `json:"point"`
	InDanger bool           `json:"inDanger"`
	AreaID   string         `json:"areaId,omitempty"`
	AreaName string         `json:"areaName,omitempty"`
}
