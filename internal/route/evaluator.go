package route

import (
	"github.com/rotisserie/eris"

	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/models"
)

// Evaluator классифицирует прямой маршрут между двумя точками как безопасный или опасный
type Evaluator struct{}

// NewEvaluator создает Evaluator
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate строит отрезок от start до end, считает его длину по дуге большого круга
// и помечает маршрут опасным, если он имеет общую точку хотя бы с одной геозоной.
// Длительность не вычисляется: движка маршрутизации нет.
func (e *Evaluator) Evaluate(start, end geo.Coordinate, areas []models.RiskArea) (models.Route, error) {
	if err := geo.ValidateCoordinate(start); err != nil {
		return models.Route{}, eris.Wrap(err, "route: start")
	}
	if err := geo.ValidateCoordinate(end); err != nil {
		return models.Route{}, eris.Wrap(err, "route: end")
	}

	distance, err := geo.GreatCircleDistanceKm(start, end)
	if err != nil {
		return models.Route{}, eris.Wrap(err, "route: distance")
	}

	line := []geo.Coordinate{start, end}
	intersected := make([]string, 0)
	for _, area := range areas {
		var hit bool
		if start == end {
			hit, err = geo.PointInPolygon(start, area.Polygon)
		} else {
			hit, err = geo.LineIntersectsPolygon(line, area.Polygon)
		}
		if err != nil {
			return models.Route{}, eris.Wrapf(err, "route: risk area %s", area.ID)
		}
		if hit {
			intersected = append(intersected, area.ID)
		}
	}

	return models.Route{
		Start:              start,
		End:                end,
		Geometry:           line,
		DistanceKm:         distance,
		DurationSeconds:    nil,
		IsSafe:             len(intersected) == 0,
		IntersectedAreaIDs: intersected,
	}, nil
}

// CheckPoint сообщает, находится ли точка внутри какой-либо геозоны, и возвращает первую такую зону
func (e *Evaluator) CheckPoint(point geo.Coordinate, areas []models.RiskArea) (models.PointCheck, error) {
	if err := geo.ValidateCoordinate(point); err != nil {
		return models.PointCheck{}, eris.Wrap(err, "route: point")
	}
	for _, area := range areas {
		inside, err := geo.PointInPolygon(point, area.Polygon)
		if err != nil {
			return models.PointCheck{}, eris.Wrapf(err, "route: risk area %s", area.ID)
		}
		if inside {
			return models.PointCheck{Point: point, InDanger: true, AreaID: area.ID, AreaName: area.Name}, nil
		}
	}
	return models.PointCheck{Point: point}, nil
}
