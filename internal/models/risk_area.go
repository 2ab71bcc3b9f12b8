package models

import (
	"time"

	"github.com/shenikar/safe_route_system/internal/geo"
)

// RiskArea - геозона повышенного риска
type RiskArea struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Polygon    geo.Ring  `json:"polygon"`
	CreatedAt  time.Time `json:"createdAt"`
	IncidentID string    `json:"incidentId,omitempty"`
}
