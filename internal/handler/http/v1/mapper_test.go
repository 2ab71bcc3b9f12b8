package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/models"
)

func TestModelToStatsResponse(t *testing.T) {
	stats := models.NewIncidentStats([]models.Incident{
		{City: "Delhi", CrimeType: models.CrimeTheft, Severity: models.SeverityMedium, Status: models.StatusReported, Location: geo.Coordinate{Lng: 77.2, Lat: 28.6}},
		{City: "Delhi", CrimeType: models.CrimeAssault, Severity: models.SeverityHigh, Status: models.StatusResolved, Location: geo.Coordinate{Lng: 77.3, Lat: 28.7}},
		{City: "Pune", CrimeType: models.CrimeTheft, Severity: models.SeverityMedium, Status: models.StatusReported, Location: geo.Coordinate{Lng: 73.8, Lat: 18.5}},
	})

	resp := ModelToStatsResponse(stats)

	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, map[string]int{"Delhi": 2, "Pune": 1}, resp.ByCity)
	assert.Equal(t, map[string]int{"theft": 2, "assault": 1}, resp.ByType)
	assert.Equal(t, map[string]int{"medium": 2, "high": 1}, resp.BySeverity)
	assert.Equal(t, map[string]int{"reported": 2, "resolved": 1}, resp.ByStatus)
}

func TestModelToStatsResponse_Empty(t *testing.T) {
	resp := ModelToStatsResponse(models.NewIncidentStats(nil))

	assert.Equal(t, 0, resp.Total)
	assert.NotNil(t, resp.ByType)
	assert.Empty(t, resp.ByType)
}
