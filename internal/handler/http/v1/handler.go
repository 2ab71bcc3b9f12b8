package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/safe_route_system/internal/config"
	"github.com/shenikar/safe_route_system/internal/generator"
	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/ingest"
	"github.com/shenikar/safe_route_system/internal/models"
	"github.com/shenikar/safe_route_system/internal/service"
)

type Handler struct {
	safetyService service.SafetyService
	importer      *ingest.Importer
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(safetyService service.SafetyService, importer *ingest.Importer, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		safetyService: safetyService,
		importer:      importer,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// respondError переводит ошибку сервиса в HTTP-статус: неверная геометрия дает 400, остальное 500
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, geo.ErrInvalidCoordinate),
		errors.Is(err, geo.ErrInvalidGeometry),
		errors.Is(err, ingest.ErrMissingColumns),
		errors.Is(err, generator.ErrInvalidCount):
		log.WithError(err).Warn("Rejected invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Request failed in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindAndValidate разбирает JSON и проверяет DTO; при ошибке ответ уже отправлен
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary Generate synthetic incidents
// @Description Replace the incident dataset with synthetic incidents and rebuild risk areas. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body GenerateIncidentsRequest true "Generation request"
// @Success 200 {object} RebuildResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/generate [post]
func (h *Handler) generateIncidents(c *gin.Context) {
	var input GenerateIncidentsRequest
	log := h.logger.WithField("method", "generateIncidents")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if input.Count == 0 {
		input.Count = generator.DefaultCount
	}

	result, err := h.safetyService.GenerateIncidents(c.Request.Context(), input.Count, input.Seed)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, RebuildResultToResponse(result))
}

// @Summary Import incidents
// @Description Replace the incident dataset from an NCRB-style CSV (text/csv) or a JSON array and rebuild risk areas. Requires API key.
// @Tags Incidents
// @Accept json
// @Accept text/csv
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} RebuildResponse
// @Failure 400 {object} map[string]string "Invalid payload"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/import [post]
func (h *Handler) importIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "importIncidents")

	var (
		incidents []models.Incident
		err       error
	)
	if strings.HasPrefix(c.ContentType(), "text/csv") {
		incidents, err = h.importer.ParseCSV(c.Request.Body)
	} else {
		incidents, err = h.importer.ParseJSON(c.Request.Body)
	}
	if err != nil {
		log.WithError(err).Warn("Failed to parse incidents")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.safetyService.IngestIncidents(c.Request.Context(), incidents)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, RebuildResultToResponse(result))
}

// @Summary Get incidents
// @Description Get the current incident dataset. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	incidents, err := h.safetyService.ListIncidents(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident statistics
// @Description Count incidents by city, type, severity and status. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.safetyService.IncidentStats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToStatsResponse(stats))
}

// @Summary Get risk areas
// @Description Get the active risk area set. Requires API key.
// @Tags RiskAreas
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} RiskAreaResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /risk-areas [get]
func (h *Handler) listRiskAreas(c *gin.Context) {
	log := h.logger.WithField("method", "listRiskAreas")

	areas, err := h.safetyService.ListRiskAreas(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToRiskAreaResponses(areas))
}

// @Summary Create a risk area
// @Description Create a risk area from a ring of [lng, lat] coordinates. Open rings are closed. Requires API key.
// @Tags RiskAreas
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param area body CreateRiskAreaRequest true "Risk area creation request"
// @Success 201 {object} RiskAreaResponse
// @Failure 400 {object} map[string]string "Invalid request body or geometry"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /risk-areas [post]
func (h *Handler) createRiskArea(c *gin.Context) {
	var input CreateRiskAreaRequest
	log := h.logger.WithField("method", "createRiskArea")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	area, err := h.safetyService.CreateRiskArea(c.Request.Context(), input.Name, input.Coordinates)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToRiskAreaResponse(area))
}

// @Summary Delete a risk area
// @Description Delete a risk area by its ID. Requires API key.
// @Tags RiskAreas
// @Security ApiKeyAuth
// @Param id path string true "Risk area ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Risk area not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /risk-areas/{id} [delete]
func (h *Handler) deleteRiskArea(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteRiskArea").WithField("id", id)

	removed, err := h.safetyService.DeleteRiskArea(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "risk area not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Rebuild risk areas
// @Description Rebuild risk areas from the current incident dataset. Requires API key.
// @Tags RiskAreas
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} RebuildResponse
// @Failure 400 {object} map[string]string "Invalid incident location"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /risk-areas/rebuild [post]
func (h *Handler) rebuildRiskAreas(c *gin.Context) {
	log := h.logger.WithField("method", "rebuildRiskAreas")

	result, err := h.safetyService.RebuildRiskAreas(c.Request.Context(), nil)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, RebuildResultToResponse(result))
}

// @Summary Evaluate a route
// @Description Evaluate the straight-line route between two points against the risk areas. Supplying incidents rebuilds risk areas first. Requires API key.
// @Tags Routes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param route body EvaluateRouteRequest true "Route evaluation request"
// @Success 200 {object} RouteResponse
// @Failure 400 {object} map[string]string "Invalid request body or coordinate"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /routes/evaluate [post]
func (h *Handler) evaluateRoute(c *gin.Context) {
	var input EvaluateRouteRequest
	log := h.logger.WithField("method", "evaluateRoute")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	result, err := h.safetyService.EvaluateRoute(c.Request.Context(), *input.Start, *input.End, input.Incidents)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToRouteResponse(result))
}

// @Summary Evaluate routes in batch
// @Description Evaluate several routes against one snapshot of the risk areas. Requires API key.
// @Tags Routes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param routes body BatchEvaluateRequest true "Batch evaluation request"
// @Success 200 {array} RouteResponse
// @Failure 400 {object} map[string]string "Invalid request body or coordinate"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /routes/evaluate/batch [post]
func (h *Handler) evaluateRoutes(c *gin.Context) {
	var input BatchEvaluateRequest
	log := h.logger.WithField("method", "evaluateRoutes")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	results, err := h.safetyService.EvaluateRoutes(c.Request.Context(), BatchRequestToRoutes(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToRouteResponses(results))
}

// @Summary Check location
// @Description Check whether a point lies inside any risk area. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body LocationCheckRequest true "Location check request"
// @Success 200 {object} LocationCheckResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /location/check [post]
func (h *Handler) checkLocation(c *gin.Context) {
	var input LocationCheckRequest
	log := h.logger.WithField("method", "checkLocation")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	point := geo.Coordinate{Lng: *input.Longitude, Lat: *input.Latitude}
	check, err := h.safetyService.CheckLocation(c.Request.Context(), point)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, LocationCheckResponse{
		InDanger: check.InDanger,
		AreaID:   check.AreaID,
		AreaName: check.AreaName,
	})
}

// @Summary Get map layers
// @Description Get incidents, risk areas and the last evaluated route as GeoJSON feature collections. Requires API key.
// @Tags Map
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{} "incidents, riskAreas and optional route feature collections"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /map/geojson [get]
func (h *Handler) mapGeoJSON(c *gin.Context) {
	log := h.logger.WithField("method", "mapGeoJSON")

	layers, err := h.safetyService.MapView(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, layers)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
