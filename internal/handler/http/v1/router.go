package v1

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	if h.cfg.RateLimitRPS > 0 {
		protected.Use(RateLimitMiddleware(rate.NewLimiter(rate.Limit(h.cfg.RateLimitRPS), h.cfg.RateLimitBurst), h.logger))
	}
	if len(h.cfg.APIKeys) > 0 {
		protected.Use(APIKeyAuthMiddleware(h.cfg.APIKeys, h.logger))
	}

	// Набор происшествий
	incidents := protected.Group("/incidents")
	{
		incidents.POST("/generate", h.generateIncidents)
		incidents.POST("/import", h.importIncidents)
		incidents.GET("", h.listIncidents)
		incidents.GET("/stats", h.getStats)
	}

	// Геозоны
	riskAreas := protected.Group("/risk-areas")
	{
		riskAreas.GET("", h.listRiskAreas)
		riskAreas.POST("", h.createRiskArea)
		riskAreas.DELETE("/:id", h.deleteRiskArea)
		riskAreas.POST("/rebuild", h.rebuildRiskAreas)
	}

	// Оценка маршрутов
	routes := protected.Group("/routes")
	{
		routes.POST("/evaluate", h.evaluateRoute)
		routes.POST("/evaluate/batch", h.evaluateRoutes)
	}

	protected.POST("/location/check", h.checkLocation)
	protected.GET("/map/geojson", h.mapGeoJSON)
}
