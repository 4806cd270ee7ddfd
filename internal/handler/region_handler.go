package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/climsight/weather-probability-go/internal/models"
	"github.com/climsight/weather-probability-go/internal/service"
	"github.com/climsight/weather-probability-go/pkg/response"
)

// RegionHandler handles HTTP requests for region-level aggregation.
type RegionHandler struct {
	region *service.RegionService
}

// NewRegionHandler creates a new region handler
func NewRegionHandler(region *service.RegionService) *RegionHandler {
	return &RegionHandler{region: region}
}

// PostRegionProbability handles POST /api/v1/extreme-weather/region-probability
func (h *RegionHandler) PostRegionProbability(c *gin.Context) {
	var req models.RegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.region.Aggregate(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, result)
}
