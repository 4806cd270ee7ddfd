package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/climsight/weather-probability-go/internal/models"
	"github.com/climsight/weather-probability-go/internal/service"
	"github.com/climsight/weather-probability-go/pkg/response"
)

// ProbabilityHandler handles HTTP requests for point-level extreme
// weather analytics.
type ProbabilityHandler struct {
	analysis *service.AnalysisService
}

// NewProbabilityHandler creates a new probability handler
func NewProbabilityHandler(analysis *service.AnalysisService) *ProbabilityHandler {
	return &ProbabilityHandler{analysis: analysis}
}

// GetProbability handles GET /api/v1/extreme-weather/probability
func (h *ProbabilityHandler) GetProbability(c *gin.Context) {
	if c.Query("lat") == "" || c.Query("lon") == "" {
		response.BadRequest(c, "lat and lon are required")
		return
	}

	var req models.ProbabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.analysis.AnalyzePoint(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, result)
}

// PostHistogram handles POST /api/v1/extreme-weather/histogram
func (h *ProbabilityHandler) PostHistogram(c *gin.Context) {
	var req models.HistogramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.analysis.Histogram(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, result)
}

// GetSeasonalHeatmap handles GET /api/v1/extreme-weather/seasonal-heatmap
func (h *ProbabilityHandler) GetSeasonalHeatmap(c *gin.Context) {
	lat, lon, ok := parseLatLon(c)
	if !ok {
		return
	}
	conditionType := c.Query("condition_type")
	if conditionType == "" {
		response.BadRequest(c, "condition_type is required")
		return
	}

	result, err := h.analysis.SeasonalHeatmap(c.Request.Context(), lat, lon, conditionType)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, result)
}

// GetMultiDay handles GET /api/v1/extreme-weather/multi-day
func (h *ProbabilityHandler) GetMultiDay(c *gin.Context) {
	lat, lon, ok := parseLatLon(c)
	if !ok {
		return
	}
	conditionType := c.Query("condition_type")
	if conditionType == "" {
		response.BadRequest(c, "condition_type is required")
		return
	}

	result, err := h.analysis.MultiDay(c.Request.Context(), lat, lon, conditionType,
		c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, result)
}

// parseLatLon reads the coordinate query parameters, rejecting the
// request on any violation.
func parseLatLon(c *gin.Context) (float64, float64, bool) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		response.BadRequest(c, "Invalid lat parameter")
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		response.BadRequest(c, "Invalid lon parameter")
		return 0, 0, false
	}
	return lat, lon, true
}
