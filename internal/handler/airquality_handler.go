package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/climsight/weather-probability-go/internal/service"
	"github.com/climsight/weather-probability-go/pkg/response"
)

// AirQualityHandler handles the air quality proxy endpoint.
type AirQualityHandler struct {
	airQuality *service.AirQualityService
}

// NewAirQualityHandler creates a new air quality handler
func NewAirQualityHandler(airQuality *service.AirQualityService) *AirQualityHandler {
	return &AirQualityHandler{airQuality: airQuality}
}

// GetProbability handles GET /api/v1/air-quality/probability
func (h *AirQualityHandler) GetProbability(c *gin.Context) {
	lat, lon, ok := parseLatLon(c)
	if !ok {
		return
	}

	month := 6
	if m := c.Query("month"); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil || n < 1 || n > 12 {
			response.BadRequest(c, "Invalid month parameter")
			return
		}
		month = n
	}

	result, err := h.airQuality.Probability(c.Request.Context(), lat, lon, month)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, result)
}
