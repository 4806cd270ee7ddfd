package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/climsight/weather-probability-go/internal/service"
	"github.com/climsight/weather-probability-go/pkg/response"
)

// ForecastHandler handles the simplified forecast and activity
// planning endpoints.
type ForecastHandler struct {
	forecast *service.ForecastService
	activity *service.ActivityService
}

// NewForecastHandler creates a new forecast handler
func NewForecastHandler(forecast *service.ForecastService, activity *service.ActivityService) *ForecastHandler {
	return &ForecastHandler{forecast: forecast, activity: activity}
}

// GetSimpleForecast handles GET /api/v1/forecast/simple
func (h *ForecastHandler) GetSimpleForecast(c *gin.Context) {
	lat, lon, ok := parseLatLon(c)
	if !ok {
		return
	}
	date := c.Query("date")
	if date == "" {
		response.BadRequest(c, "date is required")
		return
	}
	clock := c.DefaultQuery("time", "12:00")

	result, err := h.forecast.Simple(c.Request.Context(), lat, lon, date, clock)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, result)
}

// GetActivityForecast handles GET /api/v1/activity-forecast
func (h *ForecastHandler) GetActivityForecast(c *gin.Context) {
	lat, lon, ok := parseLatLon(c)
	if !ok {
		return
	}
	activity := c.Query("activity")
	if activity == "" {
		response.BadRequest(c, "activity is required")
		return
	}

	var month *int
	if m := c.Query("month"); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil || n < 1 || n > 12 {
			response.BadRequest(c, "Invalid month parameter")
			return
		}
		month = &n
	}

	result, err := h.activity.Forecast(c.Request.Context(), lat, lon, activity, month)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, result)
}
