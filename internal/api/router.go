package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/climsight/weather-probability-go/internal/config"
	"github.com/climsight/weather-probability-go/internal/handler"
	"github.com/climsight/weather-probability-go/internal/middleware"
	"github.com/climsight/weather-probability-go/internal/service"
)

// Handlers bundles the feature handlers mounted by the router.
type Handlers struct {
	Probability *handler.ProbabilityHandler
	Region      *handler.RegionHandler
	Forecast    *handler.ForecastHandler
	AirQuality  *handler.AirQualityHandler
	Report      *handler.ReportHandler
}

// NewHandlers wires the handlers from their services.
func NewHandlers(analysis *service.AnalysisService, region *service.RegionService,
	forecast *service.ForecastService, activity *service.ActivityService,
	airQuality *service.AirQualityService) Handlers {
	return Handlers{
		Probability: handler.NewProbabilityHandler(analysis),
		Region:      handler.NewRegionHandler(region),
		Forecast:    handler.NewForecastHandler(forecast, activity),
		AirQuality:  handler.NewAirQualityHandler(airQuality),
		Report:      handler.NewReportHandler(analysis),
	}
}

// SetupRouter builds the gin engine with middleware and all routes.
func SetupRouter(cfg *config.Config, logger *zap.Logger, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateLimitWindow))

	// CORS for local dev and easy frontend integration; tighten in production
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Weather Probability API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		extreme := api.Group("/extreme-weather")
		{
			extreme.GET("/probability", h.Probability.GetProbability)
			extreme.POST("/region-probability", h.Region.PostRegionProbability)
			extreme.POST("/histogram", h.Probability.PostHistogram)
			extreme.GET("/seasonal-heatmap", h.Probability.GetSeasonalHeatmap)
			extreme.GET("/multi-day", h.Probability.GetMultiDay)
			extreme.GET("/report", h.Report.GetReport)
		}

		api.GET("/forecast/simple", h.Forecast.GetSimpleForecast)
		api.GET("/activity-forecast", h.Forecast.GetActivityForecast)
		api.GET("/air-quality/probability", h.AirQuality.GetProbability)
	}

	return r
}
