package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/climsight/weather-probability-go/internal/api"
	"github.com/climsight/weather-probability-go/internal/config"
	"github.com/climsight/weather-probability-go/internal/provider"
	"github.com/climsight/weather-probability-go/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	httpClient := &http.Client{Timeout: cfg.ProviderTimeout}
	power := provider.NewPowerClient(cfg.ProviderBaseURL, httpClient)

	thresholds := config.DefaultThresholds()
	presets := config.DefaultActivityPresets()

	analysis := service.NewAnalysisService(power, thresholds, cfg, logger)
	region := service.NewRegionService(analysis, cfg, logger)
	forecast := service.NewForecastService(power, cfg, logger)
	activity := service.NewActivityService(power, presets, cfg, logger)
	airQuality := service.NewAirQualityService(power, cfg, logger)

	router := api.SetupRouter(cfg, logger, api.NewHandlers(analysis, region, forecast, activity, airQuality))

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := router.Run(cfg.Port); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
