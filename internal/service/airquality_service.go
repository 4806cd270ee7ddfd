package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/climsight/weather-probability-go/internal/config"
	"github.com/climsight/weather-probability-go/internal/models"
	"github.com/climsight/weather-probability-go/internal/provider"
	"github.com/climsight/weather-probability-go/internal/stats"
	"github.com/climsight/weather-probability-go/internal/timeseries"
)

// AirQualityService estimates the chance of poor air quality from the
// meteorological conditions that trap or disperse pollutants. NASA
// POWER has no direct air-quality product, so heat, stagnant wind, dry
// spells and humidity act as a proxy.
type AirQualityService struct {
	provider provider.RawSeriesProvider
	history  int
	timeout  time.Duration
	logger   *zap.Logger
}

// NewAirQualityService creates a new air quality service.
func NewAirQualityService(p provider.RawSeriesProvider, cfg *config.Config, logger *zap.Logger) *AirQualityService {
	return &AirQualityService{
		provider: p,
		history:  cfg.HistoryYears,
		timeout:  cfg.ProviderTimeout,
		logger:   logger,
	}
}

// proxyScore rates one day's conditions on a 0-7 stagnation scale.
// High temperature concentrates pollution, low wind stops dispersion,
// absence of rain leaves the air unwashed, and humidity traps
// particulates.
func proxyScore(temp, humidity, wind, precip float64) int {
	score := 0

	if temp > 35 {
		score += 2
	} else if temp > 30 {
		score++
	}

	if wind < 2 {
		score += 2
	} else if wind < 5 {
		score++
	}

	if precip < 1 {
		score++
	}

	if humidity > 70 {
		score++
	}

	return score
}

// poorAirThreshold is the proxy score at which a day counts as
// unhealthy.
const poorAirThreshold = 3

// Probability estimates the chance of a poor-air-quality day in the
// given month. Only days where all four driver parameters are valid
// contribute.
func (s *AirQualityService) Probability(ctx context.Context, lat, lon float64, month int) (*models.AirQualityReport, error) {
	end := time.Now().UTC()
	start := end.AddDate(-s.history, 0, 0)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	parameters := []string{"T2M", "RH2M", "WS10M", "PRECTOTCORR"}
	series, err := s.provider.FetchDaily(ctx, lat, lon, start, end, parameters)
	if err != nil {
		return nil, err
	}

	temps := timeseries.FilterByMonth(series["T2M"], month)
	humidity := timeseries.FilterByMonth(series["RH2M"], month)
	wind := timeseries.FilterByMonth(series["WS10M"], month)
	precip := timeseries.FilterByMonth(series["PRECTOTCORR"], month)

	poorDays := 0
	totalDays := 0
	for key, t := range temps {
		h, okH := humidity[key]
		w, okW := wind[key]
		p, okP := precip[key]
		if !okH || !okW || !okP {
			continue
		}
		if t == timeseries.MissingValue || h == timeseries.MissingValue ||
			w == timeseries.MissingValue || p == timeseries.MissingValue {
			continue
		}
		totalDays++
		if proxyScore(t, h, w, p) >= poorAirThreshold {
			poorDays++
		}
	}

	if totalDays == 0 {
		return nil, ErrNoData
	}

	probability := stats.Round3(float64(poorDays) / float64(totalDays))
	risk := "Low"
	if probability > 0.5 {
		risk = "High"
	} else if probability > 0.3 {
		risk = "Moderate"
	}

	return &models.AirQualityReport{
		Location: models.Location{Latitude: lat, Longitude: lon},
		Month:    month,
		Assessment: models.AirQualityAssessment{
			PoorAirQualityProbability: probability,
			DaysAnalyzed:              totalDays,
			Method:                    "Meteorological proxy based on NASA POWER data",
		},
		RiskLevel: risk,
		Advisory:  airAdvisory(risk),
	}, nil
}

func airAdvisory(level string) string {
	switch level {
	case "High":
		return "Poor air quality likely. Limit outdoor activities, especially for sensitive groups."
	case "Moderate":
		return "Acceptable air quality. Sensitive individuals should monitor conditions."
	default:
		return "Good conditions for outdoor activities"
	}
}
