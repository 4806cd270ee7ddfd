package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/climsight/weather-probability-go/internal/config"
	"github.com/climsight/weather-probability-go/internal/models"
	"github.com/climsight/weather-probability-go/internal/provider"
	"github.com/climsight/weather-probability-go/internal/stats"
	"github.com/climsight/weather-probability-go/internal/timeseries"
)

// Fixed thresholds for the simplified forecast; callers supply only a
// location and calendar date.
var simpleThresholds = map[string]float64{
	"rain":          10.0, // mm/day
	"heavy_rain":    50.0, // mm/day
	"high_wind":     10.0, // m/s
	"high_humidity": 70.0, // %
	"hot":           35.0, // °C
	"very_hot":      40.0, // °C
}

var forecastParameters = []string{"T2M_MAX", "T2M_MIN", "PRECTOTCORR", "WS10M", "RH2M"}

// ForecastService produces the simplified one-call outlook for a
// calendar date, derived from the same day across the historical
// window.
type ForecastService struct {
	provider provider.RawSeriesProvider
	history  int
	timeout  time.Duration
	logger   *zap.Logger
}

// NewForecastService creates a new forecast service.
func NewForecastService(p provider.RawSeriesProvider, cfg *config.Config, logger *zap.Logger) *ForecastService {
	return &ForecastService{
		provider: p,
		history:  cfg.HistoryYears,
		timeout:  cfg.ProviderTimeout,
		logger:   logger,
	}
}

// Simple computes exceedance percentages and typical values for the
// given date at a point.
func (s *ForecastService) Simple(ctx context.Context, lat, lon float64, date, clock string) (*models.SimpleForecast, error) {
	target, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date, use YYYY-MM-DD", ErrInvalidRequest)
	}
	if clock != "" {
		if _, err := time.Parse("15:04", clock); err != nil {
			return nil, fmt.Errorf("%w: invalid time, use HH:MM", ErrInvalidRequest)
		}
	}

	startYear := target.Year() - s.history
	endYear := target.Year() - 1
	start := time.Date(startYear, target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(endYear, target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	series, err := s.provider.FetchDaily(ctx, lat, lon, start, end, forecastParameters)
	if err != nil {
		return nil, err
	}

	sameDay := func(param string) []float64 {
		var values []float64
		for key, v := range series[param] {
			if v == timeseries.MissingValue {
				continue
			}
			t, ok := timeseries.ParseDateKey(key)
			if !ok {
				continue
			}
			if t.Month() == target.Month() && t.Day() == target.Day() {
				values = append(values, v)
			}
		}
		return values
	}

	tempMax := sameDay("T2M_MAX")
	tempMin := sameDay("T2M_MIN")
	precip := sameDay("PRECTOTCORR")
	wind := sameDay("WS10M")
	humidity := sameDay("RH2M")

	forecast := &models.SimpleForecast{
		Location: models.Location{Latitude: lat, Longitude: lon},
		Date:     date,
		Time:     clock,
		Temperature: models.TemperatureOutlook{
			Max:                maxOrNil(tempMax),
			Min:                minOrNil(tempMin),
			AverageMax:         meanOrNil(tempMax),
			HotProbability:     percentAbove(tempMax, simpleThresholds["hot"]),
			VeryHotProbability: percentAbove(tempMax, simpleThresholds["very_hot"]),
			Unit:               "°C",
		},
		Precipitation: models.PrecipitationOutlook{
			RainProbability:      percentAbove(precip, simpleThresholds["rain"]),
			HeavyRainProbability: percentAbove(precip, simpleThresholds["heavy_rain"]),
			Unit:                 "%",
		},
		Wind: models.WindOutlook{
			HighWindProbability: percentAbove(wind, simpleThresholds["high_wind"]),
			AverageSpeed:        meanOrNil(wind),
			Unit:                "m/s",
		},
		Humidity: models.HumidityOutlook{
			HighHumidityProbability: percentAbove(humidity, simpleThresholds["high_humidity"]),
			Average:                 meanOrNil(humidity),
			Unit:                    "%",
		},
		DataPointsAnalyzed: len(tempMax),
		YearsAnalyzed:      fmt.Sprintf("%d-%d", startYear, endYear),
	}
	forecast.Summary = buildSummary(lat, lon, target, clock, forecast)
	return forecast, nil
}

// percentAbove returns the exceedance probability as a percentage with
// one decimal, 0 for empty input.
func percentAbove(values []float64, threshold float64) float64 {
	if len(values) == 0 {
		return 0
	}
	count := 0
	for _, v := range values {
		if v > threshold {
			count++
		}
	}
	return round1(float64(count) / float64(len(values)) * 100)
}

func maxOrNil(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	v := round1(stats.Max(values))
	return &v
}

func minOrNil(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	v := round1(stats.Min(values))
	return &v
}

func meanOrNil(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	v := round1(stats.Mean(values))
	return &v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func buildSummary(lat, lon float64, target time.Time, clock string, f *models.SimpleForecast) string {
	var parts []string

	if f.Temperature.Max != nil && f.Temperature.Min != nil {
		parts = append(parts, fmt.Sprintf("Temperature will range from %.1f°C to %.1f°C",
			*f.Temperature.Min, *f.Temperature.Max))
	}

	rain := f.Precipitation.RainProbability
	switch {
	case rain > 60:
		parts = append(parts, fmt.Sprintf("There is a %.1f%% chance of rain", rain))
	case rain > 30:
		parts = append(parts, fmt.Sprintf("Moderate %.1f%% chance of rain", rain))
	default:
		parts = append(parts, fmt.Sprintf("Low %.1f%% chance of rain", rain))
	}

	if f.Wind.HighWindProbability > 50 {
		parts = append(parts, fmt.Sprintf("%.1f%% chance of windy conditions", f.Wind.HighWindProbability))
	}
	if f.Humidity.Average != nil {
		parts = append(parts, fmt.Sprintf("humidity around %.1f%%", *f.Humidity.Average))
	}

	when := target.Format("January 2, 2006")
	if clock != "" {
		when += " at " + clock
	}
	return fmt.Sprintf("Weather forecast for (%g, %g) on %s: %s.", lat, lon, when, strings.Join(parts, ", "))
}
