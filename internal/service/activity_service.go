package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/climsight/weather-probability-go/internal/config"
	"github.com/climsight/weather-probability-go/internal/models"
	"github.com/climsight/weather-probability-go/internal/provider"
	"github.com/climsight/weather-probability-go/internal/stats"
	"github.com/climsight/weather-probability-go/internal/timeseries"
)

// activityHistoryYears is the averaging window for suitability
// scoring; a shorter window than full probability analyses keeps the
// score responsive to recent climate.
const activityHistoryYears = 10

var activityParameters = []string{"T2M", "PRECTOTCORR", "WS10M", "RH2M", "CLOUD_AMT", "SNODP"}

// ActivityService scores how well a location's historical conditions
// suit an activity.
type ActivityService struct {
	provider provider.RawSeriesProvider
	presets  config.ActivityPresets
	timeout  time.Duration
	logger   *zap.Logger
}

// NewActivityService creates a new activity service.
func NewActivityService(p provider.RawSeriesProvider, presets config.ActivityPresets, cfg *config.Config, logger *zap.Logger) *ActivityService {
	return &ActivityService{
		provider: p,
		presets:  presets,
		timeout:  cfg.ProviderTimeout,
		logger:   logger,
	}
}

// Forecast computes monthly average conditions at a point and rates
// them against the activity's preset rules.
func (s *ActivityService) Forecast(ctx context.Context, lat, lon float64, activity string, month *int) (*models.ActivityForecast, error) {
	preset, ok := s.presets[activity]
	if !ok {
		return nil, fmt.Errorf("%w: unknown activity %q", ErrUnknownCondition, activity)
	}

	end := time.Now().UTC()
	start := end.AddDate(-activityHistoryYears, 0, 0)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	series, err := s.provider.FetchDaily(ctx, lat, lon, start, end, activityParameters)
	if err != nil {
		return nil, err
	}

	averages := make(map[string]float64, len(activityParameters))
	for _, param := range activityParameters {
		data := series[param]
		if month != nil {
			data = timeseries.FilterByMonth(data, *month)
		}
		values := timeseries.ValidValues(data)
		if len(values) > 0 {
			averages[param] = stats.Mean(values)
		} else {
			averages[param] = 0
		}
	}

	return &models.ActivityForecast{
		Location:          models.Location{Latitude: lat, Longitude: lon},
		Month:             month,
		Activity:          activity,
		Suitability:       score(preset, averages),
		AverageConditions: roundAverages(averages),
	}, nil
}

// score rates averages against the preset: each violated bound costs
// 20 points from 100.
func score(preset config.ActivityPreset, averages map[string]float64) models.ActivitySuitability {
	points := 100
	issues := []string{}

	for _, rule := range preset.Ideal {
		value, ok := averages[rule.Parameter]
		if !ok {
			continue
		}
		if rule.Min != nil && value < *rule.Min {
			points -= 20
			issues = append(issues, fmt.Sprintf("%s too low (%.1f)", rule.Condition, value))
		}
		if rule.Max != nil && value > *rule.Max {
			points -= 20
			issues = append(issues, fmt.Sprintf("%s too high (%.1f)", rule.Condition, value))
		}
	}
	if points < 0 {
		points = 0
	}

	rating := "Poor"
	switch {
	case points >= 80:
		rating = "Excellent"
	case points >= 60:
		rating = "Good"
	case points >= 40:
		rating = "Fair"
	}

	return models.ActivitySuitability{
		Activity:    preset.Name,
		Score:       points,
		Rating:      rating,
		Issues:      issues,
		Description: preset.Description,
	}
}

func roundAverages(averages map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(averages))
	for k, v := range averages {
		out[k] = stats.Round2(v)
	}
	return out
}
