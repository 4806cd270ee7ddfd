package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/climsight/weather-probability-go/internal/timeseries"
)

func TestProxyScore(t *testing.T) {
	cases := []struct {
		name                         string
		temp, humidity, wind, precip float64
		want                         int
	}{
		{"stagnant heat", 36, 80, 1, 0, 6},
		{"hot but breezy", 32, 50, 6, 10, 1},
		{"windy and wet", 20, 50, 10, 20, 0},
		{"calm dry summer day", 31, 60, 4, 0, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, proxyScore(tc.temp, tc.humidity, tc.wind, tc.precip))
		})
	}
}

func TestAirQualityProbability(t *testing.T) {
	t.Run("counts days where all drivers are valid", func(t *testing.T) {
		p := &stubProvider{perParam: map[string]map[string]timeseries.Series{
			coordKey(10, 10): {
				// June 1st is stagnant, June 2nd disperses, June 3rd has
				// a missing wind reading and must be skipped.
				"T2M":         {"20240601": 36.0, "20240602": 20.0, "20240603": 36.0},
				"RH2M":        {"20240601": 80.0, "20240602": 40.0, "20240603": 80.0},
				"WS10M":       {"20240601": 1.0, "20240602": 10.0, "20240603": timeseries.MissingValue},
				"PRECTOTCORR": {"20240601": 0.0, "20240602": 20.0, "20240603": 0.0},
			},
		}}
		svc := NewAirQualityService(p, testConfig(), zap.NewNop())

		report, err := svc.Probability(context.Background(), 10, 10, 6)
		require.NoError(t, err)

		assert.Equal(t, 2, report.Assessment.DaysAnalyzed)
		assert.Equal(t, 0.5, report.Assessment.PoorAirQualityProbability)
		assert.Equal(t, "Moderate", report.RiskLevel)
		assert.NotEmpty(t, report.Advisory)
	})

	t.Run("no overlapping valid days is no data", func(t *testing.T) {
		p := &stubProvider{perParam: map[string]map[string]timeseries.Series{
			coordKey(10, 10): {
				"T2M":         {"20240601": 30.0},
				"RH2M":        {"20240701": 50.0}, // different day
				"WS10M":       {"20240601": 5.0},
				"PRECTOTCORR": {"20240601": 0.0},
			},
		}}
		svc := NewAirQualityService(p, testConfig(), zap.NewNop())

		_, err := svc.Probability(context.Background(), 10, 10, 6)
		assert.ErrorIs(t, err, ErrNoData)
	})
}
