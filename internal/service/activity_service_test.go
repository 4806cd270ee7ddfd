package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/climsight/weather-probability-go/internal/config"
	"github.com/climsight/weather-probability-go/internal/timeseries"
)

func flatSeries(value float64) timeseries.Series {
	return timeseries.Series{
		"20240701": value,
		"20240702": value,
	}
}

func newActivityService(p *stubProvider) *ActivityService {
	return NewActivityService(p, config.DefaultActivityPresets(), testConfig(), zap.NewNop())
}

func TestActivityForecast(t *testing.T) {
	t.Run("ideal conditions score excellent", func(t *testing.T) {
		p := &stubProvider{perParam: map[string]map[string]timeseries.Series{
			coordKey(10, 10): {
				"T2M":         flatSeries(30),
				"PRECTOTCORR": flatSeries(2),
				"CLOUD_AMT":   flatSeries(10),
				"WS10M":       flatSeries(5),
				"RH2M":        flatSeries(50),
				"SNODP":       flatSeries(0),
			},
		}}
		svc := newActivityService(p)

		f, err := svc.Forecast(context.Background(), 10, 10, "beach", nil)
		require.NoError(t, err)

		assert.Equal(t, 100, f.Suitability.Score)
		assert.Equal(t, "Excellent", f.Suitability.Rating)
		assert.Empty(t, f.Suitability.Issues)
		assert.Equal(t, 30.0, f.AverageConditions["T2M"])
	})

	t.Run("each violated bound costs twenty points", func(t *testing.T) {
		p := &stubProvider{perParam: map[string]map[string]timeseries.Series{
			coordKey(10, 10): {
				"T2M":         flatSeries(10), // below beach minimum of 25
				"PRECTOTCORR": flatSeries(2),
				"CLOUD_AMT":   flatSeries(50), // above beach maximum of 30
				"WS10M":       flatSeries(5),
				"RH2M":        flatSeries(50),
				"SNODP":       flatSeries(0),
			},
		}}
		svc := newActivityService(p)

		f, err := svc.Forecast(context.Background(), 10, 10, "beach", nil)
		require.NoError(t, err)

		assert.Equal(t, 60, f.Suitability.Score)
		assert.Equal(t, "Good", f.Suitability.Rating)
		assert.Len(t, f.Suitability.Issues, 2)
	})

	t.Run("month filter restricts the averaging window", func(t *testing.T) {
		p := &stubProvider{perParam: map[string]map[string]timeseries.Series{
			coordKey(10, 10): {
				"T2M": {
					"20240701": 30.0,
					"20240102": -5.0,
				},
				"PRECTOTCORR": flatSeries(2),
				"CLOUD_AMT":   flatSeries(10),
				"WS10M":       flatSeries(5),
				"RH2M":        flatSeries(50),
				"SNODP":       flatSeries(0),
			},
		}}
		svc := newActivityService(p)

		f, err := svc.Forecast(context.Background(), 10, 10, "beach", monthPtr(7))
		require.NoError(t, err)

		assert.Equal(t, 30.0, f.AverageConditions["T2M"])
		assert.Equal(t, 100, f.Suitability.Score)
	})

	t.Run("unknown activity", func(t *testing.T) {
		svc := newActivityService(&stubProvider{})

		_, err := svc.Forecast(context.Background(), 10, 10, "spelunking", nil)
		assert.ErrorIs(t, err, ErrUnknownCondition)
	})
}
