package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climsight/weather-probability-go/internal/timeseries"
)

func TestProbability(t *testing.T) {
	t.Run("sentinel days are excluded from the denominator", func(t *testing.T) {
		s := timeseries.Series{
			"20200101": 5.0,
			"20200102": 15.0,
			"20200103": timeseries.MissingValue,
		}
		p, ok := Probability(s, 10, Above)
		require.True(t, ok)
		assert.Equal(t, 0.5, p)
	})

	t.Run("no valid data is distinct from probability zero", func(t *testing.T) {
		s := timeseries.Series{
			"20200101": timeseries.MissingValue,
			"20200102": timeseries.MissingValue,
		}
		_, ok := Probability(s, 10, Above)
		assert.False(t, ok)

		p, ok := Probability(timeseries.Series{"20200101": 5.0}, 10, Above)
		require.True(t, ok)
		assert.Equal(t, 0.0, p)
	})

	t.Run("below direction", func(t *testing.T) {
		s := timeseries.Series{
			"20200101": 2.0,
			"20200102": 8.0,
			"20200103": 5.0,
		}
		p, ok := Probability(s, 5, Below)
		require.True(t, ok)
		assert.Equal(t, Round3(1.0/3.0), p)
	})

	t.Run("threshold itself never counts", func(t *testing.T) {
		s := timeseries.Series{"20200101": 10.0}
		p, ok := Probability(s, 10, Above)
		require.True(t, ok)
		assert.Equal(t, 0.0, p)

		p, ok = Probability(s, 10, Below)
		require.True(t, ok)
		assert.Equal(t, 0.0, p)
	})

	t.Run("all readings exceeding gives exactly one", func(t *testing.T) {
		s := timeseries.Series{
			"20200101": 50.0,
			"20200102": 60.0,
			"20200103": 70.0,
		}
		p, ok := Probability(s, 0, Above)
		require.True(t, ok)
		assert.Equal(t, 1.0, p)
	})
}

func TestExtremeStatistics(t *testing.T) {
	t.Run("rounds to two decimals", func(t *testing.T) {
		s := timeseries.Series{
			"20200101": 1.005,
			"20200102": 2.0,
			"20200103": timeseries.MissingValue,
		}
		ex := ExtremeStatistics(s)
		require.NotNil(t, ex)
		assert.Equal(t, 2.0, ex.Max)
		assert.Equal(t, 1.0, ex.Min)
		assert.Equal(t, 1.5, ex.Average)
		assert.Equal(t, 2, ex.DataPoints)
	})

	t.Run("nil when nothing valid", func(t *testing.T) {
		assert.Nil(t, ExtremeStatistics(timeseries.Series{"20200101": timeseries.MissingValue}))
		assert.Nil(t, ExtremeStatistics(timeseries.Series{}))
	})
}

func TestSummarize(t *testing.T) {
	t.Run("percentiles use linear interpolation", func(t *testing.T) {
		sum := Summarize([]float64{10, 20, 30, 40})
		require.NotNil(t, sum)
		assert.Equal(t, 25.0, sum.Mean)
		assert.Equal(t, 25.0, sum.Median)
		assert.Equal(t, 32.5, sum.P75)  // 0.75*(4-1)=2.25 -> 30 + 0.25*10
		assert.Equal(t, 38.5, sum.P95)  // 0.95*(4-1)=2.85 -> 30 + 0.85*10
		assert.Equal(t, 4, sum.Count)
	})

	t.Run("single value", func(t *testing.T) {
		sum := Summarize([]float64{7})
		require.NotNil(t, sum)
		assert.Equal(t, 7.0, sum.Mean)
		assert.Equal(t, 7.0, sum.Median)
		assert.Equal(t, 7.0, sum.P75)
		assert.Equal(t, 7.0, sum.P95)
	})

	t.Run("nil for empty input", func(t *testing.T) {
		assert.Nil(t, Summarize(nil))
	})
}

func TestQuantile(t *testing.T) {
	values := []float64{3, 1, 2}

	assert.Equal(t, 1.0, Quantile(values, 0))
	assert.Equal(t, 2.0, Quantile(values, 0.5))
	assert.Equal(t, 3.0, Quantile(values, 1))
	assert.Equal(t, 1.5, Quantile(values, 0.25))

	t.Run("input order preserved", func(t *testing.T) {
		assert.Equal(t, []float64{3, 1, 2}, values)
	})
}
