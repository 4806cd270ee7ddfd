package stats

import (
	"github.com/climsight/weather-probability-go/internal/timeseries"
)

// Direction selects which side of a threshold counts as an exceedance.
type Direction string

const (
	Above Direction = "above"
	Below Direction = "below"
)

// Exceeds reports whether a reading satisfies the threshold condition.
func Exceeds(value, threshold float64, dir Direction) bool {
	if dir == Below {
		return value < threshold
	}
	return value > threshold
}

// Probability calculates the fraction of valid readings exceeding the
// threshold, rounded to 3 decimal places. The second return value is
// false when the series has no valid readings at all; a probability of
// exactly 0 with ok=true means every reading was on the safe side of
// the threshold, which is a different outcome.
func Probability(s timeseries.Series, threshold float64, dir Direction) (float64, bool) {
	values := timeseries.ValidValues(s)
	if len(values) == 0 {
		return 0, false
	}

	exceeding := 0
	for _, v := range values {
		if Exceeds(v, threshold, dir) {
			exceeding++
		}
	}

	return Round3(float64(exceeding) / float64(len(values))), true
}

// Extremes summarizes the extreme readings of a series.
type Extremes struct {
	Max        float64 `json:"max"`
	Min        float64 `json:"min"`
	Average    float64 `json:"average"`
	DataPoints int     `json:"data_points"`
}

// ExtremeStatistics computes max/min/average over the valid readings,
// rounded to 2 decimal places. Returns nil when no readings are valid.
func ExtremeStatistics(s timeseries.Series) *Extremes {
	values := timeseries.ValidValues(s)
	if len(values) == 0 {
		return nil
	}

	return &Extremes{
		Max:        Round2(Max(values)),
		Min:        Round2(Min(values)),
		Average:    Round2(Mean(values)),
		DataPoints: len(values),
	}
}

// Summary describes the distribution of a set of valid readings.
type Summary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P75    float64 `json:"p75"`
	P95    float64 `json:"p95"`
	Count  int     `json:"count"`
}

// Summarize computes mean, median and upper percentiles over the given
// values, rounded to 2 decimal places. Returns nil for empty input.
func Summarize(values []float64) *Summary {
	if len(values) == 0 {
		return nil
	}

	return &Summary{
		Mean:   Round2(Mean(values)),
		Median: Round2(Median(values)),
		P75:    Round2(Quantile(values, 0.75)),
		P95:    Round2(Quantile(values, 0.95)),
		Count:  len(values),
	}
}
