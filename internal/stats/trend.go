package stats

import (
	"sort"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"github.com/climsight/weather-probability-go/internal/timeseries"
)

// Trend reports how often a threshold condition occurred per year and
// the direction that count is moving over time.
type Trend struct {
	YearlyCounts map[int]int `json:"yearly_counts"`
	Slope        float64     `json:"slope"`
	Direction    string      `json:"trend"`
}

// Years returns the qualifying years in ascending order.
func (t Trend) Years() []int {
	years := make([]int, 0, len(t.YearlyCounts))
	for y := range t.YearlyCounts {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// YearlyTrend counts the days per calendar year on which a valid
// reading satisfied the threshold condition, then fits an ordinary
// least-squares line of count against year over the qualifying years.
// Years with no qualifying days are omitted rather than stored as
// zero. With no qualifying year at all the slope is 0 and the trend
// is flat.
func YearlyTrend(s timeseries.Series, threshold float64, dir Direction) Trend {
	yearly := make(map[int]int)
	for key, value := range s {
		if value == timeseries.MissingValue {
			continue
		}
		if len(key) < 4 {
			continue
		}
		year, err := strconv.Atoi(key[:4])
		if err != nil {
			continue
		}
		if Exceeds(value, threshold, dir) {
			yearly[year]++
		}
	}

	if len(yearly) == 0 {
		return Trend{YearlyCounts: map[int]int{}, Slope: 0, Direction: "flat"}
	}

	trend := Trend{YearlyCounts: yearly}
	years := trend.Years()

	xs := make([]float64, len(years))
	ys := make([]float64, len(years))
	for i, y := range years {
		xs[i] = float64(y)
		ys[i] = float64(yearly[y])
	}

	// A single qualifying year has no defined slope.
	if len(years) < 2 {
		trend.Direction = "flat"
		return trend
	}

	_, slope := stat.LinearRegression(xs, ys, nil, false)
	trend.Slope = Round4(slope)

	switch {
	case trend.Slope > 0:
		trend.Direction = "increasing"
	case trend.Slope < 0:
		trend.Direction = "decreasing"
	default:
		trend.Direction = "flat"
	}
	return trend
}
