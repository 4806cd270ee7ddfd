package models

import "github.com/climsight/weather-probability-go/internal/timeseries"

// Selector converts the request-level time filter into the engine's
// calendar selector.
func (f TimeFilter) Selector() timeseries.Selector {
	return timeseries.Selector{
		Month:     f.Month,
		Season:    f.Season,
		DayOfYear: f.Doy,
		StartYear: f.StartYear,
		EndYear:   f.EndYear,
	}
}
