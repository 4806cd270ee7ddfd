package config

import "github.com/climsight/weather-probability-go/internal/stats"

// Threshold describes one extreme-weather condition: which provider
// parameter it reads and when a daily value counts as an occurrence.
type Threshold struct {
	Parameter        string
	DefaultThreshold float64
	Direction        stats.Direction
	Unit             string
	Description      string
}

// Thresholds is the immutable condition-type table. It is constructed
// once and injected into the services that need it.
type Thresholds map[string]Threshold

// DefaultThresholds returns the built-in condition table.
func DefaultThresholds() Thresholds {
	return Thresholds{
		"heatwave": {
			Parameter:        "T2M_MAX",
			DefaultThreshold: 40.0,
			Direction:        stats.Above,
			Unit:             "°C",
			Description:      "Extreme heat conditions",
		},
		"hot_day": {
			Parameter:        "T2M_MAX",
			DefaultThreshold: 35.0,
			Direction:        stats.Above,
			Unit:             "°C",
			Description:      "Very hot day",
		},
		"warm_day": {
			Parameter:        "T2M_MAX",
			DefaultThreshold: 30.0,
			Direction:        stats.Above,
			Unit:             "°C",
			Description:      "Warm weather",
		},
		"cold_wave": {
			Parameter:        "T2M_MIN",
			DefaultThreshold: 5.0,
			Direction:        stats.Below,
			Unit:             "°C",
			Description:      "Extreme cold conditions",
		},
		"cold_day": {
			Parameter:        "T2M_MIN",
			DefaultThreshold: 10.0,
			Direction:        stats.Below,
			Unit:             "°C",
			Description:      "Cold day",
		},
		"heavy_rain": {
			Parameter:        "PRECTOTCORR",
			DefaultThreshold: 50.0,
			Direction:        stats.Above,
			Unit:             "mm/day",
			Description:      "Heavy rainfall",
		},
		"high_wind": {
			Parameter:        "WS10M",
			DefaultThreshold: 15.0,
			Direction:        stats.Above,
			Unit:             "m/s",
			Description:      "Strong winds",
		},
		"overcast": {
			Parameter:        "CLOUD_AMT",
			DefaultThreshold: 80.0,
			Direction:        stats.Above,
			Unit:             "%",
			Description:      "Heavily overcast sky",
		},
		"high_humidity": {
			Parameter:        "RH2M",
			DefaultThreshold: 80.0,
			Direction:        stats.Above,
			Unit:             "%",
			Description:      "Very humid conditions",
		},
	}
}

// Lookup returns the threshold for a condition type.
func (t Thresholds) Lookup(conditionType string) (Threshold, bool) {
	th, ok := t[conditionType]
	return th, ok
}
