package models

// TemperatureOutlook summarizes historical temperatures for one
// calendar day.
type TemperatureOutlook struct {
	Max                *float64 `json:"max"`
	Min                *float64 `json:"min"`
	AverageMax         *float64 `json:"average_max"`
	HotProbability     float64  `json:"hot_probability"`
	VeryHotProbability float64  `json:"very_hot_probability"`
	Unit               string   `json:"unit"`
}

// PrecipitationOutlook carries rain exceedance percentages.
type PrecipitationOutlook struct {
	RainProbability      float64 `json:"rain_probability"`
	HeavyRainProbability float64 `json:"heavy_rain_probability"`
	Unit                 string  `json:"unit"`
}

// WindOutlook carries wind exceedance percentages and the average
// speed.
type WindOutlook struct {
	HighWindProbability float64  `json:"high_wind_probability"`
	AverageSpeed        *float64 `json:"average_speed"`
	Unit                string   `json:"unit"`
}

// HumidityOutlook carries humidity exceedance percentages and the
// average.
type HumidityOutlook struct {
	HighHumidityProbability float64  `json:"high_humidity_probability"`
	Average                 *float64 `json:"average"`
	Unit                    string   `json:"unit"`
}

// SimpleForecast is the one-call outlook for a location and calendar
// date, derived from the same day across the historical window.
type SimpleForecast struct {
	Location           Location             `json:"location"`
	Date               string               `json:"date"`
	Time               string               `json:"time"`
	Temperature        TemperatureOutlook   `json:"temperature"`
	Precipitation      PrecipitationOutlook `json:"precipitation"`
	Wind               WindOutlook          `json:"wind"`
	Humidity           HumidityOutlook      `json:"humidity"`
	Summary            string               `json:"summary"`
	DataPointsAnalyzed int                  `json:"data_points_analyzed"`
	YearsAnalyzed      string               `json:"years_analyzed"`
}
