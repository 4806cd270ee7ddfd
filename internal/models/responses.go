package models

import "github.com/climsight/weather-probability-go/internal/stats"

// Location echoes the analyzed coordinates.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SourceMetadata describes where the underlying series came from.
type SourceMetadata struct {
	Source            string `json:"source"`
	SpatialResolution string `json:"spatial_resolution"`
	TemporalCoverage  string `json:"temporal_coverage"`
}

// PointAnalysis is the full single-point probability report.
// Probability is nil when the filtered series held no valid readings;
// that is a deliberate "no data" marker, never collapsed to 0.
type PointAnalysis struct {
	Location      Location        `json:"location"`
	TimeFilter    TimeFilter      `json:"time_filter"`
	ConditionType string          `json:"condition_type"`
	Parameter     string          `json:"parameter"`
	Condition     string          `json:"condition"`
	Threshold     float64         `json:"threshold"`
	Probability   *float64        `json:"probability"`
	Statistics    *stats.Extremes `json:"statistics"`
	Distribution  *stats.Summary  `json:"distribution"`
	Trend         stats.Trend     `json:"trend"`
	Summary       string          `json:"summary,omitempty"`
	Metadata      SourceMetadata  `json:"metadata"`
}

// RegionInfo reports how many sample coordinates contributed.
type RegionInfo struct {
	PointsUsed   int     `json:"points_used"`
	TotalSamples int     `json:"total_samples"`
	AreaKm2      float64 `json:"area_km2,omitempty"`
}

// RegionStats carries the merged per-point sample statistics.
type RegionStats struct {
	MeanPointDays int            `json:"mean_point_days"`
	ValueSummary  *stats.Summary `json:"value_summary"`
}

// RegionAggregate is the merged result of a region fan-out.
type RegionAggregate struct {
	Region        RegionInfo  `json:"region"`
	ConditionType string      `json:"condition_type"`
	Parameter     string      `json:"parameter"`
	Condition     string      `json:"condition"`
	Threshold     float64     `json:"threshold"`
	Probability   float64     `json:"probability"`
	RegionStats   RegionStats `json:"region_stats"`
}

// HistogramResult pairs the binned distribution with its summary.
type HistogramResult struct {
	Histogram stats.Histogram   `json:"histogram"`
	Summary   *stats.Summary    `json:"summary"`
	Metadata  HistogramMetadata `json:"metadata"`
}

// HistogramMetadata echoes the histogram request parameters.
type HistogramMetadata struct {
	Parameter string `json:"parameter"`
	Bins      int    `json:"bins"`
}

// MonthProbability names one month's exceedance probability.
type MonthProbability struct {
	Month       int     `json:"month"`
	Name        string  `json:"name"`
	Probability float64 `json:"probability"`
}

// SeasonalHeatmap is the twelve-month probability matrix for one
// condition, with the three least and most likely months called out.
type SeasonalHeatmap struct {
	Location       Location           `json:"location"`
	ConditionType  string             `json:"condition_type"`
	HeatmapData    map[int]float64    `json:"heatmap_data"`
	BestMonths     []MonthProbability `json:"best_months"`
	WorstMonths    []MonthProbability `json:"worst_months"`
	Recommendation string             `json:"recommendation"`
}

// MultiDayEvent is one day inside a multi-day window that had a valid
// reading.
type MultiDayEvent struct {
	Year             int     `json:"year"`
	Date             string  `json:"date"`
	Value            float64 `json:"value"`
	ExceedsThreshold bool    `json:"exceeds_threshold"`
}

// MultiDayProbability reports the chance of at least one qualifying
// day inside a calendar window, across the analyzed years.
type MultiDayProbability struct {
	Location       Location        `json:"location"`
	DateRange      DateRange       `json:"date_range"`
	ConditionType  string          `json:"condition_type"`
	Probability    float64         `json:"probability"`
	YearsAnalyzed  int             `json:"years_analyzed"`
	YearsWithEvent int             `json:"years_with_event"`
	Summary        string          `json:"summary"`
	Events         []MultiDayEvent `json:"events"`
}

// DateRange is an inclusive calendar window.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

// ActivitySuitability scores how well historical conditions fit an
// activity.
type ActivitySuitability struct {
	Activity    string   `json:"activity"`
	Score       int      `json:"score"`
	Rating      string   `json:"rating"`
	Issues      []string `json:"issues"`
	Description string   `json:"description"`
}

// ActivityForecast wraps a suitability score with the averages it was
// derived from.
type ActivityForecast struct {
	Location          Location            `json:"location"`
	Month             *int                `json:"month"`
	Activity          string              `json:"activity"`
	Suitability       ActivitySuitability `json:"suitability"`
	AverageConditions map[string]float64  `json:"average_conditions"`
}

// AirQualityAssessment is the meteorological air-quality proxy result.
type AirQualityAssessment struct {
	PoorAirQualityProbability float64 `json:"poor_air_quality_probability"`
	DaysAnalyzed              int     `json:"days_analyzed"`
	Method                    string  `json:"method"`
}

// AirQualityReport wraps the assessment with a risk level and
// advisory for the caller.
type AirQualityReport struct {
	Location   Location             `json:"location"`
	Month      int                  `json:"month"`
	Assessment AirQualityAssessment `json:"air_quality_assessment"`
	RiskLevel  string               `json:"risk_level"`
	Advisory   string               `json:"advisory"`
}
