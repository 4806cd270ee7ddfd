package config

// ConditionRule bounds one meteorological parameter for an activity.
// A nil bound leaves that side open.
type ConditionRule struct {
	Condition string
	Parameter string
	Min       *float64
	Max       *float64
}

// ActivityPreset describes the conditions an activity wants.
type ActivityPreset struct {
	Name        string
	Description string
	Ideal       []ConditionRule
}

// ActivityPresets is the injected activity table.
type ActivityPresets map[string]ActivityPreset

func fptr(v float64) *float64 { return &v }

// DefaultActivityPresets returns the built-in activity table.
func DefaultActivityPresets() ActivityPresets {
	return ActivityPresets{
		"beach": {
			Name:        "Beach Mode",
			Description: "Sunny, warm, low rainfall",
			Ideal: []ConditionRule{
				{Condition: "temperature", Parameter: "T2M", Min: fptr(25), Max: fptr(35)},
				{Condition: "precipitation", Parameter: "PRECTOTCORR", Max: fptr(5)},
				{Condition: "cloud_cover", Parameter: "CLOUD_AMT", Max: fptr(30)},
				{Condition: "wind", Parameter: "WS10M", Max: fptr(10)},
			},
		},
		"hiking": {
			Name:        "Hiking Mode",
			Description: "Cool, dry, moderate wind",
			Ideal: []ConditionRule{
				{Condition: "temperature", Parameter: "T2M", Min: fptr(15), Max: fptr(28)},
				{Condition: "precipitation", Parameter: "PRECTOTCORR", Max: fptr(2)},
				{Condition: "wind", Parameter: "WS10M", Max: fptr(15)},
				{Condition: "humidity", Parameter: "RH2M", Max: fptr(70)},
			},
		},
		"skiing": {
			Name:        "Ski Mode",
			Description: "Cold with snow probability",
			Ideal: []ConditionRule{
				{Condition: "temperature", Parameter: "T2M", Min: fptr(-10), Max: fptr(5)},
				{Condition: "snow_depth", Parameter: "SNODP", Min: fptr(10)},
				{Condition: "wind", Parameter: "WS10M", Max: fptr(20)},
			},
		},
		"cycling": {
			Name:        "Cycling Mode",
			Description: "Moderate temp, low wind, dry",
			Ideal: []ConditionRule{
				{Condition: "temperature", Parameter: "T2M", Min: fptr(18), Max: fptr(30)},
				{Condition: "precipitation", Parameter: "PRECTOTCORR", Max: fptr(1)},
				{Condition: "wind", Parameter: "WS10M", Max: fptr(12)},
			},
		},
		"camping": {
			Name:        "Camping Mode",
			Description: "Mild, dry, low wind",
			Ideal: []ConditionRule{
				{Condition: "temperature", Parameter: "T2M", Min: fptr(10), Max: fptr(28)},
				{Condition: "precipitation", Parameter: "PRECTOTCORR", Max: fptr(5)},
				{Condition: "wind", Parameter: "WS10M", Max: fptr(15)},
			},
		},
	}
}
