package timeseries

import (
	"sort"
	"time"
)

// MissingValue is the sentinel NASA POWER uses for an absent daily reading.
const MissingValue = -999.0

// DateLayout is the 8-digit date key format used by the daily point API.
const DateLayout = "20060102"

// Series maps an 8-digit date key ("YYYYMMDD") to a daily reading.
// A reading equal to MissingValue means the day has no usable data.
// All transformations on a Series are pure: they return a new Series
// and never mutate their input.
type Series map[string]float64

// ParseDateKey parses an 8-digit date key. Returns false for keys that
// are not valid calendar dates.
func ParseDateKey(key string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, key)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// SortedKeys returns the date keys in ascending calendar order.
func (s Series) SortedKeys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ValidValues drops entries whose reading is the missing sentinel and
// returns the remaining readings in ascending date order. An empty or
// nil series yields an empty slice.
func ValidValues(s Series) []float64 {
	values := make([]float64, 0, len(s))
	for _, k := range s.SortedKeys() {
		if v := s[k]; v != MissingValue {
			values = append(values, v)
		}
	}
	return values
}
