package timeseries

import "strconv"

// SeasonMonths maps meteorological season codes to their month sets.
var SeasonMonths = map[string]map[int]bool{
	"djf": {12: true, 1: true, 2: true},
	"mam": {3: true, 4: true, 5: true},
	"jja": {6: true, 7: true, 8: true},
	"son": {9: true, 10: true, 11: true},
}

// FilterByMonth keeps entries whose date falls in the given month (1-12).
// Entries with unparseable date keys are dropped.
func FilterByMonth(s Series, month int) Series {
	out := make(Series)
	for key, value := range s {
		t, ok := ParseDateKey(key)
		if !ok {
			continue
		}
		if int(t.Month()) == month {
			out[key] = value
		}
	}
	return out
}

// FilterBySeason keeps entries whose month belongs to the given season
// (djf, mam, jja, son). Unknown season codes yield an empty series.
func FilterBySeason(s Series, season string) Series {
	months := SeasonMonths[season]
	out := make(Series)
	for key, value := range s {
		t, ok := ParseDateKey(key)
		if !ok {
			continue
		}
		if months[int(t.Month())] {
			out[key] = value
		}
	}
	return out
}

// FilterByDayOfYear keeps entries whose ordinal day of year (1-366,
// leap-year aware) matches doy.
func FilterByDayOfYear(s Series, doy int) Series {
	out := make(Series)
	for key, value := range s {
		t, ok := ParseDateKey(key)
		if !ok {
			continue
		}
		if t.YearDay() == doy {
			out[key] = value
		}
	}
	return out
}

// FilterByYearRange keeps entries whose year lies within the inclusive
// [startYear, endYear] bounds. A nil bound leaves that side open; with
// both bounds nil the input is returned unchanged.
func FilterByYearRange(s Series, startYear, endYear *int) Series {
	if startYear == nil && endYear == nil {
		return s
	}
	out := make(Series)
	for key, value := range s {
		if len(key) < 4 {
			continue
		}
		year, err := strconv.Atoi(key[:4])
		if err != nil {
			continue
		}
		if startYear != nil && year < *startYear {
			continue
		}
		if endYear != nil && year > *endYear {
			continue
		}
		out[key] = value
	}
	return out
}

// Selector bundles the optional calendar criteria of one request.
// At most one of DayOfYear/Season/Month is applied, in that precedence
// order; the year range composes with whichever selector is active.
type Selector struct {
	Month     *int
	Season    *string
	DayOfYear *int
	StartYear *int
	EndYear   *int
}

// Apply runs the selector's filters over the series.
func (sel Selector) Apply(s Series) Series {
	out := FilterByYearRange(s, sel.StartYear, sel.EndYear)
	switch {
	case sel.DayOfYear != nil:
		out = FilterByDayOfYear(out, *sel.DayOfYear)
	case sel.Season != nil:
		out = FilterBySeason(out, *sel.Season)
	case sel.Month != nil:
		out = FilterByMonth(out, *sel.Month)
	}
	return out
}
