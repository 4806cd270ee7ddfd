package timeseries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestFilterByMonth(t *testing.T) {
	s := Series{
		"20200115": 1.0,
		"20200220": 2.0,
		"20210110": 3.0,
		"notadate": 4.0,
	}

	jan := FilterByMonth(s, 1)
	assert.Equal(t, Series{"20200115": 1.0, "20210110": 3.0}, jan)

	t.Run("idempotent", func(t *testing.T) {
		assert.Equal(t, jan, FilterByMonth(jan, 1))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		assert.Len(t, s, 4)
	})

	t.Run("union over all months restores parseable entries", func(t *testing.T) {
		union := make(Series)
		for m := 1; m <= 12; m++ {
			for k, v := range FilterByMonth(s, m) {
				union[k] = v
			}
		}
		assert.Equal(t, Series{"20200115": 1.0, "20200220": 2.0, "20210110": 3.0}, union)
	})
}

func TestFilterBySeason(t *testing.T) {
	s := Series{
		"20191201": 1.0, // December -> djf
		"20200115": 2.0, // January -> djf
		"20200401": 3.0, // April -> mam
		"20200715": 4.0, // July -> jja
		"20201031": 5.0, // October -> son
	}

	assert.Equal(t, Series{"20191201": 1.0, "20200115": 2.0}, FilterBySeason(s, "djf"))
	assert.Equal(t, Series{"20200401": 3.0}, FilterBySeason(s, "mam"))
	assert.Equal(t, Series{"20200715": 4.0}, FilterBySeason(s, "jja"))
	assert.Equal(t, Series{"20201031": 5.0}, FilterBySeason(s, "son"))
	assert.Empty(t, FilterBySeason(s, "zzz"))
}

func TestFilterByDayOfYear(t *testing.T) {
	s := Series{
		"20200301": 1.0, // doy 61 in leap 2020
		"20210301": 2.0, // doy 60 in 2021
		"20200229": 3.0, // doy 60, leap day
	}

	doy60 := FilterByDayOfYear(s, 60)
	assert.Equal(t, Series{"20210301": 2.0, "20200229": 3.0}, doy60)

	doy61 := FilterByDayOfYear(s, 61)
	assert.Equal(t, Series{"20200301": 1.0}, doy61)
}

func TestFilterByYearRange(t *testing.T) {
	s := Series{
		"20180601": 1.0,
		"20190601": 2.0,
		"20200601": 3.0,
		"20210601": 4.0,
	}

	t.Run("both bounds", func(t *testing.T) {
		got := FilterByYearRange(s, intPtr(2019), intPtr(2020))
		assert.Equal(t, Series{"20190601": 2.0, "20200601": 3.0}, got)
	})

	t.Run("open start", func(t *testing.T) {
		got := FilterByYearRange(s, nil, intPtr(2019))
		assert.Equal(t, Series{"20180601": 1.0, "20190601": 2.0}, got)
	})

	t.Run("open end", func(t *testing.T) {
		got := FilterByYearRange(s, intPtr(2021), nil)
		assert.Equal(t, Series{"20210601": 4.0}, got)
	})

	t.Run("no bounds returns input unchanged", func(t *testing.T) {
		got := FilterByYearRange(s, nil, nil)
		assert.Equal(t, s, got)
	})
}

func TestSelectorPrecedence(t *testing.T) {
	s := Series{
		"20200115": 1.0, // jan, doy 15
		"20200116": 2.0, // jan, doy 16
		"20200715": 3.0, // jul
	}

	t.Run("doy wins over season and month", func(t *testing.T) {
		sel := Selector{DayOfYear: intPtr(15), Season: strPtr("jja"), Month: intPtr(7)}
		assert.Equal(t, Series{"20200115": 1.0}, sel.Apply(s))
	})

	t.Run("season wins over month", func(t *testing.T) {
		sel := Selector{Season: strPtr("jja"), Month: intPtr(1)}
		assert.Equal(t, Series{"20200715": 3.0}, sel.Apply(s))
	})

	t.Run("year range composes", func(t *testing.T) {
		sel := Selector{Month: intPtr(1), StartYear: intPtr(2021)}
		assert.Empty(t, sel.Apply(s))
	})

	t.Run("empty selector passes everything through", func(t *testing.T) {
		assert.Equal(t, s, Selector{}.Apply(s))
	})
}

func TestValidValues(t *testing.T) {
	t.Run("strips sentinel and orders by date", func(t *testing.T) {
		s := Series{
			"20200103": MissingValue,
			"20200101": 5.0,
			"20200102": 15.0,
		}
		assert.Equal(t, []float64{5.0, 15.0}, ValidValues(s))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, ValidValues(Series{}))
		assert.Empty(t, ValidValues(nil))
	})
}

func TestParseDateKey(t *testing.T) {
	_, ok := ParseDateKey("20200229")
	require.True(t, ok)

	for _, bad := range []string{"", "2020", "20210229", "2020-01-01", "abcdefgh"} {
		_, ok := ParseDateKey(bad)
		assert.False(t, ok, "key %q should not parse", bad)
	}
}
