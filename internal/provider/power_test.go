package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climsight/weather-probability-go/internal/timeseries"
)

const powerPayload = `{
	"properties": {
		"parameter": {
			"T2M_MAX": {"20200101": 12.5, "20200102": -999},
			"PRECTOTCORR": {"20200101": 0.0, "20200102": 4.2}
		}
	}
}`

func powerWindow() (time.Time, time.Time) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	return start, end
}

func TestPowerClientFetchDaily(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"parameters": q.Get("parameters"),
			"community":  q.Get("community"),
			"latitude":   q.Get("latitude"),
			"longitude":  q.Get("longitude"),
			"start":      q.Get("start"),
			"end":        q.Get("end"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(powerPayload))
	}))
	defer srv.Close()

	client := NewPowerClient(srv.URL, srv.Client())
	start, end := powerWindow()

	series, err := client.FetchDaily(context.Background(), 39.9, -75.2, start, end,
		[]string{"T2M_MAX", "PRECTOTCORR"})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"parameters": "T2M_MAX,PRECTOTCORR",
		"community":  "AG",
		"latitude":   "39.9",
		"longitude":  "-75.2",
		"start":      "20200101",
		"end":        "20200102",
	}, gotQuery)

	require.Contains(t, series, "T2M_MAX")
	assert.Equal(t, 12.5, series["T2M_MAX"]["20200101"])
	assert.Equal(t, timeseries.MissingValue, series["T2M_MAX"]["20200102"])
	assert.Equal(t, 4.2, series["PRECTOTCORR"]["20200102"])
}

func TestPowerClientMissingParameter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(powerPayload))
	}))
	defer srv.Close()

	client := NewPowerClient(srv.URL, srv.Client())
	start, end := powerWindow()

	_, err := client.FetchDaily(context.Background(), 0, 0, start, end, []string{"WS10M"})
	assert.ErrorIs(t, err, ErrParameterMissing)
}

func TestPowerClientMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	client := NewPowerClient(srv.URL, srv.Client())
	start, end := powerWindow()

	_, err := client.FetchDaily(context.Background(), 0, 0, start, end, []string{"T2M_MAX"})
	assert.ErrorIs(t, err, ErrUnavailable)
}
