package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/climsight/weather-probability-go/internal/timeseries"
)

// DefaultPowerBaseURL is the NASA POWER daily point endpoint.
const DefaultPowerBaseURL = "https://power.larc.nasa.gov/api/temporal/daily/point"

// PowerClient fetches daily series from the NASA POWER API.
type PowerClient struct {
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewPowerClient creates a NASA POWER client with retry, backoff and a
// circuit breaker around the upstream endpoint.
func NewPowerClient(baseURL string, client *http.Client) *PowerClient {
	if baseURL == "" {
		baseURL = DefaultPowerBaseURL
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "nasa-power",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &PowerClient{
		baseURL: baseURL,
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      2,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
	}
}

// powerResponse mirrors the slice of the POWER payload we consume.
type powerResponse struct {
	Properties struct {
		Parameter map[string]timeseries.Series `json:"parameter"`
	} `json:"properties"`
}

// FetchDaily retrieves the daily series for each requested parameter
// over [start, end]. Failures to reach or be answered by the upstream
// are wrapped in ErrUnavailable.
func (c *PowerClient) FetchDaily(ctx context.Context, lat, lon float64, start, end time.Time, parameters []string) (map[string]timeseries.Series, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("parameters", strings.Join(parameters, ","))
		values.Set("community", "AG")
		values.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
		values.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
		values.Set("start", start.Format(timeseries.DateLayout))
		values.Set("end", end.Format(timeseries.DateLayout))
		values.Set("format", "JSON")

		u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, c.httpCfg, c.circuit, buildRequest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var payload powerResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}

	series := make(map[string]timeseries.Series, len(parameters))
	for _, p := range parameters {
		s, ok := payload.Properties.Parameter[p]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrParameterMissing, p)
		}
		series[p] = s
	}
	return series, nil
}
