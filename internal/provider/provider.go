package provider

import (
	"context"
	"errors"
	"time"

	"github.com/climsight/weather-probability-go/internal/timeseries"
)

// ErrUnavailable marks failures of the upstream data source itself:
// network errors, timeouts, non-2xx responses, an open circuit. It is
// deliberately distinct from having fetched an empty or fully-missing
// series, which is not an error at all.
var ErrUnavailable = errors.New("data source unavailable")

// ErrParameterMissing is returned when the upstream answered but did
// not include a requested parameter.
var ErrParameterMissing = errors.New("parameter not found in response")

// RawSeriesProvider abstracts the external daily-series source
// (NASA POWER). Implementations are network-bound and may fail or time
// out; fetches are assumed idempotent, and neither caching nor retries
// beyond the client's own policy are the engine's concern.
type RawSeriesProvider interface {
	FetchDaily(ctx context.Context, lat, lon float64, start, end time.Time, parameters []string) (map[string]timeseries.Series, error)
}
