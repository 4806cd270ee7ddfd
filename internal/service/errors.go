package service

import "errors"

var (
	// ErrInvalidRequest marks structurally bad caller input that got
	// past binding, such as a malformed date string.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnknownCondition means the requested condition type has no
	// entry in the injected threshold table.
	ErrUnknownCondition = errors.New("unknown condition type")

	// ErrNoData means the series held no valid readings after
	// filtering. It is not a failure of the data source; see
	// provider.ErrUnavailable for that.
	ErrNoData = errors.New("no valid data after filtering")

	// ErrNoRegionData means no sample coordinate in a region produced
	// a usable probability.
	ErrNoRegionData = errors.New("no valid samples inside region")

	// ErrEmptyRegion means a region request named neither points nor a
	// polygon.
	ErrEmptyRegion = errors.New("provide points or polygon")
)
