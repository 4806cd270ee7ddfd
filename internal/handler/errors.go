package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/climsight/weather-probability-go/internal/provider"
	"github.com/climsight/weather-probability-go/internal/service"
	"github.com/climsight/weather-probability-go/pkg/response"
)

// writeError maps engine errors onto HTTP statuses. The taxonomy keeps
// "could not retrieve data" (bad gateway) apart from "nothing to
// report" (not found) and from caller mistakes (bad request).
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownCondition),
		errors.Is(err, service.ErrEmptyRegion),
		errors.Is(err, service.ErrInvalidRequest):
		response.BadRequest(c, err.Error())
	case errors.Is(err, provider.ErrParameterMissing):
		response.NotFound(c, err.Error())
	case errors.Is(err, provider.ErrUnavailable):
		response.BadGateway(c, err.Error())
	case errors.Is(err, service.ErrNoRegionData),
		errors.Is(err, service.ErrNoData):
		response.NotFound(c, err.Error())
	default:
		response.InternalError(c, err.Error())
	}
}
