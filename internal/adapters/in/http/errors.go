package http

import (
	"errors"
	"net/http"

	"jikoni/internal/core/application/usecases/commands"
	"jikoni/internal/core/domain/model/cart"
	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/core/domain/model/order"
	"jikoni/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps domain and application errors onto HTTP status codes:
// unknown objects become 404, rejected input becomes 400 and business rule
// conflicts become 409. Anything unrecognized is a 500 with a generic
// message so internals never leak to clients.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrOrderAlreadyPaid),
		errors.Is(err, commands.ErrTableNotAvailable),
		errors.Is(err, cart.ErrCartIsEmpty),
		errors.Is(err, cart.ErrItemUnavailable):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// parseUUID wraps identifier parsing so malformed input surfaces as a 400,
// not a 500.
func parseUUID(paramName, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}
