package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"orders/internal/pkg/errs"
)

// ErrorResponse is the JSON shape of every error returned by the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps use case failures onto HTTP status codes.
// Not-found failures become 404, validation and precondition failures 400,
// anything unrecognized a generic 500 without leaking internals.
func respondError(ctx echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return ctx.JSON(httpErr.Code, ErrorResponse{
			Code:    httpErr.Code,
			Message: fmt.Sprintf("%v", httpErr.Message),
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrPreconditionFailed):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		ctx.Logger().Error(err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}
}

// bindError converts body decoding failures into validation errors so that
// malformed payloads surface as 400 rather than 500.
func bindError(err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		var typeErr *json.UnmarshalTypeError
		if errors.As(httpErr.Internal, &typeErr) {
			return errs.NewValueIsInvalidErrorWithCause(typeErr.Field,
				errors.New("incorrect data type"))
		}
		return httpErr
	}
	return errs.NewValueIsInvalidErrorWithCause("body", err)
}

// pathID parses a numeric path parameter. An unparsable value can never
// identify a stored object, so it is reported as not found.
func pathID(ctx echo.Context, name string, objectName string) (int64, error) {
	raw := ctx.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.NewObjectNotFoundErrorWithCause(objectName, raw, err)
	}
	return id, nil
}
