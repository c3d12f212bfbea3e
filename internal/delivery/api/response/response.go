package response

import (
	"net/http"

	deliverycontext "cellcontrol/internal/delivery/context"
	domainerrors "cellcontrol/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail    string `json:"detail"`             // User-friendly error message
	Code      string `json:"code"`               // Machine-readable error code, e.g. "VALIDATION_FAILED"
	RequestID string `json:"request_id"`         // Request tracking ID
	Redirect  string `json:"redirect,omitempty"` // Where the client should navigate instead
}

// Success returns data as the response body.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// NoContent acknowledges a request that has nothing to return.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Blob returns raw bytes, e.g. a generated image.
func Blob(c echo.Context, contentType string, data []byte) error {
	return c.Blob(http.StatusOK, contentType, data)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode, detail, redirect string) error {
	return c.JSON(statusCode, ErrorResponse{
		Detail:    detail,
		Code:      errorCode,
		RequestID: deliverycontext.GetRequestID(c),
		Redirect:  redirect,
	})
}

// AppError renders an application error. Details are only exposed for 4xx errors.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	detail := appErr.Message()
	if appErr.HTTPCode() < http.StatusInternalServerError && appErr.Details() != "" {
		detail += ": " + appErr.Details()
	}

	var redirect string
	var redirector domainerrors.Redirector
	if errors.As(appErr, &redirector) {
		redirect = redirector.Redirect()
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), detail, redirect)
}

// HandleAppError renders client errors directly. Everything else goes to the
// centralized error handler so it gets logged.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}
