package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ufal/maskit-web/pkg/maskit"
	"github.com/ufal/maskit-web/pkg/session"
)

// genericRemoteError is shown when the remote service gave no usable message.
const genericRemoteError = "An error occurred!"

// mapError maps domain errors to an HTTP status and a user facing message.
func mapError(err error) (int, string) {
	var validErr *maskit.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, validErr.Error()
	}
	if errors.Is(err, session.ErrSessionNotFound) {
		return http.StatusNotFound, "session not found"
	}
	if errors.Is(err, session.ErrNoResult) {
		return http.StatusConflict, "nothing has been processed yet"
	}
	if errors.Is(err, session.ErrSuperseded) {
		return http.StatusConflict, "submission was superseded by a newer one"
	}
	var apiErr *maskit.APIError
	if errors.As(err, &apiErr) {
		return http.StatusBadGateway, apiErr.UserMessage()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, genericRemoteError
	}
	if errors.Is(err, maskit.ErrUnavailable) {
		return http.StatusBadGateway, genericRemoteError
	}

	slog.Error("Unexpected error", "error", err)
	return http.StatusInternalServerError, "internal server error"
}

func abortWithError(c *gin.Context, err error) {
	code, msg := mapError(err)
	c.AbortWithStatusJSON(code, ErrorResponse{Error: msg})
}

func abortBadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}
