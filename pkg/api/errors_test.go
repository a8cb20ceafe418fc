package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ufal/maskit-web/pkg/maskit"
	"github.com/ufal/maskit-web/pkg/session"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "validation error maps to 400",
			err:        &maskit.ValidationError{Field: "text", Err: maskit.ErrEmptyText},
			expectCode: http.StatusBadRequest,
			expectMsg:  "input text is empty",
		},
		{
			name:       "not found maps to 404",
			err:        fmt.Errorf("%w: abc", session.ErrSessionNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  "session not found",
		},
		{
			name:       "no result maps to 409",
			err:        session.ErrNoResult,
			expectCode: http.StatusConflict,
			expectMsg:  "nothing has been processed yet",
		},
		{
			name:       "superseded maps to 409",
			err:        session.ErrSuperseded,
			expectCode: http.StatusConflict,
			expectMsg:  "superseded",
		},
		{
			name:       "remote error maps to 502 with its body",
			err:        &maskit.APIError{Endpoint: "process", StatusCode: 400, Body: "Text too long"},
			expectCode: http.StatusBadGateway,
			expectMsg:  "An error occurred: Text too long",
		},
		{
			name:       "remote error without body",
			err:        &maskit.APIError{Endpoint: "process", StatusCode: 500},
			expectCode: http.StatusBadGateway,
			expectMsg:  "An error occurred!",
		},
		{
			name:       "unreachable service maps to 502",
			err:        fmt.Errorf("call process endpoint: %w: dial tcp", maskit.ErrUnavailable),
			expectCode: http.StatusBadGateway,
			expectMsg:  "An error occurred!",
		},
		{
			name:       "timeout maps to 504",
			err:        fmt.Errorf("call process endpoint: %w", context.DeadlineExceeded),
			expectCode: http.StatusGatewayTimeout,
			expectMsg:  "An error occurred!",
		},
		{
			name:       "unknown error maps to 500",
			err:        fmt.Errorf("something unexpected happened"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := mapError(tt.err)
			assert.Equal(t, tt.expectCode, code)
			assert.Contains(t, msg, tt.expectMsg)
		})
	}
}
