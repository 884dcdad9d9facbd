package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "validation message verbatim",
			err:    fmt.Errorf("wrapped: %w", domain.NewValidationError("email is required")),
			status: http.StatusBadRequest,
			body:   `{"ok":false,"error":"email is required"}`,
		},
		{
			name:   "conflict",
			err:    fmt.Errorf("%w: slot already booked", domain.ErrConflict),
			status: http.StatusConflict,
			body:   `{"ok":false,"error":"slot already booked"}`,
		},
		{
			name:   "invalid transition",
			err:    fmt.Errorf("%w: only pending appointments can be confirmed", domain.ErrInvalidTransition),
			status: http.StatusConflict,
			body:   `{"ok":false,"error":"only pending appointments can be confirmed"}`,
		},
		{
			name:   "not found",
			err:    fmt.Errorf("%w: memory: appointment not found", domain.ErrNotFound),
			status: http.StatusNotFound,
			body:   `{"ok":false,"error":"not found"}`,
		},
		{
			name:   "forbidden",
			err:    fmt.Errorf("%w: admin access required", domain.ErrForbidden),
			status: http.StatusForbidden,
			body:   `{"ok":false,"error":"access denied"}`,
		},
		{
			name:   "unauthorized",
			err:    domain.ErrUnauthorized,
			status: http.StatusUnauthorized,
			body:   `{"ok":false,"error":"authentication required"}`,
		},
		{
			name:   "storage details are hidden",
			err:    fmt.Errorf("%w: pq: connection reset", domain.ErrStorage),
			status: http.StatusInternalServerError,
			body:   `{"ok":false,"error":"something went wrong, please try again"}`,
		},
		{
			name:   "unknown error",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			body:   `{"ok":false,"error":"something went wrong, please try again"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RespondServiceError(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.body, rec.Body.String())
			assert.Equal(t, tt.status < 500, IsClientError(tt.err))
		})
	}
}
