package httpx_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/66gu1/filmoradmin/internal/infrastructure/apperr"
	"github.com/66gu1/filmoradmin/internal/infrastructure/httpx"
	"github.com/stretchr/testify/require"
)

type statusError struct {
	status  int
	message string
}

func (e *statusError) Error() string       { return fmt.Sprintf("status %d: %s", e.status, e.message) }
func (e *statusError) HTTPStatus() int     { return e.status }
func (e *statusError) UserMessage() string { return e.message }

func TestReturnError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "classified",
			err:        fmt.Errorf("wrap: %w", apperr.ErrNotFound()),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":{"message":"Not found","code":"core/not_found"}}`,
		},
		{
			name:       "unclassified hides details",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":{"message":"Internal server error","code":"core/internal_error"}}`,
		},
		{
			name:       "too many requests",
			err:        apperr.ErrTooManyRequests(),
			wantStatus: http.StatusTooManyRequests,
			wantBody:   `{"error":{"message":"Too many requests","code":"core/too_many_requests"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			httpx.ReturnError(t.Context(), rec, tt.err)

			require.Equal(t, tt.wantStatus, rec.Code)
			require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
			require.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestReturnBackendError(t *testing.T) {
	t.Parallel()

	unavailable := `{"error":{"message":"Backend unavailable","code":"core/backend_unavailable"}}`

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation answer keeps status and message",
			err:        fmt.Errorf("forward: %w", &statusError{status: http.StatusBadRequest, message: "name: required"}),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":{"message":"name: required","code":"core/backend_rejected"}}`,
		},
		{
			name:       "not found answer keeps status",
			err:        &statusError{status: http.StatusNotFound, message: "Not found."},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":{"message":"Not found.","code":"core/backend_rejected"}}`,
		},
		{
			name:       "server error is bad gateway",
			err:        &statusError{status: http.StatusInternalServerError, message: "boom"},
			wantStatus: http.StatusBadGateway,
			wantBody:   unavailable,
		},
		{
			name:       "transport error is bad gateway",
			err:        errors.New("dial tcp: refused"),
			wantStatus: http.StatusBadGateway,
			wantBody:   unavailable,
		},
		{
			name:       "classified error passes through",
			err:        fmt.Errorf("forward: %w", apperr.ErrNotFound()),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":{"message":"Not found","code":"core/not_found"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			httpx.ReturnBackendError(t.Context(), rec, tt.err)

			require.Equal(t, tt.wantStatus, rec.Code)
			require.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
