package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/66gu1/filmoradmin/internal/infrastructure/apperr"
	"github.com/66gu1/filmoradmin/internal/infrastructure/logger"
)

// BackendError is a non-2xx answer of the backend api that still carries its HTTP status.
type BackendError interface {
	error
	HTTPStatus() int
	UserMessage() string
}

func ReturnError(ctx context.Context, w http.ResponseWriter, returningErr error) {
	appError := apperr.FromError(returningErr)
	code := toHTTPCode(apperr.ClassOf(appError))
	if code == 0 {
		logger.Error(ctx, returningErr).Int("error_code", code).Msg("incorrect error code")
		code = http.StatusInternalServerError
	}

	writeError(ctx, w, code, appError, returningErr)
}

// ReturnBackendError renders a failed proxied call. The backend's own 4xx answers keep their
// status and message so that form validation reaches the UI. Its 5xx answers and unclassified
// errors such as transport failures become 502.
func ReturnBackendError(ctx context.Context, w http.ResponseWriter, returningErr error) {
	var be BackendError
	if errors.As(returningErr, &be) {
		status := be.HTTPStatus()
		if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
			appError := apperr.New(be.UserMessage(), apperr.CodeBackendRejected, apperr.ClassBadRequest, apperr.LogLevelWarn)
			writeError(ctx, w, status, appError, returningErr)
			return
		}
		ReturnError(ctx, w, apperr.ErrBadGateway().WithDetail(be.Error()))
		return
	}

	if apperr.ClassOf(returningErr) == apperr.ClassInternal {
		ReturnError(ctx, w, apperr.ErrBadGateway().WithDetail(returningErr.Error()))
		return
	}
	ReturnError(ctx, w, returningErr)
}

func writeError(ctx context.Context, w http.ResponseWriter, code int, appError error, returningErr error) {
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
	}
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(map[string]any{
		"error": appError,
	})
	if err != nil {
		logger.Error(ctx, err).Str("returning_error", returningErr.Error()).Msg("error encode failed")
	}
}

func toHTTPCode(code apperr.Class) int {
	switch code {
	case apperr.ClassBadRequest:
		return http.StatusBadRequest
	case apperr.ClassNotFound:
		return http.StatusNotFound
	case apperr.ClassUnauthorized:
		return http.StatusUnauthorized
	case apperr.ClassForbidden:
		return http.StatusForbidden
	case apperr.ClassInternal:
		return http.StatusInternalServerError
	case apperr.ClassConflict:
		return http.StatusConflict
	case apperr.ClassTooManyRequests:
		return http.StatusTooManyRequests
	case apperr.ClassBadGateway:
		return http.StatusBadGateway
	}

	return 0
}
