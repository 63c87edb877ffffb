package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrResponseTooLarge is returned instead of a truncated body.
var ErrResponseTooLarge = errors.New("backend: response body too large")

// Error is a non-2xx answer from the backend.
type Error struct {
	Operation string
	Status    int
	Message   string
	Body      []byte
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend %s: status %d: %s", e.Operation, e.Status, e.Message)
}

func (e *Error) HTTPStatus() int { return e.Status }

func (e *Error) UserMessage() string { return e.Message }

// IsRejected reports whether the backend refused the request itself (bad input or credentials)
// as opposed to failing or being unreachable.
func IsRejected(err error) bool {
	var be *Error
	if !errors.As(err, &be) {
		return false
	}
	switch be.Status {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
		return true
	}
	return false
}

func StatusOf(err error) int {
	var be *Error
	if errors.As(err, &be) {
		return be.Status
	}
	return 0
}

func newError(op string, status int, body []byte) *Error {
	return &Error{
		Operation: op,
		Status:    status,
		Message:   extractMessage(status, body),
		Body:      body,
	}
}

// extractMessage understands the backend's {"detail": ...}, {"message": ...} and {"error": ...} shapes.
func extractMessage(status int, body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, key := range []string{"detail", "message", "error"} {
			switch v := payload[key].(type) {
			case string:
				if v != "" {
					return v
				}
			case []any:
				parts := make([]string, 0, len(v))
				for _, item := range v {
					if s, ok := item.(string); ok {
						parts = append(parts, s)
					}
				}
				if len(parts) > 0 {
					return strings.Join(parts, "; ")
				}
			}
		}
	}
	return http.StatusText(status)
}
