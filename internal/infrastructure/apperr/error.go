package apperr

import (
	"errors"
	"slices"
)

const (
	CodeBadRequest      Code = "core/bad_request"
	CodeUnauthorized    Code = "core/unauthorized"
	CodeNotFound        Code = "core/not_found"
	CodeTooManyRequests Code = "core/too_many_requests"
	CodeInternal        Code = "core/internal_error"

	CodeBackendRejected    Code = "core/backend_rejected"
	CodeBackendUnavailable Code = "core/backend_unavailable"
)

const (
	BadRequestMsg      = "Bad request"
	UnauthorizedMsg    = "Unauthorized"
	NotFoundMsg        = "Not found"
	TooManyRequestsMsg = "Too many requests"
	InternalMsg        = "Internal server error"
	BackendMsg         = "Backend unavailable"
)

func ErrBadRequest() *appError {
	return &appError{
		Message:  BadRequestMsg,
		Code:     CodeBadRequest,
		class:    ClassBadRequest,
		logLevel: LogLevelWarn,
		detail:   BadRequestMsg,
	}
}

func ErrUnauthorized() *appError {
	return &appError{
		Message:  UnauthorizedMsg,
		Code:     CodeUnauthorized,
		class:    ClassUnauthorized,
		logLevel: LogLevelWarn,
		detail:   UnauthorizedMsg,
	}
}

// ErrNotFound is also what authorization failures render as: the dashboard never answers 403.
func ErrNotFound() *appError {
	return &appError{
		Message:  NotFoundMsg,
		Code:     CodeNotFound,
		class:    ClassNotFound,
		logLevel: LogLevelWarn,
		detail:   NotFoundMsg,
	}
}

func ErrTooManyRequests() *appError {
	return &appError{
		Message:  TooManyRequestsMsg,
		Code:     CodeTooManyRequests,
		class:    ClassTooManyRequests,
		logLevel: LogLevelWarn,
		detail:   TooManyRequestsMsg,
	}
}

// ErrBadGateway wraps a failure of the backend api behind the dashboard.
func ErrBadGateway() *appError {
	return &appError{
		Message:  BackendMsg,
		Code:     CodeBackendUnavailable,
		class:    ClassBadGateway,
		logLevel: LogLevelError,
		detail:   BackendMsg,
	}
}

// appError is used for all application-level errors that should be shown to the user (e.g. 400, 401, 404).
// For internal server errors (500), use fmt.Errorf and handle them separately to avoid exposing internal details to the client.
type appError struct {
	Message    string      `json:"message"` // Message for user
	Code       Code        `json:"code"`
	Violations []Violation `json:"violations,omitempty"`
	class      Class
	logLevel   LogLevel
	detail     string // detail for logs
}

func New(message string, code Code, class Class, logLevel LogLevel) *appError {
	return &appError{
		Message:  message,
		class:    class,
		logLevel: logLevel,
		Code:     code,
		detail:   message,
	}
}

func (e *appError) WithUserMessage(message string) *appError {
	e.Message = message
	return e
}

func (e *appError) WithDetail(detail string) *appError {
	e.detail = detail
	return e
}

func (e *appError) WithViolation(v Violation) *appError {
	e.Violations = append(e.Violations, v)
	return e
}

func (e *appError) Error() string {
	return e.detail
}

func (e *appError) Is(target error) bool {
	if t, ok := target.(*appError); ok {
		if e.Code != t.Code {
			return false
		}

		return slices.EqualFunc(e.Violations, t.Violations, func(a, b Violation) bool {
			return a.Field == b.Field && a.Rule == b.Rule
		})
	}

	return false
}

type Violation struct {
	Field  Field          `json:"field"`
	Rule   Rule           `json:"rule"`
	Params map[string]any `json:"params,omitempty"`
}

type Field string

func (f Field) String() string { return string(f) }

const (
	FieldRequest Field = "request"
)

type Code string

type Class uint8

const (
	ClassInternal        Class = 1
	ClassBadRequest      Class = 2
	ClassNotFound        Class = 3
	ClassUnauthorized    Class = 4
	ClassForbidden       Class = 5
	ClassConflict        Class = 6
	ClassTooManyRequests Class = 7
	ClassBadGateway      Class = 8
)

type LogLevel int

const (
	LogLevelError LogLevel = 0
	LogLevelWarn  LogLevel = 1
)

func ClassOf(err error) Class {
	var ae *appError
	if errors.As(err, &ae) {
		return ae.class
	}
	return ClassInternal
}

func CodeOf(err error) Code {
	var ae *appError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeInternal
}

func LogLevelOf(err error) LogLevel {
	var ae *appError
	if errors.As(err, &ae) {
		return ae.logLevel
	}
	return LogLevelError
}

func FromError(err error) *appError {
	var ae *appError
	if errors.As(err, &ae) {
		return ae
	}
	return &appError{
		Message:  InternalMsg,
		Code:     CodeInternal,
		class:    ClassInternal,
		logLevel: LogLevelError,
		detail:   err.Error(),
	}
}
