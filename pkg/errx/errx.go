package errx

import (
	"fmt"
	"net/http"
)

// Type classifies an error for logging and HTTP mapping.
type Type string

const (
	TypeValidation    Type = "VALIDATION"
	TypeNotFound      Type = "NOT_FOUND"
	TypeConflict      Type = "CONFLICT"
	TypeAuthorization Type = "AUTHORIZATION"
	TypeBusiness      Type = "BUSINESS"
	TypeInternal      Type = "INTERNAL"
	TypeExternal      Type = "EXTERNAL"
)

// Code identifies a registered error within a registry.
type Code string

// Error is the error value returned by every domain operation. It carries the
// registered code, the HTTP status the API layer should answer with, and
// optional structured details.
type Error struct {
	Type       Type           `json:"type"`
	Code       Code           `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Cause      error          `json:"-"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail attaches a single key/value detail and returns the error.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithDetails merges a detail map into the error.
func (e *Error) WithDetails(details map[string]any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any, len(details))
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithCause records the underlying error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// ToHTTPResponse is the JSON body the global error handler serves.
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"error":   true,
		"type":    e.Type,
		"code":    e.Code,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}

// registration holds the static definition of an error code.
type registration struct {
	errType    Type
	httpStatus int
	message    string
}

// Registry is a per-domain namespace of error codes. Codes are registered once
// at package init; New mints fresh *Error values so details never leak between
// requests.
type Registry struct {
	prefix string
	codes  map[Code]registration
}

// NewRegistry creates a registry whose codes are prefixed "PREFIX_".
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		codes:  make(map[Code]registration),
	}
}

// Register defines a code and returns the fully-qualified Code value.
func (r *Registry) Register(code string, errType Type, httpStatus int, message string) Code {
	full := Code(r.prefix + "_" + code)
	r.codes[full] = registration{errType: errType, httpStatus: httpStatus, message: message}
	return full
}

// New creates an error instance for a registered code.
func (r *Registry) New(code Code) *Error {
	reg, ok := r.codes[code]
	if !ok {
		return &Error{
			Type:       TypeInternal,
			Code:       code,
			Message:    "unregistered error code",
			HTTPStatus: http.StatusInternalServerError,
		}
	}
	return &Error{
		Type:       reg.errType,
		Code:       code,
		Message:    reg.message,
		HTTPStatus: reg.httpStatus,
	}
}

// NewWithCause creates an error instance wrapping an underlying cause.
func (r *Registry) NewWithCause(code Code, cause error) *Error {
	return r.New(code).WithCause(cause)
}

// Wrap converts an arbitrary error into an *Error of the given type. Used for
// infrastructure failures that have no registered domain code.
func Wrap(err error, message string, errType Type) *Error {
	status := http.StatusInternalServerError
	switch errType {
	case TypeValidation:
		status = http.StatusBadRequest
	case TypeNotFound:
		status = http.StatusNotFound
	case TypeConflict:
		status = http.StatusConflict
	case TypeAuthorization:
		status = http.StatusForbidden
	}
	return &Error{
		Type:       errType,
		Code:       Code(string(errType)),
		Message:    message,
		HTTPStatus: status,
		Cause:      err,
	}
}

// IsCode reports whether err is an *Error carrying the given code.
func IsCode(err error, code Code) bool {
	e, ok := err.(*Error)
	return ok && e.Code == code
}

// IsType reports whether err is an *Error of the given type.
func IsType(err error, t Type) bool {
	e, ok := err.(*Error)
	return ok && e.Type == t
}
