// apperr.go - Error kinds shared by repositories, middleware and handlers

// Package apperr defines the error taxonomy of the API. Every failure a
// handler reports is an *Error carrying exactly one Kind, and each Kind maps
// to one HTTP status.
package apperr // Declares the package name

import ( // Import required packages
	"errors"   // Error inspection
	"net/http" // HTTP status codes
)

// Kind identifies one entry of the error taxonomy.
type Kind int

const (
	Internal Kind = iota
	Validation
	Unauthenticated
	InvalidToken
	NotFound
	Forbidden
	DuplicateUser
	InvalidCredentials
)

var kindNames = map[Kind]string{
	Internal:           "InternalError",
	Validation:         "ValidationError",
	Unauthenticated:    "Unauthenticated",
	InvalidToken:       "InvalidToken",
	NotFound:           "NotFound",
	Forbidden:          "Forbidden",
	DuplicateUser:      "DuplicateUser",
	InvalidCredentials: "InvalidCredentials",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Status returns the HTTP status code reported for the kind.
func (k Kind) Status() int {
	switch k {
	case Validation, DuplicateUser, InvalidCredentials:
		return http.StatusBadRequest
	case Unauthenticated:
		return http.StatusUnauthorized
	case InvalidToken, Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// FieldError is one field-level validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the single error type surfaced to clients.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Err     error // underlying cause, never sent to clients
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Invalid(message string, fields ...FieldError) *Error {
	return &Error{Kind: Validation, Message: message, Fields: fields}
}

func NotFoundf(message string) *Error { return New(NotFound, message) }

func Forbiddenf(message string) *Error { return New(Forbidden, message) }

// Wrap marks an unexpected failure. The cause is kept for logging only.
func Wrap(err error, message string) *Error {
	return &Error{Kind: Internal, Message: message, Err: err}
}

// From returns err as an *Error, wrapping anything unknown as Internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "Internal server error")
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// Body is the JSON reply for e. Causes of internal errors stay private.
func (e *Error) Body() map[string]interface{} {
	body := map[string]interface{}{"message": e.Message}
	if len(e.Fields) > 0 {
		body["errors"] = e.Fields
	}
	return body
}
