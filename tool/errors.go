package tool

import "fmt"

// ErrorKind identifies the failure class reported back through the response
// payload. Every failure path in the adapter produces exactly one of these.
type ErrorKind string

const (
	// ErrInvalidContext indicates the invocation payload was not a
	// well-formed context object.
	ErrInvalidContext ErrorKind = "invalid_context"

	// ErrMissingParameter indicates a required parameter had no entry in
	// the context's arguments.
	ErrMissingParameter ErrorKind = "missing_parameter"

	// ErrTypeError indicates a raw argument value could not be converted
	// to the type the function expects.
	ErrTypeError ErrorKind = "type_error"

	// ErrRuntimeError indicates the function itself failed, panicked, or
	// its result could not be serialized.
	ErrRuntimeError ErrorKind = "runtime_error"
)

// Error is the structured error reported to the host in place of a result.
type Error struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

var _ error = &Error{}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewError creates an Error with the given kind and message.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Errorf creates an Error with a formatted message.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
