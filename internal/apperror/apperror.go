// Package apperror defines the typed errors shared by the service and
// repository layers. Handlers map these to HTTP status codes; nothing
// below the handler layer knows about HTTP.
package apperror

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
)

// AppError pairs an error kind with the client-facing message rendered
// in the {"msg": ...} error body.
type AppError struct {
	Err     error  // kind sentinel (ErrNotFound, ErrValidation)
	Message string // client-facing error message
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound returns an AppError rendered as 404 with the given message,
// e.g. "Article Not Found".
func NotFound(message string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: message,
	}
}

// BadRequest returns an AppError rendered as 400 with the given
// message. Malformed identifiers, missing body fields, and
// referential-constraint violations all use the generic "Bad Request";
// the sort/order allow-lists carry their own messages.
func BadRequest(message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
	}
}
