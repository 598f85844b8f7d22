package service

import "fmt"

// BusinessError is the error shape that crosses the service boundary. The
// handler layer maps Code to an HTTP status; Details are safe to show to the
// caller, unlike wrapped persistence errors.
type BusinessError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodePersistence = "PERSISTENCE_ERROR"
)

func (b *BusinessError) Error() string {
	if b.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", b.Code, b.Message, b.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", b.Code, b.Message)
}

func (b *BusinessError) Unwrap() error {
	return b.Err
}

func NewValidationError(field, reason string) *BusinessError {
	return &BusinessError{
		Code:    CodeValidation,
		Message: fmt.Sprintf("invalid value for field '%s': %s", field, reason),
		Details: map[string]any{
			"field":  field,
			"reason": reason,
		},
	}
}

func NewNotFound(id int64) *BusinessError {
	return &BusinessError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("task %d not found", id),
		Details: map[string]any{
			"id": id,
		},
	}
}

// NewPersistenceError wraps a storage failure without leaking its text into
// Message. The wrapped error stays available for logging.
func NewPersistenceError(err error) *BusinessError {
	return &BusinessError{
		Code:    CodePersistence,
		Message: "storage operation failed",
		Err:     err,
	}
}
