package db

import "fmt"

// DuplicateCodeError is an error used to encode when a product create
// collides with an existing barcode
// (used to provide more detailed feedback
// and to use the correct status code)
type DuplicateCodeError struct {
	Code int64
}

// NewDuplicateCodeError constructs a new DuplicateCodeError
func NewDuplicateCodeError(code int64) *DuplicateCodeError {
	return &DuplicateCodeError{
		Code: code,
	}
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("barcode number '%d' already exists in the system",
		e.Code)
}

// NotFoundError is an error used to encode when a key isn't found
// for GetSingle, Update, and Delete operations
type NotFoundError struct {
	Key string
}

// NewNotFoundError constructs a new NotFoundError
func NewNotFoundError(key string) *NotFoundError {
	return &NotFoundError{
		Key: key,
	}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no document matching '%s' found in the database",
		e.Key)
}

// ValidationError is an error used to encode when a supplied document is
// missing a required field or fails its declared shape
type ValidationError struct {
	Message string
}

// NewValidationError constructs a new ValidationError
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		Message: message,
	}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UnavailableError is an error used to encode when the database itself
// cannot be reached or fails the operation for reasons unrelated to the
// supplied document. It is always fatal to the operation; nothing in this
// layer retries.
type UnavailableError struct {
	Cause error
}

// NewUnavailableError constructs a new UnavailableError
func NewUnavailableError(cause error) *UnavailableError {
	return &UnavailableError{
		Cause: cause,
	}
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("the database is unavailable: %s", e.Cause)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}
