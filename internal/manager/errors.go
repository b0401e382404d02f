package manager

import "net/http"

// validationError marks client input the service refuses to process.
type validationError struct{ msg string }

func (e validationError) Error() string   { return e.msg }
func (e validationError) StatusCode() int { return http.StatusBadRequest }

// ErrValidation constructs a validation error with the given detail.
func ErrValidation(msg string) error { return validationError{msg: msg} }

// IsValidation reports whether err is a client validation failure.
func IsValidation(err error) bool {
	_, ok := err.(validationError)
	return ok
}

// capacityError signals a payload that did not fully embed after the
// single enlarged-budget retry.
type capacityError struct{ msg string }

func (e capacityError) Error() string   { return e.msg }
func (e capacityError) StatusCode() int { return http.StatusUnprocessableEntity }

// ErrCapacity constructs a capacity error with the given detail.
func ErrCapacity(msg string) error { return capacityError{msg: msg} }

// IsCapacity reports whether err indicates insufficient embedding capacity.
func IsCapacity(err error) bool {
	_, ok := err.(capacityError)
	return ok
}
