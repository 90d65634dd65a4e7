package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrOrderNotFound   = errors.New("order not found")
	ErrOrderExpired    = errors.New("order expired")
	ErrUpstreamFailure = errors.New("upstream failure")
)

// ProcessorError carries the payment processor's own account of a failure.
// It matches its Kind sentinel with errors.Is.
type ProcessorError struct {
	Kind        error
	StatusCode  int
	Code        string
	Description string
	Err         error
}

func (e *ProcessorError) Error() string {
	msg := e.Kind.Error()
	if e.Description != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Description)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ProcessorError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Describe returns the processor supplied description, if any.
func Describe(err error) string {
	var pe *ProcessorError
	if errors.As(err, &pe) {
		return pe.Description
	}
	return ""
}

// StatusCode returns the processor supplied HTTP status, if any.
func StatusCode(err error) int {
	var pe *ProcessorError
	if errors.As(err, &pe) {
		return pe.StatusCode
	}
	return 0
}
