// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is a sentinel error for a missing target or reference.
// Kind names the entity ("Customer", "Trainer", "Appointment", "Billing record").
type ErrNotFound struct {
	Kind string
	ID   int
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Kind, e.ID)
}

// Helper constructor
func NewNotFound(kind string, id int) error {
	return &ErrNotFound{Kind: kind, ID: id}
}

// ErrValidation covers missing or malformed request fields.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Message
}

func NewValidation(message string) error {
	return &ErrValidation{Message: message}
}

// ErrConflict covers duplicate-key failures on create.
type ErrConflict struct {
	Message string
}

func (e *ErrConflict) Error() string {
	return e.Message
}

func NewConflict(message string) error {
	return &ErrConflict{Message: message}
}

// ErrDependencyUnavailable means a peer service call failed or timed out.
// Distinct from not-found: the reference may exist, we just could not ask.
type ErrDependencyUnavailable struct {
	Service string
	Err     error
}

func (e *ErrDependencyUnavailable) Error() string {
	return fmt.Sprintf("%s service unavailable: %v", e.Service, e.Err)
}

func (e *ErrDependencyUnavailable) Unwrap() error {
	return e.Err
}

func NewDependencyUnavailable(service string, err error) error {
	return &ErrDependencyUnavailable{Service: service, Err: err}
}

// StatusCode maps an error to its HTTP status. Anything outside the
// taxonomy is a store error and reported as 500.
func StatusCode(err error) int {
	var (
		notFound   *ErrNotFound
		validation *ErrValidation
		conflict   *ErrConflict
		dependency *ErrDependencyUnavailable
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &dependency):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
