// Package server provides the HTTP REST API for the application tracker.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrRecordNotFound indicates an application record does not exist for the
// authenticated user.
type ErrRecordNotFound struct {
	ID uuid.UUID
}

func (e *ErrRecordNotFound) Error() string {
	return fmt.Sprintf("application not found: %s", e.ID)
}

// ErrRecordBusy indicates a draft of the same kind is already being generated
// for this record.
type ErrRecordBusy struct {
	ID     uuid.UUID
	Action string
}

func (e *ErrRecordBusy) Error() string {
	return fmt.Sprintf("%s draft already in progress for %s", e.Action, e.ID)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrBadFormat indicates an uploaded payload could not be parsed.
type ErrBadFormat struct {
	Message string
}

func (e *ErrBadFormat) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrRecordNotFound:
		return http.StatusNotFound
	case *ErrRecordBusy:
		return http.StatusConflict
	case *ErrValidation, *ErrBadFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
