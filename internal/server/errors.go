// Package server provides the HTTP REST API for the talent-match service.
package server

import (
	"fmt"
	"net/http"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrSearchUnavailable indicates the candidate-pool fetch failed. This is the
// only collaborator failure surfaced to callers; everything else degrades.
type ErrSearchUnavailable struct {
	Cause error
}

func (e *ErrSearchUnavailable) Error() string {
	return "search unavailable"
}

func (e *ErrSearchUnavailable) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrSearchUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
