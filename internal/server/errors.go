// Package server provides the HTTP REST API for the resume analyzer.
package server

import (
	"fmt"
	"net/http"
)

// ErrValidation indicates a malformed or incomplete request body.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnknownPlatform indicates an ATS platform id the simulator does not model.
type ErrUnknownPlatform struct {
	Platform string
}

func (e *ErrUnknownPlatform) Error() string {
	return fmt.Sprintf("unknown ATS platform: %s", e.Platform)
}

// ErrUnauthorized indicates a missing or invalid bearer token.
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	if e.Message == "" {
		return "unauthorized"
	}
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation, *ErrUnknownPlatform:
		return http.StatusBadRequest
	case *ErrUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
