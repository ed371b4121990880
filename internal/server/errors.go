// Package server provides the HTTP REST API for the resume parser.
package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-parser/internal/db"
	"github.com/jonathan/resume-parser/internal/extraction"
)

// ErrNoDatabase indicates a storage endpoint was called on a server running
// without a configured database
type ErrNoDatabase struct{}

func (e *ErrNoDatabase) Error() string {
	return "no database configured"
}

// ErrUploadTooLarge indicates the uploaded document exceeds the size limit
type ErrUploadTooLarge struct {
	Limit int64
}

func (e *ErrUploadTooLarge) Error() string {
	return "uploaded document exceeds size limit"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return "validation error: " + e.Message
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var unreadable *extraction.UnreadableDocumentError
	var notFound *db.ErrResumeNotFound
	switch {
	case errors.As(err, &unreadable):
		return http.StatusUnprocessableEntity
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, new(*ErrUploadTooLarge)):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, new(*ErrValidation)):
		return http.StatusBadRequest
	case errors.As(err, new(*ErrNoDatabase)):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
