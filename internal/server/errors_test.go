package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/resume-parser/internal/db"
	"github.com/jonathan/resume-parser/internal/extraction"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus_Mapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"unreadable document", &extraction.UnreadableDocumentError{Length: 10}, http.StatusUnprocessableEntity},
		{"resume not found", &db.ErrResumeNotFound{ID: uuid.New()}, http.StatusNotFound},
		{"upload too large", &ErrUploadTooLarge{Limit: 1024}, http.StatusRequestEntityTooLarge},
		{"validation error", &ErrValidation{Message: "bad input"}, http.StatusBadRequest},
		{"no database", &ErrNoDatabase{}, http.StatusServiceUnavailable},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatus(tt.err))
		})
	}
}

func TestHTTPStatus_WrappedError(t *testing.T) {
	err := fmt.Errorf("handling upload: %w", &extraction.UnreadableDocumentError{Length: 3})

	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(err))
}
