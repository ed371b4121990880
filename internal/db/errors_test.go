package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestErrResumeNotFound_Message(t *testing.T) {
	id := uuid.New()
	err := &ErrResumeNotFound{ID: id}

	assert.Contains(t, err.Error(), "resume not found")
	assert.Contains(t, err.Error(), id.String())
}
