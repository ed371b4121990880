package db

import (
	"fmt"

	"github.com/google/uuid"
)

// ErrResumeNotFound indicates no stored extraction exists for the ID
type ErrResumeNotFound struct {
	ID uuid.UUID
}

func (e *ErrResumeNotFound) Error() string {
	return fmt.Sprintf("resume not found: %s", e.ID)
}
