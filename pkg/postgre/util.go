package postgres

import (
	"fmt"

	"github.com/google/uuid"
)

// IsUUID validates that the given string is a well-formed UUID.
func IsUUID(u string) error {
	if u == "" {
		return fmt.Errorf("%w: UUID cannot be empty", ErrInvalidUUID)
	}
	if _, err := uuid.Parse(u); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUUID, err)
	}
	return nil
}

// NewUUID generates a new UUID string.
func NewUUID() string {
	return uuid.New().String()
}
