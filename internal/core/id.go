package core

import "github.com/google/uuid"

// NewID returns a collision-resistant identifier for a new record.
func NewID() string {
	return uuid.NewString()
}
