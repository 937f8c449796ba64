package utils

import "github.com/google/uuid"

// NewID mints a record identifier. Every persisted record (user, pet, call)
// and chat message gets one at creation time.
func NewID() string {
	return uuid.NewString()
}
