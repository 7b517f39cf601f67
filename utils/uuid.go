package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a fresh identifier for users, goods, and bids.
func GenerateID() string {
	return uuid.New().String()
}
