package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string. Bid and subscriber
// ids come from here so they stay collision-free under concurrent load.
func GenerateID() string {
	return uuid.New().String()
}
