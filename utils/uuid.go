package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string for placements,
// bids, holds, and history records
func GenerateID() string {
	return uuid.NewString()
}
