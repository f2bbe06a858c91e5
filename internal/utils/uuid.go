package utils

import "github.com/google/uuid"

// NewID returns a server-generated unique identifier for a new record.
// UUIDv7 is preferred because its time-ordered layout keeps index pages
// warm for createdAt-descending listings; on the rare generation failure
// it falls back to a random UUIDv4.
func NewID() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}
