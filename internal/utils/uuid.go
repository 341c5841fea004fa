package utils

import "github.com/google/uuid"

// UUIDGenerator produces the client-side identifiers handed to the platform
// (command ids and new object ids).
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a random (version 4) UUID string.
func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}
