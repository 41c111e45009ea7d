package service

import "github.com/google/uuid"

// IDGenerator produces globally-unique opaque identifiers for new
// rentals. It is injectable so tests can pin ids.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator is the default IDGenerator, backed by random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
