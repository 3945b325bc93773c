// Package identity provides the unique-identifier source used for
// entity and log-entry IDs. The only production implementation is
// random UUIDs; tests substitute deterministic sources.
package identity

import "github.com/google/uuid"

// Source produces statistically-unique string identifiers.
type Source interface {
	NewID() string
}

// UUIDSource generates random (version 4) UUIDs.
type UUIDSource struct{}

// NewUUIDSource returns the default production ID source.
func NewUUIDSource() UUIDSource {
	return UUIDSource{}
}

func (UUIDSource) NewID() string {
	return uuid.NewString()
}
