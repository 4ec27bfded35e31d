package core

import "github.com/google/uuid"

// UUIDGenerator is the production IDGenerator, producing random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }
