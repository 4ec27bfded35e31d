package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Records     int    `json:"records"`
	BackendType string `json:"backend_type"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	backendType := "backend"
	if comp, ok := s.backend.(introspection.Component); ok {
		backendType = comp.ComponentType()
	}

	return StoreState{
		Records:     len(s.records),
		BackendType: backendType,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
