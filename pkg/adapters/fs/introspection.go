package fs

import (
	"os"

	"github.com/aretw0/introspection"
)

// BackendState exposes internal state for observability.
type BackendState struct {
	Path      string `json:"path"`
	Exists    bool   `json:"exists"`
	SizeBytes int64  `json:"size_bytes"`
}

// State implements introspection.Introspectable.
func (b *Backend) State() any {
	state := BackendState{Path: b.path}
	if info, err := os.Stat(b.path); err == nil {
		state.Exists = true
		state.SizeBytes = info.Size()
	}
	return state
}

// ComponentType implements introspection.Component.
func (b *Backend) ComponentType() string {
	return "fs-backend"
}

var _ introspection.Introspectable = (*Backend)(nil)
var _ introspection.Component = (*Backend)(nil)
