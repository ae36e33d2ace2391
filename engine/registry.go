package engine

import (
	"fmt"
	"log/slog"
)

// Registry is the host-side write sink for a single Kind. The toolkit
// inserts committed entries through this interface and never reads them
// back.
type Registry interface {
	Kind() Kind
	Register(id ID, obj any) error
}

// MemRegistry is an in-memory Registry used by the reference Engine and
// by tests.
type MemRegistry struct {
	kind    Kind
	entries map[ID]any
	order   []ID
}

// NewMemRegistry creates an empty registry for the given kind.
func NewMemRegistry(kind Kind) *MemRegistry {
	return &MemRegistry{
		kind:    kind,
		entries: make(map[ID]any),
	}
}

// Kind returns the capability kind this registry stores.
func (r *MemRegistry) Kind() Kind {
	return r.kind
}

// Register inserts a constructed object under its fully-qualified ID.
// Registering the same ID twice is an error; the commit bookkeeping
// upstream is responsible for at-most-once insertion.
func (r *MemRegistry) Register(id ID, obj any) error {
	if _, exists := r.entries[id]; exists {
		return fmt.Errorf("registry %q already holds an entry for %s", r.kind, id)
	}
	slog.Debug("Registry accepted entry.", "kind", r.kind, "id", id.String())
	r.entries[id] = obj
	r.order = append(r.order, id)
	return nil
}

// Get returns the object registered under id, if any.
func (r *MemRegistry) Get(id ID) (any, bool) {
	obj, ok := r.entries[id]
	return obj, ok
}

// Len reports the number of registered entries.
func (r *MemRegistry) Len() int {
	return len(r.entries)
}

// IDs returns all registered identifiers in insertion order.
func (r *MemRegistry) IDs() []ID {
	out := make([]ID, len(r.order))
	copy(out, r.order)
	return out
}
