package registry

import (
	"errors"
	"fmt"

	"github.com/vk/modforge/engine"
)

// ErrPending is returned when a handle is dereferenced before its entry
// has been committed.
var ErrPending = errors.New("registration pending, entry not yet committed")

// Handle is a forward reference to a declared entry. It is handed out at
// declaration time, before the underlying object exists, and is resolved
// exactly once at commit time. After resolution it always yields the same
// object instance.
type Handle struct {
	id       engine.ID
	kind     engine.Kind
	obj      any
	resolved bool
}

func newHandle(id engine.ID, kind engine.Kind) *Handle {
	return &Handle{id: id, kind: kind}
}

// ID returns the fully-qualified identity the handle was declared under.
func (h *Handle) ID() engine.ID {
	return h.id
}

// Kind returns the capability kind the handle was declared under.
func (h *Handle) Kind() engine.Kind {
	return h.kind
}

// Resolved reports whether the entry has been committed.
func (h *Handle) Resolved() bool {
	return h.resolved
}

// Get returns the constructed object, or ErrPending before commit.
func (h *Handle) Get() (any, error) {
	if !h.resolved {
		return nil, fmt.Errorf("handle %s (%s): %w", h.id, h.kind, ErrPending)
	}
	return h.obj, nil
}

// MustGet is Get for call sites that run strictly after commit; it panics
// on a pending handle.
func (h *Handle) MustGet() any {
	obj, err := h.Get()
	if err != nil {
		panic(err)
	}
	return obj
}

// resolve binds the constructed object. Write-once; the ledger guarantees
// it is called at most one time per handle.
func (h *Handle) resolve(obj any) {
	if h.resolved {
		panic(fmt.Sprintf("handle %s (%s) resolved twice", h.id, h.kind))
	}
	h.obj = obj
	h.resolved = true
}

// As dereferences a handle and asserts its object to T.
func As[T any](h *Handle) (T, error) {
	var zero T
	obj, err := h.Get()
	if err != nil {
		return zero, err
	}
	typed, ok := obj.(T)
	if !ok {
		return zero, fmt.Errorf("handle %s (%s) holds %T, not %T", h.id, h.kind, obj, zero)
	}
	return typed, nil
}
