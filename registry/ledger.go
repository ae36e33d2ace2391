package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vk/modforge/engine"
	"github.com/vk/modforge/internal/ctxlog"
)

// ErrNotFound is returned when looking up a (name, kind) pair that was
// never declared. This is a programmer error and is always surfaced
// loudly; the ledger never hands out a nil handle.
var ErrNotFound = errors.New("no such registration")

// Factory constructs one instance of a declared entry. It is invoked at
// most once per declaration, at commit time, never at declaration time.
type Factory func() (any, error)

// ledgerKey is the composite (name, kind) key. Names are unique within a
// kind; the same name may recur across kinds.
type ledgerKey struct {
	name string
	kind engine.Kind
}

// record is one pending or committed registration.
type record struct {
	id        engine.ID
	kind      engine.Kind
	factory   Factory
	handle    *Handle
	committed bool
}

// Ledger collects declared-but-not-yet-constructed entries for one
// namespace and commits them when the host opens the matching registry.
type Ledger struct {
	namespace string
	records   map[ledgerKey]*record

	// order keeps per-kind declaration order so commits and GetAll are
	// deterministic for a given declaration sequence.
	order map[engine.Kind][]string
}

// New creates an empty ledger owning entries under the given namespace.
// The namespace must satisfy the namespace:path identifier charset.
func New(namespace string) *Ledger {
	if _, err := engine.NewID(namespace, "probe"); err != nil {
		panic(fmt.Sprintf("invalid ledger namespace %q: %v", namespace, err))
	}
	return &Ledger{
		namespace: namespace,
		records:   make(map[ledgerKey]*record),
		order:     make(map[engine.Kind][]string),
	}
}

// Namespace returns the namespace all entries are declared under.
func (l *Ledger) Namespace() string {
	return l.namespace
}

// Declare stores a pending registration for (name, kind) and returns its
// forward-reference handle without invoking the factory. Declaring over
// an existing key replaces the prior record with a warning: the later
// declaration wins and receives a fresh handle, and the entry is re-armed
// for the next commit cycle of its kind.
func (l *Ledger) Declare(name string, kind engine.Kind, factory Factory) *Handle {
	if factory == nil {
		panic(fmt.Sprintf("nil factory for registration %q of kind %q", name, kind))
	}
	id, err := engine.NewID(l.namespace, name)
	if err != nil {
		panic(fmt.Sprintf("invalid registration name %q: %v", name, err))
	}

	k := ledgerKey{name: name, kind: kind}
	if prior, exists := l.records[k]; exists {
		slog.Warn("Replacing existing registration.", "name", name, "kind", kind, "was_committed", prior.committed)
	} else {
		l.order[kind] = append(l.order[kind], name)
	}

	rec := &record{
		id:      id,
		kind:    kind,
		factory: factory,
		handle:  newHandle(id, kind),
	}
	l.records[k] = rec
	slog.Debug("Captured registration.", "name", name, "kind", kind)
	return rec.handle
}

// Get returns the handle declared for (name, kind), or ErrNotFound.
func (l *Ledger) Get(name string, kind engine.Kind) (*Handle, error) {
	rec, ok := l.records[ledgerKey{name: name, kind: kind}]
	if !ok {
		return nil, fmt.Errorf("%w: %q of kind %q", ErrNotFound, name, kind)
	}
	return rec.handle, nil
}

// MustGet is Get for call sites where a missing declaration is a bug.
func (l *Ledger) MustGet(name string, kind engine.Kind) *Handle {
	h, err := l.Get(name, kind)
	if err != nil {
		panic(err)
	}
	return h
}

// GetAll returns every handle declared under kind, in declaration order.
func (l *Ledger) GetAll(kind engine.Kind) []*Handle {
	names := l.order[kind]
	handles := make([]*Handle, 0, len(names))
	for _, name := range names {
		handles = append(handles, l.records[ledgerKey{name: name, kind: kind}].handle)
	}
	return handles
}

// Commit constructs and inserts every pending entry of the sink's kind.
// Each factory runs exactly once; entries committed by an earlier signal
// are skipped unless re-declared since. Failures do not stop the batch:
// the remaining entries still commit and the joined errors are returned
// (no rollback of entries already inserted).
func (l *Ledger) Commit(ctx context.Context, sink engine.Registry) error {
	logger := ctxlog.FromContext(ctx)
	kind := sink.Kind()

	names := l.order[kind]
	if len(names) == 0 {
		logger.Debug("No registrations for kind, nothing to commit.", "kind", kind)
		return nil
	}
	logger.Debug("Committing registrations.", "kind", kind, "known", len(names))

	var errs []error
	committed := 0
	for _, name := range names {
		rec := l.records[ledgerKey{name: name, kind: kind}]
		if rec.committed {
			continue
		}
		obj, err := rec.factory()
		if err != nil {
			errs = append(errs, fmt.Errorf("constructing %s (%s): %w", rec.id, kind, err))
			continue
		}
		if err := sink.Register(rec.id, obj); err != nil {
			errs = append(errs, fmt.Errorf("inserting %s (%s): %w", rec.id, kind, err))
			continue
		}
		rec.handle.resolve(obj)
		rec.committed = true
		committed++
		logger.Debug("Registered entry.", "id", rec.id.String(), "kind", kind)
	}

	logger.Debug("Commit pass finished.", "kind", kind, "committed", committed, "failed", len(errs))
	return errors.Join(errs...)
}
