package datagen

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vk/modforge/internal/ctxlog"
)

// scopedKey addresses the at-most-one callback slot per (entry, type).
type scopedKey struct {
	entry string
	typ   ProviderType
}

// callbackRec tracks a registered callback together with its owning entry
// name, if any, for replacement bookkeeping and log attribution.
type callbackRec struct {
	entry string // empty for unassociated callbacks
	fn    Callback
}

// Dispatcher owns the generation callback tables for one registrar.
// Like the ledger it expects single-threaded use.
type Dispatcher struct {
	byEntry map[scopedKey]*callbackRec
	ordered map[ProviderType][]*callbackRec
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		byEntry: make(map[scopedKey]*callbackRec),
		ordered: make(map[ProviderType][]*callbackRec),
	}
}

// Associate registers the generation callback for (entry, typ), replacing
// any callback previously associated with the same pair. The superseded
// callback is also removed from the type's dispatch list, so it can never
// run again.
func (d *Dispatcher) Associate(entry string, typ ProviderType, fn Callback) {
	key := scopedKey{entry: entry, typ: typ}
	if prior, exists := d.byEntry[key]; exists {
		d.remove(typ, prior)
	}
	rec := &callbackRec{entry: entry, fn: fn}
	d.byEntry[key] = rec
	d.ordered[typ] = append(d.ordered[typ], rec)
}

// Add registers a generation callback not associated with any entry. It
// never replaces anything and may be called any number of times.
func (d *Dispatcher) Add(typ ProviderType, fn Callback) {
	d.ordered[typ] = append(d.ordered[typ], &callbackRec{fn: fn})
}

// Has reports whether a callback is currently associated with the
// (entry, typ) pair.
func (d *Dispatcher) Has(entry string, typ ProviderType) bool {
	_, ok := d.byEntry[scopedKey{entry: entry, typ: typ}]
	return ok
}

// Count reports the number of live callbacks for a type.
func (d *Dispatcher) Count(typ ProviderType) int {
	return len(d.ordered[typ])
}

// Run invokes every live callback for the provider's type, in insertion
// order. Callback failures do not stop the pass; the joined errors are
// returned after every callback has run.
func (d *Dispatcher) Run(ctx context.Context, p Provider) error {
	typ := p.Type()
	recs := d.ordered[typ]
	logger := ctxlog.FromContext(ctx).With("pass", uuid.NewString(), "provider", typ)
	logger.Debug("Generation pass starting.", "callbacks", len(recs))

	var errs []error
	for _, rec := range recs {
		if rec.entry != "" {
			logger.Debug("Generating data for entry.", "entry", rec.entry)
		} else {
			logger.Debug("Generating unassociated data.")
		}
		if err := rec.fn(ctx, p); err != nil {
			if rec.entry != "" {
				errs = append(errs, fmt.Errorf("generating %s data for entry %q: %w", typ, rec.entry, err))
			} else {
				errs = append(errs, fmt.Errorf("generating unassociated %s data: %w", typ, err))
			}
		}
	}
	return errors.Join(errs...)
}

// remove drops a callback record from a type's ordered dispatch list.
func (d *Dispatcher) remove(typ ProviderType, target *callbackRec) {
	recs := d.ordered[typ]
	for i, rec := range recs {
		if rec == target {
			d.ordered[typ] = append(recs[:i], recs[i+1:]...)
			return
		}
	}
}
