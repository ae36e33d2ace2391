package registrar

import (
	"context"
	"fmt"

	"github.com/vk/modforge/datagen"
	"github.com/vk/modforge/engine"
	"github.com/vk/modforge/registry"
)

// GroupFunc supplies a classification group for items declared while it
// is the registrar's default.
type GroupFunc func() string

// Registrar manages all registrations and data generators for one
// namespace (mod ID).
//
// It is not safe for concurrent use: it holds the name of the object
// currently being built as mutable state, matching the host's
// single-threaded configuration contract.
type Registrar struct {
	namespace  string
	ledger     *registry.Ledger
	dispatcher *datagen.Dispatcher

	currentName  string
	currentGroup GroupFunc
}

// New constructs a Registrar without attaching it to a host bus. Used in
// lieu of side effects in Create, so alternate wiring strategies remain
// possible.
func New(namespace string) *Registrar {
	return &Registrar{
		namespace:  namespace,
		ledger:     registry.New(namespace),
		dispatcher: datagen.NewDispatcher(),
	}
}

// Create constructs a Registrar and subscribes it to the host's
// lifecycle signals: registry-open commits the matching ledger entries,
// gather-data runs the data-generation pass.
func Create(namespace string, bus *engine.Bus) *Registrar {
	r := New(namespace)
	bus.OnRegistryOpen(r.onRegistryOpen)
	bus.OnGatherData(r.onGatherData)
	return r
}

// Namespace returns the mod ID this registrar declares objects for.
func (r *Registrar) Namespace() string {
	return r.namespace
}

// Ledger exposes the underlying registration ledger.
func (r *Registrar) Ledger() *registry.Ledger {
	return r.ledger
}

// Dispatcher exposes the underlying data-generation dispatcher.
func (r *Registrar) Dispatcher() *datagen.Dispatcher {
	return r.dispatcher
}

// Object begins a new object: the given name is used by every
// name-omitting call until the next Object invocation.
func (r *Registrar) Object(name string) *Registrar {
	r.currentName = name
	return r
}

// ItemGroup sets the default classification group applied to items
// declared from now on, until the next ItemGroup call.
func (r *Registrar) ItemGroup(group GroupFunc) *Registrar {
	r.currentGroup = group
	return r
}

// Transform applies a helper function within a fluent chain.
func (r *Registrar) Transform(fn func(*Registrar) *Registrar) *Registrar {
	return fn(r)
}

// CurrentName returns the active object name set by Object. Calling any
// name-omitting declaration without an active name is a caller error.
func (r *Registrar) CurrentName() string {
	if r.currentName == "" {
		panic("registrar: current name not set, call Object first")
	}
	return r.currentName
}

// Entry declares a generic entry under an explicit name. The factory is
// deferred until the host opens the kind's registry.
func (r *Registrar) Entry(name string, kind engine.Kind, factory registry.Factory) *registry.Handle {
	return r.ledger.Declare(name, kind, factory)
}

// CurrentEntry is Entry using the active name.
func (r *Registrar) CurrentEntry(kind engine.Kind, factory registry.Factory) *registry.Handle {
	return r.Entry(r.CurrentName(), kind, factory)
}

// Get retrieves the handle of a previously declared entry. Useful to
// retrieve entries created as side effects of earlier registrations,
// such as a block's companion item.
func (r *Registrar) Get(name string, kind engine.Kind) (*registry.Handle, error) {
	return r.ledger.Get(name, kind)
}

// Current retrieves the handle declared for the active name under kind.
// It panics if no such declaration exists.
func (r *Registrar) Current(kind engine.Kind) *registry.Handle {
	return r.ledger.MustGet(r.CurrentName(), kind)
}

// GetAll returns all handles declared under kind, in declaration order.
func (r *Registrar) GetAll(kind engine.Kind) []*registry.Handle {
	return r.ledger.GetAll(kind)
}

// SetDataGenerator sets the generation callback for an entry/type pair,
// replacing an existing callback if one exists.
func (r *Registrar) SetDataGenerator(entry string, typ datagen.ProviderType, cb datagen.Callback) {
	r.dispatcher.Associate(entry, typ, cb)
}

// AddDataGenerator adds a generation callback not associated with any
// entry; it can never replace an existing one.
func (r *Registrar) AddDataGenerator(typ datagen.ProviderType, cb datagen.Callback) {
	r.dispatcher.Add(typ, cb)
}

// AddLang registers a namespace-prefixed translation and returns the
// prefixed key.
func (r *Registrar) AddLang(key, value string) string {
	prefixed := r.namespace + "." + key
	r.AddDataGenerator(datagen.Lang, func(ctx context.Context, p datagen.Provider) error {
		lang, ok := p.(*datagen.LangProvider)
		if !ok {
			return fmt.Errorf("lang callback received %T", p)
		}
		lang.Add(prefixed, value)
		return nil
	})
	return prefixed
}
