package engine

import (
	"context"
	"fmt"

	"github.com/vk/modforge/internal/ctxlog"
)

// Engine is the in-process reference host. It owns one MemRegistry per
// kind it was created with and drives the two lifecycle phases over its
// Bus: first OpenRegistries, later GatherData.
type Engine struct {
	bus        *Bus
	kinds      []Kind
	registries map[Kind]*MemRegistry
}

// NewEngine creates a reference host owning a registry per given kind.
// With no kinds it owns the standard five.
func NewEngine(bus *Bus, kinds ...Kind) *Engine {
	if len(kinds) == 0 {
		kinds = StandardKinds()
	}
	registries := make(map[Kind]*MemRegistry, len(kinds))
	for _, k := range kinds {
		registries[k] = NewMemRegistry(k)
	}
	return &Engine{
		bus:        bus,
		kinds:      kinds,
		registries: registries,
	}
}

// Bus returns the lifecycle bus this engine fires signals on.
func (e *Engine) Bus() *Bus {
	return e.bus
}

// Registry returns the engine's registry for a kind, if it owns one.
func (e *Engine) Registry(kind Kind) (*MemRegistry, bool) {
	reg, ok := e.registries[kind]
	return reg, ok
}

// OpenRegistries fires the registry-open signal for every owned kind, in
// the fixed kind order given at construction. Kinds the engine does not
// own are never fired; entries declared under them stay pending, which
// is a diagnostic condition on the toolkit side, not an error here.
func (e *Engine) OpenRegistries(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	for _, kind := range e.kinds {
		if err := e.bus.FireRegistryOpen(ctx, e.registries[kind]); err != nil {
			return fmt.Errorf("registry-open pass for kind %q failed: %w", kind, err)
		}
	}
	logger.Debug("All owned registries opened.", "kinds", len(e.kinds))
	return nil
}

// GatherData fires the asset-generation signal with the given output
// directory.
func (e *Engine) GatherData(ctx context.Context, outputDir string) error {
	if err := e.bus.FireGatherData(ctx, &GatherDataEvent{OutputDir: outputDir}); err != nil {
		return fmt.Errorf("gather-data pass failed: %w", err)
	}
	return nil
}
