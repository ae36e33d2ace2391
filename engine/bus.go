package engine

import (
	"context"
	"errors"

	"github.com/vk/modforge/internal/ctxlog"
)

// RegistryOpenFunc is invoked when the host opens one Kind's registry for
// writes. Listeners receive every open signal and are expected to check
// reg.Kind() themselves.
type RegistryOpenFunc func(ctx context.Context, reg Registry) error

// GatherDataFunc is invoked during the host's asset-generation pass.
type GatherDataFunc func(ctx context.Context, event *GatherDataEvent) error

// GatherDataEvent carries the parameters of one asset-generation pass.
type GatherDataEvent struct {
	// OutputDir is the root directory generated assets are written under.
	OutputDir string
}

// Bus is the in-process lifecycle event bus connecting the host to
// registered listeners. Signals are delivered synchronously in
// subscription order; a listener must finish before control returns to
// the host. The host may fire registry-open for the same kind multiple
// times across a process life.
type Bus struct {
	registryOpen []RegistryOpenFunc
	gatherData   []GatherDataFunc
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// OnRegistryOpen subscribes a listener to registry-open signals.
func (b *Bus) OnRegistryOpen(fn RegistryOpenFunc) {
	b.registryOpen = append(b.registryOpen, fn)
}

// OnGatherData subscribes a listener to the asset-generation signal.
func (b *Bus) OnGatherData(fn GatherDataFunc) {
	b.gatherData = append(b.gatherData, fn)
}

// FireRegistryOpen delivers a registry-open signal for reg's kind to all
// listeners. Listener errors do not stop delivery; they are joined and
// returned once every listener has run.
func (b *Bus) FireRegistryOpen(ctx context.Context, reg Registry) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Firing registry-open signal.", "kind", reg.Kind(), "listeners", len(b.registryOpen))

	var errs []error
	for _, fn := range b.registryOpen {
		if err := fn(ctx, reg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// FireGatherData delivers the asset-generation signal to all listeners.
func (b *Bus) FireGatherData(ctx context.Context, event *GatherDataEvent) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Firing gather-data signal.", "listeners", len(b.gatherData), "output_dir", event.OutputDir)

	var errs []error
	for _, fn := range b.gatherData {
		if err := fn(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
