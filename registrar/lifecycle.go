package registrar

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/modforge/datagen"
	"github.com/vk/modforge/engine"
	"github.com/vk/modforge/internal/ctxlog"
)

// onRegistryOpen is the bus listener for registry-open signals. Every
// signal is delivered to every registrar; entries of other kinds, or
// kinds the host never opens, simply stay pending.
func (r *Registrar) onRegistryOpen(ctx context.Context, reg engine.Registry) error {
	return r.ledger.Commit(ctx, reg)
}

// onGatherData is the bus listener for the asset-generation pass. It
// instantiates one provider per standard output type, runs the dispatch
// tables against it, and saves the results under the event's output
// directory. Provider failures do not stop the pass.
func (r *Registrar) onGatherData(ctx context.Context, event *engine.GatherDataEvent) error {
	logger := ctxlog.FromContext(ctx)
	logger.Info("Data generation pass starting.", "namespace", r.namespace, "output_dir", event.OutputDir)

	var errs []error
	for _, typ := range datagen.StandardTypes() {
		p := r.newProvider(typ)
		if err := r.dispatcher.Run(ctx, p); err != nil {
			errs = append(errs, err)
		}
		if err := p.Save(event.OutputDir); err != nil {
			errs = append(errs, fmt.Errorf("saving %s output: %w", typ, err))
		}
	}

	logger.Info("Data generation pass finished.", "namespace", r.namespace, "failures", len(errs))
	return errors.Join(errs...)
}

// newProvider instantiates the concrete provider for one output type.
func (r *Registrar) newProvider(typ datagen.ProviderType) datagen.Provider {
	switch typ {
	case datagen.Lang:
		return datagen.NewLangProvider(r.namespace)
	case datagen.BlockState:
		return datagen.NewBlockStateProvider()
	case datagen.ItemModel:
		return datagen.NewItemModelProvider()
	case datagen.Recipe:
		return datagen.NewRecipeProvider()
	case datagen.Loot:
		return datagen.NewLootProvider()
	case datagen.Tags:
		return datagen.NewTagsProvider()
	default:
		panic(fmt.Sprintf("no provider implementation for output type %q", typ))
	}
}
