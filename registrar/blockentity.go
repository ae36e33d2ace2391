package registrar

import (
	"github.com/vk/modforge/engine"
	"github.com/vk/modforge/registry"
)

// BlockEntityBuilder declares a block-entity (container/tile) entry. It
// is the thinnest of the kind helpers: block entities carry no default
// assets of their own.
type BlockEntityBuilder struct {
	builderBase
	factory registry.Factory
}

// BlockEntity opens a block-entity builder for the active object name.
func (r *Registrar) BlockEntity(factory registry.Factory) *BlockEntityBuilder {
	return r.BlockEntityNamed(r.CurrentName(), factory)
}

// BlockEntityNamed opens a block-entity builder for an explicit name
// without touching the current-name cursor.
func (r *Registrar) BlockEntityNamed(name string, factory registry.Factory) *BlockEntityBuilder {
	return &BlockEntityBuilder{
		builderBase: builderBase{reg: r, name: name, kind: engine.KindBlockEntity},
		factory:     factory,
	}
}

// Register declares the entry and returns its forward-reference handle.
func (b *BlockEntityBuilder) Register() *registry.Handle {
	return b.reg.Entry(b.name, engine.KindBlockEntity, b.factory)
}
