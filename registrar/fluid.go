package registrar

import (
	"github.com/vk/modforge/datagen"
	"github.com/vk/modforge/engine"
	"github.com/vk/modforge/registry"
)

// FluidProperties carries the defaults the registrar supplies to a fluid
// factory at construction time.
type FluidProperties struct {
	StillTexture   engine.ID
	FlowingTexture engine.ID
}

// FluidFactory constructs one fluid from its resolved properties.
type FluidFactory func(p FluidProperties) (any, error)

// FluidBuilder declares a fluid-like entry. Texture identifiers default
// to the "block/<name>_still" and "block/<name>_flow" convention.
type FluidBuilder struct {
	builderBase
	factory FluidFactory
	still   engine.ID
	flowing engine.ID
	bucket  bool
}

// Fluid opens a fluid builder for the active object name.
func (r *Registrar) Fluid(factory FluidFactory) *FluidBuilder {
	return r.FluidNamed(r.CurrentName(), factory)
}

// FluidNamed opens a fluid builder for an explicit name without touching
// the current-name cursor.
func (r *Registrar) FluidNamed(name string, factory FluidFactory) *FluidBuilder {
	return &FluidBuilder{
		builderBase: builderBase{reg: r, name: name, kind: engine.KindFluid},
		factory:     factory,
		still:       engine.ID{Namespace: r.namespace, Path: "block/" + name + "_still"},
		flowing:     engine.ID{Namespace: r.namespace, Path: "block/" + name + "_flow"},
	}
}

// Textures overrides both texture identifiers.
func (b *FluidBuilder) Textures(still, flowing engine.ID) *FluidBuilder {
	b.still = still
	b.flowing = flowing
	return b
}

// Lang sets the fluid's display name, replacing the derived default.
func (b *FluidBuilder) Lang(display string) *FluidBuilder {
	b.setLang(display)
	return b
}

// Bucket also declares a "<name>_bucket" companion item holding the
// fluid's handle.
func (b *FluidBuilder) Bucket() *FluidBuilder {
	b.bucket = true
	return b
}

// FluidBucket is the companion item a FluidBuilder declares via Bucket.
type FluidBucket struct {
	Fluid *registry.Handle
}

// Register declares the fluid entry (and its bucket item if requested)
// and returns the fluid's forward-reference handle.
func (b *FluidBuilder) Register() *registry.Handle {
	if !b.reg.dispatcher.Has(b.name, datagen.Lang) {
		b.setLang(b.defaultDisplayName())
	}

	factory := b.factory
	props := FluidProperties{StillTexture: b.still, FlowingTexture: b.flowing}
	handle := b.reg.Entry(b.name, engine.KindFluid, func() (any, error) {
		return factory(props)
	})

	if b.bucket {
		b.reg.Entry(b.name+"_bucket", engine.KindItem, func() (any, error) {
			return &FluidBucket{Fluid: handle}, nil
		})
	}
	return handle
}
