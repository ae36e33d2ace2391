package registrar

import (
	"github.com/vk/modforge/datagen"
	"github.com/vk/modforge/engine"
	"github.com/vk/modforge/registry"
)

// Classification is the spawn/behavior group of an entity.
type Classification string

// The classifications the reference content model understands.
const (
	ClassificationCreature Classification = "creature"
	ClassificationMonster  Classification = "monster"
	ClassificationAmbient  Classification = "ambient"
	ClassificationMisc     Classification = "misc"
)

// EntityProperties carries what the registrar supplies to an entity
// factory at construction time.
type EntityProperties struct {
	Classification Classification
}

// EntityFactory constructs one entity type from its resolved properties.
type EntityFactory func(p EntityProperties) (any, error)

// EntityBuilder declares an entity-like entry.
type EntityBuilder struct {
	builderBase
	factory        EntityFactory
	classification Classification
}

// Entity opens an entity builder for the active object name.
func (r *Registrar) Entity(factory EntityFactory, classification Classification) *EntityBuilder {
	return r.EntityNamed(r.CurrentName(), factory, classification)
}

// EntityNamed opens an entity builder for an explicit name without
// touching the current-name cursor.
func (r *Registrar) EntityNamed(name string, factory EntityFactory, classification Classification) *EntityBuilder {
	return &EntityBuilder{
		builderBase:    builderBase{reg: r, name: name, kind: engine.KindEntity},
		factory:        factory,
		classification: classification,
	}
}

// Lang sets the entity's display name, replacing the derived default.
func (b *EntityBuilder) Lang(display string) *EntityBuilder {
	b.setLang(display)
	return b
}

// Register declares the entry and returns its forward-reference handle.
func (b *EntityBuilder) Register() *registry.Handle {
	if !b.reg.dispatcher.Has(b.name, datagen.Lang) {
		b.setLang(b.defaultDisplayName())
	}
	factory := b.factory
	classification := b.classification
	return b.reg.Entry(b.name, engine.KindEntity, func() (any, error) {
		return factory(EntityProperties{Classification: classification})
	})
}
