package registrar

import (
	"github.com/vk/modforge/datagen"
	"github.com/vk/modforge/engine"
	"github.com/vk/modforge/registry"
)

// ItemProperties carries the defaults the registrar supplies to an item
// factory at construction time.
type ItemProperties struct {
	// Group is the classification group the item is filed under. Empty
	// when neither the builder nor the registrar's default set one.
	Group string
}

// ItemFactory constructs one item instance from its resolved properties.
type ItemFactory func(p ItemProperties) (any, error)

// ItemBuilder declares an item-like entry.
type ItemBuilder struct {
	builderBase
	factory ItemFactory
	group   GroupFunc
}

// Item opens an item builder for the active object name.
func (r *Registrar) Item(factory ItemFactory) *ItemBuilder {
	return r.ItemNamed(r.CurrentName(), factory)
}

// ItemNamed opens an item builder for an explicit name without touching
// the current-name cursor. The registrar's default group, if set, is
// captured now and can be overridden per builder.
func (r *Registrar) ItemNamed(name string, factory ItemFactory) *ItemBuilder {
	return &ItemBuilder{
		builderBase: builderBase{reg: r, name: name, kind: engine.KindItem},
		factory:     factory,
		group:       r.currentGroup,
	}
}

// Group overrides the classification group for this item only.
func (b *ItemBuilder) Group(group GroupFunc) *ItemBuilder {
	b.group = group
	return b
}

// Lang sets the item's display name, replacing the derived default.
func (b *ItemBuilder) Lang(display string) *ItemBuilder {
	b.setLang(display)
	return b
}

// Model sets the item's model document, replacing the generated default.
func (b *ItemBuilder) Model(doc any) *ItemBuilder {
	b.setDoc(datagen.ItemModel, b.id(), doc)
	return b
}

// Recipe sets the crafting recipe producing this item.
func (b *ItemBuilder) Recipe(doc any) *ItemBuilder {
	b.setDoc(datagen.Recipe, b.id(), doc)
	return b
}

// Register declares the entry and returns its forward-reference handle.
// The factory runs later, when the host opens the item registry.
func (b *ItemBuilder) Register() *registry.Handle {
	b.defaultData()
	group := b.group
	factory := b.factory
	return b.reg.Entry(b.name, engine.KindItem, func() (any, error) {
		props := ItemProperties{}
		if group != nil {
			props.Group = group()
		}
		return factory(props)
	})
}

// defaultData installs the derived lang and model documents unless the
// chain already replaced them.
func (b *ItemBuilder) defaultData() {
	if !b.reg.dispatcher.Has(b.name, datagen.Lang) {
		b.setLang(b.defaultDisplayName())
	}
	if !b.reg.dispatcher.Has(b.name, datagen.ItemModel) {
		b.setDoc(datagen.ItemModel, b.id(), map[string]any{
			"parent": "item/generated",
			"textures": map[string]any{
				"layer0": b.reg.namespace + ":item/" + b.name,
			},
		})
	}
}
