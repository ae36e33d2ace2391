package registrar

import (
	"fmt"

	"github.com/vk/modforge/datagen"
	"github.com/vk/modforge/engine"
	"github.com/vk/modforge/registry"
)

// BlockItem is the companion item a BlockBuilder declares via
// DefaultItem. It forwards to the block's handle, which resolves before
// the item registry opens (blocks commit first in the standard kind
// order).
type BlockItem struct {
	Block *registry.Handle
	Group string
}

// BlockBuilder declares a block-like entry.
type BlockBuilder struct {
	builderBase
	factory     registry.Factory
	defaultItem bool
	itemGroup   GroupFunc
}

// Block opens a block builder for the active object name.
func (r *Registrar) Block(factory registry.Factory) *BlockBuilder {
	return r.BlockNamed(r.CurrentName(), factory)
}

// BlockNamed opens a block builder for an explicit name without touching
// the current-name cursor.
func (r *Registrar) BlockNamed(name string, factory registry.Factory) *BlockBuilder {
	return &BlockBuilder{
		builderBase: builderBase{reg: r, name: name, kind: engine.KindBlock},
		factory:     factory,
		itemGroup:   r.currentGroup,
	}
}

// Lang sets the block's display name, replacing the derived default.
func (b *BlockBuilder) Lang(display string) *BlockBuilder {
	b.setLang(display)
	return b
}

// BlockState sets the block-state document, replacing the generated
// default.
func (b *BlockBuilder) BlockState(doc any) *BlockBuilder {
	b.setDoc(datagen.BlockState, b.id(), doc)
	return b
}

// Loot sets the block's loot table.
func (b *BlockBuilder) Loot(doc any) *BlockBuilder {
	b.setDoc(datagen.Loot, engine.ID{Namespace: b.reg.namespace, Path: "blocks/" + b.name}, doc)
	return b
}

// Recipe sets the crafting recipe producing this block.
func (b *BlockBuilder) Recipe(doc any) *BlockBuilder {
	b.setDoc(datagen.Recipe, b.id(), doc)
	return b
}

// Group overrides the classification group of the companion item.
func (b *BlockBuilder) Group(group GroupFunc) *BlockBuilder {
	b.itemGroup = group
	return b
}

// DefaultItem also declares a companion BlockItem under the same name.
func (b *BlockBuilder) DefaultItem() *BlockBuilder {
	b.defaultItem = true
	return b
}

// Register declares the block entry (and its companion item if
// requested) and returns the block's forward-reference handle.
func (b *BlockBuilder) Register() *registry.Handle {
	b.defaultData()
	handle := b.reg.Entry(b.name, engine.KindBlock, b.factory)

	if b.defaultItem {
		group := b.itemGroup
		b.reg.Entry(b.name, engine.KindItem, func() (any, error) {
			if !handle.Resolved() {
				return nil, fmt.Errorf("companion item %q built before its block committed", b.name)
			}
			item := &BlockItem{Block: handle}
			if group != nil {
				item.Group = group()
			}
			return item, nil
		})
	}
	return handle
}

// defaultData installs the derived lang and block-state documents unless
// the chain already replaced them.
func (b *BlockBuilder) defaultData() {
	if !b.reg.dispatcher.Has(b.name, datagen.Lang) {
		b.setLang(b.defaultDisplayName())
	}
	if !b.reg.dispatcher.Has(b.name, datagen.BlockState) {
		b.setDoc(datagen.BlockState, b.id(), map[string]any{
			"variants": map[string]any{
				"": map[string]any{"model": b.reg.namespace + ":block/" + b.name},
			},
		})
	}
}
