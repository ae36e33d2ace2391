package datagen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/modforge/engine"
)

// JSONProvider buffers arbitrary JSON documents keyed by entry ID and
// writes one file per document into the conventional pack layout:
// <dir>/<root>/<namespace>/<subdir>/<path>.json. All non-lang built-in
// providers are instances of it.
type JSONProvider struct {
	typ    ProviderType
	root   string // "assets" or "data"
	subdir string
	docs   map[engine.ID]any
	order  []engine.ID
}

func newJSONProvider(typ ProviderType, root, subdir string) *JSONProvider {
	return &JSONProvider{
		typ:    typ,
		root:   root,
		subdir: subdir,
		docs:   make(map[engine.ID]any),
	}
}

// NewBlockStateProvider generates block-state definitions.
func NewBlockStateProvider() *JSONProvider {
	return newJSONProvider(BlockState, "assets", "blockstates")
}

// NewItemModelProvider generates item models.
func NewItemModelProvider() *JSONProvider {
	return newJSONProvider(ItemModel, "assets", filepath.Join("models", "item"))
}

// NewRecipeProvider generates crafting recipes.
func NewRecipeProvider() *JSONProvider {
	return newJSONProvider(Recipe, "data", "recipes")
}

// NewLootProvider generates loot tables.
func NewLootProvider() *JSONProvider {
	return newJSONProvider(Loot, "data", "loot_tables")
}

// NewTagsProvider generates tag lists.
func NewTagsProvider() *JSONProvider {
	return newJSONProvider(Tags, "data", "tags")
}

// Type implements Provider.
func (p *JSONProvider) Type() ProviderType {
	return p.typ
}

// Put buffers one document under its entry ID. A later Put for the same
// ID wins.
func (p *JSONProvider) Put(id engine.ID, doc any) {
	if _, exists := p.docs[id]; !exists {
		p.order = append(p.order, id)
	}
	p.docs[id] = doc
}

// Get returns a buffered document, for post-generation inspection.
func (p *JSONProvider) Get(id engine.ID) (any, bool) {
	doc, ok := p.docs[id]
	return doc, ok
}

// Len reports the number of buffered documents.
func (p *JSONProvider) Len() int {
	return len(p.docs)
}

// Save writes every buffered document as an indented JSON file under dir.
func (p *JSONProvider) Save(dir string) error {
	for _, id := range p.order {
		target := filepath.Join(dir, p.root, id.Namespace, p.subdir, filepath.FromSlash(id.Path)+".json")
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("creating %s directory: %w", p.subdir, err)
		}
		data, err := json.MarshalIndent(p.docs[id], "", "  ")
		if err != nil {
			return fmt.Errorf("encoding %s document for %s: %w", p.typ, id, err)
		}
		if err := os.WriteFile(target, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("writing %s document for %s: %w", p.typ, id, err)
		}
	}
	return nil
}
