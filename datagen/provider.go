package datagen

import "context"

// ProviderType identifies one category of generated output.
type ProviderType string

// The output types the built-in providers cover. Client-side asset types
// live under "assets" in the generated tree, server-side data types under
// "data".
const (
	Lang       ProviderType = "lang"
	BlockState ProviderType = "blockstate"
	ItemModel  ProviderType = "item_model"
	Recipe     ProviderType = "recipe"
	Loot       ProviderType = "loot_table"
	Tags       ProviderType = "tags"
)

// StandardTypes returns the built-in provider types in generation order.
func StandardTypes() []ProviderType {
	return []ProviderType{Lang, BlockState, ItemModel, Recipe, Loot, Tags}
}

// Provider buffers generated documents of one output type and saves them
// to disk. Implementations are handed to callbacks opaquely; a callback
// asserts the concrete type it was registered for.
type Provider interface {
	Type() ProviderType
	Save(dir string) error
}

// Callback is one generation hook. It receives the pass's provider for
// the type it was registered under.
type Callback func(ctx context.Context, p Provider) error
