package registrar

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/modforge/engine"
)

func TestRegistrar_GatherDataWritesDefaults(t *testing.T) {
	bus := engine.NewBus()
	r := Create("mymod", bus)

	r.Object("copper_ingot").
		Item(func(p ItemProperties) (any, error) { return &testItem{}, nil }).
		Register()
	r.Object("copper_block").
		Block(func() (any, error) { return &testBlock{}, nil }).
		Lang("Block of Copper").
		Register()

	eng := engine.NewEngine(bus)
	outDir := t.TempDir()
	require.NoError(t, eng.OpenRegistries(context.Background()))
	require.NoError(t, eng.GatherData(context.Background(), outDir))

	raw, err := os.ReadFile(filepath.Join(outDir, "assets", "mymod", "lang", "en_us.json"))
	require.NoError(t, err)
	var lang map[string]string
	require.NoError(t, json.Unmarshal(raw, &lang))
	assert.Equal(t, "Copper Ingot", lang["item.mymod.copper_ingot"], "derived default display name")
	assert.Equal(t, "Block of Copper", lang["block.mymod.copper_block"], "explicit Lang replaces the default")

	raw, err = os.ReadFile(filepath.Join(outDir, "assets", "mymod", "models", "item", "copper_ingot.json"))
	require.NoError(t, err)
	var model map[string]any
	require.NoError(t, json.Unmarshal(raw, &model))
	assert.Equal(t, "item/generated", model["parent"])

	raw, err = os.ReadFile(filepath.Join(outDir, "assets", "mymod", "blockstates", "copper_block.json"))
	require.NoError(t, err)
	var state map[string]any
	require.NoError(t, json.Unmarshal(raw, &state))
	assert.Contains(t, state, "variants")
}

func TestRegistrar_RegistryOpenOnlyCommitsMatchingKind(t *testing.T) {
	bus := engine.NewBus()
	r := Create("mymod", bus)

	item := r.Object("gear").
		Item(func(p ItemProperties) (any, error) { return &testItem{}, nil }).
		Register()
	entity := r.Object("golem").
		Entity(func(p EntityProperties) (any, error) { return "golem", nil }, ClassificationMisc).
		Register()

	itemsOnly := engine.NewEngine(bus, engine.KindItem)
	require.NoError(t, itemsOnly.OpenRegistries(context.Background()))

	assert.True(t, item.Resolved())
	assert.False(t, entity.Resolved(), "kinds the host never opens stay pending")
}
