package pack

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/modforge/engine"
	"github.com/vk/modforge/registrar"
	"github.com/vk/modforge/registry"
)

const testDescriptor = `
namespace: mymod
name: My Mod
version: 0.1.0
`

const testContent = `
block "copper_block" {
  display_name = "Block of Copper"
  default_item = true
  properties = {
    hardness = 3.0
    tool     = "pickaxe"
  }
}

item "copper_ingot" {
  group = "materials"
}

entity "copper_golem" {
  classification = "creature"
}

block_entity "copper_chest" {}

fluid "honey" {
  bucket = true
}
`

func writePack(t *testing.T, descriptor, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pack.yaml"), []byte(descriptor), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "content.hcl"), []byte(content), 0o600))
	return dir
}

func TestLoader_Load(t *testing.T) {
	dir := writePack(t, testDescriptor, testContent)

	p, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "mymod", p.Descriptor.Namespace)
	assert.Equal(t, "My Mod", p.Descriptor.Name)
	assert.Equal(t, 5, p.Len())

	require.Len(t, p.Blocks, 1)
	block := p.Blocks[0]
	assert.Equal(t, "copper_block", block.Name)
	assert.True(t, block.DefaultItem)
	assert.Equal(t, map[string]any{"hardness": 3.0, "tool": "pickaxe"}, block.Properties)

	require.Len(t, p.Entities, 1)
	assert.Equal(t, registrar.ClassificationCreature, p.Entities[0].Classification)
}

func TestLoader_Errors(t *testing.T) {
	testCases := []struct {
		name       string
		descriptor string
		content    string
	}{
		{
			name:       "missing namespace",
			descriptor: "name: My Mod\n",
			content:    testContent,
		},
		{
			name:       "invalid namespace",
			descriptor: "namespace: My Mod\n",
			content:    testContent,
		},
		{
			name:       "hcl syntax error",
			descriptor: testDescriptor,
			content:    "block \"x\" {\n",
		},
		{
			name:       "unknown classification",
			descriptor: testDescriptor,
			content:    "entity \"golem\" {\n  classification = \"boss\"\n}\n",
		},
		{
			name:       "malformed texture id",
			descriptor: testDescriptor,
			content:    "fluid \"honey\" {\n  still_texture = \"no-namespace\"\n}\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := writePack(t, tc.descriptor, tc.content)
			_, err := NewLoader().Load(context.Background(), dir)
			require.Error(t, err)
		})
	}
}

func TestPack_DeclareAllRoundTrip(t *testing.T) {
	dir := writePack(t, testDescriptor, testContent)
	ctx := context.Background()

	p, err := NewLoader().Load(ctx, dir)
	require.NoError(t, err)

	bus := engine.NewBus()
	r := registrar.Create("mymod", bus)
	require.NoError(t, p.DeclareAll(ctx, r))

	// Declared, not constructed: handles are still pending.
	blockHandle, err := r.Get("copper_block", engine.KindBlock)
	require.NoError(t, err)
	assert.False(t, blockHandle.Resolved())

	eng := engine.NewEngine(bus)
	require.NoError(t, eng.OpenRegistries(ctx))

	spec, err := registry.As[*BlockSpec](blockHandle)
	require.NoError(t, err)
	assert.Equal(t, 3.0, spec.Properties["hardness"])

	// default_item declared a companion under the same name.
	itemReg, ok := eng.Registry(engine.KindItem)
	require.True(t, ok)
	_, ok = itemReg.Get(engine.MustID("mymod", "copper_block"))
	assert.True(t, ok)

	// The fluid bucket companion committed as well.
	_, ok = itemReg.Get(engine.MustID("mymod", "honey_bucket"))
	assert.True(t, ok)

	fluidHandle, err := r.Get("honey", engine.KindFluid)
	require.NoError(t, err)
	fluid, err := registry.As[*FluidSpec](fluidHandle)
	require.NoError(t, err)
	assert.Equal(t, "mymod:block/honey_still", fluid.StillTex.String())
	assert.Equal(t, "mymod:block/honey_flow", fluid.FlowTex.String())
}

func TestPack_DeclareAllNamespaceMismatch(t *testing.T) {
	dir := writePack(t, testDescriptor, testContent)
	ctx := context.Background()

	p, err := NewLoader().Load(ctx, dir)
	require.NoError(t, err)

	r := registrar.New("othermod")
	require.Error(t, p.DeclareAll(ctx, r))
}
