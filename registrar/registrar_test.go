package registrar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/modforge/engine"
	"github.com/vk/modforge/registry"
)

type testItem struct {
	group string
}

type testBlock struct{}

func itemFactory(built *[]string, name string) ItemFactory {
	return func(p ItemProperties) (any, error) {
		*built = append(*built, name)
		return &testItem{group: p.Group}, nil
	}
}

func TestRegistrar_CursorScenario(t *testing.T) {
	r := New("mymod")
	var built []string

	r.Object("gear").Item(itemFactory(&built, "gear")).Register()
	r.Object("plate").Block(func() (any, error) { return &testBlock{}, nil }).Register()

	_, err := r.Get("gear", engine.KindItem)
	require.NoError(t, err)
	_, err = r.Get("plate", engine.KindBlock)
	require.NoError(t, err)

	// Neither name leaked into the other kind.
	_, err = r.Get("gear", engine.KindBlock)
	require.ErrorIs(t, err, registry.ErrNotFound)
	_, err = r.Get("plate", engine.KindItem)
	require.ErrorIs(t, err, registry.ErrNotFound)

	assert.Empty(t, built, "declaration must not construct anything")
}

func TestRegistrar_NameOmittingCallWithoutObjectPanics(t *testing.T) {
	r := New("mymod")
	assert.Panics(t, func() {
		r.Item(func(p ItemProperties) (any, error) { return nil, nil })
	})
	assert.Panics(t, func() { r.CurrentName() })
}

func TestRegistrar_ItemGroupDefaultAndOverride(t *testing.T) {
	bus := engine.NewBus()
	r := Create("mymod", bus)

	materials := func() string { return "materials" }
	tools := func() string { return "tools" }

	r.ItemGroup(materials)
	ingot := r.Object("copper_ingot").
		Item(func(p ItemProperties) (any, error) { return &testItem{group: p.Group}, nil }).
		Register()
	cutter := r.Object("cutter").
		Item(func(p ItemProperties) (any, error) { return &testItem{group: p.Group}, nil }).
		Group(tools).
		Register()

	eng := engine.NewEngine(bus)
	require.NoError(t, eng.OpenRegistries(context.Background()))

	got, err := registry.As[*testItem](ingot)
	require.NoError(t, err)
	assert.Equal(t, "materials", got.group)

	got, err = registry.As[*testItem](cutter)
	require.NoError(t, err)
	assert.Equal(t, "tools", got.group)
}

func TestRegistrar_DefaultItemCompanion(t *testing.T) {
	bus := engine.NewBus()
	r := Create("mymod", bus)

	blockHandle := r.Object("copper_block").
		Block(func() (any, error) { return &testBlock{}, nil }).
		DefaultItem().
		Register()

	itemHandle, err := r.Get("copper_block", engine.KindItem)
	require.NoError(t, err, "DefaultItem must declare a companion entry under the same name")

	eng := engine.NewEngine(bus)
	require.NoError(t, eng.OpenRegistries(context.Background()))

	companion, err := registry.As[*BlockItem](itemHandle)
	require.NoError(t, err)

	blockObj, err := companion.Block.Get()
	require.NoError(t, err, "the block committed before the item registry opened")
	wantBlock, err := blockHandle.Get()
	require.NoError(t, err)
	assert.Same(t, wantBlock, blockObj)
}

func TestRegistrar_FluidTextureDefaults(t *testing.T) {
	r := New("mymod")
	var seen FluidProperties

	r.Object("honey").
		Fluid(func(p FluidProperties) (any, error) {
			seen = p
			return "honey fluid", nil
		}).
		Bucket().
		Register()

	require.NoError(t, r.ledger.Commit(context.Background(), engine.NewMemRegistry(engine.KindFluid)))
	assert.Equal(t, "mymod:block/honey_still", seen.StillTexture.String())
	assert.Equal(t, "mymod:block/honey_flow", seen.FlowingTexture.String())

	_, err := r.Get("honey_bucket", engine.KindItem)
	require.NoError(t, err, "Bucket declares a companion bucket item")
}

func TestRegistrar_EntityClassification(t *testing.T) {
	r := New("mymod")
	var seen EntityProperties

	r.Object("copper_golem").
		Entity(func(p EntityProperties) (any, error) {
			seen = p
			return "golem", nil
		}, ClassificationCreature).
		Register()

	require.NoError(t, r.ledger.Commit(context.Background(), engine.NewMemRegistry(engine.KindEntity)))
	assert.Equal(t, ClassificationCreature, seen.Classification)
}

func TestRegistrar_TransformAppliesHelper(t *testing.T) {
	r := New("mymod")
	called := false
	out := r.Transform(func(in *Registrar) *Registrar {
		called = true
		return in
	})
	assert.True(t, called)
	assert.Same(t, r, out)
}

func TestRegistrar_AddLangPrefixesKey(t *testing.T) {
	r := New("mymod")
	key := r.AddLang("itemGroup.main", "My Mod")
	assert.Equal(t, "mymod.itemGroup.main", key)
}
