package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/modforge/engine"
)

type ingot struct {
	name string
}

func TestLedger_HandlePendingUntilCommit(t *testing.T) {
	ledger := New("mymod")
	invocations := 0

	h := ledger.Declare("copper_ingot", engine.KindItem, func() (any, error) {
		invocations++
		return &ingot{name: "copper_ingot"}, nil
	})

	require.NotNil(t, h)
	assert.Equal(t, 0, invocations, "declaration must never invoke the factory")
	assert.False(t, h.Resolved())

	_, err := h.Get()
	require.ErrorIs(t, err, ErrPending)

	sink := engine.NewMemRegistry(engine.KindItem)
	require.NoError(t, ledger.Commit(context.Background(), sink))

	assert.Equal(t, 1, invocations)
	require.True(t, h.Resolved())

	first, err := h.Get()
	require.NoError(t, err)
	second, err := h.Get()
	require.NoError(t, err)
	assert.Same(t, first.(*ingot), second.(*ingot), "resolved handle must keep one stable identity")

	obj, ok := sink.Get(engine.MustID("mymod", "copper_ingot"))
	require.True(t, ok)
	assert.Same(t, first.(*ingot), obj.(*ingot))
}

func TestLedger_SecondCommitIsNoOp(t *testing.T) {
	ledger := New("mymod")
	invocations := 0
	ledger.Declare("copper_ingot", engine.KindItem, func() (any, error) {
		invocations++
		return &ingot{}, nil
	})

	sink := engine.NewMemRegistry(engine.KindItem)
	require.NoError(t, ledger.Commit(context.Background(), sink))
	require.NoError(t, ledger.Commit(context.Background(), sink))

	assert.Equal(t, 1, invocations, "factory must run exactly once across repeated signals")
	assert.Equal(t, 1, sink.Len())
}

func TestLedger_RedeclareReplacesFactory(t *testing.T) {
	ledger := New("mymod")
	var built []string

	ledger.Declare("gear", engine.KindItem, func() (any, error) {
		built = append(built, "old")
		return &ingot{name: "old"}, nil
	})
	h := ledger.Declare("gear", engine.KindItem, func() (any, error) {
		built = append(built, "new")
		return &ingot{name: "new"}, nil
	})

	sink := engine.NewMemRegistry(engine.KindItem)
	require.NoError(t, ledger.Commit(context.Background(), sink))

	assert.Equal(t, []string{"new"}, built, "only the latest factory may ever run")

	obj, err := As[*ingot](h)
	require.NoError(t, err)
	assert.Equal(t, "new", obj.name)
}

func TestLedger_RedeclareRearmsCommittedEntry(t *testing.T) {
	ledger := New("mymod")
	ledger.Declare("gear", engine.KindItem, func() (any, error) {
		return &ingot{name: "v1"}, nil
	})

	require.NoError(t, ledger.Commit(context.Background(), engine.NewMemRegistry(engine.KindItem)))

	h2 := ledger.Declare("gear", engine.KindItem, func() (any, error) {
		return &ingot{name: "v2"}, nil
	})
	_, err := h2.Get()
	require.ErrorIs(t, err, ErrPending, "re-declaration hands out a fresh pending handle")

	// A fresh snapshot sink, as fired by the next registry-open cycle.
	sink := engine.NewMemRegistry(engine.KindItem)
	require.NoError(t, ledger.Commit(context.Background(), sink))

	obj, err := As[*ingot](h2)
	require.NoError(t, err)
	assert.Equal(t, "v2", obj.name)
}

func TestLedger_GetUndeclaredFailsLoudly(t *testing.T) {
	ledger := New("mymod")

	h, err := ledger.Get("nonexistent", engine.KindItem)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, h)

	assert.Panics(t, func() { ledger.MustGet("nonexistent", engine.KindItem) })
}

func TestLedger_SameNameAcrossKinds(t *testing.T) {
	ledger := New("mymod")
	ledger.Declare("my_block", engine.KindBlock, func() (any, error) { return "the block", nil })
	ledger.Declare("my_block", engine.KindItem, func() (any, error) { return "the item", nil })

	blockHandle, err := ledger.Get("my_block", engine.KindBlock)
	require.NoError(t, err)
	itemHandle, err := ledger.Get("my_block", engine.KindItem)
	require.NoError(t, err)
	assert.NotSame(t, blockHandle, itemHandle)

	require.NoError(t, ledger.Commit(context.Background(), engine.NewMemRegistry(engine.KindBlock)))
	assert.True(t, blockHandle.Resolved())
	assert.False(t, itemHandle.Resolved(), "committing one kind must not touch the other")
}

func TestLedger_GetAllIsExactAndOrdered(t *testing.T) {
	ledger := New("mymod")
	for _, name := range []string{"gear", "plate", "ingot"} {
		name := name
		ledger.Declare(name, engine.KindItem, func() (any, error) { return name, nil })
	}
	ledger.Declare("gear", engine.KindBlock, func() (any, error) { return "block gear", nil })

	// Re-declaration must not produce duplicates.
	ledger.Declare("plate", engine.KindItem, func() (any, error) { return "plate v2", nil })

	handles := ledger.GetAll(engine.KindItem)
	names := make([]string, 0, len(handles))
	for _, h := range handles {
		names = append(names, h.ID().Path)
	}
	assert.Equal(t, []string{"gear", "plate", "ingot"}, names)

	assert.Empty(t, ledger.GetAll(engine.Kind("biome")))
}

func TestLedger_CommitIsBestEffortOnFailure(t *testing.T) {
	ledger := New("mymod")
	boom := errors.New("boom")

	ledger.Declare("broken", engine.KindItem, func() (any, error) { return nil, boom })
	good := ledger.Declare("good", engine.KindItem, func() (any, error) { return &ingot{name: "good"}, nil })

	sink := engine.NewMemRegistry(engine.KindItem)
	err := ledger.Commit(context.Background(), sink)
	require.ErrorIs(t, err, boom)

	assert.True(t, good.Resolved(), "entries after a failure still commit")
	assert.Equal(t, 1, sink.Len())
}

func TestLedger_DeclareValidation(t *testing.T) {
	ledger := New("mymod")
	assert.Panics(t, func() { ledger.Declare("", engine.KindItem, func() (any, error) { return nil, nil }) })
	assert.Panics(t, func() { ledger.Declare("ok", engine.KindItem, nil) })
	assert.Panics(t, func() { New("Bad Namespace") })
}
