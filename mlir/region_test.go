package mlir_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gomlir/gomlir/mlir"
)

func TestRegionBlockOrder(t *testing.T) {
	region := mlir.NewRegion()
	defer region.Destroy()

	_, exists := region.FirstBlock()
	require.False(t, exists)

	first := region.AppendBlock(mlir.NewBlock())
	last := region.AppendBlock(mlir.NewBlock())
	middle := region.InsertBlock(1, mlir.NewBlock())

	got, exists := region.FirstBlock()
	require.True(t, exists)
	require.True(t, got.Equal(first))

	next, exists := got.NextInRegion()
	require.True(t, exists)
	require.True(t, next.Equal(middle))

	next, exists = next.NextInRegion()
	require.True(t, exists)
	require.True(t, next.Equal(last))

	_, exists = next.NextInRegion()
	require.False(t, exists)

	parent, attached := first.ParentRegion()
	require.True(t, attached)
	require.True(t, parent.Equal(region.RegionRef))
}

func TestRegionInsertRelative(t *testing.T) {
	region := mlir.NewRegion()
	defer region.Destroy()

	anchor := region.AppendBlock(mlir.NewBlock())
	after := region.InsertBlockAfter(anchor, mlir.NewBlock())
	before := region.InsertBlockBefore(anchor, mlir.NewBlock())

	var order []mlir.BlockRef
	for it := region.Blocks(); it.Next(); {
		order = append(order, it.Item())
	}

	require.Len(t, order, 3)
	require.True(t, order[0].Equal(before))
	require.True(t, order[1].Equal(anchor))
	require.True(t, order[2].Equal(after))
}

func TestRegionConsumedByBuilder(t *testing.T) {
	ctx := newTestContext(t)
	ctx.SetAllowUnregisteredDialects(true)

	region := mlir.NewRegion()
	region.AppendBlock(mlir.NewBlock())

	op, err := mlir.NewOperationBuilder("scratch.wrapper", mlir.UnknownLocation(ctx.ContextRef)).
		AddRegions(region).
		Build()
	require.NoError(t, err)
	defer op.Destroy()

	require.Equal(t, 1, op.RegionCount())

	attached, exists := op.Region(0)
	require.True(t, exists)

	_, exists = attached.FirstBlock()
	require.True(t, exists)

	// The builder took ownership, so the wrapper is spent.
	require.Panics(t, func() {
		mlir.NewOperationBuilder("scratch.wrapper", mlir.UnknownLocation(ctx.ContextRef)).
			AddRegions(region).
			Build()
	})
}

func TestBlockAttachPanicsWhenSpent(t *testing.T) {
	region := mlir.NewRegion()
	defer region.Destroy()

	block := mlir.NewBlock()
	region.AppendBlock(block)

	require.Panics(t, func() { region.AppendBlock(block) })
}
