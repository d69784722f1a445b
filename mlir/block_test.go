package mlir_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gomlir/gomlir/mlir"
)

func TestBlockArguments(t *testing.T) {
	ctx := newTestContext(t)
	loc := mlir.UnknownLocation(ctx.ContextRef)

	block := mlir.NewBlock(
		mlir.ArgumentSpec{Type: ctx.IntegerType(32), Location: loc},
		mlir.ArgumentSpec{Type: ctx.IndexType(), Location: loc},
	)
	defer block.Destroy()

	require.Equal(t, 2, block.ArgumentCount())

	first, err := block.Argument(0)
	require.NoError(t, err)
	require.True(t, first.IsBlockArgument())
	require.True(t, first.Type().Equal(ctx.IntegerType(32)))
	require.Equal(t, 0, first.Position())
	require.True(t, first.Owner().Equal(block.BlockRef))

	second, err := block.Argument(1)
	require.NoError(t, err)
	require.True(t, mlir.IsIndexType(second.Type()))

	_, err = block.Argument(2)

	var posErr *mlir.BlockArgumentPositionError
	require.ErrorAs(t, err, &posErr)
	require.Equal(t, 2, posErr.Position)
	require.NotEmpty(t, posErr.Block)
}

func TestBlockAddArgument(t *testing.T) {
	ctx := newTestContext(t)
	loc := mlir.UnknownLocation(ctx.ContextRef)

	block := mlir.NewBlock()
	defer block.Destroy()

	require.Equal(t, 0, block.ArgumentCount())

	arg := block.AddArgument(ctx.IntegerType(64), loc)
	require.Equal(t, 1, block.ArgumentCount())
	require.Equal(t, 0, arg.Position())

	arg.SetType(ctx.IntegerType(32))
	require.True(t, arg.Type().Equal(ctx.IntegerType(32)))
}

func TestBlockOperationOrder(t *testing.T) {
	ctx := newTestContext(t)

	block := mlir.NewBlock()
	defer block.Destroy()

	_, exists := block.FirstOperation()
	require.False(t, exists)

	first := block.AppendOperation(buildConstant(t, ctx))
	last := block.AppendOperation(buildConstant(t, ctx))
	middle := block.InsertOperation(1, buildConstant(t, ctx))

	got, exists := block.FirstOperation()
	require.True(t, exists)
	require.True(t, got.Equal(first))

	next, exists := got.NextInBlock()
	require.True(t, exists)
	require.True(t, next.Equal(middle))

	next, exists = next.NextInBlock()
	require.True(t, exists)
	require.True(t, next.Equal(last))

	_, exists = next.NextInBlock()
	require.False(t, exists)

	owner, attached := first.Block()
	require.True(t, attached)
	require.True(t, owner.Equal(block.BlockRef))
}

func TestBlockInsertRelative(t *testing.T) {
	ctx := newTestContext(t)

	block := mlir.NewBlock()
	defer block.Destroy()

	anchor := block.AppendOperation(buildConstant(t, ctx))
	after := block.InsertOperationAfter(anchor, buildConstant(t, ctx))
	before := block.InsertOperationBefore(anchor, buildConstant(t, ctx))

	var order []mlir.OperationRef
	for it := block.Operations(); it.Next(); {
		order = append(order, it.Item())
	}

	require.Len(t, order, 3)
	require.True(t, order[0].Equal(before))
	require.True(t, order[1].Equal(anchor))
	require.True(t, order[2].Equal(after))
}

func TestBlockTerminator(t *testing.T) {
	ctx := newTestContext(t)

	module, err := ctx.ParseModule(`
		func.func @noop() {
			return
		}
	`)
	require.NoError(t, err)
	defer module.Destroy()

	funcOp, exists := module.Body().FirstOperation()
	require.True(t, exists)

	body, exists := funcOp.Region(0)
	require.True(t, exists)

	entry, exists := body.FirstBlock()
	require.True(t, exists)

	terminator, exists := entry.Terminator()
	require.True(t, exists)
	require.Equal(t, "func.return", terminator.Name().Value())

	parentOp, exists := entry.ParentOperation()
	require.True(t, exists)
	require.True(t, parentOp.Equal(funcOp))

	// An unattached block of constants has no terminator.
	loose := mlir.NewBlock()
	defer loose.Destroy()

	loose.AppendOperation(buildConstant(t, ctx))
	_, exists = loose.Terminator()
	require.False(t, exists)
}

func TestBlockDetach(t *testing.T) {
	ctx := newTestContext(t)

	module, err := ctx.ParseModule(`
		func.func @noop() {
			return
		}
	`)
	require.NoError(t, err)
	defer module.Destroy()

	funcOp, _ := module.Body().FirstOperation()
	body, _ := funcOp.Region(0)
	entry, exists := body.FirstBlock()
	require.True(t, exists)

	detached, ok := entry.Detach()
	require.True(t, ok)

	_, exists = body.FirstBlock()
	require.False(t, exists)

	detached.Destroy()

	// A block that was never attached cannot be detached.
	loose := mlir.NewBlock()
	defer loose.Destroy()

	_, ok = loose.Detach()
	require.False(t, ok)
}
