package mlir_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gomlir/gomlir/mlir"
)

// buildConstant builds an owned `arith.constant 0 : index` operation.
func buildConstant(t *testing.T, ctx *mlir.Context) *mlir.Operation {
	t.Helper()

	value, err := ctx.ParseAttribute("0 : index")
	require.NoError(t, err)

	op, err := mlir.NewOperationBuilder("arith.constant", mlir.UnknownLocation(ctx.ContextRef)).
		AddResults(ctx.IndexType()).
		AddAttributes(mlir.Named(ctx.ContextRef, "value", value)).
		Build()
	require.NoError(t, err)

	return op
}

func TestOperationBuild(t *testing.T) {
	ctx := newTestContext(t)

	op := buildConstant(t, ctx)
	defer op.Destroy()

	require.Equal(t, "arith.constant", op.Name().Value())
	require.True(t, op.Context().Equal(ctx.ContextRef))
	require.True(t, op.Verify())

	_, attached := op.Block()
	require.False(t, attached)
}

func TestOperationResults(t *testing.T) {
	ctx := newTestContext(t)

	op := buildConstant(t, ctx)
	defer op.Destroy()

	require.Equal(t, 1, op.ResultCount())

	result, err := op.Result(0)
	require.NoError(t, err)
	require.True(t, result.IsOperationResult())
	require.False(t, result.IsBlockArgument())
	require.True(t, mlir.IsIndexType(result.Type()))
	require.Equal(t, 0, result.Position())
	require.True(t, result.Owner().Equal(op.OperationRef))

	_, err = op.Result(1)

	var posErr *mlir.OperationResultPositionError
	require.ErrorAs(t, err, &posErr)
	require.Equal(t, 1, posErr.Position)
	require.Contains(t, posErr.Operation, "arith.constant")
}

func TestOperationOperands(t *testing.T) {
	ctx := newTestContext(t)
	loc := mlir.UnknownLocation(ctx.ContextRef)

	block := mlir.NewBlock(
		mlir.ArgumentSpec{Type: ctx.IndexType(), Location: loc},
		mlir.ArgumentSpec{Type: ctx.IndexType(), Location: loc},
	)
	defer block.Destroy()

	lhs, err := block.Argument(0)
	require.NoError(t, err)
	rhs, err := block.Argument(1)
	require.NoError(t, err)

	sum, err := mlir.NewOperationBuilder("arith.addi", loc).
		AddOperands(lhs, rhs).
		AddResults(ctx.IndexType()).
		Build()
	require.NoError(t, err)
	attached := block.AppendOperation(sum)

	require.Equal(t, 2, attached.OperandCount())

	operand, err := attached.Operand(0)
	require.NoError(t, err)
	require.True(t, operand.Equal(lhs))

	_, err = attached.Operand(2)

	var posErr *mlir.OperationOperandPositionError
	require.ErrorAs(t, err, &posErr)
	require.Equal(t, 2, posErr.Position)
}

func TestOperationAttributes(t *testing.T) {
	ctx := newTestContext(t)

	op := buildConstant(t, ctx)
	defer op.Destroy()

	require.Equal(t, 1, op.AttributeCount())

	value, exists := op.Attribute("value")
	require.True(t, exists)
	require.Equal(t, "0 : index", value.String())

	named, exists := op.AttributeAt(0)
	require.True(t, exists)
	require.Equal(t, "value", named.Name.Value())
	require.True(t, named.Value.Equal(value))

	_, exists = op.AttributeAt(1)
	require.False(t, exists)

	extra, err := ctx.ParseAttribute(`"labelled"`)
	require.NoError(t, err)

	op.SetAttribute("label", extra)
	require.Equal(t, 2, op.AttributeCount())

	require.True(t, op.RemoveAttribute("label"))
	require.False(t, op.RemoveAttribute("label"))

	_, exists = op.Attribute("label")
	require.False(t, exists)
}

func TestOperationRegionsAndSuccessors(t *testing.T) {
	ctx := newTestContext(t)

	op := buildConstant(t, ctx)
	defer op.Destroy()

	require.Equal(t, 0, op.RegionCount())
	_, exists := op.Region(0)
	require.False(t, exists)

	require.Equal(t, 0, op.SuccessorCount())
	_, exists = op.Successor(0)
	require.False(t, exists)
}

func TestOperationClone(t *testing.T) {
	ctx := newTestContext(t)

	op := buildConstant(t, ctx)
	defer op.Destroy()

	clone := op.Clone()
	defer clone.Destroy()

	require.False(t, clone.Equal(op.OperationRef))
	require.Equal(t, op.String(), clone.String())
	require.True(t, clone.Verify())
}

func TestOperationBuildFailure(t *testing.T) {
	ctx := newTestContext(t)

	// arith.addi cannot infer result types from zero operands.
	_, err := mlir.NewOperationBuilder("arith.addi", mlir.UnknownLocation(ctx.ContextRef)).
		EnableResultTypeInference().
		Build()

	var buildErr *mlir.OperationBuildError
	require.ErrorAs(t, err, &buildErr)
	require.Equal(t, "arith.addi", buildErr.Name)
}

func TestOperationAttachPanicsWhenSpent(t *testing.T) {
	ctx := newTestContext(t)

	block := mlir.NewBlock()
	defer block.Destroy()

	op := buildConstant(t, ctx)
	block.AppendOperation(op)

	require.Panics(t, func() { block.AppendOperation(op) })
}
