package mlir_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/gomlir/gomlir/mlir"
)

func TestNewModule(t *testing.T) {
	ctx := newTestContext(t)

	module := mlir.NewModule(mlir.UnknownLocation(ctx.ContextRef))
	defer module.Destroy()

	require.True(t, module.Context().Equal(ctx.ContextRef))
	require.True(t, module.AsOperation().Verify())

	_, exists := module.Body().FirstOperation()
	require.False(t, exists)
}

func TestParseModule(t *testing.T) {
	ctx := newTestContext(t)

	module, err := ctx.ParseModule(`
		func.func @add(%lhs: i64, %rhs: i64) -> i64 {
			%sum = arith.addi %lhs, %rhs : i64
			return %sum : i64
		}
	`)
	require.NoError(t, err)
	defer module.Destroy()

	require.True(t, module.AsOperation().Verify())

	funcOp, exists := module.Body().FirstOperation()
	require.True(t, exists)
	require.Equal(t, "func.func", funcOp.Name().Value())

	parent, exists := funcOp.ParentOperation()
	require.True(t, exists)
	require.True(t, parent.Equal(module.AsOperation()))

	_, err = ctx.ParseModule("not mlir at all {{{")

	var parseErr *mlir.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "module", parseErr.Kind)
}

// buildAddFunction assembles the module below from scratch through the
// builder API:
//
//	func.func @add(%arg0: i64, %arg1: i64) -> i64 {
//		%0 = arith.addi %arg0, %arg1 : i64
//		return %0 : i64
//	}
func buildAddFunction(t *testing.T, ctx *mlir.Context) *mlir.Module {
	t.Helper()

	loc := mlir.UnknownLocation(ctx.ContextRef)
	i64 := ctx.IntegerType(64)

	module := mlir.NewModule(loc)

	entry := mlir.NewBlock(
		mlir.ArgumentSpec{Type: i64, Location: loc},
		mlir.ArgumentSpec{Type: i64, Location: loc},
	)

	lhs, err := entry.Argument(0)
	require.NoError(t, err)
	rhs, err := entry.Argument(1)
	require.NoError(t, err)

	sumOp, err := mlir.NewOperationBuilder("arith.addi", loc).
		AddOperands(lhs, rhs).
		AddResults(i64).
		Build()
	require.NoError(t, err)
	sum := entry.AppendOperation(sumOp)

	result, err := sum.Result(0)
	require.NoError(t, err)

	returnOp, err := mlir.NewOperationBuilder("func.return", loc).
		AddOperands(result).
		Build()
	require.NoError(t, err)
	entry.AppendOperation(returnOp)

	body := mlir.NewRegion()
	body.AppendBlock(entry)

	functionType, err := ctx.ParseAttribute("(i64, i64) -> i64")
	require.NoError(t, err)
	symbolName, err := ctx.ParseAttribute(`"add"`)
	require.NoError(t, err)

	funcOp, err := mlir.NewOperationBuilder("func.func", loc).
		AddAttributes(
			mlir.Named(ctx.ContextRef, "function_type", functionType),
			mlir.Named(ctx.ContextRef, "sym_name", symbolName),
		).
		AddRegions(body).
		Build()
	require.NoError(t, err)
	module.Body().AppendOperation(funcOp)

	return module
}

func TestBuildAddFunction(t *testing.T) {
	ctx := newTestContext(t)

	module := buildAddFunction(t, ctx)
	defer module.Destroy()

	require.True(t, module.AsOperation().Verify())

	g := goldie.New(t)
	g.Assert(t, "add_module", []byte(module.String()))
}

func TestModulePrint(t *testing.T) {
	ctx := newTestContext(t)

	module := buildAddFunction(t, ctx)
	defer module.Destroy()

	var sb strings.Builder
	require.NoError(t, module.Print(&sb))
	require.Equal(t, module.String(), sb.String())
	require.Contains(t, sb.String(), "arith.addi")
}

// failingWriter accepts up to limit bytes and then fails every write.
type failingWriter struct {
	limit int
	err   error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.limit <= 0 {
		return 0, w.err
	}

	n := len(p)
	if n > w.limit {
		n = w.limit
	}
	w.limit -= n

	if n < len(p) {
		return n, w.err
	}

	return n, nil
}

func TestModulePrintWriteError(t *testing.T) {
	ctx := newTestContext(t)

	module := buildAddFunction(t, ctx)
	defer module.Destroy()

	sinkErr := errors.New("sink closed")

	// A writer that fails immediately surfaces its error from Print.
	require.ErrorIs(t, module.Print(&failingWriter{err: sinkErr}), sinkErr)

	// A writer that fails mid-stream surfaces the first write error; the
	// remaining chunks are discarded rather than written past the failure.
	partial := &failingWriter{limit: 4, err: sinkErr}
	require.ErrorIs(t, module.AsOperation().Print(partial), sinkErr)
	require.Zero(t, partial.limit)
}

func TestModuleFromOperation(t *testing.T) {
	ctx := newTestContext(t)

	module := mlir.NewModule(mlir.UnknownLocation(ctx.ContextRef))
	defer module.Destroy()

	clone := module.AsOperation().Clone()

	viewed, ok := mlir.FromOperation(clone)
	require.True(t, ok)
	viewed.Destroy()

	// A non-module operation cannot be viewed as a module.
	constant := buildConstant(t, ctx)
	defer constant.Destroy()

	_, ok = mlir.FromOperation(constant)
	require.False(t, ok)
}
