package mlir

/*
#include <stdlib.h>

#include "mlir-c/IR.h"
*/
import "C"
import "io"

// Value is an interface used to represent all MLIR values.  A value is
// either a block argument or an operation result; its identity is
// positional, owned by the block or operation that produced it.
type Value interface {
	// ptr returns the internal MLIR object pointer to the value.
	ptr() C.MlirValue

	// Type returns the type of the value.
	Type() Type

	// Equal reports whether two references point at the same value.
	Equal(other Value) bool

	// IsBlockArgument returns whether the value is a block argument.
	IsBlockArgument() bool

	// IsOperationResult returns whether the value is an operation result.
	IsOperationResult() bool

	// Print writes the textual form of the value to w.
	Print(w io.Writer) error

	// String returns the textual form of the value.
	String() string

	// Dump prints the value to the engine's error stream.
	Dump()
}

// valueBase is the base type for all values.
type valueBase struct {
	c C.MlirValue
}

func (v valueBase) ptr() C.MlirValue {
	return v.c
}

func (v valueBase) Type() Type {
	return typeBase{c: C.mlirValueGetType(v.c)}
}

func (v valueBase) Equal(other Value) bool {
	return bool(C.mlirValueEqual(v.c, other.ptr()))
}

func (v valueBase) IsBlockArgument() bool {
	return bool(C.mlirValueIsABlockArgument(v.c))
}

func (v valueBase) IsOperationResult() bool {
	return bool(C.mlirValueIsAOpResult(v.c))
}

func (v valueBase) Dump() {
	C.mlirValueDump(v.c)
}

// -----------------------------------------------------------------------------

// BlockArgument represents a value defined as an argument of a block,
// identified by its owning block and position.
type BlockArgument struct {
	valueBase
}

// Owner returns the block that defines the argument.
func (a BlockArgument) Owner() BlockRef {
	return BlockRef{c: C.mlirBlockArgumentGetOwner(a.c)}
}

// Position returns the position of the argument in its block.
func (a BlockArgument) Position() int {
	return int(C.mlirBlockArgumentGetArgNumber(a.c))
}

// SetType changes the type of the argument in place.
func (a BlockArgument) SetType(t Type) {
	C.mlirBlockArgumentSetType(a.c, t.ptr())
}

// AsBlockArgument downcasts a value to a block argument.
func AsBlockArgument(v Value) (arg BlockArgument, ok bool) {
	if v.IsBlockArgument() {
		arg.c = v.ptr()
		ok = true
	}

	return
}

// -----------------------------------------------------------------------------

// OperationResult represents a value defined as a result of an operation,
// identified by its owning operation and position.
type OperationResult struct {
	valueBase
}

// Owner returns the operation that defines the result.
func (r OperationResult) Owner() OperationRef {
	return OperationRef{c: C.mlirOpResultGetOwner(r.c)}
}

// Position returns the position of the result among its operation's results.
func (r OperationResult) Position() int {
	return int(C.mlirOpResultGetResultNumber(r.c))
}

// AsOperationResult downcasts a value to an operation result.
func AsOperationResult(v Value) (res OperationResult, ok bool) {
	if v.IsOperationResult() {
		res.c = v.ptr()
		ok = true
	}

	return
}
