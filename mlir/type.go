package mlir

/*
#include <stdlib.h>

#include "mlir-c/IR.h"
#include "mlir-c/BuiltinTypes.h"
*/
import "C"
import "io"

// Type is an interface used to represent all MLIR types.  Types are interned
// in their context: they are value-like, never destroyed individually, and
// compared by engine equality.
type Type interface {
	// ptr returns the internal MLIR object pointer to the type.
	ptr() C.MlirType

	// Context returns the context the type is interned in.
	Context() ContextRef

	// Equal reports whether the type equals other per the engine's
	// structural equality.
	Equal(other Type) bool

	// Print writes the textual form of the type to w.
	Print(w io.Writer) error

	// String returns the textual form of the type.
	String() string

	// Dump prints the type to the engine's error stream.
	Dump()
}

// typeBase is the base struct used to build MLIR types.
type typeBase struct {
	c C.MlirType
}

func (t typeBase) ptr() C.MlirType {
	return t.c
}

func (t typeBase) Context() ContextRef {
	return ContextRef{c: C.mlirTypeGetContext(t.c)}
}

func (t typeBase) Equal(other Type) bool {
	return bool(C.mlirTypeEqual(t.c, other.ptr()))
}

func (t typeBase) Dump() {
	C.mlirTypeDump(t.c)
}

// ParseType parses a type from its textual form, e.g. "i64" or
// "memref<?xf32>".  A syntax error is reported as a *ParseError.
func (c ContextRef) ParseType(source string) (Type, error) {
	sourceRef, free := stringRefOf(source)
	defer free()

	raw := C.mlirTypeParseGet(c.c, sourceRef)
	if raw.ptr == nil {
		return nil, &ParseError{Kind: "type", Source: source}
	}

	return typeBase{c: raw}, nil
}

// -----------------------------------------------------------------------------

// IntegerType represents a signless, signed, or unsigned integer type.
type IntegerType struct {
	typeBase
}

// IntegerType returns the signless integer type of the given bit width.
func (c ContextRef) IntegerType(width uint) (it IntegerType) {
	it.c = C.mlirIntegerTypeGet(c.c, (C.uint)(width))
	return
}

// SignedIntegerType returns the signed integer type of the given bit width.
func (c ContextRef) SignedIntegerType(width uint) (it IntegerType) {
	it.c = C.mlirIntegerTypeSignedGet(c.c, (C.uint)(width))
	return
}

// UnsignedIntegerType returns the unsigned integer type of the given bit
// width.
func (c ContextRef) UnsignedIntegerType(width uint) (it IntegerType) {
	it.c = C.mlirIntegerTypeUnsignedGet(c.c, (C.uint)(width))
	return
}

// Width returns the bit width of the integer type.
func (it IntegerType) Width() uint {
	return uint(C.mlirIntegerTypeGetWidth(it.c))
}

// AsIntegerType downcasts a type to an integer type.
func AsIntegerType(t Type) (it IntegerType, ok bool) {
	if bool(C.mlirTypeIsAInteger(t.ptr())) {
		it.c = t.ptr()
		ok = true
	}

	return
}

// -----------------------------------------------------------------------------

// IndexType returns the index type.
func (c ContextRef) IndexType() Type {
	return typeBase{c: C.mlirIndexTypeGet(c.c)}
}

// NoneType returns the none type.
func (c ContextRef) NoneType() Type {
	return typeBase{c: C.mlirNoneTypeGet(c.c)}
}

// Float32Type returns the f32 type.
func (c ContextRef) Float32Type() Type {
	return typeBase{c: C.mlirF32TypeGet(c.c)}
}

// Float64Type returns the f64 type.
func (c ContextRef) Float64Type() Type {
	return typeBase{c: C.mlirF64TypeGet(c.c)}
}

// IsIndexType returns whether the type is the index type.
func IsIndexType(t Type) bool {
	return bool(C.mlirTypeIsAIndex(t.ptr()))
}
