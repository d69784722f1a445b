package mlir

/*
#include <stdlib.h>

#include "mlir-c/IR.h"
*/
import "C"

// Identifier represents a string interned in a context, used for operation
// and attribute names.
type Identifier struct {
	c C.MlirIdentifier
}

// NewIdentifier interns value in the context and returns its identifier.
func NewIdentifier(ctx ContextRef, value string) (id Identifier) {
	valueRef, free := stringRefOf(value)
	defer free()

	id.c = C.mlirIdentifierGet(ctx.c, valueRef)
	return
}

// Context returns the context the identifier is interned in.
func (id Identifier) Context() ContextRef {
	return ContextRef{c: C.mlirIdentifierGetContext(id.c)}
}

// Value returns the string the identifier interns.
func (id Identifier) Value() string {
	return goString(C.mlirIdentifierStr(id.c))
}

// Equal reports whether two identifiers intern the same string in the same
// context.
func (id Identifier) Equal(other Identifier) bool {
	return bool(C.mlirIdentifierEqual(id.c, other.c))
}

func (id Identifier) String() string {
	return id.Value()
}
