package mlir

/*
#include <stdlib.h>

#include "mlir-c/IR.h"
*/
import "C"

// Attribute represents an attribute value interned in a context.  Like
// types, attributes are value-like: never destroyed individually and
// compared by engine equality.
type Attribute struct {
	c C.MlirAttribute
}

// ParseAttribute parses an attribute from its textual form, e.g.
// `0 : index` or `"add"`.  A syntax error is reported as a *ParseError.
func (c ContextRef) ParseAttribute(source string) (Attribute, error) {
	sourceRef, free := stringRefOf(source)
	defer free()

	raw := C.mlirAttributeParseGet(c.c, sourceRef)
	if raw.ptr == nil {
		return Attribute{}, &ParseError{Kind: "attribute", Source: source}
	}

	return Attribute{c: raw}, nil
}

// Context returns the context the attribute is interned in.
func (a Attribute) Context() ContextRef {
	return ContextRef{c: C.mlirAttributeGetContext(a.c)}
}

// Type returns the type of the attribute.
func (a Attribute) Type() Type {
	return typeBase{c: C.mlirAttributeGetType(a.c)}
}

// Equal reports whether the attribute equals other per the engine's
// structural equality.
func (a Attribute) Equal(other Attribute) bool {
	return bool(C.mlirAttributeEqual(a.c, other.c))
}

// Dump prints the attribute to the engine's error stream.
func (a Attribute) Dump() {
	C.mlirAttributeDump(a.c)
}

// -----------------------------------------------------------------------------

// NamedAttribute pairs an attribute value with the identifier it is attached
// under.
type NamedAttribute struct {
	Name  Identifier
	Value Attribute
}

// Named is a convenience constructor interning name in ctx and pairing it
// with value.
func Named(ctx ContextRef, name string, value Attribute) NamedAttribute {
	return NamedAttribute{Name: NewIdentifier(ctx, name), Value: value}
}
