package mlir

/*
#include <stdlib.h>

#include "mlir-c/IR.h"
*/
import "C"

// Context represents an MLIR context.  A context owns every interned entity
// created within it (types, attributes, identifiers, locations) and every IR
// object transitively attached to a module built inside it.
type Context struct {
	ContextRef
}

// NewContext creates a new context.
func NewContext() *Context {
	return &Context{ContextRef{c: C.mlirContextCreate()}}
}

// Destroy releases the context and everything it owns.  Every reference and
// interned value obtained from this context is invalid afterwards.
func (c *Context) Destroy() {
	if c.c.ptr != nil {
		C.mlirContextDestroy(c.c)
		c.c.ptr = nil
	}
}

// ContextRef is a non-owning view of a context, valid only while the owning
// Context is alive.
type ContextRef struct {
	c C.MlirContext
}

// Equal reports whether two references point at the same context.
func (c ContextRef) Equal(other ContextRef) bool {
	return bool(C.mlirContextEqual(c.c, other.c))
}

// SetAllowUnregisteredDialects sets whether operations of unregistered
// dialects may be created in the context.
func (c ContextRef) SetAllowUnregisteredDialects(allowed bool) {
	C.mlirContextSetAllowUnregisteredDialects(c.c, (C.bool)(allowed))
}

// AllowsUnregisteredDialects returns whether operations of unregistered
// dialects may be created in the context.
func (c ContextRef) AllowsUnregisteredDialects() bool {
	return bool(C.mlirContextGetAllowUnregisteredDialects(c.c))
}

// RegisteredDialectCount returns the number of dialects registered with the
// context, loaded or not.
func (c ContextRef) RegisteredDialectCount() int {
	return int(C.mlirContextGetNumRegisteredDialects(c.c))
}

// LoadedDialectCount returns the number of dialects loaded into the context.
func (c ContextRef) LoadedDialectCount() int {
	return int(C.mlirContextGetNumLoadedDialects(c.c))
}

// GetOrLoadDialect loads the dialect with the given namespace into the
// context if it is registered, returning the loaded dialect.
func (c ContextRef) GetOrLoadDialect(name string) (d Dialect, exists bool) {
	nameRef, free := stringRefOf(name)
	defer free()

	d.c = C.mlirContextGetOrLoadDialect(c.c, nameRef)
	exists = d.c.ptr != nil
	return
}

// AppendDialectRegistry appends the contents of a dialect registry to the
// context.  The registry itself is copied from and may be destroyed
// afterwards.
func (c ContextRef) AppendDialectRegistry(registry *DialectRegistry) {
	C.mlirContextAppendDialectRegistry(c.c, registry.c)
}

// LoadAllAvailableDialects eagerly loads all dialects registered with the
// context.
func (c ContextRef) LoadAllAvailableDialects() {
	C.mlirContextLoadAllAvailableDialects(c.c)
}

// IsRegisteredOperation returns whether the fully qualified operation name
// (e.g. "func.return") is registered with the context.
func (c ContextRef) IsRegisteredOperation(name string) bool {
	nameRef, free := stringRefOf(name)
	defer free()

	return bool(C.mlirContextIsRegisteredOperation(c.c, nameRef))
}
