package mlir

/*
#include <stdlib.h>

#include "mlir-c/IR.h"
*/
import "C"

// Module represents an owned top-level module.  A module is the root of an
// IR graph: destroying it releases every operation, block, and region
// attached below it.
type Module struct {
	c C.MlirModule
}

// NewModule creates a new, empty module at the given location.
func NewModule(location Location) *Module {
	return &Module{c: C.mlirModuleCreateEmpty(location.c)}
}

// ParseModule parses a module from its textual form.  A syntax error is
// reported as a *ParseError.
func (c ContextRef) ParseModule(source string) (*Module, error) {
	sourceRef, free := stringRefOf(source)
	defer free()

	raw := C.mlirModuleCreateParse(c.c, sourceRef)
	if raw.ptr == nil {
		return nil, &ParseError{Kind: "module", Source: source}
	}

	return &Module{c: raw}, nil
}

// Destroy releases the module and the entire IR graph it owns.  It is a
// no-op on a spent wrapper.
func (m *Module) Destroy() {
	if m.c.ptr != nil {
		C.mlirModuleDestroy(m.c)
		m.c.ptr = nil
	}
}

// Context returns the context the module lives in.
func (m *Module) Context() ContextRef {
	return ContextRef{c: C.mlirModuleGetContext(m.c)}
}

// Body returns the unique block of the module's body region.  Operations
// appended to it become part of the module.
func (m *Module) Body() BlockRef {
	return BlockRef{c: C.mlirModuleGetBody(m.c)}
}

// AsOperation views the module as its underlying operation.  The reference
// stays owned by the module; it must not be destroyed and is only valid
// while the module is alive.
func (m *Module) AsOperation() OperationRef {
	return OperationRef{c: C.mlirModuleGetOperation(m.c)}
}

// FromOperation converts an owned operation into a module, taking ownership
// of it.  It returns ok == false, leaving the operation untouched, if the
// operation is not a builtin.module.
func FromOperation(operation *Operation) (m *Module, ok bool) {
	raw := C.mlirModuleFromOperation(operation.c)
	if raw.ptr == nil {
		return nil, false
	}

	operation.take()
	return &Module{c: raw}, true
}
