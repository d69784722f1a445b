package mlir

/*
#include <stdlib.h>

#include "mlir-c/IR.h"
*/
import "C"

// Dialect represents a dialect loaded into a context.
type Dialect struct {
	c C.MlirDialect
}

// Context returns the context the dialect is loaded into.
func (d Dialect) Context() ContextRef {
	return ContextRef{c: C.mlirDialectGetContext(d.c)}
}

// Namespace returns the namespace of the dialect, e.g. "func".
func (d Dialect) Namespace() string {
	return goString(C.mlirDialectGetNamespace(d.c))
}

// Equal reports whether two references point at the same dialect instance.
func (d Dialect) Equal(other Dialect) bool {
	return bool(C.mlirDialectEqual(d.c, other.c))
}

// -----------------------------------------------------------------------------

// DialectRegistry represents an owned collection of dialect registrations
// that can be appended to contexts.
type DialectRegistry struct {
	c C.MlirDialectRegistry
}

// NewDialectRegistry creates a new, empty dialect registry.
func NewDialectRegistry() *DialectRegistry {
	return &DialectRegistry{c: C.mlirDialectRegistryCreate()}
}

// Destroy releases the registry.  Contexts the registry was appended to are
// unaffected.
func (r *DialectRegistry) Destroy() {
	if r.c.ptr != nil {
		C.mlirDialectRegistryDestroy(r.c)
		r.c.ptr = nil
	}
}
