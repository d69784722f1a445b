package mlir

/*
#include <stdlib.h>

#include "mlir-c/IR.h"
*/
import "C"

// Location represents a source location attached to IR objects.  Locations
// are interned in their context and compared by engine equality.
type Location struct {
	c C.MlirLocation
}

// UnknownLocation creates a location with no source information.
func UnknownLocation(ctx ContextRef) (l Location) {
	l.c = C.mlirLocationUnknownGet(ctx.c)
	return
}

// FileLineColLocation creates a location pointing at a file, line, and
// column.
func FileLineColLocation(ctx ContextRef, filename string, line, column uint) (l Location) {
	filenameRef, free := stringRefOf(filename)
	defer free()

	l.c = C.mlirLocationFileLineColGet(ctx.c, filenameRef, (C.uint)(line), (C.uint)(column))
	return
}

// Context returns the context the location is interned in.
func (l Location) Context() ContextRef {
	return ContextRef{c: C.mlirLocationGetContext(l.c)}
}

// Equal reports whether two locations are the same interned location.
func (l Location) Equal(other Location) bool {
	return bool(C.mlirLocationEqual(l.c, other.c))
}
