package mlir

/*
#include <stdlib.h>

#include "mlir-c/IR.h"
*/
import "C"
import "unsafe"

// Iterator represents an iterator of MLIR objects.  This is needed because
// sibling lists in the IR graph (operations in a block, blocks in a region)
// are only reachable through first/next queries, not by index.  The pattern
// for using iterators is as follows:
//
//	for it := block.Operations(); it.Next(); {
//		operation := it.Item()
//		..
//	}
type Iterator[T any] interface {
	// Item returns the current item the iterator is positioned over if it
	// exists.  If the item does not exist, the return value is invalid.
	Item() T

	// Next moves the iterator forward one element if an element exists. It
	// returns whether or not it was able to move the iterator forward. Next
	// should be called to get the first element.
	Next() bool
}

// -----------------------------------------------------------------------------

// byref passes a Go value by reference to C.
func byref[T any](v *T) *T {
	return (*T)(unsafe.Pointer(v))
}

// stringRefOf copies s into C memory and wraps it in an MlirStringRef.  The
// returned free function must be called once the engine call has returned.
func stringRefOf(s string) (C.MlirStringRef, func()) {
	cstr := C.CString(s)
	return C.mlirStringRefCreate(cstr, (C.size_t)(len(s))), func() { C.free(unsafe.Pointer(cstr)) }
}

// goString copies an engine-owned string reference into a Go string.
func goString(str C.MlirStringRef) string {
	return C.GoStringN(str.data, (C.int)(str.length))
}

// isSuccess converts an MlirLogicalResult to a boolean.
func isSuccess(result C.MlirLogicalResult) bool {
	return result.value != 0
}
