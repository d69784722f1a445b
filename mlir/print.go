package mlir

// This file routes the engine's print callbacks into Go writers.  The engine
// streams textual IR through a C function pointer, so each printable entity
// gets a small static C shim that forwards the chunks to the exported
// gomlirWriteToSink callback along with the sink handle.

/*
#include <stdlib.h>

#include "mlir-c/IR.h"
#include "mlir-c/Pass.h"

extern void gomlirWriteToSink(MlirStringRef str, void *userData);

static void gomlirPrintOperation(MlirOperation op, void *userData) {
	mlirOperationPrint(op, gomlirWriteToSink, userData);
}

static void gomlirPrintBlock(MlirBlock block, void *userData) {
	mlirBlockPrint(block, gomlirWriteToSink, userData);
}

static void gomlirPrintValue(MlirValue value, void *userData) {
	mlirValuePrint(value, gomlirWriteToSink, userData);
}

static void gomlirPrintType(MlirType type, void *userData) {
	mlirTypePrint(type, gomlirWriteToSink, userData);
}

static void gomlirPrintAttribute(MlirAttribute attr, void *userData) {
	mlirAttributePrint(attr, gomlirWriteToSink, userData);
}

static void gomlirPrintLocation(MlirLocation loc, void *userData) {
	mlirLocationPrint(loc, gomlirWriteToSink, userData);
}

static void gomlirPrintPassPipeline(MlirOpPassManager pm, void *userData) {
	mlirPrintPassPipeline(pm, gomlirWriteToSink, userData);
}
*/
import "C"
import (
	"io"
	"runtime/cgo"
	"strings"
	"unsafe"
)

// printSink adapts an io.Writer to the engine's chunked print callback.  The
// engine has no way to propagate a write failure mid-print, so the sink
// captures the first error and discards the rest of the stream.
type printSink struct {
	w   io.Writer
	err error
}

func (s *printSink) write(data []byte) {
	if s.err == nil {
		_, s.err = s.w.Write(data)
	}
}

// printToSink runs one engine print call against w, passing the sink handle
// through the callback's userData pointer.
func printToSink(w io.Writer, print func(userData unsafe.Pointer)) error {
	sink := &printSink{w: w}

	handle := cgo.NewHandle(sink)
	defer handle.Delete()

	print(unsafe.Pointer(uintptr(handle)))
	return sink.err
}

// sprint renders one engine print call to a string.  Writes to a
// strings.Builder cannot fail.
func sprint(print func(userData unsafe.Pointer)) string {
	var sb strings.Builder
	printToSink(&sb, print)
	return sb.String()
}

// -----------------------------------------------------------------------------

// Print writes the canonical textual form of the operation to w.
func (o OperationRef) Print(w io.Writer) error {
	return printToSink(w, func(userData unsafe.Pointer) {
		C.gomlirPrintOperation(o.c, userData)
	})
}

// String returns the canonical textual form of the operation.
func (o OperationRef) String() string {
	return sprint(func(userData unsafe.Pointer) {
		C.gomlirPrintOperation(o.c, userData)
	})
}

// Print writes the textual form of the block to w.
func (b BlockRef) Print(w io.Writer) error {
	return printToSink(w, func(userData unsafe.Pointer) {
		C.gomlirPrintBlock(b.c, userData)
	})
}

// String returns the textual form of the block.
func (b BlockRef) String() string {
	return sprint(func(userData unsafe.Pointer) {
		C.gomlirPrintBlock(b.c, userData)
	})
}

func (v valueBase) Print(w io.Writer) error {
	return printToSink(w, func(userData unsafe.Pointer) {
		C.gomlirPrintValue(v.c, userData)
	})
}

func (v valueBase) String() string {
	return sprint(func(userData unsafe.Pointer) {
		C.gomlirPrintValue(v.c, userData)
	})
}

func (t typeBase) Print(w io.Writer) error {
	return printToSink(w, func(userData unsafe.Pointer) {
		C.gomlirPrintType(t.c, userData)
	})
}

func (t typeBase) String() string {
	return sprint(func(userData unsafe.Pointer) {
		C.gomlirPrintType(t.c, userData)
	})
}

// Print writes the textual form of the attribute to w.
func (a Attribute) Print(w io.Writer) error {
	return printToSink(w, func(userData unsafe.Pointer) {
		C.gomlirPrintAttribute(a.c, userData)
	})
}

// String returns the textual form of the attribute.
func (a Attribute) String() string {
	return sprint(func(userData unsafe.Pointer) {
		C.gomlirPrintAttribute(a.c, userData)
	})
}

// Print writes the textual form of the location to w.
func (l Location) Print(w io.Writer) error {
	return printToSink(w, func(userData unsafe.Pointer) {
		C.gomlirPrintLocation(l.c, userData)
	})
}

// String returns the textual form of the location.
func (l Location) String() string {
	return sprint(func(userData unsafe.Pointer) {
		C.gomlirPrintLocation(l.c, userData)
	})
}

// Print writes the textual form of the pass pipeline rooted at the manager
// to w.
func (pm OpPassManager) Print(w io.Writer) error {
	return printToSink(w, func(userData unsafe.Pointer) {
		C.gomlirPrintPassPipeline(pm.c, userData)
	})
}

// String returns the textual form of the pass pipeline rooted at the
// manager.
func (pm OpPassManager) String() string {
	return sprint(func(userData unsafe.Pointer) {
		C.gomlirPrintPassPipeline(pm.c, userData)
	})
}

// Print writes the canonical textual form of the module to w.
func (m *Module) Print(w io.Writer) error {
	return m.AsOperation().Print(w)
}

// String returns the canonical textual form of the module.
func (m *Module) String() string {
	return m.AsOperation().String()
}
