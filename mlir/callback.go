package mlir

/*
#include "mlir-c/Support.h"
*/
import "C"
import (
	"runtime/cgo"
	"unsafe"
)

// gomlirWriteToSink receives print output from the engine.  The userData
// pointer carries a cgo handle to the destination printSink.
//
//export gomlirWriteToSink
func gomlirWriteToSink(str C.MlirStringRef, userData unsafe.Pointer) {
	sink := cgo.Handle(uintptr(userData)).Value().(*printSink)
	sink.write(C.GoBytes(unsafe.Pointer(str.data), (C.int)(str.length)))
}
