package mlir

/*
#include <stdlib.h>

#include "mlir-c/ExecutionEngine.h"
*/
import "C"
import "unsafe"

// ExecutionEngine owns a JIT compiler instance built from a module.  The
// module must already be lowered to the llvm dialect and the LLVM
// translation interfaces must be registered in its context.
type ExecutionEngine struct {
	c C.MlirExecutionEngine
}

// NewExecutionEngine JIT-compiles the module at the given optimization level
// (0 to 3), optionally loading shared libraries to resolve external symbols
// against.  If objectDump is set, the compiled object can later be written
// out with DumpToObjectFile.  A compilation failure is reported as an
// *EngineError.
func NewExecutionEngine(module *Module, optLevel int, sharedLibPaths []string, objectDump bool) (*ExecutionEngine, error) {
	var pathsPtr *C.MlirStringRef

	if len(sharedLibPaths) > 0 {
		paths := make([]C.MlirStringRef, len(sharedLibPaths))
		for i, path := range sharedLibPaths {
			pathRef, free := stringRefOf(path)
			defer free()

			paths[i] = pathRef
		}

		pathsPtr = byref(&paths[0])
	}

	raw := C.mlirExecutionEngineCreate(
		module.c,
		(C.int)(optLevel),
		(C.int)(len(sharedLibPaths)),
		pathsPtr,
		(C.bool)(objectDump),
	)
	if raw.ptr == nil {
		return nil, &EngineError{Message: "failed to JIT-compile module"}
	}

	return &ExecutionEngine{c: raw}, nil
}

// Destroy releases the engine and the code it compiled.  Function pointers
// obtained through Lookup are invalid afterwards.  It is a no-op on a spent
// wrapper.
func (e *ExecutionEngine) Destroy() {
	if e.c.ptr != nil {
		C.mlirExecutionEngineDestroy(e.c)
		e.c.ptr = nil
	}
}

// Lookup returns the address of the native function compiled from the named
// exported function, or exists == false if the module defines no such
// symbol.
func (e *ExecutionEngine) Lookup(name string) (fn unsafe.Pointer, exists bool) {
	nameRef, free := stringRefOf(name)
	defer free()

	fn = C.mlirExecutionEngineLookup(e.c, nameRef)
	exists = fn != nil
	return
}

// InvokePacked calls the named exported function with the packed-argument
// convention: arguments holds one pointer per parameter, followed by one
// pointer per result slot.  A missing symbol or a trapped execution is
// reported as an *EngineError.
func (e *ExecutionEngine) InvokePacked(name string, arguments []unsafe.Pointer) error {
	nameRef, free := stringRefOf(name)
	defer free()

	var argumentsPtr *unsafe.Pointer
	if len(arguments) > 0 {
		argumentsPtr = byref(&arguments[0])
	}

	if !isSuccess(C.mlirExecutionEngineInvokePacked(e.c, nameRef, argumentsPtr)) {
		return &EngineError{Message: "failed to invoke function " + name}
	}

	return nil
}

// RegisterSymbol makes a host symbol visible to JIT-compiled code under the
// given name.
func (e *ExecutionEngine) RegisterSymbol(name string, sym unsafe.Pointer) {
	nameRef, free := stringRefOf(name)
	defer free()

	C.mlirExecutionEngineRegisterSymbol(e.c, nameRef, sym)
}

// DumpToObjectFile writes the compiled object code to the given path.  The
// engine must have been created with objectDump enabled.
func (e *ExecutionEngine) DumpToObjectFile(path string) {
	pathRef, free := stringRefOf(path)
	defer free()

	C.mlirExecutionEngineDumpToObjectFile(e.c, pathRef)
}
