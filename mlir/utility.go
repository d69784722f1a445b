package mlir

/*
#include "mlir-c/RegisterEverything.h"
*/
import "C"
import "sync"

var registerPassesOnce sync.Once

// RegisterAllDialects registers every dialect compiled into the engine with
// the registry.  Registering is idempotent: the registry deduplicates by
// namespace.
func RegisterAllDialects(registry *DialectRegistry) {
	C.mlirRegisterAllDialects(registry.c)
}

// RegisterAllLLVMTranslations registers the LLVM IR translation interfaces
// with the context.
func RegisterAllLLVMTranslations(ctx ContextRef) {
	C.mlirRegisterAllLLVMTranslations(ctx.c)
}

// RegisterAllPasses registers every pass compiled into the engine with the
// global pass registry so textual pipelines can name them.  The engine's
// registry aborts on a duplicate registration, so the call is process-global
// and guarded: repeated calls are no-ops.
func RegisterAllPasses() {
	registerPassesOnce.Do(func() {
		C.mlirRegisterAllPasses()
	})
}

// RegisterAllUpstreamDialects is a convenience that registers every dialect
// into a fresh registry, appends it to the context, and releases the
// registry.
func RegisterAllUpstreamDialects(ctx ContextRef) {
	registry := NewDialectRegistry()
	defer registry.Destroy()

	RegisterAllDialects(registry)
	ctx.AppendDialectRegistry(registry)
}
