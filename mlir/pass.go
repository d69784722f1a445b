package mlir

/*
#include <stdlib.h>

#include "mlir-c/Pass.h"
#include "mlir-c/Transforms.h"
*/
import "C"

// Pass represents a single pass to be added to a pass manager.  Creating a
// pass yields ownership; adding it to a manager transfers that ownership.
type Pass struct {
	c C.MlirPass
}

// CreateCanonicalizerPass creates the canonicalizer pass, which applies each
// operation's canonicalization patterns greedily.
func CreateCanonicalizerPass() Pass {
	return Pass{c: C.mlirCreateTransformsCanonicalizer()}
}

// CreateCSEPass creates the common subexpression elimination pass.
func CreateCSEPass() Pass {
	return Pass{c: C.mlirCreateTransformsCSE()}
}

// CreateInlinerPass creates the function inlining pass.
func CreateInlinerPass() Pass {
	return Pass{c: C.mlirCreateTransformsInliner()}
}

// CreateSCCPPass creates the sparse conditional constant propagation pass.
func CreateSCCPPass() Pass {
	return Pass{c: C.mlirCreateTransformsSCCP()}
}

// CreateSymbolDCEPass creates the dead symbol elimination pass.
func CreateSymbolDCEPass() Pass {
	return Pass{c: C.mlirCreateTransformsSymbolDCE()}
}

// CreateStripDebugInfoPass creates the pass that removes debug locations.
func CreateStripDebugInfoPass() Pass {
	return Pass{c: C.mlirCreateTransformsStripDebugInfo()}
}

// CreatePrintOpStatsPass creates the pass that prints per-operation counts.
func CreatePrintOpStatsPass() Pass {
	return Pass{c: C.mlirCreateTransformsPrintOpStats()}
}

// RegisterTransformsCSE registers the cse pass with the global pass registry
// so textual pipelines can name it without RegisterAllPasses.
func RegisterTransformsCSE() {
	C.mlirRegisterTransformsCSE()
}

// RegisterTransformsCanonicalizer registers the canonicalize pass with the
// global pass registry.
func RegisterTransformsCanonicalizer() {
	C.mlirRegisterTransformsCanonicalizer()
}

// RegisterTransformsPrintOpStats registers the print-op-stats pass with the
// global pass registry.
func RegisterTransformsPrintOpStats() {
	C.mlirRegisterTransformsPrintOpStats()
}

// -----------------------------------------------------------------------------

// PassManager owns a top-level pass pipeline anchored at builtin.module.
type PassManager struct {
	c C.MlirPassManager
}

// NewPassManager creates a new, empty pass manager in the given context.
func NewPassManager(ctx ContextRef) *PassManager {
	return &PassManager{c: C.mlirPassManagerCreate(ctx.c)}
}

// Destroy releases the pass manager and every pass it owns.  It is a no-op
// on a spent wrapper.
func (pm *PassManager) Destroy() {
	if pm.c.ptr != nil {
		C.mlirPassManagerDestroy(pm.c)
		pm.c.ptr = nil
	}
}

// EnableVerifier controls whether the verifier runs after each pass.
func (pm *PassManager) EnableVerifier(enable bool) {
	C.mlirPassManagerEnableVerifier(pm.c, (C.bool)(enable))
}

// EnableIRPrinting dumps the IR before and after each pass to the engine's
// error stream.
func (pm *PassManager) EnableIRPrinting() {
	C.mlirPassManagerEnableIRPrinting(pm.c)
}

// AddPass transfers ownership of pass into the manager, appending it to the
// top-level pipeline.
func (pm *PassManager) AddPass(pass Pass) {
	C.mlirPassManagerAddOwnedPass(pm.c, pass.c)
}

// AsOpPassManager views the manager as the pipeline anchored at its root
// operation.
func (pm *PassManager) AsOpPassManager() OpPassManager {
	return OpPassManager{c: C.mlirPassManagerGetAsOpPassManager(pm.c)}
}

// NestedUnder returns the pipeline nested under operations with the given
// name, e.g. "func.func", creating it if needed.
func (pm *PassManager) NestedUnder(name string) OpPassManager {
	nameRef, free := stringRefOf(name)
	defer free()

	return OpPassManager{c: C.mlirPassManagerGetNestedUnder(pm.c, nameRef)}
}

// Run runs the pipeline over the module, mutating it in place.  A failure of
// any pass or of interleaved verification is reported as a *PassError
// carrying the textual form of the pipeline.
func (pm *PassManager) Run(module *Module) error {
	if !isSuccess(C.mlirPassManagerRun(pm.c, module.c)) {
		return &PassError{Pipeline: pm.AsOpPassManager().String()}
	}

	return nil
}

// -----------------------------------------------------------------------------

// OpPassManager is a non-owning view of a pass pipeline anchored at a
// particular operation name, valid only while its root PassManager is alive.
type OpPassManager struct {
	c C.MlirOpPassManager
}

// AddPass transfers ownership of pass into the pipeline.
func (pm OpPassManager) AddPass(pass Pass) {
	C.mlirOpPassManagerAddOwnedPass(pm.c, pass.c)
}

// NestedUnder returns the pipeline nested under operations with the given
// name, creating it if needed.
func (pm OpPassManager) NestedUnder(name string) OpPassManager {
	nameRef, free := stringRefOf(name)
	defer free()

	return OpPassManager{c: C.mlirOpPassManagerGetNestedUnder(pm.c, nameRef)}
}

// ParsePipeline parses a textual pass pipeline, e.g. "cse,canonicalize",
// appending it to the pipeline.  A malformed pipeline is reported as a
// *PipelineError.
func (pm OpPassManager) ParsePipeline(pipeline string) error {
	pipelineRef, free := stringRefOf(pipeline)
	defer free()

	if !isSuccess(C.mlirParsePassPipeline(pm.c, pipelineRef)) {
		return &PipelineError{Pipeline: pipeline}
	}

	return nil
}
