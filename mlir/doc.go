// Package mlir provides Go bindings for the MLIR C API.
//
// The package wraps IR objects owned by the MLIR library behind two kinds of
// Go types: owning wrappers (Operation, Block, Region, Module, Context, ...)
// which release the underlying resource via Destroy, and borrowed references
// (OperationRef, BlockRef, RegionRef, ...) which are cheap, copyable views
// bound to the lifetime of their true owner.  Attaching an owned object to a
// parent container (an operation into a block, a block into a region, a
// region into an operation builder) transfers ownership into the IR graph;
// the Go wrapper is spent afterwards and all further access goes through
// borrowed references.
//
// MLIR hands out raw pointers with no lifetime information, so the bindings
// cannot make every misuse impossible.  Two hazards remain and are called
// out on the operations that create them:
//
//   - Destroying an owner (a Context, a Module, or an unattached root
//     object) invalidates every reference obtained from it.
//   - Structural mutation can invalidate references obtained earlier.  In
//     particular, BlockRef.Detach returns ownership of a block to the caller
//     and leaves any previously obtained references to that block or its
//     contents dangling.
//
// Everything else either succeeds or reports a recoverable error through a
// typed error value.
//
// The bindings target LLVM/MLIR 15.  The default cgo flags below assume an
// installation under /usr/lib/llvm-15 (Debian/Ubuntu packages) or the
// Homebrew llvm@15 prefix; override them with CGO_CFLAGS and CGO_LDFLAGS for
// other layouts.
package mlir

/*
#cgo CFLAGS: -I/usr/lib/llvm-15/include -I/opt/homebrew/opt/llvm@15/include
#cgo LDFLAGS: -L/usr/lib/llvm-15/lib -L/opt/homebrew/opt/llvm@15/lib -lMLIR-C
*/
import "C"
