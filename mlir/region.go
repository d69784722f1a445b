package mlir

/*
#include <stdlib.h>

#include "mlir-c/IR.h"
*/
import "C"

// Region represents an exclusively owned, unattached region.  Regions are
// built free-standing, populated with blocks, and then handed to an
// OperationBuilder which consumes them.
type Region struct {
	RegionRef
}

// NewRegion creates a new, empty region.
func NewRegion() *Region {
	return &Region{RegionRef{c: C.mlirRegionCreate()}}
}

// Destroy releases the region and everything it owns.  It is a no-op on a
// spent wrapper.
func (r *Region) Destroy() {
	if r.c.ptr != nil {
		C.mlirRegionDestroy(r.c)
		r.c.ptr = nil
	}
}

// take relinquishes ownership of the engine handle, leaving the wrapper
// spent.
func (r *Region) take() C.MlirRegion {
	if r.c.ptr == nil {
		panic("mlir: region already attached or destroyed")
	}

	raw := r.c
	r.c.ptr = nil
	return raw
}

// RegionRef is a non-owning view of a region, valid only while the region's
// true owner is alive.
type RegionRef struct {
	c C.MlirRegion
}

// FirstBlock returns the first block of the region, or exists == false if
// the region is empty.
func (r RegionRef) FirstBlock() (block BlockRef, exists bool) {
	block.c = C.mlirRegionGetFirstBlock(r.c)
	exists = block.c.ptr != nil
	return
}

// AppendBlock transfers ownership of block into the region, placing it at
// the end of the block sequence, and returns a reference to the
// now-attached block.
func (r RegionRef) AppendBlock(block *Block) (attached BlockRef) {
	attached.c = block.take()
	C.mlirRegionAppendOwnedBlock(r.c, attached.c)
	return
}

// InsertBlock transfers ownership of block into the region at the given
// absolute position in the block sequence.
func (r RegionRef) InsertBlock(position int, block *Block) (attached BlockRef) {
	attached.c = block.take()
	C.mlirRegionInsertOwnedBlock(r.c, (C.intptr_t)(position), attached.c)
	return
}

// InsertBlockAfter transfers ownership of block into the region, placing it
// immediately after anchor.  The anchor must already belong to this region;
// the engine does not check this.
func (r RegionRef) InsertBlockAfter(anchor BlockRef, block *Block) (attached BlockRef) {
	attached.c = block.take()
	C.mlirRegionInsertOwnedBlockAfter(r.c, anchor.c, attached.c)
	return
}

// InsertBlockBefore transfers ownership of block into the region, placing
// it immediately before anchor.  The anchor must already belong to this
// region; the engine does not check this.
func (r RegionRef) InsertBlockBefore(anchor BlockRef, block *Block) (attached BlockRef) {
	attached.c = block.take()
	C.mlirRegionInsertOwnedBlockBefore(r.c, anchor.c, attached.c)
	return
}

// Equal reports whether two references point at the same region.
func (r RegionRef) Equal(other RegionRef) bool {
	return bool(C.mlirRegionEqual(r.c, other.c))
}

// -----------------------------------------------------------------------------

// blockIter is an iterator over the blocks of a region.
type blockIter struct {
	curr, next C.MlirBlock
}

func (it *blockIter) Item() (block BlockRef) {
	block.c = it.curr
	return
}

func (it *blockIter) Next() bool {
	it.curr = it.next
	if it.curr.ptr == nil {
		return false
	}

	it.next = C.mlirBlockGetNextInRegion(it.curr)
	return true
}

// Blocks returns an iterator over the blocks of the region.
func (r RegionRef) Blocks() Iterator[BlockRef] {
	return &blockIter{next: C.mlirRegionGetFirstBlock(r.c)}
}
