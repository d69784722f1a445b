package mlir

/*
#include <stdlib.h>

#include "mlir-c/IR.h"
*/
import "C"

// Block represents an exclusively owned, unattached block.  Appending it to
// a region transfers ownership into the IR graph and spends the wrapper.
type Block struct {
	BlockRef
}

// ArgumentSpec pairs the type of a block argument with its source location.
type ArgumentSpec struct {
	Type     Type
	Location Location
}

// NewBlock creates a new, parentless block with the given arguments.
func NewBlock(arguments ...ArgumentSpec) *Block {
	var typesPtr *C.MlirType
	var locationsPtr *C.MlirLocation

	if len(arguments) > 0 {
		types := make([]C.MlirType, len(arguments))
		locations := make([]C.MlirLocation, len(arguments))
		for i, argument := range arguments {
			types[i] = argument.Type.ptr()
			locations[i] = argument.Location.c
		}

		typesPtr = byref(&types[0])
		locationsPtr = byref(&locations[0])
	}

	return &Block{BlockRef{c: C.mlirBlockCreate((C.intptr_t)(len(arguments)), typesPtr, locationsPtr)}}
}

// Destroy releases the block and everything it owns.  It is a no-op on a
// spent wrapper.
func (b *Block) Destroy() {
	if b.c.ptr != nil {
		C.mlirBlockDestroy(b.c)
		b.c.ptr = nil
	}
}

// take relinquishes ownership of the engine handle, leaving the wrapper
// spent.
func (b *Block) take() C.MlirBlock {
	if b.c.ptr == nil {
		panic("mlir: block already attached or destroyed")
	}

	raw := b.c
	b.c.ptr = nil
	return raw
}

// BlockRef is a non-owning view of a block, valid only while the block's
// true owner is alive.
type BlockRef struct {
	c C.MlirBlock
}

// Argument returns the argument value at position.  Accessing a position at
// or past ArgumentCount fails with a *BlockArgumentPositionError.
func (b BlockRef) Argument(position int) (BlockArgument, error) {
	if position < 0 || position >= b.ArgumentCount() {
		return BlockArgument{}, &BlockArgumentPositionError{
			Block:    b.String(),
			Position: position,
		}
	}

	return BlockArgument{valueBase{c: C.mlirBlockGetArgument(b.c, (C.intptr_t)(position))}}, nil
}

// ArgumentCount returns the number of arguments of the block.
func (b BlockRef) ArgumentCount() int {
	return int(C.mlirBlockGetNumArguments(b.c))
}

// AddArgument appends a new argument of the given type to the block and
// returns its value.
func (b BlockRef) AddArgument(t Type, location Location) BlockArgument {
	return BlockArgument{valueBase{c: C.mlirBlockAddArgument(b.c, t.ptr(), location.c)}}
}

// FirstOperation returns the first operation in the block, or exists ==
// false if the block is empty.
func (b BlockRef) FirstOperation() (op OperationRef, exists bool) {
	op.c = C.mlirBlockGetFirstOperation(b.c)
	exists = op.c.ptr != nil
	return
}

// Terminator returns the terminator operation of the block, or exists ==
// false if the block has none.  Whether the final operation terminates
// control flow is the engine's classification, not ours.
func (b BlockRef) Terminator() (op OperationRef, exists bool) {
	op.c = C.mlirBlockGetTerminator(b.c)
	exists = op.c.ptr != nil
	return
}

// ParentRegion returns the region containing the block, if any.
func (b BlockRef) ParentRegion() (region RegionRef, exists bool) {
	region.c = C.mlirBlockGetParentRegion(b.c)
	exists = region.c.ptr != nil
	return
}

// ParentOperation returns the operation whose region contains the block, if
// any.
func (b BlockRef) ParentOperation() (op OperationRef, exists bool) {
	op.c = C.mlirBlockGetParentOperation(b.c)
	exists = op.c.ptr != nil
	return
}

// NextInRegion returns the block following this one in its region, or
// exists == false if it is the last block.
func (b BlockRef) NextInRegion() (next BlockRef, exists bool) {
	next.c = C.mlirBlockGetNextInRegion(b.c)
	exists = next.c.ptr != nil
	return
}

// -----------------------------------------------------------------------------

// AppendOperation transfers ownership of operation into the block, placing
// it at the end of the operation sequence, and returns a reference to the
// now-attached operation.
func (b BlockRef) AppendOperation(operation *Operation) (attached OperationRef) {
	attached.c = operation.take()
	C.mlirBlockAppendOwnedOperation(b.c, attached.c)
	return
}

// InsertOperation transfers ownership of operation into the block at the
// given absolute position in the operation sequence.
func (b BlockRef) InsertOperation(position int, operation *Operation) (attached OperationRef) {
	attached.c = operation.take()
	C.mlirBlockInsertOwnedOperation(b.c, (C.intptr_t)(position), attached.c)
	return
}

// InsertOperationAfter transfers ownership of operation into the block,
// placing it immediately after anchor.  The anchor must already belong to
// this block; the engine does not check this.
func (b BlockRef) InsertOperationAfter(anchor OperationRef, operation *Operation) (attached OperationRef) {
	attached.c = operation.take()
	C.mlirBlockInsertOwnedOperationAfter(b.c, anchor.c, attached.c)
	return
}

// InsertOperationBefore transfers ownership of operation into the block,
// placing it immediately before anchor.  The anchor must already belong to
// this block; the engine does not check this.
func (b BlockRef) InsertOperationBefore(anchor OperationRef, operation *Operation) (attached OperationRef) {
	attached.c = operation.take()
	C.mlirBlockInsertOwnedOperationBefore(b.c, anchor.c, attached.c)
	return
}

// Detach removes the block from its parent region and returns it as a newly
// owned, unattached block.  It returns ok == false if the block has no
// parent.
//
// Detaching invalidates every previously obtained reference to this block
// and its contents, including the receiver; the caller must guarantee none
// of them is used afterwards.  The engine cannot check this.
func (b BlockRef) Detach() (block *Block, ok bool) {
	if _, attached := b.ParentRegion(); !attached {
		return nil, false
	}

	C.mlirBlockDetach(b.c)
	return &Block{BlockRef{c: b.c}}, true
}

// Equal reports whether two references point at the same block.
func (b BlockRef) Equal(other BlockRef) bool {
	return bool(C.mlirBlockEqual(b.c, other.c))
}

// -----------------------------------------------------------------------------

// opIter is an iterator over the operations of a block.
type opIter struct {
	curr, next C.MlirOperation
}

func (it *opIter) Item() (op OperationRef) {
	op.c = it.curr
	return
}

func (it *opIter) Next() bool {
	it.curr = it.next
	if it.curr.ptr == nil {
		return false
	}

	it.next = C.mlirOperationGetNextInBlock(it.curr)
	return true
}

// Operations returns an iterator over the operations of the block.
func (b BlockRef) Operations() Iterator[OperationRef] {
	return &opIter{next: C.mlirBlockGetFirstOperation(b.c)}
}
