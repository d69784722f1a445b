package mlir

/*
#include <stdlib.h>

#include "mlir-c/IR.h"
*/
import "C"

// Operation represents an exclusively owned, unattached operation.  It is
// produced by OperationBuilder.Build or by cloning, and stays owned by the
// caller until it is attached to a block, at which point ownership transfers
// into the IR graph and the wrapper is spent.
type Operation struct {
	OperationRef
}

// Destroy releases the operation and everything it owns.  It is a no-op on
// a spent wrapper.
func (o *Operation) Destroy() {
	if o.c.ptr != nil {
		C.mlirOperationDestroy(o.c)
		o.c.ptr = nil
	}
}

// take relinquishes ownership of the engine handle, leaving the wrapper
// spent.  Attach methods call this; attaching the same operation twice is a
// programming error.
func (o *Operation) take() C.MlirOperation {
	if o.c.ptr == nil {
		panic("mlir: operation already attached or destroyed")
	}

	raw := o.c
	o.c.ptr = nil
	return raw
}

// OperationRef is a non-owning view of an operation.  It is valid only while
// the operation's true owner — the root module it is attached to, or the
// owning Operation wrapper while unattached — is alive.
type OperationRef struct {
	c C.MlirOperation
}

// Context returns the context the operation lives in.
func (o OperationRef) Context() ContextRef {
	return ContextRef{c: C.mlirOperationGetContext(o.c)}
}

// Name returns the fully qualified name of the operation, e.g. "func.func".
func (o OperationRef) Name() Identifier {
	return Identifier{c: C.mlirOperationGetName(o.c)}
}

// Block returns the block containing the operation, if any.
func (o OperationRef) Block() (block BlockRef, exists bool) {
	block.c = C.mlirOperationGetBlock(o.c)
	exists = block.c.ptr != nil
	return
}

// ParentOperation returns the closest operation containing this one, if any.
func (o OperationRef) ParentOperation() (parent OperationRef, exists bool) {
	parent.c = C.mlirOperationGetParentOperation(o.c)
	exists = parent.c.ptr != nil
	return
}

// Result returns the result value at position.  Accessing a position at or
// past ResultCount fails with an *OperationResultPositionError.
func (o OperationRef) Result(position int) (OperationResult, error) {
	if position < 0 || position >= o.ResultCount() {
		return OperationResult{}, &OperationResultPositionError{
			Operation: o.String(),
			Position:  position,
		}
	}

	return OperationResult{valueBase{c: C.mlirOperationGetResult(o.c, (C.intptr_t)(position))}}, nil
}

// ResultCount returns the number of results of the operation.
func (o OperationRef) ResultCount() int {
	return int(C.mlirOperationGetNumResults(o.c))
}

// Operand returns the operand value at position.  Accessing a position at or
// past OperandCount fails with an *OperationOperandPositionError.
func (o OperationRef) Operand(position int) (Value, error) {
	if position < 0 || position >= o.OperandCount() {
		return nil, &OperationOperandPositionError{
			Operation: o.String(),
			Position:  position,
		}
	}

	return valueBase{c: C.mlirOperationGetOperand(o.c, (C.intptr_t)(position))}, nil
}

// OperandCount returns the number of operands of the operation.
func (o OperationRef) OperandCount() int {
	return int(C.mlirOperationGetNumOperands(o.c))
}

// Region returns the region at index.  Unlike result access, indexing past
// the end is a soft absence, not an error: regions are optional
// sub-structure rather than an indexable contract.
func (o OperationRef) Region(index int) (region RegionRef, exists bool) {
	if 0 <= index && index < o.RegionCount() {
		region.c = C.mlirOperationGetRegion(o.c, (C.intptr_t)(index))
		exists = true
	}

	return
}

// RegionCount returns the number of regions of the operation.
func (o OperationRef) RegionCount() int {
	return int(C.mlirOperationGetNumRegions(o.c))
}

// Successor returns the successor block at index, if it exists.
func (o OperationRef) Successor(index int) (block BlockRef, exists bool) {
	if 0 <= index && index < o.SuccessorCount() {
		block.c = C.mlirOperationGetSuccessor(o.c, (C.intptr_t)(index))
		exists = true
	}

	return
}

// SuccessorCount returns the number of successor blocks of the operation.
func (o OperationRef) SuccessorCount() int {
	return int(C.mlirOperationGetNumSuccessors(o.c))
}

// NextInBlock returns the operation following this one in its block, or
// exists == false if it is the last operation.
func (o OperationRef) NextInBlock() (next OperationRef, exists bool) {
	next.c = C.mlirOperationGetNextInBlock(o.c)
	exists = next.c.ptr != nil
	return
}

// -----------------------------------------------------------------------------

// Attribute returns the attribute attached under name, if present.
func (o OperationRef) Attribute(name string) (attr Attribute, exists bool) {
	nameRef, free := stringRefOf(name)
	defer free()

	attr.c = C.mlirOperationGetAttributeByName(o.c, nameRef)
	exists = attr.c.ptr != nil
	return
}

// SetAttribute attaches value under name, replacing any existing attribute
// with that name.
func (o OperationRef) SetAttribute(name string, value Attribute) {
	nameRef, free := stringRefOf(name)
	defer free()

	C.mlirOperationSetAttributeByName(o.c, nameRef, value.c)
}

// RemoveAttribute removes the attribute attached under name, reporting
// whether one was present.
func (o OperationRef) RemoveAttribute(name string) bool {
	nameRef, free := stringRefOf(name)
	defer free()

	return bool(C.mlirOperationRemoveAttributeByName(o.c, nameRef))
}

// AttributeCount returns the number of attributes attached to the operation.
func (o OperationRef) AttributeCount() int {
	return int(C.mlirOperationGetNumAttributes(o.c))
}

// AttributeAt returns the named attribute at index, if it exists.
func (o OperationRef) AttributeAt(index int) (attr NamedAttribute, exists bool) {
	if 0 <= index && index < o.AttributeCount() {
		raw := C.mlirOperationGetAttribute(o.c, (C.intptr_t)(index))
		attr.Name = Identifier{c: raw.name}
		attr.Value = Attribute{c: raw.attribute}
		exists = true
	}

	return
}

// -----------------------------------------------------------------------------

// Verify runs the engine's structural and dialect verification on the
// operation without mutating it.
func (o OperationRef) Verify() bool {
	return bool(C.mlirOperationVerify(o.c))
}

// Dump prints the canonical textual form of the operation to the engine's
// error stream.
func (o OperationRef) Dump() {
	C.mlirOperationDump(o.c)
}

// Clone deep-copies the operation, producing a new exclusively owned,
// unattached operation independent of the source.
func (o OperationRef) Clone() *Operation {
	return &Operation{OperationRef{c: C.mlirOperationClone(o.c)}}
}

// Equal reports whether two references point at the same operation.
func (o OperationRef) Equal(other OperationRef) bool {
	return bool(C.mlirOperationEqual(o.c, other.c))
}
