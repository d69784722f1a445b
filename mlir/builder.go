package mlir

/*
#include <stdlib.h>

#include "mlir-c/IR.h"
*/
import "C"

// OperationBuilder accumulates the components of an operation and creates it
// in one shot.  The zero value is not usable; start from NewOperationBuilder.
// All Add methods return the builder so calls can be chained:
//
//	op, err := mlir.NewOperationBuilder("arith.addi", loc).
//		AddOperands(lhs, rhs).
//		AddResults(ctx.IntegerType(64)).
//		Build()
type OperationBuilder struct {
	name     string
	location Location

	operands   []Value
	results    []Type
	attributes []NamedAttribute
	regions    []*Region
	successors []BlockRef

	inferTypes bool
}

// NewOperationBuilder starts building an operation with the given fully
// qualified name, e.g. "func.func", at the given location.
func NewOperationBuilder(name string, location Location) *OperationBuilder {
	return &OperationBuilder{name: name, location: location}
}

// AddOperands appends operand values to the operation.
func (b *OperationBuilder) AddOperands(operands ...Value) *OperationBuilder {
	b.operands = append(b.operands, operands...)
	return b
}

// AddResults appends result types to the operation.
func (b *OperationBuilder) AddResults(results ...Type) *OperationBuilder {
	b.results = append(b.results, results...)
	return b
}

// AddAttributes appends named attributes to the operation.
func (b *OperationBuilder) AddAttributes(attributes ...NamedAttribute) *OperationBuilder {
	b.attributes = append(b.attributes, attributes...)
	return b
}

// AddRegions appends regions to the operation.  The regions are consumed by
// Build, which takes ownership of them.
func (b *OperationBuilder) AddRegions(regions ...*Region) *OperationBuilder {
	b.regions = append(b.regions, regions...)
	return b
}

// AddSuccessors appends successor blocks to the operation.
func (b *OperationBuilder) AddSuccessors(successors ...BlockRef) *OperationBuilder {
	b.successors = append(b.successors, successors...)
	return b
}

// EnableResultTypeInference asks the engine to infer the result types from
// the operands and attributes instead of taking them from AddResults.  Build
// fails if the operation does not support inference.
func (b *OperationBuilder) EnableResultTypeInference() *OperationBuilder {
	b.inferTypes = true
	return b
}

// Build creates the operation, consuming any added regions, and returns it
// as a new exclusively owned, unattached operation.  If the engine refuses
// to create the operation, Build fails with an *OperationBuildError and the
// added regions are released.
func (b *OperationBuilder) Build() (*Operation, error) {
	nameRef, free := stringRefOf(b.name)
	defer free()

	state := C.mlirOperationStateGet(nameRef, b.location.c)

	if len(b.operands) > 0 {
		operands := make([]C.MlirValue, len(b.operands))
		for i, operand := range b.operands {
			operands[i] = operand.ptr()
		}

		C.mlirOperationStateAddOperands(byref(&state), (C.intptr_t)(len(operands)), byref(&operands[0]))
	}

	if len(b.results) > 0 {
		results := make([]C.MlirType, len(b.results))
		for i, result := range b.results {
			results[i] = result.ptr()
		}

		C.mlirOperationStateAddResults(byref(&state), (C.intptr_t)(len(results)), byref(&results[0]))
	}

	if len(b.attributes) > 0 {
		attributes := make([]C.MlirNamedAttribute, len(b.attributes))
		for i, attribute := range b.attributes {
			attributes[i] = C.mlirNamedAttributeGet(attribute.Name.c, attribute.Value.c)
		}

		C.mlirOperationStateAddAttributes(byref(&state), (C.intptr_t)(len(attributes)), byref(&attributes[0]))
	}

	if len(b.regions) > 0 {
		regions := make([]C.MlirRegion, len(b.regions))
		for i, region := range b.regions {
			regions[i] = region.take()
		}

		C.mlirOperationStateAddOwnedRegions(byref(&state), (C.intptr_t)(len(regions)), byref(&regions[0]))
	}

	if len(b.successors) > 0 {
		successors := make([]C.MlirBlock, len(b.successors))
		for i, successor := range b.successors {
			successors[i] = successor.c
		}

		C.mlirOperationStateAddSuccessors(byref(&state), (C.intptr_t)(len(successors)), byref(&successors[0]))
	}

	if b.inferTypes {
		C.mlirOperationStateEnableResultTypeInference(byref(&state))
	}

	raw := C.mlirOperationCreate(byref(&state))
	if raw.ptr == nil {
		return nil, &OperationBuildError{Name: b.name}
	}

	return &Operation{OperationRef{c: raw}}, nil
}
