package mlir

import "fmt"

// BlockArgumentPositionError reports an out-of-range block argument access.
// It carries the textual form of the block so the failure can be diagnosed
// without re-running with extra instrumentation.
type BlockArgumentPositionError struct {
	// The textual form of the block that was accessed.
	Block string

	// The requested argument position.
	Position int
}

func (e *BlockArgumentPositionError) Error() string {
	return fmt.Sprintf("block argument position %d out of range in block:\n%s", e.Position, e.Block)
}

// OperationResultPositionError reports an out-of-range operation result
// access.
type OperationResultPositionError struct {
	// The textual form of the operation that was accessed.
	Operation string

	// The requested result position.
	Position int
}

func (e *OperationResultPositionError) Error() string {
	return fmt.Sprintf("operation result position %d out of range in operation:\n%s", e.Position, e.Operation)
}

// OperationOperandPositionError reports an out-of-range operation operand
// access.
type OperationOperandPositionError struct {
	// The textual form of the operation that was accessed.
	Operation string

	// The requested operand position.
	Position int
}

func (e *OperationOperandPositionError) Error() string {
	return fmt.Sprintf("operation operand position %d out of range in operation:\n%s", e.Position, e.Operation)
}

// ParseError reports that the engine rejected a piece of textual IR.
type ParseError struct {
	// What was being parsed: "type", "attribute", or "module".
	Kind string

	// The source text that failed to parse.
	Source string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse MLIR %s: %q", e.Kind, e.Source)
}

// OperationBuildError reports that the engine refused to create an
// operation, most commonly because result type inference failed.
type OperationBuildError struct {
	// The fully qualified name of the operation being built.
	Name string
}

func (e *OperationBuildError) Error() string {
	return fmt.Sprintf("failed to build operation %q", e.Name)
}

// PipelineError reports that a textual pass pipeline failed to parse.
type PipelineError struct {
	// The pipeline text that failed to parse.
	Pipeline string
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("failed to parse pass pipeline: %q", e.Pipeline)
}

// PassError reports that a pass manager run failed on a module.
type PassError struct {
	// The textual form of the pipeline that was run.
	Pipeline string
}

func (e *PassError) Error() string {
	return fmt.Sprintf("pass pipeline failed: %q", e.Pipeline)
}

// EngineError reports a failure to build an execution engine for a module.
type EngineError struct {
	Message string
}

func (e *EngineError) Error() string {
	return "execution engine: " + e.Message
}
