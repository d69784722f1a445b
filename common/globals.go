package common

// GomlirVersion is the current gomlir version as a string.
const GomlirVersion string = "0.1.0"

// PipelineFileName is the default name for pipeline profile files.
const PipelineFileName string = "gomlir.toml"

// ModuleFileExt is the file extension for a textual MLIR module.
const ModuleFileExt string = ".mlir"
