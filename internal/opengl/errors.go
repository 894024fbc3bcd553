package opengl

import "fmt"

// ResourceCreationError reports a failed shader compile or program link.
// Log carries the driver's info log verbatim — GL shader errors are
// opaque without it, so callers should surface the whole text.
type ResourceCreationError struct {
	Kind string // "shader compile", "program link"
	Log  string
}

func (e *ResourceCreationError) Error() string {
	return fmt.Sprintf("%s failed:\n%s", e.Kind, e.Log)
}

// UnknownUniformError reports a uniform name with no active location in a
// linked program. Drivers strip unused uniforms, so per-frame callers may
// treat this as recoverable and continue with the rest of the frame.
type UnknownUniformError struct {
	Name string
}

func (e *UnknownUniformError) Error() string {
	return fmt.Sprintf("program has no active uniform %q", e.Name)
}

// UnknownStorageBlockError reports a shader storage block name the program
// does not declare. A scene cannot be rendered by a kernel missing one of
// its storage blocks, so this is fatal to renderer construction.
type UnknownStorageBlockError struct {
	Block string
}

func (e *UnknownStorageBlockError) Error() string {
	return fmt.Sprintf("program has no shader storage block %q", e.Block)
}
