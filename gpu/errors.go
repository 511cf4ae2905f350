package gpu

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidVertexData = errors.New("gpu: vertex data must contain a non-zero multiple of 3 vertices")
	ErrNilDriver         = errors.New("gpu: no driver defined")
)

// BuildError describes a failed shader compilation or program link step
// together with the diagnostic log reported by the driver.
type BuildError struct {
	Program string
	Step    string
	Log     string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("gpu: %s failed for program %q: %s", e.Step, e.Program, e.Log)
}
