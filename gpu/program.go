package gpu

import (
	"errors"
	"fmt"
)

// Program is a linked vertex/fragment shader pair.
type Program struct {
	drv      Driver
	name     string
	handle   uint32
	linked   bool
	released bool
}

// Get the program name.
func (p *Program) Name() string {
	return p.name
}

// Get the driver handle for this program.
func (p *Program) Handle() uint32 {
	return p.handle
}

// Returns true if the program linked successfully. An invalid program can
// still be bound; the driver will simply not produce any output for it.
func (p *Program) Valid() bool {
	return p.linked && !p.released
}

// Bind program for subsequent draw calls.
func (p *Program) Use() {
	p.drv.UseProgram(p.handle)
}

// Release the program. Calling Release more than once has no effect.
func (p *Program) Release() {
	if p == nil || p.released {
		return
	}
	p.released = true
	p.drv.DeleteProgram(p.handle)
}

type stageKey struct {
	stage Stage
	src   string
}

type compiledStage struct {
	handle uint32
	err    error
}

// Compiler builds programs while caching compiled stages so that a stage source
// shared by multiple programs is only compiled once. Cached stages are deleted
// when the compiler is closed.
type Compiler struct {
	drv    Driver
	stages map[stageKey]*compiledStage
	order  []stageKey
}

// Create a new compiler that uses the specified driver.
func NewCompiler(drv Driver) *Compiler {
	return &Compiler{
		drv:    drv,
		stages: make(map[stageKey]*compiledStage),
	}
}

// Compile the supplied stage sources and link them into a program.
//
// Compilation and link failures are logged and returned as *BuildError values
// but never abort the build: the returned program is always non-nil so callers
// may keep using it.
func (c *Compiler) Build(name, vertexSrc, fragmentSrc string) (*Program, error) {
	var errs []error

	vs := c.compile(name, VertexStage, vertexSrc)
	if vs.err != nil {
		errs = append(errs, vs.err)
	}
	fs := c.compile(name, FragmentStage, fragmentSrc)
	if fs.err != nil {
		errs = append(errs, fs.err)
	}

	prog := &Program{
		drv:    c.drv,
		name:   name,
		handle: c.drv.CreateProgram(),
	}
	c.drv.AttachShader(prog.handle, vs.handle)
	c.drv.AttachShader(prog.handle, fs.handle)
	c.drv.LinkProgram(prog.handle)

	prog.linked = c.drv.ProgramLinked(prog.handle)
	if !prog.linked {
		err := &BuildError{Program: name, Step: "program linkage", Log: c.drv.ProgramInfoLog(prog.handle)}
		logger.Errorf("shader program %q linkage failed\n%s", name, err.Log)
		errs = append(errs, err)
	} else {
		logger.Debugf("linked shader program %q (handle %d)", name, prog.handle)
	}

	return prog, errors.Join(errs...)
}

func (c *Compiler) compile(name string, stage Stage, src string) *compiledStage {
	key := stageKey{stage, src}
	if cs, exists := c.stages[key]; exists {
		return cs
	}

	cs := &compiledStage{handle: c.drv.CreateShader(stage)}
	c.drv.ShaderSource(cs.handle, src)
	c.drv.CompileShader(cs.handle)
	if !c.drv.ShaderCompiled(cs.handle) {
		err := &BuildError{
			Program: name,
			Step:    fmt.Sprintf("%s shader compilation", stage),
			Log:     c.drv.ShaderInfoLog(cs.handle),
		}
		logger.Errorf("%s shader compilation failed\n%s", stage, err.Log)
		cs.err = err
	}

	c.stages[key] = cs
	c.order = append(c.order, key)
	return cs
}

// Delete all cached stage objects. Programs built by this compiler remain valid.
func (c *Compiler) Close() {
	for _, key := range c.order {
		c.drv.DeleteShader(c.stages[key].handle)
	}
	c.stages = make(map[stageKey]*compiledStage)
	c.order = nil
}

// Build a single program and release its intermediate stage objects.
func BuildProgram(drv Driver, name, vertexSrc, fragmentSrc string) (*Program, error) {
	c := NewCompiler(drv)
	defer c.Close()
	return c.Build(name, vertexSrc, fragmentSrc)
}
