// Package gpu builds shader programs and vertex meshes on top of a minimal
// graphics API driver and tracks their lifetime.
package gpu

import (
	"github.com/achilleasa/altitude/log"
	"github.com/achilleasa/altitude/types"
)

var logger = log.New("gpu")

// Stage identifies a shader pipeline stage.
type Stage uint8

const (
	VertexStage Stage = iota
	FragmentStage
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// Driver exposes the subset of the graphics API used for building programs,
// uploading meshes and drawing frames. All methods must be invoked from the
// thread that owns the current context.
type Driver interface {
	// Shaders
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	// Programs
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// Vertex arrays and buffers
	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	GenBuffer() uint32
	BindArrayBuffer(vbo uint32)
	ArrayBufferData(data []float32)
	DeleteBuffer(vbo uint32)
	VertexAttribPointer(index uint32, size, stride int32)
	EnableVertexAttribArray(index uint32)

	// Frame state
	Viewport(x, y, width, height int32)
	ClearColor(color types.Vec4)
	Clear()
	PolygonMode(wireframe bool)
	DrawTriangles(first, count int32)
}
