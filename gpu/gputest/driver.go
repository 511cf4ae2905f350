// Package gputest provides a recording gpu.Driver for tests that run without
// a graphics context.
package gputest

import (
	"fmt"

	"github.com/achilleasa/altitude/gpu"
	"github.com/achilleasa/altitude/types"
)

// Default diagnostic reported for shaders that fail to compile.
const DefaultCompileLog = "0:3(1): error: syntax error, unexpected NEW_IDENTIFIER"

// Journal is an ordered list of events shared between test doubles so that
// tests can assert on the relative order of driver and window calls.
type Journal struct {
	Events []string
}

// Append an event to the journal.
func (j *Journal) Record(format string, args ...interface{}) {
	if j == nil {
		return
	}
	j.Events = append(j.Events, fmt.Sprintf(format, args...))
}

// Get the index of the first event with the given value or -1 if not found.
func (j *Journal) Index(event string) int {
	for i, ev := range j.Events {
		if ev == event {
			return i
		}
	}
	return -1
}

// Get the index of the last event with the given value or -1 if not found.
func (j *Journal) LastIndex(event string) int {
	for i := len(j.Events) - 1; i >= 0; i-- {
		if j.Events[i] == event {
			return i
		}
	}
	return -1
}

// A recorded draw call.
type Draw struct {
	Program uint32
	VAO     uint32
	First   int32
	Count   int32
}

type shader struct {
	stage    gpu.Stage
	src      string
	compiled bool
}

type program struct {
	shaders []uint32
	linked  bool
}

type vertexArray struct {
	buffer     uint32
	attribSize int32
	stride     int32
	enabled    bool
}

// Counts of objects created and deleted per kind.
type Counts struct {
	Shaders, Programs, VertexArrays, Buffers int
}

// Driver is an in-memory gpu.Driver that mimics the object model of the
// graphics API and records every state changing call.
type Driver struct {
	Journal *Journal

	// If set, shaders whose source satisfies the predicate fail to compile.
	FailCompile func(src string) bool

	// Diagnostic returned for failed compilations; DefaultCompileLog if empty.
	CompileLog string

	nextHandle uint32

	shaders      map[uint32]*shader
	programs     map[uint32]*program
	vertexArrays map[uint32]*vertexArray
	buffers      map[uint32]int

	boundProgram uint32
	boundVAO     uint32
	boundBuffer  uint32

	Created Counts
	Deleted Counts

	ViewportRect [4]int32
	ClearRGBA    types.Vec4
	Clears       int
	Wireframe    bool
	Draws        []Draw
}

// Create a new recording driver. The journal may be nil.
func NewDriver(journal *Journal) *Driver {
	return &Driver{
		Journal:      journal,
		shaders:      make(map[uint32]*shader),
		programs:     make(map[uint32]*program),
		vertexArrays: make(map[uint32]*vertexArray),
		buffers:      make(map[uint32]int),
	}
}

func (d *Driver) handle() uint32 {
	d.nextHandle++
	return d.nextHandle
}

// Get the number of live objects per kind.
func (d *Driver) Live() Counts {
	return Counts{
		Shaders:      len(d.shaders),
		Programs:     len(d.programs),
		VertexArrays: len(d.vertexArrays),
		Buffers:      len(d.buffers),
	}
}

// Get the size in bytes of the data uploaded to a buffer.
func (d *Driver) BufferSize(vbo uint32) int {
	return d.buffers[vbo]
}

// Returns true if the program handle refers to a linked program.
func (d *Driver) Linked(prog uint32) bool {
	p, exists := d.programs[prog]
	return exists && p.linked
}

// Returns true if the vertex array has a buffer attached and its position
// attribute is described and enabled.
func (d *Driver) Ready(vao uint32) bool {
	va, exists := d.vertexArrays[vao]
	if !exists {
		return false
	}
	_, hasBuffer := d.buffers[va.buffer]
	return hasBuffer && va.enabled && va.attribSize == 3
}

// Get the attribute stride recorded for a vertex array.
func (d *Driver) Stride(vao uint32) int32 {
	if va, exists := d.vertexArrays[vao]; exists {
		return va.stride
	}
	return -1
}

func (d *Driver) CreateShader(stage gpu.Stage) uint32 {
	h := d.handle()
	d.shaders[h] = &shader{stage: stage}
	d.Created.Shaders++
	d.Journal.Record("create-shader %d", h)
	return h
}

func (d *Driver) ShaderSource(sh uint32, src string) {
	if s, exists := d.shaders[sh]; exists {
		s.src = src
	}
}

func (d *Driver) CompileShader(sh uint32) {
	s, exists := d.shaders[sh]
	if !exists {
		return
	}
	s.compiled = d.FailCompile == nil || !d.FailCompile(s.src)
	d.Journal.Record("compile-shader %d", sh)
}

func (d *Driver) ShaderCompiled(sh uint32) bool {
	s, exists := d.shaders[sh]
	return exists && s.compiled
}

func (d *Driver) ShaderInfoLog(sh uint32) string {
	if d.ShaderCompiled(sh) {
		return ""
	}
	if d.CompileLog != "" {
		return d.CompileLog
	}
	return DefaultCompileLog
}

func (d *Driver) DeleteShader(sh uint32) {
	if _, exists := d.shaders[sh]; !exists {
		return
	}
	delete(d.shaders, sh)
	d.Deleted.Shaders++
	d.Journal.Record("delete-shader %d", sh)
}

func (d *Driver) CreateProgram() uint32 {
	h := d.handle()
	d.programs[h] = &program{}
	d.Created.Programs++
	d.Journal.Record("create-program %d", h)
	return h
}

func (d *Driver) AttachShader(prog, sh uint32) {
	if p, exists := d.programs[prog]; exists {
		p.shaders = append(p.shaders, sh)
	}
}

func (d *Driver) LinkProgram(prog uint32) {
	p, exists := d.programs[prog]
	if !exists {
		return
	}

	var hasVertex, hasFragment bool
	p.linked = true
	for _, sh := range p.shaders {
		s, exists := d.shaders[sh]
		if !exists || !s.compiled {
			p.linked = false
			continue
		}
		hasVertex = hasVertex || s.stage == gpu.VertexStage
		hasFragment = hasFragment || s.stage == gpu.FragmentStage
	}
	p.linked = p.linked && hasVertex && hasFragment
	d.Journal.Record("link-program %d", prog)
}

func (d *Driver) ProgramLinked(prog uint32) bool {
	return d.Linked(prog)
}

func (d *Driver) ProgramInfoLog(prog uint32) string {
	if d.Linked(prog) {
		return ""
	}
	return "error: linking with uncompiled/unspecialized shader"
}

func (d *Driver) UseProgram(prog uint32) {
	d.boundProgram = prog
}

func (d *Driver) DeleteProgram(prog uint32) {
	if _, exists := d.programs[prog]; !exists {
		return
	}
	delete(d.programs, prog)
	d.Deleted.Programs++
	d.Journal.Record("delete-program %d", prog)
}

func (d *Driver) GenVertexArray() uint32 {
	h := d.handle()
	d.vertexArrays[h] = &vertexArray{}
	d.Created.VertexArrays++
	d.Journal.Record("gen-vertex-array %d", h)
	return h
}

func (d *Driver) BindVertexArray(vao uint32) {
	d.boundVAO = vao
}

func (d *Driver) DeleteVertexArray(vao uint32) {
	if _, exists := d.vertexArrays[vao]; !exists {
		return
	}
	delete(d.vertexArrays, vao)
	d.Deleted.VertexArrays++
	d.Journal.Record("delete-vertex-array %d", vao)
}

func (d *Driver) GenBuffer() uint32 {
	h := d.handle()
	d.buffers[h] = 0
	d.Created.Buffers++
	d.Journal.Record("gen-buffer %d", h)
	return h
}

func (d *Driver) BindArrayBuffer(vbo uint32) {
	d.boundBuffer = vbo
}

func (d *Driver) ArrayBufferData(data []float32) {
	if _, exists := d.buffers[d.boundBuffer]; !exists {
		return
	}
	d.buffers[d.boundBuffer] = len(data) * types.Float32Size
}

func (d *Driver) DeleteBuffer(vbo uint32) {
	if _, exists := d.buffers[vbo]; !exists {
		return
	}
	delete(d.buffers, vbo)
	d.Deleted.Buffers++
	d.Journal.Record("delete-buffer %d", vbo)
}

func (d *Driver) VertexAttribPointer(index uint32, size, stride int32) {
	if va, exists := d.vertexArrays[d.boundVAO]; exists && index == gpu.PositionAttribute {
		va.buffer = d.boundBuffer
		va.attribSize = size
		va.stride = stride
	}
}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	if va, exists := d.vertexArrays[d.boundVAO]; exists && index == gpu.PositionAttribute {
		va.enabled = true
	}
}

func (d *Driver) Viewport(x, y, width, height int32) {
	d.ViewportRect = [4]int32{x, y, width, height}
	d.Journal.Record("viewport %d %d %d %d", x, y, width, height)
}

func (d *Driver) ClearColor(color types.Vec4) {
	d.ClearRGBA = color
}

func (d *Driver) Clear() {
	d.Clears++
	d.Journal.Record("clear")
}

func (d *Driver) PolygonMode(wireframe bool) {
	d.Wireframe = wireframe
}

func (d *Driver) DrawTriangles(first, count int32) {
	d.Draws = append(d.Draws, Draw{Program: d.boundProgram, VAO: d.boundVAO, First: first, Count: count})
	d.Journal.Record("draw %d %d", d.boundProgram, d.boundVAO)
}

var _ gpu.Driver = (*Driver)(nil)
