package gpu

import "github.com/achilleasa/altitude/types"

// Vertex attribute location used for positions.
const PositionAttribute uint32 = 0

// Mesh is a vertex array object together with the buffer holding its
// vertex positions. Meshes are immutable after upload.
type Mesh struct {
	drv         Driver
	vao         uint32
	vbo         uint32
	vertexCount int32
	released    bool
}

// Upload vertex positions into a new buffer and describe its layout as a
// tightly packed list of 3 float components bound to PositionAttribute.
func UploadMesh(drv Driver, vertices []types.Vec3) (*Mesh, error) {
	if drv == nil {
		return nil, ErrNilDriver
	}
	if len(vertices) == 0 || len(vertices)%3 != 0 {
		return nil, ErrInvalidVertexData
	}

	m := &Mesh{
		drv:         drv,
		vao:         drv.GenVertexArray(),
		vbo:         drv.GenBuffer(),
		vertexCount: int32(len(vertices)),
	}

	drv.BindVertexArray(m.vao)
	drv.BindArrayBuffer(m.vbo)
	drv.ArrayBufferData(types.Flatten(vertices))
	drv.VertexAttribPointer(PositionAttribute, 3, 3*types.Float32Size)
	drv.EnableVertexAttribArray(PositionAttribute)

	// Unbind so later calls cannot modify this vao by accident
	drv.BindVertexArray(0)

	logger.Debugf("uploaded mesh with %d vertices (vao %d, vbo %d, %d bytes)", m.vertexCount, m.vao, m.vbo, m.ByteSize())
	return m, nil
}

// Get the number of vertices in this mesh.
func (m *Mesh) VertexCount() int {
	return int(m.vertexCount)
}

// Get the size in bytes of the uploaded vertex buffer.
func (m *Mesh) ByteSize() int {
	return int(m.vertexCount) * 3 * types.Float32Size
}

// Get the vertex array and buffer handles.
func (m *Mesh) Handles() (vao, vbo uint32) {
	return m.vao, m.vbo
}

// Bind the vertex array and draw its contents as triangles.
func (m *Mesh) Draw() {
	m.drv.BindVertexArray(m.vao)
	m.drv.DrawTriangles(0, m.vertexCount)
}

// Release the vertex array and buffer. Calling Release more than once has no effect.
func (m *Mesh) Release() {
	if m == nil || m.released {
		return
	}
	m.released = true
	m.drv.DeleteVertexArray(m.vao)
	m.drv.DeleteBuffer(m.vbo)
}
