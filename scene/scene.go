package scene

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/achilleasa/altitude/types"
	"github.com/olekukonko/tablewriter"
)

// Source text for a vertex/fragment shader pair that is linked into a single
// program.
type ProgramSource struct {
	Name     string
	Vertex   string
	Fragment string
}

// A fixed list of vertex positions drawn as triangles using the named program.
type MeshSource struct {
	Name     string
	Vertices []types.Vec3
	Program  string
}

// Number of bytes required to store the mesh vertices in a tightly packed buffer.
func (m MeshSource) ByteSize() int {
	return types.SizeOf(m.Vertices)
}

// A Scene bundles the programs and meshes drawn every frame together with
// the color used for clearing the framebuffer.
type Scene struct {
	Name        string
	Description string

	ClearColor types.Vec4

	Programs []ProgramSource
	Meshes   []MeshSource
}

// Ensure that the scene can be uploaded. Meshes must contain complete triangles
// and reference a program defined by the scene.
func (sc *Scene) Validate() error {
	if sc == nil {
		return ErrNilScene
	}
	if len(sc.Meshes) == 0 {
		return ErrNoMeshes
	}

	programs := make(map[string]struct{}, len(sc.Programs))
	for _, prog := range sc.Programs {
		if _, exists := programs[prog.Name]; exists {
			return fmt.Errorf("scene: duplicate program %q", prog.Name)
		}
		programs[prog.Name] = struct{}{}
	}

	for index, mesh := range sc.Meshes {
		if len(mesh.Vertices) == 0 || len(mesh.Vertices)%3 != 0 {
			return fmt.Errorf("scene: mesh %d (%q) has %d vertices; expected a non-zero multiple of 3", index, mesh.Name, len(mesh.Vertices))
		}
		if _, exists := programs[mesh.Program]; !exists {
			return fmt.Errorf("scene: mesh %d (%q) references unknown program %q", index, mesh.Name, mesh.Program)
		}
	}

	return nil
}

// Lookup a program by name.
func (sc *Scene) Program(name string) (ProgramSource, bool) {
	for _, prog := range sc.Programs {
		if prog.Name == name {
			return prog, true
		}
	}
	return ProgramSource{}, false
}

// Total number of bytes uploaded to vertex buffers for this scene.
func (sc *Scene) VertexBytes() int {
	total := 0
	for _, mesh := range sc.Meshes {
		total += mesh.ByteSize()
	}
	return total
}

// Generate a table with the meshes in this scene and their buffer sizes.
func (sc *Scene) Stats() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Mesh", "Program", "Vertices", "Size"})
	vertices := 0
	for _, mesh := range sc.Meshes {
		vertices += len(mesh.Vertices)
		table.Append([]string{
			mesh.Name,
			mesh.Program,
			fmt.Sprintf("%d", len(mesh.Vertices)),
			fmtSize(mesh.ByteSize()),
		})
	}
	table.SetFooter([]string{"Total", fmt.Sprintf("%d programs", len(sc.Programs)), fmt.Sprintf("%d", vertices), strings.TrimLeft(fmtSize(sc.VertexBytes()), " ")})

	table.Render()
	return buf.String()
}

// Format a byte count using the appropriate byte/kb/mb unit.
func fmtSize(totalBytes int) string {
	if totalBytes < 1e3 {
		return fmt.Sprintf("%3d bytes", totalBytes)
	} else if totalBytes < 1e6 {
		return fmt.Sprintf("%3.1f kb", float32(totalBytes)/1e3)
	}
	return fmt.Sprintf("%5.1f mb", float32(totalBytes)/1e6)
}
