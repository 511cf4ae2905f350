package scene

import (
	"fmt"
	"sort"

	"github.com/achilleasa/altitude/types"
)

// Shared vertex stage; forwards the vertex position unchanged.
const PassthroughVertexShader = `#version 330 core
layout (location = 0) in vec3 aPos;
void main()
{
   gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

// Fragment stage that outputs a solid orange color.
const OrangeFragmentShader = `#version 330 core
out vec4 FragColor;
void main()
{
   FragColor = vec4(1.0f, 0.5f, 0.2f, 1.0f);
}
`

// Fragment stage that outputs a solid yellow color.
const YellowFragmentShader = `#version 330 core
out vec4 FragColor;
void main()
{
   FragColor = vec4(1.0f, 1.0f, 0.0f, 1.0f);
}
`

// Name of the scene used when none is specified.
const DefaultScene = "pair"

// Background color shared by the built-in scenes.
var DefaultClearColor = types.RGBA(0.2, 0.3, 0.3, 1.0)

var builtins = map[string]func() *Scene{
	"triangle": Triangle,
	"pair":     Pair,
}

// A single orange triangle centered on the screen.
func Triangle() *Scene {
	return &Scene{
		Name:        "triangle",
		Description: "single orange triangle",
		ClearColor:  DefaultClearColor,
		Programs: []ProgramSource{
			{Name: "orange", Vertex: PassthroughVertexShader, Fragment: OrangeFragmentShader},
		},
		Meshes: []MeshSource{
			{
				Name: "triangle",
				Vertices: []types.Vec3{
					types.XYZ(-0.5, -0.5, 0.0),
					types.XYZ(0.5, -0.5, 0.0),
					types.XYZ(0.0, 0.5, 0.0),
				},
				Program: "orange",
			},
		},
	}
}

// Two side-by-side triangles sharing the vertex stage but using different
// fragment colors.
func Pair() *Scene {
	return &Scene{
		Name:        "pair",
		Description: "orange and yellow triangles side by side",
		ClearColor:  DefaultClearColor,
		Programs: []ProgramSource{
			{Name: "orange", Vertex: PassthroughVertexShader, Fragment: OrangeFragmentShader},
			{Name: "yellow", Vertex: PassthroughVertexShader, Fragment: YellowFragmentShader},
		},
		Meshes: []MeshSource{
			{
				Name: "left",
				Vertices: []types.Vec3{
					types.XYZ(-0.5, -0.25, 0.0),
					types.XYZ(0.0, -0.25, 0.0),
					types.XYZ(-0.25, 0.25, 0.0),
				},
				Program: "orange",
			},
			{
				Name: "right",
				Vertices: []types.Vec3{
					types.XYZ(0.0, -0.25, 0.0),
					types.XYZ(0.5, -0.25, 0.0),
					types.XYZ(0.25, 0.25, 0.0),
				},
				Program: "yellow",
			},
		},
	}
}

// Get a fresh copy of a built-in scene by name.
func Lookup(name string) (*Scene, error) {
	ctor, exists := builtins[name]
	if !exists {
		return nil, fmt.Errorf("%w %q; available scenes: %v", ErrUnknownScene, name, Names())
	}
	return ctor(), nil
}

// List the names of the built-in scenes in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
