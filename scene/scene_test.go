package scene

import (
	"errors"
	"strings"
	"testing"

	"github.com/achilleasa/altitude/types"
)

func TestBuiltinScenes(t *testing.T) {
	type spec struct {
		name     string
		meshes   int
		programs int
	}
	specs := []spec{
		{"triangle", 1, 1},
		{"pair", 2, 2},
	}

	for index, s := range specs {
		sc, err := Lookup(s.name)
		if err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", index, err)
		}
		if err = sc.Validate(); err != nil {
			t.Fatalf("[spec %d] expected built-in scene to be valid; got %v", index, err)
		}
		if len(sc.Meshes) != s.meshes || len(sc.Programs) != s.programs {
			t.Fatalf("[spec %d] expected %d meshes and %d programs; got %d and %d", index, s.meshes, s.programs, len(sc.Meshes), len(sc.Programs))
		}
		if sc.ClearColor != types.RGBA(0.2, 0.3, 0.3, 1.0) {
			t.Fatalf("[spec %d] unexpected clear color %v", index, sc.ClearColor)
		}

		// 3 vertices x 3 components x 4 bytes per triangle
		if exp := s.meshes * 3 * 3 * 4; sc.VertexBytes() != exp {
			t.Fatalf("[spec %d] expected %d vertex bytes; got %d", index, exp, sc.VertexBytes())
		}
	}
}

func TestPairSharesVertexStage(t *testing.T) {
	sc := Pair()
	if sc.Programs[0].Vertex != sc.Programs[1].Vertex {
		t.Fatal("expected both programs to share the vertex stage source")
	}
	if sc.Programs[0].Fragment == sc.Programs[1].Fragment {
		t.Fatal("expected programs to use different fragment stages")
	}
}

func TestTriangleVertices(t *testing.T) {
	exp := []types.Vec3{
		types.XYZ(-0.5, -0.5, 0),
		types.XYZ(0.5, -0.5, 0),
		types.XYZ(0, 0.5, 0),
	}
	got := Triangle().Meshes[0].Vertices
	for i := range exp {
		if got[i] != exp[i] {
			t.Fatalf("[vertex %d] expected %v; got %v", i, exp[i], got[i])
		}
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	sc1, _ := Lookup("triangle")
	sc1.Meshes[0].Vertices[0] = types.XYZ(9, 9, 9)

	sc2, _ := Lookup("triangle")
	if sc2.Meshes[0].Vertices[0] == types.XYZ(9, 9, 9) {
		t.Fatal("expected each lookup to return an independent scene")
	}
}

func TestLookupUnknownScene(t *testing.T) {
	_, err := Lookup("rectangle")
	if !errors.Is(err, ErrUnknownScene) {
		t.Fatalf("expected ErrUnknownScene; got %v", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 2 || names[0] != "pair" || names[1] != "triangle" {
		t.Fatalf("unexpected scene names %v", names)
	}
}

func TestValidate(t *testing.T) {
	tri := []types.Vec3{types.XYZ(0, 0, 0), types.XYZ(1, 0, 0), types.XYZ(0, 1, 0)}
	prog := ProgramSource{Name: "p", Vertex: "v", Fragment: "f"}

	type spec struct {
		sc     *Scene
		expErr string
	}
	specs := []spec{
		{nil, ErrNilScene.Error()},
		{&Scene{Programs: []ProgramSource{prog}}, ErrNoMeshes.Error()},
		{
			&Scene{
				Programs: []ProgramSource{prog},
				Meshes:   []MeshSource{{Name: "m", Vertices: tri[:2], Program: "p"}},
			},
			`scene: mesh 0 ("m") has 2 vertices; expected a non-zero multiple of 3`,
		},
		{
			&Scene{
				Programs: []ProgramSource{prog},
				Meshes:   []MeshSource{{Name: "m", Vertices: tri, Program: "missing"}},
			},
			`scene: mesh 0 ("m") references unknown program "missing"`,
		},
		{
			&Scene{
				Programs: []ProgramSource{prog, prog},
				Meshes:   []MeshSource{{Name: "m", Vertices: tri, Program: "p"}},
			},
			`scene: duplicate program "p"`,
		},
		{
			&Scene{
				Programs: []ProgramSource{prog},
				Meshes:   []MeshSource{{Name: "m", Vertices: append(tri, tri...), Program: "p"}},
			},
			"",
		},
	}

	for index, s := range specs {
		err := s.sc.Validate()
		if s.expErr == "" {
			if err != nil {
				t.Fatalf("[spec %d] unexpected error: %v", index, err)
			}
			continue
		}
		if err == nil || err.Error() != s.expErr {
			t.Fatalf("[spec %d] expected error %q; got %v", index, s.expErr, err)
		}
	}
}

func TestStats(t *testing.T) {
	out := Pair().Stats()
	for _, exp := range []string{"Mesh", "left", "right", "orange", "yellow", "72 bytes", "36 bytes"} {
		if !strings.Contains(out, exp) {
			t.Fatalf("expected stats table to contain %q; got:\n%s", exp, out)
		}
	}
}
