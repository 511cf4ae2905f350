package gpu_test

import (
	"testing"

	"github.com/achilleasa/altitude/gpu"
	"github.com/achilleasa/altitude/gpu/gputest"
	"github.com/achilleasa/altitude/scene"
	"github.com/achilleasa/altitude/types"
)

func TestUploadMesh(t *testing.T) {
	drv := gputest.NewDriver(nil)

	for index, src := range scene.Pair().Meshes {
		mesh, err := gpu.UploadMesh(drv, src.Vertices)
		if err != nil {
			t.Fatalf("[mesh %d] unexpected error: %v", index, err)
		}

		vao, vbo := mesh.Handles()
		if !drv.Ready(vao) {
			t.Fatalf("[mesh %d] expected vertex array to be fully described", index)
		}
		if got := drv.BufferSize(vbo); got != 3*3*4 {
			t.Fatalf("[mesh %d] expected buffer to hold %d bytes; got %d", index, 3*3*4, got)
		}
		if mesh.ByteSize() != 36 || mesh.VertexCount() != 3 {
			t.Fatalf("[mesh %d] unexpected mesh size %d/%d", index, mesh.ByteSize(), mesh.VertexCount())
		}
		if drv.Stride(vao) != 12 {
			t.Fatalf("[mesh %d] expected tightly packed stride of 12 bytes; got %d", index, drv.Stride(vao))
		}
	}
}

func TestUploadMeshRejectsIncompleteTriangles(t *testing.T) {
	drv := gputest.NewDriver(nil)

	specs := [][]types.Vec3{
		nil,
		{types.XYZ(0, 0, 0), types.XYZ(1, 0, 0)},
	}
	for index, vertices := range specs {
		if _, err := gpu.UploadMesh(drv, vertices); err != gpu.ErrInvalidVertexData {
			t.Fatalf("[spec %d] expected ErrInvalidVertexData; got %v", index, err)
		}
	}
	if drv.Created.VertexArrays != 0 || drv.Created.Buffers != 0 {
		t.Fatal("expected no objects to be allocated for invalid input")
	}

	if _, err := gpu.UploadMesh(nil, scene.Triangle().Meshes[0].Vertices); err != gpu.ErrNilDriver {
		t.Fatalf("expected ErrNilDriver; got %v", err)
	}
}

func TestMeshDrawAndRelease(t *testing.T) {
	drv := gputest.NewDriver(nil)
	mesh, err := gpu.UploadMesh(drv, scene.Triangle().Meshes[0].Vertices)
	if err != nil {
		t.Fatal(err)
	}

	mesh.Draw()
	vao, _ := mesh.Handles()
	if len(drv.Draws) != 1 || drv.Draws[0].VAO != vao || drv.Draws[0].Count != 3 {
		t.Fatalf("unexpected draw calls %+v", drv.Draws)
	}

	mesh.Release()
	mesh.Release()
	if drv.Deleted.VertexArrays != 1 || drv.Deleted.Buffers != 1 {
		t.Fatalf("expected exactly one vao and buffer release; got %+v", drv.Deleted)
	}
}
