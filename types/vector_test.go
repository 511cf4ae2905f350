package types

import "testing"

func TestFlatten(t *testing.T) {
	list := []Vec3{
		XYZ(-0.5, -0.5, 0),
		XYZ(0.5, -0.5, 0),
		XYZ(0, 0.5, 0),
	}

	exp := []float32{-0.5, -0.5, 0, 0.5, -0.5, 0, 0, 0.5, 0}
	out := Flatten(list)
	if len(out) != len(exp) {
		t.Fatalf("expected %d floats; got %d", len(exp), len(out))
	}
	for i := range exp {
		if out[i] != exp[i] {
			t.Fatalf("[component %d] expected %f; got %f", i, exp[i], out[i])
		}
	}

	if got := SizeOf(list); got != 3*3*4 {
		t.Fatalf("expected packed size to be %d bytes; got %d", 3*3*4, got)
	}

	if got := Flatten(nil); len(got) != 0 {
		t.Fatalf("expected empty output for nil input; got %v", got)
	}
}

func TestVecConversions(t *testing.T) {
	c := RGBA(0.2, 0.3, 0.3, 1.0)
	if c.Vec3() != XYZ(0.2, 0.3, 0.3) {
		t.Fatalf("expected rgb part to be preserved; got %v", c.Vec3())
	}

	if XYZ(1, 2, 3).Vec4(1) != XYZW(1, 2, 3, 1) {
		t.Fatal("expected Vec3 expansion to append w component")
	}
}
