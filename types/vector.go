package types

import "golang.org/x/image/math/f32"

// Size in bytes of a single float32 vertex component.
const Float32Size = 4

type Vec3 f32.Vec3
type Vec4 f32.Vec4

// Define a 3 component vector.
func XYZ(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Define a 4 component vector.
func XYZW(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

// Define an RGBA color.
func RGBA(r, g, b, a float32) Vec4 {
	return Vec4{r, g, b, a}
}

// Expand a 3 component vector to a Vec4.
func (v Vec3) Vec4(w float32) Vec4 {
	return Vec4{v[0], v[1], v[2], w}
}

// Reduce a 4 component vector to a Vec3.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// Pack a list of 3 component vectors into a contiguous float slice suitable
// for uploading to a vertex buffer.
func Flatten(list []Vec3) []float32 {
	out := make([]float32, 0, len(list)*3)
	for _, v := range list {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}

// Get the size in bytes of a packed list of 3 component vectors.
func SizeOf(list []Vec3) int {
	return len(list) * 3 * Float32Size
}
