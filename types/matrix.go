package types

import "github.com/go-gl/mathgl/mgl32"

// A column-major 4x4 transformation matrix.
type Mat4 mgl32.Mat4

// Create a 4x4 identity matrix.
func Ident4() Mat4 {
	return Mat4(mgl32.Ident4())
}
