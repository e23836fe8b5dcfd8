package glui

import (
	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
)

const (
	deg2rad = math32.Pi / 180
	// epstol is used to check for badly conditioned denominators
	// such as homogeneous w coordinates and matrix determinants.
	epstol = 6e-7
)

// Identity returns the 4x4 identity matrix.
func Identity() ms3.Mat4 {
	return ms3.NewMat4([]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// Translation returns a matrix that translates points by t.
func Translation(t ms3.Vec) ms3.Mat4 {
	return ms3.NewMat4([]float32{
		1, 0, 0, t.X,
		0, 1, 0, t.Y,
		0, 0, 1, t.Z,
		0, 0, 0, 1,
	})
}

// Scaling returns a matrix that scales points elementwise by s.
func Scaling(s ms3.Vec) ms3.Mat4 {
	return ms3.NewMat4([]float32{
		s.X, 0, 0, 0,
		0, s.Y, 0, 0,
		0, 0, s.Z, 0,
		0, 0, 0, 1,
	})
}

// RotationX returns a rotation of deg degrees about the X axis.
func RotationX(deg float32) ms3.Mat4 {
	return ms3.RotationMat4(deg*deg2rad, ms3.Vec{X: 1})
}

// RotationY returns a rotation of deg degrees about the Y axis.
func RotationY(deg float32) ms3.Mat4 {
	return ms3.RotationMat4(deg*deg2rad, ms3.Vec{Y: 1})
}

// Perspective returns an OpenGL style perspective projection with a vertical
// field of view of fovyDeg degrees. Camera looks down the -Z axis.
func Perspective(fovyDeg, aspect, near, far float32) ms3.Mat4 {
	f := 1 / math32.Tan(fovyDeg*deg2rad/2)
	nf := 1 / (near - far)
	return ms3.NewMat4([]float32{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, 2 * far * near * nf,
		0, 0, -1, 0,
	})
}

// Orthographic returns an OpenGL style orthographic projection of the box
// [left,right]x[bottom,top]x[-near,-far].
func Orthographic(left, right, bottom, top, near, far float32) ms3.Mat4 {
	rl := right - left
	tb := top - bottom
	fn := far - near
	return ms3.NewMat4([]float32{
		2 / rl, 0, 0, -(right + left) / rl,
		0, 2 / tb, 0, -(top + bottom) / tb,
		0, 0, -2 / fn, -(far + near) / fn,
		0, 0, 0, 1,
	})
}

// MulMat4 returns the product a*b. When applied to a point b acts first.
func MulMat4(a, b ms3.Mat4) ms3.Mat4 {
	A := a.Array()
	B := b.Array()
	var c [16]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += A[i*4+k] * B[k*4+j]
			}
			c[i*4+j] = sum
		}
	}
	return ms3.NewMat4(c[:])
}

// mulHomogeneous multiplies m by the homogeneous point (p, w).
func mulHomogeneous(m ms3.Mat4, p ms3.Vec, w float32) (x, y, z, ww float32) {
	a := m.Array()
	x = a[0]*p.X + a[1]*p.Y + a[2]*p.Z + a[3]*w
	y = a[4]*p.X + a[5]*p.Y + a[6]*p.Z + a[7]*w
	z = a[8]*p.X + a[9]*p.Y + a[10]*p.Z + a[11]*w
	ww = a[12]*p.X + a[13]*p.Y + a[14]*p.Z + a[15]*w
	return x, y, z, ww
}

// TransformPoint applies m to p and performs the perspective divide.
// The result is undefined when p lies on the plane where the transformed w vanishes.
func TransformPoint(m ms3.Mat4, p ms3.Vec) ms3.Vec {
	x, y, z, w := mulHomogeneous(m, p, 1)
	return ms3.Vec{X: x / w, Y: y / w, Z: z / w}
}

// ProjectToLine returns the point on the infinite line through a and b closest to p.
// If a and b coincide a is returned.
func ProjectToLine(p, a, b ms3.Vec) ms3.Vec {
	delta := ms3.Sub(b, a)
	dd := ms3.Dot(delta, delta)
	if dd < epstol*epstol {
		return a
	}
	alpha := ms3.Dot(delta, ms3.Sub(p, a)) / dd
	return ms3.Add(a, ms3.Scale(alpha, delta))
}

// Ortho returns a vector perpendicular to v with the same length.
// Returns the zero vector if v is near zero.
func Ortho(v ms3.Vec) ms3.Vec {
	length := ms3.Norm(v)
	if length < epstol {
		return ms3.Vec{}
	}
	// Cross with the axis along v's smallest component, never colinear with v.
	xa, ya, za := math32.Abs(v.X), math32.Abs(v.Y), math32.Abs(v.Z)
	var crosser ms3.Vec
	switch {
	case xa <= ya && xa <= za:
		crosser.X = 1
	case ya <= za:
		crosser.Y = 1
	default:
		crosser.Z = 1
	}
	ortho := ms3.Cross(v, crosser)
	return ms3.Scale(length/ms3.Norm(ortho), ortho)
}
