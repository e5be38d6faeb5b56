// Package vecmath provides the fixed-size vector/matrix/quaternion
// value types shared by every physics package, plus the handful of
// arithmetic operations the integrator, narrow phase and constraint
// solvers need.
//
// Vec3/Mat3/Quat are type aliases onto github.com/go-gl/mathgl/mgl32
// so callers can freely mix this package's helpers with mgl32's own
// API when convenient. The arithmetic below is written directly
// against mgl32's documented array layout (Vec3 is [3]float32, Mat3
// is a column-major [9]float32) rather than relying on mgl32 method
// names, since the exact formulas below (quaternion spin integration,
// row-indexed diagonal inverse-inertia reads) are spelled out by the
// physics model, not by what mgl32 happens to expose.
package vecmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Vec3 = mgl32.Vec3
type Mat3 = mgl32.Mat3
type Quat = mgl32.Quat

// NearZero is the default tolerance for "effectively zero" length
// comparisons throughout the physics core.
const NearZero = 1e-6

func Add(a, b Vec3) Vec3 { return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func Sub(a, b Vec3) Vec3 { return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
func Scale(a Vec3, s float32) Vec3 { return Vec3{a[0] * s, a[1] * s, a[2] * s} }

// Mul is the component-wise product; useful for scaling by a
// per-axis factor (e.g. half-extents).
func Mul(a, b Vec3) Vec3 { return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]} }

func Dot(a, b Vec3) float32 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func LengthSq(a Vec3) float32 { return Dot(a, a) }

func Length(a Vec3) float32 { return float32(math.Sqrt(float64(LengthSq(a)))) }

// Normalize returns the zero vector for a zero-length input rather
// than dividing by zero.
func Normalize(a Vec3) Vec3 {
	l := Length(a)
	if l <= NearZero {
		return Vec3{}
	}
	return Scale(a, 1/l)
}

func Abs3(a Vec3) Vec3 {
	return Vec3{absf(a[0]), absf(a[1]), absf(a[2])}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// Index returns a[i] for i in [0,3), panicking outside that range.
func Index(a Vec3, i int) float32 { return a[i] }

// ZeroMat3 is the zero matrix; used for a static body's invInertiaTensor.
func ZeroMat3() Mat3 { return Mat3{} }

// Diag3 builds a diagonal matrix with d on every diagonal entry.
func Diag3(d float32) Mat3 {
	return Mat3{
		d, 0, 0,
		0, d, 0,
		0, 0, d,
	}
}

func Identity3() Mat3 { return Diag3(1) }

// At3 reads the (row, col) entry of a column-major Mat3.
func At3(m Mat3, row, col int) float32 { return m[col*3+row] }

// Set3 returns a copy of m with (row, col) set to v.
func Set3(m Mat3, row, col int, v float32) Mat3 {
	m[col*3+row] = v
	return m
}

// MulMat3Vec3 computes m*v for a column-major Mat3.
func MulMat3Vec3(m Mat3, v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[3]*v[1] + m[6]*v[2],
		m[1]*v[0] + m[4]*v[1] + m[7]*v[2],
		m[2]*v[0] + m[5]*v[1] + m[8]*v[2],
	}
}

// MulMat3 computes a*b for column-major 3x3 matrices.
func MulMat3(a, b Mat3) Mat3 {
	var r Mat3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += At3(a, row, k) * At3(b, k, col)
			}
			r = Set3(r, row, col, sum)
		}
	}
	return r
}

func Transpose3(m Mat3) Mat3 {
	var r Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r = Set3(r, row, col, At3(m, col, row))
		}
	}
	return r
}

func AbsMat3(m Mat3) Mat3 {
	var r Mat3
	for i := range m {
		r[i] = absf(m[i])
	}
	return r
}

func IdentityQuat() Quat { return Quat{W: 1, V: Vec3{}} }

// NewQuat builds a quaternion from a scalar and vector part, matching
// the original source's Quaternion(const Vector3&, float) constructor
// used to lift angularVelocity into a pure quaternion for the spin
// update.
func NewQuat(v Vec3, w float32) Quat { return Quat{W: w, V: v} }

// MulQuat is the Hamilton product a*b.
func MulQuat(a, b Quat) Quat {
	aw, av := a.W, a.V
	bw, bv := b.W, b.V
	return Quat{
		W: aw*bw - Dot(av, bv),
		V: Add(Add(Scale(bv, aw), Scale(av, bw)), Cross(av, bv)),
	}
}

func AddQuat(a, b Quat) Quat { return Quat{W: a.W + b.W, V: Add(a.V, b.V)} }
func ScaleQuat(a Quat, s float32) Quat { return Quat{W: a.W * s, V: Scale(a.V, s)} }
func ConjugateQuat(a Quat) Quat { return Quat{W: a.W, V: Scale(a.V, -1)} }

func LengthQuat(q Quat) float32 {
	return float32(math.Sqrt(float64(q.W*q.W + Dot(q.V, q.V))))
}

// NormalizeQuat renormalizes q, returning the identity quaternion for
// a degenerate (near-zero-length) input.
func NormalizeQuat(q Quat) Quat {
	l := LengthQuat(q)
	if l <= NearZero {
		return IdentityQuat()
	}
	return ScaleQuat(q, 1/l)
}

// QuatToMat3 converts a unit quaternion to its equivalent rotation
// matrix using the standard identities.
func QuatToMat3(q Quat) Mat3 {
	w, x, y, z := q.W, q.V[0], q.V[1], q.V[2]
	return Mat3{
		1 - 2*y*y - 2*z*z, 2*x*y + 2*w*z, 2*x*z - 2*w*y,
		2*x*y - 2*w*z, 1 - 2*x*x - 2*z*z, 2*y*z + 2*w*x,
		2*x*z + 2*w*y, 2*y*z - 2*w*x, 1 - 2*x*x - 2*y*y,
	}
}

// FromAxisAngle builds a unit quaternion representing a rotation of
// angle radians about axis (which need not be normalized).
func FromAxisAngle(axis Vec3, angle float32) Quat {
	a := Normalize(axis)
	s := float32(math.Sin(float64(angle) / 2))
	c := float32(math.Cos(float64(angle) / 2))
	return NormalizeQuat(Quat{W: c, V: Scale(a, s)})
}

// FromEulerAngles builds a quaternion from pitch (X), yaw (Y) and
// roll (Z) angles in radians, applied in that order.
func FromEulerAngles(pitch, yaw, roll float32) Quat {
	qx := FromAxisAngle(Vec3{1, 0, 0}, pitch)
	qy := FromAxisAngle(Vec3{0, 1, 0}, yaw)
	qz := FromAxisAngle(Vec3{0, 0, 1}, roll)
	return NormalizeQuat(MulQuat(qz, MulQuat(qy, qx)))
}

// ToEulerAngles extracts pitch/yaw/roll (radians) from a unit
// quaternion using the standard asin/atan2 decomposition, clamping
// the gimbal-lock case.
func ToEulerAngles(q Quat) Vec3 {
	w, x, y, z := q.W, q.V[0], q.V[1], q.V[2]

	// Yaw (Y) comes from the asin term, clamped at gimbal lock.
	siny := 2 * (w*y - z*x)
	var pitch, yaw, roll float64
	if siny >= 1 {
		yaw = math.Pi / 2
	} else if siny <= -1 {
		yaw = -math.Pi / 2
	} else {
		yaw = math.Asin(float64(siny))
	}

	sinxCosy := 2 * (w*x + y*z)
	cosxCosy := 1 - 2*(x*x+y*y)
	pitch = math.Atan2(float64(sinxCosy), float64(cosxCosy))

	sinzCosy := 2 * (w*z + x*y)
	coszCosy := 1 - 2*(y*y+z*z)
	roll = math.Atan2(float64(sinzCosy), float64(coszCosy))

	return Vec3{float32(pitch), float32(yaw), float32(roll)}
}
