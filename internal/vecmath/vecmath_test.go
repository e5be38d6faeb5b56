package vecmath

import (
	"math"
	"testing"
)

const eps = 1e-5

func approxEq(a, b float32) bool {
	return math.Abs(float64(a-b)) <= eps
}

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := Add(a, b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add(a,b) = %v, want (5,7,9)", got)
	}
	if got := Sub(b, a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub(b,a) = %v, want (3,3,3)", got)
	}
	if got := Dot(a, b); !approxEq(got, 32) {
		t.Errorf("Dot(a,b) = %v, want 32", got)
	}
	if got := Cross(Vec3{1, 0, 0}, Vec3{0, 1, 0}); got != (Vec3{0, 0, 1}) {
		t.Errorf("Cross(x,y) = %v, want z", got)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	if got := Normalize(Vec3{}); got != (Vec3{}) {
		t.Errorf("Normalize(0) = %v, want zero vector", got)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	v := Normalize(Vec3{3, 4, 0})
	if !approxEq(Length(v), 1) {
		t.Errorf("Length(normalize(v)) = %v, want 1", Length(v))
	}
}

func TestIdentityQuatToMat3(t *testing.T) {
	m := QuatToMat3(IdentityQuat())
	id := Identity3()
	for i := range m {
		if !approxEq(m[i], id[i]) {
			t.Fatalf("QuatToMat3(identity)[%d] = %v, want %v", i, m[i], id[i])
		}
	}
}

func TestQuatToMatrixRoundTripOnUnitVector(t *testing.T) {
	q := NormalizeQuat(FromAxisAngle(Vec3{0, 0, 1}, math.Pi/2))
	m := QuatToMat3(q)
	v := Vec3{1, 0, 0}
	rotated := MulMat3Vec3(m, v)

	inv := Transpose3(m) // rotation matrices are orthogonal: inverse == transpose
	back := MulMat3Vec3(inv, rotated)

	if !approxEq(back[0], v[0]) || !approxEq(back[1], v[1]) || !approxEq(back[2], v[2]) {
		t.Errorf("round trip through Quat.toMatrix and its inverse = %v, want %v", back, v)
	}
}

func TestMulMat3Identity(t *testing.T) {
	m := Mat3{2, 0, 0, 0, 3, 0, 0, 0, 4}
	got := MulMat3(m, Identity3())
	for i := range m {
		if !approxEq(got[i], m[i]) {
			t.Fatalf("m*I differs from m at index %d: %v vs %v", i, got[i], m[i])
		}
	}
}

func TestAt3DiagonalReadsMatchDiag3(t *testing.T) {
	m := Diag3(5)
	if got := At3(m, 0, 0); !approxEq(got, 5) {
		t.Errorf("At3(diag,0,0) = %v, want 5", got)
	}
	if got := At3(m, 0, 1); !approxEq(got, 0) {
		t.Errorf("At3(diag,0,1) = %v, want 0", got)
	}
}

func TestFromAxisAngleProducesUnitQuaternion(t *testing.T) {
	q := FromAxisAngle(Vec3{1, 1, 1}, 1.3)
	if !approxEq(LengthQuat(q), 1) {
		t.Errorf("|FromAxisAngle(...)| = %v, want 1", LengthQuat(q))
	}
}

func TestEulerRoundTrip(t *testing.T) {
	pitch, yaw, roll := float32(0.3), float32(-0.5), float32(0.2)
	q := FromEulerAngles(pitch, yaw, roll)
	back := ToEulerAngles(q)

	if !approxEq(back[0], pitch) || !approxEq(back[1], yaw) || !approxEq(back[2], roll) {
		t.Errorf("ToEulerAngles(FromEulerAngles(%v,%v,%v)) = %v", pitch, yaw, roll, back)
	}
}
