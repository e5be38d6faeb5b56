package body

import (
	"math"
	"testing"

	"rigid3d/internal/vecmath"
)

const eps = 1e-5

func approxEq(a, b float32) bool {
	return math.Abs(float64(a-b)) <= eps
}

func TestSetMassStaticAtNonPositive(t *testing.T) {
	b := New()
	b.SetMass(0)
	if b.InvMass != 0 {
		t.Fatalf("InvMass = %v, want 0 for mass=0", b.InvMass)
	}
	if !b.IsStatic() {
		t.Fatalf("body with mass=0 should be static")
	}

	b.SetMass(-5)
	if b.InvMass != 0 {
		t.Fatalf("InvMass = %v, want 0 for negative mass", b.InvMass)
	}
}

func TestSetMassDynamicHasUnitInertia(t *testing.T) {
	b := New()
	b.SetMass(2)
	if !approxEq(b.InvMass, 0.5) {
		t.Fatalf("InvMass = %v, want 0.5", b.InvMass)
	}
	id := vecmath.Identity3()
	for i := range id {
		if !approxEq(b.InvInertiaTensor[i], id[i]) {
			t.Fatalf("InvInertiaTensor[%d] = %v, want identity", i, b.InvInertiaTensor[i])
		}
	}
}

func TestStaticBodyUnaffectedByForceOrIntegrate(t *testing.T) {
	b := New()
	b.SetMass(0)
	b.ApplyForce(vecmath.Vec3{10, 0, 0})
	b.Integrate(1)

	if b.Position != (vecmath.Vec3{}) {
		t.Errorf("static body moved: position = %v", b.Position)
	}
	if b.Velocity != (vecmath.Vec3{}) {
		t.Errorf("static body accelerated: velocity = %v", b.Velocity)
	}
}

func TestFreeFallOneSecond(t *testing.T) {
	b := New()
	b.SetMass(1)
	gravity := vecmath.Vec3{0, -9.81, 0}
	b.ApplyForce(vecmath.Scale(gravity, b.Mass))
	b.Integrate(1)

	if !approxEq(b.Position[1], -4.905) {
		t.Errorf("position.y = %v, want -4.905", b.Position[1])
	}
	if !approxEq(b.Velocity[1], -9.81) {
		t.Errorf("velocity.y = %v, want -9.81", b.Velocity[1])
	}
}

func TestConstantForceOneSecond(t *testing.T) {
	b := New()
	b.SetMass(1)
	b.ApplyForce(vecmath.Vec3{10, 0, 0})
	b.Integrate(1)

	if !approxEq(b.Position[0], 5) {
		t.Errorf("position.x = %v, want 5", b.Position[0])
	}
	if !approxEq(b.Velocity[0], 10) {
		t.Errorf("velocity.x = %v, want 10", b.Velocity[0])
	}
}

func TestConstantTorqueOneSecondUnitInertia(t *testing.T) {
	b := New()
	b.SetMass(1)
	b.ApplyTorque(vecmath.Vec3{0, 0, 5})
	b.Integrate(1)

	if !approxEq(b.AngularVelocity[2], 5) {
		t.Errorf("angularVelocity.z = %v, want 5", b.AngularVelocity[2])
	}
}

func TestIntegrateZeroIsNoOpUpToAccumulatorReset(t *testing.T) {
	b := New()
	b.SetMass(1)
	b.Position = vecmath.Vec3{1, 2, 3}
	b.Velocity = vecmath.Vec3{4, 5, 6}
	b.ApplyForce(vecmath.Vec3{1, 1, 1})

	b.Integrate(0)

	if b.Position != (vecmath.Vec3{1, 2, 3}) {
		t.Errorf("position changed on dt=0 integrate: %v", b.Position)
	}
	if b.Velocity != (vecmath.Vec3{4, 5, 6}) {
		t.Errorf("velocity changed on dt=0 integrate: %v", b.Velocity)
	}
	if b.ForceAccum != (vecmath.Vec3{}) {
		t.Errorf("forceAccum not reset after integrate: %v", b.ForceAccum)
	}
}

func TestApplyForceThenClearForcesLeavesAccumulatorsZero(t *testing.T) {
	b := New()
	b.ApplyForce(vecmath.Vec3{3, 4, 5})
	b.ApplyTorque(vecmath.Vec3{1, 1, 1})
	b.ClearForces()

	if b.ForceAccum != (vecmath.Vec3{}) || b.TorqueAccum != (vecmath.Vec3{}) {
		t.Errorf("accumulators not zero after ClearForces: force=%v torque=%v", b.ForceAccum, b.TorqueAccum)
	}
}

func TestOrientationStaysUnitAfterIntegrate(t *testing.T) {
	b := New()
	b.SetMass(1)
	b.AngularVelocity = vecmath.Vec3{1, 2, 3}
	for i := 0; i < 50; i++ {
		b.Integrate(1.0 / 60)
	}

	length := vecmath.LengthQuat(b.Orientation)
	if math.Abs(float64(length)-1) > 1e-5 {
		t.Errorf("|orientation| = %v after repeated integrate, want ~1", length)
	}
}

func TestApplyForceAtAddsTorque(t *testing.T) {
	b := New()
	b.Position = vecmath.Vec3{}
	b.ApplyForceAt(vecmath.Vec3{0, 0, 1}, vecmath.Vec3{1, 0, 0})

	want := vecmath.Cross(vecmath.Vec3{1, 0, 0}, vecmath.Vec3{0, 0, 1})
	if b.TorqueAccum != want {
		t.Errorf("torqueAccum = %v, want %v", b.TorqueAccum, want)
	}
}
