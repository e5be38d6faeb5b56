// Package body implements a single rigid body's kinematic and mass
// state, grounded on _examples/original_source/src/RigidBody.h/.cpp,
// generalized from raw C++ fields into a Go value-ish struct operated
// on through pointer-receiver methods (matching the teacher's own
// component style in internal/components/rigidbody.go: a plain struct
// with a handful of mutating methods, no getters/setters ceremony).
package body

import "rigid3d/internal/vecmath"

// ShapeKind tags which collision shape a Body carries. A Body has
// exactly one active shape at a time; HalfExtents is shared by Box
// and OrientedBox (they differ only in whether orientation
// participates in collision), Radius is only meaningful for Sphere.
type ShapeKind int

const (
	Sphere ShapeKind = iota
	Box
	OrientedBox
)

func (k ShapeKind) String() string {
	switch k {
	case Sphere:
		return "Sphere"
	case Box:
		return "Box"
	case OrientedBox:
		return "OrientedBox"
	default:
		return "Unknown"
	}
}

// Shape is the tagged-variant collision shape carried by a Body, per
// the spec's redesign note: one tag, queried once at dispatch time
// instead of a shape enum plus always-present radius/halfExtents
// fields.
type Shape struct {
	Kind        ShapeKind
	Radius      float32
	HalfExtents vecmath.Vec3
}

// Body is a single rigid body: kinematic state, mass properties,
// collision shape and material.
type Body struct {
	Position        vecmath.Vec3
	Velocity        vecmath.Vec3
	Orientation     vecmath.Quat
	AngularVelocity vecmath.Vec3

	Mass             float32
	InvMass          float32
	InvInertiaTensor vecmath.Mat3

	Shape Shape

	Restitution float32
	Friction    float32

	ForceAccum  vecmath.Vec3
	TorqueAccum vecmath.Vec3
}

// New returns a Body with the defaults of the original source: static
// (mass 0), unit sphere of radius 1, restitution 0.3, friction 0.5.
func New() *Body {
	return &Body{
		Orientation: vecmath.IdentityQuat(),
		Restitution: 0.3,
		Friction:    0.5,
		Shape: Shape{
			Kind:        Sphere,
			Radius:      1,
			HalfExtents: vecmath.Vec3{0.5, 0.5, 0.5},
		},
	}
}

// IsStatic reports whether the body is immovable (mass <= 0).
func (b *Body) IsStatic() bool { return b.InvMass == 0 }

// SetMass sets the body's mass and precomputes its inverse. A
// non-positive mass makes the body static: InvMass and
// InvInertiaTensor both become zero. A positive mass gets unit
// inverse inertia (identity tensor), per the contract's fixed-inertia
// policy — see SPEC_FULL.md's Open Question decisions.
func (b *Body) SetMass(m float32) {
	b.Mass = m
	if m <= 0 {
		b.InvMass = 0
		b.InvInertiaTensor = vecmath.ZeroMat3()
		return
	}
	b.InvMass = 1 / m
	b.InvInertiaTensor = vecmath.Identity3()
}

// ApplyForce accumulates force at the centre of mass.
func (b *Body) ApplyForce(f vecmath.Vec3) {
	b.ForceAccum = vecmath.Add(b.ForceAccum, f)
}

// ApplyForceAt accumulates force and the torque it induces about the
// centre of mass from being applied at worldPoint.
func (b *Body) ApplyForceAt(f, worldPoint vecmath.Vec3) {
	b.ForceAccum = vecmath.Add(b.ForceAccum, f)
	offset := vecmath.Sub(worldPoint, b.Position)
	b.TorqueAccum = vecmath.Add(b.TorqueAccum, vecmath.Cross(offset, f))
}

// ApplyTorque accumulates torque directly.
func (b *Body) ApplyTorque(t vecmath.Vec3) {
	b.TorqueAccum = vecmath.Add(b.TorqueAccum, t)
}

// ClearForces zeroes both accumulators; called automatically at the
// end of Integrate, exposed so callers can discard pending forces
// without stepping (e.g. on scene reset).
func (b *Body) ClearForces() {
	b.ForceAccum = vecmath.Vec3{}
	b.TorqueAccum = vecmath.Vec3{}
}

// Integrate advances position, velocity, orientation and angular
// velocity by dt using the accumulated forces/torques, then clears
// them. Static bodies (InvMass == 0) are left untouched.
func (b *Body) Integrate(dt float32) {
	if b.InvMass == 0 {
		return
	}

	accel := vecmath.Scale(b.ForceAccum, b.InvMass)

	// x = x0 + v0*dt + 0.5*a*dt^2
	b.Position = vecmath.Add(b.Position,
		vecmath.Add(vecmath.Scale(b.Velocity, dt), vecmath.Scale(accel, 0.5*dt*dt)))
	b.Velocity = vecmath.Add(b.Velocity, vecmath.Scale(accel, dt))

	angularAccel := vecmath.MulMat3Vec3(b.InvInertiaTensor, b.TorqueAccum)
	b.AngularVelocity = vecmath.Add(b.AngularVelocity, vecmath.Scale(angularAccel, dt))

	// Semi-implicit quaternion spin: q += 0.5 * omega_q * q * dt, renormalized.
	spin := vecmath.NewQuat(b.AngularVelocity, 0)
	delta := vecmath.ScaleQuat(vecmath.MulQuat(spin, b.Orientation), 0.5*dt)
	b.Orientation = vecmath.NormalizeQuat(vecmath.AddQuat(b.Orientation, delta))

	b.ClearForces()
}
