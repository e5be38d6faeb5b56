package constraint

import (
	"rigid3d/internal/body"
	"rigid3d/internal/vecmath"
)

// Hinge is the two-body articulated revolute joint: a positional row
// holding two anchors coincident, plus a rotational row aligning two
// body-local axes, grounded on the two-body HingeConstraint in
// _examples/original_source/src/Constraints.cpp.
type Hinge struct {
	A, B   *body.Body
	PivotA vecmath.Vec3
	PivotB vecmath.Vec3
	AxisA  vecmath.Vec3
	AxisB  vecmath.Vec3

	worldPivotA, worldPivotB vecmath.Vec3
	worldAxisA, worldAxisB   vecmath.Vec3
}

func NewHinge(a, b *body.Body, pivotA, pivotB, axisA, axisB vecmath.Vec3) *Hinge {
	return &Hinge{A: a, B: b, PivotA: pivotA, PivotB: pivotB, AxisA: axisA, AxisB: axisB}
}

func (c *Hinge) PreSolve(dt float32) {
	c.worldPivotA = worldAnchor(c.A, c.PivotA)
	c.worldPivotB = worldAnchor(c.B, c.PivotB)
	c.worldAxisA = worldAxis(c.A, c.AxisA)
	c.worldAxisB = worldAxis(c.B, c.AxisB)
}

func (c *Hinge) Solve(dt float32) {
	solvePointRow(c.A, c.B, c.worldPivotA, c.worldPivotB, dt)
	solveAxisAlignmentRow(c.A, c.B, c.worldAxisA, c.worldAxisB, dt)
}

func (c *Hinge) PostSolve() {}

// solveAxisAlignmentRow drives worldAxisA towards worldAxisB using
// their cross product as the error, shared by Hinge and Slider.
func solveAxisAlignmentRow(a, b *body.Body, worldAxisA, worldAxisB vecmath.Vec3, dt float32) {
	invA, invB := diagInvInertia(a), diagInvInertia(b)
	em, ok := effectiveMass(invA, invB)
	if !ok {
		return
	}
	error := vecmath.Cross(worldAxisA, worldAxisB)
	length := vecmath.Length(error)
	if length < vecmath.NearZero {
		return
	}
	jacobian := vecmath.Scale(error, 1/length)
	lambda := -em * length / dt
	applyAngularImpulse(a, b, invA, invB, jacobian, lambda)
}

// Driver is the single-body kinematic hinge: a host-pushed target
// angle, with no attached body pair and no Jacobian solve. It
// implements SPEC_FULL.md's redesign note of splitting the source's
// nullable-body HingeConstraint overload into a disjoint type, so it
// is structurally impossible to add one to a World's constraint list
// (World.AddConstraint takes constraint.Constraint; Driver does not
// implement that interface).
//
// Grounded on the single-body HingeConstraint(pivot, axis,
// angularVelocity, isRotating) constructor in
// _examples/original_source/src/Constraints.cpp, which the source
// calls a "door hinge".
type Driver struct {
	Pivot           vecmath.Vec3
	Axis            vecmath.Vec3
	AngularVelocity float32
	IsRotating      bool
	TargetAngle     float32
	CurrentAngle    float32
}

func NewDriver(pivot, axis vecmath.Vec3, angularVelocity float32, isRotating bool) *Driver {
	return &Driver{Pivot: pivot, Axis: axis, AngularVelocity: angularVelocity, IsRotating: isRotating}
}

// SetRotation sets the angle the host wants the driver to report,
// mirroring HingeConstraint::SetRotation.
func (d *Driver) SetRotation(angle float32) { d.TargetAngle = angle }

// Advance adds AngularVelocity*dt to CurrentAngle when IsRotating, for
// a driver that spins under its own angular velocity; TargetAngle is
// not consulted in that case. When IsRotating is false it snaps
// CurrentAngle to TargetAngle. Hosts that only want angle-snapping can
// ignore this and read TargetAngle directly.
func (d *Driver) Advance(dt float32) {
	if !d.IsRotating {
		d.CurrentAngle = d.TargetAngle
		return
	}
	d.CurrentAngle += d.AngularVelocity * dt
}
