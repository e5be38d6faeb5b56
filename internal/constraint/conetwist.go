package constraint

import (
	"math"

	"rigid3d/internal/body"
	"rigid3d/internal/vecmath"
)

// ConeTwist is the two-body spherical joint with angular limits: a
// point-to-point row, a swing row activated once the angle between
// the two world axes exceeds min(SwingSpan1, SwingSpan2), and a twist
// row activated once the twist angle about AxisA exceeds TwistSpan.
// Grounded on ConeTwistConstraint in
// _examples/original_source/src/Constraints.cpp; spans default to pi
// (unconstrained), matching the source's constructor.
type ConeTwist struct {
	A, B   *body.Body
	PivotA vecmath.Vec3
	PivotB vecmath.Vec3
	AxisA  vecmath.Vec3
	AxisB  vecmath.Vec3

	SwingSpan1 float32
	SwingSpan2 float32
	TwistSpan  float32

	worldPivotA, worldPivotB vecmath.Vec3
	worldAxisA, worldAxisB   vecmath.Vec3
}

func NewConeTwist(a, b *body.Body, pivotA, pivotB, axisA, axisB vecmath.Vec3) *ConeTwist {
	return &ConeTwist{
		A: a, B: b, PivotA: pivotA, PivotB: pivotB, AxisA: axisA, AxisB: axisB,
		SwingSpan1: math.Pi, SwingSpan2: math.Pi, TwistSpan: math.Pi,
	}
}

func (c *ConeTwist) PreSolve(dt float32) {
	c.worldPivotA = worldAnchor(c.A, c.PivotA)
	c.worldPivotB = worldAnchor(c.B, c.PivotB)
	c.worldAxisA = worldAxis(c.A, c.AxisA)
	c.worldAxisB = worldAxis(c.B, c.AxisB)
}

func (c *ConeTwist) Solve(dt float32) {
	solvePointRow(c.A, c.B, c.worldPivotA, c.worldPivotB, dt)
	c.solveSwing(dt)
	c.solveTwist(dt)
}

func (c *ConeTwist) PostSolve() {}

func (c *ConeTwist) solveSwing(dt float32) {
	cosAngle := clampf(vecmath.Dot(c.worldAxisA, c.worldAxisB), -1, 1)
	swingAngle := float32(math.Acos(float64(cosAngle)))
	if swingAngle <= 0 {
		return
	}

	cross := vecmath.Cross(c.worldAxisA, c.worldAxisB)
	swingAxis := vecmath.Normalize(cross)
	if swingAxis == (vecmath.Vec3{}) {
		return
	}

	limit := minf(c.SwingSpan1, c.SwingSpan2)
	swingError := swingAngle - limit
	if swingError <= 0 {
		return
	}

	invA, invB := diagInvInertia(c.A), diagInvInertia(c.B)
	em, ok := effectiveMass(invA, invB)
	if !ok {
		return
	}
	lambda := -em * swingError / dt
	applyAngularImpulse(c.A, c.B, invA, invB, swingAxis, lambda)
}

func (c *ConeTwist) solveTwist(dt float32) {
	cross := vecmath.Cross(c.worldAxisA, c.worldAxisB)
	twistAngle := float32(math.Atan2(float64(vecmath.Length(cross)), float64(vecmath.Dot(c.worldAxisA, c.worldAxisB))))
	twistError := absf(twistAngle) - c.TwistSpan
	if twistError <= 0 {
		return
	}

	invA, invB := diagInvInertia(c.A), diagInvInertia(c.B)
	em, ok := effectiveMass(invA, invB)
	if !ok {
		return
	}
	lambda := -em * twistError / dt
	applyAngularImpulse(c.A, c.B, invA, invB, c.worldAxisA, lambda)
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
