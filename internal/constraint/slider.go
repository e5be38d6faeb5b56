package constraint

import (
	"rigid3d/internal/body"
	"rigid3d/internal/vecmath"
)

// Slider is the two-body prismatic joint: point-to-point row plus
// axis-alignment row (shared with Hinge) plus a translational row
// penalising any separation component along the shared axis,
// grounded on SliderConstraint in
// _examples/original_source/src/Constraints.cpp.
type Slider struct {
	A, B   *body.Body
	PivotA vecmath.Vec3
	PivotB vecmath.Vec3
	AxisA  vecmath.Vec3
	AxisB  vecmath.Vec3

	worldPivotA, worldPivotB vecmath.Vec3
	worldAxisA, worldAxisB   vecmath.Vec3
}

func NewSlider(a, b *body.Body, pivotA, pivotB, axisA, axisB vecmath.Vec3) *Slider {
	return &Slider{A: a, B: b, PivotA: pivotA, PivotB: pivotB, AxisA: axisA, AxisB: axisB}
}

func (c *Slider) PreSolve(dt float32) {
	c.worldPivotA = worldAnchor(c.A, c.PivotA)
	c.worldPivotB = worldAnchor(c.B, c.PivotB)
	c.worldAxisA = worldAxis(c.A, c.AxisA)
	c.worldAxisB = worldAxis(c.B, c.AxisB)
}

func (c *Slider) Solve(dt float32) {
	solvePointRow(c.A, c.B, c.worldPivotA, c.worldPivotB, dt)
	solveAxisAlignmentRow(c.A, c.B, c.worldAxisA, c.worldAxisB, dt)

	em, ok := effectiveMass(c.A.InvMass, c.B.InvMass)
	if !ok {
		return
	}
	separation := vecmath.Sub(c.worldPivotB, c.worldPivotA)
	translationalError := vecmath.Dot(separation, c.worldAxisA)
	lambda := -em * translationalError / dt
	applyLinearImpulse(c.A, c.B, c.worldAxisA, lambda)
}

func (c *Slider) PostSolve() {}
