package constraint

import (
	"rigid3d/internal/body"
	"rigid3d/internal/vecmath"
)

// PointToPoint enforces coincidence of a body-local anchor on A with
// a body-local anchor on B (a ball joint), grounded on
// PointToPointConstraint in
// _examples/original_source/src/Constraints.cpp.
type PointToPoint struct {
	A, B   *body.Body
	PivotA vecmath.Vec3 // local-space anchor on A
	PivotB vecmath.Vec3 // local-space anchor on B

	worldA vecmath.Vec3
	worldB vecmath.Vec3
}

func NewPointToPoint(a, b *body.Body, pivotA, pivotB vecmath.Vec3) *PointToPoint {
	return &PointToPoint{A: a, B: b, PivotA: pivotA, PivotB: pivotB}
}

func (c *PointToPoint) PreSolve(dt float32) {
	c.worldA = worldAnchor(c.A, c.PivotA)
	c.worldB = worldAnchor(c.B, c.PivotB)
}

func (c *PointToPoint) Solve(dt float32) {
	solvePointRow(c.A, c.B, c.worldA, c.worldB, dt)
}

func (c *PointToPoint) PostSolve() {}

// solvePointRow drives the separation between worldA and worldB to
// zero, shared by every constraint that carries a positional row
// (PointToPoint, Hinge, Slider, Distance's generalisation, ConeTwist).
func solvePointRow(a, b *body.Body, worldA, worldB vecmath.Vec3, dt float32) {
	em, ok := effectiveMass(a.InvMass, b.InvMass)
	if !ok {
		return
	}
	error := vecmath.Sub(worldB, worldA)
	length := vecmath.Length(error)
	if length < vecmath.NearZero {
		return
	}
	jacobian := vecmath.Scale(error, 1/length)
	lambda := -em * length / dt
	applyLinearImpulse(a, b, jacobian, lambda)
}
