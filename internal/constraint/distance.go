package constraint

import (
	"rigid3d/internal/body"
	"rigid3d/internal/vecmath"
)

// Distance is the two-body rod/rope joint: a single positional row
// driving the separation between two body-local anchors to a
// prescribed length, grounded on DistanceConstraint in
// _examples/original_source/src/Constraints.cpp.
type Distance struct {
	A, B   *body.Body
	PivotA vecmath.Vec3
	PivotB vecmath.Vec3
	Length float32

	worldA, worldB vecmath.Vec3
}

func NewDistance(a, b *body.Body, pivotA, pivotB vecmath.Vec3, length float32) *Distance {
	return &Distance{A: a, B: b, PivotA: pivotA, PivotB: pivotB, Length: length}
}

func (c *Distance) PreSolve(dt float32) {
	c.worldA = worldAnchor(c.A, c.PivotA)
	c.worldB = worldAnchor(c.B, c.PivotB)
}

func (c *Distance) Solve(dt float32) {
	em, ok := effectiveMass(c.A.InvMass, c.B.InvMass)
	if !ok {
		return
	}
	current := vecmath.Sub(c.worldB, c.worldA)
	currentLength := vecmath.Length(current)
	errorLength := currentLength - c.Length

	jacobian := vecmath.Normalize(current)
	if jacobian == (vecmath.Vec3{}) {
		return
	}

	lambda := -em * errorLength / dt
	applyLinearImpulse(c.A, c.B, jacobian, lambda)
}

func (c *Distance) PostSolve() {}
