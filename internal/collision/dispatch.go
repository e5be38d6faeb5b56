package collision

import (
	"rigid3d/internal/body"
	"rigid3d/internal/vecmath"
)

// Dispatch runs the appropriate narrow-phase test for the shape pair
// carried by a and b, the 3x3 table of procedures called for by
// SPEC_FULL.md's redesign note on shape polymorphism, mirroring the
// branch structure of
// _examples/original_source/src/World.cpp's PhysicsWorld::Step:
// Sphere-Sphere, Box-Box (axis-aligned), OrientedBox-OrientedBox
// (full SAT), and any Box/OrientedBox mix (SAT with the Box side
// synthesized as an identity-rotation OBB). Sphere paired with a box
// shape has no test in the source and reports no contact rather than
// guessing a formula.
func Dispatch(a, b *body.Body) (Contact, bool) {
	ak, bk := a.Shape.Kind, b.Shape.Kind

	switch {
	case ak == body.Sphere && bk == body.Sphere:
		return SphereVsSphere(a.Position, a.Shape.Radius, b.Position, b.Shape.Radius)

	case ak == body.Sphere || bk == body.Sphere:
		return Contact{}, false

	case ak == body.Box && bk == body.Box:
		return AABBVsAABB(aabbOf(a), aabbOf(b))

	case ak == body.OrientedBox && bk == body.OrientedBox:
		return OBBVsOBB(obbOf(a), obbOf(b))

	default:
		// Exactly one of a, b is an OrientedBox; the other is a Box.
		return OBBVsOBB(obbOf(a), obbOf(b))
	}
}

func aabbOf(b *body.Body) AABB {
	return AABB{Center: b.Position, HalfExtents: b.Shape.HalfExtents}
}

// obbOf builds the OBB a body presents to the SAT test: a plain Box
// ignores orientation (identity rotation, matching the spec's "the
// two box variants differ only in whether the orientation is used in
// collision" — equivalent to AABBAsOBB), an OrientedBox uses its
// current orientation.
func obbOf(b *body.Body) OBB {
	if b.Shape.Kind == body.OrientedBox {
		return OBB{Center: b.Position, HalfExtents: b.Shape.HalfExtents, Rotation: vecmath.QuatToMat3(b.Orientation)}
	}
	return AABBAsOBB(aabbOf(b))
}
