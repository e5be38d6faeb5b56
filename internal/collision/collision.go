// Package collision implements the narrow-phase intersection tests:
// sphere-vs-sphere, AABB-vs-AABB, and OBB-vs-OBB via the Separating
// Axis Theorem, grounded on
// _examples/original_source/src/Collision.cpp, Obb.h/.cpp and AABB.h,
// with cross-checks against
// _examples/MironCo-mirgo_engine/internal/physics/{aabb,obb}.go for
// the Go-idiomatic shape of the same tests (value-type shapes,
// plain functions returning a bool plus out-params turned into a
// single Contact-or-false return).
package collision

import "rigid3d/internal/vecmath"

// Contact is the result of a narrow-phase test: Normal points from
// shape A to shape B, Penetration is the positive overlap depth along
// Normal.
type Contact struct {
	Normal      vecmath.Vec3
	Penetration float32
}

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Center      vecmath.Vec3
	HalfExtents vecmath.Vec3
}

func (a AABB) Min() vecmath.Vec3 { return vecmath.Sub(a.Center, a.HalfExtents) }
func (a AABB) Max() vecmath.Vec3 { return vecmath.Add(a.Center, a.HalfExtents) }

// OBB is an oriented bounding box; Rotation maps local axes to world
// space (worldPoint = Center + Rotation*localPoint).
type OBB struct {
	Center      vecmath.Vec3
	HalfExtents vecmath.Vec3
	Rotation    vecmath.Mat3
}

// AABBAsOBB synthesizes an identity-orientation OBB from an AABB, per
// SPEC_FULL.md: "OBB-vs-AABB is reduced to OBB-vs-OBB by synthesizing
// an OBB with identity orientation from the AABB."
func AABBAsOBB(a AABB) OBB {
	return OBB{Center: a.Center, HalfExtents: a.HalfExtents, Rotation: vecmath.Identity3()}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
