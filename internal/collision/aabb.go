package collision

import "rigid3d/internal/vecmath"

// AABBVsAABB tests two axis-aligned boxes. On a tie between two axes'
// overlap, x wins over y, which wins over z — matching the
// if/else-if/else chain in
// _examples/original_source/src/Collision.cpp's ComputeAABBCollision
// (see the supplementary clarification after SPEC_FULL.md's Open
// Question Decisions).
func AABBVsAABB(a, b AABB) (Contact, bool) {
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()

	overlapX := minf(aMax[0]-bMin[0], bMax[0]-aMin[0])
	overlapY := minf(aMax[1]-bMin[1], bMax[1]-aMin[1])
	overlapZ := minf(aMax[2]-bMin[2], bMax[2]-aMin[2])

	if overlapX <= 0 || overlapY <= 0 || overlapZ <= 0 {
		return Contact{}, false
	}

	var penetration float32
	var normal vecmath.Vec3

	switch {
	case overlapX <= overlapY && overlapX <= overlapZ:
		penetration = overlapX
		normal = vecmath.Vec3{sign(aMax[0]-bMin[0] < bMax[0]-aMin[0]), 0, 0}
	case overlapY <= overlapZ:
		penetration = overlapY
		normal = vecmath.Vec3{0, sign(aMax[1]-bMin[1] < bMax[1]-aMin[1]), 0}
	default:
		penetration = overlapZ
		normal = vecmath.Vec3{0, 0, sign(aMax[2]-bMin[2] < bMax[2]-aMin[2])}
	}

	return Contact{Normal: normal, Penetration: penetration}, true
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func sign(positive bool) float32 {
	if positive {
		return 1
	}
	return -1
}
