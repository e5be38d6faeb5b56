package collision

import (
	"math"

	"rigid3d/internal/vecmath"
)

// SphereVsSphere tests two spheres given their centres and radii. On
// coincident centres (|d| below vecmath.NearZero) it reports the
// boundary case from SPEC_FULL.md: penetration = rA+rB, normal
// defaults to +X.
func SphereVsSphere(aPos vecmath.Vec3, aRadius float32, bPos vecmath.Vec3, bRadius float32) (Contact, bool) {
	d := vecmath.Sub(bPos, aPos)
	distSq := vecmath.Dot(d, d)
	minDist := aRadius + bRadius
	minDistSq := minDist * minDist

	if distSq >= minDistSq {
		return Contact{}, false
	}

	dist := float32(math.Sqrt(float64(distSq)))
	if dist < vecmath.NearZero {
		return Contact{Normal: vecmath.Vec3{1, 0, 0}, Penetration: minDist}, true
	}

	normal := vecmath.Scale(d, 1/dist)
	return Contact{Normal: normal, Penetration: minDist - dist}, true
}
