package collision

import (
	"math"

	"rigid3d/internal/vecmath"
)

// OBBVsOBB runs the full 15-axis Separating Axis Theorem test: 3 face
// normals of A, 3 of B, and all 9 edge-edge cross-product axes (every
// (i,j) pair of A's and B's local axes, i==j included). Degenerate
// cross-product axes (length below vecmath.NearZero, meaning the two
// edges are parallel) are skipped rather than treated as a separating
// axis, per SPEC_FULL.md §4.4.
//
// Unlike _examples/original_source/src/Collision.cpp's
// ComputeOBBCollision, the returned normal is oriented to always
// point from A towards B (the original leaves the sign wherever the
// winning axis direction happened to land); see the flip at the end
// of this function.
func OBBVsOBB(a, b OBB) (Contact, bool) {
	// r = Rb^T * Ra: row k is B's k-th axis expressed in A's local space.
	r := vecmath.MulMat3(vecmath.Transpose3(b.Rotation), a.Rotation)
	worldDelta := vecmath.Sub(b.Center, a.Center)
	t := vecmath.MulMat3Vec3(vecmath.Transpose3(a.Rotation), worldDelta)

	minOverlap := float32(math.MaxFloat32)
	var minNormal vecmath.Vec3

	axisUnit := func(i int) vecmath.Vec3 {
		v := vecmath.Vec3{}
		v[i] = 1
		return v
	}

	// A's face normals.
	for i := 0; i < 3; i++ {
		rr := a.HalfExtents[i] +
			b.HalfExtents[0]*absf(vecmath.At3(r, 0, i)) +
			b.HalfExtents[1]*absf(vecmath.At3(r, 1, i)) +
			b.HalfExtents[2]*absf(vecmath.At3(r, 2, i))
		overlap := rr - absf(t[i])
		if overlap < 0 {
			return Contact{}, false
		}
		if overlap < minOverlap {
			minOverlap = overlap
			minNormal = axisUnit(i)
		}
	}

	// B's face normals, expressed in A's local space via r's rows.
	for i := 0; i < 3; i++ {
		rr := b.HalfExtents[i] +
			a.HalfExtents[0]*absf(vecmath.At3(r, i, 0)) +
			a.HalfExtents[1]*absf(vecmath.At3(r, i, 1)) +
			a.HalfExtents[2]*absf(vecmath.At3(r, i, 2))
		overlap := rr - absf(t[0]*vecmath.At3(r, i, 0)+t[1]*vecmath.At3(r, i, 1)+t[2]*vecmath.At3(r, i, 2))
		if overlap < 0 {
			return Contact{}, false
		}
		if overlap < minOverlap {
			minOverlap = overlap
			minNormal = vecmath.Vec3{vecmath.At3(r, i, 0), vecmath.At3(r, i, 1), vecmath.At3(r, i, 2)}
		}
	}

	// Edge-edge cross product axes: all 9 (i,j) pairs, including i==j
	// (edge i of A crossed with the correspondingly-indexed edge of B
	// is not generally parallel to edge i of A itself). The NearZero
	// length check below already discards any axis that collapses to
	// zero because the two edges happen to be parallel.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			colJ := vecmath.Vec3{vecmath.At3(r, j, 0), vecmath.At3(r, j, 1), vecmath.At3(r, j, 2)}
			axis := vecmath.Cross(axisUnit(i), colJ)
			length := vecmath.Length(axis)
			if length < vecmath.NearZero {
				continue
			}
			axis = vecmath.Scale(axis, 1/length)

			i1, i2 := (i+1)%3, (i+2)%3
			rr := a.HalfExtents[i]*absf(axis[i]) + a.HalfExtents[i1]*absf(axis[i1]) + a.HalfExtents[i2]*absf(axis[i2])
			for k := 0; k < 3; k++ {
				rowK := vecmath.Vec3{vecmath.At3(r, k, 0), vecmath.At3(r, k, 1), vecmath.At3(r, k, 2)}
				rr += b.HalfExtents[k] * absf(vecmath.Dot(axis, rowK))
			}
			overlap := rr - absf(vecmath.Dot(t, axis))
			if overlap < 0 {
				return Contact{}, false
			}
			if overlap < minOverlap {
				minOverlap = overlap
				minNormal = axis
			}
		}
	}

	normal := vecmath.MulMat3Vec3(a.Rotation, minNormal)
	if vecmath.Dot(normal, worldDelta) < 0 {
		normal = vecmath.Scale(normal, -1)
	}

	return Contact{Normal: normal, Penetration: minOverlap}, true
}
