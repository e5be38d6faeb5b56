// Package resolver applies normal and friction impulses plus positional
// correction to a pair of colliding bodies, following the four-step
// process of SPEC_FULL.md §4.5.
package resolver

import (
	"math"

	"rigid3d/internal/body"
	"rigid3d/internal/vecmath"
)

// Resolve mutates a and b's velocities and positions in response to a
// contact between them. normal points from a towards b.
//
// Grounded on the ResolveAABBCollision/ResolveOBBCollision/
// ResolveOBBAABBCollision trio in
// _examples/original_source/src/Collision.cpp, which are identical
// apart from their argument types. Two deliberate deviations, recorded
// as SPEC_FULL.md Open Question Decisions:
//
//  1. Positional correction uses the slop+percent form (percent=0.2,
//     slop=0.01) rather than the 50/50 split also present in the
//     source's sphere-sphere resolver, since it is the form used by
//     the three box resolvers and yields less jitter at rest.
//  2. The normal impulse is NOT scaled by 1/(1+frictionCoeff). That
//     factor in the source is a bug (friction should clamp a separate
//     tangential impulse, not shrink the normal one) and is not
//     replicated here. Friction is instead a distinct clamped-tangent
//     impulse, step 4 below.
func Resolve(a, b *body.Body, normal vecmath.Vec3, penetration, restitution, frictionCoeff float32) {
	invMassSum := a.InvMass + b.InvMass
	if invMassSum == 0 {
		return
	}

	positionalCorrection(a, b, normal, penetration, invMassSum)

	rv := vecmath.Sub(b.Velocity, a.Velocity)
	vn := vecmath.Dot(rv, normal)
	if vn > 0 {
		return
	}

	j := -(1 + restitution) * vn / invMassSum
	impulse := vecmath.Scale(normal, j)
	a.Velocity = vecmath.Sub(a.Velocity, vecmath.Scale(impulse, a.InvMass))
	b.Velocity = vecmath.Add(b.Velocity, vecmath.Scale(impulse, b.InvMass))

	applyFriction(a, b, normal, j, invMassSum, frictionCoeff)
}

const (
	positionalCorrectionPercent = 0.2
	positionalCorrectionSlop    = 0.01
)

func positionalCorrection(a, b *body.Body, normal vecmath.Vec3, penetration, invMassSum float32) {
	depth := penetration - positionalCorrectionSlop
	if depth < 0 {
		depth = 0
	}
	magnitude := depth * positionalCorrectionPercent / invMassSum
	correction := vecmath.Scale(normal, magnitude)
	a.Position = vecmath.Sub(a.Position, vecmath.Scale(correction, a.InvMass))
	b.Position = vecmath.Add(b.Position, vecmath.Scale(correction, b.InvMass))
}

func applyFriction(a, b *body.Body, normal vecmath.Vec3, j, invMassSum, frictionCoeff float32) {
	rv := vecmath.Sub(b.Velocity, a.Velocity)
	vn := vecmath.Dot(rv, normal)
	tangentVel := vecmath.Sub(rv, vecmath.Scale(normal, vn))

	tangentSpeed := vecmath.Length(tangentVel)
	if tangentSpeed <= vecmath.NearZero {
		return
	}

	tau := vecmath.Scale(tangentVel, 1/tangentSpeed)
	jt := -tangentSpeed / invMassSum

	maxFriction := frictionCoeff * float32(math.Abs(float64(j)))
	if jt < -maxFriction {
		jt = -maxFriction
	} else if jt > maxFriction {
		jt = maxFriction
	}

	frictionImpulse := vecmath.Scale(tau, jt)
	a.Velocity = vecmath.Sub(a.Velocity, vecmath.Scale(frictionImpulse, a.InvMass))
	b.Velocity = vecmath.Add(b.Velocity, vecmath.Scale(frictionImpulse, b.InvMass))
}
