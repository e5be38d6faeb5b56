// Package constraint implements the articulated-joint sub-solvers:
// point-to-point, hinge, slider, distance and cone-twist, plus the
// single-body kinematic hinge driver. All share the PreSolve/Solve/
// PostSolve pattern of SPEC_FULL.md §4.6, grounded on
// _examples/original_source/src/Constraints.h/.cpp.
//
// The original conflates an articulated two-body HingeConstraint with
// a host-driven single-body kinematic hinge via a nullable body
// pointer pair; SPEC_FULL.md's redesign note calls for splitting that
// into two disjoint types instead. Driver is that split-out type: it
// is never added to a World's constraint list, so nothing ever
// dereferences an absent body pair.
package constraint

import (
	"rigid3d/internal/body"
	"rigid3d/internal/vecmath"
)

// Constraint is the shared interface every articulated joint
// implements, matching the abstract base class's three-method
// contract from _examples/original_source/src/Constraints.h.
type Constraint interface {
	PreSolve(dt float32)
	Solve(dt float32)
	PostSolve()
}

// effectiveMass returns 1/(invA+invB), or 0 if both inverse
// quantities are zero (both bodies static on this row) — solvers
// check this and skip the row rather than divide by zero, per
// SPEC_FULL.md's "solvers must tolerate zero effective masses" rule.
func effectiveMass(invA, invB float32) (float32, bool) {
	sum := invA + invB
	if sum == 0 {
		return 0, false
	}
	return 1 / sum, true
}

// applyLinearImpulse applies lambda*jacobian scaled by each body's
// inverse mass, in the sign convention used throughout
// Constraints.cpp: body A gains the impulse, body B loses it.
func applyLinearImpulse(a, b *body.Body, jacobian vecmath.Vec3, lambda float32) {
	if a.InvMass > 0 {
		a.Velocity = vecmath.Add(a.Velocity, vecmath.Scale(jacobian, lambda*a.InvMass))
	}
	if b.InvMass > 0 {
		b.Velocity = vecmath.Sub(b.Velocity, vecmath.Scale(jacobian, lambda*b.InvMass))
	}
}

// applyAngularImpulse is applyLinearImpulse's rotational analogue,
// using each body's diagonal inverse-inertia entry (row 0, per the
// source's bodyX->invInertiaTensor.m[0][0] reads — the tensor is
// always a multiple of the identity under this contract's fixed-
// inertia policy, so any diagonal entry agrees).
func applyAngularImpulse(a, b *body.Body, invInertiaA, invInertiaB float32, axis vecmath.Vec3, lambda float32) {
	if a.InvMass > 0 {
		a.AngularVelocity = vecmath.Add(a.AngularVelocity, vecmath.Scale(axis, lambda*invInertiaA))
	}
	if b.InvMass > 0 {
		b.AngularVelocity = vecmath.Sub(b.AngularVelocity, vecmath.Scale(axis, lambda*invInertiaB))
	}
}

func diagInvInertia(b *body.Body) float32 { return vecmath.At3(b.InvInertiaTensor, 0, 0) }

// worldAnchor rotates a body-local anchor point into world space
// using the body's current orientation, per PreSolve's contract.
func worldAnchor(b *body.Body, local vecmath.Vec3) vecmath.Vec3 {
	return vecmath.Add(b.Position, vecmath.MulMat3Vec3(vecmath.QuatToMat3(b.Orientation), local))
}

// worldAxis rotates a body-local direction into world space; unlike
// worldAnchor it ignores the body's position.
func worldAxis(b *body.Body, local vecmath.Vec3) vecmath.Vec3 {
	return vecmath.MulMat3Vec3(vecmath.QuatToMat3(b.Orientation), local)
}
