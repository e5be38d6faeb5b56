// Package world implements the body/constraint container and the
// per-substep pipeline described by SPEC_FULL.md §4.7: gravity,
// integration, broad phase, narrow phase + resolution, constraint
// solve. Grounded on PhysicsWorld in
// _examples/original_source/src/World.h/.cpp, generalized from a
// fixed sphere/AABB/OBB branch ladder into collision.Dispatch's 3x3
// table and from raw RigidBody* pairs into handle-keyed bodies so the
// broad phase can key candidate pairs by something comparable and
// engine-stable.
package world

import (
	"github.com/google/uuid"

	"rigid3d/internal/body"
	"rigid3d/internal/broadphase"
	"rigid3d/internal/collision"
	"rigid3d/internal/constraint"
	"rigid3d/internal/resolver"
	"rigid3d/internal/vecmath"
)

// BodyHandle identifies a body owned by a World, following the
// string-handle pattern Gekko3D uses for its AssetId
// (uuid.NewString() rather than a raw uuid.UUID or pointer), per
// SPEC_FULL.md's DOMAIN STACK section.
type BodyHandle string

// defaultCellSize is the broad-phase grid's cell edge length the
// world uses, per SPEC_FULL.md §4.3 ("the world uses 2.0").
const defaultCellSize = 2.0

// defaultFixedDeltaTime is the default substep size (1/60 s).
const defaultFixedDeltaTime = 1.0 / 60.0

// World owns a handle-keyed set of bodies (insertion order preserved
// for deterministic iteration, per §5's ordering guarantees) plus an
// ordered list of articulated constraints, and runs the fixed-step
// pipeline in World.Step.
type World struct {
	FixedDeltaTime     float32
	Gravity            vecmath.Vec3
	DefaultRestitution float32
	DefaultFriction    float32

	order       []BodyHandle
	bodies      map[BodyHandle]*body.Body
	constraints []constraint.Constraint

	grid *broadphase.Grid[BodyHandle]
}

// New returns an empty World with the spec's defaults: 1/60s fixed
// step, gravity (0,-9.81,0), restitution 0.5, friction 0.4.
func New() *World {
	return &World{
		FixedDeltaTime:     defaultFixedDeltaTime,
		Gravity:            vecmath.Vec3{0, -9.81, 0},
		DefaultRestitution: 0.5,
		DefaultFriction:    0.4,
		bodies:             make(map[BodyHandle]*body.Body),
		grid:               broadphase.New[BodyHandle](defaultCellSize),
	}
}

// AddBody registers b with the world under a freshly minted handle
// and returns it, preserving insertion order for §5's "bodies are
// visited in insertion order" guarantee.
func (w *World) AddBody(b *body.Body) BodyHandle {
	h := BodyHandle(uuid.NewString())
	w.bodies[h] = b
	w.order = append(w.order, h)
	return h
}

// Body returns the body registered under h, or nil if h is unknown
// (a stale or foreign handle is a silent no-op lookup, per
// SPEC_FULL.md's error-handling policy for handle lookups).
func (w *World) Body(h BodyHandle) *body.Body { return w.bodies[h] }

// RemoveBody drops h from the world, a no-op if h is not present.
func (w *World) RemoveBody(h BodyHandle) {
	if _, ok := w.bodies[h]; !ok {
		return
	}
	delete(w.bodies, h)
	for i, id := range w.order {
		if id == h {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// BodyCount reports the number of live bodies.
func (w *World) BodyCount() int { return len(w.order) }

// Bodies returns the live bodies in insertion order. The slice is a
// fresh copy; callers may not mutate World's internal ordering
// through it.
func (w *World) Bodies() []*body.Body {
	out := make([]*body.Body, len(w.order))
	for i, h := range w.order {
		out[i] = w.bodies[h]
	}
	return out
}

// AddConstraint appends c to the constraint list, in addition order
// (the order PreSolve/Solve/PostSolve visit them each step).
func (w *World) AddConstraint(c constraint.Constraint) {
	w.constraints = append(w.constraints, c)
}

// Clear empties the world of all bodies and constraints, per
// PhysicsWorld::Clear.
func (w *World) Clear() {
	w.order = nil
	w.bodies = make(map[BodyHandle]*body.Body)
	w.constraints = nil
}

// ApplyGlobalForce adds force*mass to every non-static body's force
// accumulator, matching PhysicsWorld::ApplyGlobalForce.
func (w *World) ApplyGlobalForce(force vecmath.Vec3) {
	for _, h := range w.order {
		b := w.bodies[h]
		if b.InvMass > 0 {
			b.ApplyForce(vecmath.Scale(force, b.Mass))
		}
	}
}

// Step runs one fixed-size substep: gravity, integration, broad
// phase, narrow phase + resolution, constraint solve — in that exact
// order, per SPEC_FULL.md §4.7.
func (w *World) Step() {
	w.ApplyGlobalForce(w.Gravity)

	for _, h := range w.order {
		w.bodies[h].Integrate(w.FixedDeltaTime)
	}

	entries := make([]broadphase.Entry[BodyHandle], 0, len(w.order))
	for _, h := range w.order {
		entries = append(entries, broadphase.Entry[BodyHandle]{ID: h, Position: w.bodies[h].Position})
	}
	pairs := w.grid.Pairs(entries)

	for _, pair := range pairs {
		a, b := w.bodies[pair.A], w.bodies[pair.B]
		if a.IsStatic() && b.IsStatic() {
			continue
		}
		contact, hit := collision.Dispatch(a, b)
		if !hit {
			continue
		}
		resolver.Resolve(a, b, contact.Normal, contact.Penetration, w.DefaultRestitution, w.DefaultFriction)
	}

	for _, c := range w.constraints {
		c.PreSolve(w.FixedDeltaTime)
		c.Solve(w.FixedDeltaTime)
		c.PostSolve()
	}
}
