// Package engine implements the fixed-timestep scheduler around
// world.World: factory methods for bodies and constraints, timing via
// simclock.Clock, debug-visualization snapshots, and scene
// persistence. Grounded on the Physics::Engine class in
// _examples/original_source/src/physics.h/.cpp, generalized per
// SPEC_FULL.md's redesign note from raw RigidBody*/HingeConstraint*
// ownership into handle-keyed arenas.
package engine

import (
	"github.com/google/uuid"

	"rigid3d/internal/body"
	"rigid3d/internal/constraint"
	"rigid3d/internal/simclock"
	"rigid3d/internal/vecmath"
	"rigid3d/internal/world"
)

// BodyHandle identifies a body the engine created and owns.
type BodyHandle = world.BodyHandle

// ConstraintHandle identifies a hinge Driver the engine created and
// owns, per SPEC_FULL.md's "model as a Driver, a type distinct from
// the articulated HingeConstraint" decision — only drivers get handles
// here, since two-body articulated constraints (added via
// world.World.AddConstraint directly by a host that builds its own
// constraint.Constraint value) have no per-engine identity to revoke.
type ConstraintHandle string

// Engine is the top-level facade: owns one World, its Settings, a
// wall-clock timer, and the set of handles it minted. Not safe for
// concurrent use from multiple goroutines on the same instance (per
// SPEC_FULL.md §5); independent Engine instances are fully
// independent.
type Engine struct {
	world    *world.World
	settings Settings
	clock    *simclock.Clock

	bodyOrder []BodyHandle // insertion order, for deterministic debug draw

	drivers     map[ConstraintHandle]*constraint.Driver
	driverOrder []ConstraintHandle

	debugDraw DebugDrawData
}

// NewEngine constructs an Engine and runs Initialize with the given
// options applied on top of DefaultSettings, matching
// Physics::Engine's constructor (which calls Initialize() with the
// struct's own defaults) generalized to the options-slice idiom.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	e.Initialize(opts...)
	return e
}

// Initialize resets the engine to a fresh world and clock under the
// given settings (DefaultSettings with opts applied on top), matching
// Engine::Initialize's "settings = newSettings; world.Clear();
// simulationTimer.Reset(); ClearDebugDrawData()" sequence.
func (e *Engine) Initialize(opts ...Option) {
	s := DefaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	e.settings = s

	e.world = world.New()
	e.world.FixedDeltaTime = s.FixedTimeStep
	e.world.Gravity = s.Gravity
	e.world.DefaultRestitution = s.DefaultRestitution
	e.world.DefaultFriction = s.DefaultFriction

	e.clock = simclock.New()
	e.bodyOrder = nil
	e.drivers = make(map[ConstraintHandle]*constraint.Driver)
	e.driverOrder = nil
	e.debugDraw = DebugDrawData{}
}

// Update advances the simulation by wallDt seconds (clamped to
// MaxTimeStep), running up to MaxSubSteps fixed-size substeps,
// matching Engine::Update's "spiral of death" clamp and substep loop.
// A negative wallDt is clamped to zero (no substeps run); NaN
// propagates into the clamp comparisons and is not rejected, per
// SPEC_FULL.md §7's "physics failures do not propagate" policy.
func (e *Engine) Update(wallDt float32) {
	e.clock.Tick()

	dt := wallDt
	if dt < 0 {
		dt = 0
	}
	if dt > e.settings.MaxTimeStep {
		dt = e.settings.MaxTimeStep
	}

	remaining := dt
	substeps := 0
	for remaining > 0 && substeps < e.settings.MaxSubSteps {
		step := remaining
		if step > e.settings.FixedTimeStep {
			step = e.settings.FixedTimeStep
		}
		e.world.Step()
		remaining -= step
		substeps++
	}

	for _, h := range e.driverOrder {
		e.drivers[h].Advance(dt)
	}

	if e.settings.ShowDebugDraw {
		e.rebuildDebugDraw()
	}
}

// CreateRigidBody creates a bare body (static unit sphere, per
// body.New's defaults) owned by the engine, matching
// Engine::CreateRigidBody. Hosts that want a custom shape or material
// mutate the returned handle's body via GetWorld().Body(handle).
func (e *Engine) CreateRigidBody() BodyHandle {
	b := body.New()
	h := e.world.AddBody(b)
	e.bodyOrder = append(e.bodyOrder, h)
	return h
}

// CreateBox creates a box body. size is full extents (halfExtents =
// size/2); shape is an axis-aligned Box unless the host later
// overwrites it, matching Engine::CreateBox.
func (e *Engine) CreateBox(position, size vecmath.Vec3, mass float32) BodyHandle {
	h := e.CreateRigidBody()
	b := e.world.Body(h)
	b.Position = position
	b.Shape = body.Shape{Kind: body.Box, HalfExtents: vecmath.Scale(size, 0.5)}
	b.SetMass(mass)
	return h
}

// CreateSphere creates a sphere body, matching Engine::CreateSphere.
func (e *Engine) CreateSphere(position vecmath.Vec3, radius, mass float32) BodyHandle {
	h := e.CreateRigidBody()
	b := e.world.Body(h)
	b.Position = position
	b.Shape = body.Shape{Kind: body.Sphere, Radius: radius}
	b.SetMass(mass)
	return h
}

// planeHalfExtents matches Engine::CreatePlane's "very large thin
// AABB" (half-extents 1000 x 0.1 x 1000, i.e. a 2000 x 0.2 x 2000 box).
var planeHalfExtents = vecmath.Vec3{1000, 0.1, 1000}

// CreatePlane creates a very large, thin AABB centred at
// normal*distance, approximating an infinite plane, matching
// Engine::CreatePlane. A mass of 0 makes the plane static.
func (e *Engine) CreatePlane(normal vecmath.Vec3, distance float32, mass float32) BodyHandle {
	h := e.CreateRigidBody()
	b := e.world.Body(h)
	b.Position = vecmath.Scale(normal, distance)
	b.Shape = body.Shape{Kind: body.Box, HalfExtents: planeHalfExtents}
	b.SetMass(mass)
	return h
}

// CreateHingeConstraint creates a single-body kinematic hinge driver
// (the "door hinge" overload in Constraints.cpp), never added to the
// world's constraint list, per SPEC_FULL.md's Driver/Hinge split.
func (e *Engine) CreateHingeConstraint(pivot, axis vecmath.Vec3, angularVelocity float32, isRotating bool) ConstraintHandle {
	h := ConstraintHandle(uuid.NewString())
	e.drivers[h] = constraint.NewDriver(pivot, axis, angularVelocity, isRotating)
	e.driverOrder = append(e.driverOrder, h)
	return h
}

// SetHingeConstraintRotation sets the target angle on the driver
// identified by h. An out-of-range/unknown handle is a silent no-op,
// matching Engine::SetHingeConstraintRotation's bounds-checked index
// lookup generalized to a map lookup.
func (e *Engine) SetHingeConstraintRotation(h ConstraintHandle, angle float32) {
	d, ok := e.drivers[h]
	if !ok {
		return
	}
	d.SetRotation(angle)
}

// HingeDriver exposes the Driver behind h (its CurrentAngle, etc.)
// for hosts that need to read it back; nil if h is unknown.
func (e *Engine) HingeDriver(h ConstraintHandle) *constraint.Driver { return e.drivers[h] }

// ToggleDebugDraw flips ShowDebugDraw.
func (e *Engine) ToggleDebugDraw() { e.settings.ShowDebugDraw = !e.settings.ShowDebugDraw }

// ToggleColliders flips ShowColliders.
func (e *Engine) ToggleColliders() { e.settings.ShowColliders = !e.settings.ShowColliders }

// ToggleContacts flips ShowContacts.
func (e *Engine) ToggleContacts() { e.settings.ShowContacts = !e.settings.ShowContacts }

// ToggleGrid flips ShowGrid.
func (e *Engine) ToggleGrid() { e.settings.ShowGrid = !e.settings.ShowGrid }

// ResetScene frees all engine-managed bodies and constraints and
// resets settings to their defaults, matching Engine::ResetScene.
func (e *Engine) ResetScene() {
	e.world.Clear()
	e.bodyOrder = nil
	e.drivers = make(map[ConstraintHandle]*constraint.Driver)
	e.driverOrder = nil
	e.settings = DefaultSettings()
	e.world.FixedDeltaTime = e.settings.FixedTimeStep
	e.world.Gravity = e.settings.Gravity
	e.world.DefaultRestitution = e.settings.DefaultRestitution
	e.world.DefaultFriction = e.settings.DefaultFriction
	e.debugDraw = DebugDrawData{}
}

// GetDebugDrawData returns the most recently rebuilt debug snapshot.
func (e *Engine) GetDebugDrawData() DebugDrawData { return e.debugDraw }

// GetAverageFPS reports the frame rate implied by the most recent
// Update call's wall-clock delta.
func (e *Engine) GetAverageFPS() float32 { return e.clock.FPS() }

// GetSettings returns a copy of the engine's current settings.
func (e *Engine) GetSettings() Settings { return e.settings }

// GetWorld exposes the underlying World for direct access (adding
// multi-body constraints, inspecting bodies by handle, etc.).
func (e *Engine) GetWorld() *world.World { return e.world }

// GetBodyCount reports the number of live bodies in the world.
func (e *Engine) GetBodyCount() int { return e.world.BodyCount() }

// BodySnapshot is the read-only view of a body's state exposed to
// hosts, matching §6's WorldHandle.getBody(i) contract.
type BodySnapshot struct {
	Position    vecmath.Vec3
	Orientation vecmath.Quat
	Shape       body.ShapeKind
	HalfExtents vecmath.Vec3
	Radius      float32
}

// GetBody returns a snapshot of the i-th body in insertion order, and
// false if i is out of range.
func (e *Engine) GetBody(i int) (BodySnapshot, bool) {
	bodies := e.world.Bodies()
	if i < 0 || i >= len(bodies) {
		return BodySnapshot{}, false
	}
	b := bodies[i]
	return BodySnapshot{
		Position:    b.Position,
		Orientation: b.Orientation,
		Shape:       b.Shape.Kind,
		HalfExtents: b.Shape.HalfExtents,
		Radius:      b.Shape.Radius,
	}, true
}
