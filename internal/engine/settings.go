package engine

import "rigid3d/internal/vecmath"

// Settings is the engine's plain configuration struct, mirroring
// Physics::Settings in _examples/original_source/src/physics.h field
// for field. Its zero value is not useful (MaxSubSteps=0 runs no
// substeps and FixedTimeStep=0 advances no time), so callers go through
// DefaultSettings or the Option functions below rather than
// constructing one directly — the teacher's own preference for
// explicit constructors over implicit zero values
// (internal/engine.NewGameObject and friends in the retrieval pack's
// MironCo-mirgo_engine never rely on a bare struct literal either).
type Settings struct {
	FixedTimeStep      float32
	MaxTimeStep        float32
	MaxSubSteps        int
	Gravity            vecmath.Vec3
	DefaultRestitution float32
	DefaultFriction    float32

	ShowDebugDraw bool
	ShowColliders bool
	ShowContacts  bool
	ShowGrid      bool
}

// DefaultSettings returns the spec's documented defaults.
func DefaultSettings() Settings {
	return Settings{
		FixedTimeStep:      1.0 / 60.0,
		MaxTimeStep:        0.25,
		MaxSubSteps:        4,
		Gravity:            vecmath.Vec3{0, -9.81, 0},
		DefaultRestitution: 0.5,
		DefaultFriction:    0.3,
		ShowColliders:      true,
		ShowGrid:           true,
	}
}

// Option mutates a Settings value during NewEngine/Initialize,
// following the options-slice idiom generalized from the teacher's
// plain-struct configuration style per SPEC_FULL.md's AMBIENT STACK
// section.
type Option func(*Settings)

func WithFixedTimeStep(dt float32) Option { return func(s *Settings) { s.FixedTimeStep = dt } }
func WithMaxTimeStep(dt float32) Option   { return func(s *Settings) { s.MaxTimeStep = dt } }
func WithMaxSubSteps(n int) Option        { return func(s *Settings) { s.MaxSubSteps = n } }
func WithGravity(g vecmath.Vec3) Option   { return func(s *Settings) { s.Gravity = g } }

func WithDefaultMaterial(restitution, friction float32) Option {
	return func(s *Settings) {
		s.DefaultRestitution = restitution
		s.DefaultFriction = friction
	}
}

func WithDebugDraw(showDebugDraw, showColliders, showContacts, showGrid bool) Option {
	return func(s *Settings) {
		s.ShowDebugDraw = showDebugDraw
		s.ShowColliders = showColliders
		s.ShowContacts = showContacts
		s.ShowGrid = showGrid
	}
}
