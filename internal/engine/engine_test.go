package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rigid3d/internal/body"
	"rigid3d/internal/vecmath"
)

func TestNewEngineDefaults(t *testing.T) {
	e := NewEngine()
	s := e.GetSettings()
	assert.Equal(t, float32(1.0/60.0), s.FixedTimeStep)
	assert.Equal(t, 4, s.MaxSubSteps)
	assert.Equal(t, vecmath.Vec3{0, -9.81, 0}, s.Gravity)
}

func TestNewEngineWithOptions(t *testing.T) {
	e := NewEngine(WithMaxSubSteps(8), WithGravity(vecmath.Vec3{}))
	s := e.GetSettings()
	assert.Equal(t, 8, s.MaxSubSteps)
	assert.Equal(t, vecmath.Vec3{}, s.Gravity)
}

func TestCreateBoxSetsHalfExtentsFromFullSize(t *testing.T) {
	e := NewEngine()
	h := e.CreateBox(vecmath.Vec3{1, 2, 3}, vecmath.Vec3{2, 4, 6}, 1)
	b := e.GetWorld().Body(h)
	require.NotNil(t, b)
	assert.Equal(t, body.Box, b.Shape.Kind)
	assert.Equal(t, vecmath.Vec3{1, 2, 3}, b.Shape.HalfExtents)
}

func TestCreateSphereAndBodyCount(t *testing.T) {
	e := NewEngine()
	e.CreateSphere(vecmath.Vec3{}, 2, 1)
	e.CreateSphere(vecmath.Vec3{5, 0, 0}, 1, 0)
	assert.Equal(t, 2, e.GetBodyCount())

	snap, ok := e.GetBody(0)
	require.True(t, ok)
	assert.Equal(t, body.Sphere, snap.Shape)
	assert.Equal(t, float32(2), snap.Radius)
}

func TestCreatePlaneIsStaticByDefault(t *testing.T) {
	e := NewEngine()
	h := e.CreatePlane(vecmath.Vec3{0, 1, 0}, 0, 0)
	b := e.GetWorld().Body(h)
	require.NotNil(t, b)
	assert.True(t, b.IsStatic())
}

func TestGetBodyOutOfRange(t *testing.T) {
	e := NewEngine()
	_, ok := e.GetBody(0)
	assert.False(t, ok)
}

func TestHingeDriverRotationAndUnknownHandleNoOp(t *testing.T) {
	e := NewEngine()
	h := e.CreateHingeConstraint(vecmath.Vec3{}, vecmath.Vec3{0, 1, 0}, 0, false)
	e.SetHingeConstraintRotation(h, 1.5)
	assert.Equal(t, float32(1.5), e.HingeDriver(h).TargetAngle)

	// Unknown handle: silent no-op, no panic.
	e.SetHingeConstraintRotation(ConstraintHandle("does-not-exist"), 9)
}

func TestDriverNeverAddedToWorldConstraintList(t *testing.T) {
	e := NewEngine()
	e.CreateHingeConstraint(vecmath.Vec3{}, vecmath.Vec3{0, 1, 0}, 0, false)
	// World holds no constraints; stepping must not touch the driver.
	e.Update(1.0 / 60)
}

func TestToggles(t *testing.T) {
	e := NewEngine()
	s0 := e.GetSettings()
	e.ToggleDebugDraw()
	e.ToggleColliders()
	e.ToggleContacts()
	e.ToggleGrid()
	s1 := e.GetSettings()
	assert.NotEqual(t, s0.ShowDebugDraw, s1.ShowDebugDraw)
	assert.NotEqual(t, s0.ShowColliders, s1.ShowColliders)
	assert.NotEqual(t, s0.ShowContacts, s1.ShowContacts)
	assert.NotEqual(t, s0.ShowGrid, s1.ShowGrid)
}

func TestResetSceneClearsBodiesAndRestoresDefaults(t *testing.T) {
	e := NewEngine(WithMaxSubSteps(9))
	e.CreateSphere(vecmath.Vec3{}, 1, 1)
	e.ResetScene()
	assert.Equal(t, 0, e.GetBodyCount())
	assert.Equal(t, 4, e.GetSettings().MaxSubSteps)
}

func TestUpdateClampsNegativeDtToZero(t *testing.T) {
	e := NewEngine()
	h := e.CreateSphere(vecmath.Vec3{}, 1, 1)
	e.Update(-1)
	b := e.GetWorld().Body(h)
	assert.Equal(t, vecmath.Vec3{}, b.Position)
}

func TestDebugDrawDataPopulatedWhenEnabled(t *testing.T) {
	e := NewEngine(WithDebugDraw(true, true, false, true))
	e.CreateSphere(vecmath.Vec3{}, 1, 0)
	e.Update(1.0 / 60)
	data := e.GetDebugDrawData()
	assert.NotEmpty(t, data.Lines)
	assert.NotEmpty(t, data.Texts)
}

func TestSaveAndLoadSceneRoundTrip(t *testing.T) {
	e := NewEngine()
	e.CreateBox(vecmath.Vec3{1, 2, 3}, vecmath.Vec3{2, 2, 2}, 5)
	e.CreateSphere(vecmath.Vec3{4, 5, 6}, 1.5, 0)

	path := filepath.Join(t.TempDir(), "scene.txt")
	require.NoError(t, e.SaveScene(path))

	e2 := NewEngine()
	require.NoError(t, e2.LoadScene(path))

	assert.Equal(t, 2, e2.GetBodyCount())
	snap0, ok := e2.GetBody(0)
	require.True(t, ok)
	assert.Equal(t, body.Box, snap0.Shape)
	assert.Equal(t, vecmath.Vec3{1, 2, 3}, snap0.Position)
}

func TestLoadSceneMissingFileSurfacesError(t *testing.T) {
	e := NewEngine()
	err := e.LoadScene(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	assert.Error(t, err)
	assert.Equal(t, 0, e.GetBodyCount())
}

func TestLoadSceneResetsBeforeReadingEvenOnBadBody(t *testing.T) {
	e := NewEngine()
	e.CreateSphere(vecmath.Vec3{}, 1, 1)

	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("bodies\nnotanumber\n"), 0o644))

	err := e.LoadScene(path)
	assert.Error(t, err)
	assert.Equal(t, 0, e.GetBodyCount())
}
