package engine

import (
	"fmt"
	"math"

	"rigid3d/internal/body"
	"rigid3d/internal/vecmath"
)

// Line, Point and Text are the three primitives the host
// visualization layer consumes from GetDebugDrawData, matching
// Physics::DebugDrawData's nested Line/Point/Text structs in
// _examples/original_source/src/physics.h.
type Line struct {
	Start, End vecmath.Vec3
	Color      vecmath.Vec3
}

type Point struct {
	Position vecmath.Vec3
	Color    vecmath.Vec3
	Size     float32
}

type Text struct {
	Text     string
	Position vecmath.Vec3
	Color    vecmath.Vec3
}

// DebugDrawData is a per-frame snapshot of visualization primitives,
// rebuilt from scratch by Engine.rebuildDebugDraw after every Update
// while ShowDebugDraw is set.
type DebugDrawData struct {
	Lines  []Line
	Points []Point
	Texts  []Text
}

var (
	colliderDynamicColor = vecmath.Vec3{0, 1, 0}
	colliderStaticColor  = vecmath.Vec3{1, 0, 0}
	gridColor            = vecmath.Vec3{0.3, 0.3, 0.3}
	statsColor           = vecmath.Vec3{1, 1, 1}
)

// rebuildDebugDraw clears and repopulates debugDrawData according to
// the current settings, matching Engine::UpdateDebugDraw's
// DrawColliders/DrawContacts/DrawGrid/DrawStats sequence. DrawContacts
// is a no-op in the original (a TODO that was never implemented) and
// is not supplemented here — see DESIGN.md.
func (e *Engine) rebuildDebugDraw() {
	e.debugDraw = DebugDrawData{}

	if e.settings.ShowColliders {
		e.drawColliders()
	}
	if e.settings.ShowGrid {
		e.drawGrid()
	}
	e.drawStats()
}

func (e *Engine) addLine(start, end, color vecmath.Vec3) {
	e.debugDraw.Lines = append(e.debugDraw.Lines, Line{Start: start, End: end, Color: color})
}

func (e *Engine) drawColliders() {
	for _, h := range e.bodyOrder {
		b := e.world.Body(h)
		color := colliderStaticColor
		if !b.IsStatic() {
			color = colliderDynamicColor
		}

		switch b.Shape.Kind {
		case body.Sphere:
			e.drawSphere(b.Position, b.Shape.Radius, color)
		default:
			e.drawBoxEdges(b.Position, b.Shape.HalfExtents, color)
		}
	}
}

// drawBoxEdges emits the 12 edges of an axis-aligned box, matching
// Engine::DrawColliders' AABB branch line for line.
func (e *Engine) drawBoxEdges(center, halfExtents, color vecmath.Vec3) {
	min := vecmath.Sub(center, halfExtents)
	max := vecmath.Add(center, halfExtents)

	corner := func(x, y, z float32) vecmath.Vec3 { return vecmath.Vec3{x, y, z} }

	e.addLine(corner(min[0], min[1], min[2]), corner(max[0], min[1], min[2]), color)
	e.addLine(corner(min[0], min[1], min[2]), corner(min[0], max[1], min[2]), color)
	e.addLine(corner(min[0], min[1], min[2]), corner(min[0], min[1], max[2]), color)
	e.addLine(corner(max[0], min[1], min[2]), corner(max[0], max[1], min[2]), color)
	e.addLine(corner(max[0], min[1], min[2]), corner(max[0], min[1], max[2]), color)
	e.addLine(corner(min[0], max[1], min[2]), corner(max[0], max[1], min[2]), color)
	e.addLine(corner(min[0], max[1], min[2]), corner(min[0], max[1], max[2]), color)
	e.addLine(corner(min[0], min[1], max[2]), corner(max[0], min[1], max[2]), color)
	e.addLine(corner(min[0], min[1], max[2]), corner(min[0], max[1], max[2]), color)
	e.addLine(corner(max[0], max[1], min[2]), corner(max[0], max[1], max[2]), color)
	e.addLine(corner(max[0], min[1], max[2]), corner(max[0], max[1], max[2]), color)
	e.addLine(corner(min[0], max[1], max[2]), corner(max[0], max[1], max[2]), color)
}

// sphereSegments is the great-circle tessellation count, matching
// Engine::DrawColliders' "segments = 16".
const sphereSegments = 16

// drawSphere approximates a sphere as three great circles (XY, XZ,
// YZ planes) of sphereSegments segments each, matching
// Engine::DrawColliders' Sphere branch.
func (e *Engine) drawSphere(center vecmath.Vec3, radius float32, color vecmath.Vec3) {
	for i := 0; i < sphereSegments; i++ {
		a1 := float64(i) / float64(sphereSegments) * 2 * math.Pi
		a2 := float64(i+1) / float64(sphereSegments) * 2 * math.Pi
		c1, s1 := float32(math.Cos(a1))*radius, float32(math.Sin(a1))*radius
		c2, s2 := float32(math.Cos(a2))*radius, float32(math.Sin(a2))*radius

		e.addLine(
			vecmath.Add(center, vecmath.Vec3{c1, s1, 0}),
			vecmath.Add(center, vecmath.Vec3{c2, s2, 0}),
			color,
		)
		e.addLine(
			vecmath.Add(center, vecmath.Vec3{c1, 0, s1}),
			vecmath.Add(center, vecmath.Vec3{c2, 0, s2}),
			color,
		)
		e.addLine(
			vecmath.Add(center, vecmath.Vec3{0, c1, s1}),
			vecmath.Add(center, vecmath.Vec3{0, c2, s2}),
			color,
		)
	}
}

const (
	gridFloorSize    = 20.0
	gridFloorSpacing = 1.0
)

// drawGrid draws a flat floor grid, matching Engine::DrawGrid.
func (e *Engine) drawGrid() {
	for x := float32(-gridFloorSize); x <= gridFloorSize; x += gridFloorSpacing {
		e.addLine(vecmath.Vec3{x, 0, -gridFloorSize}, vecmath.Vec3{x, 0, gridFloorSize}, gridColor)
	}
	for z := float32(-gridFloorSize); z <= gridFloorSize; z += gridFloorSpacing {
		e.addLine(vecmath.Vec3{-gridFloorSize, 0, z}, vecmath.Vec3{gridFloorSize, 0, z}, gridColor)
	}
}

// drawStats appends a single stats text line, matching
// Engine::DrawStats' FPS/Bodies/Time Step summary.
func (e *Engine) drawStats() {
	text := fmt.Sprintf("FPS: %.1f\nBodies: %d\nTime Step: %.4f",
		e.GetAverageFPS(), e.world.BodyCount(), e.settings.FixedTimeStep)
	e.debugDraw.Texts = append(e.debugDraw.Texts, Text{
		Text:     text,
		Position: vecmath.Vec3{-10, 10, 0},
		Color:    statsColor,
	})
}
