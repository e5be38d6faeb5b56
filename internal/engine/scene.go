package engine

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"rigid3d/internal/body"
	"rigid3d/internal/vecmath"
)

// SaveScene writes the engine's settings and managed bodies to
// filename in the line-oriented text format of SPEC_FULL.md §6,
// matching Engine::SaveScene's field order exactly (fixedTimeStep
// maxTimeStep maxSubSteps / gravity xyz / restitution friction, then
// bodies count, then one "shapeInt x y z hx hy hz mass" line per
// body). I/O failures are surfaced to the caller, per §7.
func (e *Engine) SaveScene(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("save scene: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	fmt.Fprintln(w, "settings")
	fmt.Fprintf(w, "%g %g %d\n", e.settings.FixedTimeStep, e.settings.MaxTimeStep, e.settings.MaxSubSteps)
	g := e.settings.Gravity
	fmt.Fprintf(w, "%g %g %g\n", g[0], g[1], g[2])
	fmt.Fprintf(w, "%g %g\n", e.settings.DefaultRestitution, e.settings.DefaultFriction)

	bodies := e.world.Bodies()
	fmt.Fprintln(w, "bodies")
	fmt.Fprintf(w, "%d\n", len(bodies))
	for _, b := range bodies {
		he := b.Shape.HalfExtents
		fmt.Fprintf(w, "%d %g %g %g %g %g %g %g\n",
			int(b.Shape.Kind), b.Position[0], b.Position[1], b.Position[2],
			he[0], he[1], he[2], b.Mass)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("save scene: %w", err)
	}
	return nil
}

// LoadScene resets the scene, then replays filename's settings and
// bodies lines, matching Engine::LoadScene's "ResetScene() first"
// ordering. Unknown shape integers are discarded (the body is still
// created, with whatever ShapeKind int(shapeInt) decodes to skipped
// in favour of leaving the body's default Sphere shape), per §6's
// "reader discards unknown shape integers" rule. A failed open/parse
// is surfaced to the caller with the world left empty, since
// ResetScene already ran before the file was opened. Parse failures
// surfaced this way are those of the settings fields, the body count
// and each body's shape integer; a malformed coordinate, half-extent
// or mass field on a body line is not reported and reads as 0.
func (e *Engine) LoadScene(filename string) error {
	e.ResetScene()

	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "settings":
			if err := e.readSettingsBlock(sc); err != nil {
				return fmt.Errorf("load scene: %w", err)
			}
		case "bodies":
			if err := e.readBodiesBlock(sc); err != nil {
				return fmt.Errorf("load scene: %w", err)
			}
		}
	}
	if err := sc.Err(); err != nil && err != io.EOF {
		return fmt.Errorf("load scene: %w", err)
	}
	return nil
}

func (e *Engine) readSettingsBlock(sc *bufio.Scanner) error {
	line1, err := nextFields(sc, 3)
	if err != nil {
		return err
	}
	fixedTimeStep, err := parseFloat(line1[0])
	if err != nil {
		return err
	}
	maxTimeStep, err := parseFloat(line1[1])
	if err != nil {
		return err
	}
	maxSubSteps, err := strconv.Atoi(line1[2])
	if err != nil {
		return err
	}

	line2, err := nextFields(sc, 3)
	if err != nil {
		return err
	}
	gx, err := parseFloat(line2[0])
	if err != nil {
		return err
	}
	gy, err := parseFloat(line2[1])
	if err != nil {
		return err
	}
	gz, err := parseFloat(line2[2])
	if err != nil {
		return err
	}

	line3, err := nextFields(sc, 2)
	if err != nil {
		return err
	}
	restitution, err := parseFloat(line3[0])
	if err != nil {
		return err
	}
	friction, err := parseFloat(line3[1])
	if err != nil {
		return err
	}

	e.settings.FixedTimeStep = fixedTimeStep
	e.settings.MaxTimeStep = maxTimeStep
	e.settings.MaxSubSteps = maxSubSteps
	e.settings.Gravity = vecmath.Vec3{gx, gy, gz}
	e.settings.DefaultRestitution = restitution
	e.settings.DefaultFriction = friction
	e.world.FixedDeltaTime = fixedTimeStep
	e.world.Gravity = e.settings.Gravity
	e.world.DefaultRestitution = restitution
	e.world.DefaultFriction = friction
	return nil
}

func (e *Engine) readBodiesBlock(sc *bufio.Scanner) error {
	countLine, err := nextFields(sc, 1)
	if err != nil {
		return err
	}
	count, err := strconv.Atoi(countLine[0])
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		fields, err := nextFields(sc, 8)
		if err != nil {
			return err
		}
		shapeInt, err := strconv.Atoi(fields[0])
		if err != nil {
			return err
		}
		x, _ := parseFloat(fields[1])
		y, _ := parseFloat(fields[2])
		z, _ := parseFloat(fields[3])
		hx, _ := parseFloat(fields[4])
		hy, _ := parseFloat(fields[5])
		hz, _ := parseFloat(fields[6])
		mass, _ := parseFloat(fields[7])

		h := e.CreateRigidBody()
		b := e.world.Body(h)
		b.Position = vecmath.Vec3{x, y, z}
		b.Shape.HalfExtents = vecmath.Vec3{hx, hy, hz}
		if kind, ok := decodeShapeKind(shapeInt); ok {
			b.Shape.Kind = kind
		}
		b.SetMass(mass)
	}
	return nil
}

func decodeShapeKind(shapeInt int) (body.ShapeKind, bool) {
	switch shapeInt {
	case int(body.Sphere):
		return body.Sphere, true
	case int(body.Box):
		return body.Box, true
	case int(body.OrientedBox):
		return body.OrientedBox, true
	default:
		return 0, false
	}
}

func nextFields(sc *bufio.Scanner, n int) ([]string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected end of scene file")
	}
	fields := strings.Fields(sc.Text())
	if len(fields) < n {
		return nil, fmt.Errorf("expected %d fields, got %d", n, len(fields))
	}
	return fields, nil
}

func parseFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	return float32(v), nil
}
