// Command demo drives the physics engine standalone for a few
// seconds of simulated time and logs body positions, in the spirit of
// _examples/MironCo-mirgo_engine/cmd/physics_stress's standalone
// engine-exercising binaries. It plays the role of §1's "host
// scripting boundary" collaborator: create bodies, step, read state
// back.
package main

import (
	"flag"
	"log"

	"rigid3d/internal/engine"
	"rigid3d/internal/vecmath"
)

func main() {
	frames := flag.Int("frames", 180, "number of 1/60s frames to simulate")
	flag.Parse()

	e := engine.NewEngine()
	e.CreatePlane(vecmath.Vec3{0, 1, 0}, 0, 0)
	e.CreateSphere(vecmath.Vec3{0, 5, 0}, 0.5, 1)
	e.CreateBox(vecmath.Vec3{1.5, 8, 0}, vecmath.Vec3{1, 1, 1}, 2)

	const dt = 1.0 / 60.0
	for i := 0; i < *frames; i++ {
		e.Update(dt)
	}

	log.Printf("simulated %d frames, %d bodies", *frames, e.GetBodyCount())
	for i := 0; i < e.GetBodyCount(); i++ {
		snap, ok := e.GetBody(i)
		if !ok {
			continue
		}
		log.Printf("body %d: shape=%v pos=%v", i, snap.Shape, snap.Position)
	}
}
