// Package broadphase implements the uniform spatial hash grid broad
// phase, grounded on
// _examples/original_source/src/UniformGridBroadPhase.h/.cpp and
// generalized from the fixed 27-cell (self + 26 neighbours) stencil
// to the half-stencil described in SPEC_FULL.md §4.3: the original's
// GetPotentialPairs walks all 26 neighbours of every occupied cell,
// which double-emits every cross-cell pair once from each side. This
// version walks the 13 "forward" neighbour offsets plus the cell
// itself, so each unordered pair is emitted exactly once.
package broadphase

import "rigid3d/internal/vecmath"

// Entry is one body's position keyed by an opaque, comparable handle
// type supplied by the caller (world uses its string BodyHandle).
type Entry[H comparable] struct {
	ID       H
	Position vecmath.Vec3
}

// Pair is an unordered candidate pair produced by Grid.Pairs.
type Pair[H comparable] struct {
	A, B H
}

type cellCoord struct{ x, y, z int }

// forwardOffsets are the 13 neighbour cell offsets whose first
// non-zero component is positive, i.e. exactly half of the 26
// non-self offsets in a 3x3x3 stencil. Combined with the cell itself
// this covers the same neighbourhood as the full 27-cell stencil
// without visiting any unordered pair of cells twice.
var forwardOffsets = func() []cellCoord {
	var offs []cellCoord
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				if !isForward(dx, dy, dz) {
					continue
				}
				offs = append(offs, cellCoord{dx, dy, dz})
			}
		}
	}
	return offs
}()

func isForward(dx, dy, dz int) bool {
	if dx != 0 {
		return dx > 0
	}
	if dy != 0 {
		return dy > 0
	}
	return dz > 0
}

// Grid buckets entries into a 3D hash grid of the given cell size and
// produces candidate collision pairs. It holds no state across calls
// to Pairs — every call rebuilds the grid from scratch, matching the
// spec's "no state persists across substeps" invariant.
type Grid[H comparable] struct {
	cellSize float32
}

// New returns a Grid with the given (positive) cell edge length.
func New[H comparable](cellSize float32) *Grid[H] {
	return &Grid[H]{cellSize: cellSize}
}

func (g *Grid[H]) cellOf(pos vecmath.Vec3) cellCoord {
	return cellCoord{
		floorDiv(pos[0], g.cellSize),
		floorDiv(pos[1], g.cellSize),
		floorDiv(pos[2], g.cellSize),
	}
}

func floorDiv(v, cellSize float32) int {
	q := v / cellSize
	f := int(q)
	if q < float32(f) {
		f--
	}
	return f
}

// Pairs buckets entries by cell and returns every unordered candidate
// pair whose cells are the same or mutually adjacent (including
// diagonals), each exactly once.
func (g *Grid[H]) Pairs(entries []Entry[H]) []Pair[H] {
	cells := make(map[cellCoord][]H)
	for _, e := range entries {
		c := g.cellOf(e.Position)
		cells[c] = append(cells[c], e.ID)
	}

	var pairs []Pair[H]
	for coord, members := range cells {
		// Intra-cell pairs.
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				pairs = append(pairs, Pair[H]{members[i], members[j]})
			}
		}

		// Forward-neighbour cross-cell pairs.
		for _, off := range forwardOffsets {
			neighbor := cellCoord{coord.x + off.x, coord.y + off.y, coord.z + off.z}
			others, ok := cells[neighbor]
			if !ok {
				continue
			}
			for _, a := range members {
				for _, b := range others {
					pairs = append(pairs, Pair[H]{a, b})
				}
			}
		}
	}
	return pairs
}
