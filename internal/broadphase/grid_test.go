package broadphase

import (
	"testing"

	"rigid3d/internal/vecmath"
)

func hasPair(pairs []Pair[string], a, b string) bool {
	for _, p := range pairs {
		if (p.A == a && p.B == b) || (p.A == b && p.B == a) {
			return true
		}
	}
	return false
}

func TestSameAndAdjacentCellsProduceThreePairs(t *testing.T) {
	g := New[string](2)
	entries := []Entry[string]{
		{"a", vecmath.Vec3{1, 1, 1}},
		{"b", vecmath.Vec3{1.5, 1.5, 1.5}},
		{"c", vecmath.Vec3{3, 3, 3}},
	}

	pairs := g.Pairs(entries)
	if len(pairs) != 3 {
		t.Fatalf("len(pairs) = %d, want 3: %v", len(pairs), pairs)
	}
	if !hasPair(pairs, "a", "b") || !hasPair(pairs, "a", "c") || !hasPair(pairs, "b", "c") {
		t.Errorf("expected all three pairs among a,b,c, got %v", pairs)
	}
}

func TestFarApartBodiesProduceNoPairs(t *testing.T) {
	g := New[string](2)
	entries := []Entry[string]{
		{"a", vecmath.Vec3{1, 1, 1}},
		{"b", vecmath.Vec3{5, 5, 5}},
		{"c", vecmath.Vec3{-3, -3, -3}},
	}

	pairs := g.Pairs(entries)
	if len(pairs) != 0 {
		t.Fatalf("len(pairs) = %d, want 0: %v", len(pairs), pairs)
	}
}

func TestNoDuplicatePairsAcrossManyBodies(t *testing.T) {
	g := New[int](2)
	var entries []Entry[int]
	id := 0
	for x := -2; x <= 2; x++ {
		for y := -2; y <= 2; y++ {
			entries = append(entries, Entry[int]{id, vecmath.Vec3{float32(x), float32(y), 0}})
			id++
		}
	}

	pairs := g.Pairs(entries)
	seen := make(map[[2]int]bool)
	for _, p := range pairs {
		a, b := p.A, p.B
		if a > b {
			a, b = b, a
		}
		key := [2]int{a, b}
		if seen[key] {
			t.Fatalf("pair (%d,%d) emitted more than once", a, b)
		}
		seen[key] = true
	}
}

func TestCellBoundaryFloorsDown(t *testing.T) {
	g := New[string](2)
	// A body exactly at 2.0 with cellSize=2 lands in cell 1, not cell 0.
	c := g.cellOf(vecmath.Vec3{2, 0, 0})
	if c.x != 1 {
		t.Errorf("cellOf(2,0,0).x = %d, want 1", c.x)
	}
	cNeg := g.cellOf(vecmath.Vec3{-0.001, 0, 0})
	if cNeg.x != -1 {
		t.Errorf("cellOf(-0.001,0,0).x = %d, want -1", cNeg.x)
	}
}
