package sand

import (
	"testing"

	prng "sand-ca/pkg/core"
)

func TestGridBoundsAreSilent(t *testing.T) {
	g := newGrid(4, 3)

	if g.At(-1, 0) != nil || g.At(0, -1) != nil || g.At(4, 0) != nil || g.At(0, 3) != nil {
		t.Fatal("out-of-range reads must return nil")
	}

	g.Set(-1, 0, NewParticle(Sand, AmbientTemp))
	g.Set(9, 9, NewParticle(Sand, AmbientTemp))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if g.At(x, y).Kind != Empty {
				t.Fatal("out-of-range write leaked into the grid")
			}
		}
	}

	g.Set(1, 1, NewParticle(Sand, AmbientTemp))
	g.Swap(1, 1, 7, 7)
	if g.At(1, 1).Kind != Sand {
		t.Fatal("swap with out-of-range partner must be a no-op")
	}
}

func TestGridSwap(t *testing.T) {
	g := newGrid(3, 3)
	g.Set(0, 0, NewParticle(Sand, 100))
	g.Set(2, 2, NewParticle(Water, 40))

	g.Swap(0, 0, 2, 2)

	if g.At(0, 0).Kind != Water || g.At(2, 2).Kind != Sand {
		t.Fatal("swap must exchange cell contents")
	}
	if g.At(2, 2).Temp != 100 {
		t.Fatal("swap must carry temperature with the particle")
	}
}

func TestGridClear(t *testing.T) {
	g := newGrid(3, 3)
	g.Set(1, 1, NewParticle(Lava, 2000))
	g.Clear()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			p := g.At(x, y)
			if p.Kind != Empty || p.Temp != AmbientTemp {
				t.Fatal("clear must rebuild empty ambient cells")
			}
		}
	}
}

func TestShuffleColumnsIsPermutation(t *testing.T) {
	g := newGrid(16, 2)
	rng := prng.NewRNG(42)
	cols := g.shuffleColumns(rng)

	seen := make(map[int]bool, len(cols))
	for _, x := range cols {
		if x < 0 || x >= 16 || seen[x] {
			t.Fatalf("column order is not a permutation: %v", cols)
		}
		seen[x] = true
	}
	if len(seen) != 16 {
		t.Fatalf("permutation covers %d of 16 columns", len(seen))
	}
}
