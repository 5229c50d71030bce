package sand

import (
	"sand-ca/internal/core"
	prng "sand-ca/pkg/core"
)

// Grid is the dense particle store. Every cell always holds a Particle;
// Empty is the default kind. Coordinates run x left to right and y top to
// bottom. All mutations are bounds-checked: out-of-range reads return nil and
// out-of-range writes are silent no-ops.
type Grid struct {
	core.Bounds
	cells []Particle
	cols  []int
}

func newGrid(w, h int) *Grid {
	b := core.NewBounds(w, h)
	g := &Grid{Bounds: b, cells: make([]Particle, b.Len()), cols: make([]int, b.W)}
	for i := range g.cells {
		g.cells[i] = NewParticle(Empty, AmbientTemp)
	}
	for x := range g.cols {
		g.cols[x] = x
	}
	return g
}

// At returns the particle at (x, y), or nil when out of bounds. The pointer
// stays valid for the lifetime of the grid; Swap exchanges cell contents, not
// storage.
func (g *Grid) At(x, y int) *Particle {
	if !g.Contains(x, y) {
		return nil
	}
	return &g.cells[g.Index(x, y)]
}

// Set writes a particle into (x, y). Out-of-range writes are dropped.
func (g *Grid) Set(x, y int, p Particle) {
	if !g.Contains(x, y) {
		return
	}
	g.cells[g.Index(x, y)] = p
}

// Swap exchanges the particles at the two coordinates. Either coordinate out
// of range makes the call a no-op.
func (g *Grid) Swap(x1, y1, x2, y2 int) {
	if !g.Contains(x1, y1) || !g.Contains(x2, y2) {
		return
	}
	i, j := g.Index(x1, y1), g.Index(x2, y2)
	g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
}

// Clear rebuilds every cell as Empty at ambient temperature.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = NewParticle(Empty, AmbientTemp)
	}
}

func (g *Grid) clearTickFlags() {
	for i := range g.cells {
		g.cells[i].processed = false
		g.cells[i].movedThisStep = false
	}
}

// shuffleColumns re-randomises the column traversal order (Fisher-Yates) so
// that repeated ticks have no directional bias.
func (g *Grid) shuffleColumns(rng *prng.RNG) []int {
	rng.Shuffle(len(g.cols), func(i, j int) {
		g.cols[i], g.cols[j] = g.cols[j], g.cols[i]
	})
	return g.cols
}
