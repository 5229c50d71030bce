package sand

// stepMotion moves the particle at (x, y) by at most one cell, trying each
// rule in strict priority: splash, vertical fall/rise, sideways push,
// density swap, diagonal slide, liquid/gas spread, powder piling. The first
// rule that succeeds ends the step. Generators never move.
func (w *World) stepMotion(x, y int, p *Particle) {
	if p.Kind == Empty || p.Kind == Generator {
		return
	}

	props := p.Props()
	vdir := 1
	if props.Density < 0 {
		vdir = -1
	}

	// Splash: a solid landing on liquid shoves the liquid aside instead of
	// waiting for a density swap, which reads as a surface splash.
	if vdir == 1 && isSolid(p.Kind) {
		if below := w.grid.At(x, y+1); below != nil && below.Kind.IsLiquid() {
			for _, dx := range w.sides() {
				if side := w.grid.At(x+dx, y); side != nil && side.Kind == Empty {
					w.grid.Swap(x+dx, y, x, y+1) // liquid out to the side
					w.grid.Swap(x, y, x, y+1)    // solid drops in
					w.markMoved(x+dx, y)
					w.markMoved(x, y+1)
					return
				}
			}
		}
	}

	ty := y + vdir
	below := w.grid.At(x, ty)

	// Vertical into empty.
	if below != nil && below.Kind == Empty {
		w.grid.Swap(x, y, x, ty)
		w.markMoved(x, ty)
		return
	}

	if below != nil && below.Kind != Generator {
		bd := below.Props().Density
		favours := (vdir == 1 && bd < props.Density) || (vdir == -1 && bd > props.Density)

		// Vertical push: shove the lighter blocker sideways and take its row.
		if favours {
			for _, dx := range w.sides() {
				if side := w.grid.At(x+dx, ty); side != nil && side.Kind == Empty {
					w.grid.Swap(x+dx, ty, x, ty)
					w.grid.Swap(x, y, x, ty)
					w.markMoved(x+dx, ty)
					w.markMoved(x, ty)
					return
				}
			}
			// Density swap.
			w.grid.Swap(x, y, x, ty)
			w.markMoved(x, y)
			w.markMoved(x, ty)
			return
		}
	}

	// A powder sitting directly on a rigid solid stays put: no diagonal
	// creep off the edge of platforms.
	if p.Kind.IsPowder() && below != nil && below.Kind.IsRigidSolid() {
		return
	}

	// Diagonal into empty, for anything that is not a rigid solid, when the
	// straight path is blocked by something it cannot pass.
	if !p.Kind.IsRigidSolid() && below != nil {
		bd := below.Props().Density
		blocked := below.Kind == Generator ||
			(vdir == 1 && bd >= props.Density) ||
			(vdir == -1 && bd <= props.Density)
		if blocked {
			for _, dx := range w.sides() {
				if diag := w.grid.At(x+dx, ty); diag != nil && diag.Kind == Empty {
					w.grid.Swap(x, y, x+dx, ty)
					w.markMoved(x+dx, ty)
					return
				}
			}
		}
	}

	// Sideways spread for liquids and gases.
	if p.Kind.IsLiquid() || props.Density < 0 {
		spreadChance := 1.0
		if p.Kind.IsLiquid() {
			spreadChance = max(0.1, 1-float64(props.Viscosity)*0.1)
		}
		for _, dx := range w.sides() {
			side := w.grid.At(x+dx, y)
			if side == nil {
				continue
			}
			if side.Kind == Empty {
				if w.rng.Chance(spreadChance) {
					w.grid.Swap(x, y, x+dx, y)
					w.markMoved(x+dx, y)
					return
				}
				continue
			}
			// Wave propagation: a particle that already moved this tick can
			// push a neighbouring liquid one further along.
			if side.Kind.IsLiquid() && p.movedThisStep {
				if beyond := w.grid.At(x+2*dx, y); beyond != nil && beyond.Kind == Empty {
					if w.rng.Chance(0.5 / float64(props.Viscosity)) {
						w.grid.Swap(x+dx, y, x+2*dx, y)
						w.grid.Swap(x, y, x+dx, y)
						w.markMoved(x+dx, y)
						w.markMoved(x+2*dx, y)
						return
					}
				}
			}
		}
	}

	// Powder piling.
	if p.Kind.IsPowder() && vdir == 1 && below != nil && below.Kind != Empty && below.Kind != Generator {
		for _, dx := range w.sides() {
			if diag := w.grid.At(x+dx, y+1); diag != nil && diag.Kind == Empty {
				w.grid.Swap(x, y, x+dx, y+1)
				w.markMoved(x+dx, y+1)
				return
			}
		}
	}
}

// isSolid reports whether the kind takes the splash path: anything that is
// neither a liquid, a gas, nor empty.
func isSolid(k Kind) bool {
	return k != Empty && !k.IsLiquid() && !k.IsGas()
}

// sides returns the two horizontal directions in random order.
func (w *World) sides() [2]int {
	if w.rng.Bool() {
		return [2]int{1, -1}
	}
	return [2]int{-1, 1}
}

func (w *World) markMoved(x, y int) {
	if p := w.grid.At(x, y); p != nil {
		p.movedThisStep = true
	}
}
