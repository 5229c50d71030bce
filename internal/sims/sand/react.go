package sand

import "math"

const (
	phaseChangeBuffer   = 5.0
	fuseBurnSeconds     = 4.0
	defaultFireLife     = 1.0
	condensationYLimit  = 5
	minCondenseState    = 10.0
	acidGasTempFactor   = 0.8
	fireWaterCooling    = 80.0
	fireWaterLifeDrain  = 10.0
	fireSmokeoutTemp    = 300.0
	fuseNeighborHeating = 20.0
)

// stepLifespan decrements remaining life and handles burnout conversions.
// Returns true when the particle was replaced; the replacement inherits the
// processed flag so it is not re-ticked this frame.
func (w *World) stepLifespan(x, y int, p *Particle, dt float64) bool {
	if p.Kind == Fuse && p.Burning && !p.HasLife {
		p.Life = fuseBurnSeconds
		p.HasLife = true
	}
	if !p.HasLife {
		return false
	}

	p.Life -= dt
	if p.Kind == Fuse && p.Burning {
		p.setTemp(p.Temp + 5*dt*dtScale)
	}
	p.invalidateColor()

	if p.Life > 0 {
		return false
	}

	switch p.Kind {
	case Fire:
		w.replace(x, y, NewParticle(Smoke, min(p.Temp*0.6, 400)))
	case Fuse:
		w.replace(x, y, NewParticle(Ash, max(p.Temp*0.5, AmbientTemp)))
	case Steam, Smoke, ToxicGas:
		w.replace(x, y, NewParticle(Empty, AmbientTemp))
	default:
		return false
	}
	return true
}

// replace writes a particle that has already been handled this tick.
func (w *World) replace(x, y int, p Particle) {
	p.processed = true
	w.grid.Set(x, y, p)
}

// fireLifeFor returns the initial Fire lifespan when the given fuel ignites.
func fireLifeFor(fuel Kind) float64 {
	switch fuel {
	case Wood:
		return 3.0
	case Coal:
		return 4.0
	}
	return defaultFireLife
}

// igniteCell turns the flammable particle at (x, y) into Fire, explodes it,
// or lights it when it is a fuse. sourceTemp is the hottest ignition source
// involved. minFireTemp is the floor for the new flame (800 for fire and
// fuses, 1000 for lava contact).
func (w *World) igniteCell(x, y int, victim *Particle, sourceTemp, minFireTemp float64) {
	switch victim.Kind {
	case Gunpowder:
		w.explode(x, y, victim.Props().ExplosiveRad)
	case Fuse:
		if !victim.Burning {
			victim.Burning = true
			victim.Life = fuseBurnSeconds
			victim.HasLife = true
			if ign := victim.Props().IgnitionTemp; ign.Set {
				victim.setTemp(max(victim.Temp, ign.C+50))
			}
			victim.invalidateColor()
		}
	default:
		life := fireLifeFor(victim.Kind)
		fire := NewParticle(Fire, max(minFireTemp, sourceTemp))
		fire.Life = life
		fire.HasLife = true
		w.grid.Set(x, y, fire)
	}
}

// stepReaction applies ignition, phase transitions and material-specific
// neighbour effects. Returns true when the particle at (x, y) was replaced.
func (w *World) stepReaction(x, y int, p *Particle, dt float64) bool {
	props := p.Props()
	scale := dt * dtScale

	// Ignition.
	if props.IgnitionTemp.Set && p.Temp >= props.IgnitionTemp.C && props.Flammability > 0 {
		external := false
		sourceTemp := p.Temp
		for _, d := range neighborOffsets {
			n := w.grid.At(x+d.dx, y+d.dy)
			if n == nil {
				continue
			}
			if n.Kind == Fire || n.Kind == Lava || (n.Kind == Fuse && n.Burning) {
				external = true
				sourceTemp = max(sourceTemp, n.Temp)
				break
			}
		}

		switch p.Kind {
		case Plant, Wood, Coal, Oil, Gasoline:
			if external || p.Temp > props.IgnitionTemp.C+100 {
				fire := NewParticle(Fire, max(800, sourceTemp))
				fire.Life = fireLifeFor(p.Kind)
				fire.HasLife = true
				w.replace(x, y, fire)
				return true
			}
		case Gunpowder:
			w.explode(x, y, props.ExplosiveRad)
			return true
		case Fuse:
			if external && !p.Burning {
				p.Burning = true
				p.Life = fuseBurnSeconds
				p.HasLife = true
				p.setTemp(max(p.Temp, props.IgnitionTemp.C+50))
				p.invalidateColor()
			}
		}
	}

	// Melting.
	if props.MeltTemp.Set && p.Temp >= props.MeltTemp.C+phaseChangeBuffer {
		switch p.Kind {
		case Sand:
			w.replace(x, y, NewParticle(Glass, p.Temp))
			return true
		case Glass:
			w.replace(x, y, NewParticle(Lava, p.Temp))
			return true
		case Ice:
			w.replace(x, y, NewParticle(Water, p.Temp))
			return true
		}
	}

	// Boiling.
	if props.BoilTemp.Set && p.Temp >= props.BoilTemp.C+phaseChangeBuffer {
		switch p.Kind {
		case Water:
			w.replace(x, y, NewParticle(Steam, p.Temp))
			return true
		case Acid, Slime:
			w.replace(x, y, NewParticle(ToxicGas, p.Temp))
			return true
		}
	}

	// Freezing and condensation.
	if props.FreezeTemp.Set && p.Temp <= props.FreezeTemp.C-phaseChangeBuffer {
		switch p.Kind {
		case Lava:
			w.replace(x, y, NewParticle(Stone, p.Temp))
			return true
		case Water:
			w.replace(x, y, NewParticle(Ice, p.Temp))
			return true
		case Steam:
			if p.TimeInState >= minCondenseState {
				chance := w.cfg.Params.CondensationChance * dt
				if y < condensationYLimit {
					chance = 1
				}
				if w.rng.Chance(chance) {
					w.replace(x, y, NewParticle(Water, p.Temp))
					return true
				}
			}
		}
	}

	switch p.Kind {
	case Fire:
		return w.fireEffects(x, y, p, dt)
	case Fuse:
		if p.Burning {
			w.fuseEffects(x, y, p, dt)
		}
	case Lava:
		w.lavaEffects(x, y, p)
	case Acid:
		return w.acidEffects(x, y, p, scale)
	case Plant:
		return w.plantEffects(x, y, p, dt)
	}
	return false
}

// fireEffects extinguishes against water and ice, spreads to fuel, and vents
// smoke. Water contact drains both temperature and life so dousing feels
// immediate. Returns true when the fire itself was replaced.
func (w *World) fireEffects(x, y int, p *Particle, dt float64) bool {
	scale := dt * dtScale
	fuelNearby := false

	for _, d := range neighborOffsets {
		nx, ny := x+d.dx, y+d.dy
		n := w.grid.At(nx, ny)
		if n == nil {
			continue
		}

		switch n.Kind {
		case Water, Ice:
			p.setTemp(p.Temp - fireWaterCooling*scale)
			if p.HasLife {
				p.Life -= fireWaterLifeDrain * dt
			}
			if w.rng.Chance(0.5 * scale) {
				if n.Kind == Water {
					w.grid.Set(nx, ny, NewParticle(Steam, max(101, n.Temp)))
				} else {
					w.grid.Set(nx, ny, NewParticle(Water, n.Temp))
				}
			}
			if p.Temp < fireSmokeoutTemp {
				w.replace(x, y, NewParticle(Smoke, min(p.Temp*0.6, 400)))
				return true
			}
		default:
			nprops := n.Props()
			if nprops.Flammability > 0 {
				fuelNearby = true
				if nprops.IgnitionTemp.Set && n.Temp >= nprops.IgnitionTemp.C {
					w.igniteCell(nx, ny, n, max(p.Temp, n.Temp), 800)
				}
			}
		}
	}

	if fuelNearby && p.HasLife {
		p.Life = defaultFireLife
	}

	if w.rng.Chance(w.cfg.Params.SmokeEmitChance * scale) {
		dx := 1
		if w.rng.Bool() {
			dx = -1
		}
		if above := w.grid.At(x+dx, y-1); above != nil && above.Kind == Empty {
			w.grid.Set(x+dx, y-1, NewParticle(Smoke, p.Temp*0.5))
		}
	}
	return false
}

// fuseEffects heats the neighbourhood and passes the flame on the moment a
// neighbour crosses its own ignition point.
func (w *World) fuseEffects(x, y int, p *Particle, dt float64) {
	scale := dt * dtScale
	for _, d := range neighborOffsets {
		nx, ny := x+d.dx, y+d.dy
		n := w.grid.At(nx, ny)
		if n == nil || n.Kind == Empty {
			continue
		}
		n.setTemp(n.Temp + fuseNeighborHeating*scale)
		nprops := n.Props()
		if nprops.Flammability > 0 && nprops.IgnitionTemp.Set && n.Temp >= nprops.IgnitionTemp.C {
			w.igniteCell(nx, ny, n, max(p.Temp, n.Temp), 800)
		}
	}
}

// lavaEffects ignites fuel that conduction has already brought to its
// ignition temperature. Lava itself heats only through the thermal step.
func (w *World) lavaEffects(x, y int, p *Particle) {
	for _, d := range neighborOffsets {
		nx, ny := x+d.dx, y+d.dy
		n := w.grid.At(nx, ny)
		if n == nil {
			continue
		}
		nprops := n.Props()
		if nprops.Flammability > 0 && nprops.IgnitionTemp.Set && n.Temp >= nprops.IgnitionTemp.C {
			w.igniteCell(nx, ny, n, max(1000, n.Temp), 1000)
		}
	}
}

// acidEffects dissolves one orthogonal neighbour per tick at most, venting
// toxic gas and occasionally consuming the acid itself.
func (w *World) acidEffects(x, y int, p *Particle, scale float64) bool {
	power := p.Props().Corrosive
	if power <= 0 {
		return false
	}
	for _, d := range cardinalOffsets {
		nx, ny := x+d.dx, y+d.dy
		n := w.grid.At(nx, ny)
		if n == nil {
			continue
		}
		switch n.Kind {
		case Empty, Acid, Glass, Generator:
			continue
		}
		if !w.rng.Chance(power * scale) {
			continue
		}

		victimTemp := n.Temp
		if n.Kind == Stone && w.rng.Chance(0.3) {
			w.grid.Set(nx, ny, NewParticle(Sand, victimTemp))
		} else {
			w.grid.Set(nx, ny, NewParticle(Empty, AmbientTemp))
			gas := NewParticle(ToxicGas, p.Temp*acidGasTempFactor)
			if above := w.grid.At(nx, ny-1); above != nil && above.Kind == Empty {
				w.grid.Set(nx, ny-1, gas)
			} else if above := w.grid.At(x, y-1); above != nil && above.Kind == Empty {
				w.grid.Set(x, y-1, gas)
			}
		}
		if w.rng.Chance(0.05 * scale) {
			w.replace(x, y, NewParticle(Empty, AmbientTemp))
			return true
		}
		break
	}
	return false
}

// plantEffects grows toward water within a comfortable temperature band and
// withers next to toxic gas.
func (w *World) plantEffects(x, y int, p *Particle, dt float64) bool {
	scale := dt * dtScale
	hasWater := false
	var emptyCells []offset
	var waterCells []offset
	for _, d := range cardinalOffsets {
		n := w.grid.At(x+d.dx, y+d.dy)
		if n == nil {
			continue
		}
		switch n.Kind {
		case Water:
			hasWater = true
			waterCells = append(waterCells, d)
		case Empty:
			emptyCells = append(emptyCells, d)
		}
	}

	if hasWater && AmbientTemp < p.Temp && p.Temp < 50 {
		if len(emptyCells) > 0 && w.rng.Chance(w.cfg.Params.PlantGrowthChance*dt) {
			d := emptyCells[w.rng.IntN(len(emptyCells))]
			w.grid.Set(x+d.dx, y+d.dy, NewParticle(Plant, p.Temp))
		}
		if len(waterCells) > 0 && w.rng.Chance(w.cfg.Params.PlantGrowthChance*0.5*dt) {
			d := waterCells[w.rng.IntN(len(waterCells))]
			w.grid.Set(x+d.dx, y+d.dy, NewParticle(Plant, p.Temp))
		}
	}

	for _, d := range neighborOffsets {
		n := w.grid.At(x+d.dx, y+d.dy)
		if n == nil || n.Kind != ToxicGas {
			continue
		}
		if w.rng.Chance(0.05 * n.Props().Corrosive * scale) {
			w.replace(x, y, NewParticle(Empty, AmbientTemp))
			return true
		}
	}
	return false
}

// explode clears the epicenter and sweeps every cell within the blast
// radius: heat, fire or smoke replacement, and structural degradation, all
// scaled by distance falloff. Victims are marked processed so the sweep is
// not compounded this tick, but spawned Fire and Smoke are left unprocessed
// on purpose, allowing the one-frame fire-to-smoke cascade the original
// exhibits.
func (w *World) explode(cx, cy int, radius float64) {
	if radius <= 0 {
		radius = 4
	}
	w.replace(cx, cy, NewParticle(Empty, AmbientTemp))

	r := int(radius)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			dist := math.Sqrt(float64(dx*dx + dy*dy))
			if dist > radius {
				continue
			}
			x, y := cx+dx, cy+dy
			p := w.grid.At(x, y)
			if p == nil {
				continue
			}
			s := 1 - dist/radius
			if s <= 0 {
				continue
			}

			p.setTemp(p.Temp + 1500*s)
			if p.Kind == Empty || p.Kind == Generator {
				continue
			}

			if !w.rng.Chance(0.95 * s) {
				p.processed = true
				continue
			}

			switch {
			case (p.Kind == Stone || p.Kind == Glass) && w.rng.Chance(0.3*s):
				sand := NewParticle(Sand, p.Temp)
				sand.processed = true
				w.grid.Set(x, y, sand)
			case p.Kind == Wood && w.rng.Chance(0.5*s):
				ash := NewParticle(Ash, p.Temp)
				ash.processed = true
				w.grid.Set(x, y, ash)
			case w.rng.Chance(0.6*s) && p.Kind != Water && p.Kind != Ice:
				fire := NewParticle(Fire, 800+700*s)
				fire.Life = defaultFireLife * s * 0.5
				fire.HasLife = true
				w.grid.Set(x, y, fire)
			default:
				smoke := NewParticle(Smoke, 400*s)
				smoke.Life = 3 * s
				smoke.HasLife = true
				w.grid.Set(x, y, smoke)
			}
		}
	}
}
