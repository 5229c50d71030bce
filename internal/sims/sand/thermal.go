package sand

// dtScale converts per-second rates to the 60 ticks/sec design baseline.
const dtScale = 60.0

const (
	diagWeight       = 0.707
	maxThermalDelta  = 50.0
	inertiaDamping   = 0.2
	thermalWriteback = 0.01
)

// effectiveConductivity applies the per-kind reductions that keep generators
// from flash-heating their surroundings and make opaque solids perceptibly
// inert.
func effectiveConductivity(k Kind) float64 {
	c := k.Props().Conductivity
	switch k {
	case Generator:
		c *= 0.1
	case Stone, Glass:
		c *= 0.3
	}
	return c
}

func highInertia(k Kind) bool {
	switch k {
	case Lava, Stone, Glass, Ice:
		return true
	}
	return false
}

// stepThermal relaxes the cell toward the conductivity-weighted average of
// its eight neighbours, then applies ambient loss and heat generation.
// Off-grid neighbours count as ambient air.
func (w *World) stepThermal(x, y int, p *Particle, dt float64) {
	props := p.Props()
	c := effectiveConductivity(p.Kind)
	scale := dt * dtScale

	var sumTC, sumC float64
	for _, d := range neighborOffsets {
		weight := 1.0
		if d.dx != 0 && d.dy != 0 {
			weight = diagWeight
		}
		nt, nc := AmbientTemp, catalogue[Empty].Conductivity
		if n := w.grid.At(x+d.dx, y+d.dy); n != nil {
			nt = n.Temp
			nc = n.Props().Conductivity
		}
		sumTC += nt * nc * weight
		sumC += nc * weight
	}

	newTemp := p.Temp
	if total := c + sumC; total > 0.001 {
		target := (p.Temp*c + sumTC) / total
		delta := (target - p.Temp) * min(0.5, 0.8*c)
		if highInertia(p.Kind) {
			delta *= inertiaDamping
		}
		if delta > maxThermalDelta {
			delta = maxThermalDelta
		} else if delta < -maxThermalDelta {
			delta = -maxThermalDelta
		}
		newTemp = p.Temp + delta*scale
	}

	newTemp += (AmbientTemp - newTemp) * w.cfg.Params.AmbientCoolingRate * c * scale
	if props.HeatGen > 0 {
		newTemp += props.HeatGen * scale
	}

	newTemp = clampTemp(newTemp)
	if diff := newTemp - p.Temp; diff > thermalWriteback || diff < -thermalWriteback {
		p.Temp = newTemp
		p.invalidateColor()
	}
}

type offset struct{ dx, dy int }

// neighborOffsets enumerates the Moore neighbourhood, row by row.
var neighborOffsets = [8]offset{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// cardinalOffsets is the orthogonal subset used by acid and plant rules.
var cardinalOffsets = [4]offset{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
