package sand

import (
	prng "sand-ca/pkg/core"
)

// AmbientTemp is the background temperature used for off-grid neighbours and
// long-term relaxation.
const AmbientTemp = 20.0

// MinTemp and MaxTemp bound every stored temperature.
const (
	MinTemp = -273.15
	MaxTemp = 3000.0
)

// Particle is the mutable state of one cell. Kind-derived attributes live in
// the catalogue; everything here can change during a tick.
type Particle struct {
	Kind        Kind
	Temp        float64
	Life        float64
	HasLife     bool
	TimeInState float64
	Burning     bool

	processed     bool
	movedThisStep bool

	color      [3]uint8
	colorValid bool
}

// NewParticle constructs a particle of the given kind. Temperature floors
// keep hot and cold kinds plausible regardless of the requested temp, and the
// base lifespan comes from the catalogue.
func NewParticle(k Kind, temp float64) Particle {
	switch k {
	case Fire:
		temp = max(temp, 800)
	case Lava:
		temp = max(temp, 1800)
	case Steam:
		temp = max(temp, 101)
	case Generator:
		temp = max(temp, 300)
	case Ice:
		temp = min(temp, -5)
	}
	p := Particle{Kind: k, Temp: clampTemp(temp)}
	if life := k.Props().LifeSeconds; life > 0 {
		p.Life = life
		p.HasLife = true
	}
	return p
}

func clampTemp(t float64) float64 {
	if t < MinTemp {
		return MinTemp
	}
	if t > MaxTemp {
		return MaxTemp
	}
	return t
}

// Props returns the catalogue record for the particle's kind.
func (p *Particle) Props() *Properties { return p.Kind.Props() }

func (p *Particle) invalidateColor() { p.colorValid = false }

func (p *Particle) setTemp(t float64) {
	t = clampTemp(t)
	if t != p.Temp {
		p.Temp = t
		p.colorValid = false
	}
}

// Color derives the display colour from kind, base colour and temperature.
// The result is cached until the particle mutates. The RNG drives the fire
// flicker and must be a render-side stream so that drawing never perturbs the
// simulation.
func (p *Particle) Color(rng *prng.RNG) [3]uint8 {
	if p.colorValid && p.Kind != Fire {
		return p.color
	}

	props := p.Props()
	r := float64(props.BaseColor[0])
	g := float64(props.BaseColor[1])
	b := float64(props.BaseColor[2])

	switch p.Kind {
	case Empty:
		// keep base
	case Fire:
		flicker := rng.Range(0.85, 1.15)
		tf := clamp01((p.Temp - 500) / 600)
		r = r*flicker + tf*60
		g = g * flicker * (1 - tf*0.6)
		b = b * flicker * (1 - tf)
	case Lava:
		tf := clamp01((p.Temp - 1000) / 800)
		r += tf * 50
		g += tf * 70
		b *= 1 - tf*0.5
	case Generator:
		tf := clamp01((p.Temp - 300) / 1000)
		r += tf * 50
		g *= 1 - tf*0.8
		b *= 1 - tf*0.8
	case Steam, Smoke, ToxicGas:
		if maxLife := props.LifeSeconds; maxLife > 0 && p.HasLife {
			lf := p.Life / maxLife
			if lf < 0 {
				lf = 0
			}
			fade := 0.6 * (1 - lf)
			const gray = 80.0
			r = r*lf + gray*fade
			g = g*lf + gray*fade
			b = b*lf + gray*fade
		}
	default:
		if p.Kind == Fuse && p.Burning {
			r += 100
			g += 50
			b -= 20
		} else {
			tf := (p.Temp - AmbientTemp) / 150
			if tf < -0.5 {
				tf = -0.5
			} else if tf > 1.5 {
				tf = 1.5
			}
			r += tf * 25
			g += tf * 15
			b -= tf * 15
		}
	}

	p.color = [3]uint8{clampByte(r), clampByte(g), clampByte(b)}
	p.colorValid = true
	return p.color
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
