package sand

import (
	"sand-ca/internal/core"
	prng "sand-ca/pkg/core"
)

// MaxDt caps a single tick's time delta so a stalled frame cannot trigger
// catastrophic catch-up.
const MaxDt = 0.1

// World is the falling-sand simulation: a dense grid of particles advanced
// by variable-dt ticks. All randomness flows through one seeded PRNG so runs
// reproduce exactly; rendering draws from a separate stream so reading
// pixels never perturbs the simulation.
type World struct {
	cfg Config

	grid *Grid

	rng       *prng.RNG
	renderRNG *prng.RNG

	pixels []uint8

	lastSnap map[string]CellState
}

// New returns a sand world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sand world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	w := &World{
		cfg:       cfg,
		grid:      newGrid(cfg.Width, cfg.Height),
		rng:       prng.NewRNG(cfg.Seed),
		renderRNG: prng.NewRNG(cfg.Seed + 1),
		lastSnap:  map[string]CellState{},
	}
	w.pixels = make([]uint8, 4*w.grid.Len())
	if cfg.Params.Terrain {
		w.GenerateTerrain(cfg.Seed)
	}
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Grid exposes the particle store for collaborators that render or probe.
func (w *World) Grid() *Grid { return w.grid }

// Reset reseeds both random streams and rebuilds the world: all Empty, or
// the generated terrain when the config enables it.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.rng.Reseed(seed)
	w.renderRNG.Reseed(seed + 1)
	w.grid.Clear()
	w.lastSnap = map[string]CellState{}
	if w.cfg.Params.Terrain {
		w.GenerateTerrain(seed)
	}
}

// Clear empties every cell.
func (w *World) Clear() {
	w.grid.Clear()
}

// Tick advances the world by dt seconds. Non-positive dt is a no-op; dt is
// clamped to MaxDt. Rows run bottom-up so nothing falls more than one cell
// per tick, and the column order is reshuffled every tick to kill
// directional bias.
func (w *World) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	if dt > MaxDt {
		dt = MaxDt
	}

	w.grid.clearTickFlags()
	cols := w.grid.shuffleColumns(w.rng)

	for y := w.grid.H - 1; y >= 0; y-- {
		for _, x := range cols {
			p := w.grid.At(x, y)
			if p.Kind == Empty || p.processed {
				continue
			}
			p.processed = true

			if w.stepLifespan(x, y, p, dt) {
				continue
			}
			p = w.grid.At(x, y)

			w.stepThermal(x, y, p, dt)

			if w.stepReaction(x, y, p, dt) {
				continue
			}
			p = w.grid.At(x, y)
			p.TimeInState += dt

			w.stepMotion(x, y, p)
		}
	}
}

// SetCell writes a particle of kind k at the requested temperature.
// Out-of-bounds and invalid kinds are rejected silently; Generator cells are
// protected from everything except the Eraser tool.
func (w *World) SetCell(x, y int, k Kind, temp float64) {
	if !k.Valid() {
		return
	}
	cur := w.grid.At(x, y)
	if cur == nil {
		return
	}
	if cur.Kind == Generator && k != Eraser {
		return
	}
	if k == Eraser {
		k = Empty
		temp = AmbientTemp
	}
	w.grid.Set(x, y, NewParticle(k, temp))
}

// PaintTemp returns the stamp temperature used for painting kind k.
func PaintTemp(k Kind) float64 {
	if k == Lava {
		return 2500
	}
	return AmbientTemp
}

// Paint stamps a filled disc of the given radius centred on (x, y).
func (w *World) Paint(x, y, radius int, k Kind) {
	if !k.Valid() {
		return
	}
	if radius < 0 {
		radius = 0
	}
	temp := PaintTemp(k)
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			w.SetCell(x+dx, y+dy, k, temp)
		}
	}
}

// CellInfo is the probe view of one cell.
type CellInfo struct {
	Kind    Kind
	Temp    float64
	Life    float64
	HasLife bool
	Burning bool
	Color   [3]uint8
}

// Probe reports the state of the cell at (x, y). ok is false out of bounds.
func (w *World) Probe(x, y int) (info CellInfo, ok bool) {
	p := w.grid.At(x, y)
	if p == nil {
		return CellInfo{}, false
	}
	return CellInfo{
		Kind:    p.Kind,
		Temp:    p.Temp,
		Life:    p.Life,
		HasLife: p.HasLife,
		Burning: p.Burning,
		Color:   p.Color(w.renderRNG),
	}, true
}

// Pixels renders every cell into the RGBA buffer for the display layer.
func (w *World) Pixels() []uint8 {
	for y := 0; y < w.grid.H; y++ {
		for x := 0; x < w.grid.W; x++ {
			p := w.grid.At(x, y)
			base := 4 * w.grid.Index(x, y)
			c := p.Color(w.renderRNG)
			w.pixels[base+0] = c[0]
			w.pixels[base+1] = c[1]
			w.pixels[base+2] = c[2]
			w.pixels[base+3] = 255
		}
	}
	return w.pixels
}

// TempAt reports the cell temperature used by the temperature overlay.
// Out-of-range coordinates read as ambient.
func (w *World) TempAt(x, y int) float64 {
	if p := w.grid.At(x, y); p != nil {
		return p.Temp
	}
	return AmbientTemp
}

// ParameterControls lists the HUD-adjustable tunables.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "cooling_rate", Label: "Ambient cooling", Type: core.ParamTypeFloat, Step: 0.001, Min: 0, Max: 0.1, HasMin: true, HasMax: true},
		{Key: "condensation_chance", Label: "Condensation", Type: core.ParamTypeFloat, Step: 0.001, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "smoke_chance", Label: "Smoke emission", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "plant_growth_chance", Label: "Plant growth", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a tunable by key, clamping to its bounds.
func (w *World) SetFloatParameter(key string, value float64) bool {
	clampTo := func(v, lo, hi float64) float64 {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
	switch key {
	case "cooling_rate":
		w.cfg.Params.AmbientCoolingRate = clampTo(value, 0, 0.1)
	case "condensation_chance":
		w.cfg.Params.CondensationChance = clampTo(value, 0, 1)
	case "smoke_chance":
		w.cfg.Params.SmokeEmitChance = clampTo(value, 0, 1)
	case "plant_growth_chance":
		w.cfg.Params.PlantGrowthChance = clampTo(value, 0, 1)
	default:
		return false
	}
	return true
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
