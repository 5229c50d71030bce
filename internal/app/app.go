//go:build ebiten

package app

import (
	"fmt"
	"time"

	"sand-ca/internal/core"
	"sand-ca/internal/render"
	"sand-ca/internal/sims/sand"
	"sand-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// paintSim is the painting surface the GUI needs beyond the core contract.
type paintSim interface {
	Paint(x, y, radius int, k sand.Kind)
	Probe(x, y int) (sand.CellInfo, bool)
	Clear()
}

// palette is the hotkey order for material selection.
var palette = []sand.Kind{
	sand.Sand, sand.Water, sand.Stone, sand.Wood, sand.Fire, sand.Lava,
	sand.Oil, sand.Acid, sand.Plant, sand.Ice, sand.Coal, sand.Gunpowder,
	sand.Fuse, sand.Gasoline, sand.Slime, sand.Steam, sand.Generator,
}

// Game adapts the sand world to the ebiten.Game interface and adds painting.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	dt       float64
	paused   bool
	tickOnce bool
	seed     int64

	selected int
	brush    int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale, tps int, seed int64) *Game {
	size := sim.Size()
	if tps <= 0 {
		tps = 60
	}
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, scale),
		hud:     ui.NewHUD(),
		scale:   scale,
		dt:      1.0 / float64(tps),
		seed:    seed,
		brush:   3,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles input, painting and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.selected = (g.selected + 1) % len(palette)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) && g.brush < 16 {
		g.brush++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) && g.brush > 0 {
		g.brush--
	}
	for i, key := range digitKeys {
		if i < len(palette) && inpututil.IsKeyJustPressed(key) {
			g.selected = i
		}
	}

	ps, _ := g.sim.(paintSim)
	if ps != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			ps.Clear()
		}
		cx, cy := g.cursorCell()
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			ps.Paint(cx, cy, g.brush, palette[g.selected])
		}
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
			ps.Paint(cx, cy, g.brush, sand.Eraser)
		}
		g.updateHUD(ps, cx, cy)
	}

	if g.overlay != nil {
		g.overlay.Update()
	}

	if !g.paused || g.tickOnce {
		g.sim.Tick(g.dt)
		g.tickOnce = false
	}
	return nil
}

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
	ebiten.KeyDigit9,
}

func (g *Game) cursorCell() (int, int) {
	mx, my := ebiten.CursorPosition()
	s := g.scale
	if s <= 0 {
		s = 1
	}
	return mx / s, my / s
}

func (g *Game) updateHUD(ps paintSim, cx, cy int) {
	if g.hud == nil {
		return
	}
	status := fmt.Sprintf("%s  brush %d", palette[g.selected], g.brush)
	if g.paused {
		status += "  [paused]"
	}
	probe := ""
	if info, ok := ps.Probe(cx, cy); ok && info.Kind != sand.Empty {
		probe = fmt.Sprintf("%s %.0fC", info.Kind, info.Temp)
		if info.HasLife {
			probe += fmt.Sprintf(" life %.1fs", info.Life)
		}
		if info.Burning {
			probe += " burning"
		}
	}
	g.hud.SetLines(status, probe)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Pixels(), g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		g.hud.Draw(screen)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
