package sand

import (
	"reflect"
	"testing"
)

func testWorld(t *testing.T, w, h int, seed int64) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Seed = seed
	return NewWithConfig(cfg)
}

const tickDt = 1.0 / 60

func TestNewWorldAllEmptyAtAmbient(t *testing.T) {
	world := testWorld(t, 8, 6, 1)
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			p := world.Grid().At(x, y)
			if p == nil {
				t.Fatalf("cell (%d,%d) missing", x, y)
			}
			if p.Kind != Empty {
				t.Fatalf("cell (%d,%d) = %v, want Empty", x, y, p.Kind)
			}
			if p.Temp != AmbientTemp {
				t.Fatalf("cell (%d,%d) temp = %v, want ambient", x, y, p.Temp)
			}
		}
	}
}

func TestSetCellProbeRoundTrip(t *testing.T) {
	world := testWorld(t, 8, 8, 1)
	world.SetCell(3, 4, Sand, AmbientTemp)

	info, ok := world.Probe(3, 4)
	if !ok {
		t.Fatal("probe in bounds must succeed")
	}
	if info.Kind != Sand {
		t.Fatalf("probe kind = %v, want Sand", info.Kind)
	}

	if _, ok := world.Probe(-1, 0); ok {
		t.Fatal("probe out of bounds must report !ok")
	}
}

func TestSetCellRejectsInvalidKind(t *testing.T) {
	world := testWorld(t, 4, 4, 1)
	world.SetCell(1, 1, Kind(42), 500)
	if got := world.Grid().At(1, 1).Kind; got != Empty {
		t.Fatalf("invalid kind must be rejected, cell = %v", got)
	}
}

func TestGeneratorProtectedFromOverwrite(t *testing.T) {
	world := testWorld(t, 4, 4, 1)
	world.SetCell(2, 2, Generator, AmbientTemp)

	world.SetCell(2, 2, Sand, AmbientTemp)
	if got := world.Grid().At(2, 2).Kind; got != Generator {
		t.Fatalf("generator overwritten by Sand, cell = %v", got)
	}

	world.SetCell(2, 2, Eraser, AmbientTemp)
	if got := world.Grid().At(2, 2).Kind; got != Empty {
		t.Fatalf("eraser must clear generator, cell = %v", got)
	}
}

func TestTickZeroIsNoOp(t *testing.T) {
	world := testWorld(t, 6, 6, 1)
	world.SetCell(2, 2, Sand, AmbientTemp)
	world.SetCell(3, 3, Water, AmbientTemp)

	before := append([]Particle(nil), world.grid.cells...)
	world.Tick(0)
	world.Tick(-1)

	for i, p := range world.grid.cells {
		if p.Kind != before[i].Kind || p.Temp != before[i].Temp {
			t.Fatalf("tick(0) mutated cell %d: %+v -> %+v", i, before[i], p)
		}
	}
}

func TestStoneAtAmbientUnchangedByTick(t *testing.T) {
	world := testWorld(t, 5, 5, 1)
	world.SetCell(2, 4, Stone, AmbientTemp)
	for i := 0; i < 10; i++ {
		world.Tick(tickDt)
	}
	p := world.Grid().At(2, 4)
	if p.Kind != Stone {
		t.Fatalf("stone changed kind to %v", p.Kind)
	}
	if p.Temp != AmbientTemp {
		t.Fatalf("stone at ambient drifted to %v", p.Temp)
	}
}

func TestClearThenSnapshotEmpty(t *testing.T) {
	world := testWorld(t, 8, 8, 1)
	world.Paint(4, 4, 2, Sand)
	world.Clear()
	if snap := world.Snapshot(); len(snap) != 0 {
		t.Fatalf("snapshot after clear has %d cells", len(snap))
	}
}

func TestSingleParticleFallsOneRowPerTick(t *testing.T) {
	world := testWorld(t, 5, 5, 1)
	world.SetCell(2, 0, Sand, AmbientTemp)

	world.Tick(tickDt)
	if world.Grid().At(2, 1).Kind != Sand {
		t.Fatal("sand should fall exactly one row")
	}
	if world.Grid().At(2, 0).Kind != Empty {
		t.Fatal("origin cell should empty")
	}

	world.Tick(tickDt)
	if world.Grid().At(2, 2).Kind != Sand {
		t.Fatal("sand should be two rows down after two ticks")
	}
}

func TestTickInvariants(t *testing.T) {
	world := testWorld(t, 24, 24, 7)
	world.Paint(6, 4, 2, Sand)
	world.Paint(12, 4, 2, Water)
	world.Paint(18, 4, 1, Lava)
	world.Paint(6, 14, 1, Oil)
	world.Paint(12, 14, 1, Ice)
	world.SetCell(3, 20, Generator, AmbientTemp)
	world.SetCell(20, 20, Generator, AmbientTemp)
	world.Paint(12, 20, 2, Wood)
	world.SetCell(12, 18, Fire, 900)

	for tick := 0; tick < 120; tick++ {
		world.Tick(tickDt)
		for y := 0; y < 24; y++ {
			for x := 0; x < 24; x++ {
				p := world.Grid().At(x, y)
				if p.Temp < MinTemp || p.Temp > MaxTemp {
					t.Fatalf("tick %d: cell (%d,%d) temp %v out of bounds", tick, x, y, p.Temp)
				}
				if !p.Kind.Valid() || p.Kind == Eraser {
					t.Fatalf("tick %d: cell (%d,%d) has invalid kind %v", tick, x, y, p.Kind)
				}
			}
		}
		if world.Grid().At(3, 20).Kind != Generator || world.Grid().At(20, 20).Kind != Generator {
			t.Fatalf("tick %d: generator cell changed kind", tick)
		}
	}
}

func TestDeterministicRuns(t *testing.T) {
	run := func() map[string]CellState {
		world := testWorld(t, 20, 20, 99)
		world.Paint(10, 2, 2, Sand)
		world.Paint(5, 10, 2, Water)
		world.Paint(15, 10, 1, Oil)
		world.SetCell(10, 18, Fire, 900)
		for i := 0; i < 30; i++ {
			world.Tick(tickDt)
		}
		return world.Snapshot()
	}

	first := run()
	second := run()
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical seeds and inputs must produce identical snapshots")
	}
	if len(first) == 0 {
		t.Fatal("expected a non-empty world")
	}
}

func TestResetRestoresEmptyWorld(t *testing.T) {
	world := testWorld(t, 10, 10, 5)
	world.Paint(5, 5, 2, Sand)
	for i := 0; i < 10; i++ {
		world.Tick(tickDt)
	}
	world.Reset(0)
	if snap := world.Snapshot(); len(snap) != 0 {
		t.Fatalf("reset world still holds %d cells", len(snap))
	}
}

func TestSetFloatParameter(t *testing.T) {
	world := testWorld(t, 4, 4, 1)
	if !world.SetFloatParameter("cooling_rate", 0.02) {
		t.Fatal("cooling_rate must be adjustable")
	}
	if got := world.cfg.Params.AmbientCoolingRate; got != 0.02 {
		t.Fatalf("cooling_rate = %v, want 0.02", got)
	}
	if !world.SetFloatParameter("cooling_rate", 5) {
		t.Fatal("setter should clamp, not reject")
	}
	if got := world.cfg.Params.AmbientCoolingRate; got != 0.1 {
		t.Fatalf("cooling_rate should clamp to 0.1, got %v", got)
	}
	if world.SetFloatParameter("no_such_key", 1) {
		t.Fatal("unknown key must be rejected")
	}
	if len(world.ParameterControls()) == 0 {
		t.Fatal("expected HUD controls")
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":            "32",
		"h":            "16",
		"seed":         "77",
		"cooling_rate": "0.01",
	})
	if cfg.Width != 32 || cfg.Height != 16 {
		t.Fatalf("dimensions = %dx%d, want 32x16", cfg.Width, cfg.Height)
	}
	if cfg.Seed != 77 {
		t.Fatalf("seed = %d, want 77", cfg.Seed)
	}
	if cfg.Params.AmbientCoolingRate != 0.01 {
		t.Fatalf("cooling rate = %v, want 0.01", cfg.Params.AmbientCoolingRate)
	}
}

func TestSandPileScenario(t *testing.T) {
	world := testWorld(t, 10, 10, 3)
	for x := 0; x < 10; x++ {
		world.SetCell(x, 9, Stone, AmbientTemp)
	}
	for i := 0; i < 100; i++ {
		world.SetCell(5, 0, Sand, AmbientTemp)
		world.Tick(tickDt)
	}

	if world.Grid().At(5, 8).Kind != Sand {
		t.Fatal("pile base must hold sand above the stone floor")
	}
	height := 0
	for y := 8; y >= 0; y-- {
		if world.Grid().At(5, y).Kind != Sand {
			break
		}
		height++
	}
	if height < 3 {
		t.Fatalf("pile height = %d, want >= 3", height)
	}
	baseRow := 0
	for x := 0; x < 10; x++ {
		if world.Grid().At(x, 8).Kind == Sand {
			baseRow++
		}
	}
	if baseRow < 3 {
		t.Fatalf("pile base width = %d, want >= 3", baseRow)
	}
	for x := 0; x < 10; x++ {
		if world.Grid().At(x, 9).Kind != Stone {
			t.Fatalf("stone floor broken at x=%d", x)
		}
	}
}
