package sand

import "testing"

func TestSandSinksThroughWater(t *testing.T) {
	world := testWorld(t, 1, 3, 2)
	world.SetCell(0, 0, Sand, AmbientTemp)
	world.SetCell(0, 1, Water, AmbientTemp)
	world.SetCell(0, 2, Stone, AmbientTemp)

	world.Tick(tickDt)

	if got := world.Grid().At(0, 1).Kind; got != Sand {
		t.Fatalf("sand should displace the lighter water, cell = %v", got)
	}
	if got := world.Grid().At(0, 0).Kind; got != Water {
		t.Fatalf("displaced water should rise, cell = %v", got)
	}
}

func TestSmokeRises(t *testing.T) {
	world := testWorld(t, 3, 5, 2)
	world.SetCell(1, 4, Smoke, AmbientTemp)

	world.Tick(tickDt)

	if got := world.Grid().At(1, 3).Kind; got != Smoke {
		t.Fatalf("smoke should rise one row, cell = %v", got)
	}
}

func TestSteamOvertakesSmoke(t *testing.T) {
	world := testWorld(t, 1, 4, 2)
	world.SetCell(0, 0, Generator, AmbientTemp)
	world.SetCell(0, 1, Smoke, AmbientTemp)
	world.SetCell(0, 2, Steam, AmbientTemp)
	world.SetCell(0, 3, Stone, AmbientTemp)

	world.Tick(tickDt)

	if got := world.Grid().At(0, 1).Kind; got != Steam {
		t.Fatalf("lighter steam should swap past smoke, cell = %v", got)
	}
}

func TestLiquidSpreadsSideways(t *testing.T) {
	world := testWorld(t, 3, 2, 2)
	world.SetCell(0, 1, Stone, AmbientTemp)
	world.SetCell(1, 1, Stone, AmbientTemp)
	world.SetCell(2, 1, Stone, AmbientTemp)
	world.SetCell(1, 0, Water, AmbientTemp)

	for i := 0; i < 10; i++ {
		world.Tick(tickDt)
		if world.Grid().At(0, 0).Kind == Water || world.Grid().At(2, 0).Kind == Water {
			return
		}
	}
	t.Fatal("water on a shelf should spread sideways")
}

func TestViscousLiquidSpreadsSlowly(t *testing.T) {
	spreadTicks := func(k Kind) int {
		world := testWorld(t, 21, 2, 9)
		for x := 0; x < 21; x++ {
			world.SetCell(x, 1, Stone, AmbientTemp)
		}
		world.SetCell(10, 0, k, AmbientTemp)
		for i := 1; i <= 400; i++ {
			world.Tick(tickDt)
			for x := 0; x < 21; x++ {
				p := world.Grid().At(x, 0)
				if p.Kind == k && (x <= 7 || x >= 13) {
					return i
				}
			}
		}
		return 400
	}

	if water, slime := spreadTicks(Water), spreadTicks(Slime); water >= slime {
		t.Fatalf("water (%d ticks) should outrun slime (%d ticks)", water, slime)
	}
}

func TestSplashDisplacesLiquidSideways(t *testing.T) {
	world := testWorld(t, 3, 3, 2)
	world.SetCell(0, 2, Stone, AmbientTemp)
	world.SetCell(1, 2, Water, AmbientTemp)
	world.SetCell(2, 2, Stone, AmbientTemp)
	world.SetCell(1, 1, Sand, AmbientTemp)

	world.Tick(tickDt)

	if got := world.Grid().At(1, 2).Kind; got != Sand {
		t.Fatalf("solid should drop into the liquid's cell, got %v", got)
	}
	if world.Grid().At(0, 1).Kind != Water && world.Grid().At(2, 1).Kind != Water {
		t.Fatal("splashed water should pop up beside the solid")
	}
}

func TestPowderRestsOnRigidPlatform(t *testing.T) {
	world := testWorld(t, 3, 3, 2)
	world.SetCell(1, 2, Stone, AmbientTemp)
	world.SetCell(1, 1, Sand, AmbientTemp)

	for i := 0; i < 30; i++ {
		world.Tick(tickDt)
	}
	if got := world.Grid().At(1, 1).Kind; got != Sand {
		t.Fatalf("powder on a rigid platform must not creep off, cell = %v", got)
	}
}

func TestPowderPilesOnPowder(t *testing.T) {
	world := testWorld(t, 3, 3, 2)
	world.SetCell(0, 2, Sand, AmbientTemp)
	world.SetCell(1, 2, Sand, AmbientTemp)
	world.SetCell(2, 2, Sand, AmbientTemp)
	world.SetCell(1, 1, Sand, AmbientTemp)
	world.SetCell(1, 0, Sand, AmbientTemp)

	world.Tick(tickDt)

	if world.Grid().At(0, 1).Kind != Sand && world.Grid().At(2, 1).Kind != Sand {
		t.Fatal("sand on a peak should slide diagonally")
	}
}

func TestGeneratorNeverMoves(t *testing.T) {
	world := testWorld(t, 3, 4, 2)
	world.SetCell(1, 1, Generator, AmbientTemp)

	for i := 0; i < 30; i++ {
		world.Tick(tickDt)
	}
	if got := world.Grid().At(1, 1).Kind; got != Generator {
		t.Fatalf("generator drifted, cell at origin = %v", got)
	}
}

func TestBottomRowDoesNotUnderflow(t *testing.T) {
	world := testWorld(t, 3, 3, 2)
	world.SetCell(1, 2, Sand, AmbientTemp)
	world.SetCell(0, 0, Steam, AmbientTemp)

	for i := 0; i < 30; i++ {
		world.Tick(tickDt)
	}
	sandSeen, steamSeen := false, false
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			switch world.Grid().At(x, y).Kind {
			case Sand:
				sandSeen = true
			case Steam:
				steamSeen = true
			}
		}
	}
	if !sandSeen {
		t.Fatal("bottom-row sand vanished off the grid")
	}
	if !steamSeen {
		t.Fatal("top-row steam vanished off the grid")
	}
}
