package sand

import "testing"

func TestCellKeyRoundTrip(t *testing.T) {
	key := CellKey(12, 34)
	if key != "12,34" {
		t.Fatalf("key = %q, want \"12,34\"", key)
	}
	x, y, ok := ParseCellKey(key)
	if !ok || x != 12 || y != 34 {
		t.Fatalf("parse = (%d,%d,%v)", x, y, ok)
	}
	if _, _, ok := ParseCellKey("nonsense"); ok {
		t.Fatal("malformed key accepted")
	}
	if _, _, ok := ParseCellKey("1,two"); ok {
		t.Fatal("non-numeric key accepted")
	}
}

func TestSnapshotListsOccupiedCells(t *testing.T) {
	world := testWorld(t, 6, 6, 1)
	world.SetCell(1, 2, Sand, AmbientTemp)
	world.SetCell(4, 4, Water, AmbientTemp)

	snap := world.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("snapshot has %d cells, want 2", len(snap))
	}
	cs, ok := snap[CellKey(1, 2)]
	if !ok || cs.Kind != Sand {
		t.Fatalf("snapshot missing sand cell: %+v", snap)
	}
	if cs.Temp != AmbientTemp {
		t.Fatalf("snapshot temp = %v", cs.Temp)
	}
}

func TestDeltaTracksChanges(t *testing.T) {
	world := testWorld(t, 6, 6, 1)
	world.SetCell(2, 2, Stone, AmbientTemp)
	world.Snapshot()

	added, removed := world.Delta()
	if len(added) != 0 || len(removed) != 0 {
		t.Fatalf("no-op delta = +%d -%d", len(added), len(removed))
	}

	world.SetCell(3, 3, Sand, AmbientTemp)
	added, removed = world.Delta()
	if len(added) != 1 || len(removed) != 0 {
		t.Fatalf("delta after add = +%d -%d", len(added), len(removed))
	}
	if _, ok := added[CellKey(3, 3)]; !ok {
		t.Fatal("delta missing the added cell")
	}

	world.SetCell(3, 3, Eraser, AmbientTemp)
	added, removed = world.Delta()
	if len(added) != 0 || len(removed) != 1 || removed[0] != CellKey(3, 3) {
		t.Fatalf("delta after erase = +%d -%v", len(added), removed)
	}
}

func TestDeltaReportsTemperatureChange(t *testing.T) {
	world := testWorld(t, 6, 6, 1)
	world.SetCell(2, 2, Stone, AmbientTemp)
	world.Snapshot()

	world.Grid().At(2, 2).setTemp(400)
	added, _ := world.Delta()
	if _, ok := added[CellKey(2, 2)]; !ok {
		t.Fatal("temperature change must appear in the delta")
	}
}

func TestSnapshotIncludesLifeAndBurning(t *testing.T) {
	world := testWorld(t, 4, 4, 1)
	world.SetCell(1, 1, Fire, 900)
	world.SetCell(2, 2, Fuse, AmbientTemp)
	world.Grid().At(2, 2).Burning = true

	snap := world.Snapshot()
	fire := snap[CellKey(1, 1)]
	if fire.Life == nil || *fire.Life != 1 {
		t.Fatalf("fire snapshot life = %v, want 1s", fire.Life)
	}
	fuse := snap[CellKey(2, 2)]
	if !fuse.Burning {
		t.Fatal("burning flag lost in snapshot")
	}
}
