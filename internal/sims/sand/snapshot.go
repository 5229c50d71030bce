package sand

import "strconv"

// CellState mirrors the wire representation of one occupied cell. Keys on
// the wire are "x,y" strings; colours are 3-byte RGB.
type CellState struct {
	Kind    Kind     `json:"material"`
	Color   [3]uint8 `json:"color"`
	Temp    float64  `json:"temp"`
	Life    *float64 `json:"life,omitempty"`
	Burning bool     `json:"burning,omitempty"`
}

// CellKey packs coordinates into the "x,y" form used by the protocol.
func CellKey(x, y int) string {
	return strconv.Itoa(x) + "," + strconv.Itoa(y)
}

// ParseCellKey is the inverse of CellKey. ok is false for malformed keys.
func ParseCellKey(key string) (x, y int, ok bool) {
	for i := 0; i < len(key); i++ {
		if key[i] != ',' {
			continue
		}
		px, err1 := strconv.Atoi(key[:i])
		py, err2 := strconv.Atoi(key[i+1:])
		if err1 != nil || err2 != nil {
			return 0, 0, false
		}
		return px, py, true
	}
	return 0, 0, false
}

func (w *World) cellState(p *Particle) CellState {
	cs := CellState{
		Kind:    p.Kind,
		Color:   p.Color(w.renderRNG),
		Temp:    p.Temp,
		Burning: p.Burning,
	}
	if p.HasLife {
		life := p.Life
		cs.Life = &life
	}
	return cs
}

// Snapshot captures every non-Empty cell and resets the delta baseline.
func (w *World) Snapshot() map[string]CellState {
	snap := make(map[string]CellState)
	for y := 0; y < w.grid.H; y++ {
		for x := 0; x < w.grid.W; x++ {
			p := w.grid.At(x, y)
			if p.Kind == Empty {
				continue
			}
			snap[CellKey(x, y)] = w.cellState(p)
		}
	}
	w.lastSnap = snap
	return snap
}

// Delta reports cells added or changed since the previous Snapshot or Delta
// call, plus the keys of cells that emptied. The baseline advances with each
// call.
func (w *World) Delta() (added map[string]CellState, removed []string) {
	added = make(map[string]CellState)
	current := make(map[string]CellState, len(w.lastSnap))

	for y := 0; y < w.grid.H; y++ {
		for x := 0; x < w.grid.W; x++ {
			p := w.grid.At(x, y)
			if p.Kind == Empty {
				continue
			}
			key := CellKey(x, y)
			cs := w.cellState(p)
			current[key] = cs
			if prev, ok := w.lastSnap[key]; !ok || !sameCell(prev, cs) {
				added[key] = cs
			}
		}
	}
	for key := range w.lastSnap {
		if _, ok := current[key]; !ok {
			removed = append(removed, key)
		}
	}
	w.lastSnap = current
	return added, removed
}

func sameCell(a, b CellState) bool {
	if a.Kind != b.Kind || a.Color != b.Color || a.Temp != b.Temp || a.Burning != b.Burning {
		return false
	}
	if (a.Life == nil) != (b.Life == nil) {
		return false
	}
	return a.Life == nil || *a.Life == *b.Life
}
