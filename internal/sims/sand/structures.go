package sand

import "fmt"

// Structure is a named template of particles stamped relative to an anchor.
// Rows use one rune per cell; the legend below maps runes to kinds.
type Structure struct {
	Name string
	Rows []string
}

var structureLegend = map[byte]Kind{
	'.': Empty,
	'#': Wood,
	'S': Stone,
	's': Sand,
	'W': Water,
	'C': Coal,
	'G': Generator,
	'g': Gunpowder,
	'F': Fuse,
	'P': Plant,
}

var structures = []Structure{
	{
		Name: "hut",
		Rows: []string{
			"..###..",
			".#...#.",
			"#.....#",
			"#.....#",
			"#######",
		},
	},
	{
		Name: "dune",
		Rows: []string{
			"...s...",
			"..sss..",
			".sssss.",
			"sssssss",
		},
	},
	{
		Name: "bomb",
		Rows: []string{
			".FFF.",
			"FgggF",
			"FgggF",
			".ggg.",
		},
	},
	{
		Name: "heater",
		Rows: []string{
			"SSSSS",
			"S.G.S",
			"SSSSS",
		},
	},
	{
		Name: "pond",
		Rows: []string{
			"S.....S",
			"S.WWW.S",
			"SWWWWWS",
			"SSSSSSS",
		},
	},
}

// Structures lists the available templates.
func Structures() []Structure {
	return structures
}

// Width returns the widest row of the template.
func (s Structure) Width() int {
	w := 0
	for _, row := range s.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Height returns the number of rows.
func (s Structure) Height() int { return len(s.Rows) }

// ParticleCount counts the non-empty cells the template stamps.
func (s Structure) ParticleCount() int {
	n := 0
	for _, row := range s.Rows {
		for i := 0; i < len(row); i++ {
			if k, ok := structureLegend[row[i]]; ok && k != Empty {
				n++
			}
		}
	}
	return n
}

// PlaceStructure stamps the named template with its top-left corner at
// (x, y). Cells falling outside the grid are skipped, as are Generator
// cells, which only the Eraser may overwrite.
func (w *World) PlaceStructure(name string, x, y int) error {
	for _, s := range structures {
		if s.Name != name {
			continue
		}
		for dy, row := range s.Rows {
			for dx := 0; dx < len(row); dx++ {
				k, ok := structureLegend[row[dx]]
				if !ok || k == Empty {
					continue
				}
				w.SetCell(x+dx, y+dy, k, AmbientTemp)
			}
		}
		return nil
	}
	return fmt.Errorf("unknown structure %q", name)
}
