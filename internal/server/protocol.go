package server

import "sand-ca/internal/sims/sand"

// Message type tags shared with the browser client.
const (
	TypePaint           = "paint"
	TypeClear           = "clear"
	TypeGetParticle     = "get_particle"
	TypePlaceStructure  = "place_structure"
	TypeSimulationState = "simulation_state"
	TypeDeltaUpdate     = "delta_update"
	TypeParticleInfo    = "particle_info"
	TypeMaterials       = "materials"
	TypeStructures      = "structures"
	TypeStructurePlaced = "structure_placed"
	TypeError           = "error"
)

// ClientMessage is the envelope for every inbound message; Type selects
// which fields are meaningful.
type ClientMessage struct {
	Type          string    `json:"type"`
	X             int       `json:"x"`
	Y             int       `json:"y"`
	Material      sand.Kind `json:"material"`
	BrushSize     int       `json:"brush_size"`
	StructureName string    `json:"structure_name"`
}

// SimulationState is the full keyframe: every occupied cell keyed by "x,y".
type SimulationState struct {
	Type      string                    `json:"type"`
	Width     int                       `json:"width"`
	Height    int                       `json:"height"`
	Particles map[string]sand.CellState `json:"particles"`
}

// DeltaUpdate carries cells added or changed since the last broadcast plus
// the keys of cells that emptied.
type DeltaUpdate struct {
	Type    string                    `json:"type"`
	Added   map[string]sand.CellState `json:"added"`
	Removed []string                  `json:"removed"`
}

// ParticleInfo answers a get_particle probe. Pointer fields are omitted for
// empty cells.
type ParticleInfo struct {
	Type     string     `json:"type"`
	X        int        `json:"x"`
	Y        int        `json:"y"`
	Material *sand.Kind `json:"material,omitempty"`
	Temp     *float64   `json:"temp,omitempty"`
	Life     *float64   `json:"life,omitempty"`
	Burning  *bool      `json:"burning,omitempty"`
}

// MaterialInfo describes one paintable material for the toolbar.
type MaterialInfo struct {
	ID           sand.Kind `json:"id"`
	Name         string    `json:"name"`
	Color        [3]uint8  `json:"color"`
	Density      float64   `json:"density"`
	IsLiquid     bool      `json:"is_liquid"`
	IsPowder     bool      `json:"is_powder"`
	IsRigidSolid bool      `json:"is_rigid_solid"`
	IsGas        bool      `json:"is_gas"`
}

// Materials lists the catalogue.
type Materials struct {
	Type      string         `json:"type"`
	Materials []MaterialInfo `json:"materials"`
}

// StructureInfo describes one placeable template.
type StructureInfo struct {
	Name          string `json:"name"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	ParticleCount int    `json:"particle_count"`
}

// Structures lists the placeable templates.
type Structures struct {
	Type       string          `json:"type"`
	Structures []StructureInfo `json:"structures"`
}

// StructurePlaced reports the outcome of a place_structure request.
type StructurePlaced struct {
	Type          string `json:"type"`
	Success       bool   `json:"success"`
	StructureName string `json:"structure_name"`
	Error         string `json:"error,omitempty"`
}

// ErrorMessage reports a rejected request.
type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func materialsMessage() Materials {
	msg := Materials{Type: TypeMaterials}
	for _, k := range sand.Kinds() {
		if k == sand.Empty {
			continue
		}
		props := k.Props()
		msg.Materials = append(msg.Materials, MaterialInfo{
			ID:           k,
			Name:         props.Name,
			Color:        props.BaseColor,
			Density:      props.Density,
			IsLiquid:     k.IsLiquid(),
			IsPowder:     k.IsPowder(),
			IsRigidSolid: k.IsRigidSolid(),
			IsGas:        k.IsGas(),
		})
	}
	return msg
}

func structuresMessage() Structures {
	msg := Structures{Type: TypeStructures}
	for _, s := range sand.Structures() {
		msg.Structures = append(msg.Structures, StructureInfo{
			Name:          s.Name,
			Width:         s.Width(),
			Height:        s.Height(),
			ParticleCount: s.ParticleCount(),
		})
	}
	return msg
}
