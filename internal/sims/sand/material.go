package sand

// Kind identifies the material occupying a cell.
type Kind uint8

const (
	Empty Kind = iota
	Sand
	Water
	Stone
	Plant
	Fire
	Lava
	Glass
	Steam
	Oil
	Acid
	Coal
	Gunpowder
	Ice
	Wood
	Smoke
	ToxicGas
	Slime
	Gasoline
	Generator
	Fuse
	Ash
	kindCount

	// Eraser is an input-only tool: painting with it clears cells, including
	// Generators. It is never stored in the grid.
	Eraser Kind = 99
)

// Temp is an optional threshold temperature in degrees Celsius.
type Temp struct {
	C   float64
	Set bool
}

func tempC(c float64) Temp { return Temp{C: c, Set: true} }

// Properties is the immutable per-kind record. Densities are signed; a
// negative density means the material rises. LifeSeconds, Corrosive and
// ExplosiveRad use zero to mean "not applicable".
type Properties struct {
	Name         string
	Density      float64
	Conductivity float64
	Flammability float64
	MeltTemp     Temp
	BoilTemp     Temp
	FreezeTemp   Temp
	BaseColor    [3]uint8
	Viscosity    int
	LifeSeconds  float64
	Corrosive    float64
	ExplosiveRad float64
	HeatGen      float64
	IgnitionTemp Temp
}

var catalogue = [kindCount]Properties{
	Empty:     {Name: "Empty", Density: 0, Conductivity: 0.1, Viscosity: 1},
	Sand:      {Name: "Sand", Density: 5, Conductivity: 0.3, MeltTemp: tempC(1500), BaseColor: [3]uint8{194, 178, 128}, Viscosity: 1},
	Water:     {Name: "Water", Density: 3, Conductivity: 0.6, BoilTemp: tempC(100), FreezeTemp: tempC(0), BaseColor: [3]uint8{50, 100, 200}, Viscosity: 1},
	Stone:     {Name: "Stone", Density: 10, Conductivity: 0.2, BaseColor: [3]uint8{100, 100, 100}, Viscosity: 1},
	Plant:     {Name: "Plant", Density: 0.1, Conductivity: 0.1, Flammability: 0.4, MeltTemp: tempC(200), BaseColor: [3]uint8{50, 150, 50}, Viscosity: 1, IgnitionTemp: tempC(150)},
	Fire:      {Name: "Fire", Density: -2, Conductivity: 0.9, BaseColor: [3]uint8{255, 69, 0}, Viscosity: 1, LifeSeconds: 1},
	Lava:      {Name: "Lava", Density: 8, Conductivity: 0.8, MeltTemp: tempC(1800), FreezeTemp: tempC(1000), BaseColor: [3]uint8{200, 50, 0}, Viscosity: 5},
	Glass:     {Name: "Glass", Density: 9, Conductivity: 0.4, MeltTemp: tempC(1800), BaseColor: [3]uint8{210, 230, 240}, Viscosity: 1},
	Steam:     {Name: "Steam", Density: -5, Conductivity: 0.7, FreezeTemp: tempC(99), BaseColor: [3]uint8{180, 180, 190}, Viscosity: 1, LifeSeconds: 10},
	Oil:       {Name: "Oil", Density: 2, Conductivity: 0.4, Flammability: 0.9, BoilTemp: tempC(300), BaseColor: [3]uint8{80, 70, 20}, Viscosity: 3, IgnitionTemp: tempC(200)},
	Acid:      {Name: "Acid", Density: 3.5, Conductivity: 0.5, BoilTemp: tempC(200), BaseColor: [3]uint8{100, 255, 100}, Viscosity: 1, Corrosive: 0.15},
	Coal:      {Name: "Coal", Density: 4, Conductivity: 0.2, Flammability: 1, MeltTemp: tempC(800), BaseColor: [3]uint8{40, 40, 40}, Viscosity: 1, IgnitionTemp: tempC(250)},
	Gunpowder: {Name: "Gunpowder", Density: 4.5, Conductivity: 0.1, Flammability: 1, BaseColor: [3]uint8{60, 60, 70}, Viscosity: 1, ExplosiveRad: 4, IgnitionTemp: tempC(150)},
	Ice:       {Name: "Ice", Density: 2.9, Conductivity: 0.01, MeltTemp: tempC(1), BaseColor: [3]uint8{170, 200, 255}, Viscosity: 1},
	Wood:      {Name: "Wood", Density: 0.7, Conductivity: 0.2, Flammability: 0.6, MeltTemp: tempC(400), BaseColor: [3]uint8{139, 69, 19}, Viscosity: 1, IgnitionTemp: tempC(200)},
	Smoke:     {Name: "Smoke", Density: -3, Conductivity: 0.1, BaseColor: [3]uint8{150, 150, 150}, Viscosity: 1, LifeSeconds: 3},
	ToxicGas:  {Name: "Toxic Gas", Density: -4, Conductivity: 0.1, Flammability: 0.1, BaseColor: [3]uint8{150, 200, 150}, Viscosity: 1, LifeSeconds: 5, Corrosive: 0.02},
	Slime:     {Name: "Slime", Density: 3.2, Conductivity: 0.3, Flammability: 0.1, BoilTemp: tempC(150), BaseColor: [3]uint8{100, 200, 100}, Viscosity: 10},
	Gasoline:  {Name: "Gasoline", Density: 0.8, Conductivity: 0.5, Flammability: 1, BoilTemp: tempC(80), BaseColor: [3]uint8{255, 223, 186}, Viscosity: 2, IgnitionTemp: tempC(100)},
	Generator: {Name: "Generator", Density: 100, Conductivity: 0.9, BaseColor: [3]uint8{255, 0, 0}, Viscosity: 1, HeatGen: 5},
	Fuse:      {Name: "Fuse", Density: 5, Conductivity: 0.2, Flammability: 1, MeltTemp: tempC(150), BaseColor: [3]uint8{100, 80, 60}, Viscosity: 1, IgnitionTemp: tempC(150)},
	Ash:       {Name: "Ash", Density: 4.8, Conductivity: 0.2, BaseColor: [3]uint8{90, 90, 90}, Viscosity: 1},
}

var eraserProps = Properties{Name: "Eraser", Viscosity: 1, BaseColor: [3]uint8{255, 0, 255}}

// Props returns the property record for a kind. Unknown kinds map to Empty.
func (k Kind) Props() *Properties {
	if k == Eraser {
		return &eraserProps
	}
	if k >= kindCount {
		return &catalogue[Empty]
	}
	return &catalogue[k]
}

// Valid reports whether k names a catalogue material or the Eraser tool.
func (k Kind) Valid() bool {
	return k < kindCount || k == Eraser
}

// String returns the display name.
func (k Kind) String() string { return k.Props().Name }

// IsLiquid reports whether the kind flows as a liquid.
func (k Kind) IsLiquid() bool {
	switch k {
	case Water, Oil, Acid, Gasoline, Lava:
		return true
	}
	return false
}

// IsPowder reports whether the kind piles like a granular solid.
func (k Kind) IsPowder() bool {
	switch k {
	case Sand, Ash, Gunpowder, Coal:
		return true
	}
	return false
}

// IsRigidSolid reports whether the kind holds its shape under load.
func (k Kind) IsRigidSolid() bool {
	switch k {
	case Stone, Glass, Wood, Ice:
		return true
	}
	return false
}

// IsGas reports whether the kind rises. Derived from density.
func (k Kind) IsGas() bool {
	return k.Props().Density < 0
}

// Kinds lists every paintable catalogue kind, Empty first.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}
