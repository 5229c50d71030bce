package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a grid simulation must implement. Tick
// advances the world by dt seconds; Pixels exposes an RGBA buffer with four
// bytes per cell for the renderer.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Tick(dt float64)
	Pixels() []uint8
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
