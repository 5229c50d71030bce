package sand

import "strconv"

// Params holds the tunable rates of the simulation. All chances are per
// second; the tick driver scales them by dt.
type Params struct {
	AmbientCoolingRate float64
	CondensationChance float64
	SmokeEmitChance    float64
	PlantGrowthChance  float64

	Terrain bool
}

// Config controls the sand world dimensions and seeding.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  200,
		Height: 150,
		Seed:   1337,
		Params: Params{
			AmbientCoolingRate: 0.005,
			CondensationChance: 0.006,
			SmokeEmitChance:    0.1,
			PlantGrowthChance:  0.09,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["terrain"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.Terrain = parsed
		}
	}
	if v, ok := cfg["cooling_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.AmbientCoolingRate = parsed
		}
	}
	if v, ok := cfg["condensation_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.CondensationChance = parsed
		}
	}
	if v, ok := cfg["smoke_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.SmokeEmitChance = parsed
		}
	}
	if v, ok := cfg["plant_growth_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.PlantGrowthChance = parsed
		}
	}
	return c
}
