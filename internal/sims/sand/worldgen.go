package sand

import (
	"math"

	"github.com/aquilax/go-perlin"
)

const (
	terrainAlpha   = 2
	terrainBeta    = 2
	terrainOctaves = 3
)

// GenerateTerrain fills the lower part of the grid with a noise-shaped
// landscape: a stone ground line, sand dunes on top, water pools in the
// hollows, buried coal seams and scattered plants near the water line.
// Existing cells are overwritten except Generators, which keep their
// protection.
func (w *World) GenerateTerrain(seed int64) {
	width, height := w.grid.W, w.grid.H
	if width == 0 || height == 0 {
		return
	}
	noise := perlin.NewPerlin(terrainAlpha, terrainBeta, terrainOctaves, seed)

	base := float64(height) * 0.65
	amp := float64(height) * 0.18

	surface := make([]int, width)
	for x := 0; x < width; x++ {
		n := noise.Noise1D(float64(x) / float64(width) * 4)
		surface[x] = int(base + n*amp)
		if surface[x] < 1 {
			surface[x] = 1
		}
		if surface[x] > height-1 {
			surface[x] = height - 1
		}
	}

	waterLine := int(base + amp*0.25)

	for x := 0; x < width; x++ {
		top := surface[x]
		for y := top; y < height; y++ {
			depth := y - top
			kind := Stone
			switch {
			case depth < 3:
				kind = Sand
			case depth < height/4:
				seam := noise.Noise2D(float64(x)/18, float64(y)/18)
				if seam > 0.32 {
					kind = Coal
				}
			}
			w.SetCell(x, y, kind, AmbientTemp)
		}
		// Hollows below the water line fill with pools.
		if top > waterLine {
			for y := waterLine; y < top; y++ {
				w.SetCell(x, y, Water, AmbientTemp)
			}
		}
	}

	// Scattered plants on dry banks close to the water line.
	for x := 0; x < width; x++ {
		top := surface[x]
		if top > waterLine || top <= 1 {
			continue
		}
		if math.Abs(noise.Noise1D(float64(x)/9)) > 0.35 {
			w.SetCell(x, top-1, Plant, AmbientTemp)
		}
	}
}
