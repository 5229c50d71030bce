//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"

	"sand-ca/internal/app"
	"sand-ca/internal/core"
	_ "sand-ca/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()["sand"]
	if !ok {
		log.Fatal("sand simulation not registered")
	}

	sim := factory(map[string]string{
		"w":       strconv.Itoa(cfg.Width),
		"h":       strconv.Itoa(cfg.Height),
		"seed":    strconv.FormatInt(cfg.Seed, 10),
		"terrain": strconv.FormatBool(cfg.Terrain),
	})
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.TPS, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("sand-ca — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
