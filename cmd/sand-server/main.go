package main

import (
	"log"
	"net/http"

	"sand-ca/internal/server"
	"sand-ca/internal/sims/sand"

	"github.com/integrii/flaggy"
)

func main() {
	addr := "127.0.0.1:3030"
	width := 200
	height := 150
	seed := 1337
	tps := 60
	terrain := false

	flaggy.SetName("sand-server")
	flaggy.SetDescription("headless falling-sand simulation over websocket")
	flaggy.String(&addr, "a", "addr", "listen address")
	flaggy.Int(&width, "w", "width", "grid width in cells")
	flaggy.Int(&height, "", "height", "grid height in cells")
	flaggy.Int(&seed, "s", "seed", "deterministic seed")
	flaggy.Int(&tps, "t", "tps", "simulation ticks per second")
	flaggy.Bool(&terrain, "", "terrain", "generate a starting landscape")
	flaggy.Parse()

	cfg := sand.DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Seed = int64(seed)
	cfg.Params.Terrain = terrain

	world := sand.NewWithConfig(cfg)
	srv := server.New(world, tps)

	stop := make(chan struct{})
	defer close(stop)
	go srv.Run(stop)

	http.Handle("/ws", srv.Handler())

	log.Printf("sand-server listening on %s (grid %dx%d, seed %d)", addr, width, height, seed)
	log.Fatal(http.ListenAndServe(addr, nil))
}
