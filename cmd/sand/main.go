//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"grainfall/internal/app"
	"grainfall/internal/core"
	"grainfall/internal/sims/sand"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()["sand"]
	if !ok {
		log.Fatal(`sim "sand" is not registered`)
	}
	world, ok := factory(cfg.SimOptions()).(*sand.World)
	if !ok {
		log.Fatal(`sim "sand" does not expose the sand world surface`)
	}
	world.Reset(cfg.Seed)

	game := app.New(world, cfg.Scale, cfg.Seed)
	size := world.Size()

	ebiten.SetWindowTitle("grainfall — " + world.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
