package main

import (
	"context"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lao-tseu-is-alive/go-boids3d/internal/simulation"
	"github.com/lao-tseu-is-alive/go-boids3d/pkg/flocking"
)

func main() {
	var (
		configPath   = flag.String("config", "", "json config file (defaults apply when empty)")
		configSchema = flag.String("config-schema", "config.schema.json", "schema for the config file")
		worldsPath   = flag.String("worlds", "", "json worlds file (built-in worlds when empty)")
		worldsSchema = flag.String("worlds-schema", "worlds.schema.json", "schema for the worlds file")
		seed         = flag.Uint64("seed", 42, "simulation seed")
	)
	flag.Parse()

	ctx := context.Background()

	registry := flocking.DefaultRegistry()
	if *worldsPath != "" {
		var err error
		registry, err = flocking.LoadRegistry(*worldsPath, *worldsSchema)
		if err != nil {
			log.Fatalf("loading worlds: %v", err)
		}
	}

	params := flocking.DefaultParams()
	if *configPath != "" {
		var err error
		params, err = flocking.LoadParams(*configPath, *configSchema)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}

	ebiten.SetWindowSize(simulation.ScreenWidth, simulation.ScreenHeight)
	ebiten.SetWindowTitle("Boids 3D")

	game, err := simulation.GetNewGame(ctx, params, registry, *seed)
	if err != nil {
		log.Fatalf("starting simulation: %v", err)
	}
	defer game.System.Stop(ctx)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
