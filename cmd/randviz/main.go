//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"randkit/internal/app"
	"randkit/internal/core"
	_ "randkit/internal/demos/disk"
	_ "randkit/internal/demos/sphere"
	_ "randkit/internal/demos/walk"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Demos()[cfg.Demo]
	if !ok {
		log.Fatalf("unknown demo %q", cfg.Demo)
	}

	demo := factory(cfg.OptMap())
	demo.Reset(cfg.Seed)

	game := app.New(demo, cfg.Scale, cfg.Seed)
	size := demo.Size()

	ebiten.SetWindowTitle("randviz — " + demo.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
