//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"

	"schelling/internal/app"
	"schelling/internal/core"
	_ "schelling/internal/sims/schelling"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.SimParams())
	sim.Reset(cfg.Seed)

	if p, ok := sim.(core.ParametersProvider); ok {
		for _, group := range p.Parameters().Groups {
			for _, param := range group.Params {
				log.Printf("%s: %s=%s", group.Name, param.Label, param.Value)
			}
		}
	}

	game := app.New(sim, cfg.Scale, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("schelling — " + sim.Name() + " seed " + strconv.FormatInt(cfg.Seed, 10))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
