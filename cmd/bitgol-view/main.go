//go:build ebiten

package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-bitgol/model"
	"github.com/sheikhrachel/go-bitgol/utils"
	"github.com/sheikhrachel/go-bitgol/view"
)

func main() {
	var (
		configPath = flag.String("config", "", "JSON or YAML config file")
		rows       = flag.Uint("rows", 0, "grid rows (overrides the config file)")
		cols       = flag.Uint("cols", 0, "grid columns (overrides the config file)")
		scale      = flag.Int("scale", 48, "pixels per cell")
		tps        = flag.Int("tps", 60, "ticks per second")
		perStep    = flag.Int("ticks-per-step", 30, "ticks between generations")
	)
	flag.Parse()
	log.SetFlags(0)

	config := utils.DefaultConfig()
	if *configPath != "" {
		var err error
		if config, err = utils.LoadConfig(*configPath); err != nil {
			log.Fatalf("ERROR: %v", err)
		}
	}
	if *rows != 0 || *cols != 0 {
		r, c := uint(config.Rows), uint(config.Cols)
		if *rows != 0 {
			r = *rows
		}
		if *cols != 0 {
			c = *cols
		}
		if err := config.SetDims(r, c); err != nil {
			log.Fatalf("ERROR: %v", err)
		}
	}
	if flag.NArg() > 0 {
		config.Pattern = flag.Arg(0)
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("ERROR: %v", err)
	}

	pattern, _ := config.PatternValue()
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sim, err := model.NewSimulation(config.Dims(), pattern, config.Generations, seed)
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}

	d := config.Dims()
	ebiten.SetWindowTitle("bitgol - " + pattern.String())
	ebiten.SetTPS(*tps)
	ebiten.SetWindowSize(int(d.Cols)*(*scale), int(d.Rows)*(*scale))

	if err := ebiten.RunGame(view.New(sim, *scale, *perStep)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
