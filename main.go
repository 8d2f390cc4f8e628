package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-bitgol/model"
	"github.com/sheikhrachel/go-bitgol/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit status
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)

	opts, fs, err := parseArgs(args)
	if errors.Is(err, flag.ErrHelp) {
		usage(stderr, fs)
		return 0
	}
	if err != nil {
		usage(stderr, fs)
		logger.Printf("ERROR: %v", err)
		return 1
	}

	config, err := buildConfig(opts)
	if err == nil {
		err = config.Validate()
	}
	if err != nil {
		logger.Println(configError(requestedCells(opts, config), err))
		return 1
	}

	// Validate has already resolved the pattern
	pattern, _ := config.PatternValue()
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sim, err := model.NewSimulation(config.Dims(), pattern, config.Generations, seed)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		return 1
	}

	renderer, screen, err := newRenderer(config, stdout)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		return 1
	}
	if screen == nil {
		fmt.Fprintln(stdout, patternEcho(opts, config))
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		stats     = utils.NewStats()
		eg, egCtx = errgroup.WithContext(ctx)
		observer  = newFrameObserver(egCtx, renderer, stats, config.FrameDelay())
	)

	eg.Go(func() error {
		return sim.Run(egCtx, observer)
	})
	if screen != nil {
		// The last frame stays up until a quit key, a signal or a failed run
		defer screen.Close()
		eg.Go(screen.WaitQuit)
		eg.Go(func() error {
			<-egCtx.Done()
			screen.Close()
			return nil
		})
	}

	err = eg.Wait()
	switch {
	case err == nil:
	case errors.Is(err, model.ErrQuit) && sim.Done():
	case errors.Is(err, model.ErrQuit), errors.Is(err, context.Canceled):
		logger.Printf("Shutting down gracefully at generation %d", sim.Generation())
	default:
		logger.Printf("ERROR: %v", err)
		return 1
	}

	if config.ShowStats {
		displayFinalStats(stderr, stats)
	}
	return 0
}
