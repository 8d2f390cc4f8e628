package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-bitgol/model"
	"github.com/sheikhrachel/go-bitgol/utils"
)

const progName = "bitgol"

// newScreen opens the terminal for the screen renderer
var newScreen = tcell.NewScreen

// cliOptions holds the parsed command line. set records which flags were given.
type cliOptions struct {
	configPath  string
	rows        uint
	cols        uint
	generations uint64
	seed        int64
	renderer    string
	delay       time.Duration
	clear       bool
	stats       bool
	pattern     string
	set         map[string]bool
}

// usage prints the help text
func usage(w io.Writer, fs *flag.FlagSet) {
	defaults := utils.DefaultConfig()
	fmt.Fprintf(w, "Usage: %s [flags] [STARTING_PATTERN]\n", progName)
	fmt.Fprintln(w, "Conway's Game of Life on a toroidal grid packed into a single 64-bit word.")
	fmt.Fprintf(w, "The default grid is %d rows x %d columns; rows x columns may not exceed %d.\n",
		defaults.Rows, defaults.Cols, model.WordBits)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "STARTING_PATTERN (optional, case-insensitive, default random):")
	fmt.Fprintln(w, "  random   random cells across the whole grid")
	fmt.Fprintln(w, "  beacon   period 2 beacon (mirror image of the usual drawing)")
	fmt.Fprintln(w, "  blinker  period 2 blinker")
	fmt.Fprintln(w, "  toad     period 2 toad")
	fmt.Fprintln(w, "beacon, blinker and toad are drawn for an 8x8 grid and are only meaningful on 8x8.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}

// parseArgs parses flags and the optional positional pattern
func parseArgs(args []string) (cliOptions, *flag.FlagSet, error) {
	var (
		opts = cliOptions{set: make(map[string]bool)}
		fs   = flag.NewFlagSet(progName, flag.ContinueOnError)
	)
	fs.SetOutput(io.Discard)

	fs.StringVar(&opts.configPath, "config", "", "JSON or YAML config file")
	fs.UintVar(&opts.rows, "rows", 0, "grid rows")
	fs.UintVar(&opts.cols, "cols", 0, "grid columns")
	fs.Uint64Var(&opts.generations, "generations", 0, "number of generations to run")
	fs.Int64Var(&opts.seed, "seed", 0, "seed for the random pattern (0 = time based)")
	fs.StringVar(&opts.renderer, "renderer", "", "output: text or screen")
	fs.DurationVar(&opts.delay, "delay", 0, "pause between generations")
	fs.BoolVar(&opts.clear, "clear", false, "clear the terminal before each text frame")
	fs.BoolVar(&opts.stats, "stats", false, "print run statistics to stderr")

	if err := fs.Parse(args); err != nil {
		return opts, fs, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	switch fs.NArg() {
	case 0:
	case 1:
		opts.pattern = fs.Arg(0)
	default:
		return opts, fs, errors.Errorf("expected at most one starting pattern, got %d arguments", fs.NArg())
	}

	if _, err := model.ParsePattern(opts.pattern); opts.pattern != "" && err != nil {
		return opts, fs, errors.Errorf("'%s' is not a valid starting pattern", opts.pattern)
	}

	return opts, fs, nil
}

// buildConfig loads the config file, if any, and applies the flags that were set
func buildConfig(opts cliOptions) (utils.Config, error) {
	config := utils.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if config, err = utils.LoadConfig(opts.configPath); err != nil {
			return config, err
		}
	}

	if opts.set["rows"] || opts.set["cols"] {
		if err := config.SetDims(requestedDims(opts, config)); err != nil {
			return config, err
		}
	}
	if opts.set["generations"] {
		config.Generations = opts.generations
	}
	if opts.set["seed"] {
		config.Seed = opts.seed
	}
	if opts.set["renderer"] {
		config.Renderer = strings.ToLower(opts.renderer)
	}
	if opts.set["delay"] {
		config.FrameRate = opts.delay
	}
	if opts.set["clear"] {
		config.ClearScreen = opts.clear
	}
	if opts.set["stats"] {
		config.ShowStats = opts.stats
	}
	if opts.pattern != "" {
		config.Pattern = opts.pattern
	}

	return config, nil
}

// requestedDims returns rows and cols as asked for, before any uint8 narrowing
func requestedDims(opts cliOptions, config utils.Config) (rows, cols uint) {
	rows, cols = uint(config.Rows), uint(config.Cols)
	if opts.set["rows"] {
		rows = opts.rows
	}
	if opts.set["cols"] {
		cols = opts.cols
	}
	return rows, cols
}

// requestedCells returns rows x cols as asked for
func requestedCells(opts cliOptions, config utils.Config) uint {
	rows, cols := requestedDims(opts, config)
	return rows * cols
}

// patternEcho is the line printed ahead of the first text frame: the pattern
// argument as typed, or the upper-cased configured pattern
func patternEcho(opts cliOptions, config utils.Config) string {
	if opts.pattern != "" {
		return opts.pattern
	}
	return strings.ToUpper(config.Pattern)
}

// configError formats a validation failure as a single diagnostic
func configError(cells uint, err error) string {
	if errors.Is(err, model.ErrGridTooLarge) {
		return fmt.Sprintf("ERROR: rows x cols = %d which exceeds %d, CANNOT CONTINUE", cells, model.WordBits)
	}
	return fmt.Sprintf("ERROR: %v", err)
}

// newRenderer builds the configured renderer. The second result is non-nil for the tcell renderer.
func newRenderer(config utils.Config, stdout io.Writer) (model.Renderer, *model.ScreenRenderer, error) {
	if config.Renderer != utils.RendererScreen {
		return &model.TerminalRenderer{Out: stdout, Clear: config.ClearScreen}, nil, nil
	}

	s, err := newScreen()
	if err != nil {
		return nil, nil, errors.Wrap(err, "[newRenderer] failed to open terminal")
	}
	screen, err := model.NewScreenRenderer(s)
	if err != nil {
		return nil, nil, err
	}
	return screen, screen, nil
}

// frameObserver records stats for each rendered generation and paces the output
type frameObserver struct {
	ctx   context.Context
	next  model.Renderer
	stats *utils.Stats
	delay time.Duration
	last  time.Time
}

func newFrameObserver(ctx context.Context, next model.Renderer, stats *utils.Stats, delay time.Duration) *frameObserver {
	return &frameObserver{ctx: ctx, next: next, stats: stats, delay: delay, last: time.Now()}
}

func (o *frameObserver) Render(gen uint64, reg model.Register, d model.Dims) error {
	if err := o.next.Render(gen, reg, d); err != nil {
		return err
	}

	frameStart := time.Now()
	o.stats.Update(gen, reg.Population(), frameStart.Sub(o.last))
	o.last = frameStart

	if o.delay > 0 {
		select {
		case <-o.ctx.Done():
		case <-time.After(o.delay):
		}
	}
	return nil
}

// displayFinalStats prints the run summary
func displayFinalStats(w io.Writer, stats *utils.Stats) {
	fmt.Fprintf(w, "Final stats: %d generations in %.3f seconds\n",
		stats.TotalGenerations, stats.Elapsed().Seconds())
	fmt.Fprintf(w, "Average: %.1f gen/sec, %.1f avg population, %d peak, %d final\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.PeakPopulation, stats.FinalPopulation)
}
