package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gol-board/model"
	"github.com/sheikhrachel/gol-board/utils"
)

const defaultConfigPath = "config.json"

var logger = log.New(os.Stderr, "[gol] ", log.LstdFlags)

// newFlagParser binds flags straight onto config, so its current values are the defaults
// and only flags actually passed change anything.
func newFlagParser(config *utils.Config, configPath *string, patterns *[]string) *flaggy.Parser {
	p := flaggy.NewParser("gol")
	p.Description = "Conway's Game of Life on a fixed, hard-edged board"
	p.ShowHelpOnUnexpected = true

	p.String(configPath, "c", "config", "Path to a JSON config file")
	p.Int(&config.Width, "x", "width", "Width of the board")
	p.Int(&config.Height, "y", "height", "Height of the board")
	p.Int(&config.Generations, "g", "generations", "Number of generations to run")
	p.Duration(&config.FrameRate, "i", "interval", "Delay between generations, for example 150ms")
	p.Bool(&config.Color, "", "color", "Colour live cells")
	p.Bool(&config.ClearScreen, "", "clear", "Clear the terminal between frames")
	p.Bool(&config.StopWhenStable, "", "stop-when-stable", "Stop early on extinction or a repeating pattern")
	p.Float64(&config.RandomDensity, "r", "random", "Fill the board randomly with this density (0-1)")
	p.Int64(&config.RandomSeed, "", "random-seed", "Seed for the random fill, 0 for time based")
	p.StringSlice(patterns, "p", "pattern",
		"Stamp a pattern as name:x:y, one of ["+strings.Join(model.PatternNames(), "|")+"]")
	return p
}

// parsePlacement reads a name:x:y pattern flag
func parsePlacement(s string) (utils.PatternPlacement, error) {
	var placement utils.PatternPlacement
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return placement, errors.Errorf("[parsePlacement] want name:x:y, got %q", s)
	}
	placement.Name = parts[0]
	x, err := strconv.Atoi(parts[1])
	if err != nil {
		return placement, errors.Wrapf(err, "[parsePlacement] bad x in %q", s)
	}
	y, err := strconv.Atoi(parts[2])
	if err != nil {
		return placement, errors.Wrapf(err, "[parsePlacement] bad y in %q", s)
	}
	placement.X, placement.Y = x, y
	return placement, nil
}

// parseFlags resolves the run configuration: defaults, then the config file, then flags.
// The first pass only discovers --config; flag errors surface on the second pass.
func parseFlags(args []string) (utils.Config, error) {
	var (
		configPath = defaultConfigPath
		scratch    = utils.DefaultConfig()
		ignored    []string
		patterns   []string
	)
	bootstrap := newFlagParser(&scratch, &configPath, &ignored)
	bootstrap.ShowHelpOnUnexpected = false
	bootstrap.ShowHelpWithHFlag = false
	bootstrap.ShowVersionWithVersionFlag = false
	_ = bootstrap.ParseArgs(args)

	config, err := utils.LoadConfig(configPath)
	if err != nil {
		// Load configuration - fallback to defaults if file doesn't exist
		logger.Printf("Using default configuration: %v", err)
		config = utils.DefaultConfig()
	}

	if err = newFlagParser(&config, &configPath, &patterns).ParseArgs(args); err != nil {
		return config, errors.Wrap(err, "[parseFlags] failed to parse flags")
	}
	for _, raw := range patterns {
		placement, err := parsePlacement(raw)
		if err != nil {
			return config, err
		}
		config.Patterns = append(config.Patterns, placement)
	}
	return config, nil
}

func main() {
	config, err := parseFlags(os.Args[1:])
	if err != nil {
		logger.Fatalf("%+v", err)
	}

	board, renderer, stats, err := initializeGame(config, os.Stdout)
	if err != nil {
		logger.Fatalf("%+v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			logger.Printf("received %v, shutting down", sig)
			cancel()
		case <-ctx.Done():
		}
		return nil
	})

	eg.Go(func() error {
		defer cancel()
		return runGame(ctx, board, renderer, stats, config)
	})

	if err = eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatalf("%+v", err)
	}
	displayFinalStats(os.Stdout, stats)
}
