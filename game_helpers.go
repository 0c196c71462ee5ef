package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-board/model"
	"github.com/sheikhrachel/gol-board/utils"
)

// initializeGame builds the seeded board, its renderer and run stats.
// Random fill goes first so explicit seed cells and patterns always survive it.
func initializeGame(config utils.Config, out io.Writer) (*model.Board, *model.TerminalRenderer, *utils.Stats, error) {
	if err := config.Validate(); err != nil {
		return nil, nil, nil, err
	}

	board, err := model.NewBoard(config.Width, config.Height)
	if err != nil {
		return nil, nil, nil, err
	}

	if config.RandomDensity > 0 {
		seed := config.RandomSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		board.Randomize(rand.New(rand.NewSource(seed)), config.RandomDensity)
	}
	if err = board.Seed(config.SeedPoints()); err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] invalid seed")
	}
	for _, placement := range config.Patterns {
		pattern, err := model.LookupPattern(placement.Name)
		if err != nil {
			return nil, nil, nil, err
		}
		if err = board.Stamp(pattern, placement.X, placement.Y); err != nil {
			return nil, nil, nil, errors.Wrap(err, "[initializeGame] invalid pattern placement")
		}
	}

	renderer := model.NewTerminalRenderer(
		model.WithOutput(out),
		model.WithColor(config.Color),
		model.WithGlyphs(config.LiveGlyph, config.DeadGlyph),
	)

	return board, renderer, utils.NewStats(config.PopulationSmoothing), nil
}

// stagnationTracker remembers recent board hashes to spot still lifes and short cycles
type stagnationTracker struct {
	window  int
	history []string
}

func newStagnationTracker(window int) *stagnationTracker {
	return &stagnationTracker{window: max(window, 1)}
}

// Observe records the hash and reports whether it was seen within the window
func (s *stagnationTracker) Observe(hash string) bool {
	seen := false
	for _, h := range s.history {
		if h == hash {
			seen = true
			break
		}
	}

	s.history = append(s.history, hash)
	if len(s.history) > s.window {
		s.history = s.history[1:]
	}
	return seen
}

// gameState is the per-frame summary shown under each rendered board
type gameState struct {
	livingCells int
	density     float64
	status      string
	stagnant    bool
}

// updateGameState measures the current board and feeds the stagnation tracker
func updateGameState(board *model.Board, tracker *stagnationTracker) gameState {
	livingCells := board.Population()
	state := gameState{
		livingCells: livingCells,
		density:     float64(livingCells) / float64(board.Len()) * 100,
		status:      "Active",
		stagnant:    tracker.Observe(board.Hash()),
	}

	switch {
	case livingCells == 0:
		state.status = "Extinct"
	case state.stagnant:
		state.status = "Stagnant"
	}
	return state
}

// displayGameStatus prints the status line for one frame
func displayGameStatus(w io.Writer, generation uint64, state gameState) {
	fmt.Fprintf(w, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, state.livingCells, state.density, state.status)
}

// checkStopConditions determines if the run should end early
func checkStopConditions(state gameState, config utils.Config) (bool, string) {
	if !config.StopWhenStable {
		return false, ""
	}
	if state.livingCells == 0 {
		return true, "extinction"
	}
	if state.stagnant {
		return true, "stagnation detected"
	}
	return false, ""
}

// runGame renders and advances the board config.Generations times, or until ctx is done
func runGame(
	ctx context.Context,
	board *model.Board,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
	config utils.Config,
) error {
	tracker := newStagnationTracker(config.StagnationWindow)
	lastFrameTime := time.Now()

	for range config.Generations {
		if err := ctx.Err(); err != nil {
			return err
		}

		frameStart := time.Now()
		if config.ClearScreen {
			if err := renderer.Clear(); err != nil {
				logger.Printf("%v", err)
			}
		}
		if err := renderer.Display(board.View()); err != nil {
			return err
		}

		state := updateGameState(board, tracker)
		displayGameStatus(renderer.Output(), board.Generation(), state)
		stats.Update(board.Generation(), state.livingCells, time.Since(lastFrameTime))
		lastFrameTime = frameStart

		if stop, reason := checkStopConditions(state, config); stop {
			fmt.Fprintf(renderer.Output(), "Stopping at generation %d: %s\n", board.Generation(), reason)
			return nil
		}

		board.Advance()

		if config.FrameRate > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(config.FrameRate):
			}
		}
	}
	return nil
}

// displayFinalStats summarises a finished run
func displayFinalStats(w io.Writer, stats *utils.Stats) {
	fmt.Fprintf(w, "Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, time.Since(stats.StartTime).Seconds())
	fmt.Fprintf(w, "Live cells: %d | Avg Pop: %.1f | %.1f gen/sec\n",
		stats.LiveCells, stats.AveragePopulation, stats.GenerationsPerSecond)
}
