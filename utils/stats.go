package utils

import "time"

// DefaultPopulationSmoothing weights each new population sample at 10%
const DefaultPopulationSmoothing = 0.1

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     uint64
	StartTime            time.Time
	LiveCells            int

	// smoothing is the weight of the newest sample in AveragePopulation, in (0, 1]
	smoothing float64
	samples   int
}

// NewStats starts the clock. Smoothing outside (0, 1] falls back to DefaultPopulationSmoothing.
func NewStats(smoothing float64) *Stats {
	if smoothing <= 0 || smoothing > 1 {
		smoothing = DefaultPopulationSmoothing
	}
	return &Stats{StartTime: time.Now(), smoothing: smoothing}
}

// Update records one rendered generation. AveragePopulation is an exponential moving
// average seeded with the first sample, so an extinct first frame still counts.
func (s *Stats) Update(generation uint64, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.LiveCells = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	if s.samples == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation += s.smoothing * (float64(population) - s.AveragePopulation)
	}
	s.samples++
}
