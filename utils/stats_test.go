package utils

import (
	"math"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats(0.1)
	s.Update(1, 10, 500*time.Millisecond)
	if s.AveragePopulation != 10 {
		t.Errorf("first average = %v, want 10", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 2 {
		t.Errorf("gen/sec = %v, want 2", s.GenerationsPerSecond)
	}

	s.Update(2, 20, 0)
	if math.Abs(s.AveragePopulation-11) > 1e-9 {
		t.Errorf("moving average = %v, want 11", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 2 {
		t.Error("zero duration should not reset gen/sec")
	}
	if s.TotalGenerations != 2 || s.LiveCells != 20 {
		t.Errorf("totals = %d/%d, want 2/20", s.TotalGenerations, s.LiveCells)
	}
}

func TestStatsSmoothing(t *testing.T) {
	tests := []struct {
		name      string
		smoothing float64
		want      float64
	}{
		{"half", 0.5, 15},
		{"latest only", 1, 20},
		{"zero falls back", 0, 11},
		{"above one falls back", 2, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStats(tt.smoothing)
			s.Update(1, 10, 0)
			s.Update(2, 20, 0)
			if math.Abs(s.AveragePopulation-tt.want) > 1e-9 {
				t.Errorf("average = %v, want %v", s.AveragePopulation, tt.want)
			}
		})
	}
}

func TestStatsFirstSampleZero(t *testing.T) {
	s := NewStats(0.5)
	s.Update(1, 0, 0)
	s.Update(2, 10, 0)
	if math.Abs(s.AveragePopulation-5) > 1e-9 {
		t.Errorf("average = %v, want 5", s.AveragePopulation)
	}
}
