package model

import (
	"errors"
	"math/rand"
	"testing"
)

func TestLookupPattern(t *testing.T) {
	for _, name := range []string{"glider", "blinker", "block"} {
		p, err := LookupPattern(name)
		if err != nil {
			t.Fatalf("LookupPattern(%q): %v", name, err)
		}
		if p.Name != name {
			t.Errorf("LookupPattern(%q) returned %q", name, p.Name)
		}
	}
	if _, err := LookupPattern("pulsar"); !errors.Is(err, ErrUnknownPattern) {
		t.Errorf("err = %v, want ErrUnknownPattern", err)
	}
}

func TestStamp(t *testing.T) {
	b := mustBoard(t, 8, 8)
	if err := b.Stamp(Blinker, 2, 3); err != nil {
		t.Fatal(err)
	}
	want := []Point{{X: 2, Y: 3}, {X: 3, Y: 3}, {X: 4, Y: 3}}
	if !samePoints(aliveSet(b), want) {
		t.Errorf("got %v, want %v", aliveSet(b), want)
	}
}

func TestStampGliderTravels(t *testing.T) {
	b := mustBoard(t, 10, 10)
	if err := b.Stamp(Glider, 2, 2); err != nil {
		t.Fatal(err)
	}
	for range 4 {
		b.Advance()
	}
	var want []Point
	for _, c := range Glider.Cells {
		want = append(want, Point{X: c.X + 3, Y: c.Y + 3})
	}
	if !samePoints(aliveSet(b), want) {
		t.Errorf("got %v, want glider at (3, 3)", aliveSet(b))
	}
}

func TestStampIsAllOrNothing(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"overhangs right", 6, 0},
		{"overhangs bottom", 0, 7},
		{"negative origin", -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, 8, 8)
			if err := b.Stamp(Glider, tt.x, tt.y); !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("err = %v, want ErrOutOfRange", err)
			}
			if b.Population() != 0 {
				t.Errorf("failed Stamp left %d live cells", b.Population())
			}
		})
	}
}

func TestRandomize(t *testing.T) {
	b := mustBoard(t, 20, 20)
	b.Randomize(rand.New(rand.NewSource(1)), 0)
	if b.Population() != 0 {
		t.Errorf("density 0 gave %d live cells", b.Population())
	}
	b.Randomize(rand.New(rand.NewSource(1)), 1)
	if b.Population() != 400 {
		t.Errorf("density 1 gave %d live cells, want 400", b.Population())
	}

	b.Randomize(rand.New(rand.NewSource(7)), 0.5)
	first := b.Hash()
	b.Randomize(rand.New(rand.NewSource(7)), 0.5)
	if b.Hash() != first {
		t.Error("same seed produced different boards")
	}
	if pop := b.Population(); pop == 0 || pop == 400 {
		t.Errorf("density 0.5 gave %d live cells", pop)
	}
}
