package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sheikhrachel/gol-board/utils"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFlagsConfigOnly(t *testing.T) {
	path := writeConfig(t, `{"color": true, "generations": 7, "width": 12}`)

	config, err := parseFlags([]string{"-c", path})
	if err != nil {
		t.Fatal(err)
	}
	if !config.Color || config.Generations != 7 || config.Width != 12 || config.Height != 10 {
		t.Errorf("unexpected config %+v", config)
	}
}

func TestParseFlagsOverrideConfig(t *testing.T) {
	path := writeConfig(t, `{"color": true, "generations": 7, "width": 12}`)

	config, err := parseFlags([]string{
		"-c", path,
		"-g", "0",
		"--color=false",
		"-x", "30",
		"-i", "5ms",
		"-p", "glider:1:2",
	})
	if err != nil {
		t.Fatal(err)
	}
	if config.Generations != 0 {
		t.Errorf("generations = %d, want 0", config.Generations)
	}
	if config.Color {
		t.Error("--color=false did not switch colour off")
	}
	if config.Width != 30 || config.Height != 10 {
		t.Errorf("dimensions = %dx%d, want 30x10", config.Width, config.Height)
	}
	if config.FrameRate != 5*time.Millisecond {
		t.Errorf("frame rate = %v, want 5ms", config.FrameRate)
	}
	want := utils.PatternPlacement{Name: "glider", X: 1, Y: 2}
	if len(config.Patterns) != 1 || config.Patterns[0] != want {
		t.Errorf("patterns = %+v, want [%+v]", config.Patterns, want)
	}
}

func TestParseFlagsMissingConfigUsesDefaults(t *testing.T) {
	config, err := parseFlags([]string{"-c", filepath.Join(t.TempDir(), "absent.json"), "-y", "4"})
	if err != nil {
		t.Fatal(err)
	}
	def := utils.DefaultConfig()
	if config.Width != def.Width || config.Height != 4 || config.Generations != def.Generations {
		t.Errorf("unexpected config %+v", config)
	}
}

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		in      string
		want    utils.PatternPlacement
		wantErr bool
	}{
		{"blinker:3:4", utils.PatternPlacement{Name: "blinker", X: 3, Y: 4}, false},
		{"block:0:0", utils.PatternPlacement{Name: "block"}, false},
		{"glider:1", utils.PatternPlacement{}, true},
		{"glider:a:1", utils.PatternPlacement{}, true},
		{"glider:1:b", utils.PatternPlacement{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePlacement(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
