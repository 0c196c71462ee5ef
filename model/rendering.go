package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

const (
	gridPosAlive = "⬜"
	gridPosDead  = "⬛"

	separatorWidth = 80

	macosClearCmd = "clear"
)

// TerminalRenderer writes a View as text: a generation header, one glyph per cell
// wrapped every width cells, and a separator line.
type TerminalRenderer struct {
	out       io.Writer
	au        aurora.Aurora
	liveGlyph string
	deadGlyph string
}

// RendererOption configures a TerminalRenderer
type RendererOption func(*TerminalRenderer)

// WithOutput redirects rendering away from stdout
func WithOutput(w io.Writer) RendererOption {
	return func(r *TerminalRenderer) { r.out = w }
}

// WithColor toggles ANSI colouring of live cells and the header
func WithColor(enabled bool) RendererOption {
	return func(r *TerminalRenderer) { r.au = aurora.NewAurora(enabled) }
}

// WithGlyphs overrides the cell glyphs; empty values keep the defaults
func WithGlyphs(live, dead string) RendererOption {
	return func(r *TerminalRenderer) {
		if live != "" {
			r.liveGlyph = live
		}
		if dead != "" {
			r.deadGlyph = dead
		}
	}
}

func NewTerminalRenderer(opts ...RendererOption) *TerminalRenderer {
	r := &TerminalRenderer{
		out:       os.Stdout,
		au:        aurora.NewAurora(false),
		liveGlyph: gridPosAlive,
		deadGlyph: gridPosDead,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Display renders the view
func (r *TerminalRenderer) Display(v View) error {
	var sb strings.Builder
	sb.WriteString(r.au.Bold(fmt.Sprintf("Generation %d", v.Generation())).String())
	sb.WriteString(" \n\n")
	for i, c := range v.All() {
		if c == Alive {
			sb.WriteString(r.au.Green(r.liveGlyph).String())
		} else {
			sb.WriteString(r.deadGlyph)
		}
		sb.WriteByte(' ')
		if i%v.Width() == v.Width()-1 {
			sb.WriteByte('\n')
		}
	}
	sb.WriteString(strings.Repeat("=", separatorWidth))
	sb.WriteByte('\n')

	if _, err := io.WriteString(r.out, sb.String()); err != nil {
		return errors.Wrap(err, "[Display] failed to write frame")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.out
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}

// Output returns the writer frames are rendered to
func (r *TerminalRenderer) Output() io.Writer {
	return r.out
}
