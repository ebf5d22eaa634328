package app

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// textCanvas composes rendered blocks onto fixed-width lines. Blocks may
// start at negative columns or rows; whatever falls outside clip is dropped.
type textCanvas struct {
	lines []string
	width int
}

func newTextCanvas(width, height int) *textCanvas {
	lines := make([]string, max(0, height))
	blank := strings.Repeat(" ", max(0, width))
	for i := range lines {
		lines[i] = blank
	}
	return &textCanvas{lines: lines, width: max(0, width)}
}

func (c *textCanvas) SetLine(row int, line string) {
	if c == nil || row < 0 || row >= len(c.lines) {
		return
	}
	c.lines[row] = fitToWidth(line, c.width)
}

func (c *textCanvas) Overlay(block string, col, row int, clip cellRect) {
	if c == nil || block == "" {
		return
	}
	clip = clip.Intersect(cellRect{W: c.width, H: len(c.lines)})
	if clip.Empty() {
		return
	}
	for i, line := range strings.Split(block, "\n") {
		target := row + i
		if target < clip.Y || target >= clip.Y+clip.H {
			continue
		}
		c.lines[target] = overlayLine(c.lines[target], line, col, clip.X, clip.X+clip.W)
	}
}

// overlayLine writes segment over base starting at col, keeping only the
// cells in [lo, hi).
func overlayLine(base, segment string, col, lo, hi int) string {
	width := xansi.StringWidth(segment)
	start, end := col, col+width
	if start < lo {
		segment = xansi.TruncateLeft(segment, lo-start, "")
		start = lo
	}
	if end > hi {
		segment = xansi.Truncate(segment, hi-start, "")
		end = hi
	}
	if start >= end {
		return base
	}
	left := xansi.Truncate(base, start, "")
	if pad := start - xansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := xansi.TruncateLeft(base, end, "")
	return left + segment + right
}

func (c *textCanvas) String() string {
	if c == nil {
		return ""
	}
	return strings.Join(c.lines, "\n")
}
