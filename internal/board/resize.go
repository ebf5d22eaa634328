package board

import (
	"math"

	"corkboard/internal/types"
)

type Corner int

const (
	CornerTopLeft Corner = iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight
)

var corners = []Corner{CornerTopLeft, CornerTopRight, CornerBottomLeft, CornerBottomRight}

func Corners() []Corner {
	return append([]Corner(nil), corners...)
}

func (c Corner) String() string {
	switch c {
	case CornerTopLeft:
		return "tl"
	case CornerTopRight:
		return "tr"
	case CornerBottomLeft:
		return "bl"
	case CornerBottomRight:
		return "br"
	default:
		return "?"
	}
}

// signs returns +1 when the grabbed corner sits on the growing (right or
// bottom) edge and -1 when it sits on the left or top edge.
func (c Corner) signs() (sx, sy float64) {
	sx, sy = 1, 1
	if c == CornerTopLeft || c == CornerBottomLeft {
		sx = -1
	}
	if c == CornerTopLeft || c == CornerTopRight {
		sy = -1
	}
	return sx, sy
}

// resizeFrom applies the drag delta (dx, dy) to start for the given corner.
// Size floors are applied independently of position, so a left or top edge
// keeps following the pointer once the floor engages.
func resizeFrom(start types.Note, c Corner, dx, dy float64) types.GeometryChange {
	sx, sy := c.signs()
	g := types.GeometryChange{
		X:      start.X + dx*(1-sx)/2,
		Y:      start.Y + dy*(1-sy)/2,
		Width:  start.Width + sx*dx,
		Height: start.Height + sy*dy,
	}
	g.Width = math.Max(types.MinNoteWidth, g.Width)
	g.Height = math.Max(types.MinNoteHeight, g.Height)
	return g
}
