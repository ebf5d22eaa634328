package board

import "corkboard/internal/types"

// DragMargin is how much of a note must stay on the board while dragging.
const DragMargin = 40.0

// Layout answers rendered-geometry questions in pointer (client) units. Every
// method reports false when its anchor is not on screen; callers skip the
// dependent step for that event instead of failing.
type Layout interface {
	BoardRect() (types.Rect, bool)
	TrashRect() (types.Rect, bool)
	NoteRect(id string) (types.Rect, bool)
}

type noLayout struct{}

func (noLayout) BoardRect() (types.Rect, bool)      { return types.Rect{}, false }
func (noLayout) TrashRect() (types.Rect, bool)      { return types.Rect{}, false }
func (noLayout) NoteRect(string) (types.Rect, bool) { return types.Rect{}, false }

// clampToBoard keeps at least DragMargin of the note reachable inside bounds.
func clampToBoard(x, y, width, height float64, bounds types.Rect) (float64, float64) {
	x = types.Clamp(x, -width+DragMargin, bounds.Width()-DragMargin)
	y = types.Clamp(y, -height+DragMargin, bounds.Height()-DragMargin)
	return x, y
}
