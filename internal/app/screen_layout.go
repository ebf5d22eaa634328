package app

import (
	"math"

	"corkboard/internal/board"
	"corkboard/internal/types"
)

const (
	headerRows    = 1
	statusRows    = 1
	trashCols     = 8
	trashRows     = 4
	trashRightGap = 2
	minNoteCols   = 3
	minNoteRows   = 3
)

// cellRect is a rectangle of terminal cells.
type cellRect struct {
	X, Y, W, H int
}

func (r cellRect) Empty() bool { return r.W <= 0 || r.H <= 0 }

func (r cellRect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r cellRect) Intersect(o cellRect) cellRect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return cellRect{}
	}
	return cellRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// corner reports which resize handle, if any, sits at (x, y).
func (r cellRect) corner(x, y int) (board.Corner, bool) {
	left, right := x == r.X, x == r.X+r.W-1
	top, bottom := y == r.Y, y == r.Y+r.H-1
	switch {
	case top && left:
		return board.CornerTopLeft, true
	case top && right:
		return board.CornerTopRight, true
	case bottom && left:
		return board.CornerBottomLeft, true
	case bottom && right:
		return board.CornerBottomRight, true
	}
	return 0, false
}

// interior is the text area inside the note border.
func (r cellRect) interior() cellRect {
	return cellRect{X: r.X + 1, Y: r.Y + 1, W: max(0, r.W-2), H: max(0, r.H-2)}
}

// screenLayout maps between terminal cells and pointer units. A pointer
// position is the cell coordinate multiplied by the cell size.
type screenLayout struct {
	cellW  float64
	cellH  float64
	width  int
	height int
	board  *board.Board
}

func newScreenLayout(cellW, cellH float64) *screenLayout {
	return &screenLayout{cellW: cellW, cellH: cellH}
}

func (l *screenLayout) Resize(width, height int) {
	l.width = max(0, width)
	l.height = max(0, height)
}

func (l *screenLayout) boardCells() cellRect {
	return cellRect{X: 0, Y: headerRows, W: l.width, H: max(0, l.height-headerRows-statusRows)}
}

func (l *screenLayout) trashCells() cellRect {
	area := l.boardCells()
	if area.W < trashCols+trashRightGap || area.H < trashRows {
		return cellRect{}
	}
	return cellRect{X: area.W - trashCols - trashRightGap, Y: area.Y, W: trashCols, H: trashRows}
}

func (l *screenLayout) origin() types.Point {
	area := l.boardCells()
	return l.pointer(area.X, area.Y)
}

func (l *screenLayout) pointer(x, y int) types.Point {
	return types.Point{X: float64(x) * l.cellW, Y: float64(y) * l.cellH}
}

func (l *screenLayout) toPointerRect(r cellRect) types.Rect {
	return types.RectFromSize(float64(r.X)*l.cellW, float64(r.Y)*l.cellH, float64(r.W)*l.cellW, float64(r.H)*l.cellH)
}

func (l *screenLayout) noteCells(note types.Note) cellRect {
	scale, origin := 1.0, l.origin()
	if l.board != nil {
		scale = l.board.Scale()
		origin = l.board.Origin()
	}
	left := origin.X + note.X*scale
	top := origin.Y + note.Y*scale
	return cellRect{
		X: int(math.Floor(left / l.cellW)),
		Y: int(math.Floor(top / l.cellH)),
		W: max(minNoteCols, int(math.Round(note.Width*scale/l.cellW))),
		H: max(minNoteRows, int(math.Round(note.Height*scale/l.cellH))),
	}
}

func (l *screenLayout) BoardRect() (types.Rect, bool) {
	area := l.boardCells()
	if area.Empty() {
		return types.Rect{}, false
	}
	return l.toPointerRect(area), true
}

func (l *screenLayout) TrashRect() (types.Rect, bool) {
	trash := l.trashCells()
	if trash.Empty() {
		return types.Rect{}, false
	}
	return l.toPointerRect(trash), true
}

func (l *screenLayout) NoteRect(id string) (types.Rect, bool) {
	if l.board == nil {
		return types.Rect{}, false
	}
	note, ok := l.board.Note(id)
	if !ok {
		return types.Rect{}, false
	}
	return l.toPointerRect(l.noteCells(note)), true
}

// hit is the note part under a cell.
type hit struct {
	id     string
	cells  cellRect
	target board.Target
}

func (l *screenLayout) hitTest(x, y int) (hit, bool) {
	if l.board == nil || !l.boardCells().Contains(x, y) {
		return hit{}, false
	}
	notes := l.board.Notes()
	for i := len(notes) - 1; i >= 0; i-- {
		cells := l.noteCells(notes[i])
		if !cells.Contains(x, y) {
			continue
		}
		h := hit{id: notes[i].ID, cells: cells, target: board.BodyTarget()}
		if corner, ok := cells.corner(x, y); ok {
			h.target = board.HandleTarget(corner)
		} else if cells.interior().Contains(x, y) {
			h.target = board.TextTarget()
		}
		return h, true
	}
	return hit{}, false
}
