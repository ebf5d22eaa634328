package board

import (
	"corkboard/internal/logging"
	"corkboard/internal/types"
)

type State int

const (
	StateIdle State = iota
	StateDragging
	StateResizing
	StateEditing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateResizing:
		return "resizing"
	case StateEditing:
		return "editing"
	default:
		return "unknown"
	}
}

type TargetKind int

const (
	TargetBody TargetKind = iota
	TargetText
	TargetHandle
)

// Target is the part of a note a pointer event landed on.
type Target struct {
	Kind   TargetKind
	Corner Corner
}

func BodyTarget() Target           { return Target{Kind: TargetBody} }
func TextTarget() Target           { return Target{Kind: TargetText} }
func HandleTarget(c Corner) Target { return Target{Kind: TargetHandle, Corner: c} }

// NoteSource is the read-only view a controller has of the canonical notes.
type NoteSource interface {
	Note(id string) (types.Note, bool)
}

// UpdateFunc forwards a change for one note to the board.
type UpdateFunc func(types.Change)

// NoteController turns pointer streams for a single note into changes.
// All gesture state is transient and dies with the controller.
type NoteController struct {
	id     string
	source NoteSource
	update UpdateFunc
	layout Layout
	hub    *PointerHub
	log    logging.Logger

	state   State
	corner  Corner
	capture *Capture
	moved   bool

	// drag
	grab  types.Point
	start types.Note
	// resize
	origin types.Point

	buffer string
}

type controllerDeps struct {
	source NoteSource
	update UpdateFunc
	layout Layout
	hub    *PointerHub
	log    logging.Logger
}

func newNoteController(id string, deps controllerDeps) *NoteController {
	layout := deps.layout
	if layout == nil {
		layout = noLayout{}
	}
	hub := deps.hub
	if hub == nil {
		hub = NewPointerHub(deps.log)
	}
	log := deps.log
	if log == nil {
		log = logging.Nop()
	}
	update := deps.update
	if update == nil {
		update = func(types.Change) {}
	}
	return &NoteController{
		id:     id,
		source: deps.source,
		update: update,
		layout: layout,
		hub:    hub,
		log:    log.With(logging.F("note", id)),
	}
}

func (c *NoteController) ID() string            { return c.id }
func (c *NoteController) State() State          { return c.state }
func (c *NoteController) Corner() Corner        { return c.corner }
func (c *NoteController) Editing() bool         { return c.state == StateEditing }
func (c *NoteController) Buffer() string        { return c.buffer }
func (c *NoteController) SetBuffer(text string) { c.buffer = text }

// Moved reports whether the current or last gesture saw any pointer motion.
func (c *NoteController) Moved() bool { return c.moved }

func (c *NoteController) note() (types.Note, bool) {
	if c.source == nil {
		return types.Note{}, false
	}
	return c.source.Note(c.id)
}

// PointerDown starts a drag on the body or a resize on a corner handle.
// It reports whether a gesture started.
func (c *NoteController) PointerDown(target Target, p types.Point) bool {
	if c.state != StateIdle && c.state != StateEditing {
		return false
	}
	note, ok := c.note()
	if !ok {
		return false
	}
	switch target.Kind {
	case TargetHandle:
		if c.state == StateEditing {
			c.Blur()
		}
		c.state = StateResizing
		c.corner = target.Corner
		c.origin = p
		c.start = note
	default:
		if c.state == StateEditing {
			return false
		}
		c.state = StateDragging
		c.grab = types.Point{X: p.X - note.X, Y: p.Y - note.Y}
		c.start = note
	}
	c.moved = false
	c.capture = c.hub.Acquire(c)
	c.log.Debug("gesture started", logging.F("state", c.state), logging.F("corner", c.corner))
	return true
}

func (c *NoteController) PointerMove(p types.Point) {
	switch c.state {
	case StateDragging:
		c.moved = true
		c.dragTo(p)
	case StateResizing:
		c.moved = true
		c.resizeTo(p)
	}
}

func (c *NoteController) PointerUp(p types.Point) {
	state := c.state
	c.capture.Release()
	c.capture = nil
	switch state {
	case StateDragging:
		c.state = StateIdle
		c.checkTrash()
	case StateResizing:
		c.state = StateIdle
	}
}

// PointerCancel abandons a drag or resize where it stands. Changes already
// emitted stay, and no trash check runs.
func (c *NoteController) PointerCancel() {
	if c.state != StateDragging && c.state != StateResizing {
		return
	}
	c.log.Debug("gesture cancelled", logging.F("state", c.state))
	c.capture.Release()
	c.capture = nil
	c.state = StateIdle
}

func (c *NoteController) dragTo(p types.Point) {
	x := p.X - c.grab.X
	y := p.Y - c.grab.Y
	if bounds, ok := c.layout.BoardRect(); ok {
		x, y = clampToBoard(x, y, c.start.Width, c.start.Height, bounds)
	}
	c.update(types.MoveChange{X: x, Y: y})
}

func (c *NoteController) resizeTo(p types.Point) {
	d := p.Sub(c.origin)
	c.update(resizeFrom(c.start, c.corner, d.X, d.Y))
}

func (c *NoteController) checkTrash() {
	trash, ok := c.layout.TrashRect()
	if !ok {
		return
	}
	rect, ok := c.layout.NoteRect(c.id)
	if !ok {
		return
	}
	if rect.Intersects(trash) {
		c.log.Info("note dropped on trash")
		c.update(types.DeleteRequest{})
	}
}

// Click on the text display enters edit mode with the committed text.
func (c *NoteController) Click(target Target) bool {
	if target.Kind != TargetText || c.state != StateIdle {
		return false
	}
	note, ok := c.note()
	if !ok {
		return false
	}
	c.state = StateEditing
	c.buffer = note.Text
	return true
}

// Blur leaves edit mode and commits the buffer with a single text change.
func (c *NoteController) Blur() bool {
	if c.state != StateEditing {
		return false
	}
	c.state = StateIdle
	c.update(types.TextChange{Text: c.buffer})
	return true
}

// detach drops any live capture; used when the note leaves the board.
func (c *NoteController) detach() {
	if c.capture != nil {
		c.capture.Release()
		c.capture = nil
	}
	c.state = StateIdle
}
