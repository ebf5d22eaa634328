// Package board holds the canonical note collection and the per-note
// interaction controllers that mutate it.
//
// A Board is not safe for concurrent use; it is driven from a single UI
// event loop.
package board

import (
	"corkboard/internal/logging"
	"corkboard/internal/types"
)

type Board struct {
	notes       []types.Note
	scale       float64
	origin      types.Point
	layout      Layout
	newID       IDSource
	hub         *PointerHub
	log         logging.Logger
	version     uint64
	controllers map[string]*NoteController
}

type Option func(*Board)

func WithScale(scale float64) Option {
	return func(b *Board) {
		if scale > 0 {
			b.scale = scale
		}
	}
}

func WithOrigin(origin types.Point) Option {
	return func(b *Board) {
		b.origin = origin
	}
}

func WithLayout(layout Layout) Option {
	return func(b *Board) {
		if layout != nil {
			b.layout = layout
		}
	}
}

func WithIDSource(source IDSource) Option {
	return func(b *Board) {
		if source != nil {
			b.newID = source
		}
	}
}

func WithLogger(log logging.Logger) Option {
	return func(b *Board) {
		if log != nil {
			b.log = log
		}
	}
}

func WithNotes(notes ...types.Note) Option {
	return func(b *Board) {
		b.notes = append([]types.Note(nil), notes...)
	}
}

func New(opts ...Option) *Board {
	b := &Board{
		scale:       1,
		layout:      noLayout{},
		newID:       TimeID,
		log:         logging.Nop(),
		controllers: map[string]*NoteController{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	b.hub = NewPointerHub(b.log)
	return b
}

func (b *Board) Scale() float64          { return b.scale }
func (b *Board) Origin() types.Point     { return b.origin }
func (b *Board) SetOrigin(o types.Point) { b.origin = o }
func (b *Board) Hub() *PointerHub        { return b.hub }
func (b *Board) Len() int                { return len(b.notes) }

// SetLayout swaps the rendered-geometry source. Existing controllers see the
// new layout on their next event.
func (b *Board) SetLayout(layout Layout) {
	if layout == nil {
		layout = noLayout{}
	}
	b.layout = layout
}

func (b *Board) BoardRect() (types.Rect, bool)         { return b.layout.BoardRect() }
func (b *Board) TrashRect() (types.Rect, bool)         { return b.layout.TrashRect() }
func (b *Board) NoteRect(id string) (types.Rect, bool) { return b.layout.NoteRect(id) }

// Version increases on every mutation of the collection.
func (b *Board) Version() uint64 { return b.version }

// Notes returns a copy of the collection in insertion order.
func (b *Board) Notes() []types.Note {
	return append([]types.Note(nil), b.notes...)
}

func (b *Board) Note(id string) (types.Note, bool) {
	for _, note := range b.notes {
		if note.ID == id {
			return note, true
		}
	}
	return types.Note{}, false
}

// ToBoard converts a pointer position into board coordinates.
func (b *Board) ToBoard(client types.Point) types.Point {
	return client.Sub(b.origin).Scale(1 / b.scale)
}

// ToClient converts a board position into pointer coordinates.
func (b *Board) ToClient(p types.Point) types.Point {
	return p.Scale(b.scale).Add(b.origin)
}

// NoteAt returns the topmost note whose rendered region contains the pointer
// position. Later notes are drawn above earlier ones.
func (b *Board) NoteAt(client types.Point) (types.Note, bool) {
	for i := len(b.notes) - 1; i >= 0; i-- {
		note := b.notes[i]
		if b.renderedRect(note).Contains(client) {
			return note, true
		}
	}
	return types.Note{}, false
}

func (b *Board) renderedRect(note types.Note) types.Rect {
	if rect, ok := b.layout.NoteRect(note.ID); ok {
		return rect
	}
	topLeft := b.ToClient(types.Point{X: note.X, Y: note.Y})
	return types.RectFromSize(topLeft.X, topLeft.Y, note.Width*b.scale, note.Height*b.scale)
}

// CreateNoteAt adds a default-sized note at the pointer position. Clicks
// landing on an existing note create nothing.
func (b *Board) CreateNoteAt(client types.Point) (types.Note, bool) {
	if _, hit := b.NoteAt(client); hit {
		return types.Note{}, false
	}
	pos := b.ToBoard(client)
	note := types.Note{
		ID:     b.newID(),
		X:      pos.X,
		Y:      pos.Y,
		Width:  types.DefaultNoteWidth,
		Height: types.DefaultNoteHeight,
	}
	next := make([]types.Note, len(b.notes), len(b.notes)+1)
	copy(next, b.notes)
	b.notes = append(next, note)
	b.version++
	b.log.Info("note created", logging.F("note", note.ID), logging.F("x", note.X), logging.F("y", note.Y))
	return note, true
}

// Apply is the single mutation entry point for note controllers. Deletions
// remove the note; every other change is merged into it. A merge that would
// leave the width at DeleteSentinel is a deletion too. Unknown ids are
// ignored because a stale update can still arrive after a delete.
func (b *Board) Apply(id string, change types.Change) {
	if change == nil {
		return
	}
	idx := b.indexOf(id)
	if idx < 0 {
		b.log.Debug("update for unknown note dropped", logging.F("note", id), logging.F("kind", change.Kind()))
		return
	}
	if types.IsDelete(change) {
		b.remove(idx)
		return
	}
	merged := change.Apply(b.notes[idx])
	if merged.Width == types.DeleteSentinel {
		b.remove(idx)
		return
	}
	merged.ID = id
	next := make([]types.Note, len(b.notes))
	copy(next, b.notes)
	next[idx] = merged
	b.notes = next
	b.version++
}

func (b *Board) remove(idx int) {
	id := b.notes[idx].ID
	next := make([]types.Note, 0, len(b.notes)-1)
	next = append(next, b.notes[:idx]...)
	next = append(next, b.notes[idx+1:]...)
	b.notes = next
	if ctrl, ok := b.controllers[id]; ok {
		ctrl.detach()
		delete(b.controllers, id)
	}
	b.version++
	b.log.Info("note deleted", logging.F("note", id))
}

// Updater returns the update callback bound to id.
func (b *Board) Updater(id string) UpdateFunc {
	return func(change types.Change) {
		b.Apply(id, change)
	}
}

func (b *Board) indexOf(id string) int {
	for i, note := range b.notes {
		if note.ID == id {
			return i
		}
	}
	return -1
}

// Controllers returns one controller per note in insertion order. Controllers
// for notes that left the collection are dropped with their gesture state.
func (b *Board) Controllers() []*NoteController {
	out := make([]*NoteController, 0, len(b.notes))
	live := make(map[string]struct{}, len(b.notes))
	for _, note := range b.notes {
		live[note.ID] = struct{}{}
		out = append(out, b.controllerFor(note.ID))
	}
	for id, ctrl := range b.controllers {
		if _, ok := live[id]; !ok {
			ctrl.detach()
			delete(b.controllers, id)
		}
	}
	return out
}

// Controller returns the controller for id, or nil if the note is gone.
func (b *Board) Controller(id string) *NoteController {
	if b.indexOf(id) < 0 {
		return nil
	}
	return b.controllerFor(id)
}

func (b *Board) controllerFor(id string) *NoteController {
	if ctrl, ok := b.controllers[id]; ok {
		return ctrl
	}
	ctrl := newNoteController(id, controllerDeps{
		source: b,
		update: b.Updater(id),
		layout: b,
		hub:    b.hub,
		log:    b.log,
	})
	b.controllers[id] = ctrl
	return ctrl
}

// Editing returns the controller currently in edit mode, if any.
func (b *Board) Editing() *NoteController {
	for _, ctrl := range b.controllers {
		if ctrl.Editing() {
			return ctrl
		}
	}
	return nil
}
