package app

import (
	tea "charm.land/bubbletea/v2"

	"corkboard/internal/board"
	"corkboard/internal/logging"
	"corkboard/internal/types"
)

func (m *Model) clientPoint(x, y int) types.Point {
	return m.layout.pointer(x, y)
}

func (m *Model) reduceMouse(msg tea.MouseMsg) tea.Cmd {
	m.pendingMouseCmd = nil
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			return nil
		}
		m.reduceEditorBlurMouse(msg)
		if !m.reduceNotePressMouse(msg) {
			m.reduceBoardPressMouse(msg)
		}
	case tea.MouseMotionMsg:
		m.reducePointerMoveMouse(msg)
	case tea.MouseReleaseMsg:
		m.reducePointerUpMouse(msg)
	}
	m.syncEditor()
	cmd := m.pendingMouseCmd
	m.pendingMouseCmd = nil
	return cmd
}

// reduceEditorBlurMouse commits the note being edited when a press lands
// anywhere outside it. It never consumes the press.
func (m *Model) reduceEditorBlurMouse(msg tea.MouseClickMsg) bool {
	if m.editingID == "" {
		return false
	}
	note, ok := m.board.Note(m.editingID)
	if ok && m.layout.noteCells(note).Contains(msg.X, msg.Y) {
		return false
	}
	m.blurEditor()
	return false
}

func (m *Model) reduceNotePressMouse(msg tea.MouseClickMsg) bool {
	h, ok := m.layout.hitTest(msg.X, msg.Y)
	if !ok {
		return false
	}
	m.clicks.Reset()
	m.selected = h.id
	ctrl := m.board.Controller(h.id)
	if ctrl == nil {
		return true
	}
	if !ctrl.PointerDown(h.target, m.clientPoint(msg.X, msg.Y)) {
		return true
	}
	m.press = &pressState{id: h.id, target: h.target, x: msg.X, y: msg.Y}
	return true
}

func (m *Model) reduceBoardPressMouse(msg tea.MouseClickMsg) bool {
	if !m.layout.boardCells().Contains(msg.X, msg.Y) {
		m.clicks.Reset()
		return false
	}
	if m.layout.trashCells().Contains(msg.X, msg.Y) {
		m.clicks.Reset()
		return false
	}
	m.selected = ""
	if !m.clicks.Press(msg.X, msg.Y, m.now()) {
		return false
	}
	note, ok := m.board.CreateNoteAt(m.clientPoint(msg.X, msg.Y))
	if !ok {
		return false
	}
	m.selected = note.ID
	m.setStatus("note created")
	return true
}

func (m *Model) reducePointerMoveMouse(msg tea.MouseMotionMsg) bool {
	return m.board.Hub().Move(m.clientPoint(msg.X, msg.Y))
}

func (m *Model) reducePointerUpMouse(msg tea.MouseReleaseMsg) bool {
	press := m.press
	m.press = nil
	handled := m.board.Hub().Up(m.clientPoint(msg.X, msg.Y))
	if press == nil {
		return handled
	}
	if _, ok := m.board.Note(press.id); !ok {
		m.selected = ""
		m.setStatus("note deleted")
		return handled
	}
	if press.target.Kind != board.TargetText {
		return handled
	}
	if press.x != msg.X || press.y != msg.Y {
		return handled
	}
	ctrl := m.board.Controller(press.id)
	if ctrl == nil || ctrl.Moved() {
		return handled
	}
	if ctrl.Click(board.TextTarget()) {
		m.log.Debug("note editing", logging.F("note", press.id))
		m.pendingMouseCmd = m.openEditor(ctrl)
	}
	return true
}
