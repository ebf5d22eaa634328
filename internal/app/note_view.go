package app

import (
	"strings"

	"corkboard/internal/board"
	"corkboard/internal/types"
)

const (
	handleGlyph  = "■"
	borderGlyphH = "─"
	borderGlyphV = "│"
	trashLabel   = "Bin"
	boardHint    = "Double click anywhere on empty space to create a note"
)

// renderNote draws one note as cells.H lines of cells.W cells.
func (m *Model) renderNote(note types.Note, ctrl *board.NoteController, cells cellRect) string {
	inner := cells.interior()
	border := m.theme.border
	if ctrl != nil && ctrl.State() != board.StateIdle && ctrl.State() != board.StateEditing {
		border = m.theme.active
	}
	edge := m.theme.handle.Render(handleGlyph) +
		border.Render(strings.Repeat(borderGlyphH, inner.W)) +
		m.theme.handle.Render(handleGlyph)

	body := m.noteBodyLines(note, ctrl, inner)
	lines := make([]string, 0, cells.H)
	lines = append(lines, edge)
	for _, line := range body {
		lines = append(lines, border.Render(borderGlyphV)+line+border.Render(borderGlyphV))
	}
	lines = append(lines, edge)
	return strings.Join(lines, "\n")
}

func (m *Model) noteBodyLines(note types.Note, ctrl *board.NoteController, inner cellRect) []string {
	style := m.theme.body
	var content []string
	switch {
	case ctrl != nil && ctrl.Editing() && m.editingID == note.ID:
		style = m.theme.editing
		content = strings.Split(m.editor.View(), "\n")
	case note.Text == "":
		style = m.theme.placeholder
		content = wrapPlain(types.NotePlaceholder, inner.W)
	case m.settings.Display.RenderMarkdown:
		content = strings.Split(renderMarkdown(note.Text, inner.W), "\n")
	default:
		content = wrapPlain(note.Text, inner.W)
	}
	out := make([]string, inner.H)
	for i := range out {
		line := ""
		if i < len(content) {
			line = content[i]
		}
		out[i] = style.Render(fitToWidth(line, inner.W))
	}
	return out
}

func (m *Model) renderTrash(cells cellRect) string {
	lines := make([]string, cells.H)
	for i := range lines {
		text := ""
		if i == cells.H/2 {
			text = trashLabel
		}
		lines[i] = m.theme.trash.Render(centerPlain(text, cells.W))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderBoard() string {
	canvas := newTextCanvas(m.width, m.height)
	canvas.SetLine(0, headerStyle.Render(boardHint))

	area := m.layout.boardCells()
	if trash := m.layout.trashCells(); !trash.Empty() {
		canvas.Overlay(m.renderTrash(trash), trash.X, trash.Y, area)
	}
	for _, ctrl := range m.board.Controllers() {
		note, ok := m.board.Note(ctrl.ID())
		if !ok {
			continue
		}
		cells := m.layout.noteCells(note)
		if cells.Intersect(area).Empty() {
			continue
		}
		canvas.Overlay(m.renderNote(note, ctrl, cells), cells.X, cells.Y, area)
	}

	if m.showHelp {
		canvas.SetLine(m.height-1, helpStyle.Render(m.help.View(m.keys)))
	} else if m.statusErr {
		canvas.SetLine(m.height-1, errorStyle.Render(m.status))
	} else {
		canvas.SetLine(m.height-1, statusStyle.Render(m.status))
	}
	return canvas.String()
}
