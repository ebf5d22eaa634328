package app

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	xansi "github.com/charmbracelet/x/ansi"

	"corkboard/internal/config"
	"corkboard/internal/types"
)

func TestModelWindowSizeMovesBoardOrigin(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if m.width != 80 || m.height != 24 {
		t.Fatalf("expected 80x24, got %dx%d", m.width, m.height)
	}
	if got := m.Board().Origin(); got != (types.Point{X: 0, Y: 20}) {
		t.Fatalf("expected origin below header row, got %+v", got)
	}
	rect, ok := m.board.BoardRect()
	if !ok {
		t.Fatalf("expected board rect")
	}
	if rect.Width() != 800 || rect.Height() != 440 {
		t.Fatalf("expected 800x440 board rect, got %vx%v", rect.Width(), rect.Height())
	}
}

func TestModelEscCommitsEdit(t *testing.T) {
	m, _ := newTestModel(t)
	doubleClick(m, 10, 10)
	press(m, 15, 13)
	release(m, 15, 13)
	m.editor.SetValue("hello")

	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})

	if m.editingID != "" {
		t.Fatalf("expected edit mode to end on esc")
	}
	note, _ := m.board.Note("n1")
	if note.Text != "hello" {
		t.Fatalf("expected committed text, got %q", note.Text)
	}
}

func TestModelQuitKeyIgnoredWhileEditing(t *testing.T) {
	m, _ := newTestModel(t)
	doubleClick(m, 10, 10)
	press(m, 15, 13)
	release(m, 15, 13)

	m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if m.editingID != "n1" {
		t.Fatalf("expected editing to continue")
	}
	if got := m.board.Controller("n1").Buffer(); got != m.editor.Value() {
		t.Fatalf("expected buffer to track the editor, got %q want %q", got, m.editor.Value())
	}
}

func TestModelQuitKey(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestModelHelpKeyToggles(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.KeyPressMsg{Code: '?', Text: "?"})
	if !m.showHelp {
		t.Fatalf("expected help shown")
	}
	m.Update(tea.KeyPressMsg{Code: '?', Text: "?"})
	if m.showHelp {
		t.Fatalf("expected help hidden")
	}
}

func TestModelCopyKeyCopiesSelectedNote(t *testing.T) {
	var copied string
	m, _ := newTestModel(t)
	m.copyText = func(text string) (clipboardMethod, error) {
		copied = text
		return clipboardMethodOSC52, nil
	}
	doubleClick(m, 10, 10)
	m.board.Apply("n1", types.TextChange{Text: "groceries"})

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'y', Text: "y"})
	if cmd == nil {
		t.Fatalf("expected copy command")
	}
	m.Update(cmd())

	if copied != "groceries" {
		t.Fatalf("expected note text copied, got %q", copied)
	}
	if !strings.Contains(m.status, "osc52") || m.statusErr {
		t.Fatalf("unexpected status %q (err=%v)", m.status, m.statusErr)
	}
}

func TestModelCopyWithoutSelection(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'y', Text: "y"})
	if cmd != nil {
		t.Fatalf("expected no command without a selected note")
	}
	if m.status != "no note selected" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestModelConfigReloadKeepsGeometry(t *testing.T) {
	m, _ := newTestModel(t)
	next := config.DefaultSettings()
	next.Board.CellWidth = 4
	next.Theme.NoteColor = "#00ff00"
	next.Display.RenderMarkdown = true

	m.Update(configReloadedMsg{settings: next})

	if m.settings.Theme.NoteColor != "#00ff00" || !m.settings.Display.RenderMarkdown {
		t.Fatalf("expected presentation settings applied, got %+v", m.settings)
	}
	if m.settings.Board.CellWidth == 4 {
		t.Fatalf("expected board geometry to stay fixed")
	}
}

func TestModelConfigReloadError(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(configReloadedMsg{err: errors.New("bad toml")})
	if !m.statusErr || !strings.Contains(m.status, "bad toml") {
		t.Fatalf("expected error status, got %q", m.status)
	}
}

func TestModelViewRendersBoardChrome(t *testing.T) {
	m, _ := newTestModel(t)
	doubleClick(m, 10, 10)

	v := m.View()
	if !v.AltScreen {
		t.Fatalf("expected alt screen")
	}
	lines := strings.Split(xansi.Strip(m.renderBoard()), "\n")
	if len(lines) != 40 {
		t.Fatalf("expected 40 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], boardHint) {
		t.Fatalf("expected hint in header, got %q", lines[0])
	}
	if !strings.Contains(lines[3], trashLabel) {
		t.Fatalf("expected trash label on row 3, got %q", lines[3])
	}
	if !strings.Contains(lines[11], types.NotePlaceholder[:10]) {
		t.Fatalf("expected placeholder text inside the note, got %q", lines[11])
	}
	if !strings.Contains(lines[10], handleGlyph) {
		t.Fatalf("expected corner handles on the note edge, got %q", lines[10])
	}
}
