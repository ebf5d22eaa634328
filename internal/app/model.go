package app

import (
	"context"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"corkboard/internal/board"
	"corkboard/internal/config"
	"corkboard/internal/logging"
)

type Model struct {
	board     *board.Board
	layout    *screenLayout
	settings  config.Settings
	theme     boardTheme
	keys      keyMap
	help      help.Model
	editor    textarea.Model
	clicks    *clickTracker
	log       logging.Logger
	now       func() time.Time
	copyText  clipboardWriter
	width     int
	height    int
	press     *pressState
	editingID string
	selected  string
	status    string
	statusErr bool
	showHelp  bool

	pendingMouseCmd tea.Cmd
	boardOpts       []board.Option
}

// pressState remembers the note press that began the current gesture so the
// matching release can be recognized as a click.
type pressState struct {
	id     string
	target board.Target
	x, y   int
}

type ModelOption func(*Model)

func WithLogger(log logging.Logger) ModelOption {
	return func(m *Model) {
		if log != nil {
			m.log = log
		}
	}
}

func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

func WithClipboard(write clipboardWriter) ModelOption {
	return func(m *Model) {
		if write != nil {
			m.copyText = write
		}
	}
}

func WithBoardOptions(opts ...board.Option) ModelOption {
	return func(m *Model) {
		m.boardOpts = append(m.boardOpts, opts...)
	}
}

func NewModel(settings config.Settings, opts ...ModelOption) *Model {
	cellW, cellH := settings.CellSize()
	m := &Model{
		layout:   newScreenLayout(cellW, cellH),
		log:      logging.Nop(),
		now:      time.Now,
		copyText: copyTextToClipboard,
		help:     help.New(),
		editor:   newNoteEditor(),
		clicks:   newClickTracker(settings.DoubleClickInterval()),
	}
	m.applySettings(settings)
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	boardOpts := append([]board.Option{
		board.WithScale(settings.Scale()),
		board.WithLogger(m.log),
		board.WithLayout(m.layout),
	}, m.boardOpts...)
	m.board = board.New(boardOpts...)
	m.boardOpts = nil
	m.layout.board = m.board
	return m
}

func newNoteEditor() textarea.Model {
	editor := textarea.New()
	editor.ShowLineNumbers = false
	editor.Prompt = ""
	editor.Placeholder = ""
	return editor
}

func (m *Model) applySettings(settings config.Settings) {
	m.settings = settings
	m.theme = newBoardTheme(settings.ThemeOrDefault())
	m.keys = newKeyMap(settings)
}

// Run starts the board UI and blocks until it exits.
func Run(ctx context.Context, settings config.Settings, configPath string, log logging.Logger) error {
	model := NewModel(settings, WithLogger(log))
	p := tea.NewProgram(model, tea.WithContext(ctx))
	if settings.Watch && configPath != "" {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		err := config.Watch(watchCtx, configPath, 0, func(cfg config.Settings, err error) {
			p.Send(configReloadedMsg{settings: cfg, err: err})
		})
		if err != nil {
			model.log.Warn("config watch disabled", logging.Err(err))
		}
	}
	_, err := p.Run()
	return err
}

func (m *Model) Board() *board.Board { return m.board }

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.MouseMsg:
		return m, m.reduceMouse(msg)
	case tea.KeyPressMsg:
		return m, m.reduceKey(msg)
	case configReloadedMsg:
		m.reduceConfigReloaded(msg)
		return m, nil
	case clipboardResultMsg:
		if msg.err != nil {
			m.setError("copy failed: " + msg.err.Error())
			return m, nil
		}
		m.setStatus("copied note text (" + msg.method.String() + ")")
		return m, nil
	}
	if m.editingID != "" {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) View() tea.View {
	v := tea.NewView(m.renderBoard())
	v.AltScreen = true
	v.MouseMode = resolveMouseMode(m.board.Hub().Capturing())
	return v
}

// resolveMouseMode asks for every motion event while a gesture holds the
// pointer, and only button motion otherwise.
func resolveMouseMode(capturing bool) tea.MouseMode {
	if capturing {
		return tea.MouseModeAllMotion
	}
	return tea.MouseModeCellMotion
}

func (m *Model) resize(width, height int) {
	m.width = max(0, width)
	m.height = max(0, height)
	m.layout.Resize(m.width, m.height)
	m.board.SetOrigin(m.layout.origin())
	m.syncEditorSize()
}

func (m *Model) reduceKey(msg tea.KeyPressMsg) tea.Cmd {
	if m.editingID != "" {
		if key.Matches(msg, m.keys.Blur) {
			m.blurEditor()
			return nil
		}
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		if ctrl := m.board.Controller(m.editingID); ctrl != nil {
			ctrl.SetBuffer(m.editor.Value())
		}
		return cmd
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return nil
	case key.Matches(msg, m.keys.Copy):
		return m.copySelectedCmd()
	}
	return nil
}

func (m *Model) copySelectedCmd() tea.Cmd {
	note, ok := m.board.Note(m.selected)
	if !ok {
		m.setStatus("no note selected")
		return nil
	}
	write := m.copyText
	text := note.Text
	return func() tea.Msg {
		method, err := write(text)
		return clipboardResultMsg{method: method, err: err}
	}
}

func (m *Model) reduceConfigReloaded(msg configReloadedMsg) {
	if msg.err != nil {
		m.log.Warn("config reload failed", logging.Err(msg.err))
		m.setError("config reload failed: " + msg.err.Error())
		return
	}
	// Geometry stays fixed for the session; only presentation reloads.
	next := m.settings
	next.Theme = msg.settings.Theme
	next.Display = msg.settings.Display
	next.Keys = msg.settings.Keys
	m.applySettings(next)
	m.setStatus("config reloaded")
}

func (m *Model) openEditor(ctrl *board.NoteController) tea.Cmd {
	m.editingID = ctrl.ID()
	m.editor.SetValue(ctrl.Buffer())
	m.syncEditorSize()
	return m.editor.Focus()
}

// blurEditor leaves edit mode and commits the edited text.
func (m *Model) blurEditor() {
	if m.editingID == "" {
		return
	}
	if ctrl := m.board.Controller(m.editingID); ctrl != nil {
		ctrl.SetBuffer(m.editor.Value())
		ctrl.Blur()
	}
	m.editor.Blur()
	m.editingID = ""
}

// syncEditor drops the editor when its note left edit mode on its own.
func (m *Model) syncEditor() {
	if m.editingID == "" {
		return
	}
	if ctrl := m.board.Editing(); ctrl == nil || ctrl.ID() != m.editingID {
		m.editor.Blur()
		m.editingID = ""
	}
}

func (m *Model) syncEditorSize() {
	if m.editingID == "" {
		return
	}
	note, ok := m.board.Note(m.editingID)
	if !ok {
		return
	}
	inner := m.layout.noteCells(note).interior()
	m.editor.SetWidth(max(1, inner.W))
	m.editor.SetHeight(max(1, inner.H))
}

func (m *Model) setStatus(status string) {
	m.status = status
	m.statusErr = false
}

func (m *Model) setError(status string) {
	m.status = status
	m.statusErr = true
}
