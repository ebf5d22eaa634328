package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	defaultScale         = 1.0
	defaultCellWidth     = 10.0
	defaultCellHeight    = 20.0
	defaultDoubleClickMS = 400
	defaultLogLevel      = "info"
)

type Settings struct {
	Board   BoardSettings   `toml:"board" yaml:"board" json:"board"`
	Theme   ThemeSettings   `toml:"theme" yaml:"theme" json:"theme"`
	Display DisplaySettings `toml:"display" yaml:"display" json:"display"`
	Logging LoggingSettings `toml:"logging" yaml:"logging" json:"logging"`
	Keys    KeySettings     `toml:"keys" yaml:"keys" json:"keys"`
	Watch   bool            `toml:"watch" yaml:"watch" json:"watch"`
}

type BoardSettings struct {
	Scale         float64 `toml:"scale" yaml:"scale" json:"scale"`
	CellWidth     float64 `toml:"cell_width" yaml:"cell_width" json:"cell_width"`
	CellHeight    float64 `toml:"cell_height" yaml:"cell_height" json:"cell_height"`
	DoubleClickMS int     `toml:"double_click_ms" yaml:"double_click_ms" json:"double_click_ms"`
}

type ThemeSettings struct {
	NoteColor      string `toml:"note_color" yaml:"note_color" json:"note_color"`
	NoteTextColor  string `toml:"note_text_color" yaml:"note_text_color" json:"note_text_color"`
	EditingColor   string `toml:"editing_color" yaml:"editing_color" json:"editing_color"`
	BorderColor    string `toml:"border_color" yaml:"border_color" json:"border_color"`
	HandleColor    string `toml:"handle_color" yaml:"handle_color" json:"handle_color"`
	TrashColor     string `toml:"trash_color" yaml:"trash_color" json:"trash_color"`
	TrashTextColor string `toml:"trash_text_color" yaml:"trash_text_color" json:"trash_text_color"`
}

type DisplaySettings struct {
	RenderMarkdown bool `toml:"render_markdown" yaml:"render_markdown" json:"render_markdown"`
}

type LoggingSettings struct {
	Level string `toml:"level" yaml:"level" json:"level"`
	Path  string `toml:"path,omitempty" yaml:"path,omitempty" json:"path,omitempty"`
}

type KeySettings struct {
	Quit []string `toml:"quit" yaml:"quit" json:"quit"`
	Copy []string `toml:"copy" yaml:"copy" json:"copy"`
	Help []string `toml:"help" yaml:"help" json:"help"`
}

func DefaultSettings() Settings {
	return Settings{
		Board: BoardSettings{
			Scale:         defaultScale,
			CellWidth:     defaultCellWidth,
			CellHeight:    defaultCellHeight,
			DoubleClickMS: defaultDoubleClickMS,
		},
		Theme: DefaultTheme(),
		Logging: LoggingSettings{
			Level: defaultLogLevel,
		},
		Keys: KeySettings{
			Quit: []string{"q", "ctrl+c"},
			Copy: []string{"y"},
			Help: []string{"?"},
		},
	}
}

// DefaultTheme mirrors the classic yellow sticky note on a red bin.
func DefaultTheme() ThemeSettings {
	return ThemeSettings{
		NoteColor:      "#ffeb3b",
		NoteTextColor:  "#212121",
		EditingColor:   "#fff59d",
		BorderColor:    "#999999",
		HandleColor:    "#333333",
		TrashColor:     "#e53935",
		TrashTextColor: "#ffffff",
	}
}

// Load reads settings from path. An empty path resolves to the default
// location; a missing or blank file yields defaults.
func Load(path string) (Settings, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		resolved, err := ConfigPath()
		if err != nil {
			return Settings{}, err
		}
		path = resolved
	}
	path, err := expandHome(path)
	if err != nil {
		return Settings{}, err
	}
	cfg := DefaultSettings()
	if err := readFile(path, &cfg); err != nil {
		return Settings{}, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

func readFile(path string, out *Settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, out)
	default:
		return toml.Unmarshal(data, out)
	}
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[2:]), nil
}

func (s Settings) Scale() float64 {
	if s.Board.Scale <= 0 {
		return defaultScale
	}
	return s.Board.Scale
}

// CellSize returns how many board units one terminal column and row span.
func (s Settings) CellSize() (width, height float64) {
	width, height = s.Board.CellWidth, s.Board.CellHeight
	if width <= 0 {
		width = defaultCellWidth
	}
	if height <= 0 {
		height = defaultCellHeight
	}
	return width, height
}

func (s Settings) DoubleClickInterval() time.Duration {
	ms := s.Board.DoubleClickMS
	if ms <= 0 {
		ms = defaultDoubleClickMS
	}
	return time.Duration(ms) * time.Millisecond
}

func (s Settings) LogLevel() string {
	level := strings.TrimSpace(s.Logging.Level)
	if level == "" {
		return defaultLogLevel
	}
	return level
}

func (s Settings) LogPath() (string, error) {
	if path := strings.TrimSpace(s.Logging.Path); path != "" {
		return expandHome(path)
	}
	return LogPath()
}

// ThemeOrDefault fills blank theme colors from DefaultTheme.
func (s Settings) ThemeOrDefault() ThemeSettings {
	theme := s.Theme
	def := DefaultTheme()
	fill := func(value *string, fallback string) {
		if strings.TrimSpace(*value) == "" {
			*value = fallback
		}
	}
	fill(&theme.NoteColor, def.NoteColor)
	fill(&theme.NoteTextColor, def.NoteTextColor)
	fill(&theme.EditingColor, def.EditingColor)
	fill(&theme.BorderColor, def.BorderColor)
	fill(&theme.HandleColor, def.HandleColor)
	fill(&theme.TrashColor, def.TrashColor)
	fill(&theme.TrashTextColor, def.TrashTextColor)
	return theme
}

func (s Settings) QuitKeys() []string { return keysOr(s.Keys.Quit, "q", "ctrl+c") }
func (s Settings) CopyKeys() []string { return keysOr(s.Keys.Copy, "y") }
func (s Settings) HelpKeys() []string { return keysOr(s.Keys.Help, "?") }

func keysOr(values []string, fallback ...string) []string {
	out := normalizedList(values)
	if len(out) == 0 {
		return append([]string{}, fallback...)
	}
	return out
}

func normalizedList(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	seen := map[string]struct{}{}
	for _, raw := range values {
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
