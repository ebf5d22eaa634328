package types

const (
	DefaultNoteWidth  = 200.0
	DefaultNoteHeight = 150.0
	MinNoteWidth      = 100.0
	MinNoteHeight     = 80.0

	// DeleteSentinel is the reserved width that marks a Patch as a deletion.
	// No resize can produce it because widths never drop below MinNoteWidth.
	DeleteSentinel = -1.0
)

const NotePlaceholder = "Click to add text..."

// Note is a sticky note in board coordinates. X and Y may be negative when
// the note hangs off the board edge.
type Note struct {
	ID     string  `json:"id" toml:"id" yaml:"id"`
	X      float64 `json:"x" toml:"x" yaml:"x"`
	Y      float64 `json:"y" toml:"y" yaml:"y"`
	Width  float64 `json:"width" toml:"width" yaml:"width"`
	Height float64 `json:"height" toml:"height" yaml:"height"`
	Text   string  `json:"text,omitempty" toml:"text,omitempty" yaml:"text,omitempty"`
}

func (n Note) Bounds() Rect {
	return Rect{Left: n.X, Top: n.Y, Right: n.X + n.Width, Bottom: n.Y + n.Height}
}

func (n Note) DisplayText() string {
	if n.Text == "" {
		return NotePlaceholder
	}
	return n.Text
}
