package types

// Change is one update flowing from a note controller up to the board.
// The concrete variants are MoveChange, GeometryChange, TextChange,
// DeleteRequest and Patch.
type Change interface {
	Apply(Note) Note
	Kind() string
}

type MoveChange struct {
	X float64
	Y float64
}

func (c MoveChange) Apply(n Note) Note {
	n.X = c.X
	n.Y = c.Y
	return n
}

func (MoveChange) Kind() string { return "move" }

type GeometryChange struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (c GeometryChange) Apply(n Note) Note {
	n.X = c.X
	n.Y = c.Y
	n.Width = c.Width
	n.Height = c.Height
	return n
}

func (GeometryChange) Kind() string { return "geometry" }

type TextChange struct {
	Text string
}

func (c TextChange) Apply(n Note) Note {
	n.Text = c.Text
	return n
}

func (TextChange) Kind() string { return "text" }

type DeleteRequest struct{}

// Apply is the identity; the board removes the note instead of merging.
func (DeleteRequest) Apply(n Note) Note { return n }

func (DeleteRequest) Kind() string { return "delete" }

// Patch merges only the fields that are set. A Width equal to
// DeleteSentinel turns the patch into a deletion.
type Patch struct {
	X      *float64
	Y      *float64
	Width  *float64
	Height *float64
	Text   *string
}

func (p Patch) Apply(n Note) Note {
	if p.X != nil {
		n.X = *p.X
	}
	if p.Y != nil {
		n.Y = *p.Y
	}
	if p.Width != nil {
		n.Width = *p.Width
	}
	if p.Height != nil {
		n.Height = *p.Height
	}
	if p.Text != nil {
		n.Text = *p.Text
	}
	return n
}

func (p Patch) Kind() string {
	if p.deletes() {
		return "delete"
	}
	return "patch"
}

func (p Patch) deletes() bool {
	return p.Width != nil && *p.Width == DeleteSentinel
}

func IsDelete(c Change) bool {
	switch v := c.(type) {
	case DeleteRequest, *DeleteRequest:
		return true
	case Patch:
		return v.deletes()
	case *Patch:
		return v != nil && v.deletes()
	case GeometryChange:
		return v.Width == DeleteSentinel
	case *GeometryChange:
		return v != nil && v.Width == DeleteSentinel
	}
	return false
}

func Float(v float64) *float64 { return &v }

func String(v string) *string { return &v }
