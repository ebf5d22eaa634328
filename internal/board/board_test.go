package board

import (
	"fmt"
	"reflect"
	"testing"

	"corkboard/internal/types"
)

type fakeLayout struct {
	board  *Board
	bounds *types.Rect
	trash  *types.Rect
}

func (l *fakeLayout) BoardRect() (types.Rect, bool) {
	if l.bounds == nil {
		return types.Rect{}, false
	}
	return *l.bounds, true
}

func (l *fakeLayout) TrashRect() (types.Rect, bool) {
	if l.trash == nil {
		return types.Rect{}, false
	}
	return *l.trash, true
}

func (l *fakeLayout) NoteRect(id string) (types.Rect, bool) {
	if l.board == nil {
		return types.Rect{}, false
	}
	note, ok := l.board.Note(id)
	if !ok {
		return types.Rect{}, false
	}
	return note.Bounds(), true
}

func sequentialIDs() IDSource {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("n%d", n)
	}
}

func newTestBoard(t *testing.T, opts ...Option) (*Board, *fakeLayout) {
	t.Helper()
	layout := &fakeLayout{
		bounds: &types.Rect{Right: 800, Bottom: 600},
		trash:  &types.Rect{Left: 700, Top: 0, Right: 780, Bottom: 80},
	}
	opts = append([]Option{WithIDSource(sequentialIDs())}, opts...)
	b := New(opts...)
	layout.board = b
	b.SetLayout(layout)
	return b, layout
}

func TestCreateNoteAtTranslatesByOriginAndScale(t *testing.T) {
	b, _ := newTestBoard(t, WithScale(2), WithOrigin(types.Point{X: 10, Y: 20}))
	b.SetLayout(nil)

	note, ok := b.CreateNoteAt(types.Point{X: 110, Y: 220})
	if !ok {
		t.Fatalf("expected note created")
	}
	want := types.Note{ID: "n1", X: 50, Y: 100, Width: 200, Height: 150}
	if note != want {
		t.Fatalf("expected %+v, got %+v", want, note)
	}
	if got := b.Notes(); !reflect.DeepEqual(got, []types.Note{want}) {
		t.Fatalf("unexpected notes %+v", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}
}

func TestCreateNoteAtInsideExistingNoteIsIgnored(t *testing.T) {
	b, _ := newTestBoard(t)
	if _, ok := b.CreateNoteAt(types.Point{X: 100, Y: 100}); !ok {
		t.Fatalf("expected first note created")
	}
	if _, ok := b.CreateNoteAt(types.Point{X: 150, Y: 180}); ok {
		t.Fatalf("expected click inside a note to create nothing")
	}
	if b.Len() != 1 {
		t.Fatalf("expected one note, got %d", b.Len())
	}
	// The right edge is exclusive, so this lands outside the note.
	if _, ok := b.CreateNoteAt(types.Point{X: 300, Y: 100}); !ok {
		t.Fatalf("expected click on the right edge to create")
	}
	if b.Len() != 2 {
		t.Fatalf("expected two notes, got %d", b.Len())
	}
}

func TestCreateNoteAtFallsBackToModelBoundsWithoutLayout(t *testing.T) {
	b := New(WithIDSource(sequentialIDs()), WithOrigin(types.Point{X: 0, Y: 10}))
	if _, ok := b.CreateNoteAt(types.Point{X: 0, Y: 10}); !ok {
		t.Fatalf("expected note created")
	}
	if _, ok := b.CreateNoteAt(types.Point{X: 199, Y: 159}); ok {
		t.Fatalf("expected hit on the model rect to create nothing")
	}
}

func TestApplyMergeIsIdempotentAndLeavesGeometry(t *testing.T) {
	b, _ := newTestBoard(t, WithNotes(types.Note{ID: "a", X: 1, Y: 2, Width: 200, Height: 150}))

	b.Apply("a", types.TextChange{Text: "hello"})
	b.Apply("a", types.TextChange{Text: "hello"})

	note, ok := b.Note("a")
	if !ok {
		t.Fatalf("expected note a")
	}
	if want := (types.Note{ID: "a", X: 1, Y: 2, Width: 200, Height: 150, Text: "hello"}); note != want {
		t.Fatalf("expected %+v, got %+v", want, note)
	}
}

func TestApplyPatchMergesOnlySetFields(t *testing.T) {
	b, _ := newTestBoard(t, WithNotes(types.Note{ID: "a", X: 1, Y: 2, Width: 200, Height: 150, Text: "keep"}))

	b.Apply("a", types.Patch{X: types.Float(5)})

	note, _ := b.Note("a")
	if want := (types.Note{ID: "a", X: 5, Y: 2, Width: 200, Height: 150, Text: "keep"}); note != want {
		t.Fatalf("expected %+v, got %+v", want, note)
	}
}

func TestApplyUnknownIDIsNoop(t *testing.T) {
	b, _ := newTestBoard(t, WithNotes(types.Note{ID: "a", Width: 200, Height: 150}))
	before := b.Notes()

	b.Apply("nonexistent", types.Patch{X: types.Float(5)})
	b.Apply("nonexistent", types.DeleteRequest{})
	b.Apply("a", nil)

	if got := b.Notes(); !reflect.DeepEqual(got, before) {
		t.Fatalf("expected collection unchanged, got %+v", got)
	}
	if b.Version() != 0 {
		t.Fatalf("expected version 0, got %d", b.Version())
	}
}

func TestApplyDeleteVariants(t *testing.T) {
	cases := []struct {
		name   string
		change types.Change
	}{
		{name: "delete request", change: types.DeleteRequest{}},
		{name: "width sentinel", change: types.Patch{Width: types.Float(types.DeleteSentinel)}},
		{name: "width sentinel pointer", change: &types.Patch{Width: types.Float(-1)}},
		{name: "geometry with sentinel width", change: types.GeometryChange{X: 5, Y: 5, Width: types.DeleteSentinel, Height: 150}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, _ := newTestBoard(t, WithNotes(
				types.Note{ID: "a", Width: 200, Height: 150},
				types.Note{ID: "b", Width: 200, Height: 150},
			))
			before := b.Notes()

			b.Apply("a", tc.change)

			want := []types.Note{{ID: "b", Width: 200, Height: 150}}
			if got := b.Notes(); !reflect.DeepEqual(got, want) {
				t.Fatalf("expected only b left, got %+v", got)
			}
			if len(before) != 2 {
				t.Fatalf("earlier snapshots must not change, got %d notes", len(before))
			}
		})
	}
}

func TestApplyNeverStoresSentinelWidth(t *testing.T) {
	b, _ := newTestBoard(t, WithNotes(types.Note{ID: "a", Width: 200, Height: 150}))

	b.Apply("a", types.GeometryChange{Width: 120, Height: 90})
	b.Apply("a", types.MoveChange{X: -1, Y: -1})
	note, ok := b.Note("a")
	if !ok || note.Width != 120 || note.X != -1 {
		t.Fatalf("expected ordinary merges kept, got %+v (present=%v)", note, ok)
	}

	b.Apply("a", &types.GeometryChange{Width: types.DeleteSentinel, Height: 90})
	if _, ok := b.Note("a"); ok {
		t.Fatalf("expected sentinel width to delete the note")
	}
	for _, n := range b.Notes() {
		if n.Width == types.DeleteSentinel {
			t.Fatalf("stored sentinel width on %s", n.ID)
		}
	}
}

func TestControllersTrackCollection(t *testing.T) {
	b, _ := newTestBoard(t)
	first, _ := b.CreateNoteAt(types.Point{X: 0, Y: 0})
	second, _ := b.CreateNoteAt(types.Point{X: 400, Y: 300})

	ctrls := b.Controllers()
	if len(ctrls) != 2 {
		t.Fatalf("expected two controllers, got %d", len(ctrls))
	}
	if ctrls[0].ID() != first.ID || ctrls[1].ID() != second.ID {
		t.Fatalf("expected insertion order, got %s, %s", ctrls[0].ID(), ctrls[1].ID())
	}
	if b.Controller(first.ID) != ctrls[0] {
		t.Fatalf("expected the same controller instance per id")
	}

	ctrls[0].Click(TextTarget())
	if b.Editing() != ctrls[0] {
		t.Fatalf("expected first controller reported as editing")
	}

	b.Apply(first.ID, types.DeleteRequest{})
	if b.Controller(first.ID) != nil {
		t.Fatalf("expected controller dropped with its note")
	}
	if b.Editing() != nil {
		t.Fatalf("expected no editing controller after delete")
	}
	if got := len(b.Controllers()); got != 1 {
		t.Fatalf("expected one controller, got %d", got)
	}
}

func TestNoteAtReturnsTopmost(t *testing.T) {
	b, _ := newTestBoard(t, WithNotes(
		types.Note{ID: "under", X: 0, Y: 0, Width: 200, Height: 150},
		types.Note{ID: "over", X: 100, Y: 100, Width: 200, Height: 150},
	))
	if note, ok := b.NoteAt(types.Point{X: 150, Y: 120}); !ok || note.ID != "over" {
		t.Fatalf("expected over, got %q (ok=%v)", note.ID, ok)
	}
	if note, ok := b.NoteAt(types.Point{X: 10, Y: 10}); !ok || note.ID != "under" {
		t.Fatalf("expected under, got %q (ok=%v)", note.ID, ok)
	}
	if _, ok := b.NoteAt(types.Point{X: 500, Y: 500}); ok {
		t.Fatalf("expected empty space to miss")
	}
}

func TestTimeIDIsUniqueAcrossCalls(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		id := TimeID()
		if id == "" {
			t.Fatalf("expected non-empty id")
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = struct{}{}
	}
}
