package app

import (
	"testing"
	"time"
)

func TestClickTrackerRecognizesDoubleClick(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tracker := newClickTracker(400 * time.Millisecond)

	if tracker.Press(3, 4, start) {
		t.Fatalf("first press must not complete a double click")
	}
	if !tracker.Press(3, 4, start.Add(200*time.Millisecond)) {
		t.Fatalf("expected double click")
	}
	if tracker.Press(3, 4, start.Add(300*time.Millisecond)) {
		t.Fatalf("third press should start over")
	}
}

func TestClickTrackerRejectsMovedOrSlowPresses(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tracker := newClickTracker(400 * time.Millisecond)

	tracker.Press(3, 4, start)
	if tracker.Press(4, 4, start.Add(100*time.Millisecond)) {
		t.Fatalf("expected different cell to reject")
	}
	if tracker.Press(4, 4, start.Add(time.Second)) {
		t.Fatalf("expected slow press to reject")
	}
	tracker.Reset()
	if tracker.Press(4, 4, start.Add(time.Second+time.Millisecond)) {
		t.Fatalf("expected reset to disarm")
	}
}
