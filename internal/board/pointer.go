package board

import (
	"corkboard/internal/logging"
	"corkboard/internal/types"
)

// PointerListener receives pointer events for the lifetime of one gesture,
// wherever on screen they happen.
type PointerListener interface {
	PointerMove(p types.Point)
	PointerUp(p types.Point)
	// PointerCancel ends the gesture without a release. It is called when
	// another capture takes over before the up arrived.
	PointerCancel()
}

// PointerHub fans global pointer move/up events out to the active capture.
// Only one capture is live at a time.
type PointerHub struct {
	active *Capture
	log    logging.Logger
}

type Capture struct {
	hub      *PointerHub
	listener PointerListener
	done     bool
}

func NewPointerHub(log logging.Logger) *PointerHub {
	if log == nil {
		log = logging.Nop()
	}
	return &PointerHub{log: log}
}

// Acquire registers listener for global move/up events until the returned
// capture is released. A capture that is still live is released first and
// its listener cancelled, so its owner is never left mid-gesture.
func (h *PointerHub) Acquire(listener PointerListener) *Capture {
	if prev := h.active; prev != nil {
		h.log.Warn("pointer capture replaced before release")
		prev.Release()
		prev.listener.PointerCancel()
	}
	c := &Capture{hub: h, listener: listener}
	h.active = c
	return c
}

// Release detaches the capture. Safe to call more than once.
func (c *Capture) Release() {
	if c == nil || c.done {
		return
	}
	c.done = true
	if c.hub != nil && c.hub.active == c {
		c.hub.active = nil
	}
}

func (c *Capture) released() bool {
	return c == nil || c.done
}

func (h *PointerHub) Move(p types.Point) bool {
	c := h.active
	if c == nil {
		return false
	}
	c.listener.PointerMove(p)
	return true
}

func (h *PointerHub) Up(p types.Point) bool {
	c := h.active
	if c == nil {
		return false
	}
	c.listener.PointerUp(p)
	// Listeners release themselves; make sure nothing survives the up.
	c.Release()
	return true
}

func (h *PointerHub) Capturing() bool {
	return h != nil && h.active != nil
}

// Active reports the number of live captures (0 or 1).
func (h *PointerHub) Active() int {
	if h.Capturing() {
		return 1
	}
	return 0
}
