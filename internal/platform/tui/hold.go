package tui

import (
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Terminals report key presses only, never releases. A direction counts as
// held for a short window after its last press; auto-repeat keeps renewing
// the window while the key stays down.
const (
	// DefaultInitialHold covers the gap before the terminal starts repeating.
	DefaultInitialHold = 400 * time.Millisecond
	// DefaultRepeatHold covers the gap between repeated presses.
	DefaultRepeatHold = 120 * time.Millisecond
)

// HoldTracker emulates held directional keys from press events.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	now     func() time.Time

	until map[core.Action]time.Time
	last  map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold windows.
// Non-positive durations select the defaults.
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	if initial <= 0 {
		initial = DefaultInitialHold
	}
	if repeat <= 0 {
		repeat = DefaultRepeatHold
	}
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
		now:     time.Now,
		until:   make(map[core.Action]time.Time),
		last:    make(map[core.Action]time.Time),
	}
}

// Press records a press of a directional action. Pressing one direction
// releases the opposite one immediately.
func (h *HoldTracker) Press(a core.Action) {
	now := h.now()

	window := h.initial
	if prev, ok := h.last[a]; ok && now.Sub(prev) <= h.initial {
		window = h.repeat
		// Never shorten a window the first press already granted.
		if cur := h.until[a]; cur.After(now.Add(window)) {
			window = cur.Sub(now)
		}
	}
	h.last[a] = now
	h.until[a] = now.Add(window)

	switch a {
	case core.ActionLeft:
		h.drop(core.ActionRight)
	case core.ActionRight:
		h.drop(core.ActionLeft)
	}
}

// Held reports whether a is currently considered down.
func (h *HoldTracker) Held(a core.Action) bool {
	until, ok := h.until[a]
	return ok && h.now().Before(until)
}

// Apply writes the held state of both directions into frame.
func (h *HoldTracker) Apply(frame *core.InputFrame) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		if h.Held(a) {
			frame.Hold(a)
		} else {
			frame.Release(a)
		}
	}
}

// Reset releases everything.
func (h *HoldTracker) Reset() {
	for a := range h.until {
		h.drop(a)
	}
}

func (h *HoldTracker) drop(a core.Action) {
	delete(h.until, a)
	delete(h.last, a)
}
