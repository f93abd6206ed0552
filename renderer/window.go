package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/backdrop/game"
)

// WindowHost runs frames in the raylib window and turns window input into
// game events. The window must be open before use.
type WindowHost struct {
	width, height int
	started       bool
	pointerInside bool
	lastX, lastY  float32

	events  []game.Event
	overlay func()
	capture func(x, y float32) bool
}

// NewWindowHost creates a host for the open window.
func NewWindowHost() *WindowHost {
	return &WindowHost{}
}

// SetOverlay registers a function drawn on top of every frame, after the
// scene and before the frame is presented.
func (h *WindowHost) SetOverlay(fn func()) {
	h.overlay = fn
}

// SetCapture registers a test for screen regions whose clicks belong to the
// overlay and are not reported as events.
func (h *WindowHost) SetCapture(fn func(x, y float32) bool) {
	h.capture = fn
}

// NextFrame starts a frame unless the window is closing.
func (h *WindowHost) NextFrame() bool {
	if rl.WindowShouldClose() {
		return false
	}
	rl.BeginDrawing()
	return true
}

// PollEvents reports resizes, pointer movement, pointer exit and clicks since
// the last frame. The first poll always reports the window size.
func (h *WindowHost) PollEvents() []game.Event {
	h.events = h.events[:0]

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	w, ht := int(rl.GetScreenWidth()), int(rl.GetScreenHeight())
	if !h.started || w != h.width || ht != h.height {
		h.width, h.height = w, ht
		h.started = true
		h.events = append(h.events, game.Resize{W: w, H: ht})
	}

	if rl.IsCursorOnScreen() {
		pos := rl.GetMousePosition()
		if !h.pointerInside || pos.X != h.lastX || pos.Y != h.lastY {
			h.events = append(h.events, game.PointerMove{X: pos.X, Y: pos.Y})
			h.lastX, h.lastY = pos.X, pos.Y
		}
		h.pointerInside = true

		captured := h.capture != nil && h.capture(pos.X, pos.Y)
		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && !captured {
			h.events = append(h.events, game.Click{X: pos.X, Y: pos.Y})
		}
	} else if h.pointerInside {
		h.pointerInside = false
		h.events = append(h.events, game.PointerLeave{})
	}

	return h.events
}

// Present draws the overlay and ends the frame.
func (h *WindowHost) Present() {
	if h.overlay != nil {
		h.overlay()
	}
	rl.EndDrawing()
}
