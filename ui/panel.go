// Package ui draws the tuning panel of the windowed field mode.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/backdrop/game"
)

const (
	panelWidth   = 300
	panelHeight  = 290
	panelMargin  = 10
	sliderWidth  = 200
	sliderHeight = 20
)

var (
	colorPanel = rl.Color{R: 250, G: 250, B: 250, A: 230}
	colorEdge  = rl.Color{R: 180, G: 180, B: 180, A: 255}
	colorLabel = rl.Color{R: 90, G: 90, B: 90, A: 255}
	colorValue = rl.Color{R: 50, G: 50, B: 50, A: 255}
)

// Panel is the F1 tuning panel for a running field.
type Panel struct {
	field   *game.Field
	visible bool
	bounds  rl.Rectangle
}

// NewPanel creates a hidden panel bound to field.
func NewPanel(field *game.Field) *Panel {
	return &Panel{
		field:  field,
		bounds: rl.Rectangle{X: panelMargin, Y: panelMargin, Width: panelWidth, Height: panelHeight},
	}
}

// Visible reports whether the panel is shown.
func (p *Panel) Visible() bool {
	return p.visible
}

// Contains reports whether a visible panel covers the point. Clicks there
// belong to the panel, not to the field.
func (p *Panel) Contains(x, y float32) bool {
	return p.visible && rl.CheckCollisionPointRec(rl.Vector2{X: x, Y: y}, p.bounds)
}

// Draw handles the F1 toggle and, when visible, draws the panel and applies
// any slider changes to the field.
func (p *Panel) Draw() {
	if rl.IsKeyPressed(rl.KeyF1) {
		p.visible = !p.visible
	}
	if !p.visible {
		return
	}

	x := int32(p.bounds.X)
	y := int32(p.bounds.Y)
	rl.DrawRectangleRec(p.bounds, colorPanel)
	rl.DrawRectangleLinesEx(p.bounds, 1, colorEdge)

	x += 10
	y += 10
	rl.DrawText("Backdrop", x, y, 20, colorValue)
	y += 28

	links := p.field.Links()
	w, h := p.field.Size()
	rl.DrawText(fmt.Sprintf("FPS: %d | %dx%d", rl.GetFPS(), w, h), x, y, 14, colorLabel)
	y += 18
	rl.DrawText(fmt.Sprintf("Particles: %d | Ripples: %d", p.field.Particles(), p.field.Ripples()), x, y, 14, colorLabel)
	y += 18
	rl.DrawText(fmt.Sprintf("Links: %d | Pointer links: %d", links.Pairs, links.Pointer), x, y, 14, colorLabel)
	y += 26

	t := p.field.Tuning()
	t.LinkDistance = p.slider(x, &y, "Link distance", "%.0f", t.LinkDistance, 0, 300)
	t.PointerRadius = p.slider(x, &y, "Pointer radius", "%.0f", t.PointerRadius, 0, 400)
	t.Smoothing = p.slider(x, &y, "Follower smoothing", "%.2f", t.Smoothing, 0.01, 1)
	p.field.SetTuning(t)

	if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: 120, Height: 28}, "Reseed") {
		p.field.Reseed()
	}
}

// slider draws a labelled slider bar and advances y past it.
func (p *Panel) slider(x int32, y *int32, label, format string, value, lo, hi float32) float32 {
	rl.DrawText(label, x, *y, 14, colorLabel)
	*y += 18
	v := gui.SliderBar(
		rl.Rectangle{X: float32(x), Y: float32(*y), Width: sliderWidth, Height: sliderHeight},
		"", "",
		value, lo, hi,
	)
	rl.DrawText(fmt.Sprintf(format, v), x+sliderWidth+10, *y+2, 16, colorValue)
	*y += 32
	return v
}
