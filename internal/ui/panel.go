package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"nbody-sim/internal/control"
)

const (
	fontSize    = 20
	padding     = 12
	rowHeight   = 52
	trackHeight = 8
	handleSize  = 16
	panelWidth  = 360
)

var (
	panelBg     = rl.NewColor(24, 24, 24, 200)
	panelBorder = rl.NewColor(80, 80, 80, 255)
	trackColor  = rl.NewColor(70, 70, 70, 255)
	fillColor   = rl.NewColor(0, 121, 241, 255)
	handleColor = rl.NewColor(230, 230, 230, 255)
)

// Panel is the parameter panel in the top-left corner: one slider per tunable parameter.
// Sliders respond to the mouse only while the cursor is released (see scene.SetCaptured).
type Panel struct {
	X, Y     int32
	sliders  []control.Slider
	dragging int // index of the slider being dragged, -1 when none
	font     rl.Font
}

// NewPanel returns a panel at (x, y) with the standard parameter sliders.
func NewPanel(x, y int32) *Panel {
	return &Panel{X: x, Y: y, sliders: control.Sliders(), dragging: -1}
}

// SetFont sets the font used for labels. Zero texture ID = use raylib default.
func (p *Panel) SetFont(font rl.Font) {
	p.font = font
}

func (p *Panel) height() int32 {
	return int32(len(p.sliders))*rowHeight + padding
}

// track returns the clickable track rectangle of slider i.
func (p *Panel) track(i int) rl.Rectangle {
	x := float32(p.X + padding)
	y := float32(p.Y + padding + int32(i)*rowHeight + fontSize + 6)
	return rl.NewRectangle(x, y, float32(panelWidth-2*padding), trackHeight)
}

// Contains reports whether the mouse is over the panel.
func (p *Panel) Contains(pt rl.Vector2) bool {
	return rl.CheckCollisionPointRec(pt, rl.NewRectangle(float32(p.X), float32(p.Y), panelWidth, float32(p.height())))
}

// Update handles dragging. enabled is false while the mouse drives the camera.
func (p *Panel) Update(params *control.Params, enabled bool) {
	if !enabled || !rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		p.dragging = -1
		return
	}
	mouse := rl.GetMousePosition()
	if p.dragging < 0 && rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		for i := range p.sliders {
			hit := p.track(i)
			// Grow the hit area vertically so the thin track is easy to grab.
			hit.Y -= handleSize / 2
			hit.Height += handleSize
			if rl.CheckCollisionPointRec(mouse, hit) {
				p.dragging = i
				break
			}
		}
	}
	if p.dragging < 0 {
		return
	}
	tr := p.track(p.dragging)
	f := float64((mouse.X - tr.X) / tr.Width)
	params.Set(p.dragging, p.sliders[p.dragging].Value(f))
}

// Draw renders the panel with the current parameter values.
func (p *Panel) Draw(params control.Params) {
	rl.DrawRectangle(p.X, p.Y, panelWidth, p.height(), panelBg)
	rl.DrawRectangleLines(p.X, p.Y, panelWidth, p.height(), panelBorder)
	for i, s := range p.sliders {
		v := params.Get(i)
		label := fmt.Sprintf("%s: %s", s.Label, formatValue(i, v))
		p.drawText(label, p.X+padding, p.Y+padding+int32(i)*rowHeight, rl.White)

		tr := p.track(i)
		f := float32(s.Fraction(v))
		rl.DrawRectangleRec(tr, trackColor)
		rl.DrawRectangleRec(rl.NewRectangle(tr.X, tr.Y, tr.Width*f, tr.Height), fillColor)
		hx := tr.X + tr.Width*f - handleSize/2
		hy := tr.Y + tr.Height/2 - handleSize/2
		rl.DrawRectangleRec(rl.NewRectangle(hx, hy, handleSize, handleSize), handleColor)
	}
}

func (p *Panel) drawText(text string, x, y int32, c rl.Color) {
	if p.font.Texture.ID != 0 {
		rl.DrawTextEx(p.font, text, rl.NewVector2(float32(x), float32(y)), fontSize, 1, c)
		return
	}
	rl.DrawText(text, x, y, fontSize, c)
}

func formatValue(i int, v float64) string {
	if i == 0 {
		return control.FormatDuration(v) + " / s"
	}
	return fmt.Sprintf("%.2fx", v)
}
