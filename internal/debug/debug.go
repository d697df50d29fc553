package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"nbody-sim/internal/control"
	"nbody-sim/internal/sim"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh text every N frames to reduce allocations.
	updateInterval = 15
)

var hudColor = rl.NewColor(0, 228, 48, 255)

// Debug draws the top-right overlay: FPS, heap, and simulation stats.
type Debug struct {
	ShowFPS   bool
	ShowStats bool
	font      rl.Font
	frames    uint32
	lines     []string
	mem       runtime.MemStats
}

// New returns an overlay with the given sections enabled.
func New(showFPS, showStats bool) *Debug {
	return &Debug{ShowFPS: showFPS, ShowStats: showStats}
}

// SetFont sets the overlay font. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// Lines formats the overlay text for st. fps < 0 omits the FPS line.
func Lines(st sim.Stats, fps int32, heapBytes uint64) []string {
	var out []string
	if fps >= 0 {
		out = append(out, fmt.Sprintf("FPS: %d", fps))
		out = append(out, fmt.Sprintf("Mem: %.2f MiB", float64(heapBytes)/(1024*1024)))
	}
	state := "running"
	if st.Paused {
		state = "paused"
	}
	out = append(out,
		fmt.Sprintf("%s, %d bodies, %s", st.Preset, st.Bodies, state),
		"Sim time: "+control.FormatDuration(st.SimTime),
		fmt.Sprintf("Energy drift: %.3e", st.EnergyDrift),
	)
	return out
}

// Draw renders the enabled sections. Text is rebuilt every updateInterval frames.
func (d *Debug) Draw(st sim.Stats) {
	if !d.ShowFPS && !d.ShowStats {
		return
	}
	d.frames++
	if d.lines == nil || d.frames%updateInterval == 0 {
		fps := int32(-1)
		if d.ShowFPS {
			fps = rl.GetFPS()
			runtime.ReadMemStats(&d.mem)
		}
		d.lines = Lines(st, fps, d.mem.Alloc)
		if !d.ShowStats && len(d.lines) > 2 {
			d.lines = d.lines[:2]
		}
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range d.lines {
		if d.font.Texture.ID != 0 {
			sz := float32(fontSize)
			pos := rl.NewVector2(float32(screenW)-rl.MeasureTextEx(d.font, text, sz, 1).X-padding, float32(y))
			rl.DrawTextEx(d.font, text, pos, sz, 1, hudColor)
		} else {
			w := rl.MeasureText(text, fontSize)
			rl.DrawText(text, screenW-w-padding, y, fontSize, hudColor)
		}
		y += lineHeight
	}
}
