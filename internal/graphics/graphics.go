package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"nbody-sim/internal/simconfig"
)

// Run opens the window and drives the frame loop. Each frame it calls update with the frame
// time in seconds, then clears the screen and calls draw. The loop ends between frames when
// the window is closed or ESC is pressed.
func Run(win simconfig.Window, update func(dt float32), draw func()) {
	width, height := win.Width, win.Height
	if win.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
	}
	rl.InitWindow(width, height, win.Title)
	defer rl.CloseWindow()
	if win.Fullscreen && !rl.IsWindowFullscreen() {
		rl.SetWindowSize(rl.GetMonitorWidth(rl.GetCurrentMonitor()), rl.GetMonitorHeight(rl.GetCurrentMonitor()))
	}

	rl.SetExitKey(rl.KeyEscape)
	if win.TargetFPS > 0 {
		rl.SetTargetFPS(win.TargetFPS)
	}

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
