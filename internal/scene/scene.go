package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"nbody-sim/internal/camera"
	"nbody-sim/internal/physics"
)

const (
	sphereRings  = 12
	sphereSlices = 16
	// minDrawRadius keeps tiny bodies visible as a dot of wireframe.
	minDrawRadius = 0.05
	// gridCells per side of the reference grid; cells are one astronomical unit wide.
	gridCells      = 10
	gridMinorAlpha = 40
	gridAxisAlpha  = 140
	au             = 1.49597870e11
)

// Scene holds the 3D camera and draws the bodies. The camera starts 100 world units above
// the origin looking along +Z.
type Scene struct {
	Camera      *camera.Free
	GridVisible bool
	captured    bool
}

// New returns a scene with the mouse not yet captured.
func New() *Scene {
	return &Scene{
		Camera:      camera.NewFree(r3.Vec{Y: 100}),
		GridVisible: true,
	}
}

// SetCaptured grabs or releases the mouse. While captured, mouse motion turns the camera;
// while released, the cursor is free for the slider panel.
func (s *Scene) SetCaptured(c bool) {
	s.captured = c
	if c {
		rl.DisableCursor()
	} else {
		rl.EnableCursor()
	}
}

// Captured reports whether mouse look is active.
func (s *Scene) Captured() bool {
	return s.captured
}

// Update polls movement keys and mouse delta and moves the camera. Movement is ignored when
// inputEnabled is false (console open).
func (s *Scene) Update(dt float32, speedMul float64, inputEnabled bool) {
	var in camera.Input
	if s.captured {
		d := rl.GetMouseDelta()
		in.MouseDX, in.MouseDY = d.X, d.Y
	}
	if inputEnabled {
		in.Forward = rl.IsKeyDown(rl.KeyW)
		in.Back = rl.IsKeyDown(rl.KeyS)
		in.Left = rl.IsKeyDown(rl.KeyA)
		in.Right = rl.IsKeyDown(rl.KeyD)
		in.Up = rl.IsKeyDown(rl.KeySpace)
		in.Down = rl.IsKeyDown(rl.KeyLeftControl)
		in.Slow = rl.IsKeyDown(rl.KeyLeftShift)
	}
	s.Camera.Update(in, dt, float32(speedMul))
}

// toRL narrows a world-unit vector to raylib's float32.
func toRL(v r3.Vec) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func (s *Scene) rlCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   toRL(s.Camera.Position),
		Target:     toRL(s.Camera.Target()),
		Up:         toRL(camera.Up),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

// Draw renders every body as a wire sphere at its position in world units. Display radius
// is the physical radius times visualScale; physics is untouched.
func (s *Scene) Draw(bodies []physics.Body, visualScale float64) {
	rl.BeginMode3D(s.rlCamera())
	if s.GridVisible {
		drawGrid()
	}
	for _, b := range bodies {
		r := camera.ToWorldLength(b.Radius * visualScale)
		if r < minDrawRadius {
			r = minDrawRadius
		}
		rl.DrawSphereWires(toRL(camera.ToWorld(b.Position)), r, sphereRings, sphereSlices, b.Color)
	}
	rl.EndMode3D()
}

// drawGrid draws an AU-spaced grid on the orbital (XZ) plane.
func drawGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	axis := rl.NewColor(160, 160, 220, gridAxisAlpha)
	step := camera.ToWorldLength(au)
	extent := step * gridCells
	var start, end rl.Vector3
	for i := -gridCells; i <= gridCells; i++ {
		c := minor
		if i == 0 {
			c = axis
		}
		off := float32(i) * step
		start.X, start.Y, start.Z = off, 0, -extent
		end.X, end.Y, end.Z = off, 0, extent
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = -extent, 0, off
		end.X, end.Y, end.Z = extent, 0, off
		rl.DrawLine3D(start, end, c)
	}
}
