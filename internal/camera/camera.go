package camera

import (
	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// DisplayScale is meters per world unit. It is applied only when positions are handed
	// to the renderer; physics stays in meters.
	DisplayScale = 50_000_000.0
	// C is the speed of light in m/s; camera speeds are expressed in multiples of it.
	C = 299_792_458.0
	// Sensitivity converts mouse delta (pixels) times frame time into radians.
	Sensitivity = 100.0
	// pitchFactor slows vertical look relative to horizontal.
	pitchFactor = 0.6
	// maxPitch keeps the look vector off the world up axis so the basis stays defined.
	maxPitch = math32.Pi/2 - 0.01
)

// FastSpeed and SlowSpeed are camera speeds in world units per second: twenty times and
// once the speed of light.
var (
	FastSpeed = float32(C * 20 / DisplayScale)
	SlowSpeed = float32(C / DisplayScale)
)

// Up is the world up axis.
var Up = r3.Vec{Y: 1}

// ToWorld converts a physics position in meters to world units.
func ToWorld(p r3.Vec) r3.Vec {
	return r3.Scale(1/DisplayScale, p)
}

// ToWorldLength converts a length in meters to world units.
func ToWorldLength(m float64) float32 {
	return float32(m / DisplayScale)
}

// Input is the state of the movement controls for one frame.
type Input struct {
	MouseDX, MouseDY float32
	Forward, Back    bool // W, S
	Left, Right      bool // A, D
	Up, Down         bool // Space, Ctrl
	Slow             bool // Shift
}

// Free is a yaw/pitch fly camera. Position is in world units; the angles stay float32 like the
// mouse deltas that drive them.
type Free struct {
	Position r3.Vec
	Yaw      float32 // radians
	Pitch    float32 // radians
}

// NewFree returns a camera at position looking along +Z.
func NewFree(position r3.Vec) *Free {
	return &Free{Position: position}
}

// Look returns the unit view direction.
func (c *Free) Look() r3.Vec {
	sy, cy := math32.Sincos(c.Yaw)
	sp, cp := math32.Sincos(c.Pitch)
	return r3.Vec{X: float64(sy * cp), Y: float64(sp), Z: float64(cy * cp)}
}

// Basis returns the horizontal right and forward vectors for the current look direction.
func (c *Free) Basis() (right, forward r3.Vec) {
	look := c.Look()
	right = r3.Unit(r3.Cross(look, Up))
	forward = r3.Unit(r3.Vec{X: look.X, Z: look.Z})
	return right, forward
}

// Target returns the point one unit ahead of the camera.
func (c *Free) Target() r3.Vec {
	return r3.Add(c.Position, c.Look())
}

// Update applies mouse look and movement for a frame of dt seconds. speedMul multiplies
// the fast/slow speed (the movement speed slider).
func (c *Free) Update(in Input, dt, speedMul float32) {
	c.Yaw += in.MouseDX * Sensitivity * dt
	c.Pitch += in.MouseDY * Sensitivity * pitchFactor * dt
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	} else if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}

	speed := FastSpeed
	if in.Slow {
		speed = SlowSpeed
	}
	step := float64(speed * speedMul * dt)

	right, forward := c.Basis()
	if in.Forward {
		c.Position = r3.Add(c.Position, r3.Scale(step, forward))
	}
	if in.Back {
		c.Position = r3.Sub(c.Position, r3.Scale(step, forward))
	}
	if in.Left {
		c.Position = r3.Sub(c.Position, r3.Scale(step, right))
	}
	if in.Right {
		c.Position = r3.Add(c.Position, r3.Scale(step, right))
	}
	if in.Up {
		c.Position.Y += step
	}
	if in.Down {
		c.Position.Y -= step
	}
}
