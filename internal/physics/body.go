package physics

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"
)

// Body is a point mass. All physical quantities are SI: meters, kilograms, seconds.
// Radius, Color and Name are carried for the renderer only; the integrator never reads them.
type Body struct {
	Name     string
	Position r3.Vec // m
	Velocity r3.Vec // m/s
	Mass     float64 // kg, > 0
	Radius   float64 // m, display only
	Color    color.RGBA
}

// NewBody returns a body at position with the given velocity, mass and display radius.
// mass is not validated; callers building presets are expected to reject mass <= 0.
func NewBody(name string, position, velocity r3.Vec, mass, radius float64, c color.RGBA) Body {
	return Body{
		Name:     name,
		Position: position,
		Velocity: velocity,
		Mass:     mass,
		Radius:   radius,
		Color:    c,
	}
}
