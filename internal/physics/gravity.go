package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// G is the Newtonian gravitational constant in m³/(kg·s²).
const G = 6.67430e-11

// Accelerations returns the net gravitational acceleration on every body, in the same order
// as bodies. Every entry is computed from the positions as passed in; bodies is not modified.
// Coincident bodies divide by zero and yield a non-finite result.
func Accelerations(bodies []Body) []r3.Vec {
	return accelerations(bodies, 0)
}

// accelerations is the all-pairs sum. softening is added (squared) to every squared
// distance; zero reproduces the unsoftened force law.
func accelerations(bodies []Body, softening float64) []r3.Vec {
	acc := make([]r3.Vec, len(bodies))
	eps2 := softening * softening
	for i := range bodies {
		pi := bodies[i].Position
		var a r3.Vec
		for j := range bodies {
			if i == j {
				continue
			}
			d := r3.Sub(bodies[j].Position, pi)
			dist2 := r3.Norm2(d) + eps2
			dist := math.Sqrt(dist2)
			// G * m_j * d / |d|^3
			a = r3.Add(a, r3.Scale(G*bodies[j].Mass/(dist2*dist), d))
		}
		acc[i] = a
	}
	return acc
}
