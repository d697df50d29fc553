package physics

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Integrator advances a body set with explicit (forward) Euler over all-pairs gravity.
// It keeps no state between calls; Softening is configuration, not state.
//
// Softening, when positive, is added in quadrature to every pair distance so coincident or
// near-coincident bodies stay finite. Zero (the default) is the plain inverse-square law.
type Integrator struct {
	Softening float64 // m
}

// Step advances bodies in place by dtWall*timeScale simulated seconds.
// Accelerations for every body are computed first, from positions as they were on entry;
// only then are velocities and positions written, velocity before position.
// No bounds are imposed on dtWall or timeScale.
func (in Integrator) Step(bodies []Body, dtWall, timeScale float64) {
	acc := accelerations(bodies, in.Softening)
	scaled := dtWall * timeScale
	for i := range bodies {
		b := &bodies[i]
		b.Velocity = r3.Add(b.Velocity, r3.Scale(scaled, acc[i]))
		b.Position = r3.Add(b.Position, r3.Scale(scaled, b.Velocity))
	}
}

// Step advances bodies with an unsoftened Integrator. See Integrator.Step.
func Step(bodies []Body, dtWall, timeScale float64) {
	Integrator{}.Step(bodies, dtWall, timeScale)
}
