package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// KineticEnergy returns Σ ½ m v² in joules.
func KineticEnergy(bodies []Body) float64 {
	var e float64
	for _, b := range bodies {
		e += 0.5 * b.Mass * r3.Norm2(b.Velocity)
	}
	return e
}

// PotentialEnergy returns the pairwise gravitational potential energy -Σ G mᵢ mⱼ / rᵢⱼ in joules.
func PotentialEnergy(bodies []Body) float64 {
	var e float64
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			r := r3.Norm(r3.Sub(bodies[j].Position, bodies[i].Position))
			e -= G * bodies[i].Mass * bodies[j].Mass / r
		}
	}
	return e
}

// TotalEnergy is KineticEnergy + PotentialEnergy. Forward Euler does not conserve it; the
// drift is what the HUD and the headless runner report.
func TotalEnergy(bodies []Body) float64 {
	return KineticEnergy(bodies) + PotentialEnergy(bodies)
}

// Momentum returns Σ m v in kg·m/s.
func Momentum(bodies []Body) r3.Vec {
	var p r3.Vec
	for _, b := range bodies {
		p = r3.Add(p, r3.Scale(b.Mass, b.Velocity))
	}
	return p
}

// CenterOfMass returns the mass-weighted mean position, or the zero vector for an empty set.
func CenterOfMass(bodies []Body) r3.Vec {
	var sum r3.Vec
	var m float64
	for _, b := range bodies {
		sum = r3.Add(sum, r3.Scale(b.Mass, b.Position))
		m += b.Mass
	}
	if m == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/m, sum)
}

// RelativeDrift returns |(now - start) / start|, or 0 when start is 0.
func RelativeDrift(start, now float64) float64 {
	if start == 0 {
		return 0
	}
	return math.Abs((now - start) / start)
}
