package physics

import (
	"image/color"
	"math/rand/v2"
	"strconv"
	"time"

	"gonum.org/v1/gonum/spatial/r3"
)

// Range is a closed interval [Min, Max] sampled uniformly.
type Range struct {
	Min, Max float64
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) sample(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// RandomRanges bounds every quantity drawn for a randomized body.
type RandomRanges struct {
	Mass     Range // kg
	Radius   Range // m
	XY       Range // m, position X and Y
	Z        Range // m, position Z
	Velocity Range // m/s, every component
}

// DefaultRandomRanges returns star-like bodies scattered in a thick disc about the origin.
func DefaultRandomRanges() RandomRanges {
	return RandomRanges{
		Mass:     Range{1.0e30, 2.0e30},
		Radius:   Range{3.0e8, 9.0e8},
		XY:       Range{-2e11, 2e11},
		Z:        Range{-1e10, 1e10},
		Velocity: Range{-3e4, 3e4},
	}
}

// randomPalette colors generated bodies in turn.
var randomPalette = []color.RGBA{
	{253, 249, 0, 255},   // yellow
	{230, 41, 55, 255},   // red
	{0, 121, 241, 255},   // blue
	{0, 228, 48, 255},    // green
	{255, 161, 0, 255},   // orange
	{200, 122, 255, 255}, // purple
}

// Generator draws randomized body sets. Not safe for concurrent use.
type Generator struct {
	Ranges RandomRanges
	rng    *rand.Rand
}

// NewGenerator returns a generator with DefaultRandomRanges. seed == 0 uses a time-based seed,
// so consecutive runs differ.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{
		Ranges: DefaultRandomRanges(),
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Random returns k bodies whose mass, radius, position and velocity components are each drawn
// independently and uniformly from g.Ranges. k <= 0 yields an empty set.
func (g *Generator) Random(k int) []Body {
	if k <= 0 {
		return []Body{}
	}
	rr := g.Ranges
	out := make([]Body, k)
	for i := range out {
		out[i] = Body{
			Name:   "body-" + strconv.Itoa(i+1),
			Mass:   rr.Mass.sample(g.rng),
			Radius: rr.Radius.sample(g.rng),
			Position: r3.Vec{
				X: rr.XY.sample(g.rng),
				Y: rr.XY.sample(g.rng),
				Z: rr.Z.sample(g.rng),
			},
			Velocity: r3.Vec{
				X: rr.Velocity.sample(g.rng),
				Y: rr.Velocity.sample(g.rng),
				Z: rr.Velocity.sample(g.rng),
			},
			Color: randomPalette[i%len(randomPalette)],
		}
	}
	return out
}
