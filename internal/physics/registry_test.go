package physics

import (
	"image/color"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestRegistryCopiesOnWayInAndOut(t *testing.T) {
	src := sunEarth()
	reg := NewRegistry(src)

	src[0].Mass = 1
	assert.Equal(t, sunMass, reg.Bodies()[0].Mass, "registry must not alias the caller's slice")

	out := reg.Bodies()
	out[1].Position = r3.Vec{}
	assert.Equal(t, r3.Vec{X: au}, reg.Bodies()[1].Position, "Bodies must return a copy")
}

func TestCloneBodiesKeepsEveryField(t *testing.T) {
	src := []Body{NewBody("vega", r3.Vec{X: 1, Y: 2, Z: 3}, r3.Vec{X: -4}, 2.1e30, 1.6e9, color.RGBA{R: 200, G: 220, B: 255, A: 255})}
	var out []Body
	require.NotPanics(t, func() { out = cloneBodies(src) })
	assert.Equal(t, src, out)
	out[0].Velocity.X = 0
	assert.Equal(t, -4.0, src[0].Velocity.X)
}

func TestRegistryStepMutatesLiveSet(t *testing.T) {
	reg := NewRegistry(sunEarth())
	reg.Step(Integrator{}, 1, 3600)

	got := reg.Bodies()
	require.Len(t, got, 2)
	assert.NotEqual(t, r3.Vec{X: au}, got[1].Position)
	assert.Greater(t, got[0].Velocity.X, 0.0, "sun is pulled toward the planet")
}

func TestRegistryReplaceIsWholesale(t *testing.T) {
	reg := NewRegistry(sunEarth())
	prior := reg.Bodies()

	gen := NewGenerator(42)
	next := gen.Random(3)
	reg.Replace(next)

	got := reg.Bodies()
	require.Equal(t, 3, reg.Len())
	for _, b := range got {
		for _, p := range prior {
			assert.NotEqual(t, p, b, "no body may survive a replace")
		}
	}
	assert.Equal(t, next, got)
}

func TestRegistryReplaceWithEmptySet(t *testing.T) {
	reg := NewRegistry(sunEarth())
	reg.Replace(nil)
	assert.Equal(t, 0, reg.Len())
	assert.NotNil(t, reg.Bodies())
}

func TestRegistryReadersNeverSeeMixedSets(t *testing.T) {
	setA := make([]Body, 4)
	setB := make([]Body, 7)
	for i := range setA {
		setA[i] = Body{Name: "a", Mass: 1}
	}
	for i := range setB {
		setB[i] = Body{Name: "b", Mass: 2}
	}
	reg := NewRegistry(setA)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			if i%2 == 0 {
				reg.Replace(setB)
			} else {
				reg.Replace(setA)
			}
		}
	}()
	for i := 0; i < 500; i++ {
		got := reg.Bodies()
		switch len(got) {
		case 4, 7:
		default:
			t.Fatalf("unexpected set size %d", len(got))
		}
		for _, b := range got {
			if b.Name != got[0].Name {
				t.Fatalf("mixed set observed: %q and %q", got[0].Name, b.Name)
			}
		}
	}
	wg.Wait()
}

func TestRandomBodiesStayInRange(t *testing.T) {
	gen := NewGenerator(7)
	rr := gen.Ranges
	for round := 0; round < 20; round++ {
		bodies := gen.Random(25)
		require.Len(t, bodies, 25)
		for _, b := range bodies {
			assert.True(t, rr.Mass.Contains(b.Mass), "mass %g", b.Mass)
			assert.True(t, rr.Radius.Contains(b.Radius), "radius %g", b.Radius)
			assert.True(t, rr.XY.Contains(b.Position.X), "x %g", b.Position.X)
			assert.True(t, rr.XY.Contains(b.Position.Y), "y %g", b.Position.Y)
			assert.True(t, rr.Z.Contains(b.Position.Z), "z %g", b.Position.Z)
			assert.True(t, rr.Velocity.Contains(b.Velocity.X), "vx %g", b.Velocity.X)
			assert.True(t, rr.Velocity.Contains(b.Velocity.Y), "vy %g", b.Velocity.Y)
			assert.True(t, rr.Velocity.Contains(b.Velocity.Z), "vz %g", b.Velocity.Z)
			assert.Greater(t, b.Mass, 0.0)
		}
	}
}

func TestRandomDefaultRanges(t *testing.T) {
	rr := DefaultRandomRanges()
	assert.Equal(t, Range{1.0e30, 2.0e30}, rr.Mass)
	assert.Equal(t, Range{-2e11, 2e11}, rr.XY)
	assert.Equal(t, Range{-1e10, 1e10}, rr.Z)
	assert.Equal(t, Range{-3e4, 3e4}, rr.Velocity)
}

func TestRandomSeeding(t *testing.T) {
	assert.Equal(t, NewGenerator(99).Random(3), NewGenerator(99).Random(3))
	assert.NotEqual(t, NewGenerator(1).Random(3), NewGenerator(2).Random(3))
	assert.Empty(t, NewGenerator(1).Random(0))
}
