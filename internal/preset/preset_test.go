package preset

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"nbody-sim/internal/physics"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"binary", "random", "solar", "sun-earth"}, Names())
}

func TestLoadSunEarth(t *testing.T) {
	bodies, err := Load("sun-earth", nil, 0)
	require.NoError(t, err)
	require.Len(t, bodies, 2)

	sun, earth := bodies[0], bodies[1]
	assert.Equal(t, "Sun", sun.Name)
	assert.Equal(t, 1.989e30, sun.Mass)
	assert.Equal(t, 6.9634e8, sun.Radius)
	assert.Equal(t, r3.Vec{}, sun.Position)
	assert.Equal(t, color.RGBA{253, 249, 0, 255}, sun.Color)

	assert.Equal(t, 5.972e24, earth.Mass)
	assert.Equal(t, r3.Vec{X: 1.49597870e11}, earth.Position)
	assert.Equal(t, r3.Vec{Z: 29780}, earth.Velocity)
}

func TestBuiltinsAreValid(t *testing.T) {
	for _, name := range Names() {
		if name == Random {
			continue
		}
		t.Run(name, func(t *testing.T) {
			bodies, err := Load(name, nil, 0)
			require.NoError(t, err)
			assert.NotEmpty(t, bodies)
			for _, b := range bodies {
				assert.Greater(t, b.Mass, 0.0)
				assert.NotEmpty(t, b.Name)
			}
		})
	}
}

func TestBinaryHasNoNetMomentum(t *testing.T) {
	bodies, err := Load("binary", nil, 0)
	require.NoError(t, err)
	assert.Equal(t, r3.Vec{}, physics.Momentum(bodies))
}

func TestLoadRandom(t *testing.T) {
	gen := physics.NewGenerator(3)
	bodies, err := Load(Random, gen, 5)
	require.NoError(t, err)
	assert.Len(t, bodies, 5)

	bodies, err = Load(Random, gen, 0)
	require.NoError(t, err)
	assert.Len(t, bodies, DefaultRandomCount)
}

func TestLoadRandomWithoutGenerator(t *testing.T) {
	var bodies []physics.Body
	require.NotPanics(t, func() {
		var err error
		bodies, err = Load(Random, nil, 3)
		require.NoError(t, err)
	})
	assert.Len(t, bodies, 3)
}

func TestLoadUnknown(t *testing.T) {
	_, err := Load("andromeda", nil, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPreset))
}

func TestToBodiesRejectsBadDefinitions(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"zero mass", "name: x\nbodies:\n  - name: a\n    mass: 0\n"},
		{"negative mass", "name: x\nbodies:\n  - name: a\n    mass: -4\n"},
		{"shared position", "name: x\nbodies:\n  - {name: a, mass: 1, position: [1, 2, 3]}\n  - {name: b, mass: 1, position: [1, 2, 3]}\n"},
		{"bad color", "name: x\nbodies:\n  - {name: a, mass: 1, color: \"#zzz\"}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse([]byte(tt.doc))
			require.NoError(t, err)
			_, err = d.ToBodies()
			assert.Error(t, err)
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("bodies: [unterminated"))
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#0079f1")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 121, 241, 255}, c)

	c, err = ParseColor(" #fff ")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, c)

	_, err = ParseColor("blue")
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "pair.yaml")
	doc := "name: pair\nbodies:\n  - {name: a, mass: 2e30, radius: 1e8}\n  - {name: b, mass: 1e24, position: [1e11, 0, 0], velocity: [0, 0, 3e4]}\n"
	require.NoError(t, os.WriteFile(file, []byte(doc), 0644))

	bodies, err := LoadFile(file)
	require.NoError(t, err)
	require.Len(t, bodies, 2)
	assert.Equal(t, fallbackColor, bodies[0].Color)
	assert.Equal(t, r3.Vec{Z: 3e4}, bodies[1].Velocity)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
