package sim

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nbody-sim/internal/commands"
	"nbody-sim/internal/control"
	"nbody-sim/internal/logger"
	"nbody-sim/internal/preset"
	"nbody-sim/internal/simconfig"
)

func newSim(t *testing.T, mutate func(*simconfig.Config)) (*Simulation, *logger.Logger) {
	t.Helper()
	cfg := simconfig.Default()
	cfg.Seed = 11
	if mutate != nil {
		mutate(&cfg)
	}
	log := logger.New("")
	s, err := New(cfg, log)
	require.NoError(t, err)
	return s, log
}

func TestNewLoadsConfiguredPreset(t *testing.T) {
	s, log := newSim(t, nil)
	assert.Equal(t, "sun-earth", s.Preset())
	assert.Equal(t, 2, s.Registry().Len())
	assert.Contains(t, log.Lines()[0], "loaded sun-earth: 2 bodies")
}

func TestNewRejectsUnknownPreset(t *testing.T) {
	cfg := simconfig.Default()
	cfg.Preset = "nowhere"
	_, err := New(cfg, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, preset.ErrUnknownPreset))
}

func TestNewPrefersPresetFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "one.yaml")
	require.NoError(t, os.WriteFile(file, []byte("name: one\nbodies:\n  - {name: lonely, mass: 1e30}\n"), 0644))
	s, _ := newSim(t, func(c *simconfig.Config) { c.PresetFile = file })
	assert.Equal(t, file, s.Preset())
	assert.Equal(t, 1, s.Registry().Len())
}

func TestTickScalesByTimeScale(t *testing.T) {
	s, _ := newSim(t, func(c *simconfig.Config) { c.TimeScale = 3600 })
	before := s.Registry().Bodies()

	s.Tick(0.5)
	assert.Equal(t, 1800.0, s.SimTime())
	after := s.Registry().Bodies()
	assert.NotEqual(t, before[1].Position, after[1].Position)
}

func TestPausedTickIsNoop(t *testing.T) {
	s, _ := newSim(t, nil)
	s.SetPaused(true)
	before := s.Registry().Bodies()
	s.Tick(1)
	assert.True(t, s.Paused())
	assert.Equal(t, before, s.Registry().Bodies())
	assert.Equal(t, 0.0, s.SimTime())
}

func TestDriveStopsOnExit(t *testing.T) {
	s, _ := newSim(t, nil)
	remaining := 5
	frames := s.Drive(func() (float64, bool) {
		if remaining == 0 {
			return 0, false
		}
		remaining--
		return 0.25, true
	})
	assert.Equal(t, 5, frames)
	assert.InDelta(t, 1.25, s.SimTime(), 1e-12)
}

func TestDriveStopsOnNonPositiveFrame(t *testing.T) {
	for _, dt := range []float64{0, -0.25, math.NaN()} {
		s, _ := newSim(t, nil)
		calls := 0
		frames := s.Drive(func() (float64, bool) {
			calls++
			if calls > 10 {
				return 0.25, false
			}
			return dt, s.SimTime() < 1
		})
		assert.Equal(t, 0, frames, "dt %g", dt)
		assert.Equal(t, 1, calls, "dt %g", dt)
		assert.Equal(t, 0.0, s.SimTime(), "dt %g", dt)
	}
}

func TestRegenerateReplacesEverything(t *testing.T) {
	s, _ := newSim(t, func(c *simconfig.Config) { c.RandomCount = 4 })
	prior := s.Registry().Bodies()
	s.Tick(1)

	s.Regenerate()
	got := s.Registry().Bodies()
	assert.Equal(t, preset.Random, s.Preset())
	require.Len(t, got, 4)
	for _, b := range got {
		assert.NotContains(t, prior, b)
	}
	assert.Equal(t, 0.0, s.SimTime())
}

func TestEnergyDriftStartsAtZero(t *testing.T) {
	s, _ := newSim(t, func(c *simconfig.Config) { c.TimeScale = 86400 })
	assert.Equal(t, 0.0, s.EnergyDrift())
	for i := 0; i < 30; i++ {
		s.Tick(1)
	}
	st := s.Stats()
	assert.Greater(t, st.EnergyDrift, 0.0)
	assert.Equal(t, 2, st.Bodies)
	assert.Equal(t, 30*86400.0, st.SimTime)
	assert.Equal(t, 86400.0, st.Params.TimeScale)
}

func TestCommands(t *testing.T) {
	s, log := newSim(t, nil)
	reg := commands.NewRegistry()
	RegisterCommands(reg, s, log)

	run := func(line string) error {
		args, ok := commands.Parse(line)
		require.True(t, ok, line)
		return reg.Execute(args)
	}

	require.NoError(t, run("cmd timescale 86400"))
	assert.Equal(t, 86400.0, s.Params().TimeScale)
	require.NoError(t, run("cmd timescale 1e12"))
	assert.Equal(t, control.SecondsPerYear, s.Params().TimeScale)
	assert.Error(t, run("cmd timescale fast"))
	assert.Error(t, run("cmd timescale"))

	require.NoError(t, run("cmd scale 40"))
	assert.Equal(t, 40.0, s.Params().VisualScale)
	require.NoError(t, run("cmd speed 0.5"))
	assert.Equal(t, 0.5, s.Params().MoveSpeed)

	require.NoError(t, run("cmd regen -n 6"))
	assert.Equal(t, 6, s.Registry().Len())
	require.NoError(t, run("cmd regen"))
	assert.Equal(t, 6, s.Registry().Len(), "count sticks between regenerations")

	require.NoError(t, run("cmd preset solar"))
	assert.Equal(t, "solar", s.Preset())
	assert.Error(t, run("cmd preset pluto"))
	assert.Equal(t, "solar", s.Preset(), "failed load keeps the current set")

	require.NoError(t, run("cmd pause"))
	assert.True(t, s.Paused())
	require.NoError(t, run("cmd resume"))
	assert.False(t, s.Paused())

	require.NoError(t, run("cmd energy"))
	require.NoError(t, run("cmd bodies"))
	require.NoError(t, run("cmd presets"))
	lines := log.Lines()
	assert.Contains(t, lines[len(lines)-1], "presets: binary, random, solar, sun-earth")
}
