package sim

import (
	"fmt"

	"nbody-sim/internal/control"
	"nbody-sim/internal/logger"
	"nbody-sim/internal/physics"
	"nbody-sim/internal/preset"
	"nbody-sim/internal/simconfig"
)

// Simulation binds the body registry to the integrator and the live parameters. The viewer
// calls Tick once per frame and reads positions back through Registry.
type Simulation struct {
	reg         *physics.Registry
	integrator  physics.Integrator
	gen         *physics.Generator
	params      control.Params
	log         *logger.Logger
	preset      string
	randomCount int
	paused      bool
	simTime     float64 // simulated seconds since the current set was loaded
	startEnergy float64
}

// New builds a simulation from cfg, loading cfg.PresetFile when set and cfg.Preset otherwise.
func New(cfg simconfig.Config, log *logger.Logger) (*Simulation, error) {
	s := &Simulation{
		reg:         physics.NewRegistry(nil),
		integrator:  physics.Integrator{Softening: cfg.Softening},
		gen:         physics.NewGenerator(cfg.Seed),
		params:      control.NewParams(cfg.TimeScale, cfg.VisualScale, cfg.MoveSpeed),
		log:         log,
		randomCount: cfg.RandomCount,
	}
	if s.randomCount <= 0 {
		s.randomCount = preset.DefaultRandomCount
	}
	if cfg.PresetFile != "" {
		if err := s.LoadFile(cfg.PresetFile); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err := s.LoadPreset(cfg.Preset); err != nil {
		return nil, err
	}
	return s, nil
}

// Registry returns the body registry for readers.
func (s *Simulation) Registry() *physics.Registry { return s.reg }

// Params returns the live parameters; the slider panel writes through this pointer.
func (s *Simulation) Params() *control.Params { return &s.params }

// Preset returns the name of the loaded preset (or file path).
func (s *Simulation) Preset() string { return s.preset }

// RandomCount returns the body count used by Regenerate.
func (s *Simulation) RandomCount() int { return s.randomCount }

// SetRandomCount sets the body count used by Regenerate. n <= 0 is ignored.
func (s *Simulation) SetRandomCount(n int) {
	if n > 0 {
		s.randomCount = n
	}
}

// Paused reports whether Tick is currently a no-op.
func (s *Simulation) Paused() bool { return s.paused }

// SetPaused stops or resumes simulated time.
func (s *Simulation) SetPaused(p bool) { s.paused = p }

// SimTime returns simulated seconds elapsed since the current set was loaded.
func (s *Simulation) SimTime() float64 { return s.simTime }

// Tick advances the simulation by one frame of dtWall wall seconds at the current time scale.
func (s *Simulation) Tick(dtWall float64) {
	if s.paused {
		return
	}
	ts := s.params.TimeScale
	s.reg.Step(s.integrator, dtWall, ts)
	s.simTime += dtWall * ts
}

// Drive calls Tick with successive frame durations from next until next reports false or
// hands back a non-positive (or NaN) duration, which could never advance simulated time.
// It returns the number of frames stepped.
func (s *Simulation) Drive(next func() (dtWall float64, ok bool)) int {
	frames := 0
	for {
		dt, ok := next()
		if !ok || !(dt > 0) {
			return frames
		}
		s.Tick(dt)
		frames++
	}
}

// Regenerate replaces the whole set with RandomCount fresh random bodies.
func (s *Simulation) Regenerate() {
	s.replace(preset.Random, s.gen.Random(s.randomCount))
}

// LoadPreset replaces the whole set with the named preset.
func (s *Simulation) LoadPreset(name string) error {
	bodies, err := preset.Load(name, s.gen, s.randomCount)
	if err != nil {
		return fmt.Errorf("load preset: %w", err)
	}
	s.replace(name, bodies)
	return nil
}

// LoadFile replaces the whole set with a preset document read from path.
func (s *Simulation) LoadFile(path string) error {
	bodies, err := preset.LoadFile(path)
	if err != nil {
		return fmt.Errorf("load preset file: %w", err)
	}
	s.replace(path, bodies)
	return nil
}

func (s *Simulation) replace(name string, bodies []physics.Body) {
	s.reg.Replace(bodies)
	s.preset = name
	s.simTime = 0
	s.startEnergy = physics.TotalEnergy(bodies)
	if s.log != nil {
		s.log.Logf("loaded %s: %d bodies", name, len(bodies))
	}
}

// EnergyDrift returns the relative change in total energy since the set was loaded.
func (s *Simulation) EnergyDrift() float64 {
	return physics.RelativeDrift(s.startEnergy, physics.TotalEnergy(s.reg.Bodies()))
}

// Stats is a snapshot of the values shown in the HUD.
type Stats struct {
	Preset      string
	Bodies      int
	SimTime     float64
	EnergyDrift float64
	Paused      bool
	Params      control.Params
}

// Stats returns the current HUD values.
func (s *Simulation) Stats() Stats {
	return Stats{
		Preset:      s.preset,
		Bodies:      s.reg.Len(),
		SimTime:     s.simTime,
		EnergyDrift: s.EnergyDrift(),
		Paused:      s.paused,
		Params:      s.params,
	}
}
