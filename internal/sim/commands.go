package sim

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"nbody-sim/internal/commands"
	"nbody-sim/internal/control"
	"nbody-sim/internal/logger"
	"nbody-sim/internal/physics"
	"nbody-sim/internal/preset"
)

// RegisterCommands adds the simulation's console commands to reg. Results are written to log.
func RegisterCommands(reg *commands.Registry, s *Simulation, log *logger.Logger) {
	setter := func(name, help string, set func(v float64)) {
		fs := commands.NewFlagSet(name)
		reg.Register(name, help, fs, func() error {
			if fs.NArg() != 1 {
				return fmt.Errorf("usage: cmd %s <value>", name)
			}
			v, err := control.ParseValue(fs.Arg(0))
			if err != nil {
				return err
			}
			set(v)
			s.params.Clamp()
			return nil
		})
	}
	setter("timescale", "simulated seconds per real second (1 .. 3.1536e7)", func(v float64) {
		s.params.TimeScale = v
		log.Logf("time scale %g", control.TimeScaleRange.Clamp(v))
	})
	setter("scale", "display radius multiplier (1 .. 1000)", func(v float64) {
		s.params.VisualScale = v
		log.Logf("visual scale %g", control.VisualScaleRange.Clamp(v))
	})
	setter("speed", "camera speed multiplier (0.1 .. 100)", func(v float64) {
		s.params.MoveSpeed = v
		log.Logf("move speed %g", control.MoveSpeedRange.Clamp(v))
	})

	regen := commands.NewFlagSet("regen")
	count := regen.Int("n", 0, "body count (default: current)")
	reg.Register("regen", "replace the system with new random bodies", regen, func() error {
		s.SetRandomCount(*count)
		*count = 0
		s.Regenerate()
		return nil
	})

	presetFS := commands.NewFlagSet("preset")
	reg.Register("preset", "load a preset: "+strings.Join(preset.Names(), ", "), presetFS, func() error {
		if presetFS.NArg() != 1 {
			return fmt.Errorf("usage: cmd preset <name>")
		}
		return s.LoadPreset(presetFS.Arg(0))
	})

	loadFS := commands.NewFlagSet("load")
	reg.Register("load", "load a preset YAML file", loadFS, func() error {
		if loadFS.NArg() != 1 {
			return fmt.Errorf("usage: cmd load <file>")
		}
		return s.LoadFile(loadFS.Arg(0))
	})

	reg.Register("presets", "list presets", nil, func() error {
		log.Log("presets: " + strings.Join(preset.Names(), ", "))
		return nil
	})
	reg.Register("pause", "stop simulated time", nil, func() error {
		s.SetPaused(true)
		log.Log("paused")
		return nil
	})
	reg.Register("resume", "resume simulated time", nil, func() error {
		s.SetPaused(false)
		log.Log("resumed")
		return nil
	})
	reg.Register("energy", "print energy and momentum", nil, func() error {
		bodies := s.reg.Bodies()
		log.Logf("E=%.6e J (drift %.3e) |p|=%.6e kg m/s",
			physics.TotalEnergy(bodies), s.EnergyDrift(), r3.Norm(physics.Momentum(bodies)))
		return nil
	})
	reg.Register("bodies", "list bodies", nil, func() error {
		for i, b := range s.reg.Bodies() {
			log.Log(strconv.Itoa(i+1) + " " + describe(b))
		}
		return nil
	})
}

func describe(b physics.Body) string {
	return fmt.Sprintf("%s m=%.3e kg r=(%.3e, %.3e, %.3e) m v=(%.3e, %.3e, %.3e) m/s",
		b.Name, b.Mass, b.Position.X, b.Position.Y, b.Position.Z, b.Velocity.X, b.Velocity.Y, b.Velocity.Z)
}
