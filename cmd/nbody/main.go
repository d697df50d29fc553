package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"nbody-sim/internal/commands"
	"nbody-sim/internal/debug"
	"nbody-sim/internal/fonts"
	"nbody-sim/internal/graphics"
	"nbody-sim/internal/logger"
	"nbody-sim/internal/preset"
	"nbody-sim/internal/scene"
	"nbody-sim/internal/sim"
	"nbody-sim/internal/simconfig"
	"nbody-sim/internal/terminal"
	"nbody-sim/internal/ui"
)

func main() {
	configPath := flag.String("config", simconfig.ConfigPath, "path to the YAML config file")
	presetName := flag.String("preset", "", "preset to load, overrides the config ("+fmt.Sprint(preset.Names())+")")
	flag.Parse()

	log := logger.New(logger.DefaultPath)
	cfg, err := simconfig.Load(*configPath)
	if err != nil {
		log.Log(err.Error())
	}
	if *presetName != "" {
		cfg.Preset = *presetName
		cfg.PresetFile = ""
	}

	s, err := sim.New(cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	reg := commands.NewRegistry()
	sim.RegisterCommands(reg, s, log)

	scn := scene.New()
	hud := debug.New(cfg.ShowFPS, cfg.ShowStats)
	panel := ui.NewPanel(12, 12)
	term := terminal.New(log, reg)
	registerViewCommands(reg, scn, hud, log)

	update := func(dt float32) {
		term.Update()
		typing := term.IsOpen()
		if !typing {
			if rl.IsKeyPressed(rl.KeyTab) {
				scn.SetCaptured(!scn.Captured())
			}
			if rl.IsKeyPressed(rl.KeyR) {
				s.Regenerate()
			}
			if rl.IsKeyPressed(rl.KeyP) {
				s.SetPaused(!s.Paused())
			}
		}
		panel.Update(s.Params(), !scn.Captured())
		scn.Update(dt, s.Params().MoveSpeed, !typing)
		s.Tick(float64(dt))
	}
	draw := func() {
		scn.Draw(s.Registry().Bodies(), s.Params().VisualScale)
		panel.Draw(*s.Params())
		hud.Draw(s.Stats())
		term.Draw()
	}

	log.Logf("started: preset %s, time scale %g", s.Preset(), s.Params().TimeScale)
	first := true
	graphics.Run(cfg.Window, func(dt float32) {
		if first {
			// The cursor and fonts need a live window.
			scn.SetCaptured(true)
			if font, ok := loadFont(cfg.Font, log); ok {
				panel.SetFont(font)
				hud.SetFont(font)
				term.SetFont(font)
			}
			first = false
		}
		update(dt)
	}, draw)
	log.Log("quit")
}

// loadFont resolves name under the font directories and loads it. Failures are logged and
// leave the raylib default font in place.
func loadFont(name string, log *logger.Logger) (rl.Font, bool) {
	if name == "" {
		return rl.Font{}, false
	}
	path, err := fonts.Find(name)
	if err != nil {
		log.Logf("font %q: %v", name, err)
		return rl.Font{}, false
	}
	font := rl.LoadFontEx(path, 40, nil, 0)
	if font.Texture.ID == 0 {
		log.Logf("font %q: could not load %s", name, path)
		return rl.Font{}, false
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	log.Logf("font: %s", path)
	return font, true
}

func registerViewCommands(reg *commands.Registry, scn *scene.Scene, hud *debug.Debug, log *logger.Logger) {
	toggle := func(name, help string, set func(bool)) {
		fs := commands.NewFlagSet(name)
		show := fs.Bool("show", false, "show")
		hide := fs.Bool("hide", false, "hide")
		reg.Register(name, help, fs, func() error {
			defer func() { *show, *hide = false, false }()
			switch {
			case *show && !*hide:
				set(true)
			case *hide && !*show:
				set(false)
			default:
				return fmt.Errorf("usage: cmd %s --show | --hide", name)
			}
			return nil
		})
	}
	toggle("grid", "show/hide the AU grid", func(v bool) { scn.GridVisible = v })
	toggle("fps", "show/hide FPS and memory", func(v bool) { hud.ShowFPS = v })
	toggle("stats", "show/hide simulation stats", func(v bool) { hud.ShowStats = v })
	reg.Register("help", "list commands", nil, func() error {
		for _, line := range reg.Help() {
			log.Log(line)
		}
		return nil
	})
}
