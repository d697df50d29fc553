package simconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the default config file, relative to the process working directory.
const ConfigPath = "config/sim.yaml"

// Window holds viewer window settings.
type Window struct {
	Title      string `yaml:"title"`
	Width      int32  `yaml:"width"`
	Height     int32  `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	TargetFPS  int32  `yaml:"target_fps"`
}

// Config holds the startup state of a run. Nothing in here is written back while the
// simulation runs; the sliders change the live values only.
type Config struct {
	Preset      string  `yaml:"preset"`                // built-in preset name or "random"
	PresetFile  string  `yaml:"preset_file,omitempty"` // overrides Preset when set
	RandomCount int     `yaml:"random_count"`
	Seed        uint64  `yaml:"seed"` // 0 = time-based
	Softening   float64 `yaml:"softening"`
	TimeScale   float64 `yaml:"time_scale"`
	VisualScale float64 `yaml:"visual_scale"`
	MoveSpeed   float64 `yaml:"move_speed"` // camera speed multiplier
	ShowFPS     bool    `yaml:"show_fps"`
	ShowStats   bool    `yaml:"show_stats"`
	Font        string  `yaml:"font,omitempty"` // family looked up under assets/fonts; empty = raylib default
	Window      Window  `yaml:"window"`
}

// Default returns the configuration used when no file exists: the Sun-Earth pair at real
// time, fullscreen.
func Default() Config {
	return Config{
		Preset:      "sun-earth",
		RandomCount: 3,
		Seed:        0,
		Softening:   0,
		TimeScale:   1,
		VisualScale: 1,
		MoveSpeed:   1,
		ShowFPS:     true,
		ShowStats:   true,
		Window: Window{
			Title:      "playing_with_particles",
			Width:      1260,
			Height:     768,
			Fullscreen: true,
			TargetFPS:  60,
		},
	}
}

// Load reads the config at path. A missing file yields Default() and no error; a malformed
// file is an error. Fields absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("simconfig: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("simconfig: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the parent directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("simconfig: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("simconfig: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
