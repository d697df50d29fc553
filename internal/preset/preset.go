package preset

import (
	"embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"nbody-sim/internal/physics"
)

// Random is the name of the preset that draws a fresh chaotic set on every load.
const Random = "random"

// DefaultRandomCount is the body count of the random preset when none is configured.
const DefaultRandomCount = 3

// ErrUnknownPreset is returned (wrapped) by Load for names that are neither built in nor Random.
var ErrUnknownPreset = errors.New("unknown preset")

//go:embed presets/*.yaml
var builtin embed.FS

// fallbackColor is used when a body definition has no color.
var fallbackColor = color.RGBA{200, 200, 255, 255}

// Def is the YAML document for one preset (e.g. presets/solar.yaml).
type Def struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	Bodies      []BodyDef `yaml:"bodies"`
}

// BodyDef is one body of a preset. Quantities are SI; Color is "#rrggbb".
type BodyDef struct {
	Name     string     `yaml:"name"`
	Mass     float64    `yaml:"mass"`
	Radius   float64    `yaml:"radius"`
	Position [3]float64 `yaml:"position"`
	Velocity [3]float64 `yaml:"velocity"`
	Color    string     `yaml:"color,omitempty"`
}

// Parse decodes a preset document.
func Parse(data []byte) (Def, error) {
	var d Def
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Def{}, fmt.Errorf("preset: %w", err)
	}
	return d, nil
}

// ToBodies converts the definition to physics bodies. Every mass must be positive and no two
// bodies may start at the same position.
func (d Def) ToBodies() ([]physics.Body, error) {
	out := make([]physics.Body, 0, len(d.Bodies))
	seen := make(map[[3]float64]string, len(d.Bodies))
	for i, b := range d.Bodies {
		label := b.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}
		if b.Mass <= 0 {
			return nil, fmt.Errorf("preset %s: body %s: mass must be positive, got %g", d.Name, label, b.Mass)
		}
		if other, ok := seen[b.Position]; ok {
			return nil, fmt.Errorf("preset %s: bodies %s and %s share a position", d.Name, other, label)
		}
		seen[b.Position] = label
		c := fallbackColor
		if b.Color != "" {
			parsed, err := ParseColor(b.Color)
			if err != nil {
				return nil, fmt.Errorf("preset %s: body %s: %w", d.Name, label, err)
			}
			c = parsed
		}
		out = append(out, physics.NewBody(
			label,
			r3.Vec{X: b.Position[0], Y: b.Position[1], Z: b.Position[2]},
			r3.Vec{X: b.Velocity[0], Y: b.Velocity[1], Z: b.Velocity[2]},
			b.Mass, b.Radius, c,
		))
	}
	return out, nil
}

// ParseColor parses "#rrggbb" (or "#rgb") into an opaque RGBA.
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// Names returns the built-in preset names plus Random, sorted.
func Names() []string {
	names := []string{Random}
	entries, err := builtin.ReadDir("presets")
	if err == nil {
		for _, e := range entries {
			if n, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
				names = append(names, n)
			}
		}
	}
	sort.Strings(names)
	return names
}

// Builtin returns the definition of a built-in preset.
func Builtin(name string) (Def, error) {
	data, err := builtin.ReadFile(path.Join("presets", name+".yaml"))
	if err != nil {
		return Def{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return Parse(data)
}

// Load builds the body set for name. Random draws randomCount bodies from gen (a time-seeded
// generator when gen is nil); any other name is a built-in preset.
func Load(name string, gen *physics.Generator, randomCount int) ([]physics.Body, error) {
	if name == Random {
		if randomCount <= 0 {
			randomCount = DefaultRandomCount
		}
		if gen == nil {
			gen = physics.NewGenerator(0)
		}
		return gen.Random(randomCount), nil
	}
	d, err := Builtin(name)
	if err != nil {
		return nil, err
	}
	return d.ToBodies()
}

// LoadFile reads a preset document from disk, for user-supplied systems.
func LoadFile(filename string) ([]physics.Body, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("preset: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return d.ToBodies()
}
