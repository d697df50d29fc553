package control

import (
	"fmt"
	"math"
	"strconv"
)

// SecondsPerYear is one simulated year; the time scale slider tops out at a year per real second.
const SecondsPerYear = 3.1536e7

// Bounds of the live-tunable parameters.
var (
	TimeScaleRange   = Bounds{Min: 1, Max: SecondsPerYear}
	VisualScaleRange = Bounds{Min: 1, Max: 1000}
	MoveSpeedRange   = Bounds{Min: 0.1, Max: 100}
)

// Bounds is a closed interval.
type Bounds struct {
	Min, Max float64
}

// Clamp returns v limited to [Min, Max]. NaN clamps to Min.
func (b Bounds) Clamp(v float64) float64 {
	if math.IsNaN(v) || v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// Contains reports whether v lies in [Min, Max]. NaN is never contained.
func (b Bounds) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// Params are the values the user tunes while the simulation runs.
// TimeScale converts wall seconds into simulated seconds; VisualScale multiplies display
// radii only; MoveSpeed multiplies the camera speed.
type Params struct {
	TimeScale   float64
	VisualScale float64
	MoveSpeed   float64
}

// NewParams returns clamped params.
func NewParams(timeScale, visualScale, moveSpeed float64) Params {
	p := Params{TimeScale: timeScale, VisualScale: visualScale, MoveSpeed: moveSpeed}
	p.Clamp()
	return p
}

// Clamp limits every field to its range.
func (p *Params) Clamp() {
	p.TimeScale = TimeScaleRange.Clamp(p.TimeScale)
	p.VisualScale = VisualScaleRange.Clamp(p.VisualScale)
	p.MoveSpeed = MoveSpeedRange.Clamp(p.MoveSpeed)
}

// ParseValue parses a console argument as a finite float.
func ParseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

// FormatDuration renders simulated seconds in the largest sensible unit (s, min, h, d, y).
func FormatDuration(seconds float64) string {
	abs := math.Abs(seconds)
	switch {
	case abs >= SecondsPerYear:
		return fmt.Sprintf("%.2f y", seconds/SecondsPerYear)
	case abs >= 86400:
		return fmt.Sprintf("%.2f d", seconds/86400)
	case abs >= 3600:
		return fmt.Sprintf("%.2f h", seconds/3600)
	case abs >= 60:
		return fmt.Sprintf("%.2f min", seconds/60)
	default:
		return fmt.Sprintf("%.2f s", seconds)
	}
}
