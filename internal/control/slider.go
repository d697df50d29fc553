package control

import "math"

// Slider maps a handle position in [0, 1] to a value in [Min, Max] and back.
// With Log set the mapping is geometric, which suits ranges spanning several decades
// (the time scale runs from 1 to a year per second). Log requires Min > 0.
type Slider struct {
	Label string
	Min   float64
	Max   float64
	Log   bool
}

// Value returns the value at handle position f. f is clamped to [0, 1].
func (s Slider) Value(f float64) float64 {
	f = Bounds{0, 1}.Clamp(f)
	if s.Log {
		return s.Min * math.Pow(s.Max/s.Min, f)
	}
	return s.Min + f*(s.Max-s.Min)
}

// Fraction returns the handle position for v. v is clamped to [Min, Max].
func (s Slider) Fraction(v float64) float64 {
	if s.Max == s.Min {
		return 0
	}
	v = Bounds{s.Min, s.Max}.Clamp(v)
	if s.Log {
		return math.Log(v/s.Min) / math.Log(s.Max/s.Min)
	}
	return (v - s.Min) / (s.Max - s.Min)
}

// Sliders returns the three parameter sliders in display order.
func Sliders() []Slider {
	return []Slider{
		{Label: "Time scale", Min: TimeScaleRange.Min, Max: TimeScaleRange.Max, Log: true},
		{Label: "Visual scale", Min: VisualScaleRange.Min, Max: VisualScaleRange.Max, Log: true},
		{Label: "Move speed", Min: MoveSpeedRange.Min, Max: MoveSpeedRange.Max, Log: true},
	}
}

// Get returns the parameter bound to slider index i (see Sliders).
func (p *Params) Get(i int) float64 {
	switch i {
	case 0:
		return p.TimeScale
	case 1:
		return p.VisualScale
	case 2:
		return p.MoveSpeed
	}
	return 0
}

// Set assigns the parameter bound to slider index i and clamps.
func (p *Params) Set(i int, v float64) {
	switch i {
	case 0:
		p.TimeScale = v
	case 1:
		p.VisualScale = v
	case 2:
		p.MoveSpeed = v
	}
	p.Clamp()
}
