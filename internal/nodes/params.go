package nodes

import "floating-nodes/internal/render"

// RadiusRange bounds randomly chosen radii. Both ends are inclusive.
type RadiusRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Params describes how a node looks, moves and connects. Start from
// DefaultParams and override individual fields.
type Params struct {
	X float64 `yaml:"-"`
	Y float64 `yaml:"-"`

	Color       render.RGBA `yaml:"color"`
	Speed       float64     `yaml:"speed"`
	Radius      *int        `yaml:"radius,omitempty"`
	RadiusRange RadiusRange `yaml:"radius_range"`

	ConnectionSize         float64    `yaml:"connection_size"`
	ConnectionColor        render.RGB `yaml:"connection_color"`
	ConnectionThreshold    float64    `yaml:"connection_threshold"`
	ConnectionAlphaDivisor float64    `yaml:"connection_alpha_divisor"`
	// ConnectionStaticAlpha replaces the distance-based alpha when set.
	ConnectionStaticAlpha *float64 `yaml:"connection_static_alpha,omitempty"`
}

// DefaultParams returns the documented node defaults.
func DefaultParams() Params {
	return Params{
		Color:                  render.RGBA{0, 0, 0, 1},
		Speed:                  0.09,
		RadiusRange:            RadiusRange{Min: 2, Max: 5},
		ConnectionSize:         1,
		ConnectionColor:        render.RGB{0, 0, 0},
		ConnectionThreshold:    120,
		ConnectionAlphaDivisor: 8,
	}
}

// WithRadius returns a copy with a fixed radius.
func (p Params) WithRadius(r int) Params {
	p.Radius = &r
	return p
}

// WithStaticAlpha returns a copy whose connections use a fixed alpha.
func (p Params) WithStaticAlpha(a float64) Params {
	p.ConnectionStaticAlpha = &a
	return p
}

// At returns a copy positioned at (x, y).
func (p Params) At(x, y float64) Params {
	p.X, p.Y = x, y
	return p
}
