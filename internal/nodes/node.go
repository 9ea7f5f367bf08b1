package nodes

import (
	"math"

	"floating-nodes/internal/render"
)

// Node is a simulated point. Radius, colours and connection style are fixed
// at creation; position and movement change as the simulation runs.
type Node struct {
	X, Y   float64
	Radius int
	// Color is Fill in rgba() notation.
	Color string
	Fill  render.RGBA
	Speed float64

	ConnectionSize         float64
	ConnectionColor        render.RGB
	ConnectionThreshold    float64
	ConnectionAlphaDivisor float64
	ConnectionStaticAlpha  *float64

	// Movement is nil only for nodes built by hand; such nodes stay put.
	Movement *Movement
}

// NewNode builds a node from p. An explicit radius is used as is; otherwise
// one is drawn uniformly from the inclusive radius range. The initial heading
// is unconstrained.
func NewNode(rng Rand, p Params) Node {
	radius := 0
	if p.Radius != nil {
		radius = *p.Radius
	} else {
		span := p.RadiusRange.Max + 1 - p.RadiusRange.Min
		radius = int(math.Floor(rng.Float64()*float64(span))) + p.RadiusRange.Min
	}
	movement := SelectMovement(rng, p.Speed, NoDirection)
	return Node{
		X:                      p.X,
		Y:                      p.Y,
		Radius:                 radius,
		Color:                  p.Color.String(),
		Fill:                   p.Color,
		Speed:                  p.Speed,
		ConnectionSize:         p.ConnectionSize,
		ConnectionColor:        p.ConnectionColor,
		ConnectionThreshold:    p.ConnectionThreshold,
		ConnectionAlphaDivisor: p.ConnectionAlphaDivisor,
		ConnectionStaticAlpha:  p.ConnectionStaticAlpha,
		Movement:               &movement,
	}
}

// Position returns the node centre.
func (n Node) Position() render.Point {
	return render.Point{X: n.X, Y: n.Y}
}

// Distance returns the Euclidean distance between the two centres.
func (n Node) Distance(other Node) float64 {
	return math.Hypot(other.X-n.X, other.Y-n.Y)
}

// Connects reports whether n draws a line to a neighbour at distance d.
func (n Node) Connects(d float64) bool {
	return d <= n.ConnectionThreshold
}

// StrokeAlpha is the alpha of n's line to a neighbour at distance d: the
// static alpha when set, otherwise fading linearly to zero at the threshold
// and scaled down by the divisor.
func (n Node) StrokeAlpha(d float64) float64 {
	if n.ConnectionStaticAlpha != nil {
		return *n.ConnectionStaticAlpha
	}
	return (1 - d/n.ConnectionThreshold) / n.ConnectionAlphaDivisor
}

// Stroke returns the full line colour towards a neighbour at distance d.
func (n Node) Stroke(d float64) render.RGBA {
	return n.ConnectionColor.WithAlpha(n.StrokeAlpha(d))
}
