package nodes

import (
	"testing"

	"floating-nodes/internal/core"
	"floating-nodes/internal/render"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	if p.Color != (render.RGBA{0, 0, 0, 1}) {
		t.Fatalf("color = %v", p.Color)
	}
	if p.Speed != 0.09 {
		t.Fatalf("speed = %v", p.Speed)
	}
	if p.RadiusRange != (RadiusRange{Min: 2, Max: 5}) {
		t.Fatalf("radius range = %+v", p.RadiusRange)
	}
	if p.ConnectionSize != 1 || p.ConnectionThreshold != 120 || p.ConnectionAlphaDivisor != 8 {
		t.Fatalf("connection defaults = %v/%v/%v", p.ConnectionSize, p.ConnectionThreshold, p.ConnectionAlphaDivisor)
	}
	if p.ConnectionColor != (render.RGB{0, 0, 0}) {
		t.Fatalf("connection color = %v", p.ConnectionColor)
	}
	if p.Radius != nil || p.ConnectionStaticAlpha != nil {
		t.Fatal("radius and static alpha must be unset by default")
	}
}

func TestNewNodeDefaults(t *testing.T) {
	rng := core.NewRNG(5)
	for i := 0; i < 100; i++ {
		n := NewNode(rng, DefaultParams())
		if n.Radius < 2 || n.Radius > 5 {
			t.Fatalf("radius %d outside [2,5]", n.Radius)
		}
		if n.Color != "rgba(0,0,0,1)" {
			t.Fatalf("color = %q", n.Color)
		}
		if n.Movement == nil {
			t.Fatal("node built without a movement")
		}
		if n.X != 0 || n.Y != 0 {
			t.Fatalf("position = (%v,%v), want origin", n.X, n.Y)
		}
	}
}

func TestNewNodeRadiusRangeInclusive(t *testing.T) {
	p := DefaultParams()
	if got := NewNode(fixedRand(0), p).Radius; got != 2 {
		t.Fatalf("lowest draw radius = %d, want 2", got)
	}
	if got := NewNode(fixedRand(0.999), p).Radius; got != 5 {
		t.Fatalf("highest draw radius = %d, want 5", got)
	}
}

func TestNewNodeOverrides(t *testing.T) {
	p := DefaultParams().WithRadius(10).WithStaticAlpha(0.5).At(1, 2)
	p.Color = render.RGBA{255, 0, 0, 0.8}
	p.Speed = 0.1
	p.ConnectionSize = 3
	p.ConnectionColor = render.RGB{0, 0, 255}
	p.ConnectionThreshold = 150
	p.ConnectionAlphaDivisor = 5

	// The first draw would pick the radius if one were not given, so the
	// movement must come from it.
	n := NewNode(fixedRand(5.0/8), p)
	if n.Radius != 10 {
		t.Fatalf("radius = %d, want 10", n.Radius)
	}
	if n.X != 1 || n.Y != 2 {
		t.Fatalf("position = (%v,%v)", n.X, n.Y)
	}
	if n.Color != "rgba(255,0,0,0.8)" {
		t.Fatalf("color = %q", n.Color)
	}
	if n.ConnectionSize != 3 || n.ConnectionThreshold != 150 || n.ConnectionAlphaDivisor != 5 {
		t.Fatalf("connection = %v/%v/%v", n.ConnectionSize, n.ConnectionThreshold, n.ConnectionAlphaDivisor)
	}
	if n.ConnectionStaticAlpha == nil || *n.ConnectionStaticAlpha != 0.5 {
		t.Fatal("static alpha not carried over")
	}
	want := Directions(0.1)[Bottom]
	if *n.Movement != want {
		t.Fatalf("movement = %+v, want %+v", *n.Movement, want)
	}
}

func TestStrokeAlpha(t *testing.T) {
	n := NewNode(fixedRand(0), DefaultParams())
	if got := n.StrokeAlpha(0); got != 1.0/8 {
		t.Fatalf("alpha at 0 = %v, want %v", got, 1.0/8)
	}
	if got := n.StrokeAlpha(60); got != 0.5/8 {
		t.Fatalf("alpha at 60 = %v, want %v", got, 0.5/8)
	}
	if n.StrokeAlpha(30) <= n.StrokeAlpha(90) {
		t.Fatal("alpha must decrease with distance")
	}

	static := NewNode(fixedRand(0), DefaultParams().WithStaticAlpha(0.3))
	if got := static.StrokeAlpha(100); got != 0.3 {
		t.Fatalf("static alpha = %v, want 0.3", got)
	}
}

func TestConnectsIncludesThreshold(t *testing.T) {
	n := NewNode(fixedRand(0), DefaultParams())
	if !n.Connects(120) {
		t.Fatal("distance equal to the threshold must connect")
	}
	if n.Connects(120.01) {
		t.Fatal("distance past the threshold must not connect")
	}
}
