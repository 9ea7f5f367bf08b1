//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas replays a recorded frame onto an ebiten image.
type Canvas struct {
	Background RGBA
	Antialias  bool
}

// NewCanvas constructs a canvas that clears to bg.
func NewCanvas(bg RGBA) *Canvas {
	return &Canvas{Background: bg, Antialias: true}
}

// Replay draws ops onto dst in order.
func (c *Canvas) Replay(dst *ebiten.Image, ops []Op) {
	for _, op := range ops {
		switch op.Kind {
		case OpClear:
			if c.Background.Alpha() <= 0 {
				dst.Clear()
				continue
			}
			dst.Fill(c.Background.NRGBA())
		case OpCircle:
			vector.DrawFilledCircle(dst, float32(op.X0), float32(op.Y0), float32(op.Radius), op.Color.NRGBA(), c.Antialias)
		case OpLine:
			vector.StrokeLine(dst, float32(op.X0), float32(op.Y0), float32(op.X1), float32(op.Y1), float32(op.Width), op.Color.NRGBA(), c.Antialias)
		}
	}
}
