//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"floating-nodes/internal/nodes"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelWidth  = 150
	panelHeight = 116
)

var panelColor = color.RGBA{R: 0, G: 0, B: 0, A: 160}

// Overlay draws engine diagnostics in the top-left corner. F1 toggles it.
type Overlay struct {
	visible bool
}

// NewOverlay constructs a hidden overlay.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// SetVisible shows or hides the overlay.
func (o *Overlay) SetVisible(v bool) { o.visible = v }

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.visible = !o.visible
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, e *nodes.Engine) {
	if !o.visible || e == nil {
		return
	}
	text := Summary(e.Status(), e.State(), e.LastFrame())
	text += fmt.Sprintf("\nFPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())

	vector.DrawFilledRect(screen, 0, 0, panelWidth, panelHeight, panelColor, false)
	ebitenutil.DebugPrint(screen, text)
}
