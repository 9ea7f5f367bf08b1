package render

import (
	"image/color"
	"math"
	"strconv"
	"strings"
)

// RGBA is a colour in CSS notation order: red, green and blue on a 0-255
// scale followed by an alpha in [0, 1].
type RGBA [4]float64

// RGB is an opaque colour on a 0-255 scale.
type RGB [3]float64

// WithAlpha combines the colour with an alpha value.
func (c RGB) WithAlpha(a float64) RGBA {
	return RGBA{c[0], c[1], c[2], a}
}

// String formats the colour as rgba(r,g,b,a) using the shortest exact
// decimal form of each component.
func (c RGBA) String() string {
	var sb strings.Builder
	sb.WriteString("rgba(")
	for i, v := range c {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}

// Alpha returns the alpha component.
func (c RGBA) Alpha() float64 { return c[3] }

// NRGBA converts to a non-premultiplied 8-bit colour, clamping out-of-range
// and NaN components.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: channel(c[0]),
		G: channel(c[1]),
		B: channel(c[2]),
		A: channel(c[3] * 255),
	}
}

func channel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
