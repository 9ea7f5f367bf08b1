package render

import (
	"image/color"
	"math"
	"testing"
)

func TestRGBAString(t *testing.T) {
	cases := []struct {
		in   RGBA
		want string
	}{
		{RGBA{0, 0, 0, 1}, "rgba(0,0,0,1)"},
		{RGBA{255, 0, 0, 0.8}, "rgba(255,0,0,0.8)"},
		{RGB{0, 0, 255}.WithAlpha(0.125), "rgba(0,0,255,0.125)"},
	}
	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("%v.String() = %q, want %q", [4]float64(tc.in), got, tc.want)
		}
	}
}

func TestRGBANRGBAClamps(t *testing.T) {
	got := RGBA{300, -4, 127.6, 0.5}.NRGBA()
	want := color.NRGBA{R: 255, G: 0, B: 128, A: 128}
	if got != want {
		t.Fatalf("NRGBA = %+v, want %+v", got, want)
	}
	if nan := (RGBA{0, 0, 0, math.NaN()}).NRGBA(); nan.A != 0 {
		t.Fatalf("NaN alpha converted to %d, want 0", nan.A)
	}
}

func TestPointSub(t *testing.T) {
	got := Point{X: 1, Y: 2}.Sub(Point{X: 3, Y: 4})
	if got != (Point{X: -2, Y: -2}) {
		t.Fatalf("Sub = %+v", got)
	}
}
