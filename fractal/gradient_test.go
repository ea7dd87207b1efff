package fractal_test

import (
	"math"
	"testing"

	"graphics.gd/variant/Color"
	"graphics.gd/variant/Float"

	"the.quetzal.community/quadsphere/fractal"
	"the.quetzal.community/quadsphere/quadsphere"
)

var _ quadsphere.Gradient = fractal.Gradient{}

var (
	black = Color.RGBA{R: 0, G: 0, B: 0, A: 1}
	red   = Color.RGBA{R: 1, G: 0, B: 0, A: 1}
	blue  = Color.RGBA{R: 0, G: 0, B: 1, A: 1}
)

func TestGradientSample(t *testing.T) {
	gradient := fractal.NewGradient(
		fractal.Stop{Offset: 1, Color: blue},
		fractal.Stop{Offset: -1, Color: black},
		fractal.Stop{Offset: 0, Color: red},
	)
	for _, tt := range []struct {
		offset Float.X
		want   Color.RGBA
	}{
		{-5, black},
		{-1, black},
		{-0.5, Color.RGBA{R: 0.5, G: 0, B: 0, A: 1}},
		{0, red},
		{0.25, Color.RGBA{R: 0.75, G: 0, B: 0.25, A: 1}},
		{1, blue},
		{3, blue},
	} {
		if got := gradient.Sample(tt.offset); got != tt.want {
			t.Errorf("Sample(%v) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestGradientEmpty(t *testing.T) {
	if got := fractal.NewGradient().Sample(0.3); got != (Color.RGBA{R: 1, G: 1, B: 1, A: 1}) {
		t.Errorf("empty gradient sampled %v", got)
	}
	if got := (fractal.Gradient{}).Sample(-2); got != (Color.RGBA{R: 1, G: 1, B: 1, A: 1}) {
		t.Errorf("zero gradient sampled %v", got)
	}
}

func TestGradientSingleStop(t *testing.T) {
	gradient := fractal.NewGradient(fractal.Stop{Offset: 0.2, Color: red})
	for _, offset := range []Float.X{-1, 0.2, 4} {
		if got := gradient.Sample(offset); got != red {
			t.Errorf("Sample(%v) = %v, want %v", offset, got, red)
		}
	}
}

func TestGradientNaN(t *testing.T) {
	gradient := fractal.NewGradient(
		fractal.Stop{Offset: -1, Color: black},
		fractal.Stop{Offset: 1, Color: blue},
	)
	if got := gradient.Sample(Float.X(math.NaN())); got != blue {
		t.Errorf("Sample(NaN) = %v, want %v", got, blue)
	}
}
