package fractal

import (
	"slices"

	"graphics.gd/variant/Color"
	"graphics.gd/variant/Float"
)

// Stop is a color at a given offset along a [Gradient].
type Stop struct {
	Offset Float.X
	Color  Color.RGBA
}

// Gradient interpolates linearly between its stops. Offsets before the first stop
// or after the last take the color of that stop.
type Gradient struct {
	stops []Stop
}

// NewGradient returns a gradient through the given stops, in any order.
func NewGradient(stops ...Stop) Gradient {
	sorted := slices.Clone(stops)
	slices.SortStableFunc(sorted, func(a, b Stop) int {
		switch {
		case a.Offset < b.Offset:
			return -1
		case a.Offset > b.Offset:
			return 1
		default:
			return 0
		}
	})
	return Gradient{stops: sorted}
}

// Sample returns the color of the gradient at offset. An empty gradient is white,
// a NaN offset takes the color of the last stop.
func (gradient Gradient) Sample(offset Float.X) Color.RGBA {
	var stops = gradient.stops
	if len(stops) == 0 {
		return Color.RGBA{R: 1, G: 1, B: 1, A: 1}
	}
	if offset <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if offset >= last.Offset {
		return last.Color
	}
	next := slices.IndexFunc(stops, func(stop Stop) bool { return stop.Offset > offset })
	if next < 1 {
		return last.Color // NaN
	}
	var (
		from = stops[next-1]
		to   = stops[next]
		t    = (offset - from.Offset) / (to.Offset - from.Offset)
	)
	mix := func(a, b Float.X) Float.X { return a + (b-a)*t }
	return Color.RGBA{
		R: mix(from.Color.R, to.Color.R),
		G: mix(from.Color.G, to.Color.G),
		B: mix(from.Color.B, to.Color.B),
		A: mix(from.Color.A, to.Color.A),
	}
}
