// Package fractal provides layered 3D noise and color gradients for planets that
// are generated outside of the engine.
package fractal

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
	"graphics.gd/variant/Float"
	"graphics.gd/variant/Vector3"
)

// Kind of gradient noise summed by each octave.
type Kind int

const (
	Simplex Kind = iota
	Perlin
)

// Space describes a fractal noise field. Zero values select the defaults noted
// against each field.
type Space struct {
	Seed int64
	Kind Kind

	Octaves     int     // 1
	Frequency   float64 // 1, of the first octave.
	Persistence float64 // 0.5, amplitude multiplier between octaves.
	Lacunarity  float64 // 2, frequency multiplier between octaves.

	// Ridged folds every octave around zero, which turns the smooth hills of the
	// noise into sharp crests.
	Ridged bool
}

// Noise samples a [Space]. It is safe for concurrent use.
type Noise struct {
	space Space
	eval  func(x, y, z float64) float64
}

// New prepares the noise source of the given space.
func New(space Space) *Noise {
	if space.Octaves <= 0 {
		space.Octaves = 1
	}
	if space.Frequency == 0 {
		space.Frequency = 1
	}
	if space.Persistence == 0 {
		space.Persistence = 0.5
	}
	if space.Lacunarity == 0 {
		space.Lacunarity = 2
	}
	var noise = &Noise{space: space}
	switch space.Kind {
	case Perlin:
		noise.eval = perlin.NewPerlin(2, 2, 1, space.Seed).Noise3D
	default:
		noise.eval = opensimplex.New(space.Seed).Eval3
	}
	return noise
}

// Space returns the space sampled by the noise, with defaults applied.
func (noise *Noise) Space() Space { return noise.space }

// Sample returns the fractal noise at the given point, roughly in [-1, 1].
func (noise *Noise) Sample(point Vector3.XYZ) Float.X {
	var (
		x, y, z = float64(point.X), float64(point.Y), float64(point.Z)

		amplitude = 1.0
		frequency = noise.space.Frequency
		total     = 0.0
		sum       = 0.0
	)
	for range noise.space.Octaves {
		n := noise.eval(x*frequency, y*frequency, z*frequency)
		if noise.space.Ridged {
			n = (1-math.Abs(n))*2 - 1
		}
		total += n * amplitude
		sum += amplitude
		amplitude *= noise.space.Persistence
		frequency *= noise.space.Lacunarity
	}
	return Float.X(total / sum)
}
