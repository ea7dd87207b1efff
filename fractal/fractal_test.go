package fractal_test

import (
	"sync"
	"testing"

	"graphics.gd/variant/Float"
	"graphics.gd/variant/Vector3"

	"the.quetzal.community/quadsphere/fractal"
	"the.quetzal.community/quadsphere/quadsphere"
)

var _ quadsphere.Noise = (*fractal.Noise)(nil)

func points() []Vector3.XYZ {
	var out []Vector3.XYZ
	for i := range 200 {
		f := Float.X(i)
		out = append(out, Vector3.XYZ{X: f * 0.137, Y: -f * 0.071, Z: f*0.013 + 0.5})
	}
	return out
}

func TestNoiseDefaults(t *testing.T) {
	space := fractal.New(fractal.Space{Seed: 1}).Space()
	if space.Octaves != 1 || space.Frequency != 1 || space.Persistence != 0.5 || space.Lacunarity != 2 {
		t.Fatalf("unexpected defaults %+v", space)
	}
	space = fractal.New(fractal.Space{Octaves: 4, Frequency: 0.3, Persistence: 0.4, Lacunarity: 3}).Space()
	if space.Octaves != 4 || space.Frequency != 0.3 || space.Persistence != 0.4 || space.Lacunarity != 3 {
		t.Fatalf("explicit values were replaced %+v", space)
	}
}

func TestNoiseRange(t *testing.T) {
	for _, tt := range []struct {
		name  string
		space fractal.Space
	}{
		{"simplex", fractal.Space{Seed: 7, Octaves: 5}},
		{"perlin", fractal.Space{Seed: 7, Kind: fractal.Perlin, Octaves: 3}},
		{"ridged", fractal.Space{Seed: 7, Octaves: 4, Ridged: true}},
	} {
		noise := fractal.New(tt.space)
		var distinct = make(map[Float.X]bool)
		for _, point := range points() {
			n := noise.Sample(point)
			if n < -1 || n > 1 {
				t.Fatalf("%s: sample %v at %v out of range", tt.name, n, point)
			}
			distinct[n] = true
		}
		if len(distinct) < 10 {
			t.Errorf("%s: only %d distinct samples", tt.name, len(distinct))
		}
	}
}

func TestNoiseSeeded(t *testing.T) {
	var (
		a = fractal.New(fractal.Space{Seed: 1, Octaves: 3})
		b = fractal.New(fractal.Space{Seed: 1, Octaves: 3})
		c = fractal.New(fractal.Space{Seed: 2, Octaves: 3})
	)
	var differs bool
	for _, point := range points() {
		if a.Sample(point) != b.Sample(point) {
			t.Fatalf("same seed sampled differently at %v", point)
		}
		if a.Sample(point) != c.Sample(point) {
			differs = true
		}
	}
	if !differs {
		t.Error("different seeds produced the same field")
	}
}

func TestNoiseConcurrent(t *testing.T) {
	var (
		noise  = fractal.New(fractal.Space{Seed: 3, Octaves: 4})
		inputs = points()
		want   = make([]Float.X, len(inputs))
	)
	for i, point := range inputs {
		want[i] = noise.Sample(point)
	}
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, point := range inputs {
				if got := noise.Sample(point); got != want[i] {
					t.Errorf("concurrent sample %d: %v, want %v", i, got, want[i])
					return
				}
			}
		}()
	}
	wg.Wait()
}
