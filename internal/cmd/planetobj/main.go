package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"graphics.gd/variant/Color"
	"graphics.gd/variant/Float"
	"graphics.gd/variant/Vector3"
	"runtime.link/api/xray"

	"the.quetzal.community/quadsphere/fractal"
	"the.quetzal.community/quadsphere/quadsphere"
)

type options struct {
	Resolution int
	Radius     float64
	Height     float64
	Seed       int64

	Continents bool
	Ridges     bool
	Colors     bool
	Normals    bool

	Workers int
}

// config builds the planet described by the options, continents are scaled by the
// height so that they stay in proportion to the radius.
func (opts options) config() quadsphere.Config {
	var config = quadsphere.Config{
		Resolution:      opts.Resolution,
		Radius:          Float.X(opts.Radius),
		GenerateNormals: opts.Normals,
		Workers:         opts.Workers,
	}
	if opts.Continents {
		var (
			continents = fractal.New(fractal.Space{Seed: opts.Seed, Octaves: 5, Frequency: 0.8})
			height     = Float.X(opts.Height)
		)
		config.Continents = quadsphere.NoiseFunc(func(point Vector3.XYZ) Float.X {
			return continents.Sample(point) * height
		})
	}
	if opts.Ridges {
		config.Ridges = fractal.New(fractal.Space{Seed: opts.Seed + 1, Octaves: 4, Frequency: 3, Ridged: true})
	}
	if opts.Colors {
		config.Colors = elevationColors(Float.X(opts.Height))
	}
	return config
}

// elevationColors shades the sea below zero and the land above it, up to snow at
// the given height.
func elevationColors(height Float.X) fractal.Gradient {
	return fractal.NewGradient(
		fractal.Stop{Offset: -height, Color: Color.RGBA{R: 0.02, G: 0.05, B: 0.25, A: 1}},
		fractal.Stop{Offset: 0, Color: Color.RGBA{R: 0.1, G: 0.35, B: 0.6, A: 1}},
		fractal.Stop{Offset: height * 0.05, Color: Color.RGBA{R: 0.85, G: 0.8, B: 0.55, A: 1}},
		fractal.Stop{Offset: height * 0.3, Color: Color.RGBA{R: 0.2, G: 0.5, B: 0.15, A: 1}},
		fractal.Stop{Offset: height * 0.7, Color: Color.RGBA{R: 0.45, G: 0.4, B: 0.35, A: 1}},
		fractal.Stop{Offset: height, Color: Color.RGBA{R: 1, G: 1, B: 1, A: 1}},
	)
}

func planetobj(opts options, path string) error {
	start := time.Now()
	buffers := quadsphere.Generate(opts.config())
	elapsed := time.Since(start)
	file, err := os.Create(path)
	if err != nil {
		return xray.New(err)
	}
	defer file.Close()
	if err := writeOBJ(file, buffers); err != nil {
		return xray.New(err)
	}
	if err := file.Close(); err != nil {
		return xray.New(err)
	}
	fmt.Println("planetobj:", len(buffers.Vertices), "vertices,", len(buffers.Indices)/3, "triangles generated in", elapsed, "written to", path)
	return nil
}

// planetobj [flags] out.obj
//
//	generates a planet from fractal noise and writes it as a Wavefront OBJ.
func main() {
	var opts options
	flag.IntVar(&opts.Resolution, "resolution", 64, "vertices along each edge of a cube face (2-4096)")
	flag.Float64Var(&opts.Radius, "radius", 1, "radius of the undisplaced planet")
	flag.Float64Var(&opts.Height, "height", 0.1, "scale of the continent noise")
	flag.Int64Var(&opts.Seed, "seed", 1, "noise seed")
	flag.BoolVar(&opts.Continents, "continents", true, "sample continent noise")
	flag.BoolVar(&opts.Ridges, "ridges", true, "add ridges on top of the continents")
	flag.BoolVar(&opts.Colors, "colors", true, "color vertices by elevation")
	flag.BoolVar(&opts.Normals, "normals", false, "recompute normals from the displaced triangles")
	flag.IntVar(&opts.Workers, "workers", 1, "number of faces to generate concurrently")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: planetobj [flags] out.obj")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if err := planetobj(opts, flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
