package internal

import (
	"fmt"
	"time"

	"graphics.gd/classdb"
	"graphics.gd/classdb/ArrayMesh"
	"graphics.gd/classdb/Gradient"
	"graphics.gd/classdb/Material"
	"graphics.gd/classdb/Mesh"
	"graphics.gd/classdb/Noise"
	"graphics.gd/variant/Callable"
	"graphics.gd/variant/Float"
	"graphics.gd/variant/Object"

	"the.quetzal.community/quadsphere/quadsphere"
)

// PlanetMesh is a cube-sphere planet that is procedurally generated from layered noise.
type PlanetMesh struct {
	ArrayMesh.Extension[PlanetMesh] `gd:"QuadspherePlanetMesh"`
	classdb.Tool

	Resolution int     `gd:"resolution" range:"2,4096" default:"10"`
	Radius     Float.X `gd:"radius" range:"0,100,or_greater,suffix:m" default:"1"`

	ContinentNoise Noise.Instance    `gd:"continent_noise"`
	RidgesNoise    Noise.Instance    `gd:"ridges_noise"`
	PlanetColors   Gradient.Instance `gd:"planet_colors"`

	GenerateNormals bool `gd:"generate_normals"`

	// GenerationTime of the last regeneration, in milliseconds. Edits from the
	// inspector are reverted.
	GenerationTime Float.X `gd:"generation_time"`

	generating bool
	measured   Float.X
}

func (planet *PlanetMesh) OnCreate() {
	planet.Resolution = 10
	planet.Radius = 1
	planet.generating = true
	Callable.Defer(Callable.New(planet.generate))
}

// OnSet marks the planet as dirty, so that any number of property changes within
// a frame result in a single regeneration.
func (planet *PlanetMesh) OnSet(name string, value any) {
	switch name {
	case "resolution":
		planet.Resolution = quadsphere.ClampResolution(planet.Resolution)
	case "radius":
		planet.Radius = quadsphere.ClampRadius(planet.Radius)
	case "generation_time":
		planet.GenerationTime = planet.measured
		return
	}
	if !planet.generating {
		Callable.Defer(Callable.New(planet.generate))
		planet.generating = true
	}
}

func (planet *PlanetMesh) OnFree() {
	planet.generating = false
}

// Config snapshots the properties of the planet for [quadsphere.Generate].
func (planet *PlanetMesh) Config() quadsphere.Config {
	return quadsphere.Config{
		Resolution:      planet.Resolution,
		Radius:          planet.Radius,
		Continents:      noiseSampler(planet.ContinentNoise),
		Ridges:          noiseSampler(planet.RidgesNoise),
		Colors:          gradientSampler(planet.PlanetColors),
		GenerateNormals: planet.GenerateNormals,
	}
}

func (planet *PlanetMesh) generate() {
	if !planet.generating {
		return
	}
	planet.generating = false
	var (
		config  = planet.Config()
		start   = time.Now()
		buffers = quadsphere.Generate(config)
	)
	planet.measured = Float.X(time.Since(start).Seconds() * 1000)
	planet.GenerationTime = planet.measured
	fmt.Println("quadsphere: resolution", quadsphere.ClampResolution(config.Resolution), "generated in", planet.GenerationTime, "ms")
	ArrayMesh := planet.AsArrayMesh()
	var (
		restoreMat = false
		material   Material.Instance
	)
	if ArrayMesh.AsMesh().GetSurfaceCount() > 0 {
		restoreMat = true
		material = ArrayMesh.AsMesh().SurfaceGetMaterial(0)
	}
	Object.Instance(ArrayMesh.AsObject()).SetSignalsBlocked(true)
	defer Object.Instance(ArrayMesh.AsObject()).SetSignalsBlocked(false)
	ArrayMesh.ClearSurfaces()
	var arrays = [Mesh.ArrayMax]any{
		Mesh.ArrayVertex: buffers.Vertices,
		Mesh.ArrayIndex:  buffers.Indices,
		Mesh.ArrayNormal: buffers.Normals,
		Mesh.ArrayTexUv:  buffers.UVs,
		Mesh.ArrayColor:  buffers.Colors,
	}
	ArrayMesh.AddSurfaceFromArrays(Mesh.PrimitiveTriangles, arrays[:])
	if restoreMat {
		ArrayMesh.AsMesh().SurfaceSetMaterial(0, material)
	}
}
