// Package quadsphere generates planets from a cube whose six faces are projected
// onto a sphere and displaced by layered noise.
//
// The buffers produced by [Generate] use the same value types as Godot's mesh
// arrays, so they can be handed to an ArrayMesh as-is, yet nothing in this package
// talks to the engine.
package quadsphere

import (
	"graphics.gd/variant/Color"
	"graphics.gd/variant/Float"
	"graphics.gd/variant/Vector2"
	"graphics.gd/variant/Vector3"
)

const (
	MinResolution = 2
	MaxResolution = 4096
)

// Noise samples a scalar field in 3D space, typically in the range [-1, 1].
type Noise interface {
	Sample(point Vector3.XYZ) Float.X
}

// NoiseFunc adapts a function into a [Noise].
type NoiseFunc func(point Vector3.XYZ) Float.X

func (fn NoiseFunc) Sample(point Vector3.XYZ) Float.X { return fn(point) }

// Gradient maps an elevation to a vertex color. Clamping of out of range offsets is
// up to the gradient.
type Gradient interface {
	Sample(offset Float.X) Color.RGBA
}

// GradientFunc adapts a function into a [Gradient].
type GradientFunc func(offset Float.X) Color.RGBA

func (fn GradientFunc) Sample(offset Float.X) Color.RGBA { return fn(offset) }

// NormalGenerator recomputes the normals of a finished set of buffers from its
// triangles. The returned slice must have one normal per vertex.
type NormalGenerator interface {
	GenerateNormals(buffers Buffers) []Vector3.XYZ
}

// NormalGeneratorFunc adapts a function into a [NormalGenerator].
type NormalGeneratorFunc func(buffers Buffers) []Vector3.XYZ

func (fn NormalGeneratorFunc) GenerateNormals(buffers Buffers) []Vector3.XYZ { return fn(buffers) }

// Config describes the planet to generate. Out of range values are clamped, so a
// zero Config is valid (it collapses to a point).
type Config struct {
	Resolution int     // vertices along each edge of a face, clamped to [MinResolution, MaxResolution]
	Radius     Float.X // clamped to >= 0

	Continents Noise    // base elevation mask, optional.
	Ridges     Noise    // detail modulated by Continents, optional.
	Colors     Gradient // samples the elevation for vertex colors, optional.

	// GenerateNormals replaces the analytic sphere normals with normals derived
	// from the displaced triangles, using Normals (or [SmoothNormals] if nil).
	GenerateNormals bool
	Normals         NormalGenerator

	// Workers > 1 fills faces concurrently, the samplers must then be safe to
	// call from multiple goroutines.
	Workers int
}

// Buffers are the parallel mesh arrays of a generated planet.
type Buffers struct {
	Vertices []Vector3.XYZ
	Indices  []int32
	Normals  []Vector3.XYZ
	UVs      []Vector2.XY
	Colors   []Color.RGBA
}

// Faces of the cube, in generation order, as their local up direction.
var Faces = [6]Vector3.XYZ{
	{X: 0, Y: 1, Z: 0},  // up
	{X: 0, Y: -1, Z: 0}, // down
	{X: -1, Y: 0, Z: 0}, // left
	{X: 1, Y: 0, Z: 0},  // right
	{X: 0, Y: 0, Z: -1}, // forward
	{X: 0, Y: 0, Z: 1},  // back
}

// ClampResolution limits r to the supported range of vertices per face edge.
func ClampResolution(r int) int {
	return max(MinResolution, min(MaxResolution, r))
}

// ClampRadius returns radius, or zero if it is negative.
func ClampRadius(radius Float.X) Float.X {
	return max(radius, 0)
}

// VertexCount returns the number of vertices generated for resolution r.
func VertexCount(r int) int { return r * r * len(Faces) }

// IndexCount returns the number of triangle indices generated for resolution r.
func IndexCount(r int) int { return (r - 1) * (r - 1) * len(Faces) * 6 }
