package quadsphere

import (
	"golang.org/x/sync/errgroup"
	"graphics.gd/variant/Color"
	"graphics.gd/variant/Float"
	"graphics.gd/variant/Vector2"
	"graphics.gd/variant/Vector3"
)

var opaqueWhite = Color.RGBA{R: 1, G: 1, B: 1, A: 1}

// Generate builds the planet described by config. The returned buffers are freshly
// allocated and owned by the caller, the samplers in config are only read.
func Generate(config Config) Buffers {
	var (
		r      = ClampResolution(config.Resolution)
		radius = ClampRadius(config.Radius)
		count  = VertexCount(r)
	)
	var buffers = Buffers{
		Vertices: make([]Vector3.XYZ, count),
		Indices:  make([]int32, IndexCount(r)),
		Normals:  make([]Vector3.XYZ, count),
		UVs:      make([]Vector2.XY, count),
		Colors:   make([]Color.RGBA, count),
	}
	var (
		elevate = newElevation(config.Continents, config.Ridges)
		paint   = newPalette(config.Colors)
	)
	if config.Workers > 1 {
		var group errgroup.Group
		group.SetLimit(config.Workers)
		for face := range Faces {
			group.Go(func() error {
				buffers.fillFace(face, r, radius, elevate, paint)
				return nil
			})
		}
		_ = group.Wait() // fillFace never fails.
	} else {
		for face := range Faces {
			buffers.fillFace(face, r, radius, elevate, paint)
		}
	}
	if config.GenerateNormals {
		var normals = config.Normals
		if normals == nil {
			normals = NormalGeneratorFunc(SmoothNormals)
		}
		buffers.Normals = normals.GenerateNormals(buffers)
	}
	return buffers
}

// elevation returns the planet noise at a point of the undisplaced sphere. ok is
// false when there is no elevation to speak of, displace reports whether the vertex
// should be moved along its normal by the returned amount.
type elevation func(point Vector3.XYZ) (noise Float.X, ok, displace bool)

func newElevation(continents, ridges Noise) elevation {
	switch {
	case continents == nil:
		return func(Vector3.XYZ) (Float.X, bool, bool) { return 0, false, false }
	case ridges == nil:
		// continents on their own tint the planet but leave it round.
		return func(point Vector3.XYZ) (Float.X, bool, bool) {
			return continents.Sample(point), true, false
		}
	default:
		return func(point Vector3.XYZ) (Float.X, bool, bool) {
			mask := continents.Sample(point)
			return mask + ridges.Sample(point)*mask, true, true
		}
	}
}

// palette colors a vertex by its elevation.
type palette func(noise Float.X, ok bool) Color.RGBA

func newPalette(colors Gradient) palette {
	if colors == nil {
		return func(Float.X, bool) Color.RGBA { return opaqueWhite }
	}
	return func(noise Float.X, ok bool) Color.RGBA {
		if !ok {
			return opaqueWhite
		}
		return colors.Sample(noise)
	}
}

// fillFace writes the vertices of the given face, along with the triangles between
// them. Each face owns the vertex range [r*r*face, r*r*(face+1)) and the index range
// starting at (r-1)*(r-1)*6*face, so faces can be filled in any order.
func (buffers Buffers) fillFace(face, r int, radius Float.X, elevate elevation, paint palette) {
	var (
		localUp = Faces[face]
		// the axes must be derived exactly like this, or the faces will not meet at
		// their edges.
		axisA = Vector3.XYZ{X: localUp.Y, Y: localUp.Z, Z: localUp.X}
		axisB = Vector3.Cross(localUp, axisA)

		first = r * r * face
		index = (r - 1) * (r - 1) * 6 * face
		edge  = Float.X(r - 1)
		row   = int32(r)
	)
	for y := range r {
		for x := range r {
			var (
				i  = first + x + y*r
				uv = Vector2.XY{X: Float.X(x) / edge, Y: Float.X(y) / edge}
			)
			normal := Vector3.Normalized(Vector3.Add(
				Vector3.Add(localUp, Vector3.MulX(axisB, (uv.X-0.5)*2)),
				Vector3.MulX(axisA, (uv.Y-0.5)*2),
			))
			vertex := Vector3.MulX(normal, radius)
			noise, ok, displace := elevate(vertex)
			if displace {
				vertex = Vector3.Add(vertex, Vector3.MulX(normal, noise))
			}
			buffers.Vertices[i] = vertex
			buffers.Normals[i] = normal
			buffers.UVs[i] = uv
			buffers.Colors[i] = paint(noise, ok)
			if x == r-1 || y == r-1 {
				continue // the last row and column have no neighbours to form a cell with.
			}
			v := int32(i)
			buffers.Indices[index+0] = v
			buffers.Indices[index+1] = v + row + 1
			buffers.Indices[index+2] = v + row
			buffers.Indices[index+3] = v
			buffers.Indices[index+4] = v + 1
			buffers.Indices[index+5] = v + row + 1
			index += 6
		}
	}
}
