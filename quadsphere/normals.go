package quadsphere

import (
	"math"

	"graphics.gd/variant/Float"
	"graphics.gd/variant/Vector3"
)

// weldTolerance is the distance, relative to the extent of the mesh, below which
// two vertices are treated as the same position when smoothing normals.
const weldTolerance = 1e-5

// SmoothNormals is the default [NormalGenerator]. Every triangle adds its area
// weighted normal to its three vertices, which are then normalized. Vertices that
// share a position, such as the copies along the edges of the cube faces, are
// smoothed together and receive the same normal. Triangles are expected to be
// wound clockwise, as Godot does for front faces, so the normals of a generated
// planet point away from its center.
func SmoothNormals(buffers Buffers) []Vector3.XYZ {
	var (
		vertices = buffers.Vertices
		indices  = buffers.Indices
		weld     = weldPositions(vertices)
		sums     = make([]Vector3.XYZ, len(vertices))
	)
	for i := 0; i+2 < len(indices); i += 3 {
		var a, b, c = indices[i], indices[i+1], indices[i+2]
		var va, vb, vc = vertices[a], vertices[b], vertices[c]
		no := Vector3.Cross(Vector3.Sub(vc, va), Vector3.Sub(vb, va))
		sums[weld[a]] = Vector3.Add(sums[weld[a]], no)
		sums[weld[b]] = Vector3.Add(sums[weld[b]], no)
		sums[weld[c]] = Vector3.Add(sums[weld[c]], no)
	}
	normals := make([]Vector3.XYZ, len(vertices))
	for i := range vertices {
		if normal := sums[weld[i]]; Vector3.Dot(normal, normal) > 0 {
			normals[i] = Vector3.Normalized(normal)
		}
	}
	return normals
}

// weldPositions maps every vertex to the first vertex found at the same position.
// Vertices are bucketed into cells as wide as the tolerance, so a match is always
// in the same or a neighbouring cell.
func weldPositions(vertices []Vector3.XYZ) []int {
	var extent Float.X
	for _, v := range vertices {
		extent = max(extent, Float.Abs(v.X), Float.Abs(v.Y), Float.Abs(v.Z))
	}
	var cell = float64(extent) * weldTolerance
	if cell == 0 {
		cell = 1 // every vertex is at the origin.
	}
	type key [3]int64
	var (
		weld    = make([]int, len(vertices))
		buckets = make(map[key][]int)
	)
	bucket := func(v Vector3.XYZ) key {
		return key{
			int64(math.Floor(float64(v.X) / cell)),
			int64(math.Floor(float64(v.Y) / cell)),
			int64(math.Floor(float64(v.Z) / cell)),
		}
	}
	coincident := func(a, b Vector3.XYZ) bool {
		return math.Abs(float64(a.X-b.X)) <= cell &&
			math.Abs(float64(a.Y-b.Y)) <= cell &&
			math.Abs(float64(a.Z-b.Z)) <= cell
	}
search:
	for i, v := range vertices {
		home := bucket(v)
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				for dz := int64(-1); dz <= 1; dz++ {
					for _, j := range buckets[key{home[0] + dx, home[1] + dy, home[2] + dz}] {
						if coincident(v, vertices[j]) {
							weld[i] = j
							continue search
						}
					}
				}
			}
		}
		weld[i] = i
		buckets[home] = append(buckets[home], i)
	}
	return weld
}
