package quadsphere

import (
	"fmt"

	"runtime.link/api/xray"
)

// Validate reports the first way in which the buffers do not describe a well formed
// indexed triangle mesh: per-vertex arrays of differing lengths, a partial triangle
// or an index outside of the vertex array.
func (buffers Buffers) Validate() error {
	var count = len(buffers.Vertices)
	for _, array := range []struct {
		name   string
		length int
	}{
		{"normals", len(buffers.Normals)},
		{"uvs", len(buffers.UVs)},
		{"colors", len(buffers.Colors)},
	} {
		if array.length != count {
			return xray.New(fmt.Errorf("quadsphere: %d %s for %d vertices", array.length, array.name, count))
		}
	}
	if len(buffers.Indices)%3 != 0 {
		return xray.New(fmt.Errorf("quadsphere: %d indices do not form whole triangles", len(buffers.Indices)))
	}
	for i, index := range buffers.Indices {
		if index < 0 || int(index) >= count {
			return xray.New(fmt.Errorf("quadsphere: index %d at %d is outside of %d vertices", index, i, count))
		}
	}
	return nil
}
