package quadsphere_test

import (
	"testing"

	"graphics.gd/variant/Color"
	"graphics.gd/variant/Vector2"
	"graphics.gd/variant/Vector3"

	"the.quetzal.community/quadsphere/quadsphere"
)

func TestValidateGenerated(t *testing.T) {
	for _, r := range []int{2, 3, 16} {
		if err := quadsphere.Generate(quadsphere.Config{Resolution: r, Radius: 1}).Validate(); err != nil {
			t.Errorf("resolution %d: %v", r, err)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	valid := func() quadsphere.Buffers {
		return quadsphere.Buffers{
			Vertices: make([]Vector3.XYZ, 3),
			Normals:  make([]Vector3.XYZ, 3),
			UVs:      make([]Vector2.XY, 3),
			Colors:   make([]Color.RGBA, 3),
			Indices:  []int32{0, 1, 2},
		}
	}
	if err := valid().Validate(); err != nil {
		t.Fatalf("valid buffers rejected: %v", err)
	}
	for name, broken := range map[string]func(*quadsphere.Buffers){
		"short normals":    func(b *quadsphere.Buffers) { b.Normals = b.Normals[:2] },
		"long uvs":         func(b *quadsphere.Buffers) { b.UVs = append(b.UVs, Vector2.XY{}) },
		"missing colors":   func(b *quadsphere.Buffers) { b.Colors = nil },
		"partial triangle": func(b *quadsphere.Buffers) { b.Indices = append(b.Indices, 0) },
		"index too large":  func(b *quadsphere.Buffers) { b.Indices[2] = 3 },
		"negative index":   func(b *quadsphere.Buffers) { b.Indices[0] = -1 },
	} {
		buffers := valid()
		broken(&buffers)
		if err := buffers.Validate(); err == nil {
			t.Errorf("%s: accepted", name)
		}
	}
}
