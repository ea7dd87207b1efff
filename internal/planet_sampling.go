package internal

import (
	"graphics.gd/classdb/Gradient"
	"graphics.gd/classdb/Noise"
	"graphics.gd/variant/Color"
	"graphics.gd/variant/Float"
	"graphics.gd/variant/Vector3"

	"the.quetzal.community/quadsphere/quadsphere"
)

// noiseSampler adapts a Godot noise resource, such as FastNoiseLite, for the planet
// generator. A Nil noise is reported as absent.
func noiseSampler(noise Noise.Instance) quadsphere.Noise {
	if noise == Noise.Nil {
		return nil
	}
	return quadsphere.NoiseFunc(func(point Vector3.XYZ) Float.X {
		return Float.X(noise.GetNoise3d(point.X, point.Y, point.Z))
	})
}

// gradientSampler adapts a Godot gradient resource for the planet generator. A Nil
// gradient is reported as absent.
func gradientSampler(gradient Gradient.Instance) quadsphere.Gradient {
	if gradient == Gradient.Nil {
		return nil
	}
	return quadsphere.GradientFunc(func(offset Float.X) Color.RGBA {
		return gradient.Sample(offset)
	})
}
