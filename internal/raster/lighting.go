package raster

import (
	"math"

	"math3d-core/math3d"
)

// LightConfig holds precomputed lighting parameters for flat shading.
type LightConfig struct {
	KeyDir   math3d.Vector3
	FillDir  math3d.Vector3
	HalfMain math3d.Vector3 // precomputed half-vector for Blinn-Phong
	Ambient  float64
	Direct   float64
	Fill     float64
	SpecInt  float64
	SpecPow  float64
}

// DefaultLightConfig returns a key light above the camera's right shoulder
// with a cool fill from the opposite side.
func DefaultLightConfig() LightConfig {
	keyDir := math3d.NewVector3(0.5, 0.8, -0.6).Normalize()
	fillDir := math3d.NewVector3(-0.7, 0.2, 0.4).Normalize()
	viewDir := math3d.NewVector3(0, 0, 1)

	halfMain := keyDir.Subtract(viewDir).Normalize()

	return LightConfig{
		KeyDir:   keyDir,
		FillDir:  fillDir,
		HalfMain: halfMain,
		Ambient:  0.30,
		Direct:   0.85,
		Fill:     0.25,
		SpecInt:  0.35,
		SpecPow:  16.0,
	}
}

// Shade returns the combined lighting scalar for a world-space face normal.
// Lambertian terms use the absolute dot so faces light double-sided.
func (lc *LightConfig) Shade(normal math3d.Vector3) float64 {
	ndKey := math.Abs(math3d.Dot(normal, lc.KeyDir))
	ndFill := math.Abs(math3d.Dot(normal, lc.FillDir))

	ndh := math3d.Dot(normal, lc.HalfMain)
	if ndh < 0 {
		ndh = -ndh
	}
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + ndKey*lc.Direct + ndFill*lc.Fill + spec
}
