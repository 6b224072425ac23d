package raster

import (
	"math"
	"testing"

	"math3d-core/internal/mesh"
	"math3d-core/math3d"
)

func testCamera() Camera {
	return Camera{
		Eye:    math3d.NewVector3(0, 0, -5),
		Target: math3d.Zero(),
		FOV:    math.Pi / 4,
		Near:   0.1,
		Far:    100,
	}
}

func TestRenderProducesPixels(t *testing.T) {
	m := mesh.Box(2)
	world := math3d.RotationYawPitchRollMatrix(0.6, 0.4, 0)

	img := Render(m, world, testCamera(), nil, 200, 180, 160, 64, 1)

	opaque := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			opaque++
		}
	}
	if opaque == 0 {
		t.Fatal("rendered box produced no opaque pixels")
	}
	// The cube should not fill the whole frame either.
	if opaque == len(img.Pix)/4 {
		t.Error("rendered box covered every pixel")
	}
}

func TestRenderOffscreenObjectIsEmpty(t *testing.T) {
	m := mesh.Box(1)
	world := math3d.Translation(1000, 0, 0)

	img := Render(m, world, testCamera(), nil, 200, 180, 160, 32, 1)
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			t.Fatal("offscreen box left pixels in the frame")
		}
	}
}

func TestDepthBufferOrdersTriangles(t *testing.T) {
	fb := NewFrameBuffer(8, 8)

	flat := func(z float64) [3]math3d.Vector3 {
		return [3]math3d.Vector3{
			math3d.NewVector3(0, 0, z),
			math3d.NewVector3(8, 0, z),
			math3d.NewVector3(0, 8, z),
		}
	}
	uv := math3d.NewVector2(0, 0)

	far := flat(0.9)
	near := flat(0.1)

	// Far triangle first, near second: near must win.
	RasterizeTriangle(fb, far[0], far[1], far[2], uv, uv, uv, nil, 10, 10, 10, 255, 1)
	RasterizeTriangle(fb, near[0], near[1], near[2], uv, uv, uv, nil, 200, 200, 200, 255, 1)
	if fb.Color[0] != 200 {
		t.Errorf("near triangle lost the depth test: pixel 0 = %d", fb.Color[0])
	}

	// Same order of submission, but now the second triangle is farther.
	fb2 := NewFrameBuffer(8, 8)
	RasterizeTriangle(fb2, near[0], near[1], near[2], uv, uv, uv, nil, 200, 200, 200, 255, 1)
	RasterizeTriangle(fb2, far[0], far[1], far[2], uv, uv, uv, nil, 10, 10, 10, 255, 1)
	if fb2.Color[0] != 200 {
		t.Errorf("far triangle overwrote a nearer one: pixel 0 = %d", fb2.Color[0])
	}
}

func TestShadeIsSymmetric(t *testing.T) {
	lc := DefaultLightConfig()
	n := math3d.NewVector3(0.3, 0.9, -0.1).Normalize()
	a := lc.Shade(n)
	b := lc.Shade(n.Negate())
	if math.Abs(a-b) > 1e-12 {
		t.Errorf("double-sided shading differs: %v vs %v", a, b)
	}
}
