package raster

import (
	"image"

	"math3d-core/internal/mesh"
	"math3d-core/math3d"
)

// Camera describes a left-handed perspective camera.
type Camera struct {
	Eye    math3d.Vector3
	Target math3d.Vector3
	FOV    float64 // vertical field of view, radians
	Near   float64
	Far    float64
}

// ViewProjection composes the camera's view and projection matrices.
func (c Camera) ViewProjection(aspect float64) math3d.Matrix {
	view := math3d.LookAtLH(c.Eye, c.Target, math3d.Up())
	proj := math3d.PerspectiveFovLH(c.FOV, aspect, c.Near, c.Far)
	return view.Multiply(proj)
}

// Render draws m under the world transform into a fresh image of
// size*supersample pixels on a side. tex may be nil; base* is the untextured
// surface color.
func Render(
	m *mesh.Mesh,
	world math3d.Matrix,
	cam Camera,
	tex *image.NRGBA,
	baseR, baseG, baseB uint8,
	size, supersample int,
) *image.NRGBA {
	renderSize := size * supersample
	fb := NewFrameBuffer(renderSize, renderSize)
	lc := DefaultLightConfig()

	wvp := world.Multiply(cam.ViewProjection(1))
	half := float64(renderSize) * 0.5

	// Project every vertex once: screen x/y in pixels, depth in z.
	screen := make([]math3d.Vector3, len(m.Verts))
	worldPos := make([]math3d.Vector3, len(m.Verts))
	for i, v := range m.Verts {
		var clip math3d.Vector3
		math3d.TransformCoordinatesToRef(v, wvp, &clip)
		screen[i] = math3d.NewVector3((clip.X+1)*half, (1-clip.Y)*half, clip.Z)
		math3d.TransformCoordinatesToRef(v, world, &worldPos[i])
	}

	var edge1, edge2, normal math3d.Vector3
	for _, tri := range m.Tris {
		v0 := worldPos[tri.VI[0]]
		v1 := worldPos[tri.VI[1]]
		v2 := worldPos[tri.VI[2]]

		v1.SubtractToRef(v0, &edge1)
		v2.SubtractToRef(v0, &edge2)
		math3d.CrossToRef(edge1, edge2, &normal)
		normal.NormalizeInPlace()

		shade := lc.Shade(normal)

		RasterizeTriangle(fb,
			screen[tri.VI[0]], screen[tri.VI[1]], screen[tri.VI[2]],
			m.UVs[tri.TI[0]], m.UVs[tri.TI[1]], m.UVs[tri.TI[2]],
			tex, baseR, baseG, baseB, 255, shade)
	}

	return fb.ToNRGBA()
}
