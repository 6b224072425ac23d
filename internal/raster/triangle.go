package raster

import (
	"image"
	"math"

	"math3d-core/math3d"
)

// RasterizeTriangle fills one screen-space triangle with z-buffering, flat
// shading and optional nearest-neighbor texture sampling. p0..p2 carry screen
// x/y in pixels and post-projection depth in Z.
//
// This is the hot path: no allocation, all interpolation in locals.
func RasterizeTriangle(
	fb *FrameBuffer,
	p0, p1, p2 math3d.Vector3,
	uv0, uv1, uv2 math3d.Vector2,
	tex *image.NRGBA,
	baseR, baseG, baseB, baseA uint8,
	shade float64,
) {
	area := (p1.X-p0.X)*(p2.Y-p0.Y) - (p1.Y-p0.Y)*(p2.X-p0.X)
	if math.Abs(area) < 1e-12 {
		return
	}
	invArea := 1.0 / area

	minX := int(math.Floor(min3(p0.X, p1.X, p2.X)))
	maxX := int(math.Ceil(max3(p0.X, p1.X, p2.X)))
	minY := int(math.Floor(min3(p0.Y, p1.Y, p2.Y)))
	maxY := int(math.Ceil(max3(p0.Y, p1.Y, p2.Y)))

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > fb.Width-1 {
		maxX = fb.Width - 1
	}
	if maxY > fb.Height-1 {
		maxY = fb.Height - 1
	}

	var texW, texH int
	if tex != nil {
		texW = tex.Bounds().Dx()
		texH = tex.Bounds().Dy()
	}

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		rowBase := y * fb.Width
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5

			// Signed areas against each edge; dividing by the full signed
			// area yields barycentrics valid for either winding.
			b0 := ((p2.X-p1.X)*(py-p1.Y) - (p2.Y-p1.Y)*(px-p1.X)) * invArea
			b1 := ((p0.X-p2.X)*(py-p2.Y) - (p0.Y-p2.Y)*(px-p2.X)) * invArea
			b2 := 1 - b0 - b1
			if b0 < 0 || b1 < 0 || b2 < 0 {
				continue
			}

			depth := b0*p0.Z + b1*p1.Z + b2*p2.Z
			idx := rowBase + x
			if depth >= fb.Depth[idx] {
				continue
			}

			r, g, b, a := baseR, baseG, baseB, baseA
			if tex != nil {
				u := b0*uv0.X + b1*uv1.X + b2*uv2.X
				v := b0*uv0.Y + b1*uv1.Y + b2*uv2.Y
				r, g, b, a = sampleNearest(tex, texW, texH, u, v)
			}
			if a == 0 {
				continue
			}

			fb.Depth[idx] = depth
			ci := idx * 4
			fb.Color[ci] = shade8(r, shade)
			fb.Color[ci+1] = shade8(g, shade)
			fb.Color[ci+2] = shade8(b, shade)
			fb.Color[ci+3] = a
		}
	}
}

// sampleNearest samples tex at (u, v) with repeat wrapping.
func sampleNearest(tex *image.NRGBA, w, h int, u, v float64) (uint8, uint8, uint8, uint8) {
	u -= math.Floor(u)
	v -= math.Floor(v)
	x := int(u * float64(w))
	y := int(v * float64(h))
	if x >= w {
		x = w - 1
	}
	if y >= h {
		y = h - 1
	}
	i := tex.PixOffset(x, y)
	return tex.Pix[i], tex.Pix[i+1], tex.Pix[i+2], tex.Pix[i+3]
}

func shade8(c uint8, shade float64) uint8 {
	v := float64(c) * shade
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
