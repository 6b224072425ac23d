package raster

import (
	"image"
	"math"
)

// FrameBuffer holds the render target as flat slices for cache locality.
// Depth stores post-projection z per pixel; smaller is closer.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	Depth  []float64 // len = W*H, initialized to +inf
}

// NewFrameBuffer allocates a zeroed color buffer and a +inf depth buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	depth := make([]float64, n)
	for i := range depth {
		depth[i] = math.Inf(1)
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		Depth:  depth,
	}
}

// ToNRGBA copies the color plane into a standalone image.
func (fb *FrameBuffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
