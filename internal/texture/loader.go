// Package texture loads optional surface textures for the demo renderer.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "github.com/ftrvxmtrx/tga"
)

// Load reads a TGA, PNG or JPEG file and returns it as NRGBA.
func Load(path string) (*image.NRGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	return toNRGBA(img), nil
}

// Checkerboard returns a two-tone test texture of size pixels on a side with
// the given cell size.
func Checkerboard(size, cell int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	light := color.NRGBA{R: 222, G: 222, B: 214, A: 255}
	dark := color.NRGBA{R: 84, G: 96, B: 110, A: 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetNRGBA(x, y, light)
			} else {
				img.SetNRGBA(x, y, dark)
			}
		}
	}
	return img
}

func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}
