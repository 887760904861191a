package raster

import (
	"image"
	"image/color"
)

// ToImage converts the region [0, width) x [0, height) of v into a stdlib
// image.RGBA, expanding each 5-bit channel to 8 bits the same way the
// reference console's video DAC does (replicate the top 3 bits into the
// low bits rather than a linear 255/31 scale). This exists for test
// snapshots and manual inspection only; the rasterizer itself never
// produces an image.Image.
func (v *VRAM) ToImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, rgba555(v.Get(x, y)))
		}
	}
	return img
}

// rgba555 unpacks a mbbbbbgg gggrrrrr pixel into a color.RGBA, ignoring
// the mask bit (it carries no visual information).
func rgba555(p uint16) color.RGBA {
	r := uint8(p & 0x1f)
	g := uint8((p >> 5) & 0x1f)
	b := uint8((p >> 10) & 0x1f)
	return color.RGBA{
		R: (r << 3) | (r >> 2),
		G: (g << 3) | (g >> 2),
		B: (b << 3) | (b >> 2),
		A: 255,
	}
}
