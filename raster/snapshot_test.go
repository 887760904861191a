package raster

import "testing"

func TestToImageExpandsChannels(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}
	vram := NewVRAM()
	vram.Set(0, 0, 0x7fff) // full white, mask bit clear
	img := vram.ToImage(1, 1)
	r, g, b, a := img.At(0, 0).RGBA()
	assert(r>>8 == 255)
	assert(g>>8 == 255)
	assert(b>>8 == 255)
	assert(a>>8 == 255)
}

func TestToImageBlackPixel(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}
	vram := NewVRAM()
	img := vram.ToImage(2, 2)
	r, g, b, _ := img.At(1, 1).RGBA()
	assert(r == 0 && g == 0 && b == 0)
}
