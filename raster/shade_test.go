package raster

import "testing"

func TestBlendHalfHalf(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}
	// pure black background, pure white-ish foreground (0x1f per channel)
	fg := uint32(0x7fff)
	bg := uint32(0)
	got := blendHalfHalf(fg, bg)
	assert(got&0x1f == 0x0f || got&0x1f == 0x10)
}

func TestBlendAddSaturates(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}
	fg := uint32(0x1f) // full red
	bg := uint32(0x1f) // full red
	got := blendAdd(fg, bg)
	assert(got&0x1f == 0x1f)
}

func TestBlendSubClampsToZero(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}
	fg := uint32(0x1f)
	bg := uint32(0)
	got := blendSub(fg, bg)
	assert(got&0x1f == 0)
}

func TestBlendQuarterAdd(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}
	fg := uint32(0x1f)
	bg := uint32(0)
	got := blendQuarterAdd(fg, bg)
	assert(got&0x1f == 0x1f>>2)
}

func TestShadePixelTexelZeroDiscarded(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}
	vram := NewVRAM()
	vram.Set(0, 0, 0) // texture page texel at (0,0) is zero
	vram.Set(10, 10, 0x1234)

	mode := DrawMode{TextureMode: Direct15Bit}
	ctx := newShadeContext(vram, mode, TextureWindow{AndX: 0xff, AndY: 0xff}, PaletteLocation{}, MaskParams{})
	shadePixel[fTrue, fFalse, fFalse, fFalse](ctx, 10, 10, 0x1f, 0x1f, 0x1f, 0, 0)

	assert(vram.Get(10, 10) == 0x1234)
}

func TestShadePixelMaskPreventsOverwrite(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}
	vram := NewVRAM()
	vram.Set(4, 4, 0x8000) // mask bit already set

	mode := DrawMode{}
	mask := MaskParams{And: 0x8000}
	ctx := newShadeContext(vram, mode, TextureWindow{}, PaletteLocation{}, mask)
	shadePixel[fFalse, fFalse, fFalse, fFalse](ctx, 4, 4, 0x1f, 0, 0, 0, 0)

	assert(vram.Get(4, 4) == 0x8000)
}

func TestShadePixelSolidColorRGB(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}
	vram := NewVRAM()
	ctx := newShadeContext(vram, DrawMode{}, TextureWindow{}, PaletteLocation{}, MaskParams{})
	shadePixel[fFalse, fFalse, fFalse, fFalse](ctx, 2, 2, 0xff, 0x00, 0x80, 0, 0)

	got := vram.Get(2, 2)
	assert(got&0x1f == 0x1f)
	assert((got>>5)&0x1f == 0)
	assert((got>>10)&0x1f == 0x10)
	assert(got&0x8000 == 0)
}
