package raster

import "testing"

func TestDrawingAreaContains(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}
	a := DrawingArea{Left: 10, Top: 10, Right: 20, Bottom: 20}
	assert(a.Contains(10, 10))
	assert(a.Contains(20, 20))
	assert(!a.Contains(9, 10))
	assert(!a.Contains(10, 21))
}

func TestDrawingAreaClampToSurface(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}
	a := DrawingArea{Left: -5, Top: -5, Right: VRAMWidth + 100, Bottom: VRAMHeight + 100}
	c := a.clampToSurface()
	assert(c.Left == 0)
	assert(c.Top == 0)
	assert(c.Right == VRAMWidth-1)
	assert(c.Bottom == VRAMHeight-1)
}

func TestTextureWindowApply(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}
	w := TextureWindow{AndX: 0x0f, AndY: 0xff, OrX: 0x10, OrY: 0}
	x, y := w.Apply(0x3f, 0x7)
	assert(x == (0x3f&0x0f)|0x10)
	assert(y == 0x7)
}

func TestNewMaskParams(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}
	p := NewMaskParams(true, true)
	assert(p.Or == 0x8000)
	assert(p.And == 0x8000)

	p = NewMaskParams(false, false)
	assert(p.Or == 0)
	assert(p.And == 0)
}

func TestInterlaceSkips(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}
	p := InterlaceParams{Enabled: true, ActiveLineLSB: 1}
	assert(p.skips(1))
	assert(!p.skips(2))

	off := InterlaceParams{}
	assert(!off.skips(1))
}
