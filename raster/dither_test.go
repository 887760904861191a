package raster

import "testing"

func TestDitherLookupOffDitherUsesFixedCell(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}
	for _, pre := range []int{0, 17, 128, 255} {
		got := DefaultDitherLUT.Lookup(1, 1, pre, false)
		want := DefaultDitherLUT[2][3][pre]
		assert(got == want)
	}
}

func TestDitherLookupOnDitherVariesByPosition(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}
	pre := 64
	a := DefaultDitherLUT.Lookup(0, 0, pre, true)
	b := DefaultDitherLUT.Lookup(1, 0, pre, true)
	assert(a != b || ditherMatrix[0][0] == ditherMatrix[0][1])
}

func TestDitherClampsToChannelRange(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}
	got := DefaultDitherLUT.Lookup(0, 0, 0, true)
	assert(got <= 31)
	got = DefaultDitherLUT.Lookup(0, 0, 255, true)
	assert(got <= 31)
}
