package raster

// ditherPreSize is the width of the pre-dither domain the LUT is indexed
// by: the product of a 5-bit texel channel and an 8-bit modulation value,
// shifted down by 4, can reach 31*255>>4 = 494, so the table covers the
// full 9-bit range rather than just [0,255].
const ditherPreSize = 512

// ditherMatrix holds the classic 4x4 ordered-dither offsets the PS1 GPU
// applies before truncating 8-bit-precision color to 5 bits per channel.
var ditherMatrix = [4][4]int{
	{-4, 0, -3, 1},
	{2, -2, 3, -1},
	{-3, 1, -4, 0},
	{3, -1, 2, -2},
}

// DitherLUT maps (y mod 4, x mod 4, pre-dither value) to a clamped 5-bit
// channel value.
type DitherLUT [4][4][ditherPreSize]uint8

// buildDitherLUT precomputes the table once: add the matrix offset, clamp
// to an 8-bit channel, then truncate to 5 bits.
func buildDitherLUT() *DitherLUT {
	lut := &DitherLUT{}
	for y4 := 0; y4 < 4; y4++ {
		for x4 := 0; x4 < 4; x4++ {
			offset := ditherMatrix[y4][x4]
			for pre := 0; pre < ditherPreSize; pre++ {
				v := pre + offset
				switch {
				case v < 0:
					v = 0
				case v > 255:
					v = 255
				}
				lut[y4][x4][pre] = uint8(v >> 3)
			}
		}
	}
	return lut
}

// DefaultDitherLUT is the table every draw call uses unless a caller
// builds its own (tests may want to, to check the LUT construction
// itself in isolation).
var DefaultDitherLUT = buildDitherLUT()

// Lookup applies the dither LUT at (x, y) to pre, or at the fixed cell
// row 2, column 3 (zero offset) when dither is disabled for this draw — matching
// spec §4.1 step 2 exactly. pre must be in [0, ditherPreSize).
func (lut *DitherLUT) Lookup(x, y int, pre int, dither bool) uint8 {
	if !dither {
		return lut[2][3][pre]
	}
	return lut[y&3][x&3][pre]
}
