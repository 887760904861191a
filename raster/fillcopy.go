package raster

// roundTo16 rounds v down to a multiple of 0x10, matching the fill
// command's coordinate/dimension granularity on real hardware.
func roundTo16(v int) int {
	return v &^ 0xf
}

// DrawFill executes the GP0 quick-fill command: a solid rectangle write
// with no clipping against the drawing area, no mask test, and no
// dithering (see SPEC_FULL.md §12). X and width round down to a
// multiple of 0x10 before the fill runs, and the color is truncated
// (never dithered) from 24-bit to 15-bit with the mask bit forced clear.
func DrawFill(cmd *FillCommand, vram *VRAM) {
	word := uint16(cmd.R>>3) | uint16(cmd.G>>3)<<5 | uint16(cmd.B>>3)<<10

	x0 := roundTo16(cmd.X)
	width := roundTo16(cmd.Width)

	for oy := 0; oy < cmd.Height; oy++ {
		y := WrapY(cmd.Y + oy)
		for ox := 0; ox < width; ox++ {
			x := WrapX(x0 + ox)
			vram.Set(x, y, word)
		}
	}
}

// DrawCopy executes the GP0 VRAM-to-VRAM blit command: copies a
// rectangle of words honoring only the destination mask test (see
// SPEC_FULL.md §12). Source and destination rectangles wrap
// independently, so a copy that straddles the VRAM edge behaves the
// same as any other primitive reading or writing through VRAM.At.
func DrawCopy(cmd *CopyCommand, vram *VRAM) {
	for oy := 0; oy < cmd.Height; oy++ {
		srcY := cmd.SrcY + oy
		dstY := WrapY(cmd.DstY + oy)
		for ox := 0; ox < cmd.Width; ox++ {
			srcX := cmd.SrcX + ox
			dstX := WrapX(cmd.DstX + ox)

			texel := vram.At(srcX, srcY)
			bg := vram.Get(dstX, dstY)
			if uint16(bg)&cmd.Mask.And != 0 {
				continue
			}
			vram.Set(dstX, dstY, (texel&0xffff)|cmd.Mask.Or)
		}
	}
}
