package raster

// DrawRectangle rasterizes an axis-aligned sprite: two nested scans over
// the bounded rectangle invoking the pixel shader. Sprites never dither
// (DITHER is forced off) and never apply Gouraud shading — the command's
// R/G/B is the modulation color for every pixel.
func DrawRectangle(cmd *SpriteCommand, vram *VRAM, area DrawingArea, interlace InterlaceParams) {
	area = area.clampToSurface()
	shader := selectShader(cmd.Flags.Texture, cmd.Flags.RawTexture, cmd.Flags.Transparent, false)
	ctx := newShadeContext(vram, cmd.Mode, cmd.Window, cmd.Palette, cmd.Mask)

	for oy := 0; oy < cmd.Height; oy++ {
		y := cmd.Y + oy
		if y < area.Top || y > area.Bottom {
			continue
		}
		if interlace.skips(y) {
			continue
		}
		tcy := cmd.TexY + uint8(oy)
		for ox := 0; ox < cmd.Width; ox++ {
			x := cmd.X + ox
			if x < area.Left || x > area.Right {
				continue
			}
			tcx := cmd.TexX + uint8(ox)
			shader(ctx, x, y, cmd.R, cmd.G, cmd.B, tcx, tcy)
		}
	}
}
