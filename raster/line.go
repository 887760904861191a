package raster

// divRoundAwayFromZero divides a by b, rounding the result away from
// zero rather than truncating toward zero the way Go's native integer
// division does. Every fixed-point division in the line and triangle
// rasterizers uses this, per spec §9: truncating division here produces
// off-by-one seams between adjacent primitives. b must be non-zero.
func divRoundAwayFromZero(a, b int64) int64 {
	if b < 0 {
		a, b = -a, -b
	}
	if a >= 0 {
		return (a + b - 1) / b
	}
	return (a - (b - 1)) / b
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// DrawLine rasterizes one segment of a polyline as a single-pixel-wide
// DDA with optional Gouraud color interpolation. Lines never texture.
// The caller iterates polyline segments; a GP0 polyline command with N
// vertices calls this N-1 times.
func DrawLine(cmd *LineCommand, p0, p1 LineVertex, vram *VRAM, area DrawingArea, interlace InterlaceParams) {
	dx := int64(absInt32(p1.X - p0.X))
	dy := int64(absInt32(p1.Y - p0.Y))
	if dx >= MaxPrimitiveWidth || dy >= MaxPrimitiveHeight {
		return
	}

	k := dx
	if dy > k {
		k = dy
	}
	if p0.X >= p1.X && k > 0 {
		p0, p1 = p1, p0
	}

	var xStep, yStep int64
	var rStep, gStep, bStep int64
	if k > 0 {
		xStep = divRoundAwayFromZero(int64(p1.X-p0.X)<<32, k)
		yStep = divRoundAwayFromZero(int64(p1.Y-p0.Y)<<32, k)
		rStep = divRoundAwayFromZero(int64(int32(p1.R)-int32(p0.R))<<12, k)
		gStep = divRoundAwayFromZero(int64(int32(p1.G)-int32(p0.G))<<12, k)
		bStep = divRoundAwayFromZero(int64(int32(p1.B)-int32(p0.B))<<12, k)
	}

	fx := (int64(p0.X) << 32) + (1 << 31) - 1024
	fy := (int64(p0.Y) << 32) + (1 << 31)
	if yStep < 0 {
		fy -= 1024
	}

	fr := int64(p0.R) << 12
	fg := int64(p0.G) << 12
	fb := int64(p0.B) << 12

	area = area.clampToSurface()
	shader := selectShader(false, false, cmd.Flags.Transparent, cmd.Flags.Dithering)
	ctx := newShadeContext(vram, DrawMode{}, TextureWindow{}, PaletteLocation{}, cmd.Mask)

	for i := int64(0); i <= k; i++ {
		x := int((fx >> 32)) & 2047
		y := int((fy >> 32)) & 2047

		if !interlace.skips(y) && area.Contains(x, y) {
			r, g, b := p0.R, p0.G, p0.B
			if cmd.Flags.Shading {
				r, g, b = uint8(fr>>12), uint8(fg>>12), uint8(fb>>12)
			}
			shader(ctx, x, y, r, g, b, 0, 0)
		}

		fx += xStep
		fy += yStep
		fr += rStep
		fg += gStep
		fb += bStep
	}
}
