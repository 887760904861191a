package raster

// triVertex is a polygon vertex promoted to int64 coordinates so the
// gradient math below never has to worry about overflowing int32
// intermediates.
type triVertex struct {
	x, y    int64
	r, g, b uint8
	u, v    uint8
}

func toTriVertex(v Vertex) triVertex {
	return triVertex{x: int64(v.X), y: int64(v.Y), r: v.R, g: v.G, b: v.B, u: v.U, v: v.V}
}

// sortTriVertices orders three vertices by ascending y, breaking ties by
// ascending x, via a 3-element compare-swap network.
func sortTriVertices(a, b, c triVertex) (triVertex, triVertex, triVertex) {
	before := func(p, q triVertex) bool {
		return p.y < q.y || (p.y == q.y && p.x < q.x)
	}
	if before(b, a) {
		a, b = b, a
	}
	if before(c, a) {
		a, c = c, a
	}
	if before(c, b) {
		b, c = c, b
	}
	return a, b, c
}

// attrGradient is a fixed-point plane fit with 24 fractional bits:
// value(x, y) = base + dx*(x-x0) + dy*(y-y0), all scaled by 1<<24.
type attrGradient struct {
	base, dx, dy int64
}

func fitGradient(v0, v1, v2 triVertex, a0, a1, a2 uint8, area2 int64, flat bool) attrGradient {
	if flat {
		return attrGradient{base: int64(a0) << 24}
	}
	dx1, dy1 := v1.x-v0.x, v1.y-v0.y
	dx2, dy2 := v2.x-v0.x, v2.y-v0.y
	da1, da2 := int64(a1)-int64(a0), int64(a2)-int64(a0)
	dadxNum := da1*dy2 - da2*dy1
	dadyNum := da2*dx1 - da1*dx2
	// Two-stage shift-divide-shift, not a single <<24 divide: rounding
	// happens once at 12-bit precision, then the result is rescaled by
	// another 12 bits. Collapsing this to one <<24 divide changes the
	// rounded value whenever the numerator isn't an exact multiple of
	// area2 at the 12-bit boundary.
	return attrGradient{
		base: int64(a0) << 24,
		dx:   divRoundAwayFromZero(dadxNum<<12, area2) << 12,
		dy:   divRoundAwayFromZero(dadyNum<<12, area2) << 12,
	}
}

func (g attrGradient) at(x, y, x0, y0 int64) uint8 {
	return uint8((g.base + g.dx*(x-x0) + g.dy*(y-y0) + (1 << 23)) >> 24)
}

// DrawPolygon rasterizes a 3- or 4-vertex polygon. A 4-vertex polygon is
// split into two triangles sharing an edge, (0,1,2) and (1,2,3), each
// rasterized independently — the PS1 GPU never guarantees a shared edge
// between them is drawn exactly once, so neither does this.
func DrawPolygon(cmd *PolygonCommand, vram *VRAM, area DrawingArea, interlace InterlaceParams) {
	if cmd.NumVerts != 3 && cmd.NumVerts != 4 {
		panicFmt("raster: polygon command with %d vertices, want 3 or 4", cmd.NumVerts)
	}
	drawTriangle(cmd, vram, area, interlace, cmd.Vertices[0], cmd.Vertices[1], cmd.Vertices[2])
	if cmd.NumVerts == 4 {
		drawTriangle(cmd, vram, area, interlace, cmd.Vertices[1], cmd.Vertices[2], cmd.Vertices[3])
	}
}

func drawTriangle(cmd *PolygonCommand, vram *VRAM, area DrawingArea, interlace InterlaceParams, va, vb, vc Vertex) {
	v0, v1, v2 := sortTriVertices(toTriVertex(va), toTriVertex(vb), toTriVertex(vc))

	if v2.y-v0.y >= MaxPrimitiveHeight || absInt64(v0.x-v1.x) >= MaxPrimitiveWidth ||
		absInt64(v1.x-v2.x) >= MaxPrimitiveWidth || absInt64(v0.x-v2.x) >= MaxPrimitiveWidth {
		return
	}

	area2 := (v1.x-v0.x)*(v2.y-v0.y) - (v2.x-v0.x)*(v1.y-v0.y)
	if area2 == 0 {
		// Collinear vertices: zero-area triangle, draw nothing.
		return
	}
	longEdgeIsLeft := area2 > 0

	flatShade := !cmd.Flags.Shading
	// A flat polygon takes its color from the command's first vertex.
	r0, g0, b0 := v0.r, v0.g, v0.b
	if flatShade {
		r0, g0, b0 = cmd.Vertices[0].R, cmd.Vertices[0].G, cmd.Vertices[0].B
	}
	gr := fitGradient(v0, v1, v2, r0, v1.r, v2.r, area2, flatShade)
	gg := fitGradient(v0, v1, v2, g0, v1.g, v2.g, area2, flatShade)
	gb := fitGradient(v0, v1, v2, b0, v1.b, v2.b, area2, flatShade)
	gu := fitGradient(v0, v1, v2, v0.u, v1.u, v2.u, area2, false)
	gv := fitGradient(v0, v1, v2, v0.v, v1.v, v2.v, area2, false)

	var dxLong, dxUpper, dxLower int64
	if v2.y != v0.y {
		dxLong = divRoundAwayFromZero((v2.x-v0.x)<<32, v2.y-v0.y)
	}
	if v1.y != v0.y {
		dxUpper = divRoundAwayFromZero((v1.x-v0.x)<<32, v1.y-v0.y)
	}
	if v2.y != v1.y {
		dxLower = divRoundAwayFromZero((v2.x-v1.x)<<32, v2.y-v1.y)
	}

	clip := area.clampToSurface()
	shader := selectShader(cmd.Flags.Texture, cmd.Flags.RawTexture, cmd.Flags.Transparent, cmd.Flags.Dithering)
	ctx := newShadeContext(vram, cmd.Mode, cmd.Window, cmd.Palette, cmd.Mask)

	longX := v0.x << 32
	shortX := v0.x << 32

	for y := v0.y; y < v2.y; y++ {
		if y == v1.y {
			shortX = v1.x << 32
		}

		var leftFixed, rightFixed int64
		if longEdgeIsLeft {
			leftFixed, rightFixed = longX, shortX
		} else {
			leftFixed, rightFixed = shortX, longX
		}

		xStart := (leftFixed + (1<<32 - 1)) >> 32
		xEnd := rightFixed >> 32

		if y >= 0 && y < int64(VRAMHeight) && !interlace.skips(int(y)) {
			for x := xStart; x < xEnd; x++ {
				if x < int64(clip.Left) || x > int64(clip.Right) || y < int64(clip.Top) || y > int64(clip.Bottom) {
					continue
				}
				r := gr.at(x, y, v0.x, v0.y)
				g := gg.at(x, y, v0.x, v0.y)
				b := gb.at(x, y, v0.x, v0.y)
				tcx := gu.at(x, y, v0.x, v0.y)
				tcy := gv.at(x, y, v0.x, v0.y)
				shader(ctx, int(x), int(y), r, g, b, tcx, tcy)
			}
		}

		longX += dxLong
		if y < v1.y {
			shortX += dxUpper
		} else {
			shortX += dxLower
		}
	}
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
