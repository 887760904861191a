package raster

// pixelShaderFunc is one fully specialized instantiation of shadePixel —
// the TEXTURE/RAW_TEXTURE/TRANSPARENT/DITHER booleans are baked in via
// generic instantiation, not read from a struct field at call time.
type pixelShaderFunc func(ctx *shadeContext, x, y int, modR, modG, modB, tcx, tcy uint8)

// shaderTable indexes every legal pixel shader specialization by
// [texture][rawTexture][transparent][dither], built once at init time.
// Rectangle, line, and triangle rasterizers all draw from this single
// table; none of them branch on these four flags inside their pixel
// loops, only at setup time when they call selectShader.
var shaderTable [2][2][2][2]pixelShaderFunc

func init() {
	// texture = false: raw_texture has no effect, so both of its slots
	// alias the same specialization.
	for _, raw := range [2]int{0, 1} {
		shaderTable[0][raw][0][0] = shadePixel[fFalse, fFalse, fFalse, fFalse]
		shaderTable[0][raw][0][1] = shadePixel[fFalse, fFalse, fFalse, fTrue]
		shaderTable[0][raw][1][0] = shadePixel[fFalse, fFalse, fTrue, fFalse]
		shaderTable[0][raw][1][1] = shadePixel[fFalse, fFalse, fTrue, fTrue]
	}

	// texture = true, raw_texture = false: the full flag space applies.
	shaderTable[1][0][0][0] = shadePixel[fTrue, fFalse, fFalse, fFalse]
	shaderTable[1][0][0][1] = shadePixel[fTrue, fFalse, fFalse, fTrue]
	shaderTable[1][0][1][0] = shadePixel[fTrue, fFalse, fTrue, fFalse]
	shaderTable[1][0][1][1] = shadePixel[fTrue, fFalse, fTrue, fTrue]

	// texture = true, raw_texture = true: dithering never applies to a
	// raw texel, so both dither slots alias the same specialization.
	shaderTable[1][1][0][0] = shadePixel[fTrue, fTrue, fFalse, fFalse]
	shaderTable[1][1][0][1] = shaderTable[1][1][0][0]
	shaderTable[1][1][1][0] = shadePixel[fTrue, fTrue, fTrue, fFalse]
	shaderTable[1][1][1][1] = shaderTable[1][1][1][0]
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}

// selectShader resolves a flag combination to its specialization once,
// outside any pixel loop.
func selectShader(texture, rawTexture, transparent, dither bool) pixelShaderFunc {
	return shaderTable[boolIndex(texture)][boolIndex(rawTexture)][boolIndex(transparent)][boolIndex(dither)]
}
