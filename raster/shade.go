package raster

// boolFlag is implemented by the two compile-time boolean marker types
// below so shadePixel's four template parameters (TEXTURE, RAW_TEXTURE,
// TRANSPARENT, DITHER) can be resolved via Go generics instead of a
// runtime branch inside the innermost pixel loop. See SPEC_FULL.md §14.
type boolFlag interface {
	flagValue() bool
}

type fTrue struct{}

func (fTrue) flagValue() bool { return true }

type fFalse struct{}

func (fFalse) flagValue() bool { return false }

// shadeContext bundles the per-draw-call configuration the pixel shader
// needs, built once by the caller before the pixel loop starts.
type shadeContext struct {
	vram    *VRAM
	dither  *DitherLUT
	mode    DrawMode
	window  TextureWindow
	palette PaletteLocation
	mask    MaskParams
	blend   func(fg, bg uint32) uint32
}

func newShadeContext(vram *VRAM, mode DrawMode, window TextureWindow, palette PaletteLocation, mask MaskParams) *shadeContext {
	return &shadeContext{
		vram:    vram,
		dither:  DefaultDitherLUT,
		mode:    mode,
		window:  window,
		palette: palette,
		mask:    mask,
		blend:   blendFuncFor(mode.TransparencyMode),
	}
}

// sampleTexel fetches one texel from the texture page addressed by mode,
// indirecting through the palette for indexed formats. tcx/tcy have
// already passed through the texture window.
func sampleTexel(vram *VRAM, mode DrawMode, palette PaletteLocation, tcx, tcy uint8) uint16 {
	switch mode.TextureMode {
	case Palette4Bit:
		word := vram.At(mode.PageX+int(tcx)/4, mode.PageY+int(tcy))
		nibble := (word >> ((tcx % 4) * 4)) & 0xf
		return vram.At(palette.XBase+int(nibble), palette.YBase)
	case Palette8Bit:
		word := vram.At(mode.PageX+int(tcx)/2, mode.PageY+int(tcy))
		b := (word >> ((tcx % 2) * 8)) & 0xff
		return vram.At(palette.XBase+int(b), palette.YBase)
	default: // Direct15Bit
		return vram.At(mode.PageX+int(tcx), mode.PageY+int(tcy))
	}
}

// shadePixel is the one templated routine spec §4.1 describes, realized
// as a Go generic function instantiated once per legal flag combination
// (see dispatch.go). It writes at most one word to ctx.vram at (x, y).
func shadePixel[Texture, Raw, Transparent, Dither boolFlag](ctx *shadeContext, x, y int, modR, modG, modB, tcx, tcy uint8) {
	var texture Texture
	var raw Raw
	var transparent Transparent
	var dither Dither

	isTexture := texture.flagValue()
	isRaw := raw.flagValue()
	isTransparent := transparent.flagValue()
	isDither := dither.flagValue()

	var fg uint32
	if isTexture {
		wtcx, wtcy := ctx.window.Apply(tcx, tcy)
		texel := sampleTexel(ctx.vram, ctx.mode, ctx.palette, wtcx, wtcy)
		if texel == 0 {
			// PS1 quirk: an all-zero texel is fully transparent, discarded
			// before modulation, masking, or blending ever run.
			return
		}
		if isRaw {
			fg = uint32(texel)
		} else {
			texR := texel & 0x1f
			texG := (texel >> 5) & 0x1f
			texB := (texel >> 10) & 0x1f
			preR := (int(texR) * int(modR)) >> 4
			preG := (int(texG) * int(modG)) >> 4
			preB := (int(texB) * int(modB)) >> 4
			outR := ctx.dither.Lookup(x, y, preR, isDither)
			outG := ctx.dither.Lookup(x, y, preG, isDither)
			outB := ctx.dither.Lookup(x, y, preB, isDither)
			fg = uint32(outR) | uint32(outG)<<5 | uint32(outB)<<10 | uint32(texel&0x8000)
		}
	} else {
		outR := ctx.dither.Lookup(x, y, int(modR), isDither)
		outG := ctx.dither.Lookup(x, y, int(modG), isDither)
		outB := ctx.dither.Lookup(x, y, int(modB), isDither)
		fg = uint32(outR) | uint32(outG)<<5 | uint32(outB)<<10
		if isTransparent {
			fg |= 0x8000
		}
	}

	bg := uint32(ctx.vram.Get(x, y))

	color := fg
	if isTransparent && (fg&0x8000 != 0 || !isTexture) {
		color = ctx.blend(fg, bg)
		if !isTexture {
			// Non-textured semi-transparent primitives never set the
			// stored mask bit.
			color &^= 0x8000
		}
	}

	if bg&uint32(ctx.mask.And) != 0 {
		return
	}
	ctx.vram.Set(x, y, uint16(color&0xffff)|ctx.mask.Or)
}

// blendFuncFor resolves a command's transparency mode to a blend
// formula once per draw call, outside the pixel loop.
func blendFuncFor(mode TransparencyMode) func(fg, bg uint32) uint32 {
	switch mode {
	case TransparencyAdd:
		return blendAdd
	case TransparencySub:
		return blendSub
	case TransparencyQuarterAdd:
		return blendQuarterAdd
	default:
		return blendHalfHalf
	}
}

// blendHalfHalf computes B/2 + F/2.
func blendHalfHalf(fg, bg uint32) uint32 {
	bg |= 0x8000
	return ((fg + bg) - ((fg ^ bg) & 0x0421)) >> 1
}

// blendAdd computes B + F with per-channel saturation.
func blendAdd(fg, bg uint32) uint32 {
	bg &^= 0x8000
	sum := fg + bg
	carry := (sum - ((fg ^ bg) & 0x8421)) & 0x8420
	return (sum - carry) | (carry - (carry >> 5))
}

// blendSub computes B - F with per-channel saturation.
func blendSub(fg, bg uint32) uint32 {
	bg |= 0x8000
	fg &^= 0x8000
	diff := bg - fg + 0x108420
	borrow := (diff - ((bg ^ fg) & 0x108420)) & 0x108420
	return (diff - borrow) & (borrow - (borrow >> 5))
}

// blendQuarterAdd computes B + F/4 with per-channel saturation.
func blendQuarterAdd(fg, bg uint32) uint32 {
	bg &^= 0x8000
	fg = ((fg >> 2) & 0x1ce7) | 0x8000
	sum := fg + bg
	carry := (sum - ((fg ^ bg) & 0x8421)) & 0x8420
	return (sum - carry) | (carry - (carry >> 5))
}
