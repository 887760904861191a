// Package raster implements the PlayStation 1 GPU's software rasterizer
// core: the fixed-point pixel shader and the sprite, line, and triangle
// scan-conversion routines that turn already-decoded draw commands into
// writes against a simulated 1 MiB VRAM surface.
//
// The package owns no state between draw calls. VRAM, the drawing area,
// the texture window, and every other piece of GPU configuration travel
// as explicit arguments on each draw call, the same way they're carried
// on the DrawCommand values the upstream GPU command processor builds.
package raster

// VRAM dimensions, in 16-bit words. Both are powers of two so that
// coordinate wraparound (spec: "VRAM coordinates wrap modulo (1024, 512)
// when sampling texture pages and palettes") is a plain bit mask.
const (
	VRAMWidth  = 1024
	VRAMHeight = 512

	vramWidthMask  = VRAMWidth - 1
	vramHeightMask = VRAMHeight - 1
)

// MaxPrimitiveWidth and MaxPrimitiveHeight bound the edges a line or
// triangle primitive may span before the rasterizer silently drops it.
const (
	MaxPrimitiveWidth  = 1024
	MaxPrimitiveHeight = 512
)

// VRAM is a flat, row-major buffer of 1024x512 16-bit pixels in
// mbbbbbgg gggrrrrr format (bit 15 is the mask/semi-transparency flag).
// The rasterizer never allocates or owns a VRAM; callers construct one
// (or reuse an existing buffer) and pass a pointer into the draw calls.
type VRAM struct {
	Pixels [VRAMWidth * VRAMHeight]uint16
}

// NewVRAM returns a zeroed VRAM surface.
func NewVRAM() *VRAM {
	return &VRAM{}
}

// index converts a wrapped VRAM coordinate into a flat buffer index.
func index(x, y int) int {
	return y*VRAMWidth + x
}

// WrapX wraps a texture/palette/page x coordinate modulo VRAMWidth.
func WrapX(x int) int {
	return x & vramWidthMask
}

// WrapY wraps a texture/palette/page y coordinate modulo VRAMHeight.
func WrapY(y int) int {
	return y & vramHeightMask
}

// At reads the pixel at (x, y), wrapping both coordinates. Used for
// texture, palette, and VRAM-to-VRAM source sampling, which must wrap
// per the data model invariant rather than panic on out-of-range access.
func (v *VRAM) At(x, y int) uint16 {
	return v.Pixels[index(WrapX(x), WrapY(y))]
}

// Get reads the pixel at (x, y) without wrapping. Callers must have
// already clipped (x, y) to [0, VRAMWidth) x [0, VRAMHeight).
func (v *VRAM) Get(x, y int) uint16 {
	return v.Pixels[index(x, y)]
}

// Set writes the pixel at (x, y) without wrapping. Callers must have
// already clipped (x, y) to [0, VRAMWidth) x [0, VRAMHeight).
func (v *VRAM) Set(x, y int, value uint16) {
	v.Pixels[index(x, y)] = value
}

// Clear zeroes the entire surface.
func (v *VRAM) Clear() {
	for i := range v.Pixels {
		v.Pixels[i] = 0
	}
}
