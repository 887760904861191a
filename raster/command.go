package raster

// DrawingArea is the inclusive clip rectangle all primitives are confined
// to. A degenerate area (e.g. Right < Left) clips away every pixel.
type DrawingArea struct {
	Left, Top, Right, Bottom int
}

// Contains reports whether (x, y) falls inside the inclusive rectangle.
func (a DrawingArea) Contains(x, y int) bool {
	return x >= a.Left && x <= a.Right && y >= a.Top && y <= a.Bottom
}

// clampToSurface intersects a with the VRAM surface bounds, so a caller
// that hands in an area wider than VRAM (or never updated it) can't make
// the rasterizer index outside the buffer.
func (a DrawingArea) clampToSurface() DrawingArea {
	if a.Left < 0 {
		a.Left = 0
	}
	if a.Top < 0 {
		a.Top = 0
	}
	if a.Right > VRAMWidth-1 {
		a.Right = VRAMWidth - 1
	}
	if a.Bottom > VRAMHeight-1 {
		a.Bottom = VRAMHeight - 1
	}
	return a
}

// TextureWindow masks and offsets texture coordinates before sampling:
// tc' = (tc & And) | Or.
type TextureWindow struct {
	AndX, AndY uint8
	OrX, OrY   uint8
}

// Apply transforms a texture coordinate pair through the window.
func (w TextureWindow) Apply(tcx, tcy uint8) (uint8, uint8) {
	return (tcx & w.AndX) | w.OrX, (tcy & w.AndY) | w.OrY
}

// TextureMode selects how texels are decoded from a texture page.
type TextureMode uint8

const (
	Palette4Bit TextureMode = iota
	Palette8Bit
	Direct15Bit
)

// TransparencyMode selects one of the four semi-transparency blend
// formulas from spec §4.1 step 4.
type TransparencyMode uint8

const (
	TransparencyHalfHalf TransparencyMode = iota
	TransparencyAdd
	TransparencySub
	TransparencyQuarterAdd
)

// DrawMode carries the texture page location and decoding/blending mode
// a textured or semi-transparent primitive draws with.
type DrawMode struct {
	PageX, PageY     int // texture page base, in VRAM words/rows
	TextureMode      TextureMode
	TransparencyMode TransparencyMode
}

// PaletteLocation points at a 16- or 256-entry palette (CLUT) in VRAM.
type PaletteLocation struct {
	XBase, YBase int
}

// MaskParams implements the mask-bit protection and stamping rule from
// spec §4.1 step 5: a write is dropped if (existing & And) != 0, and
// otherwise OR-ed with Or before being stored.
type MaskParams struct {
	And, Or uint16
}

// NewMaskParams builds MaskParams from the GPU's two mask-bit-setting
// flags, mirroring the teacher's GP0MaskBitSetting decode.
func NewMaskParams(forceSetMaskBit, preserveMaskedPixels bool) MaskParams {
	var p MaskParams
	if preserveMaskedPixels {
		p.And = 0x8000
	}
	if forceSetMaskBit {
		p.Or = 0x8000
	}
	return p
}

// InterlaceParams implements field skipping: when Enabled, rows whose
// LSB matches ActiveLineLSB are skipped entirely.
type InterlaceParams struct {
	Enabled       bool
	ActiveLineLSB uint8
}

// skips reports whether row y is skipped by interlacing.
func (p InterlaceParams) skips(y int) bool {
	return p.Enabled && uint8(y&1) == p.ActiveLineLSB
}

// Vertex is one corner of a polygon: an integer position plus Gouraud
// color and texture coordinates.
type Vertex struct {
	X, Y    int32
	R, G, B uint8
	U, V    uint8
}

// LineVertex is one endpoint of a line segment: position plus color.
type LineVertex struct {
	X, Y    int32
	R, G, B uint8
}

// SpriteFlags are the three boolean template parameters a sprite draw
// selects a pixel shader specialization with.
type SpriteFlags struct {
	Texture     bool
	RawTexture  bool
	Transparent bool
}

// SpriteCommand draws an axis-aligned, untextured-or-flat-textured
// rectangle.
type SpriteCommand struct {
	X, Y          int
	Width, Height int
	R, G, B       uint8 // solid/modulation color
	TexX, TexY    uint8 // texture coordinate of the top-left corner
	Mode          DrawMode
	Window        TextureWindow
	Palette       PaletteLocation
	Mask          MaskParams
	Flags         SpriteFlags
}

// PolygonFlags are the five boolean template parameters a polygon draw
// selects a pixel shader specialization and an attribute-gradient setup
// with.
type PolygonFlags struct {
	Shading     bool
	Texture     bool
	RawTexture  bool
	Transparent bool
	Dithering   bool
}

// PolygonCommand draws a 3- or 4-vertex polygon. A 4-vertex polygon is
// rasterized as two triangles sharing an edge: (0,1,2) and (1,2,3).
type PolygonCommand struct {
	Vertices [4]Vertex
	NumVerts int // 3 or 4
	Mode     DrawMode
	Window   TextureWindow
	Palette  PaletteLocation
	Mask     MaskParams
	Flags    PolygonFlags
}

// LineFlags are the boolean template parameters a line segment draw
// selects a pixel shader specialization with. Lines never texture.
type LineFlags struct {
	Shading     bool
	Transparent bool
	Dithering   bool
}

// LineCommand carries the flags shared by every segment of a polyline.
// DrawLine draws one segment per call; the caller passes each adjacent
// pair of vertices in turn.
type LineCommand struct {
	Mask  MaskParams
	Flags LineFlags
}

// FillCommand is the GP0 quick-fill command (see SPEC_FULL.md §12):
// a solid rectangle write with no clipping, masking, or dithering.
type FillCommand struct {
	X, Y          int
	Width, Height int
	R, G, B       uint8
}

// CopyCommand is the GP0 VRAM-to-VRAM blit command (see SPEC_FULL.md
// §12): copies a rectangle honoring the destination's mask test only.
type CopyCommand struct {
	SrcX, SrcY int
	DstX, DstY int
	Width      int
	Height     int
	Mask       MaskParams
}
