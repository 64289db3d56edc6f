package px

// Symmetry mirrors a region's rasterized pixels about the sprite's center
// column and/or center row. The reflection happens before any downstream
// FillInside region consumes the set.
type Symmetry uint8

const (
	// SymmetryNone leaves the rasterized set untouched.
	SymmetryNone Symmetry = 0
	// SymmetryX unions the set with its reflection about the center
	// column (x' = w-1-x).
	SymmetryX Symmetry = 1 << 0
	// SymmetryY unions the set with its reflection about the center row
	// (y' = h-1-y).
	SymmetryY Symmetry = 1 << 1
	// SymmetryBoth applies both reflections.
	SymmetryBoth = SymmetryX | SymmetryY
)

// Region paints one token's pixels into a sprite.
type Region struct {
	// Token names the color this region paints, resolved through the
	// sprite's palette. Tokens are unique within one sprite; FillInside
	// shapes reference earlier regions by token.
	Token string
	Shape Shape
	// Z is the draw order; lower paints first and later regions overwrite.
	// Ties are broken by declaration order.
	Z int
	// Symmetric mirrors the rasterized set about the sprite's center.
	Symmetric Symmetry
}

// NineSlice holds the margin widths for nine-slice scaling. The four
// corner blocks stay unscaled; edge strips replicate along their long
// axis and the center block replicates in both. Each margin must be less
// than half the corresponding sprite dimension.
type NineSlice struct {
	Left, Right, Top, Bottom int
}

// Sprite describes one renderable image as an ordered list of color
// regions over a palette. Sprites are immutable inputs: the renderer
// never mutates them, so one Sprite may serve any number of concurrent
// render calls.
type Sprite struct {
	Name string
	// W, H are the canvas dimensions in pixels.
	W, H int
	// Palette selects the token table regions resolve against.
	Palette PaletteRef
	// Regions paint in (Z, declaration order).
	Regions []Region
	// Background is the token the canvas is flooded with before regions
	// paint. Empty means the reserved transparent token.
	Background string
	// NineSlice margins enable RenderNineSlice for this sprite.
	NineSlice *NineSlice
	// Origin is an anchor point carried for consumers such as atlas
	// packers. The renderer ignores it.
	Origin *Point
	// Source names a base sprite this one derives from. When set, the
	// source renders first, Ops transform the result in order, and any
	// Regions then paint on top.
	Source string
	// Ops is the derivation chain applied to the source render.
	Ops []Transform
	// Variants are named palette overrides applied by RenderVariant.
	Variants map[string]map[string]string
}

// background returns the effective background token.
func (s *Sprite) background() string {
	if s.Background == "" {
		return TransparentToken
	}
	return s.Background
}
