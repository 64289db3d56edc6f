package px

import "strings"

// BlendMode selects the per-pixel color combination used when compositing
// a layer onto the accumulated buffer. All modes share the same alpha
// envelope; they differ only in how source and destination color channels
// combine where both are present.
type BlendMode int

const (
	// BlendNormal takes the source color.
	BlendNormal BlendMode = iota
	// BlendMultiply darkens by multiplying channels.
	BlendMultiply
	// BlendScreen lightens by inverse multiplication.
	BlendScreen
	// BlendDarken keeps the darker channel.
	BlendDarken
	// BlendLighten keeps the lighter channel.
	BlendLighten
	// BlendAdd sums channels, clamped to white.
	BlendAdd
	// BlendSubtract subtracts the source from the destination, clamped to
	// black.
	BlendSubtract
	// BlendOverlay multiplies dark destinations and screens light ones.
	BlendOverlay
	// BlendDifference takes the absolute channel difference.
	BlendDifference
)

// blendModeNames is ordered to match the BlendMode constants.
var blendModeNames = []string{
	"normal", "multiply", "screen", "darken", "lighten",
	"add", "subtract", "overlay", "difference",
}

// String returns the mode's lowercase name.
func (m BlendMode) String() string {
	if m < 0 || int(m) >= len(blendModeNames) {
		return "unknown"
	}
	return blendModeNames[m]
}

// ParseBlendMode maps a mode name to its BlendMode, reporting whether the
// name is known. Matching is case-insensitive; the empty string means
// Normal.
func ParseBlendMode(name string) (BlendMode, bool) {
	if name == "" {
		return BlendNormal, true
	}
	name = strings.ToLower(name)
	for i, n := range blendModeNames {
		if n == name {
			return BlendMode(i), true
		}
	}
	return BlendNormal, false
}

// EmptySymbol is the reserved map character for an empty cell.
const EmptySymbol = '.'

// Layer is one compositing step of a composition. Exactly one of Fill,
// Base, or Rows is set:
//
//   - Fill floods the whole canvas with one token's color, alpha-over.
//   - Base embeds a fully rendered sub-composition at the origin.
//   - Rows places sprites on the cell grid; each character is a symbol
//     from the composition's table, with '.' marking an empty cell.
type Layer struct {
	Fill string
	Base string
	Rows []string
	// Blend combines map-layer pixels with the accumulated buffer.
	Blend BlendMode
	// Opacity scales the layer's source alpha. The zero value means fully
	// opaque.
	Opacity float64
}

// opacity returns the effective opacity, clamped to [0, 1].
func (l Layer) opacity() float64 {
	switch {
	case l.Opacity == 0:
		return 1
	case l.Opacity < 0:
		return 0
	case l.Opacity > 1:
		return 1
	}
	return l.Opacity
}

// Composition arranges rendered sprites into a larger canvas on a cell
// grid. Like sprites, compositions are immutable inputs.
type Composition struct {
	Name string
	// W, H are the output dimensions in pixels. Each must be divisible by
	// the corresponding cell dimension.
	W, H int
	// CellW, CellH are the grid cell dimensions. Zero means 1.
	CellW, CellH int
	// Palette resolves Fill tokens.
	Palette PaletteRef
	// Symbols maps single map characters to sprite names. An empty name
	// marks the symbol as explicitly empty, like '.'.
	Symbols map[rune]string
	// Layers composite back to front; index 0 is bottommost.
	Layers []Layer
}

// cellSize returns the effective cell dimensions.
func (c *Composition) cellSize() (int, int) {
	cw, ch := c.CellW, c.CellH
	if cw == 0 {
		cw = 1
	}
	if ch == 0 {
		ch = 1
	}
	return cw, ch
}
