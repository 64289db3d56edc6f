package px

import (
	"maps"
	"slices"
)

// TransparentToken is the reserved token meaning transparent. It resolves
// to fully transparent when the palette does not override it, and never
// produces an UnknownToken diagnostic.
const TransparentToken = "_"

// defaultPaletteName is the registered palette a zero PaletteRef selects.
const defaultPaletteName = "default"

// Palette is a named mapping from semantic tokens to color values.
// Color values are hex strings in any form ParseHex accepts.
type Palette struct {
	Name   string
	Colors map[string]string
}

// PaletteRef selects the palette a sprite or composition resolves tokens
// against: either a palette registered with the renderer by name, or an
// inline token table. Inline takes precedence when both are set. The zero
// value selects the renderer's "default" palette when one is registered,
// otherwise an empty table.
type PaletteRef struct {
	Name   string
	Inline map[string]string
}

// colorTable is a palette flattened to resolved colors.
type colorTable map[string]RGBA

// resolveColors parses a raw token table into a colorTable. Tokens whose
// value fails to parse map to the magenta fallback and are reported.
// Tokens are processed in sorted order so diagnostics are deterministic.
func resolveColors(colors map[string]string, scope string, c *collector) colorTable {
	table := make(colorTable, len(colors))
	for _, token := range slices.Sorted(maps.Keys(colors)) {
		value := colors[token]
		col, ok := ParseHex(value)
		if !ok {
			c.invalidColor(scope, token, value)
			col = Magenta
		}
		table[token] = col
	}
	return table
}

// resolvePalette flattens a palette reference into a colorTable. An
// unresolvable named reference yields an empty table plus a diagnostic;
// subsequent token lookups then fall back individually.
func (r *Renderer) resolvePalette(ref PaletteRef, scope string, c *collector) colorTable {
	switch {
	case ref.Inline != nil:
		return resolveColors(ref.Inline, scope, c)
	case ref.Name != "":
		p, ok := r.palettes[ref.Name]
		if !ok {
			c.unknownPalette(scope, ref.Name)
			return colorTable{}
		}
		return resolveColors(p.Colors, scope, c)
	default:
		if p, ok := r.palettes[defaultPaletteName]; ok {
			return resolveColors(p.Colors, scope, c)
		}
		return colorTable{}
	}
}

// applyOverrides overlays a variant's raw token table onto an already
// resolved colorTable, in sorted token order.
func applyOverrides(table colorTable, overrides map[string]string, scope string, c *collector) {
	for _, token := range slices.Sorted(maps.Keys(overrides)) {
		value := overrides[token]
		col, ok := ParseHex(value)
		if !ok {
			c.invalidColor(scope, token, value)
			col = Magenta
		}
		table[token] = col
	}
}

// lookupToken resolves a token to its color. Absent tokens return the
// opaque magenta fallback and are reported once per (scope, token) pair;
// the reserved transparent token resolves silently.
func lookupToken(table colorTable, token, scope string, c *collector) RGBA {
	if col, ok := table[token]; ok {
		return col
	}
	if token == TransparentToken {
		return Transparent
	}
	c.unknownToken(scope, token)
	return Magenta
}
