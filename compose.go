package px

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/pixelform/px/internal/blend"
)

// ErrCompositionNotFound reports a render request for an unregistered
// composition name.
var ErrCompositionNotFound = errors.New("px: composition not found")

// RenderComposition renders a registered composition into a fresh buffer.
// Layers composite back to front: fills flood alpha-over, base layers
// embed sub-compositions, and map layers place sprites on the cell grid
// with the layer's blend mode. Sprites and sub-compositions referenced
// more than once render once per call.
func (r *Renderer) RenderComposition(name string) (*Pixmap, []Diagnostic, error) {
	comp, ok := r.compositions[name]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrCompositionNotFound, name)
	}
	Logger().Debug("render composition", "name", name, "strict", r.strict)

	c := newCollector(r.strict)
	memo := newRenderMemo()
	pm, err := r.renderComposition(comp, c, memo, nil)
	if err != nil {
		return nil, c.diags, err
	}
	return c.finish(pm)
}

// renderMemo caches renders within one composition call, keyed by name.
// The cache is call-scoped and discarded when the call returns; a nil
// sprite entry records an unresolvable name.
type renderMemo struct {
	sprites map[string]*Pixmap
	comps   map[string]*Pixmap
}

func newRenderMemo() *renderMemo {
	return &renderMemo{
		sprites: make(map[string]*Pixmap),
		comps:   make(map[string]*Pixmap),
	}
}

func (r *Renderer) renderComposition(comp *Composition, c *collector, memo *renderMemo, stack []string) (*Pixmap, error) {
	if pm, ok := memo.comps[comp.Name]; ok {
		return pm, nil
	}
	if slices.Contains(stack, comp.Name) {
		return nil, c.fatal(KindStructuralError, comp.Name, "",
			"composition cycle: %s", strings.Join(append(stack, comp.Name), " -> "))
	}
	stack = append(stack, comp.Name)

	cw, ch := comp.cellSize()
	if comp.W <= 0 || comp.H <= 0 {
		return nil, c.fatal(KindStructuralError, comp.Name, "",
			"composition size %dx%d is not positive", comp.W, comp.H)
	}
	if cw < 0 || ch < 0 {
		return nil, c.fatal(KindStructuralError, comp.Name, "",
			"cell size %dx%d is not positive", cw, ch)
	}
	if comp.W%cw != 0 || comp.H%ch != 0 {
		return nil, c.fatal(KindStructuralError, comp.Name, "",
			"size %dx%d is not divisible by cell size %dx%d", comp.W, comp.H, cw, ch)
	}
	cols, rows := comp.W/cw, comp.H/ch

	if err := validateLayers(comp, cols, rows, c); err != nil {
		return nil, err
	}

	table := r.resolvePalette(comp.Palette, comp.Name, c)
	out := NewPixmap(comp.W, comp.H)

	for _, l := range comp.Layers {
		switch {
		case l.Fill != "":
			col := lookupToken(table, l.Fill, comp.Name, c)
			fillOver(out, col, l.opacity())

		case l.Base != "":
			sub, ok := r.compositions[l.Base]
			if !ok {
				c.reportOnce("base\x00"+comp.Name+"\x00"+l.Base,
					KindUnknownSymbol, comp.Name, l.Base, nil,
					"base layer references unknown composition %q", l.Base)
				continue
			}
			subPm, err := r.renderComposition(sub, c, memo, stack)
			if err != nil {
				return nil, err
			}
			if subPm.Width() != comp.W || subPm.Height() != comp.H {
				c.sizeMismatch(comp.Name, l.Base, subPm.Width(), subPm.Height(), comp.W, comp.H)
				subPm = conformPixmap(subPm, comp.W, comp.H)
			}
			compositeAt(out, subPm, 0, 0, BlendNormal, l.opacity())

		default:
			for rowIdx, rowStr := range l.Rows {
				for colIdx, sym := range []rune(rowStr) {
					if sym == EmptySymbol {
						continue
					}
					spriteName, ok := comp.Symbols[sym]
					if !ok {
						c.unknownSymbol(comp.Name, string(sym), "is not in the symbol table")
						continue
					}
					if spriteName == "" {
						// Explicitly empty symbol.
						continue
					}
					cell, err := r.spriteCell(spriteName, cw, ch, comp.Name, c, memo)
					if err != nil {
						return nil, err
					}
					if cell == nil {
						continue
					}
					compositeAt(out, cell, colIdx*cw, rowIdx*ch, l.Blend, l.opacity())
				}
			}
		}
	}

	memo.comps[comp.Name] = out
	return out, nil
}

// validateLayers checks every layer's structure before any pixel work:
// exactly one variant per layer, known blend modes, and map rows that are
// equal length and fit the cell grid.
func validateLayers(comp *Composition, cols, rows int, c *collector) error {
	for i, l := range comp.Layers {
		set := 0
		if l.Fill != "" {
			set++
		}
		if l.Base != "" {
			set++
		}
		if l.Rows != nil {
			set++
		}
		if set != 1 {
			return c.fatal(KindStructuralError, comp.Name, "",
				"layer %d must set exactly one of fill, base, or map", i)
		}
		if l.Blend < BlendNormal || l.Blend > BlendDifference {
			return c.fatal(KindStructuralError, comp.Name, "",
				"layer %d has unknown blend mode %d", i, int(l.Blend))
		}
		if l.Rows == nil {
			continue
		}
		if len(l.Rows) > rows {
			return c.fatal(KindStructuralError, comp.Name, "",
				"layer %d has %d map rows, grid has %d", i, len(l.Rows), rows)
		}
		width := -1
		for _, row := range l.Rows {
			n := len([]rune(row))
			if width == -1 {
				width = n
			} else if n != width {
				return c.fatal(KindStructuralError, comp.Name, "",
					"layer %d map rows differ in length", i)
			}
			if n > cols {
				return c.fatal(KindStructuralError, comp.Name, "",
					"layer %d map row is %d cells wide, grid has %d", i, n, cols)
			}
		}
	}
	return nil
}

// spriteCell renders the named sprite once per composition call and
// conforms it to the cell size, reporting a mismatch once per sprite.
// An unresolvable name yields a nil cell (and an UnknownSymbol report).
func (r *Renderer) spriteCell(name string, cw, ch int, scope string, c *collector, memo *renderMemo) (*Pixmap, error) {
	pm, cached := memo.sprites[name]
	if !cached {
		sp, ok := r.sprites[name]
		if !ok {
			c.reportOnce("cell\x00"+scope+"\x00"+name,
				KindUnknownSymbol, scope, name, nil,
				"map references unknown sprite %q", name)
			memo.sprites[name] = nil
			return nil, nil
		}
		var err error
		pm, err = r.renderSprite(sp, nil, c, nil)
		if err != nil {
			return nil, err
		}
		memo.sprites[name] = pm
	}
	if pm == nil {
		return nil, nil
	}
	if pm.Width() != cw || pm.Height() != ch {
		c.sizeMismatch(scope, name, pm.Width(), pm.Height(), cw, ch)
		pm = conformPixmap(pm, cw, ch)
	}
	return pm, nil
}

// compositeAt blends src onto dst with its top-left corner at (ox, oy).
// Source alpha is scaled by opacity first; pixels falling outside dst are
// clipped. A zero-alpha source pixel leaves the destination untouched
// under every mode, so those are skipped.
func compositeAt(dst, src *Pixmap, ox, oy int, mode BlendMode, opacity float64) {
	m := blend.Mode(mode)
	for y := 0; y < src.Height(); y++ {
		dy := oy + y
		if dy < 0 || dy >= dst.Height() {
			continue
		}
		for x := 0; x < src.Width(); x++ {
			dx := ox + x
			if dx < 0 || dx >= dst.Width() {
				continue
			}
			s := src.GetPixel(x, y)
			sa := s.A * opacity
			if sa == 0 {
				continue
			}
			d := dst.GetPixel(dx, dy)
			or, og, ob, oa := blend.Pixel(m, s.R, s.G, s.B, sa, d.R, d.G, d.B, d.A)
			dst.SetPixel(dx, dy, RGBA{R: or, G: og, B: ob, A: oa})
		}
	}
}

// fillOver composites one color over every pixel of dst with the Normal
// envelope.
func fillOver(dst *Pixmap, col RGBA, opacity float64) {
	sa := col.A * opacity
	if sa == 0 {
		return
	}
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			d := dst.GetPixel(x, y)
			or, og, ob, oa := blend.Pixel(blend.Normal, col.R, col.G, col.B, sa, d.R, d.G, d.B, d.A)
			dst.SetPixel(x, y, RGBA{R: or, G: og, B: ob, A: oa})
		}
	}
}
