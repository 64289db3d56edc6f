package px

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/pixelform/px/internal/raster"
)

var (
	// ErrSpriteNotFound reports a render request for an unregistered
	// sprite name.
	ErrSpriteNotFound = errors.New("px: sprite not found")

	// ErrVariantNotFound reports a render request for a variant the
	// sprite does not declare.
	ErrVariantNotFound = errors.New("px: variant not found")
)

// Renderer renders registered sprites, compositions, and animations.
//
// A Renderer is immutable after construction and safe for concurrent use:
// every render call allocates its own buffer and diagnostics, and the
// registered inputs are never mutated.
type Renderer struct {
	palettes     map[string]Palette
	sprites      map[string]*Sprite
	compositions map[string]*Composition
	animations   map[string]*Animation
	strict       bool
}

// NewRenderer builds a Renderer from functional options.
func NewRenderer(opts ...RendererOption) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{
		palettes:     make(map[string]Palette, len(o.palettes)),
		sprites:      make(map[string]*Sprite, len(o.sprites)),
		compositions: make(map[string]*Composition, len(o.compositions)),
		animations:   make(map[string]*Animation, len(o.animations)),
		strict:       o.strict,
	}
	for _, p := range o.palettes {
		r.palettes[p.Name] = p
	}
	for _, s := range o.sprites {
		r.sprites[s.Name] = s
	}
	for _, c := range o.compositions {
		r.compositions[c.Name] = c
	}
	for _, a := range o.animations {
		r.animations[a.Name] = a
	}
	return r
}

// Strict reports whether the renderer runs in strict diagnostic mode.
func (r *Renderer) Strict() bool { return r.strict }

// RenderSprite renders a registered sprite into a fresh buffer.
//
// In lenient mode the buffer is always produced; recoverable conditions
// substitute fallbacks and surface as warning diagnostics. In strict mode
// the same conditions are errors and the call returns a nil buffer with
// ErrStrict. Structural defects (forward references, malformed shapes,
// derivation cycles) return a nil buffer in both modes.
func (r *Renderer) RenderSprite(name string) (*Pixmap, []Diagnostic, error) {
	sp, ok := r.sprites[name]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrSpriteNotFound, name)
	}
	Logger().Debug("render sprite", "name", name, "strict", r.strict)

	c := newCollector(r.strict)
	pm, err := r.renderSprite(sp, nil, c, nil)
	if err != nil {
		return nil, c.diags, err
	}
	return c.finish(pm)
}

// RenderSpriteDef renders a sprite definition without requiring it to be
// registered. Derivation sources and composition references still resolve
// against the renderer's registries.
func (r *Renderer) RenderSpriteDef(sp *Sprite) (*Pixmap, []Diagnostic, error) {
	if sp == nil {
		return nil, nil, fmt.Errorf("%w: nil sprite", ErrStructural)
	}
	Logger().Debug("render sprite def", "name", sp.Name, "strict", r.strict)

	c := newCollector(r.strict)
	pm, err := r.renderSprite(sp, nil, c, nil)
	if err != nil {
		return nil, c.diags, err
	}
	return c.finish(pm)
}

// RenderVariant renders a sprite with one of its named palette-override
// variants applied on top of the resolved palette.
func (r *Renderer) RenderVariant(name, variant string) (*Pixmap, []Diagnostic, error) {
	sp, ok := r.sprites[name]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrSpriteNotFound, name)
	}
	overrides, ok := sp.Variants[variant]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q has no variant %q", ErrVariantNotFound, name, variant)
	}
	Logger().Debug("render variant", "name", name, "variant", variant, "strict", r.strict)

	c := newCollector(r.strict)
	pm, err := r.renderSprite(sp, overrides, c, nil)
	if err != nil {
		return nil, c.diags, err
	}
	return c.finish(pm)
}

// renderSprite runs the sprite pipeline: resolve the palette, establish
// the canvas (background flood, or the transformed render of the source
// sprite for derivations), then rasterize and paint the regions in draw
// order. chain carries the derivation path for cycle detection.
func (r *Renderer) renderSprite(sp *Sprite, overrides map[string]string, c *collector, chain []string) (*Pixmap, error) {
	if slices.Contains(chain, sp.Name) {
		return nil, c.fatal(KindStructuralError, sp.Name, "",
			"derivation cycle: %s", strings.Join(append(chain, sp.Name), " -> "))
	}
	chain = append(chain, sp.Name)

	if sp.Source == "" {
		if sp.W <= 0 || sp.H <= 0 {
			return nil, c.fatal(KindStructuralError, sp.Name, "",
				"sprite size %dx%d is not positive", sp.W, sp.H)
		}
	} else {
		if sp.W < 0 || sp.H < 0 {
			return nil, c.fatal(KindStructuralError, sp.Name, "",
				"sprite size %dx%d is not positive", sp.W, sp.H)
		}
		if (sp.W == 0) != (sp.H == 0) {
			return nil, c.fatal(KindStructuralError, sp.Name, "",
				"derived sprite size must be fully specified or omitted, got %dx%d", sp.W, sp.H)
		}
	}

	table := r.resolvePalette(sp.Palette, sp.Name, c)
	if len(overrides) > 0 {
		applyOverrides(table, overrides, sp.Name, c)
	}

	var canvas *Pixmap
	if sp.Source != "" {
		src, ok := r.sprites[sp.Source]
		if !ok {
			return nil, c.fatal(KindStructuralError, sp.Name, "",
				"derives from unknown sprite %q", sp.Source)
		}
		base, err := r.renderSprite(src, nil, c, chain)
		if err != nil {
			return nil, err
		}
		for _, op := range sp.Ops {
			base, err = applyTransform(base, op, table, sp.Name, c)
			if err != nil {
				return nil, err
			}
		}
		if sp.W > 0 && (base.Width() != sp.W || base.Height() != sp.H) {
			c.sizeMismatch(sp.Name, sp.Source, base.Width(), base.Height(), sp.W, sp.H)
			base = conformPixmap(base, sp.W, sp.H)
		}
		canvas = base
	} else {
		canvas = NewPixmap(sp.W, sp.H)
		bg := lookupToken(table, sp.background(), sp.Name, c)
		if bg != Transparent {
			canvas.Clear(bg)
		}
	}

	if err := r.paintRegions(sp, table, canvas, c); err != nil {
		return nil, err
	}
	return canvas, nil
}

// paintRegions rasterizes and paints a sprite's regions onto the canvas.
// All structural validation (duplicate tokens, malformed shapes, fill
// references) happens before any pixel work.
func (r *Renderer) paintRegions(sp *Sprite, table colorTable, canvas *Pixmap, c *collector) error {
	if len(sp.Regions) == 0 {
		return nil
	}
	w, h := canvas.Width(), canvas.Height()

	// Draw order: z ascending, declaration order breaking ties.
	order := make([]int, len(sp.Regions))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(sp.Regions[a].Z, sp.Regions[b].Z)
	})

	rank := make(map[string]int, len(sp.Regions))
	for pos, idx := range order {
		token := sp.Regions[idx].Token
		if _, dup := rank[token]; dup {
			return c.fatal(KindStructuralError, sp.Name, token,
				"duplicate region token %q", token)
		}
		rank[token] = pos
	}

	for pos, idx := range order {
		rg := sp.Regions[idx]
		if err := validateShape(rg.Shape); err != nil {
			return c.fatal(KindStructuralError, sp.Name, rg.Token,
				"region %q: %v", rg.Token, err)
		}
		var refErr error
		walkFillRefs(rg.Shape, func(ref string) {
			if refErr != nil {
				return
			}
			refRank, ok := rank[ref]
			switch {
			case !ok:
				refErr = c.fatal(KindForwardReference, sp.Name, rg.Token,
					"region %q references undeclared region %q", rg.Token, ref)
			case refRank >= pos:
				refErr = c.fatal(KindForwardReference, sp.Name, rg.Token,
					"region %q references %q before it is rasterized", rg.Token, ref)
			}
		})
		if refErr != nil {
			return refErr
		}
	}

	prior := make(map[string]*raster.Set, len(sp.Regions))
	for _, idx := range order {
		rg := sp.Regions[idx]
		set, clip := rasterizeShape(rg.Shape, w, h, prior)
		if rg.Symmetric&SymmetryX != 0 {
			set.Union(set.MirrorX())
		}
		if rg.Symmetric&SymmetryY != 0 {
			set.Union(set.MirrorY())
		}
		prior[rg.Token] = set

		if clip.Dropped > 0 {
			c.outOfBounds(sp.Name, rg.Token, clip.Dropped, Pt(clip.First.X, clip.First.Y))
		}

		col := lookupToken(table, rg.Token, sp.Name, c)
		set.Each(func(x, y int) {
			canvas.SetPixel(x, y, col)
		})
	}
	return nil
}

// conformPixmap pads (with transparency) or clips (keeping the top-left)
// a buffer to the requested dimensions. Correctly sized buffers are
// returned unchanged.
func conformPixmap(pm *Pixmap, w, h int) *Pixmap {
	if pm.Width() == w && pm.Height() == h {
		return pm
	}
	out := NewPixmap(w, h)
	cw := min(w, pm.Width())
	ch := min(h, pm.Height())
	for y := 0; y < ch; y++ {
		for x := 0; x < cw; x++ {
			out.SetPixel(x, y, pm.GetPixel(x, y))
		}
	}
	return out
}
