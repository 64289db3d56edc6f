package px

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// RenderNineSlice renders a sprite and rescales it to w×h using the
// sprite's nine-slice margins: the four corner blocks are copied
// unscaled, edge strips replicate along their long axis, and the center
// block replicates in both axes. The sprite must declare NineSlice
// margins.
func (r *Renderer) RenderNineSlice(name string, w, h int) (*Pixmap, []Diagnostic, error) {
	sp, ok := r.sprites[name]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrSpriteNotFound, name)
	}
	Logger().Debug("render nine-slice", "name", name, "w", w, "h", h, "strict", r.strict)

	c := newCollector(r.strict)
	if sp.NineSlice == nil {
		return nil, c.diags, c.fatal(KindStructuralError, sp.Name, "",
			"sprite %q has no nine-slice margins", name)
	}

	pm, err := r.renderSprite(sp, nil, c, nil)
	if err != nil {
		return nil, c.diags, err
	}
	if err := sp.NineSlice.validate(pm.Width(), pm.Height(), w, h); err != nil {
		return nil, c.diags, c.fatal(KindStructuralError, sp.Name, "", "nine-slice: %v", err)
	}
	return c.finish(nineSliceScale(pm, *sp.NineSlice, w, h))
}

// NineSliceScale rescales an already rendered buffer to w×h with the
// given margins. It validates the margins against the buffer and target
// the same way RenderNineSlice does; failures wrap ErrStructural.
func NineSliceScale(src *Pixmap, ns NineSlice, w, h int) (*Pixmap, error) {
	if err := ns.validate(src.Width(), src.Height(), w, h); err != nil {
		return nil, fmt.Errorf("%w: nine-slice: %v", ErrStructural, err)
	}
	return nineSliceScale(src, ns, w, h), nil
}

// validate checks the margins against the source and target dimensions.
// Each margin must be less than half its source dimension, and the target
// must at least fit the combined margins.
func (ns NineSlice) validate(srcW, srcH, dstW, dstH int) error {
	if ns.Left < 0 || ns.Right < 0 || ns.Top < 0 || ns.Bottom < 0 {
		return fmt.Errorf("margins must not be negative")
	}
	if 2*ns.Left >= srcW || 2*ns.Right >= srcW {
		return fmt.Errorf("horizontal margins (%d, %d) must each be less than half the width %d",
			ns.Left, ns.Right, srcW)
	}
	if 2*ns.Top >= srcH || 2*ns.Bottom >= srcH {
		return fmt.Errorf("vertical margins (%d, %d) must each be less than half the height %d",
			ns.Top, ns.Bottom, srcH)
	}
	if dstW <= 0 || dstH <= 0 {
		return fmt.Errorf("target size %dx%d is not positive", dstW, dstH)
	}
	if dstW < ns.Left+ns.Right || dstH < ns.Top+ns.Bottom {
		return fmt.Errorf("target size %dx%d does not fit the combined margins", dstW, dstH)
	}
	return nil
}

// nineSliceScale does the 3×3 cut-and-place. Margins are already
// validated, so the slice coordinates are monotonic in both source and
// target; degenerate cells (zero margins, target exactly the margins) are
// skipped.
func nineSliceScale(src *Pixmap, ns NineSlice, w, h int) *Pixmap {
	sw, sh := src.Width(), src.Height()
	img := src.ToImage()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))

	xs := [4]int{0, ns.Left, sw - ns.Right, sw}
	ys := [4]int{0, ns.Top, sh - ns.Bottom, sh}
	dxs := [4]int{0, ns.Left, w - ns.Right, w}
	dys := [4]int{0, ns.Top, h - ns.Bottom, h}

	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			sr := image.Rect(xs[i], ys[j], xs[i+1], ys[j+1])
			dr := image.Rect(dxs[i], dys[j], dxs[i+1], dys[j+1])
			if sr.Empty() || dr.Empty() {
				continue
			}
			if i != 1 && j != 1 {
				draw.Copy(dst, dr.Min, img, sr, draw.Src, nil)
			} else {
				draw.NearestNeighbor.Scale(dst, dr, img, sr, draw.Src, nil)
			}
		}
	}
	return FromImage(dst)
}
