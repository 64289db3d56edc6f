package px

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Sheet is a grid of rendered sprite frames packed into one buffer, laid
// out left to right, top to bottom. Every cell has the same dimensions;
// frame i sits at column i%Columns, row i/Columns.
type Sheet struct {
	Pixmap       *Pixmap
	CellW, CellH int
	Columns      int
	Count        int
}

// FrameRect returns the pixel rectangle of frame i within the sheet.
func (s *Sheet) FrameRect(i int) image.Rectangle {
	col := i % s.Columns
	row := i / s.Columns
	return image.Rect(col*s.CellW, row*s.CellH, (col+1)*s.CellW, (row+1)*s.CellH)
}

// RenderSheet renders the named sprites and packs them into a sheet with
// the given number of columns (0 means a single row). The cell size is
// the maximum frame size; smaller frames sit at their cell's top-left
// corner and are reported as mismatched. Repeated names render once.
func (r *Renderer) RenderSheet(names []string, columns int) (*Sheet, []Diagnostic, error) {
	c := newCollector(r.strict)
	if len(names) == 0 {
		return nil, c.diags, c.fatal(KindStructuralError, "sheet", "", "sheet has no frames")
	}
	Logger().Debug("render sheet", "frames", len(names), "columns", columns, "strict", r.strict)

	frames := make([]*Pixmap, len(names))
	rendered := make(map[string]*Pixmap, len(names))
	cellW, cellH := 0, 0
	for i, name := range names {
		pm, ok := rendered[name]
		if !ok {
			sp, exists := r.sprites[name]
			if !exists {
				return nil, c.diags, fmt.Errorf("%w: %q", ErrSpriteNotFound, name)
			}
			var err error
			pm, err = r.renderSprite(sp, nil, c, nil)
			if err != nil {
				return nil, c.diags, err
			}
			rendered[name] = pm
		}
		frames[i] = pm
		cellW = max(cellW, pm.Width())
		cellH = max(cellH, pm.Height())
	}
	for i, pm := range frames {
		if pm.Width() != cellW || pm.Height() != cellH {
			c.sizeMismatch("sheet", names[i], pm.Width(), pm.Height(), cellW, cellH)
		}
	}

	if columns <= 0 {
		columns = len(names)
	}
	rows := (len(names) + columns - 1) / columns

	dst := image.NewNRGBA(image.Rect(0, 0, columns*cellW, rows*cellH))
	for i, pm := range frames {
		origin := image.Pt((i%columns)*cellW, (i/columns)*cellH)
		draw.Copy(dst, origin, pm.ToImage(), pm.Bounds(), draw.Src, nil)
	}

	sheet := &Sheet{
		Pixmap:  FromImage(dst),
		CellW:   cellW,
		CellH:   cellH,
		Columns: columns,
		Count:   len(names),
	}
	if c.failed {
		return nil, c.diags, ErrStrict
	}
	return sheet, c.diags, nil
}
