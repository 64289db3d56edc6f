package px

import (
	"maps"
	"slices"
)

// Axis selects a mirror direction.
type Axis uint8

const (
	// AxisX flips horizontally, about the vertical center line.
	AxisX Axis = iota
	// AxisY flips vertically, about the horizontal center line.
	AxisY
)

// Transform is one step of a derivation chain: a pure buffer-to-buffer
// operation applied to the source sprite's render. The set of
// implementations is closed.
type Transform interface {
	isTransform()
}

// Mirror flips the buffer about the canvas center.
type Mirror struct {
	Axis Axis
}

// Rotate turns the buffer clockwise. Degrees must be 0, 90, 180, or 270;
// quarter turns swap the buffer dimensions.
type Rotate struct {
	Degrees int
}

// Recolor substitutes resolved colors: every pixel matching a key token's
// color is repainted with the value token's color. All substitutions read
// the original buffer, so mappings never chain within one op.
type Recolor map[string]string

// Tile repeats the buffer NX times across and NY times down.
type Tile struct {
	NX, NY int
}

// Pad grows the buffer with transparent margins.
type Pad struct {
	Left, Right, Top, Bottom int
}

// Crop extracts the W×H window with top-left corner (X, Y). Window areas
// outside the source are transparent.
type Crop struct {
	X, Y, W, H int
}

// Shift translates pixels by (DX, DY) within the same dimensions. With
// Wrap set, pixels pushed off one edge re-enter at the other; otherwise
// vacated cells are transparent.
type Shift struct {
	DX, DY int
	Wrap   bool
}

func (Mirror) isTransform()  {}
func (Rotate) isTransform()  {}
func (Recolor) isTransform() {}
func (Tile) isTransform()    {}
func (Pad) isTransform()     {}
func (Crop) isTransform()    {}
func (Shift) isTransform()   {}

// applyTransform applies one derivation op to a rendered buffer. Malformed
// op parameters are structural errors; token lookups inside Recolor go
// through the usual fallback path.
func applyTransform(pm *Pixmap, op Transform, table colorTable, scope string, c *collector) (*Pixmap, error) {
	switch v := op.(type) {
	case nil:
		return nil, c.fatal(KindStructuralError, scope, "", "derivation op is nil")
	case Mirror:
		if v.Axis != AxisX && v.Axis != AxisY {
			return nil, c.fatal(KindStructuralError, scope, "", "mirror has unknown axis %d", v.Axis)
		}
		return mirrorPixmap(pm, v.Axis), nil
	case Rotate:
		if v.Degrees%90 != 0 || v.Degrees < 0 || v.Degrees > 270 {
			return nil, c.fatal(KindStructuralError, scope, "",
				"rotate by %d degrees; only quarter turns are supported", v.Degrees)
		}
		return rotatePixmap(pm, v.Degrees), nil
	case Recolor:
		return recolorPixmap(pm, v, table, scope, c), nil
	case Tile:
		if v.NX < 1 || v.NY < 1 {
			return nil, c.fatal(KindStructuralError, scope, "", "tile count %dx%d is not positive", v.NX, v.NY)
		}
		return tilePixmap(pm, v.NX, v.NY), nil
	case Pad:
		if v.Left < 0 || v.Right < 0 || v.Top < 0 || v.Bottom < 0 {
			return nil, c.fatal(KindStructuralError, scope, "", "pad has negative margins")
		}
		return padPixmap(pm, v), nil
	case Crop:
		if v.W < 0 || v.H < 0 {
			return nil, c.fatal(KindStructuralError, scope, "", "crop has negative size %dx%d", v.W, v.H)
		}
		return cropPixmap(pm, v), nil
	case Shift:
		return shiftPixmap(pm, v), nil
	}
	return nil, c.fatal(KindStructuralError, scope, "", "unsupported derivation op %T", op)
}

func mirrorPixmap(pm *Pixmap, axis Axis) *Pixmap {
	w, h := pm.Width(), pm.Height()
	out := NewPixmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if axis == AxisX {
				out.SetPixel(w-1-x, y, pm.GetPixel(x, y))
			} else {
				out.SetPixel(x, h-1-y, pm.GetPixel(x, y))
			}
		}
	}
	return out
}

func rotatePixmap(pm *Pixmap, degrees int) *Pixmap {
	w, h := pm.Width(), pm.Height()
	var out *Pixmap
	switch degrees {
	case 0:
		return pm.Clone()
	case 90:
		out = NewPixmap(h, w)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out.SetPixel(h-1-y, x, pm.GetPixel(x, y))
			}
		}
	case 180:
		out = NewPixmap(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out.SetPixel(w-1-x, h-1-y, pm.GetPixel(x, y))
			}
		}
	case 270:
		out = NewPixmap(h, w)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out.SetPixel(y, w-1-x, pm.GetPixel(x, y))
			}
		}
	}
	return out
}

// recolorPixmap substitutes exact 8-bit colors. The mapping is built from
// resolved tokens first (in sorted order, so collisions are deterministic)
// and then applied in one pass over the original pixels.
func recolorPixmap(pm *Pixmap, ops Recolor, table colorTable, scope string, c *collector) *Pixmap {
	subst := make(map[[4]uint8][4]uint8, len(ops))
	for _, from := range slices.Sorted(maps.Keys(ops)) {
		to := ops[from]
		fromCol := lookupToken(table, from, scope, c)
		toCol := lookupToken(table, to, scope, c)
		subst[colorKey(fromCol)] = colorKey(toCol)
	}

	out := pm.Clone()
	data := out.Data()
	for i := 0; i < len(data); i += 4 {
		key := [4]uint8{data[i], data[i+1], data[i+2], data[i+3]}
		if repl, ok := subst[key]; ok {
			data[i], data[i+1], data[i+2], data[i+3] = repl[0], repl[1], repl[2], repl[3]
		}
	}
	return out
}

// colorKey quantizes a color to its 8-bit buffer representation.
func colorKey(c RGBA) [4]uint8 {
	return [4]uint8{
		uint8(clamp255(c.R * 255)),
		uint8(clamp255(c.G * 255)),
		uint8(clamp255(c.B * 255)),
		uint8(clamp255(c.A * 255)),
	}
}

func tilePixmap(pm *Pixmap, nx, ny int) *Pixmap {
	w, h := pm.Width(), pm.Height()
	out := NewPixmap(w*nx, h*ny)
	for ty := 0; ty < ny; ty++ {
		for tx := 0; tx < nx; tx++ {
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					out.SetPixel(tx*w+x, ty*h+y, pm.GetPixel(x, y))
				}
			}
		}
	}
	return out
}

func padPixmap(pm *Pixmap, v Pad) *Pixmap {
	w, h := pm.Width(), pm.Height()
	out := NewPixmap(w+v.Left+v.Right, h+v.Top+v.Bottom)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.SetPixel(v.Left+x, v.Top+y, pm.GetPixel(x, y))
		}
	}
	return out
}

func cropPixmap(pm *Pixmap, v Crop) *Pixmap {
	out := NewPixmap(v.W, v.H)
	for y := 0; y < v.H; y++ {
		for x := 0; x < v.W; x++ {
			// GetPixel returns Transparent outside the source.
			out.SetPixel(x, y, pm.GetPixel(v.X+x, v.Y+y))
		}
	}
	return out
}

func shiftPixmap(pm *Pixmap, v Shift) *Pixmap {
	w, h := pm.Width(), pm.Height()
	out := NewPixmap(w, h)
	if w == 0 || h == 0 {
		return out
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			nx, ny := x+v.DX, y+v.DY
			if v.Wrap {
				nx = ((nx % w) + w) % w
				ny = ((ny % h) + h) % h
			}
			out.SetPixel(nx, ny, pm.GetPixel(x, y))
		}
	}
	return out
}
