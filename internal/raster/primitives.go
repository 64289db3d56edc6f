package raster

import (
	"math"
	"slices"
)

// Points inserts each explicit coordinate.
func Points(dst *Set, clip *Clip, pts []Point) {
	for _, p := range pts {
		add(dst, clip, p.X, p.Y)
	}
}

// FillRect inserts the full x..x+w-1 × y..y+h-1 cross product.
// Non-positive dimensions produce nothing.
func FillRect(dst *Set, clip *Clip, x, y, w, h int) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			add(dst, clip, px, py)
		}
	}
}

// StrokeRect inserts the rectangle's perimeter ring of the given thickness.
// A pixel belongs to the ring when its distance to the nearest vertical or
// horizontal rectangle edge is under the thickness. round > 0 chamfers the
// corners: cells whose combined edge distances fall under the radius are
// excluded.
func StrokeRect(dst *Set, clip *Clip, x, y, w, h, thickness, round int) {
	if w <= 0 || h <= 0 || thickness <= 0 {
		return
	}
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			dx := min(px-x, x+w-1-px)
			dy := min(py-y, y+h-1-py)
			if dx >= thickness && dy >= thickness {
				continue
			}
			if round > 0 && dx+dy < round {
				continue
			}
			add(dst, clip, px, py)
		}
	}
}

// Polyline inserts a discrete line through the points in order. Each
// segment is walked with the integer Bresenham algorithm, producing one
// cell per unit step along the major axis, endpoints included.
func Polyline(dst *Set, clip *Clip, pts []Point) {
	if len(pts) == 1 {
		add(dst, clip, pts[0].X, pts[0].Y)
		return
	}
	for i := 0; i+1 < len(pts); i++ {
		line(dst, clip, pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y)
	}
}

func line(dst *Set, clip *Clip, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		add(dst, clip, x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// FillEllipse inserts every pixel whose integer offset (dx, dy) from the
// center satisfies dx²·ry² + dy²·rx² ≤ rx²·ry², i.e. pixel centers sampled
// against the ellipse equation. Zero radii produce an empty set.
func FillEllipse(dst *Set, clip *Clip, cx, cy, rx, ry int) {
	if rx <= 0 || ry <= 0 {
		return
	}
	rx2 := rx * rx
	ry2 := ry * ry
	bound := rx2 * ry2
	for dy := -ry; dy <= ry; dy++ {
		rem := bound - dy*dy*rx2
		if rem < 0 {
			continue
		}
		// Widest dx with dx²·ry² ≤ rem; the float guess is corrected to the
		// exact integer answer.
		dx := int(math.Sqrt(float64(rem) / float64(ry2)))
		for dx > 0 && dx*dx*ry2 > rem {
			dx--
		}
		for (dx+1)*(dx+1)*ry2 <= rem {
			dx++
		}
		for sx := -dx; sx <= dx; sx++ {
			add(dst, clip, cx+sx, cy+dy)
		}
	}
}

// FillCircle is FillEllipse with equal radii.
func FillCircle(dst *Set, clip *Clip, cx, cy, r int) {
	FillEllipse(dst, clip, cx, cy, r, r)
}

// FillPolygon inserts the even-odd scanline fill of the polygon. Vertices
// are always included, horizontal edges fill their full segment on their
// own scanline, and each non-horizontal edge contributes an intersection
// for scanlines with min(y) ≤ y < max(y) so shared vertices are counted
// exactly once. Fewer than three vertices produce nothing.
func FillPolygon(dst *Set, clip *Clip, pts []Point) {
	if len(pts) < 3 {
		return
	}

	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	for _, p := range pts {
		add(dst, clip, p.X, p.Y)
	}

	var xs []int
	for y := minY; y <= maxY; y++ {
		xs = xs[:0]
		for i := range pts {
			j := (i + 1) % len(pts)
			x1, y1 := pts[i].X, pts[i].Y
			x2, y2 := pts[j].X, pts[j].Y
			if y1 == y2 {
				if y1 == y {
					for x := min(x1, x2); x <= max(x1, x2); x++ {
						add(dst, clip, x, y)
					}
				}
				continue
			}
			if y >= min(y1, y2) && y < max(y1, y2) {
				xs = append(xs, x1+(y-y1)*(x2-x1)/(y2-y1))
			}
		}
		slices.Sort(xs)
		for k := 0; k+1 < len(xs); k += 2 {
			for x := xs[k]; x <= xs[k+1]; x++ {
				add(dst, clip, x, y)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
