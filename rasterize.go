package px

import "github.com/pixelform/px/internal/raster"

// rasterizeShape converts one region's shape into a canvas-bounded pixel
// set. prior holds the post-symmetry sets of regions rasterized earlier,
// keyed by token, for FillInside consumption. The returned Clip tallies
// writes dropped at the canvas boundary across the whole shape tree.
func rasterizeShape(s Shape, w, h int, prior map[string]*raster.Set) (*raster.Set, raster.Clip) {
	var clip raster.Clip
	set := rasterize(s, w, h, prior, &clip)
	return set, clip
}

func rasterize(s Shape, w, h int, prior map[string]*raster.Set, clip *raster.Clip) *raster.Set {
	set := raster.NewSet(w, h)
	switch v := s.(type) {
	case Points:
		raster.Points(set, clip, toRasterPoints(v))
	case Rect:
		raster.FillRect(set, clip, v.X, v.Y, v.W, v.H)
	case Stroke:
		t := v.Thickness
		if t == 0 {
			t = 1
		}
		raster.StrokeRect(set, clip, v.X, v.Y, v.W, v.H, t, v.Round)
	case Line:
		raster.Polyline(set, clip, toRasterPoints(v))
	case Circle:
		raster.FillCircle(set, clip, v.CX, v.CY, v.R)
	case Ellipse:
		raster.FillEllipse(set, clip, v.CX, v.CY, v.RX, v.RY)
	case Polygon:
		raster.FillPolygon(set, clip, toRasterPoints(v))
	case Union:
		for _, child := range v {
			set.Union(rasterize(child, w, h, prior, clip))
		}
	case Intersect:
		for i, child := range v {
			cs := rasterize(child, w, h, prior, clip)
			if i == 0 {
				set = cs
			} else {
				set.Intersect(cs)
			}
		}
	case Subtract:
		set = rasterize(v.Base, w, h, prior, clip)
		for _, child := range v.Remove {
			set.Subtract(rasterize(child, w, h, prior, clip))
		}
	case FillInside:
		set = fillInside(v, w, h, prior)
	}
	return set
}

// fillInside classifies enclosure. The named boundary regions become
// walls; every non-wall cell reachable from a canvas edge is outside; the
// enclosed remainder, minus the except regions, is the result. A boundary
// touching the canvas edge encloses nothing there.
func fillInside(v FillInside, w, h int, prior map[string]*raster.Set) *raster.Set {
	walls := raster.NewSet(w, h)
	for _, token := range v.Boundaries {
		if bs, ok := prior[token]; ok {
			walls.Union(bs)
		}
	}
	inside := raster.Inside(walls)
	for _, token := range v.Except {
		if es, ok := prior[token]; ok {
			inside.Subtract(es)
		}
	}
	return inside
}

// walkFillRefs calls fn for every region token referenced by FillInside
// shapes anywhere in the tree, boundaries and excepts alike.
func walkFillRefs(s Shape, fn func(token string)) {
	switch v := s.(type) {
	case FillInside:
		for _, t := range v.Boundaries {
			fn(t)
		}
		for _, t := range v.Except {
			fn(t)
		}
	case Union:
		for _, child := range v {
			walkFillRefs(child, fn)
		}
	case Intersect:
		for _, child := range v {
			walkFillRefs(child, fn)
		}
	case Subtract:
		walkFillRefs(v.Base, fn)
		for _, child := range v.Remove {
			walkFillRefs(child, fn)
		}
	}
}

func toRasterPoints(pts []Point) []raster.Point {
	out := make([]raster.Point, len(pts))
	for i, p := range pts {
		out[i] = raster.Point{X: p.X, Y: p.Y}
	}
	return out
}
