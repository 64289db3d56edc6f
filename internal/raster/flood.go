package raster

// Inside returns the pixels enclosed by the wall set: every non-wall pixel
// from which no 4-connected path reaches the canvas edge. The classification
// floods inward from all edge cells, so a boundary that touches the canvas
// edge has no interior on that side. Wall pixels are not part of the result.
func Inside(walls *Set) *Set {
	w, h := walls.w, walls.h
	inside := NewSet(w, h)
	if w == 0 || h == 0 {
		return inside
	}

	outside := NewSet(w, h)
	queue := make([]Point, 0, 2*(w+h))
	push := func(x, y int) {
		if walls.Has(x, y) || outside.Has(x, y) {
			return
		}
		outside.Add(x, y)
		queue = append(queue, Point{X: x, Y: y})
	}

	for x := 0; x < w; x++ {
		push(x, 0)
		push(x, h-1)
	}
	for y := 0; y < h; y++ {
		push(0, y)
		push(w-1, y)
	}

	for head := 0; head < len(queue); head++ {
		p := queue[head]
		if p.X > 0 {
			push(p.X-1, p.Y)
		}
		if p.X < w-1 {
			push(p.X+1, p.Y)
		}
		if p.Y > 0 {
			push(p.X, p.Y-1)
		}
		if p.Y < h-1 {
			push(p.X, p.Y+1)
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !walls.Has(x, y) && !outside.Has(x, y) {
				inside.Add(x, y)
			}
		}
	}
	return inside
}
