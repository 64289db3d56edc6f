package raster

import "testing"

// TestSetAddHas verifies in-bounds insertion and out-of-bounds rejection.
func TestSetAddHas(t *testing.T) {
	s := NewSet(8, 4)

	if !s.Add(0, 0) || !s.Add(7, 3) {
		t.Fatal("in-bounds Add rejected")
	}
	if s.Add(-1, 0) || s.Add(8, 0) || s.Add(0, -1) || s.Add(0, 4) {
		t.Error("out-of-bounds Add accepted")
	}

	if !s.Has(0, 0) || !s.Has(7, 3) {
		t.Error("inserted pixels missing")
	}
	if s.Has(1, 0) {
		t.Error("uninserted pixel present")
	}
	if s.Has(-1, 0) || s.Has(8, 3) {
		t.Error("out-of-bounds Has reported true")
	}
	if got := s.Count(); got != 2 {
		t.Errorf("Count = %d, want 2", got)
	}
}

// TestSetBoolean verifies union, intersection, and subtraction.
func TestSetBoolean(t *testing.T) {
	mk := func(pts ...Point) *Set {
		s := NewSet(4, 4)
		for _, p := range pts {
			s.Add(p.X, p.Y)
		}
		return s
	}

	a := mk(Point{0, 0}, Point{1, 0}, Point{2, 0})
	b := mk(Point{1, 0}, Point{2, 0}, Point{3, 0})

	u := a.Clone()
	u.Union(b)
	if got := u.Count(); got != 4 {
		t.Errorf("union Count = %d, want 4", got)
	}

	i := a.Clone()
	i.Intersect(b)
	if got := i.Count(); got != 2 {
		t.Errorf("intersect Count = %d, want 2", got)
	}
	if !i.Has(1, 0) || !i.Has(2, 0) {
		t.Error("intersection missing shared pixels")
	}

	d := a.Clone()
	d.Subtract(b)
	if got := d.Count(); got != 1 || !d.Has(0, 0) {
		t.Errorf("subtract left %d pixels, want only (0,0)", got)
	}
}

// TestSetMirrorX verifies reflection about the vertical center line on an
// even-width canvas: (1,1) maps to (6,1) on width 8.
func TestSetMirrorX(t *testing.T) {
	s := NewSet(8, 8)
	s.Add(1, 1)

	m := s.MirrorX()
	if m.Count() != 1 || !m.Has(6, 1) {
		t.Fatalf("MirrorX of (1,1) on width 8: want exactly (6,1)")
	}

	// Union with the reflection, then mirroring again is a no-op.
	s.Union(m)
	again := s.Clone()
	again.Union(s.MirrorX())
	if !again.Equal(s) {
		t.Error("mirroring an already-symmetric set changed it")
	}
}

// TestSetMirrorY verifies reflection about the horizontal center line.
func TestSetMirrorY(t *testing.T) {
	s := NewSet(3, 5)
	s.Add(2, 0)

	m := s.MirrorY()
	if m.Count() != 1 || !m.Has(2, 4) {
		t.Fatalf("MirrorY of (2,0) on height 5: want exactly (2,4)")
	}
}

// TestSetMirrorCenterColumn verifies that a pixel on the center column of an
// odd-width canvas maps to itself.
func TestSetMirrorCenterColumn(t *testing.T) {
	s := NewSet(5, 5)
	s.Add(2, 3)

	m := s.MirrorX()
	if !m.Equal(s) {
		t.Error("center-column pixel moved under MirrorX")
	}
}

// TestSetEach verifies row-major iteration order.
func TestSetEach(t *testing.T) {
	s := NewSet(3, 2)
	s.Add(2, 0)
	s.Add(0, 1)
	s.Add(1, 0)

	var got []Point
	s.Each(func(x, y int) { got = append(got, Point{x, y}) })

	want := []Point{{1, 0}, {2, 0}, {0, 1}}
	if len(got) != len(want) {
		t.Fatalf("Each visited %d pixels, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Each[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// TestClipRecordsFirstDrop verifies the drop tally and first coordinate.
func TestClipRecordsFirstDrop(t *testing.T) {
	s := NewSet(2, 2)
	var c Clip

	add(s, &c, 5, 7)
	add(s, &c, 1, 1)
	add(s, &c, -1, 0)

	if c.Dropped != 2 {
		t.Errorf("Dropped = %d, want 2", c.Dropped)
	}
	if c.First != (Point{5, 7}) {
		t.Errorf("First = %v, want (5,7)", c.First)
	}
	if s.Count() != 1 {
		t.Errorf("in-bounds write lost: Count = %d, want 1", s.Count())
	}
}
