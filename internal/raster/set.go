// Package raster converts shape primitives into canvas-bounded pixel sets.
//
// All algorithms operate on integer pixel coordinates. A Set is a bitset
// sized to the target canvas, so the boolean combinators (union, intersect,
// subtract) are word-wise operations. Writes outside the canvas are dropped
// at insertion time and tallied in a Clip so callers can report them.
package raster

import "math/bits"

// Point is an integer pixel coordinate (internal copy to avoid importing
// the root package).
type Point struct {
	X, Y int
}

// Set is a fixed-size bitset over a width×height pixel canvas.
type Set struct {
	w, h int
	bits []uint64
}

// NewSet creates an empty set for a w×h canvas.
// Negative dimensions are treated as zero.
func NewSet(w, h int) *Set {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Set{w: w, h: h, bits: make([]uint64, (w*h+63)/64)}
}

// Width returns the canvas width the set is bounded to.
func (s *Set) Width() int { return s.w }

// Height returns the canvas height the set is bounded to.
func (s *Set) Height() int { return s.h }

// Add inserts (x, y) into the set. It reports whether the coordinate lies
// inside the canvas; out-of-bounds writes are dropped.
func (s *Set) Add(x, y int) bool {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return false
	}
	i := y*s.w + x
	s.bits[i>>6] |= 1 << (i & 63)
	return true
}

// Has reports whether (x, y) is in the set. Out-of-bounds coordinates are
// never in the set.
func (s *Set) Has(x, y int) bool {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return false
	}
	i := y*s.w + x
	return s.bits[i>>6]&(1<<(i&63)) != 0
}

// Count returns the number of pixels in the set.
func (s *Set) Count() int {
	n := 0
	for _, w := range s.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// Union adds every pixel of other to s. Both sets must share canvas
// dimensions.
func (s *Set) Union(other *Set) {
	for i := range s.bits {
		s.bits[i] |= other.bits[i]
	}
}

// Intersect removes the pixels of s that are not in other.
func (s *Set) Intersect(other *Set) {
	for i := range s.bits {
		s.bits[i] &= other.bits[i]
	}
}

// Subtract removes every pixel of other from s.
func (s *Set) Subtract(other *Set) {
	for i := range s.bits {
		s.bits[i] &^= other.bits[i]
	}
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	c := &Set{w: s.w, h: s.h, bits: make([]uint64, len(s.bits))}
	copy(c.bits, s.bits)
	return c
}

// Equal reports whether s and other cover the same pixels of the same
// canvas.
func (s *Set) Equal(other *Set) bool {
	if s.w != other.w || s.h != other.h {
		return false
	}
	for i := range s.bits {
		if s.bits[i] != other.bits[i] {
			return false
		}
	}
	return true
}

// Each calls fn for every pixel in the set in row-major order.
func (s *Set) Each(fn func(x, y int)) {
	for y := 0; y < s.h; y++ {
		row := y * s.w
		for x := 0; x < s.w; x++ {
			i := row + x
			if s.bits[i>>6]&(1<<(i&63)) != 0 {
				fn(x, y)
			}
		}
	}
}

// MirrorX returns a copy of s reflected about the canvas's vertical center
// line (x' = w-1-x).
func (s *Set) MirrorX() *Set {
	m := NewSet(s.w, s.h)
	s.Each(func(x, y int) { m.Add(s.w-1-x, y) })
	return m
}

// MirrorY returns a copy of s reflected about the canvas's horizontal center
// line (y' = h-1-y).
func (s *Set) MirrorY() *Set {
	m := NewSet(s.w, s.h)
	s.Each(func(x, y int) { m.Add(x, s.h-1-y) })
	return m
}

// Clip tallies pixel writes dropped at the canvas boundary. Primitives that
// revisit a coordinate (stroke corners, polyline joints) count each dropped
// write, so Dropped is the number of rejected writes, not distinct pixels.
type Clip struct {
	Dropped int
	First   Point
}

func (c *Clip) drop(x, y int) {
	if c.Dropped == 0 {
		c.First = Point{X: x, Y: y}
	}
	c.Dropped++
}

// add inserts into dst, recording a drop when the write lands out of bounds.
func add(dst *Set, clip *Clip, x, y int) {
	if !dst.Add(x, y) {
		clip.drop(x, y)
	}
}
