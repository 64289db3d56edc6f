// Package motion interpolates keyframed values across animation frames.
//
// Scalar tracks drive single channels (opacity), point tracks drive
// per-frame position offsets. Interpolation timing runs through the gween
// easing library; the accepted easing names mirror the authoring
// vocabulary (linear, ease-in, ease-out, ease-in-out, bounce, elastic).
package motion

import (
	"math"
	"sort"
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ParseEasing maps an easing name to its gween function. The empty string
// means linear. The second result reports whether the name is known.
func ParseEasing(name string) (ease.TweenFunc, bool) {
	switch strings.ToLower(name) {
	case "", "linear":
		return ease.Linear, true
	case "ease-in", "easein":
		return ease.InQuad, true
	case "ease-out", "easeout":
		return ease.OutQuad, true
	case "ease-in-out", "easeinout", "ease":
		return ease.InOutQuad, true
	case "bounce":
		return ease.OutBounce, true
	case "elastic":
		return ease.OutElastic, true
	}
	return nil, false
}

// Keyframe pins a scalar value at a frame index.
type Keyframe struct {
	Frame int
	Value float64
}

// Track interpolates a scalar across frames. Frames before the first
// keyframe hold the first value; frames past the last hold the last value.
//
// A Track is not safe for concurrent use: sampling advances the underlying
// tween state.
type Track struct {
	keys []Keyframe
	segs []*gween.Tween
	fn   ease.TweenFunc
}

// NewTrack builds a track from keyframes (sorted by frame internally) and
// an easing function. A nil easing function means linear.
func NewTrack(keys []Keyframe, fn ease.TweenFunc) *Track {
	if fn == nil {
		fn = ease.Linear
	}
	sorted := make([]Keyframe, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Frame < sorted[j].Frame })

	t := &Track{keys: sorted, fn: fn}
	for i := 0; i+1 < len(sorted); i++ {
		a, b := sorted[i], sorted[i+1]
		span := float32(b.Frame - a.Frame)
		if span <= 0 {
			t.segs = append(t.segs, nil)
			continue
		}
		t.segs = append(t.segs, gween.New(float32(a.Value), float32(b.Value), span, fn))
	}
	return t
}

// Sample returns the track value at the given frame.
func (t *Track) Sample(frame int) float64 {
	if len(t.keys) == 0 {
		return 0
	}
	if frame <= t.keys[0].Frame {
		return t.keys[0].Value
	}
	last := t.keys[len(t.keys)-1]
	if frame >= last.Frame {
		return last.Value
	}
	for i := 0; i+1 < len(t.keys); i++ {
		a, b := t.keys[i], t.keys[i+1]
		if frame < a.Frame || frame > b.Frame {
			continue
		}
		if t.segs[i] == nil {
			return b.Value
		}
		v, _ := t.segs[i].Set(float32(frame - a.Frame))
		return float64(v)
	}
	return last.Value
}

// Path selects how positions travel between keyframes.
type Path int

const (
	// PathLinear moves in a straight line between keyframes.
	PathLinear Path = iota
	// PathArc adds a parabolic lift peaking mid-segment, proportional to
	// the horizontal distance traveled. Suited to throw and jump motion.
	PathArc
)

// PointKeyframe pins a position at a frame index.
type PointKeyframe struct {
	Frame int
	X, Y  float64
}

// Position is an interpolated point sample.
type Position struct {
	X, Y float64
}

// Positions generates one position per frame in [0, frames), interpolating
// between surrounding keyframes with the easing function and path. Frames
// outside the keyframe range hold the nearest keyframe's position; an empty
// keyframe list yields all-zero positions.
func Positions(keys []PointKeyframe, frames int, path Path, fn ease.TweenFunc) []Position {
	if frames <= 0 {
		return nil
	}
	if fn == nil {
		fn = ease.Linear
	}
	sorted := make([]PointKeyframe, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Frame < sorted[j].Frame })

	out := make([]Position, frames)
	for f := range out {
		out[f] = positionAt(sorted, f, path, fn)
	}
	return out
}

func positionAt(keys []PointKeyframe, frame int, path Path, fn ease.TweenFunc) Position {
	var prev, next *PointKeyframe
	for i := range keys {
		k := &keys[i]
		if k.Frame <= frame {
			prev = k
		}
		if k.Frame >= frame && next == nil {
			next = k
		}
	}
	switch {
	case prev == nil && next == nil:
		return Position{}
	case prev == nil:
		return Position{X: next.X, Y: next.Y}
	case next == nil:
		return Position{X: prev.X, Y: prev.Y}
	case prev.Frame == next.Frame:
		return Position{X: prev.X, Y: prev.Y}
	}

	tw := gween.New(0, 1, float32(next.Frame-prev.Frame), fn)
	v, _ := tw.Set(float32(frame - prev.Frame))
	et := float64(v)

	pos := Position{
		X: prev.X + (next.X-prev.X)*et,
		Y: prev.Y + (next.Y-prev.Y)*et,
	}
	if path == PathArc {
		// Lift peaks at 30% of the horizontal travel, upward in pixel
		// coordinates.
		height := math.Abs(next.X-prev.X) * 0.3
		pos.Y -= 4 * height * et * (1 - et)
	}
	return pos
}
