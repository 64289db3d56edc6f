package motion

import (
	"math"
	"testing"
)

const eps = 1e-5

func approx(a, b float64) bool { return math.Abs(a-b) <= eps }

// TestParseEasing verifies the easing name vocabulary.
func TestParseEasing(t *testing.T) {
	known := []string{"", "linear", "ease-in", "ease-out", "ease-in-out", "ease", "bounce", "elastic", "EASE-IN"}
	for _, name := range known {
		if _, ok := ParseEasing(name); !ok {
			t.Errorf("ParseEasing(%q) not recognized", name)
		}
	}
	if _, ok := ParseEasing("wobble"); ok {
		t.Error("ParseEasing(\"wobble\") should not be recognized")
	}
}

// TestTrackLinear checks exact midpoints and endpoint holds on a linear track.
func TestTrackLinear(t *testing.T) {
	fn, _ := ParseEasing("linear")
	tr := NewTrack([]Keyframe{{Frame: 0, Value: 0}, {Frame: 10, Value: 100}}, fn)

	tests := []struct {
		frame int
		want  float64
	}{
		{-3, 0},
		{0, 0},
		{3, 30},
		{5, 50},
		{10, 100},
		{15, 100},
	}
	for _, tt := range tests {
		if got := tr.Sample(tt.frame); !approx(got, tt.want) {
			t.Errorf("Sample(%d) = %v, want %v", tt.frame, got, tt.want)
		}
	}
}

// TestTrackEaseIn checks the quadratic ease-in curve at its midpoint.
func TestTrackEaseIn(t *testing.T) {
	fn, _ := ParseEasing("ease-in")
	tr := NewTrack([]Keyframe{{Frame: 0, Value: 0}, {Frame: 10, Value: 100}}, fn)
	if got := tr.Sample(5); !approx(got, 25) {
		t.Errorf("Sample(5) = %v, want 25", got)
	}
}

// TestTrackEaseInOut checks that ease-in-out crosses the exact midpoint.
func TestTrackEaseInOut(t *testing.T) {
	fn, _ := ParseEasing("ease-in-out")
	tr := NewTrack([]Keyframe{{Frame: 0, Value: 0}, {Frame: 8, Value: 64}}, fn)
	if got := tr.Sample(4); !approx(got, 32) {
		t.Errorf("Sample(4) = %v, want 32", got)
	}
}

// TestTrackMultiSegment samples a two-segment track out of order.
func TestTrackMultiSegment(t *testing.T) {
	tr := NewTrack([]Keyframe{{Frame: 0, Value: 0}, {Frame: 4, Value: 8}, {Frame: 8, Value: 0}}, nil)

	if got := tr.Sample(6); !approx(got, 4) {
		t.Errorf("Sample(6) = %v, want 4", got)
	}
	if got := tr.Sample(2); !approx(got, 4) {
		t.Errorf("Sample(2) = %v, want 4", got)
	}
	if got := tr.Sample(4); !approx(got, 8) {
		t.Errorf("Sample(4) = %v, want 8", got)
	}
}

// TestTrackUnsortedKeys verifies keyframes are ordered internally.
func TestTrackUnsortedKeys(t *testing.T) {
	tr := NewTrack([]Keyframe{{Frame: 10, Value: 100}, {Frame: 0, Value: 0}}, nil)
	if got := tr.Sample(5); !approx(got, 50) {
		t.Errorf("Sample(5) = %v, want 50", got)
	}
}

// TestTrackDegenerate covers empty and single-keyframe tracks.
func TestTrackDegenerate(t *testing.T) {
	if got := NewTrack(nil, nil).Sample(3); got != 0 {
		t.Errorf("empty track Sample = %v, want 0", got)
	}
	tr := NewTrack([]Keyframe{{Frame: 5, Value: 7}}, nil)
	for _, f := range []int{0, 5, 9} {
		if got := tr.Sample(f); !approx(got, 7) {
			t.Errorf("single-key track Sample(%d) = %v, want 7", f, got)
		}
	}
}

// TestTrackBounceEndpoints verifies bounce easing lands exactly on its
// keyframe values at segment boundaries.
func TestTrackBounceEndpoints(t *testing.T) {
	fn, _ := ParseEasing("bounce")
	tr := NewTrack([]Keyframe{{Frame: 0, Value: 0}, {Frame: 6, Value: 12}}, fn)
	if got := tr.Sample(0); !approx(got, 0) {
		t.Errorf("Sample(0) = %v, want 0", got)
	}
	if got := tr.Sample(6); !approx(got, 12) {
		t.Errorf("Sample(6) = %v, want 12", got)
	}
}

// TestPositionsLinear checks straight-line interpolation across frames.
func TestPositionsLinear(t *testing.T) {
	keys := []PointKeyframe{{Frame: 0, X: 0, Y: 0}, {Frame: 4, X: 8, Y: 4}}
	got := Positions(keys, 5, PathLinear, nil)
	want := []Position{{0, 0}, {2, 1}, {4, 2}, {6, 3}, {8, 4}}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !approx(got[i].X, want[i].X) || !approx(got[i].Y, want[i].Y) {
			t.Errorf("frame %d = (%v, %v), want (%v, %v)", i, got[i].X, got[i].Y, want[i].X, want[i].Y)
		}
	}
}

// TestPositionsHold verifies frames outside the keyframe range hold the
// nearest keyframe.
func TestPositionsHold(t *testing.T) {
	keys := []PointKeyframe{{Frame: 2, X: 3, Y: 3}, {Frame: 4, X: 5, Y: 3}}
	got := Positions(keys, 7, PathLinear, nil)

	for _, f := range []int{0, 1} {
		if !approx(got[f].X, 3) || !approx(got[f].Y, 3) {
			t.Errorf("frame %d = (%v, %v), want (3, 3)", f, got[f].X, got[f].Y)
		}
	}
	for _, f := range []int{5, 6} {
		if !approx(got[f].X, 5) || !approx(got[f].Y, 3) {
			t.Errorf("frame %d = (%v, %v), want (5, 3)", f, got[f].X, got[f].Y)
		}
	}
}

// TestPositionsArc verifies the parabolic lift peaks mid-segment and
// vanishes at the keyframes.
func TestPositionsArc(t *testing.T) {
	keys := []PointKeyframe{{Frame: 0, X: 0, Y: 0}, {Frame: 4, X: 10, Y: 0}}
	got := Positions(keys, 5, PathArc, nil)

	// height = 10 * 0.3 = 3; lift at et=0.5 is 4*3*0.25 = 3.
	if !approx(got[2].Y, -3) {
		t.Errorf("mid-arc Y = %v, want -3", got[2].Y)
	}
	if !approx(got[0].Y, 0) || !approx(got[4].Y, 0) {
		t.Errorf("arc endpoints Y = %v, %v, want 0, 0", got[0].Y, got[4].Y)
	}
	if !approx(got[2].X, 5) {
		t.Errorf("mid-arc X = %v, want 5", got[2].X)
	}
}

// TestPositionsDegenerate covers empty keyframes and zero frame counts.
func TestPositionsDegenerate(t *testing.T) {
	if got := Positions(nil, 3, PathLinear, nil); len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	} else {
		for i, p := range got {
			if p.X != 0 || p.Y != 0 {
				t.Errorf("frame %d = (%v, %v), want origin", i, p.X, p.Y)
			}
		}
	}
	if got := Positions([]PointKeyframe{{Frame: 0}}, 0, PathLinear, nil); got != nil {
		t.Errorf("zero frames should yield nil, got %v", got)
	}
}
