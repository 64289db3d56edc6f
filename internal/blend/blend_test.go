package blend

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < tolerance }

// TestNormalOpaqueReplaces verifies the round-trip contract: a fully opaque
// Normal source completely obscures any destination.
func TestNormalOpaqueReplaces(t *testing.T) {
	dests := []struct {
		name           string
		dr, dg, db, da float64
	}{
		{"opaque white", 1, 1, 1, 1},
		{"opaque black", 0, 0, 0, 1},
		{"half green", 0, 1, 0, 0.5},
		{"transparent", 0, 0, 0, 0},
	}
	for _, d := range dests {
		t.Run(d.name, func(t *testing.T) {
			r, g, b, a := Pixel(Normal, 0.8, 0.4, 0.2, 1, d.dr, d.dg, d.db, d.da)
			if !approx(r, 0.8) || !approx(g, 0.4) || !approx(b, 0.2) || !approx(a, 1) {
				t.Errorf("got (%.3f %.3f %.3f %.3f), want source verbatim", r, g, b, a)
			}
		})
	}
}

// TestTransparentSourceKeepsDestination verifies that zero source alpha
// leaves the destination untouched.
func TestTransparentSourceKeepsDestination(t *testing.T) {
	r, g, b, a := Pixel(Multiply, 1, 1, 1, 0, 0.3, 0.6, 0.9, 0.5)
	if !approx(r, 0.3) || !approx(g, 0.6) || !approx(b, 0.9) || !approx(a, 0.5) {
		t.Errorf("got (%.3f %.3f %.3f %.3f), want destination verbatim", r, g, b, a)
	}
}

// TestBothTransparent verifies the zero-alpha envelope short circuit.
func TestBothTransparent(t *testing.T) {
	r, g, b, a := Pixel(Screen, 1, 1, 1, 0, 1, 1, 1, 0)
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("got (%v %v %v %v), want all zero", r, g, b, a)
	}
}

// TestChannelFunctions verifies each mode's channel math on opaque pixels,
// where the envelope reduces to the raw blend function.
func TestChannelFunctions(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		s, d float64
		want float64
	}{
		{"normal", Normal, 0.25, 0.75, 0.25},
		{"multiply", Multiply, 0.5, 0.5, 0.25},
		{"multiply by black", Multiply, 0, 0.9, 0},
		{"screen", Screen, 0.5, 0.5, 0.75},
		{"screen with white", Screen, 1, 0.3, 1},
		{"darken", Darken, 0.2, 0.7, 0.2},
		{"lighten", Lighten, 0.2, 0.7, 0.7},
		{"add", Add, 0.4, 0.5, 0.9},
		{"add clamps", Add, 0.8, 0.8, 1},
		{"subtract", Subtract, 0.3, 0.9, 0.6},
		{"subtract clamps", Subtract, 0.9, 0.3, 0},
		{"overlay dark branch", Overlay, 0.5, 0.25, 0.25},
		{"overlay light branch", Overlay, 0.5, 0.75, 0.75},
		{"difference", Difference, 0.3, 0.8, 0.5},
		{"difference symmetric", Difference, 0.8, 0.3, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _, a := Pixel(tt.mode, tt.s, tt.s, tt.s, 1, tt.d, tt.d, tt.d, 1)
			if !approx(r, tt.want) {
				t.Errorf("channel = %.6f, want %.6f", r, tt.want)
			}
			if !approx(a, 1) {
				t.Errorf("alpha = %.6f, want 1", a)
			}
		})
	}
}

// TestEnvelopeAlpha verifies the source-over alpha accumulation for partial
// coverage.
func TestEnvelopeAlpha(t *testing.T) {
	_, _, _, a := Pixel(Normal, 1, 0, 0, 0.5, 0, 0, 1, 0.5)
	if !approx(a, 0.75) {
		t.Errorf("alpha = %.6f, want 0.75", a)
	}

	// 50% red over opaque blue: channels mix half and half.
	r, _, b, a := Pixel(Normal, 1, 0, 0, 0.5, 0, 0, 1, 1)
	if !approx(a, 1) || !approx(r, 0.5) || !approx(b, 0.5) {
		t.Errorf("got r=%.3f b=%.3f a=%.3f, want 0.5/0.5/1", r, b, a)
	}
}
