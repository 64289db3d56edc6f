// Package blend implements the per-pixel color math for layer compositing.
//
// Every mode shares one alpha-compositing envelope: the blended color is
// mixed source-over style, with the mode only deciding how the source and
// destination color channels combine where both are present. Channels are
// normalized float64 values in [0, 1]; quantization to 8-bit happens at the
// pixel-buffer boundary, not here.
package blend

// Mode selects the channel combination function used when compositing a
// source pixel onto a destination pixel.
type Mode int

const (
	// Normal replaces the destination channel with the source channel.
	Normal Mode = iota
	// Multiply darkens: s*d.
	Multiply
	// Screen lightens: 1-(1-s)(1-d).
	Screen
	// Darken keeps the darker channel.
	Darken
	// Lighten keeps the lighter channel.
	Lighten
	// Add sums and clamps: min(s+d, 1).
	Add
	// Subtract removes the source from the destination: max(d-s, 0).
	Subtract
	// Overlay multiplies or screens depending on the destination: d<0.5
	// gives 2sd, otherwise 1-2(1-s)(1-d).
	Overlay
	// Difference takes the absolute channel difference |d-s|.
	Difference
)

// Pixel composites one source pixel over one destination pixel using the
// mode's channel function inside the shared envelope:
//
//	outA   = sa + da·(1-sa)
//	outRGB = (blend(s,d)·sa + d·da·(1-sa)) / outA
//
// A zero output alpha yields the fully transparent pixel.
func Pixel(mode Mode, sr, sg, sb, sa, dr, dg, db, da float64) (r, g, b, a float64) {
	outA := sa + da*(1-sa)
	if outA == 0 {
		return 0, 0, 0, 0
	}

	f := channelFunc(mode)
	r = (f(sr, dr)*sa + dr*da*(1-sa)) / outA
	g = (f(sg, dg)*sa + dg*da*(1-sa)) / outA
	b = (f(sb, db)*sa + db*da*(1-sa)) / outA
	return r, g, b, outA
}

func channelFunc(mode Mode) func(s, d float64) float64 {
	switch mode {
	case Multiply:
		return func(s, d float64) float64 { return s * d }
	case Screen:
		return func(s, d float64) float64 { return 1 - (1-s)*(1-d) }
	case Darken:
		return func(s, d float64) float64 { return min(s, d) }
	case Lighten:
		return func(s, d float64) float64 { return max(s, d) }
	case Add:
		return func(s, d float64) float64 { return clamp01(s + d) }
	case Subtract:
		return func(s, d float64) float64 { return clamp01(d - s) }
	case Overlay:
		return func(s, d float64) float64 {
			if d < 0.5 {
				return 2 * s * d
			}
			return 1 - 2*(1-s)*(1-d)
		}
	case Difference:
		return func(s, d float64) float64 {
			if d > s {
				return d - s
			}
			return s - d
		}
	default:
		return func(s, _ float64) float64 { return s }
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
