package px

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/pixelform/px/internal/motion"
)

// ErrAnimationNotFound reports a render request for an unregistered
// animation name.
var ErrAnimationNotFound = errors.New("px: animation not found")

// defaultFrameDuration applies to frames that do not set a duration.
const defaultFrameDuration = 100 * time.Millisecond

// MotionPath selects the trajectory between motion keyframes.
type MotionPath int

const (
	// MotionLinear moves in a straight line between keyframes.
	MotionLinear MotionPath = iota
	// MotionArc adds a parabolic lift peaking mid-segment, suited to
	// throws and jumps.
	MotionArc
)

// MotionKeyframe pins a pixel offset at a frame index.
type MotionKeyframe struct {
	Frame  int
	Offset Point
}

// OpacityKeyframe pins an alpha multiplier in [0, 1] at a frame index.
type OpacityKeyframe struct {
	Frame int
	Value float64
}

// Motion interpolates per-frame offsets and opacity across an animation.
// Frames outside the keyframe range hold the nearest keyframe's value.
type Motion struct {
	Keyframes []MotionKeyframe
	Path      MotionPath
	// Easing names the timing curve: linear, ease-in, ease-out,
	// ease-in-out, bounce, or elastic. Empty means linear.
	Easing string
	// Opacity keyframes scale each frame's alpha in place.
	Opacity []OpacityKeyframe
}

// Frame is one animation step: a sprite reference and a display duration.
// A zero duration means the default of 100ms.
type Frame struct {
	Sprite   string
	Duration time.Duration
}

// Animation sequences sprite frames with optional keyframed motion.
type Animation struct {
	Name   string
	Frames []Frame
	Motion *Motion
}

// RenderedAnimation is the result of RenderAnimation. The three slices
// are index-aligned, one entry per animation frame.
type RenderedAnimation struct {
	// Frames holds the rendered buffers. Each is an independent copy.
	Frames []*Pixmap
	// Offsets holds the per-frame pixel offset from the motion track;
	// all zero without motion keyframes.
	Offsets []Point
	// Durations holds each frame's display duration.
	Durations []time.Duration
}

// RenderAnimation renders every frame of a registered animation and
// samples its motion track. Distinct sprites render once; repeated frames
// receive copies.
func (r *Renderer) RenderAnimation(name string) (*RenderedAnimation, []Diagnostic, error) {
	anim, ok := r.animations[name]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrAnimationNotFound, name)
	}
	Logger().Debug("render animation", "name", name, "frames", len(anim.Frames), "strict", r.strict)

	c := newCollector(r.strict)
	res, err := r.renderAnimation(anim, c)
	if err != nil {
		return nil, c.diags, err
	}
	if c.failed {
		return nil, c.diags, ErrStrict
	}
	return res, c.diags, nil
}

func (r *Renderer) renderAnimation(anim *Animation, c *collector) (*RenderedAnimation, error) {
	n := len(anim.Frames)
	if n == 0 {
		return nil, c.fatal(KindStructuralError, anim.Name, "", "animation has no frames")
	}

	easing := ""
	path := MotionLinear
	if anim.Motion != nil {
		easing = anim.Motion.Easing
		path = anim.Motion.Path
	}
	fn, ok := motion.ParseEasing(easing)
	if !ok {
		return nil, c.fatal(KindStructuralError, anim.Name, "", "unknown easing %q", easing)
	}
	if path != MotionLinear && path != MotionArc {
		return nil, c.fatal(KindStructuralError, anim.Name, "", "unknown motion path %d", int(path))
	}

	res := &RenderedAnimation{
		Frames:    make([]*Pixmap, 0, n),
		Offsets:   make([]Point, n),
		Durations: make([]time.Duration, 0, n),
	}

	// First frame fixes the animation dimensions; later frames conform.
	rendered := make(map[string]*Pixmap, n)
	var fw, fh int
	for i, f := range anim.Frames {
		if f.Duration < 0 {
			return nil, c.fatal(KindStructuralError, anim.Name, "",
				"frame %d has negative duration", i)
		}
		d := f.Duration
		if d == 0 {
			d = defaultFrameDuration
		}

		pm, done := rendered[f.Sprite]
		if !done {
			sp, exists := r.sprites[f.Sprite]
			if !exists {
				return nil, c.fatal(KindStructuralError, anim.Name, "",
					"frame %d references unknown sprite %q", i, f.Sprite)
			}
			var err error
			pm, err = r.renderSprite(sp, nil, c, nil)
			if err != nil {
				return nil, err
			}
			rendered[f.Sprite] = pm
		}
		if i == 0 {
			fw, fh = pm.Width(), pm.Height()
		} else if pm.Width() != fw || pm.Height() != fh {
			c.sizeMismatch(anim.Name, f.Sprite, pm.Width(), pm.Height(), fw, fh)
			pm = conformPixmap(pm, fw, fh)
		}
		res.Frames = append(res.Frames, pm.Clone())
		res.Durations = append(res.Durations, d)
	}

	if anim.Motion != nil && len(anim.Motion.Keyframes) > 0 {
		keys := make([]motion.PointKeyframe, len(anim.Motion.Keyframes))
		for i, k := range anim.Motion.Keyframes {
			keys[i] = motion.PointKeyframe{
				Frame: k.Frame,
				X:     float64(k.Offset.X),
				Y:     float64(k.Offset.Y),
			}
		}
		for i, p := range motion.Positions(keys, n, motion.Path(path), fn) {
			res.Offsets[i] = Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
		}
	}

	if anim.Motion != nil && len(anim.Motion.Opacity) > 0 {
		keys := make([]motion.Keyframe, len(anim.Motion.Opacity))
		for i, k := range anim.Motion.Opacity {
			keys[i] = motion.Keyframe{Frame: k.Frame, Value: k.Value}
		}
		track := motion.NewTrack(keys, fn)
		for i, frame := range res.Frames {
			v := track.Sample(i)
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			if v < 1 {
				scaleAlpha(frame, v)
			}
		}
	}
	return res, nil
}

// scaleAlpha multiplies every pixel's alpha in place.
func scaleAlpha(pm *Pixmap, mult float64) {
	data := pm.Data()
	for i := 3; i < len(data); i += 4 {
		data[i] = uint8(clamp255(float64(data[i]) * mult))
	}
}
