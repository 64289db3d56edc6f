package px

// RendererOption configures a Renderer during creation.
// Use functional options to register inputs and select the diagnostic
// mode.
//
// Example:
//
//	r := px.NewRenderer(
//		px.WithPalettes(palettes...),
//		px.WithSprites(sprites...),
//		px.WithStrict(true),
//	)
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	palettes     []Palette
	sprites      []*Sprite
	compositions []*Composition
	animations   []*Animation
	strict       bool
}

// defaultOptions returns the default renderer options: no registered
// inputs, lenient mode.
func defaultOptions() rendererOptions {
	return rendererOptions{}
}

// WithPalettes registers named palettes. A palette named "default" is the
// one a zero PaletteRef resolves to. Registering the same name twice keeps
// the later palette.
func WithPalettes(ps ...Palette) RendererOption {
	return func(o *rendererOptions) {
		o.palettes = append(o.palettes, ps...)
	}
}

// WithSprites registers sprites for rendering and for reference from
// compositions, derivations, and animations.
func WithSprites(ss ...*Sprite) RendererOption {
	return func(o *rendererOptions) {
		o.sprites = append(o.sprites, ss...)
	}
}

// WithCompositions registers compositions for rendering and for reference
// from base layers.
func WithCompositions(cs ...*Composition) RendererOption {
	return func(o *rendererOptions) {
		o.compositions = append(o.compositions, cs...)
	}
}

// WithAnimations registers animations.
func WithAnimations(as ...*Animation) RendererOption {
	return func(o *rendererOptions) {
		o.animations = append(o.animations, as...)
	}
}

// WithStrict selects the diagnostic mode for every render call made
// through the renderer. In strict mode, recoverable conditions that would
// be warnings become errors and failing calls return no buffer. The mode
// never varies within one call.
func WithStrict(strict bool) RendererOption {
	return func(o *rendererOptions) {
		o.strict = strict
	}
}
