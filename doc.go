// Package px renders declarative pixel art.
//
// # Overview
//
// px compiles token-based sprite and composition descriptions into raster
// images. Authors describe sprites as named color regions built from
// geometric primitives, boolean set operations, and boundary-relative
// fills over a semantic palette, rather than as raw pixel grids. A second
// layer, composition, arranges rendered sprites on a tile grid with
// per-layer blend modes.
//
// # Quick Start
//
//	import "github.com/pixelform/px"
//
//	r := px.NewRenderer(
//		px.WithPalettes(px.Palette{
//			Name:   "default",
//			Colors: map[string]string{"ink": "#1a1c2c", "sky": "#41a6f6"},
//		}),
//		px.WithSprites(&px.Sprite{
//			Name: "tile", W: 8, H: 8,
//			Regions: []px.Region{
//				{Token: "sky", Shape: px.Rect{X: 0, Y: 0, W: 8, H: 8}},
//				{Token: "ink", Shape: px.Stroke{X: 0, Y: 0, W: 8, H: 8}},
//			},
//		}),
//	)
//
//	pm, diags, err := r.RenderSprite("tile")
//	if err != nil {
//		// diags carries the structured failure detail
//	}
//	_ = pm.SavePNG("tile.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: Renderer, Sprite, Composition, Shape variants, Pixmap
//   - Internal: raster (pixel sets, scan conversion, flood analysis),
//     blend (compositing math), motion (keyframe interpolation)
//
// Rendering is purely computational and synchronous: no I/O, no implicit
// parallelism. Palettes, sprites, and compositions are immutable inputs;
// pixel buffers and diagnostics are created fresh per render call and
// owned by the caller. Independent render calls may run concurrently.
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - All geometry is integer; there is no sub-pixel sampling
//
// # Diagnostics
//
// Render calls return a []Diagnostic alongside the buffer. In lenient mode
// recoverable conditions (unknown tokens, clipped geometry, mismatched
// cells) substitute well-defined fallbacks and are reported as warnings.
// In strict mode the same conditions are errors and the call returns no
// buffer. Structural defects in the input graph (forward references,
// malformed parameters) abort the call in both modes.
package px

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
