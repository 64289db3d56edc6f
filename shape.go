package px

import "fmt"

// Shape is one geometry variant of a region. The set of implementations
// is closed: primitives enumerate their own pixels, the boolean variants
// combine child results, and FillInside derives its pixels from the
// enclosed interior of earlier regions.
type Shape interface {
	isShape()
}

// Points is an explicit list of pixel coordinates.
type Points []Point

// Rect is a filled axis-aligned rectangle with top-left corner (X, Y).
type Rect struct {
	X, Y, W, H int
}

// Stroke is a rectangle outline. Thickness 0 means one pixel. Round
// chamfers each corner by excluding the cells whose combined distance to
// the two nearest edges is below it.
type Stroke struct {
	X, Y, W, H int
	Thickness  int
	Round      int
}

// Line is a connected polyline, rasterized one cell per unit step.
type Line []Point

// Circle is a filled circle centered on the pixel (CX, CY).
type Circle struct {
	CX, CY, R int
}

// Ellipse is a filled axis-aligned ellipse centered on the pixel (CX, CY).
// A pixel is covered when dx²·RY² + dy²·RX² ≤ RX²·RY².
type Ellipse struct {
	CX, CY, RX, RY int
}

// Polygon is a filled polygon using the even-odd scanline rule. Vertices
// are always included.
type Polygon []Point

// Union combines child shapes with set union.
type Union []Shape

// Subtract removes the union of Remove from Base.
type Subtract struct {
	Base   Shape
	Remove []Shape
}

// Intersect combines child shapes with set intersection. An empty list
// yields the empty set.
type Intersect []Shape

// FillInside selects the pixels enclosed by the named boundary regions,
// minus the boundary pixels themselves and the pixels of each Except
// region. The named regions must be rasterized earlier in the sprite's
// region order.
type FillInside struct {
	Boundaries []string
	Except     []string
}

func (Points) isShape()     {}
func (Rect) isShape()       {}
func (Stroke) isShape()     {}
func (Line) isShape()       {}
func (Circle) isShape()     {}
func (Ellipse) isShape()    {}
func (Polygon) isShape()    {}
func (Union) isShape()      {}
func (Subtract) isShape()   {}
func (Intersect) isShape()  {}
func (FillInside) isShape() {}

// validateShape checks shape parameters recursively. Negative dimensions
// and radii are malformed input; empty lists and zero sizes are legal and
// rasterize to nothing.
func validateShape(s Shape) error {
	switch v := s.(type) {
	case nil:
		return fmt.Errorf("shape is nil")
	case Points, Line, Polygon, FillInside:
		return nil
	case Rect:
		if v.W < 0 || v.H < 0 {
			return fmt.Errorf("rect has negative size %dx%d", v.W, v.H)
		}
	case Stroke:
		if v.W < 0 || v.H < 0 {
			return fmt.Errorf("stroke has negative size %dx%d", v.W, v.H)
		}
		if v.Thickness < 0 {
			return fmt.Errorf("stroke has negative thickness %d", v.Thickness)
		}
		if v.Round < 0 {
			return fmt.Errorf("stroke has negative corner rounding %d", v.Round)
		}
	case Circle:
		if v.R < 0 {
			return fmt.Errorf("circle has negative radius %d", v.R)
		}
	case Ellipse:
		if v.RX < 0 || v.RY < 0 {
			return fmt.Errorf("ellipse has negative radius %dx%d", v.RX, v.RY)
		}
	case Union:
		for _, child := range v {
			if err := validateShape(child); err != nil {
				return err
			}
		}
	case Intersect:
		for _, child := range v {
			if err := validateShape(child); err != nil {
				return err
			}
		}
	case Subtract:
		if err := validateShape(v.Base); err != nil {
			return err
		}
		for _, child := range v.Remove {
			if err := validateShape(child); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unsupported shape %T", s)
	}
	return nil
}
