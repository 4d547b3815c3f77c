// Package svgstyle implements the style record attached to SVG
// elements: a property bag with an explicit "specified" bitmask, the
// default style, and the paint values (plain colors, currentColor,
// paint-server references) used by fills and strokes.
package svgstyle

import "fmt"

// Paint is the source of a fill or a stroke. It is one of Color,
// CurrentColor or PaintRef. A nil Paint means "none" (no painting).
type Paint interface {
	isPaint()
}

// Color is a plain color, packed as 0xRRGGBB. Alpha is carried by the
// opacity properties, not by the color itself.
type Color uint32

// Black is the default for both 'fill' and 'color'.
const Black Color = 0x000000

func (Color) isPaint() {}

// RGB returns the 8 bit components.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGBA implements image/color.Color (fully opaque).
func (c Color) RGBA() (r, g, b, a uint32) {
	rc, gc, bc := c.RGB()
	return uint32(rc) * 0x101, uint32(gc) * 0x101, uint32(bc) * 0x101, 0xffff
}

func (c Color) String() string { return fmt.Sprintf("#%06x", uint32(c)) }

// CurrentColor stands for the 'currentColor' keyword: it resolves at
// draw time to the element's cascaded 'color' property. It carries no
// state, so the variant itself is the marker.
type CurrentColor struct{}

func (CurrentColor) isPaint() {}

func (CurrentColor) String() string { return "currentColor" }

// PaintRef references a paint-server element (gradient or pattern) by
// id. Fallback is used when the reference cannot be resolved or points
// at an element of the wrong kind.
type PaintRef struct {
	Href     string
	Fallback Paint
}

func (PaintRef) isPaint() {}

func (p PaintRef) String() string { return fmt.Sprintf("%s %v", p.Href, p.Fallback) }

// ResolveCurrent replaces a CurrentColor paint by the resolved 'color'
// property of the style; other paints are returned unchanged. The
// color is read from the live style, never stored, since 'color' is
// itself inheritable.
func ResolveCurrent(p Paint, s *Style) Paint {
	if _, ok := p.(CurrentColor); ok {
		return s.Color
	}
	return p
}
