package svgdom

import (
	"github.com/benoitkugler/svgdom/svgpath"
	"github.com/benoitkugler/svgdom/svgunit"
)

// The closed set of element variants. Each struct composes the
// capability records it needs (container policy, transform,
// conditional processing, viewBox) and adds its own typed fields,
// populated by the parsing collaborator.

// Svg is the root document element.
type Svg struct {
	ElementBase
	anyChildren
	Conditional
	withViewBox

	X, Y          *svgunit.Length
	Width, Height *svgunit.Length
}

func (*Svg) Kind() Kind { return KindSvg }

// Group is a structural 'g' element.
type Group struct {
	ElementBase
	anyChildren
	Conditional
	withTransform
}

func (*Group) Kind() Kind { return KindGroup }

// Switch renders its first child whose conditional attributes match.
type Switch struct {
	ElementBase
	anyChildren
	Conditional
	withTransform
}

func (*Switch) Kind() Kind { return KindSwitch }

// Defs contains elements that are only referenced from elsewhere.
type Defs struct {
	ElementBase
	anyChildren
	Conditional
	withTransform
	notRendered
}

func (*Defs) Kind() Kind { return KindDefs }

// Symbol is a reusable template instantiated through 'use'.
type Symbol struct {
	ElementBase
	anyChildren
	Conditional
	withViewBox
	notRendered
}

func (*Symbol) Kind() Kind { return KindSymbol }

// View names a rectangular region of the document for partial
// rendering.
type View struct {
	ElementBase
	anyChildren
	Conditional
	withViewBox
	notRendered
}

func (*View) Kind() Kind { return KindView }

// Use instantiates the referenced element at a new position.
type Use struct {
	ElementBase
	anyChildren
	Conditional
	withTransform

	Href          string
	X, Y          *svgunit.Length
	Width, Height *svgunit.Length
}

func (*Use) Kind() Kind { return KindUse }

// graphicsBase is shared by the shape variants: conditional,
// transformable, not a container.
type graphicsBase struct {
	ElementBase
	Conditional
	withTransform
}

// Path draws an arbitrary outline from pre-compiled path data.
type Path struct {
	graphicsBase

	D          *svgpath.Path
	PathLength float64 // author-declared total length; 0 when not set
}

func (*Path) Kind() Kind { return KindPath }

type Rect struct {
	graphicsBase

	X, Y          *svgunit.Length
	Width, Height *svgunit.Length
	Rx, Ry        *svgunit.Length
}

func (*Rect) Kind() Kind { return KindRect }

type Circle struct {
	graphicsBase

	Cx, Cy *svgunit.Length
	R      *svgunit.Length
}

func (*Circle) Kind() Kind { return KindCircle }

type Ellipse struct {
	graphicsBase

	Cx, Cy *svgunit.Length
	Rx, Ry *svgunit.Length
}

func (*Ellipse) Kind() Kind { return KindEllipse }

type Line struct {
	graphicsBase

	X1, Y1 *svgunit.Length
	X2, Y2 *svgunit.Length
}

func (*Line) Kind() Kind { return KindLine }

// Polyline holds its vertices as flat (x, y) pairs.
type Polyline struct {
	graphicsBase

	Points []float64
}

func (*Polyline) Kind() Kind { return KindPolyline }

// Polygon is a closed polyline.
type Polygon struct {
	Polyline
}

func (*Polygon) Kind() Kind { return KindPolygon }

// Image places an external raster image, resolved at render time
// through the document's FileResolver.
type Image struct {
	ElementBase
	anyChildren
	Conditional
	withTransform
	withAspectRatio

	Href          string
	X, Y          *svgunit.Length
	Width, Height *svgunit.Length
}

func (*Image) Kind() Kind { return KindImage }

// textPosition holds the per-glyph position lists shared by 'text'
// and 'tspan'.
type textPosition struct {
	X, Y   []svgunit.Length
	Dx, Dy []svgunit.Length
}

// Text is the root of a text run.
type Text struct {
	ElementBase
	textChildren
	Conditional
	withTransform
	textPosition
}

func (*Text) Kind() Kind { return KindText }

// TSpan positions a sub-run inside a text element.
type TSpan struct {
	ElementBase
	textChildren
	Conditional
	textPosition
}

func (*TSpan) Kind() Kind { return KindTSpan }

// TRef includes the character content of the referenced element.
type TRef struct {
	ElementBase
	textChildren
	Conditional

	Href string
}

func (*TRef) Kind() Kind { return KindTRef }

// TextPath lays text out along the referenced path.
type TextPath struct {
	ElementBase
	textChildren
	Conditional

	Href        string
	StartOffset *svgunit.Length
}

func (*TextPath) Kind() Kind { return KindTextPath }

// TextSequence is a run of character data. It is a tree node but not
// an element: it has no id and no style of its own.
type TextSequence struct {
	NodeBase

	Text string
}

func (*TextSequence) Kind() Kind { return KindTextSequence }

// UnitsType selects the coordinate system of paint-server content.
type UnitsType uint8

const (
	ObjectBoundingBox UnitsType = iota
	UserSpaceOnUse
)

func (u UnitsType) String() string {
	switch u {
	case ObjectBoundingBox:
		return "objectBoundingBox"
	case UserSpaceOnUse:
		return "userSpaceOnUse"
	default:
		return "<unknown UnitsType>"
	}
}

// SpreadMethod tells how a gradient behaves outside its stops.
type SpreadMethod uint8

const (
	PadSpread SpreadMethod = iota
	ReflectSpread
	RepeatSpread
)

func (s SpreadMethod) String() string {
	switch s {
	case PadSpread:
		return "pad"
	case ReflectSpread:
		return "reflect"
	case RepeatSpread:
		return "repeat"
	default:
		return "<unknown SpreadMethod>"
	}
}

// gradientBase is shared by the two gradient variants. Only 'stop'
// children are accepted.
type gradientBase struct {
	ElementBase
	stopChildren
	withTransform // gradientTransform

	Units  UnitsType
	Spread SpreadMethod
	Href   string // template gradient to inherit stops/fields from
}

type LinearGradient struct {
	gradientBase

	X1, Y1 *svgunit.Length
	X2, Y2 *svgunit.Length
}

func (*LinearGradient) Kind() Kind { return KindLinearGradient }

type RadialGradient struct {
	gradientBase

	Cx, Cy *svgunit.Length
	R      *svgunit.Length
	Fx, Fy *svgunit.Length
}

func (*RadialGradient) Kind() Kind { return KindRadialGradient }

// Stop is a gradient color stop; its color and opacity come from the
// cascaded stop-color/stop-opacity properties.
type Stop struct {
	ElementBase
	noChildren

	Offset float64 // in [0, 1]
}

func (*Stop) Kind() Kind { return KindStop }

// Pattern tiles its content as a paint server.
type Pattern struct {
	ElementBase
	anyChildren
	Conditional
	withViewBox
	withTransform // patternTransform
	notRendered

	Units         UnitsType
	ContentUnits  UnitsType
	X, Y          *svgunit.Length
	Width, Height *svgunit.Length
	Href          string
}

func (*Pattern) Kind() Kind { return KindPattern }

// ClipPath defines a clipping outline applied through the 'clip-path'
// property.
type ClipPath struct {
	ElementBase
	anyChildren
	Conditional
	withTransform
	notRendered

	Units UnitsType
}

func (*ClipPath) Kind() Kind { return KindClipPath }

// Mask defines a luminance mask applied through the 'mask' property.
type Mask struct {
	ElementBase
	anyChildren
	Conditional
	notRendered

	Units         UnitsType
	ContentUnits  UnitsType
	X, Y          *svgunit.Length
	Width, Height *svgunit.Length
}

func (*Mask) Kind() Kind { return KindMask }

// Marker is a symbol drawn at the vertices of a stroked path.
type Marker struct {
	ElementBase
	anyChildren
	Conditional
	withViewBox
	notRendered

	UnitsAreUser bool // true for markerUnits="userSpaceOnUse"
	RefX, RefY   *svgunit.Length
	MarkerWidth  *svgunit.Length
	MarkerHeight *svgunit.Length
	Orient       *float64 // rotation in degrees; nil means "auto"
}

func (*Marker) Kind() Kind { return KindMarker }
