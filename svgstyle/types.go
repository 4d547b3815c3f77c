package svgstyle

import "github.com/benoitkugler/svgdom/svgunit"

// FillRule selects the winding rule used for fills and clips.
type FillRule uint8

const (
	NonZero FillRule = iota
	EvenOdd
)

func (f FillRule) String() string {
	switch f {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "<unknown FillRule>"
	}
}

// LineCap defines how to draw caps on the ends of stroked lines.
type LineCap uint8

const (
	ButtCap LineCap = iota
	RoundCap
	SquareCap
)

func (c LineCap) String() string {
	switch c {
	case ButtCap:
		return "butt"
	case RoundCap:
		return "round"
	case SquareCap:
		return "square"
	default:
		return "<unknown LineCap>"
	}
}

// LineJoin determines how stroke segments bridge the gap at a join.
type LineJoin uint8

const (
	MiterJoin LineJoin = iota
	RoundJoin
	BevelJoin
)

func (j LineJoin) String() string {
	switch j {
	case MiterJoin:
		return "miter"
	case RoundJoin:
		return "round"
	case BevelJoin:
		return "bevel"
	default:
		return "<unknown LineJoin>"
	}
}

// FontStyle is the slant of a font.
type FontStyle uint8

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
	FontStyleOblique
)

func (f FontStyle) String() string {
	switch f {
	case FontStyleNormal:
		return "normal"
	case FontStyleItalic:
		return "italic"
	case FontStyleOblique:
		return "oblique"
	default:
		return "<unknown FontStyle>"
	}
}

// Common font weights; other multiples of 100 are valid as well.
const (
	FontWeightNormal = 400
	FontWeightBold   = 700
)

// TextAnchor aligns a text run relative to its anchor point.
type TextAnchor uint8

const (
	AnchorStart TextAnchor = iota
	AnchorMiddle
	AnchorEnd
)

func (a TextAnchor) String() string {
	switch a {
	case AnchorStart:
		return "start"
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	default:
		return "<unknown TextAnchor>"
	}
}

// TextDecoration is the line decoration of a text run.
type TextDecoration uint8

const (
	DecorationNone TextDecoration = iota
	DecorationUnderline
	DecorationOverline
	DecorationLineThrough
	DecorationBlink
)

func (d TextDecoration) String() string {
	switch d {
	case DecorationNone:
		return "none"
	case DecorationUnderline:
		return "underline"
	case DecorationOverline:
		return "overline"
	case DecorationLineThrough:
		return "line-through"
	case DecorationBlink:
		return "blink"
	default:
		return "<unknown TextDecoration>"
	}
}

// ClipRect is the value of the deprecated 'clip' property.
type ClipRect struct {
	Top, Right, Bottom, Left svgunit.Length
}
