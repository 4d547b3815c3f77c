package svgstyle

import "github.com/benoitkugler/svgdom/svgunit"

// PropertySet is a bitmask with one bit per cascadable property,
// recording which properties a style explicitly sets. An unset bit
// always means "inherit or default", never "explicitly unset".
type PropertySet uint32

const (
	SpecifiedFill PropertySet = 1 << iota
	SpecifiedFillRule
	SpecifiedFillOpacity
	SpecifiedStroke
	SpecifiedStrokeOpacity
	SpecifiedStrokeWidth
	SpecifiedStrokeLineCap
	SpecifiedStrokeLineJoin
	SpecifiedStrokeMiterLimit
	SpecifiedStrokeDashArray
	SpecifiedStrokeDashOffset
	SpecifiedOpacity
	SpecifiedColor
	SpecifiedFontFamily
	SpecifiedFontSize
	SpecifiedFontWeight
	SpecifiedFontStyle
	SpecifiedTextDecoration
	SpecifiedTextAnchor
	SpecifiedOverflow
	SpecifiedClip
	SpecifiedMarkerStart
	SpecifiedMarkerMid
	SpecifiedMarkerEnd
	SpecifiedDisplay
	SpecifiedVisibility
	SpecifiedStopColor
	SpecifiedStopOpacity
	SpecifiedClipPath
	SpecifiedClipRule
	SpecifiedMask

	// SpecifiedAll marks every property as set (the default style).
	SpecifiedAll PropertySet = 1<<31 - 1
)

// Properties that apply per element and never flow down implicitly:
// they are reset at every container boundary before a child resolves.
const specifiedNonInheriting = SpecifiedDisplay | SpecifiedOverflow | SpecifiedClip |
	SpecifiedClipPath | SpecifiedOpacity | SpecifiedStopColor |
	SpecifiedStopOpacity | SpecifiedMask

// Has reports whether all properties of `flags` are in the set.
func (s PropertySet) Has(flags PropertySet) bool { return s&flags == flags }

// Style is the property bag of one cascade layer, or the fully
// resolved style of an element. Specified is the only way to know
// whether a property carries a value: a field equal to its default is
// still "specified" when its bit is set.
type Style struct {
	Specified PropertySet

	Fill        Paint // nil means "none"
	FillRule    FillRule
	FillOpacity float64

	Stroke           Paint // nil means "none"
	StrokeOpacity    float64
	StrokeWidth      svgunit.Length
	StrokeLineCap    LineCap
	StrokeLineJoin   LineJoin
	StrokeMiterLimit float64
	StrokeDashArray  []svgunit.Length // nil means "none"
	StrokeDashOffset svgunit.Length

	Opacity float64 // master opacity of both stroke and fill

	Color Color // target of 'currentColor' indirections

	FontFamily     []string
	FontSize       svgunit.Length
	FontWeight     int
	FontStyle      FontStyle
	TextDecoration TextDecoration
	TextAnchor     TextAnchor

	Overflow bool // true if overflow is visible
	Clip     *ClipRect

	MarkerStart string
	MarkerMid   string
	MarkerEnd   string

	Display    bool
	Visibility bool

	StopColor   Paint
	StopOpacity float64

	ClipPath string
	ClipRule FillRule

	Mask string
}

// Default is the style implicitly specified by the root element's
// (virtual) ancestor: every property populated, every bit set.
// It is built once and must be treated as immutable; the cascade
// clones it before mutating.
var Default = Style{
	Specified:        SpecifiedAll,
	Fill:             Black,
	FillRule:         NonZero,
	FillOpacity:      1,
	Stroke:           nil, // none
	StrokeOpacity:    1,
	StrokeWidth:      svgunit.PxLength(1),
	StrokeLineCap:    ButtCap,
	StrokeLineJoin:   MiterJoin,
	StrokeMiterLimit: 4,
	StrokeDashOffset: svgunit.PxLength(0),
	Opacity:          1,
	Color:            Black, // currentColor defaults to black
	FontSize:         svgunit.Length{Value: 12, Unit: svgunit.Pt},
	FontWeight:       FontWeightNormal,
	FontStyle:        FontStyleNormal,
	TextDecoration:   DecorationNone,
	TextAnchor:       AnchorStart,
	Overflow:         true, // visible for the root, reset for other elements
	Display:          true,
	Visibility:       true,
	StopColor:        Black,
	StopOpacity:      1,
	ClipRule:         NonZero,
}

// Clone returns an independent deep copy: the variable-length
// properties (dash array, font family list, clip rect) are duplicated
// so that sibling resolutions can never alias each other's values.
func (s *Style) Clone() *Style {
	out := *s
	if s.StrokeDashArray != nil {
		out.StrokeDashArray = append([]svgunit.Length(nil), s.StrokeDashArray...)
	}
	if s.FontFamily != nil {
		out.FontFamily = append([]string(nil), s.FontFamily...)
	}
	if s.Clip != nil {
		clip := *s.Clip
		out.Clip = &clip
	}
	return &out
}

// Apply copies into s every property that src explicitly sets,
// marking it as specified on s. This is the primitive each cascade
// layer is applied with, from lowest to highest precedence.
func (s *Style) Apply(src *Style) {
	if src == nil {
		return
	}
	flags := src.Specified
	if flags.Has(SpecifiedFill) {
		s.Fill = src.Fill
	}
	if flags.Has(SpecifiedFillRule) {
		s.FillRule = src.FillRule
	}
	if flags.Has(SpecifiedFillOpacity) {
		s.FillOpacity = src.FillOpacity
	}
	if flags.Has(SpecifiedStroke) {
		s.Stroke = src.Stroke
	}
	if flags.Has(SpecifiedStrokeOpacity) {
		s.StrokeOpacity = src.StrokeOpacity
	}
	if flags.Has(SpecifiedStrokeWidth) {
		s.StrokeWidth = src.StrokeWidth
	}
	if flags.Has(SpecifiedStrokeLineCap) {
		s.StrokeLineCap = src.StrokeLineCap
	}
	if flags.Has(SpecifiedStrokeLineJoin) {
		s.StrokeLineJoin = src.StrokeLineJoin
	}
	if flags.Has(SpecifiedStrokeMiterLimit) {
		s.StrokeMiterLimit = src.StrokeMiterLimit
	}
	if flags.Has(SpecifiedStrokeDashArray) {
		if src.StrokeDashArray == nil {
			s.StrokeDashArray = nil
		} else {
			s.StrokeDashArray = append([]svgunit.Length(nil), src.StrokeDashArray...)
		}
	}
	if flags.Has(SpecifiedStrokeDashOffset) {
		s.StrokeDashOffset = src.StrokeDashOffset
	}
	if flags.Has(SpecifiedOpacity) {
		s.Opacity = src.Opacity
	}
	if flags.Has(SpecifiedColor) {
		s.Color = src.Color
	}
	if flags.Has(SpecifiedFontFamily) {
		s.FontFamily = append([]string(nil), src.FontFamily...)
	}
	if flags.Has(SpecifiedFontSize) {
		s.FontSize = src.FontSize
	}
	if flags.Has(SpecifiedFontWeight) {
		s.FontWeight = src.FontWeight
	}
	if flags.Has(SpecifiedFontStyle) {
		s.FontStyle = src.FontStyle
	}
	if flags.Has(SpecifiedTextDecoration) {
		s.TextDecoration = src.TextDecoration
	}
	if flags.Has(SpecifiedTextAnchor) {
		s.TextAnchor = src.TextAnchor
	}
	if flags.Has(SpecifiedOverflow) {
		s.Overflow = src.Overflow
	}
	if flags.Has(SpecifiedClip) {
		s.Clip = src.Clip
		if s.Clip != nil {
			clip := *src.Clip
			s.Clip = &clip
		}
	}
	if flags.Has(SpecifiedMarkerStart) {
		s.MarkerStart = src.MarkerStart
	}
	if flags.Has(SpecifiedMarkerMid) {
		s.MarkerMid = src.MarkerMid
	}
	if flags.Has(SpecifiedMarkerEnd) {
		s.MarkerEnd = src.MarkerEnd
	}
	if flags.Has(SpecifiedDisplay) {
		s.Display = src.Display
	}
	if flags.Has(SpecifiedVisibility) {
		s.Visibility = src.Visibility
	}
	if flags.Has(SpecifiedStopColor) {
		s.StopColor = src.StopColor
	}
	if flags.Has(SpecifiedStopOpacity) {
		s.StopOpacity = src.StopOpacity
	}
	if flags.Has(SpecifiedClipPath) {
		s.ClipPath = src.ClipPath
	}
	if flags.Has(SpecifiedClipRule) {
		s.ClipRule = src.ClipRule
	}
	if flags.Has(SpecifiedMask) {
		s.Mask = src.Mask
	}
	s.Specified |= flags
}

// ResetNonInheriting restores the non-inheriting properties to their
// defaults. Called on the inherited working style at every container
// boundary, before a child's own layers apply.
func (s *Style) ResetNonInheriting() {
	s.Display = true
	s.Overflow = false
	s.Clip = nil
	s.ClipPath = ""
	s.Opacity = 1
	s.StopColor = Black
	s.StopOpacity = 1
	s.Mask = ""
}

// NonInheriting reports whether the flag belongs to the reset-at-
// boundary property subset.
func NonInheriting(flag PropertySet) bool {
	return specifiedNonInheriting.Has(flag)
}
