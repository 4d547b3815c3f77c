package svgdom

import (
	"github.com/benoitkugler/svgdom/svgpath"
	"github.com/benoitkugler/svgdom/svgunit"
)

// Fallback surface size when the document declares no usable size and
// the caller supplies none.
const (
	DefaultPictureWidth  = 512
	DefaultPictureHeight = 512
)

// Align is the alignment part of preserveAspectRatio.
type Align uint8

const (
	AlignNone Align = iota
	AlignXMinYMin
	AlignXMidYMin
	AlignXMaxYMin
	AlignXMinYMid
	AlignXMidYMid
	AlignXMaxYMid
	AlignXMinYMax
	AlignXMidYMax
	AlignXMaxYMax
)

func (a Align) String() string {
	switch a {
	case AlignNone:
		return "none"
	case AlignXMinYMin:
		return "xMinYMin"
	case AlignXMidYMin:
		return "xMidYMin"
	case AlignXMaxYMin:
		return "xMaxYMin"
	case AlignXMinYMid:
		return "xMinYMid"
	case AlignXMidYMid:
		return "xMidYMid"
	case AlignXMaxYMid:
		return "xMaxYMid"
	case AlignXMinYMax:
		return "xMinYMax"
	case AlignXMidYMax:
		return "xMidYMax"
	case AlignXMaxYMax:
		return "xMaxYMax"
	default:
		return "<unknown Align>"
	}
}

// MeetOrSlice selects between letterboxing and cropping when the
// view-box and viewport aspect ratios differ.
type MeetOrSlice uint8

const (
	Meet MeetOrSlice = iota
	Slice
)

// PreserveAspectRatio mirrors the preserveAspectRatio attribute.
type PreserveAspectRatio struct {
	Align       Align
	MeetOrSlice MeetOrSlice
}

// DefaultAspectRatio is the attribute's initial value, "xMidYMid meet".
var DefaultAspectRatio = PreserveAspectRatio{AlignXMidYMid, Meet}

// ViewBoxTransform computes the transform mapping view-box coordinates
// onto the viewport, honoring the given aspect-ratio policy (nil means
// the default). A degenerate view-box yields the identity.
func ViewBoxTransform(viewport, viewBox svgunit.Box, par *PreserveAspectRatio) svgpath.Matrix2D {
	if viewBox.Width <= 0 || viewBox.Height <= 0 {
		return svgpath.Identity
	}
	if par == nil {
		par = &DefaultAspectRatio
	}

	sx := viewport.Width / viewBox.Width
	sy := viewport.Height / viewBox.Height

	if par.Align == AlignNone {
		return svgpath.Identity.
			Translate(viewport.MinX, viewport.MinY).
			Scale(sx, sy).
			Translate(-viewBox.MinX, -viewBox.MinY)
	}

	scale := sx
	if par.MeetOrSlice == Meet {
		if sy < scale {
			scale = sy
		}
	} else if sy > scale {
		scale = sy
	}

	extraX := viewport.Width - viewBox.Width*scale
	extraY := viewport.Height - viewBox.Height*scale

	var dx, dy float64
	switch par.Align {
	case AlignXMidYMin, AlignXMidYMid, AlignXMidYMax:
		dx = extraX / 2
	case AlignXMaxYMin, AlignXMaxYMid, AlignXMaxYMax:
		dx = extraX
	}
	switch par.Align {
	case AlignXMinYMid, AlignXMidYMid, AlignXMaxYMid:
		dy = extraY / 2
	case AlignXMinYMax, AlignXMidYMax, AlignXMaxYMax:
		dy = extraY
	}

	return svgpath.Identity.
		Translate(viewport.MinX+dx, viewport.MinY+dy).
		Scale(scale, scale).
		Translate(-viewBox.MinX, -viewBox.MinY)
}

// unusableForSizing reports lengths that cannot size a surface before
// any viewport or font context exists: zero, and the relative percent,
// em and ex units, whose DPI-only resolution is only a raw magnitude.
func unusableForSizing(l svgunit.Length) bool {
	if l.IsZero() {
		return true
	}
	switch l.Unit {
	case svgunit.Percent, svgunit.Em, svgunit.Ex:
		return true
	}
	return false
}

// Dimensions infers the intrinsic render size of the document, in
// pixels at the given dpi. The height is derived from the declared
// width and the root view-box aspect ratio when possible, then from
// the declared height, and finally the document is treated as square.
//
// When a consulted length is unusable for sizing (missing, zero, or in
// relative percent, em or ex units), both values are -1: the caller
// picks a surface size.
func (d *Document) Dimensions(dpi float64) (w, h float64) {
	if d.root == nil || d.root.Width == nil {
		return -1, -1
	}
	wl := *d.root.Width
	if unusableForSizing(wl) {
		return -1, -1
	}
	w = wl.ResolveDPI(dpi)

	switch {
	case d.root.ViewBox != nil && d.root.ViewBox.Width > 0:
		h = w * d.root.ViewBox.Height / d.root.ViewBox.Width
	case d.root.Height != nil:
		hl := *d.root.Height
		if unusableForSizing(hl) {
			return -1, -1
		}
		h = hl.ResolveDPI(dpi)
	default:
		h = w
	}
	return w, h
}

// Width returns the intrinsic document width in pixels, or -1.
func (d *Document) Width(dpi float64) float64 {
	w, _ := d.Dimensions(dpi)
	return w
}

// Height returns the intrinsic document height in pixels, or -1.
func (d *Document) Height(dpi float64) float64 {
	_, h := d.Dimensions(dpi)
	return h
}

// ResolveView resolves a 'view' element for partial rendering. An id
// that is missing, that names an element of another kind, or whose
// view has no view-box makes the request not renderable: the second
// return value is false and no error is raised.
func (d *Document) ResolveView(viewID string) (*View, bool) {
	el := d.ElementByID(viewID)
	v, ok := el.(*View)
	if !ok {
		tracer().Infof("view %q not found in document", viewID)
		return nil, false
	}
	if v.ViewBox == nil {
		tracer().Infof("view %q has no viewBox, not renderable", viewID)
		return nil, false
	}
	return v, true
}
