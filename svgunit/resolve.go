package svgunit

import "math"

// DefaultDPI is used when the caller does not know the target device
// resolution. 96 matches common desktop renderers.
const DefaultDPI = 96

const sqrt2 = 1.414213562373095

// Context carries the render-time quantities a Length conversion may
// depend on. Viewport is nil before an initial viewport is established.
type Context struct {
	DPI      float64
	FontSize float64 // current resolved font size, in pixels
	XHeight  float64 // current font x-height, in pixels
	Viewport *Box    // current viewport in user units
}

// ResolveWidth converts the length to user units for a horizontally
// related context: percentages resolve against the viewport width.
func (l Length) ResolveWidth(ctx *Context) float64 {
	switch l.Unit {
	case Px:
		return l.Value
	case Em:
		return l.Value * ctx.FontSize
	case Ex:
		return l.Value * ctx.XHeight
	case In:
		return l.Value * ctx.DPI
	case Cm:
		return l.Value * ctx.DPI / 2.54
	case Mm:
		return l.Value * ctx.DPI / 25.4
	case Pt:
		return l.Value * ctx.DPI / 72
	case Pc:
		return l.Value * ctx.DPI / 6
	case Percent:
		if ctx.Viewport == nil {
			return l.Value // no viewport yet: degrade instead of failing
		}
		return l.Value * ctx.Viewport.Width / 100
	default:
		return l.Value
	}
}

// ResolveHeight converts the length to user units for a vertically
// related context: percentages resolve against the viewport height.
func (l Length) ResolveHeight(ctx *Context) float64 {
	if l.Unit == Percent {
		if ctx.Viewport == nil {
			return l.Value
		}
		return l.Value * ctx.Viewport.Height / 100
	}
	return l.ResolveWidth(ctx)
}

// Resolve converts the length to user units for a context that is not
// orientation specific, such as a stroke width or a circle radius.
// Percentages resolve against the viewport diagonal norm
// sqrt(w²+h²)/√2 (SVG 1.1, section 7.10).
func (l Length) Resolve(ctx *Context) float64 {
	if l.Unit == Percent {
		if ctx.Viewport == nil {
			return l.Value
		}
		w, h := ctx.Viewport.Width, ctx.Viewport.Height
		if w == h {
			return l.Value * w / 100
		}
		n := math.Sqrt(w*w+h*h) / sqrt2
		return l.Value * n / 100
	}
	return l.ResolveWidth(ctx)
}

// ResolveMax is like Resolve, except that percentages resolve against
// the explicit reference value `max` representing 100%.
func (l Length) ResolveMax(ctx *Context, max float64) float64 {
	if l.Unit == Percent {
		return l.Value * max / 100
	}
	return l.ResolveWidth(ctx)
}

// ResolveDPI converts the length using only physical units, for
// situations (like sizing the initial viewport) where no viewport or
// font context exists yet. Em, ex and percent lengths come back as
// their raw magnitude: callers must treat those as unusable for sizing.
func (l Length) ResolveDPI(dpi float64) float64 {
	switch l.Unit {
	case Px:
		return l.Value
	case In:
		return l.Value * dpi
	case Cm:
		return l.Value * dpi / 2.54
	case Mm:
		return l.Value * dpi / 25.4
	case Pt:
		return l.Value * dpi / 72
	case Pc:
		return l.Value * dpi / 6
	default: // em, ex, percent: best effort only
		return l.Value
	}
}
