package svgraster

import (
	"image/color"

	"github.com/benoitkugler/svgdom/svgdom"
	"github.com/benoitkugler/svgdom/svgstyle"
	"github.com/benoitkugler/svgdom/svgunit"
	"github.com/srwiley/rasterx"
)

// coordinate orientations, selecting the percentage reference
const (
	horizontal = iota
	vertical
	diagonal
)

// gradCoord resolves one gradient coordinate. In objectBoundingBox
// units coordinates are fractions of the (later known) object bounds,
// in user units they resolve against the viewport.
func gradCoord(l, def *svgunit.Length, units svgdom.UnitsType, ctx *svgunit.Context, orient int) float64 {
	if l == nil {
		l = def
	}
	if units == svgdom.ObjectBoundingBox {
		if l.Unit == svgunit.Percent {
			return l.Value / 100
		}
		return l.Value
	}
	switch orient {
	case horizontal:
		return l.ResolveWidth(ctx)
	case vertical:
		return l.ResolveHeight(ctx)
	default:
		return l.Resolve(ctx)
	}
}

func percent(v float64) *svgunit.Length {
	return &svgunit.Length{Value: v, Unit: svgunit.Percent}
}

func stopColor(st *svgstyle.Style) color.Color {
	p := svgstyle.ResolveCurrent(st.StopColor, st)
	if c, ok := p.(svgstyle.Color); ok {
		return c
	}
	return svgstyle.Black
}

// collectStops reads the cascaded color stops of a gradient element,
// following the href template chain when the element declares none of
// its own. Offsets are clamped to [0, 1] and forced non-decreasing.
func collectStops(doc *svgdom.Document, cas *svgdom.Cascade, el svgdom.Element, seen map[svgdom.NodeID]bool) []rasterx.GradStop {
	if seen[el.Self()] {
		return nil // reference cycle
	}
	seen[el.Self()] = true

	var (
		out        []rasterx.GradStop
		lastOffset float64
	)
	if c, ok := el.(svgdom.Container); ok {
		for _, id := range c.Children() {
			stop, ok := doc.Node(id).(*svgdom.Stop)
			if !ok {
				continue
			}
			off := stop.Offset
			if off < lastOffset {
				off = lastOffset
			} else if off > 1 {
				off = 1
			}
			lastOffset = off
			st := cas.ResolveStyle(stop)
			out = append(out, rasterx.GradStop{
				StopColor: stopColor(st),
				Offset:    off,
				Opacity:   st.StopOpacity,
			})
		}
	}
	if len(out) > 0 {
		return out
	}

	var href string
	switch g := el.(type) {
	case *svgdom.LinearGradient:
		href = g.Href
	case *svgdom.RadialGradient:
		href = g.Href
	}
	if href == "" {
		return nil
	}
	switch tmpl := doc.ResolveIRI(href).(type) {
	case *svgdom.LinearGradient:
		return collectStops(doc, cas, tmpl, seen)
	case *svgdom.RadialGradient:
		return collectStops(doc, cas, tmpl, seen)
	}
	return nil
}

// BuildGradient flattens a gradient element into the rasterx form,
// resolving its coordinates against ctx and cascading the stop
// properties. It returns false for non-gradient elements and for
// gradients without any color stop, which paint nothing.
func BuildGradient(el svgdom.Element, cas *svgdom.Cascade, ctx *svgunit.Context) (rasterx.Gradient, bool) {
	var (
		points   [5]float64
		units    svgdom.UnitsType
		spread   svgdom.SpreadMethod
		matrix   rasterx.Matrix2D
		isRadial bool
	)
	switch g := el.(type) {
	case *svgdom.LinearGradient:
		units, spread = g.Units, g.Spread
		m, _ := g.Transform()
		matrix = rasterx.Matrix2D(m)
		points[0] = gradCoord(g.X1, percent(0), units, ctx, horizontal)
		points[1] = gradCoord(g.Y1, percent(0), units, ctx, vertical)
		points[2] = gradCoord(g.X2, percent(100), units, ctx, horizontal)
		points[3] = gradCoord(g.Y2, percent(0), units, ctx, vertical)
	case *svgdom.RadialGradient:
		units, spread = g.Units, g.Spread
		m, _ := g.Transform()
		matrix = rasterx.Matrix2D(m)
		points[0] = gradCoord(g.Cx, percent(50), units, ctx, horizontal)
		points[1] = gradCoord(g.Cy, percent(50), units, ctx, vertical)
		// the focal point defaults to the center
		if g.Fx != nil {
			points[2] = gradCoord(g.Fx, nil, units, ctx, horizontal)
		} else {
			points[2] = points[0]
		}
		if g.Fy != nil {
			points[3] = gradCoord(g.Fy, nil, units, ctx, vertical)
		} else {
			points[3] = points[1]
		}
		points[4] = gradCoord(g.R, percent(50), units, ctx, diagonal)
		isRadial = true
	default:
		return rasterx.Gradient{}, false
	}

	doc := el.Document()
	stops := collectStops(doc, cas, el, make(map[svgdom.NodeID]bool))
	if len(stops) == 0 {
		return rasterx.Gradient{}, false
	}

	out := rasterx.Gradient{
		Points:   points,
		Stops:    stops,
		Matrix:   matrix,
		Spread:   rasterx.SpreadMethod(spread),
		Units:    rasterx.GradientUnits(units),
		IsRadial: isRadial,
	}
	if units == svgdom.UserSpaceOnUse && ctx.Viewport != nil {
		out.Bounds.X, out.Bounds.Y = ctx.Viewport.MinX, ctx.Viewport.MinY
		out.Bounds.W, out.Bounds.H = ctx.Viewport.Width, ctx.Viewport.Height
	}
	return out, true
}
