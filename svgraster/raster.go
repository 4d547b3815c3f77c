// Package svgraster implements a raster backend for svgdom documents,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"

	"github.com/benoitkugler/svgdom/svgpath"
	"github.com/benoitkugler/svgdom/svgstyle"
	"github.com/benoitkugler/svgdom/svgunit"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Renderer rasterizes path tapes. Filling and stroking use separate
// rasterizer instances to avoid shared state.
type Renderer struct {
	dasher *rasterx.Dasher
	filler *rasterx.Filler
}

// NewRenderer returns a renderer drawing through the given scanner.
// In addition to rasterizing lines, it can also rasterize quadratic
// and cubic bezier curves.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{
		dasher: rasterx.NewDasher(width, height, scanner),
		filler: rasterx.NewFiller(width, height, scanner),
	}
}

// NewImageRenderer wraps a ScannerGV instance drawing into img.
func NewImageRenderer(img *image.RGBA) *Renderer {
	b := img.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), img, b)
	return NewRenderer(b.Dx(), b.Dy(), scanner)
}

func (rd *Renderer) Clear() {
	rd.dasher.Clear()
	rd.filler.Clear()
}

// SetWinding selects the fill rule for both rasterizers.
func (rd *Renderer) SetWinding(rule svgstyle.FillRule) {
	useNonZero := rule == svgstyle.NonZero
	rd.dasher.SetWinding(useNonZero)
	rd.filler.SetWinding(useNonZero)
}

func setGradient(grad rasterx.Gradient, opacity float64, scanner rasterx.Scanner) {
	if grad.Units == rasterx.ObjectBoundingBox {
		fRect := scanner.GetPathExtent()
		mnx, mny := float64(fRect.Min.X)/64, float64(fRect.Min.Y)/64
		mxx, mxy := float64(fRect.Max.X)/64, float64(fRect.Max.Y)/64
		grad.Bounds.X, grad.Bounds.Y = mnx, mny
		grad.Bounds.W, grad.Bounds.H = mxx-mnx, mxy-mny
	}
	scanner.SetColor(grad.GetColorFunction(opacity))
}

func (rd *Renderer) SetFillColor(c color.Color, opacity float64) {
	rd.filler.Scanner.SetColor(rasterx.ApplyOpacity(c, opacity))
}

func (rd *Renderer) SetStrokeColor(c color.Color, opacity float64) {
	rd.dasher.Scanner.SetColor(rasterx.ApplyOpacity(c, opacity))
}

// SetFillGradient installs a flattened gradient as fill paint. For
// objectBoundingBox gradients the bounds are taken from the extent of
// the paths drawn so far, so the path must be added before the call.
func (rd *Renderer) SetFillGradient(grad rasterx.Gradient, opacity float64) {
	setGradient(grad, opacity, rd.filler.Scanner)
}

func (rd *Renderer) SetStrokeGradient(grad rasterx.Gradient, opacity float64) {
	setGradient(grad, opacity, rd.dasher.Scanner)
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		svgstyle.MiterJoin: rasterx.Miter,
		svgstyle.RoundJoin: rasterx.Round,
		svgstyle.BevelJoin: rasterx.Bevel,
	}

	capToFunc = [...]rasterx.CapFunc{
		svgstyle.ButtCap:   rasterx.ButtCap,
		svgstyle.RoundCap:  rasterx.RoundCap,
		svgstyle.SquareCap: rasterx.SquareCap,
	}
)

// SetStroke configures the dasher from the resolved stroke properties.
// A dash pattern with a negative entry or a zero sum is ignored, the
// stroke is drawn solid.
func (rd *Renderer) SetStroke(style *svgstyle.Style, ctx *svgunit.Context) {
	width := style.StrokeWidth.Resolve(ctx)

	var dashes []float64
	sum := 0.
	valid := true
	for _, l := range style.StrokeDashArray {
		v := l.Resolve(ctx)
		if v < 0 {
			valid = false
			break
		}
		sum += v
		dashes = append(dashes, v)
	}
	if !valid || sum == 0 {
		dashes = nil
	}
	offset := style.StrokeDashOffset.Resolve(ctx)

	lineCap := capToFunc[style.StrokeLineCap]
	rd.dasher.SetStroke(
		fixed.Int26_6(width*64), fixed.Int26_6(style.StrokeMiterLimit*64),
		lineCap, lineCap, rasterx.FlatGap, joinToJoin[style.StrokeLineJoin],
		dashes, offset,
	)
}

func (rd *Renderer) start(a fixed.Point26_6) {
	rd.filler.Start(a)
	rd.dasher.Start(a)
}

func (rd *Renderer) line(b fixed.Point26_6) {
	rd.filler.Line(b)
	rd.dasher.Line(b)
}

func (rd *Renderer) quadBezier(b, c fixed.Point26_6) {
	rd.filler.QuadBezier(b, c)
	rd.dasher.QuadBezier(b, c)
}

func (rd *Renderer) cubeBezier(b, c, d fixed.Point26_6) {
	rd.filler.CubeBezier(b, c, d)
	rd.dasher.CubeBezier(b, c, d)
}

func (rd *Renderer) stop(closeLoop bool) {
	rd.filler.Stop(closeLoop)
	rd.dasher.Stop(closeLoop)
}

// Fill rasterizes the accumulated outline with the fill paint.
func (rd *Renderer) Fill() {
	rd.filler.Draw()
}

// Stroke rasterizes the accumulated outline with the stroke paint.
func (rd *Renderer) Stroke() {
	rd.dasher.Draw()
}

func toFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return
}

// pathAdder replays a path tape into both rasterizers, applying the
// user-space transform and flattening arcs into cubic segments.
type pathAdder struct {
	rd             *Renderer
	m              svgpath.Matrix2D
	px, py         float64 // current point, untransformed
	startX, startY float64
	started        bool
}

var _ svgpath.Sink = (*pathAdder)(nil)

func (a *pathAdder) point(x, y float64) fixed.Point26_6 {
	tx, ty := a.m.Apply(x, y)
	return toFixedP(tx, ty)
}

func (a *pathAdder) MoveTo(x, y float64) {
	if a.started {
		a.rd.stop(false)
	}
	a.rd.start(a.point(x, y))
	a.px, a.py = x, y
	a.startX, a.startY = x, y
	a.started = true
}

func (a *pathAdder) LineTo(x, y float64) {
	a.rd.line(a.point(x, y))
	a.px, a.py = x, y
}

func (a *pathAdder) QuadTo(x1, y1, x, y float64) {
	a.rd.quadBezier(a.point(x1, y1), a.point(x, y))
	a.px, a.py = x, y
}

func (a *pathAdder) CubicTo(x1, y1, x2, y2, x, y float64) {
	a.rd.cubeBezier(a.point(x1, y1), a.point(x2, y2), a.point(x, y))
	a.px, a.py = x, y
}

func (a *pathAdder) ArcTo(rx, ry, rot float64, largeArc, sweep bool, x, y float64) {
	flattenArc(a, rx, ry, rot, largeArc, sweep, a.px, a.py, x, y)
}

func (a *pathAdder) Close() {
	if a.started {
		a.rd.stop(true)
		a.started = false
	}
	a.px, a.py = a.startX, a.startY
}

// DrawPath adds the transformed path to the accumulated outline of
// both rasterizers. Call Fill or Stroke afterwards to draw it.
func (rd *Renderer) DrawPath(p *svgpath.Path, m svgpath.Matrix2D) {
	a := pathAdder{rd: rd, m: m}
	p.Replay(&a)
	if a.started {
		rd.stop(false)
	}
}
