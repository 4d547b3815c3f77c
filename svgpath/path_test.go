package svgpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures replayed segments as comparable values.
type recorder struct {
	ops    []string
	coords []float64
	flags  []bool
}

func (r *recorder) MoveTo(x, y float64) {
	r.ops = append(r.ops, "M")
	r.coords = append(r.coords, x, y)
}

func (r *recorder) LineTo(x, y float64) {
	r.ops = append(r.ops, "L")
	r.coords = append(r.coords, x, y)
}

func (r *recorder) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	r.ops = append(r.ops, "C")
	r.coords = append(r.coords, x1, y1, x2, y2, x3, y3)
}

func (r *recorder) QuadTo(x1, y1, x2, y2 float64) {
	r.ops = append(r.ops, "Q")
	r.coords = append(r.coords, x1, y1, x2, y2)
}

func (r *recorder) ArcTo(rx, ry, rot float64, largeArc, sweep bool, x, y float64) {
	r.ops = append(r.ops, "A")
	r.coords = append(r.coords, rx, ry, rot, x, y)
	r.flags = append(r.flags, largeArc, sweep)
}

func (r *recorder) Close() { r.ops = append(r.ops, "Z") }

func TestReplayRoundTrip(t *testing.T) {
	var p Path
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.QuadTo(5, 6, 7, 8)
	p.CubicTo(9, 10, 11, 12, 13, 14)
	p.ArcTo(15, 16, 30, true, false, 17, 18)
	p.Close()

	var rec recorder
	p.Replay(&rec)

	assert.Equal(t, []string{"M", "L", "Q", "C", "A", "Z"}, rec.ops)
	assert.Equal(t, []float64{
		1, 2,
		3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12, 13, 14,
		15, 16, 30, 17, 18,
	}, rec.coords)
	assert.Equal(t, []bool{true, false}, rec.flags)

	// recording the replay into a second path reproduces both tapes exactly
	var q Path
	p.Replay(&q)
	assert.Equal(t, p.commands, q.commands)
	assert.Equal(t, p.coords, q.coords)
}

func TestArcFlagVariants(t *testing.T) {
	for _, tc := range []struct{ largeArc, sweep bool }{
		{false, false}, {false, true}, {true, false}, {true, true},
	} {
		var p Path
		p.ArcTo(1, 2, 0, tc.largeArc, tc.sweep, 3, 4)

		var rec recorder
		p.Replay(&rec)
		require.Equal(t, []string{"A"}, rec.ops)
		assert.Equal(t, []bool{tc.largeArc, tc.sweep}, rec.flags)
	}
}

func TestTapeExhaustion(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.ArcTo(5, 5, 0, false, true, 10, 10)
	p.Close()

	total := 0
	for _, op := range p.commands {
		total += coordCount(op)
	}
	assert.Equal(t, len(p.coords), total, "coordinate tape must be fully consumed with no remainder")
	assert.Equal(t, 4, p.Len())
	assert.False(t, p.IsEmpty())

	p.Clear()
	assert.True(t, p.IsEmpty())
	assert.Empty(t, p.coords)
}

func TestShapes(t *testing.T) {
	var rect Path
	rect.AddRect(0, 0, 10, 5, 0, 0)
	assert.Equal(t, "M0,0 L10,0 L10,5 L0,5 Z", rect.String())

	var round Path
	round.AddRect(0, 0, 10, 10, 2, 0)
	var rec recorder
	round.Replay(&rec)
	assert.Equal(t, []string{"M", "L", "A", "L", "A", "L", "A", "L", "A", "Z"}, rec.ops)

	var line Path
	line.AddLine(1, 1, 2, 3)
	assert.Equal(t, "M1,1 L2,3", line.String())

	var poly Path
	poly.AddPoly([]float64{0, 0, 4, 0, 4, 4}, true)
	assert.Equal(t, "M0,0 L4,0 L4,4 Z", poly.String())

	var short Path
	short.AddPoly([]float64{1, 2}, false)
	assert.True(t, short.IsEmpty())

	var circ Path
	circ.AddCircle(5, 5, 2)
	assert.Equal(t, 4, circ.Len()) // move + two arcs + close
}

func TestMatrix2D(t *testing.T) {
	m := Identity.Translate(10, 20).Scale(2, 3)
	x, y := m.Apply(1, 1)
	assert.Equal(t, 12., x)
	assert.Equal(t, 23., y)

	assert.True(t, Identity.IsIdentity())
	assert.False(t, m.IsIdentity())

	// rotation by 90° maps (1, 0) to (0, 1)
	r := Identity.Rotate(3.14159265358979 / 2)
	x, y = r.Apply(1, 0)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 1, y, 1e-9)
}
