package svgstyle

import (
	"testing"

	"github.com/benoitkugler/svgdom/svgunit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStyle(t *testing.T) {
	assert.Equal(t, SpecifiedAll, Default.Specified)
	assert.Equal(t, Black, Default.Fill)
	assert.Nil(t, Default.Stroke)
	assert.Equal(t, 1., Default.Opacity)
	assert.Equal(t, svgunit.Length{Value: 12, Unit: svgunit.Pt}, Default.FontSize)
	assert.True(t, Default.Overflow)
	assert.True(t, Default.Display)
}

func TestApplyRespectsBitmask(t *testing.T) {
	dst := Default.Clone()

	// a layer carrying a value equal to the default but with its bit
	// set is still a specified layer
	layer := &Style{Specified: SpecifiedFillOpacity, FillOpacity: 1}
	dst.Apply(layer)
	assert.True(t, dst.Specified.Has(SpecifiedFillOpacity))

	// values without their bit are ignored entirely
	sneaky := &Style{FillOpacity: 0.25, Opacity: 0.25}
	dst.Apply(sneaky)
	assert.Equal(t, 1., dst.FillOpacity)
	assert.Equal(t, 1., dst.Opacity)

	layer = &Style{
		Specified: SpecifiedStroke | SpecifiedStrokeWidth,
		Stroke:    Color(0xff0000),
		StrokeWidth: svgunit.Length{
			Value: 2, Unit: svgunit.Px,
		},
	}
	dst.Apply(layer)
	assert.Equal(t, Color(0xff0000), dst.Stroke)
	assert.Equal(t, 2., dst.StrokeWidth.Value)
}

func TestCloneIsDeep(t *testing.T) {
	src := Default.Clone()
	src.StrokeDashArray = []svgunit.Length{svgunit.PxLength(4), svgunit.PxLength(2)}
	src.FontFamily = []string{"serif"}
	src.Clip = &ClipRect{Top: svgunit.PxLength(1)}

	dup := src.Clone()
	dup.StrokeDashArray[0] = svgunit.PxLength(99)
	dup.FontFamily[0] = "mono"
	dup.Clip.Top = svgunit.PxLength(42)

	assert.Equal(t, 4., src.StrokeDashArray[0].Value)
	assert.Equal(t, "serif", src.FontFamily[0])
	assert.Equal(t, 1., src.Clip.Top.Value)
}

func TestApplyCopiesDashArray(t *testing.T) {
	layer := &Style{
		Specified:       SpecifiedStrokeDashArray,
		StrokeDashArray: []svgunit.Length{svgunit.PxLength(3)},
	}
	dst := Default.Clone()
	dst.Apply(layer)
	dst.StrokeDashArray[0] = svgunit.PxLength(7)
	assert.Equal(t, 3., layer.StrokeDashArray[0].Value, "layers must not alias the resolved style")
}

func TestResetNonInheriting(t *testing.T) {
	s := Default.Clone()
	s.Opacity = 0.5
	s.Overflow = true
	s.ClipPath = "url(#c)"
	s.Mask = "url(#m)"
	s.StopColor = Color(0x00ff00)
	s.StopOpacity = 0.3
	s.Display = false

	s.ResetNonInheriting()
	assert.Equal(t, 1., s.Opacity)
	assert.False(t, s.Overflow)
	assert.Empty(t, s.ClipPath)
	assert.Empty(t, s.Mask)
	assert.Equal(t, Black, s.StopColor)
	assert.Equal(t, 1., s.StopOpacity)
	assert.True(t, s.Display)

	assert.True(t, NonInheriting(SpecifiedOpacity))
	assert.True(t, NonInheriting(SpecifiedMask))
	assert.False(t, NonInheriting(SpecifiedFill))
}

func TestPaints(t *testing.T) {
	c := Color(0x336699)
	r, g, b := c.RGB()
	assert.Equal(t, uint8(0x33), r)
	assert.Equal(t, uint8(0x66), g)
	assert.Equal(t, uint8(0x99), b)
	assert.Equal(t, "#336699", c.String())

	rr, _, _, aa := c.RGBA()
	assert.Equal(t, uint32(0x3333), rr)
	assert.Equal(t, uint32(0xffff), aa)

	s := Default.Clone()
	s.Color = Color(0xff00ff)
	assert.Equal(t, Color(0xff00ff), ResolveCurrent(CurrentColor{}, s))
	assert.Equal(t, Color(0x112233), ResolveCurrent(Color(0x112233), s))

	ref := PaintRef{Href: "#grad", Fallback: Black}
	assert.Equal(t, ref, ResolveCurrent(ref, s))
}

func TestRuleset(t *testing.T) {
	var rs Ruleset
	assert.True(t, rs.IsEmpty())

	mk := func(sel string, spec int) Rule {
		return Rule{Selector: sel, Specificity: spec, Style: &Style{}}
	}
	rs.Add(mk(".a", 10))
	rs.Add(mk("#b", 100))
	rs.Add(mk(".a", 10)) // duplicate rules are kept

	var other Ruleset
	other.Add(mk("rect", 1))
	rs.AddAll(other)

	require.Len(t, rs.Rules(), 4)
	assert.Equal(t, ".a", rs.Rules()[0].Selector)

	sorted := append([]Rule(nil), rs.Rules()...)
	SortBySpecificity(sorted)
	assert.Equal(t, "rect", sorted[0].Selector)
	assert.Equal(t, "#b", sorted[3].Selector)
	// equal specificity keeps declaration order
	assert.Same(t, rs.Rules()[0].Style, sorted[1].Style)
	assert.Same(t, rs.Rules()[2].Style, sorted[2].Style)
}
