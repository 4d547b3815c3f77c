package svgdom

import (
	"strings"
	"testing"

	"github.com/benoitkugler/svgdom/svgpath"
	"github.com/benoitkugler/svgdom/svgunit"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lp(v float64, u svgunit.Unit) *svgunit.Length {
	return &svgunit.Length{Value: v, Unit: u}
}

func mustAppend(t *testing.T, d *Document, parent Container, child Node) {
	t.Helper()
	require.NoError(t, d.AppendChild(parent, child))
}

func TestAppendChildPolicy(t *testing.T) {
	d := NewDocument()
	root := &Svg{}
	require.NoError(t, d.SetRoot(root))

	grad := &LinearGradient{}
	mustAppend(t, d, root, grad)
	mustAppend(t, d, grad, &Stop{Offset: 0.5})

	err := d.AppendChild(grad, &Rect{})
	require.Error(t, err)
	var sErr StructuralError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, KindLinearGradient, sErr.Container)
	assert.Equal(t, KindRect, sErr.Child)
	assert.Equal(t, "linearGradient elements cannot contain rect elements", sErr.Error())

	text := &Text{}
	mustAppend(t, d, root, text)
	mustAppend(t, d, text, &TextSequence{Text: "hello"})
	mustAppend(t, d, text, &TSpan{})
	assert.Error(t, d.AppendChild(text, &Circle{}))

	// gradient stops are leaves
	stop := d.Node(grad.Children()[0]).(*Stop)
	assert.Error(t, d.AppendChild(stop, &TextSequence{Text: "x"}))

	// a node registers with one document exactly once
	assert.Error(t, d.AppendChild(root, grad))
}

func TestArenaLinks(t *testing.T) {
	d := NewDocument()
	root := &Svg{}
	require.NoError(t, d.SetRoot(root))
	g := &Group{}
	mustAppend(t, d, root, g)
	r := &Rect{}
	mustAppend(t, d, g, r)

	assert.Equal(t, NoNode, root.ParentID())
	assert.Nil(t, root.Parent())
	assert.Same(t, root, g.Parent())
	assert.Same(t, g, r.Parent())
	assert.Same(t, d, r.Document())
	assert.Same(t, r, d.Node(r.Self()))
	assert.Nil(t, d.Node(NoNode))
	assert.Nil(t, d.Node(NodeID(99)))
}

func TestElementByID(t *testing.T) {
	d := NewDocument()
	root := &Svg{ElementBase: ElementBase{ID: "root"}}
	require.NoError(t, d.SetRoot(root))
	g := &Group{ElementBase: ElementBase{ID: "layer"}}
	mustAppend(t, d, root, g)
	first := &Rect{}
	first.ID = "dup"
	mustAppend(t, d, g, first)
	second := &Circle{}
	second.ID = "dup"
	mustAppend(t, d, root, second)

	assert.Same(t, root, d.ElementByID("root"))
	assert.Same(t, g, d.ElementByID("layer"))
	// document order wins for duplicated ids
	assert.Same(t, first, d.ElementByID("dup"))

	assert.Nil(t, d.ElementByID("missing"))
	assert.Nil(t, d.ElementByID(""))

	assert.Same(t, g, d.ResolveIRI("#layer"))
	assert.Nil(t, d.ResolveIRI("layer"))
	assert.Nil(t, d.ResolveIRI("#"))
	assert.Nil(t, d.ResolveIRI("http://elsewhere/#layer"))
}

func TestElementsByKindRecursesIntoMatches(t *testing.T) {
	d := NewDocument()
	root := &Svg{}
	require.NoError(t, d.SetRoot(root))
	outer := &Group{ElementBase: ElementBase{ID: "outer"}}
	mustAppend(t, d, root, outer)
	inner := &Group{ElementBase: ElementBase{ID: "inner"}}
	mustAppend(t, d, outer, inner)
	innermost := &Group{ElementBase: ElementBase{ID: "innermost"}}
	mustAppend(t, d, inner, innermost)
	mustAppend(t, d, root, &Rect{})

	groups := d.ElementsByKind(KindGroup)
	require.Len(t, groups, 3)
	assert.Same(t, outer, groups[0])
	assert.Same(t, inner, groups[1])
	assert.Same(t, innermost, groups[2])

	assert.Len(t, d.ElementsByKind(KindRect), 1)
	assert.Empty(t, d.ElementsByKind(KindMarker))
}

func TestViews(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom")
	defer teardown()

	d := NewDocument()
	root := &Svg{}
	require.NoError(t, d.SetRoot(root))

	good := &View{ElementBase: ElementBase{ID: "detail"}}
	vb := svgunit.Box{MinX: 10, MinY: 10, Width: 50, Height: 50}
	good.ViewBox = &vb
	mustAppend(t, d, root, good)

	bare := &View{ElementBase: ElementBase{ID: "bare"}}
	mustAppend(t, d, root, bare)

	decoy := &Rect{}
	decoy.ID = "decoy"
	mustAppend(t, d, root, decoy)

	assert.Equal(t, []string{"detail", "bare"}, d.ViewList())

	v, ok := d.ResolveView("detail")
	require.True(t, ok)
	assert.Same(t, good, v)

	_, ok = d.ResolveView("bare") // no viewBox
	assert.False(t, ok)
	_, ok = d.ResolveView("decoy") // not a view
	assert.False(t, ok)
	_, ok = d.ResolveView("missing")
	assert.False(t, ok)
}

func TestDimensions(t *testing.T) {
	newDoc := func(root *Svg) *Document {
		d := NewDocument()
		require.NoError(t, d.SetRoot(root))
		return d
	}

	// the view-box aspect ratio derives the height from the width
	root := &Svg{Width: lp(200, svgunit.Px)}
	root.ViewBox = &svgunit.Box{Width: 100, Height: 50}
	w, h := newDoc(root).Dimensions(svgunit.DefaultDPI)
	assert.Equal(t, 200., w)
	assert.Equal(t, 100., h)

	// declared height, no view-box
	root = &Svg{Width: lp(2, svgunit.In), Height: lp(96, svgunit.Px)}
	w, h = newDoc(root).Dimensions(svgunit.DefaultDPI)
	assert.Equal(t, 192., w)
	assert.Equal(t, 96., h)

	// width only: square document
	root = &Svg{Width: lp(64, svgunit.Px)}
	w, h = newDoc(root).Dimensions(svgunit.DefaultDPI)
	assert.Equal(t, 64., w)
	assert.Equal(t, 64., h)

	// relative widths carry no intrinsic size
	for _, u := range []svgunit.Unit{svgunit.Percent, svgunit.Em, svgunit.Ex} {
		d := newDoc(&Svg{Width: lp(100, u)})
		assert.Equal(t, -1., d.Width(svgunit.DefaultDPI))
		assert.Equal(t, -1., d.Height(svgunit.DefaultDPI))
	}
	assert.Equal(t, -1., newDoc(&Svg{}).Width(svgunit.DefaultDPI))
	assert.Equal(t, -1., NewDocument().Width(svgunit.DefaultDPI))

	// a zero or relative height is just as unusable when it is consulted
	assert.Equal(t, -1., newDoc(&Svg{Width: lp(0, svgunit.Px)}).Width(svgunit.DefaultDPI))
	for _, hl := range []*svgunit.Length{lp(50, svgunit.Percent), lp(2, svgunit.Em), lp(0, svgunit.Px)} {
		d := newDoc(&Svg{Width: lp(100, svgunit.Px), Height: hl})
		assert.Equal(t, -1., d.Width(svgunit.DefaultDPI))
		assert.Equal(t, -1., d.Height(svgunit.DefaultDPI))
	}

	// a view-box supersedes the declared height, relative or not
	root = &Svg{Width: lp(100, svgunit.Px), Height: lp(50, svgunit.Percent)}
	root.ViewBox = &svgunit.Box{Width: 100, Height: 100}
	w, h = newDoc(root).Dimensions(svgunit.DefaultDPI)
	assert.Equal(t, 100., w)
	assert.Equal(t, 100., h)
}

func TestViewBoxTransform(t *testing.T) {
	viewport := svgunit.Box{Width: 200, Height: 100}
	viewBox := svgunit.Box{Width: 100, Height: 50}

	// same aspect ratio: pure scale
	m := ViewBoxTransform(viewport, viewBox, nil)
	x, y := m.Apply(100, 50)
	assert.Equal(t, 200., x)
	assert.Equal(t, 100., y)

	// meet letterboxes, centered by default
	m = ViewBoxTransform(svgunit.Box{Width: 100, Height: 100},
		svgunit.Box{Width: 200, Height: 100}, nil)
	x, y = m.Apply(0, 0)
	assert.Equal(t, 0., x)
	assert.Equal(t, 25., y)

	// slice crops instead
	m = ViewBoxTransform(svgunit.Box{Width: 100, Height: 100},
		svgunit.Box{Width: 200, Height: 100},
		&PreserveAspectRatio{AlignXMidYMid, Slice})
	x, y = m.Apply(0, 0)
	assert.Equal(t, -50., x)
	assert.Equal(t, 0., y)

	// none stretches anisotropically
	m = ViewBoxTransform(svgunit.Box{Width: 100, Height: 100},
		svgunit.Box{Width: 200, Height: 100},
		&PreserveAspectRatio{AlignNone, Meet})
	x, y = m.Apply(200, 100)
	assert.Equal(t, 100., x)
	assert.Equal(t, 100., y)

	// view-box offsets translate away
	m = ViewBoxTransform(svgunit.Box{Width: 100, Height: 50},
		svgunit.Box{MinX: 10, MinY: 20, Width: 100, Height: 50}, nil)
	x, y = m.Apply(10, 20)
	assert.Equal(t, 0., x)
	assert.Equal(t, 0., y)

	// degenerate view-box
	m = ViewBoxTransform(viewport, svgunit.Box{}, nil)
	assert.True(t, m.IsIdentity())
}

func TestPathExtent(t *testing.T) {
	var p svgpath.Path
	_, ok := PathExtent(&p)
	assert.False(t, ok)

	p.MoveTo(10, 20)
	p.LineTo(110, 70)
	p.CubicTo(120, 80, 130, 10, 110, 20)
	p.Close()
	b, ok := PathExtent(&p)
	require.True(t, ok)
	assert.Equal(t, 10., b.MinX)
	assert.Equal(t, 10., b.MinY)
	assert.Equal(t, 120., b.Width)
	assert.Equal(t, 70., b.Height)

	table := make(BoundsTable)
	table.Store(3, b)
	got, ok := table.Lookup(3)
	require.True(t, ok)
	assert.Equal(t, b, got)
	_, ok = table.Lookup(4)
	assert.False(t, ok)
}

func TestDump(t *testing.T) {
	d := NewDocument()
	root := &Svg{ElementBase: ElementBase{ID: "root"}}
	require.NoError(t, d.SetRoot(root))
	g := &Group{ElementBase: ElementBase{ID: "layer"}}
	mustAppend(t, d, root, g)
	mustAppend(t, d, g, &Rect{})
	text := &Text{}
	mustAppend(t, d, root, text)
	mustAppend(t, d, text, &TextSequence{Text: "hi"})

	out := Dump(d)
	assert.Contains(t, out, "svg #root")
	assert.Contains(t, out, "g #layer")
	assert.Contains(t, out, "rect")
	assert.Contains(t, out, `"hi"`)
	assert.True(t, strings.Index(out, "g #layer") < strings.Index(out, "rect"))
}

func TestMetadata(t *testing.T) {
	d := NewDocument()
	assert.Empty(t, d.Title())
	d.SetTitle("A drawing")
	d.SetDescription("Example")
	d.SetVersion("1.1")
	assert.Equal(t, "A drawing", d.Title())
	assert.Equal(t, "Example", d.Description())
	assert.Equal(t, "1.1", d.Version())
}
