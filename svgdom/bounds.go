package svgdom

import (
	"github.com/benoitkugler/svgdom/svgpath"
	"github.com/benoitkugler/svgdom/svgunit"
)

// BoundsTable records per-node bounding boxes for one rendering pass.
// It is a side table keyed by node id: the shared tree stays free of
// pass-local state.
type BoundsTable map[NodeID]svgunit.Box

// Store records the bounds computed for a node, replacing any
// previous entry.
func (t BoundsTable) Store(id NodeID, b svgunit.Box) { t[id] = b }

// Lookup returns the recorded bounds of a node.
func (t BoundsTable) Lookup(id NodeID) (svgunit.Box, bool) {
	b, ok := t[id]
	return b, ok
}

// extentSink accumulates the extent of a replayed path. Curves are
// measured by their control points and arcs are padded by their radii,
// so the extent may overestimate, never underestimate.
type extentSink struct {
	minX, minY float64
	maxX, maxY float64
	any        bool
}

func (s *extentSink) add(x, y float64) {
	if !s.any {
		s.minX, s.maxX = x, x
		s.minY, s.maxY = y, y
		s.any = true
		return
	}
	if x < s.minX {
		s.minX = x
	}
	if x > s.maxX {
		s.maxX = x
	}
	if y < s.minY {
		s.minY = y
	}
	if y > s.maxY {
		s.maxY = y
	}
}

func (s *extentSink) MoveTo(x, y float64) { s.add(x, y) }

func (s *extentSink) LineTo(x, y float64) { s.add(x, y) }

func (s *extentSink) CubicTo(x1, y1, x2, y2, x, y float64) {
	s.add(x1, y1)
	s.add(x2, y2)
	s.add(x, y)
}

func (s *extentSink) QuadTo(x1, y1, x, y float64) {
	s.add(x1, y1)
	s.add(x, y)
}

func (s *extentSink) ArcTo(rx, ry, rot float64, largeArc, sweep bool, x, y float64) {
	s.add(x-rx, y-ry)
	s.add(x+rx, y+ry)
}

func (s *extentSink) Close() {}

// PathExtent computes a conservative bounding box of the path in its
// own coordinates. The second return value is false for an empty path.
func PathExtent(p *svgpath.Path) (svgunit.Box, bool) {
	var s extentSink
	p.Replay(&s)
	if !s.any {
		return svgunit.Box{}, false
	}
	return svgunit.BoxFromLimits(s.minX, s.minY, s.maxX, s.maxY), true
}
