// Package svgpath stores vector path outlines in a compact, replayable
// form: one opcode byte per segment plus a flat float64 coordinate tape.
// This avoids one object per segment and keeps iteration cache friendly
// for documents with thousands of segments.
package svgpath

import (
	"fmt"
	"strings"
)

// Opcode values of the command tape. The two arc flags are packed into
// the low bits of the arc opcode, giving four arc variants (4-7).
const (
	opMoveTo  byte = 0
	opLineTo  byte = 1
	opCubicTo byte = 2
	opQuadTo  byte = 3
	opArcTo   byte = 4 // 4-7
	opClose   byte = 8

	arcSweepBit    byte = 1
	arcLargeArcBit byte = 2
)

// coordCount is the fixed number of floats consumed by each opcode.
func coordCount(op byte) int {
	switch op {
	case opMoveTo, opLineTo:
		return 2
	case opCubicTo:
		return 6
	case opQuadTo:
		return 4
	case opClose:
		return 0
	default: // arc variants
		return 5 // rx, ry, rotation, x, y
	}
}

// Sink receives the decoded segments of a path during replay.
// Implementations are typically rasterizer front-ends or measurement
// passes.
type Sink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(x1, y1, x2, y2, x3, y3 float64)
	QuadTo(x1, y1, x2, y2 float64)
	ArcTo(rx, ry, xAxisRotation float64, largeArc, sweep bool, x, y float64)
	Close()
}

// Path is an append-only sequence of path commands. The zero value is
// an empty path, ready to use.
//
// Invariant: replaying the command tape while consuming the fixed
// per-opcode coordinate arity exhausts both tapes exactly.
type Path struct {
	commands []byte
	coords   []float64
}

var _ Sink = (*Path)(nil) // a path records into itself

func (p *Path) IsEmpty() bool { return len(p.commands) == 0 }

// Len returns the number of recorded commands.
func (p *Path) Len() int { return len(p.commands) }

// Clear empties the path, keeping the allocated tapes.
func (p *Path) Clear() {
	p.commands = p.commands[:0]
	p.coords = p.coords[:0]
}

func (p *Path) MoveTo(x, y float64) {
	p.commands = append(p.commands, opMoveTo)
	p.coords = append(p.coords, x, y)
}

func (p *Path) LineTo(x, y float64) {
	p.commands = append(p.commands, opLineTo)
	p.coords = append(p.coords, x, y)
}

func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.commands = append(p.commands, opCubicTo)
	p.coords = append(p.coords, x1, y1, x2, y2, x3, y3)
}

func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.commands = append(p.commands, opQuadTo)
	p.coords = append(p.coords, x1, y1, x2, y2)
}

func (p *Path) ArcTo(rx, ry, xAxisRotation float64, largeArc, sweep bool, x, y float64) {
	op := opArcTo
	if largeArc {
		op |= arcLargeArcBit
	}
	if sweep {
		op |= arcSweepBit
	}
	p.commands = append(p.commands, op)
	p.coords = append(p.coords, rx, ry, xAxisRotation, x, y)
}

func (p *Path) Close() {
	p.commands = append(p.commands, opClose)
}

// Replay decodes the command tape in order and forwards each segment
// to the sink.
func (p *Path) Replay(s Sink) {
	c := p.coords
	for _, op := range p.commands {
		switch op {
		case opMoveTo:
			s.MoveTo(c[0], c[1])
			c = c[2:]
		case opLineTo:
			s.LineTo(c[0], c[1])
			c = c[2:]
		case opCubicTo:
			s.CubicTo(c[0], c[1], c[2], c[3], c[4], c[5])
			c = c[6:]
		case opQuadTo:
			s.QuadTo(c[0], c[1], c[2], c[3])
			c = c[4:]
		case opClose:
			s.Close()
		default:
			largeArc := op&arcLargeArcBit != 0
			sweep := op&arcSweepBit != 0
			s.ArcTo(c[0], c[1], c[2], largeArc, sweep, c[3], c[4])
			c = c[5:]
		}
	}
}

// String returns an SVG path data representation, for debugging.
func (p *Path) String() string {
	var b strings.Builder
	c := p.coords
	for i, op := range p.commands {
		if i > 0 {
			b.WriteByte(' ')
		}
		n := coordCount(op)
		switch op {
		case opMoveTo:
			fmt.Fprintf(&b, "M%g,%g", c[0], c[1])
		case opLineTo:
			fmt.Fprintf(&b, "L%g,%g", c[0], c[1])
		case opCubicTo:
			fmt.Fprintf(&b, "C%g,%g,%g,%g,%g,%g", c[0], c[1], c[2], c[3], c[4], c[5])
		case opQuadTo:
			fmt.Fprintf(&b, "Q%g,%g,%g,%g", c[0], c[1], c[2], c[3])
		case opClose:
			b.WriteByte('Z')
		default:
			la, sw := 0, 0
			if op&arcLargeArcBit != 0 {
				la = 1
			}
			if op&arcSweepBit != 0 {
				sw = 1
			}
			fmt.Fprintf(&b, "A%g,%g,%g,%d,%d,%g,%g", c[0], c[1], c[2], la, sw, c[3], c[4])
		}
		c = c[n:]
	}
	return b.String()
}
