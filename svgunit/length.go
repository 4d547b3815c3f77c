// Package svgunit defines the length and geometry value types of an SVG
// document, and their conversion to absolute pixel values under a
// render-time context.
package svgunit

import "fmt"

// Unit is the measurement unit attached to a Length.
type Unit uint8

const (
	Px Unit = iota // user units / pixels
	Em             // relative to the current font size
	Ex             // relative to the current font x-height
	In             // physical inch
	Cm
	Mm
	Pt // 1 point = 1/72 in
	Pc // 1 pica = 1/6 in
	Percent
)

func (u Unit) String() string {
	switch u {
	case Px:
		return "px"
	case Em:
		return "em"
	case Ex:
		return "ex"
	case In:
		return "in"
	case Cm:
		return "cm"
	case Mm:
		return "mm"
	case Pt:
		return "pt"
	case Pc:
		return "pc"
	case Percent:
		return "%"
	default:
		return "<unknown Unit>"
	}
}

// Length is an immutable (value, unit) pair. The zero value is 0px.
type Length struct {
	Value float64
	Unit  Unit
}

// PxLength is a shortcut for a length expressed in user units.
func PxLength(v float64) Length { return Length{Value: v} }

func (l Length) IsZero() bool { return l.Value == 0 }

func (l Length) IsNegative() bool { return l.Value < 0 }

func (l Length) String() string {
	return fmt.Sprintf("%g%s", l.Value, l.Unit)
}
