package svgunit

import "fmt"

// Box is an axis-aligned rectangle, used for viewports, view boxes
// and path extents.
type Box struct {
	MinX, MinY, Width, Height float64
}

// BoxFromLimits builds a box from its two corners.
func BoxFromLimits(minX, minY, maxX, maxY float64) Box {
	return Box{MinX: minX, MinY: minY, Width: maxX - minX, Height: maxY - minY}
}

func (b Box) MaxX() float64 { return b.MinX + b.Width }

func (b Box) MaxY() float64 { return b.MinY + b.Height }

// Union grows the box so that it also covers `other`.
// Merging never shrinks the box.
func (b Box) Union(other Box) Box {
	if other.MinX < b.MinX {
		b.Width += b.MinX - other.MinX
		b.MinX = other.MinX
	}
	if other.MinY < b.MinY {
		b.Height += b.MinY - other.MinY
		b.MinY = other.MinY
	}
	if other.MaxX() > b.MaxX() {
		b.Width = other.MaxX() - b.MinX
	}
	if other.MaxY() > b.MaxY() {
		b.Height = other.MaxY() - b.MinY
	}
	return b
}

func (b Box) String() string {
	return fmt.Sprintf("[%g %g %g %g]", b.MinX, b.MinY, b.Width, b.Height)
}
