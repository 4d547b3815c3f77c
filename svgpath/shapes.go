package svgpath

// This file implements the reduction of the basic SVG shapes to their
// path equivalent. The resulting commands follow SVG 1.1 section 9
// (equivalent path of 'rect', 'ellipse', etc.).

// AddRect appends a rectangle outline, with optional rounded corners
// of radii rx (x axis) and ry (y axis). A zero radius pair yields four
// straight edges.
func (p *Path) AddRect(x, y, w, h, rx, ry float64) {
	if rx < 0 || ry < 0 {
		rx, ry = 0, 0
	}
	if rx == 0 && ry != 0 {
		rx = ry
	}
	if ry == 0 && rx != 0 {
		ry = rx
	}
	if rx > w/2 {
		rx = w / 2
	}
	if ry > h/2 {
		ry = h / 2
	}
	if rx == 0 || ry == 0 {
		p.MoveTo(x, y)
		p.LineTo(x+w, y)
		p.LineTo(x+w, y+h)
		p.LineTo(x, y+h)
		p.Close()
		return
	}
	p.MoveTo(x+rx, y)
	p.LineTo(x+w-rx, y)
	p.ArcTo(rx, ry, 0, false, true, x+w, y+ry)
	p.LineTo(x+w, y+h-ry)
	p.ArcTo(rx, ry, 0, false, true, x+w-rx, y+h)
	p.LineTo(x+rx, y+h)
	p.ArcTo(rx, ry, 0, false, true, x, y+h-ry)
	p.LineTo(x, y+ry)
	p.ArcTo(rx, ry, 0, false, true, x+rx, y)
	p.Close()
}

// AddEllipse appends a full ellipse outline centered at (cx, cy).
func (p *Path) AddEllipse(cx, cy, rx, ry float64) {
	p.MoveTo(cx+rx, cy)
	p.ArcTo(rx, ry, 0, false, true, cx-rx, cy)
	p.ArcTo(rx, ry, 0, false, true, cx+rx, cy)
	p.Close()
}

// AddCircle appends a full circle outline centered at (cx, cy).
func (p *Path) AddCircle(cx, cy, r float64) {
	p.AddEllipse(cx, cy, r, r)
}

// AddLine appends a single line segment.
func (p *Path) AddLine(x1, y1, x2, y2 float64) {
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
}

// AddPoly appends a polyline through the flat (x, y) pairs of points,
// closing the outline when `closed` is set (the 'polygon' shape).
// Odd trailing values and empty input are ignored.
func (p *Path) AddPoly(points []float64, closed bool) {
	if len(points) < 4 {
		return
	}
	p.MoveTo(points[0], points[1])
	for i := 2; i+1 < len(points); i += 2 {
		p.LineTo(points[i], points[i+1])
	}
	if closed {
		p.Close()
	}
}
