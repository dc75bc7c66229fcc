package alchemy

import "fmt"

// Rectangle represents an axis aligned rectangle. The resulting rectangle will
// always be aligned with the X and Y axis.
type Rectangle struct {
	pts [2]Pt
}

func RectanglePt(p1, p2 Pt) Rectangle {
	lx, mx, ly, my := LimitsPts([]Pt{p1, p2})
	return Rectangle{
		pts: [2]Pt{PtXy(lx, ly), PtXy(mx, my)},
	}
}
func (r Rectangle) MinPt() Pt    { return r.pts[0] }
func (r Rectangle) MaxPt() Pt    { return r.pts[1] }
func (r Rectangle) Points() []Pt { return r.pts[:] }
func (r Rectangle) Dims() (Length, Length) {
	return r.pts[0].VectorTo(r.pts[1]).Units()
}
func (r Rectangle) Width() Length {
	w, _ := r.Dims()
	return w
}
func (r Rectangle) Height() Length {
	_, h := r.Dims()
	return h
}
func (r Rectangle) OrErr() (Rectangle, *FloatingPointError) {
	if _, err := r.pts[0].OrErr(); err != nil {
		return r, err
	} else if _, err = r.pts[1].OrErr(); err != nil {
		return r, err
	}
	return r, nil
}
func (r Rectangle) String() string {
	minmax, maxmin := PtXy(r.pts[0].X(), r.pts[1].Y()), PtXy(r.pts[1].X(), r.pts[0].Y())
	return fmt.Sprintf("rect=Polygon(%v, %v, %v, %v)",
		r.pts[0], minmax, r.pts[1], maxmin)
}

// Corners returns the four corners of the rectangle in anti-clockwise order
// starting at MinPt.
func (r Rectangle) Corners() []Pt {
	minmax, maxmin := PtXy(r.pts[0].X(), r.pts[1].Y()), PtXy(r.pts[1].X(), r.pts[0].Y())
	return []Pt{r.pts[0], maxmin, r.pts[1], minmax}
}

// Sides returns the four edges of the rectangle as Segments, in the same
// order as Corners.
func (r Rectangle) Sides() []Segment {
	c := r.Corners()
	return []Segment{
		SegmentPt(c[0], c[1]),
		SegmentPt(c[1], c[2]),
		SegmentPt(c[2], c[3]),
		SegmentPt(c[3], c[0]),
	}
}

// ClipToRectangleSegment clips \c s against the axis-aligned rectangle \c a,
// using the Liang-Barsky parametric clipping test. Returns nil if the
// segment lies entirely outside the rectangle.
func ClipToRectangleSegment(a Rectangle, s Segment) []Segment {
	min, max := a.MinPt(), a.MaxPt()
	x0, y0 := s.Begin().XY()
	x1, y1 := s.End().XY()
	dx, dy := x1-x0, y1-y0

	tmin, tmax := 0.0, 1.0
	clip := func(p, q Length) bool {
		if IsZero(p) {
			return q >= 0
		}
		t := float64(q / p)
		if p < 0 {
			if t > tmax {
				return false
			}
			if t > tmin {
				tmin = t
			}
		} else {
			if t < tmin {
				return false
			}
			if t < tmax {
				tmax = t
			}
		}
		return true
	}

	if !clip(-dx, x0-min.X()) {
		return nil
	}
	if !clip(dx, max.X()-x0) {
		return nil
	}
	if !clip(-dy, y0-min.Y()) {
		return nil
	}
	if !clip(dy, max.Y()-y0) {
		return nil
	}
	if tmin > tmax {
		return nil
	}

	begin := PtXy(x0+Length(tmin)*dx, y0+Length(tmin)*dy)
	end := PtXy(x0+Length(tmax)*dx, y0+Length(tmax)*dy)
	return []Segment{SegmentPt(begin, end)}
}

// Polygon represents an arbitrary ordered, closed sequence of vertices. Used
// as the boundary test shape for point-in-polygon ray casting during nesting
// analysis.
type Polygon struct {
	pts []Pt
}

// PolygonPt creates a polygon from an ordered vertex list. The polygon is
// implicitly closed (the last vertex connects back to the first).
func PolygonPt(pts ...Pt) Polygon {
	cp := make([]Pt, len(pts))
	copy(cp, pts)
	return Polygon{pts: cp}
}

func (p Polygon) Points() []Pt { return p.pts }

// Sides returns the polygon's edges as Segments, including the closing edge
// from the last vertex back to the first.
func (p Polygon) Sides() []Segment {
	n := len(p.pts)
	if n < 2 {
		return nil
	}
	sides := make([]Segment, 0, n)
	for h := 0; h < n; h++ {
		sides = append(sides, SegmentPt(p.pts[h], p.pts[(h+1)%n]))
	}
	return sides
}

// Perimeter sums the length of every side.
func (p Polygon) Perimeter() Length {
	var sum Length
	for _, s := range p.Sides() {
		sum += s.Length()
	}
	return sum
}

// ContainsPt performs a point-in-polygon test using ray casting: a horizontal
// ray cast from \c pt to +X crosses the boundary an odd number of times iff
// \c pt is inside. Used by the nesting pass to decide which wires sit inside
// which other wires.
func (p Polygon) ContainsPt(pt Pt) bool {
	inside := false
	n := len(p.pts)
	for h, k := 0, n-1; h < n; k, h = h, h+1 {
		pih, pik := p.pts[h], p.pts[k]
		xih, yih := pih.XY()
		xik, yik := pik.XY()
		x, y := pt.XY()
		crosses := (yih > y) != (yik > y)
		if crosses {
			xIntersect := xik + (y-yik)/(yih-yik)*(xih-xik)
			if x < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}
