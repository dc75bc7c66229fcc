package alchemy

import (
	"math"
)

// --- Line Dominant Intersections ---
//
// These take an infinite Line as one operand: IntersectionLineBezier and
// IntersectionLineCircle are the gross-test / closest-point building
// blocks the Segment-bounded routines below clip down to a finite extent.

// IntersectionLineBezier returns the intersection points of a line and a
// bezier. Returns an empty slice if the two do not intersect.
func IntersectionLineBezier(a Line, b Bezier) []Pt {
	bb := b.BoundingBox()
	grossIntersections := IntersectionRectangleLine(bb, a)
	if len(grossIntersections) == 0 {
		return nil
	}

	var pts []Pt = RotateOrTranslateToXAxis(a, b.Points())

	// At this point, the line is now the X axis. Find the roots of the curve.
	b2 := BezierPt(pts[0], pts[1], pts[2], pts[3])
	yr := b2.y.Roots()
	roots := make([]Pt, 0, len(yr))
	for h := 0; h < len(yr); h++ {
		if 0 <= yr[h] && yr[h] <= 1.0 {
			roots = append(roots, b.PtAtT(yr[h]))
		}
	}

	return roots
}

// IntersectionLineCircle returns the intersection points of a line and a
// circle. Returns an empty slice if the line does not reach the circle.
func IntersectionLineCircle(a Line, c Circle) []Pt {
	v := a.Vector()
	// Project the circle center onto the line to find the closest point.
	var closest Pt
	switch {
	case a.IsVertical():
		x := a.XForY(0)
		closest = PtXy(x, c.c.Y())
	case a.IsHorizontal():
		y := a.YForX(0)
		closest = PtXy(c.c.X(), y)
	default:
		// foot of perpendicular from c.c onto the line, via its unit direction.
		origin := PtXy(a.XForY(0), 0)
		toCenter := origin.VectorTo(c.c)
		t := toCenter.Dot(v)
		closest = origin.Add(v.Scale(t))
	}

	d := c.c.VectorTo(closest).Magnitude()
	if d > c.r && !IsEqual(d, c.r) {
		return nil
	}

	half := c.r*c.r - d*d
	if half < 0 {
		half = 0
	}
	offset := Length(math.Sqrt(float64(half)))
	if IsZero(offset) {
		return []Pt{closest}
	}
	return []Pt{closest.Add(v.Scale(offset)), closest.Add(v.Scale(-offset))}
}

// --- Segment Dominant Intersections ---
//
// dispatch2D in intersect3.go only ever reaches these: every planarized
// Curve3 Line is bounded, so it is projected to a Segment (see lineOf)
// before any pairwise intersection is attempted.

// IntersectionSegmentSegment returns the intersection points of two segments.
// Returns an empty slice if the two do not intersect.
func IntersectionSegmentSegment(a, b Segment) []Pt {
	a1 := a.End().Y() - a.Begin().Y()
	b1 := a.Begin().X() - a.End().X()
	c1 := a1*a.Begin().X() + b1*a.Begin().Y()

	a2 := b.End().Y() - b.Begin().Y()
	b2 := b.Begin().X() - b.End().X()
	c2 := a2*b.Begin().X() + b2*b.Begin().Y()

	det := a1*b2 - a2*b1
	if IsZero(det) {
		return overlapSegmentSegment(a, b)
	}
	x := (b2*c1 - b1*c2) / det
	y := (a1*c2 - a2*c1) / det

	alx, amx, aly, amy := LimitsPts(a.Points())
	blx, bmx, bly, bmy := LimitsPts(b.Points())

	lx, mx := Maximum(alx, blx), Minimum(amx, bmx)
	ly, my := Maximum(aly, bly), Minimum(amy, bmy)

	if lx <= x && x <= mx && ly <= y && y <= my {
		return []Pt{PtXy(x, y)}
	}
	return nil
}

// overlapSegmentSegment resolves the parallel case of SegmentSegment: two
// collinear segments that share a sub-segment report that sub-segment's
// endpoints, so splitting severs both carriers there. Parallel or collinear
// but disjoint pairs report nothing.
func overlapSegmentSegment(a, b Segment) []Pt {
	dir := a.Begin().VectorTo(a.End())
	den := dir.Dot(dir)
	if IsZero(den) {
		return nil
	}
	for _, p := range b.Points() {
		if !IsZero(dir.Cross(a.Begin().VectorTo(p))) {
			return nil
		}
	}
	k0 := a.Begin().VectorTo(b.Begin()).Dot(dir)
	k1 := a.Begin().VectorTo(b.End()).Dot(dir)
	if k1 < k0 {
		k0, k1 = k1, k0
	}
	lo := Maximum(Length(0), k0)
	hi := Minimum(den, k1)
	if lo > hi && !IsEqual(lo, hi) {
		return nil
	}
	at := func(k Length) Pt { return a.Begin().Add(dir.Scale(k / den)) }
	if IsEqual(lo, hi) {
		return []Pt{at(lo)}
	}
	return []Pt{at(lo), at(hi)}
}

// IntersectionSegmentBezier returns the intersection points of a segment and a
// bezier. Returns an empty slice if the two do not intersect.
func IntersectionSegmentBezier(a Segment, b Bezier) []Pt {
	aLine := LineFromPt(a.Begin(), a.End())
	potentialPoints := IntersectionLineBezier(aLine, b)
	if len(potentialPoints) == 0 {
		return nil
	}

	lx, mx, ly, my := LimitsPts(a.Points())
	points := make([]Pt, 0, len(potentialPoints))
	for _, p := range potentialPoints {
		x, y := p.XY()
		if lx <= x && x <= mx && ly <= y && y <= my {
			points = append(points, p)
		}
	}
	return points
}

// IntersectionSegmentCircle returns the intersection points of a segment and
// a circle, clipped to the segment's extent.
func IntersectionSegmentCircle(a Segment, c Circle) []Pt {
	aLine := LineFromPt(a.Begin(), a.End())
	potential := IntersectionLineCircle(aLine, c)
	if len(potential) == 0 {
		return nil
	}
	lx, mx, ly, my := LimitsPts(a.Points())
	pts := make([]Pt, 0, len(potential))
	for _, p := range potential {
		x, y := p.XY()
		if lx <= x && x <= mx && ly <= y && y <= my {
			pts = append(pts, p)
		}
	}
	return pts
}

// IntersectionSegmentArc returns the intersection points of a segment and an
// arc, clipped to both the segment's extent and the arc's angular span.
func IntersectionSegmentArc(a Segment, arc Arc) []Pt {
	pts := IntersectionSegmentCircle(a, arc.Circle())
	return filterPtsOnArc(arc, pts)
}

// --- Circle/Arc Dominant Intersections ---

// IntersectionCircleCircle returns the 0, 1, or 2 intersection points of two
// circles, using the classic two-circle construction.
func IntersectionCircleCircle(a, b Circle) []Pt {
	d := a.c.VectorTo(b.c).Magnitude()
	if IsZero(d) {
		// Concentric circles either coincide (infinite/no discrete points) or
		// never meet.
		return nil
	}
	if d > a.r+b.r && !IsEqual(d, a.r+b.r) {
		return nil
	}
	if d < Length(math.Abs(float64(a.r-b.r))) && !IsEqual(d, Length(math.Abs(float64(a.r-b.r)))) {
		return nil
	}

	// distance from a.c to the radical line, along the a->b axis.
	x := (d*d + a.r*a.r - b.r*b.r) / (2 * d)
	h2 := a.r*a.r - x*x
	if h2 < 0 {
		h2 = 0
	}
	h := Length(math.Sqrt(float64(h2)))

	axis := a.c.VectorTo(b.c).Normalize()
	ax, ay := axis.XY()
	perp := VectorIj(-ay, ax)
	mid := a.c.Add(axis.Scale(x))

	if IsZero(h) {
		return []Pt{mid}
	}
	return []Pt{mid.Add(perp.Scale(h)), mid.Add(perp.Scale(-h))}
}

// IntersectionCircleArc returns the intersection points of a circle and an
// arc, filtered to the arc's angular span.
func IntersectionCircleArc(a Circle, arc Arc) []Pt {
	pts := IntersectionCircleCircle(a, arc.Circle())
	return filterPtsOnArc(arc, pts)
}

// IntersectionArcArc returns the intersection points of two arcs, filtered to
// both arcs' angular spans.
func IntersectionArcArc(a, b Arc) []Pt {
	pts := IntersectionCircleCircle(a.Circle(), b.Circle())
	pts = filterPtsOnArc(a, pts)
	pts = filterPtsOnArc(b, pts)
	return pts
}

// IntersectionBezierCircle returns the intersection points of a bezier and a
// circle.
func IntersectionBezierCircle(b Bezier, c Circle) []Pt {
	// |B(t)|^2 - r^2 is a degree-6 polynomial in t with no closed-form root
	// finder in this package (Cubic tops out at degree 3), so this walks a
	// fine polyline approximation and intersects each chord that crosses the
	// circle with the circle directly, gated by a cheap bounding-box reject.
	bbox := b.BoundingBox()
	cbox := c.BoundingBox()
	if len(IntersectionRectangleRectangle(bbox, cbox)) == 0 {
		return nil
	}

	const steps = 64
	var pts []Pt
	prev := b.PtAtT(0)
	prevSide := prev.VectorTo(c.c).Magnitude() <= c.r
	for h := 1; h <= steps; h++ {
		t := float64(h) / steps
		curr := b.PtAtT(t)
		side := curr.VectorTo(c.c).Magnitude() <= c.r
		if side != prevSide {
			seg := SegmentPt(prev, curr)
			pts = append(pts, IntersectionSegmentCircle(seg, c)...)
		}
		prev, prevSide = curr, side
	}
	return pts
}

// IntersectionBezierArc returns the intersection points of a bezier and an
// arc, filtered to the arc's angular span.
func IntersectionBezierArc(b Bezier, arc Arc) []Pt {
	pts := IntersectionBezierCircle(b, arc.Circle())
	return filterPtsOnArc(arc, pts)
}

// filterPtsOnArc keeps only the points whose angle (relative to the arc's
// center) falls within the arc's span.
func filterPtsOnArc(arc Arc, pts []Pt) []Pt {
	if len(pts) == 0 {
		return nil
	}
	ret := make([]Pt, 0, len(pts))
	for _, p := range pts {
		theta := arc.c.VectorTo(p).Angle()
		if arc.ContainsTheta(theta) {
			ret = append(ret, p)
		}
	}
	if len(ret) == 0 {
		return nil
	}
	return ret
}

// --- Rectangle Dominant Intersections ---
//
// Used as the cheap gross-reject before the real curve-vs-curve tests above:
// IntersectionLineBezier, IntersectionBezierCircle, and IntersectionBezier-
// Bezier's recursive subdivision all reject on bounding boxes first.

// IntersectionRectangleLine clips the infinite line b to a's bounds and
// returns the clipped segment's endpoints.
func IntersectionRectangleLine(a Rectangle, b Line) []Pt {
	min, max := a.MinPt(), a.MaxPt()

	var s Segment
	switch {
	case b.IsVertical():
		x := b.XForY(0)
		s = SegmentPt(PtXy(x, min.Y()), PtXy(x, max.Y()))
	case b.IsHorizontal():
		y := b.YForX(0)
		s = SegmentPt(PtXy(min.X(), y), PtXy(max.X(), y))
	default:
		ly, lerr := b.YForX(min.X()).OrErr()
		my, merr := b.YForX(max.X()).OrErr()
		if lerr == nil && merr == nil {
			s = SegmentPt(PtXy(min.X(), ly), PtXy(max.X(), my))
		} else {
			// Don't check for errors here since there is no fall
			// back. let the Segment carry the error.
			lx := b.XForY(min.Y())
			mx := b.XForY(max.Y())
			s = SegmentPt(PtXy(lx, min.Y()), PtXy(mx, max.Y()))
		}
	}
	clipped := ClipToRectangleSegment(a, s)
	if len(clipped) == 0 {
		return nil
	}
	pts := make([]Pt, 0, len(clipped)*2)
	for h := 0; h < len(clipped); h++ {
		pts = append(pts, clipped[h].Points()...)
	}
	return pts
}

// IntersectionRectangleRectangle returns the overlapping sub-rectangle of a
// and b, or nil if they don't overlap: the axis-aligned bounding-box reject
// that gates every recursive Bezier subdivision step below.
func IntersectionRectangleRectangle(a Rectangle, b Rectangle) []Rectangle {
	overlap := func(amax, bmax Length) Length {
		if bmax < amax {
			return bmax
		}
		return amax
	}

	var lx, mx Length
	switch {
	case IsEqual(a.MinPt().X(), b.MinPt().X()):
		lx = a.MinPt().X()
		mx = overlap(a.MaxPt().X(), b.MaxPt().X())
	case b.MinPt().X() < a.MinPt().X():
		a, b = b, a
		fallthrough
	case a.MinPt().X() < b.MinPt().X():
		if b.MinPt().X() > a.MaxPt().X() {
			return nil
		}
		lx = b.MinPt().X()
		mx = overlap(a.MaxPt().X(), b.MaxPt().X())
	}

	var ly, my Length
	switch {
	case IsEqual(a.MinPt().Y(), b.MinPt().Y()):
		ly = a.MinPt().Y()
		my = overlap(a.MaxPt().Y(), b.MaxPt().Y())
	case b.MinPt().Y() < a.MinPt().Y():
		a, b = b, a
		fallthrough
	case a.MinPt().Y() < b.MinPt().Y():
		if b.MinPt().Y() > a.MaxPt().Y() {
			return nil
		}
		ly = b.MinPt().Y()
		my = overlap(a.MaxPt().Y(), b.MaxPt().Y())
	}

	return []Rectangle{RectanglePt(PtXy(lx, ly), PtXy(mx, my))}
}

// --- Bezier Dominant Intersections ---

// IntersectionBezierBezier finds intersections between two beziers by
// recursive bounding-box subdivision: each half-split pair is rejected by
// its FastBox overlap, or subdivided again while either box is 0.005 or
// larger in some dimension, until both boxes are small enough to treat as a
// single point pair.
func IntersectionBezierBezier(a, b Bezier) []Pt {
	type combination struct {
		a, b Pt
	}

	var xsectfunc func(Bezier, Bezier) []combination
	xsectfunc = func(a, b Bezier) []combination {
		var combos []combination
		abox, bbox := a.FastBox(), b.FastBox()
		xsect := IntersectionRectangleRectangle(abox, bbox)
		if len(xsect) > 0 {
			aw, ah := abox.Dims()
			bw, bh := bbox.Dims()
			if aw < 0.005 && ah < 0.005 && bw < 0.005 && bh < 0.005 {
				return []combination{combination{
					a.PtAtT(0.5), b.PtAtT(0.5),
				}}
			}
			a1, a2 := a.SplitAtT(0.5)
			b1, b2 := b.SplitAtT(0.5)
			combos = append(combos, xsectfunc(a1, b1)...)
			combos = append(combos, xsectfunc(a1, b2)...)
			combos = append(combos, xsectfunc(a2, b1)...)
			combos = append(combos, xsectfunc(a2, b2)...)
		}
		return combos
	}

	buffer := xsectfunc(a, b)

	if len(buffer) == 0 {
		return nil
	}

	ap := buffer[0].a
	bp := buffer[0].b
	lastx, lasty := ap.XY()
	dist := ap.VectorTo(bp).Magnitude()
	ret := []Pt{ap}
	for _, pair := range buffer {
		ap = pair.a
		bp = pair.b
		x, y := ap.XY()
		if math.Abs(float64(x-lastx)) < 0.05 && math.Abs(float64(y-lasty)) < 0.05 {
			newDist := ap.VectorTo(bp).Magnitude()
			if newDist < dist {
				lastx, lasty = x, y
				ret[len(ret)-1] = ap
				dist = newDist
			}
		} else {
			lastx, lasty = x, y
			dist = ap.VectorTo(bp).Magnitude()
			ret = append(ret, ap)
		}
	}
	SortPts(ret)
	return ret
}
