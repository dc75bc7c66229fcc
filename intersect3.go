package alchemy

// intersectCurve3 dispatches a pairwise intersection between two planarized
// (z almost 0, same work-plane-local frame) Curve3 values to the matching 2D
// routine in intersection.go, then lifts the resulting points back to
// Point3 at z=0. This is the "intersection operator... a dispatch table over
// variant pairs" required by the curve interface.
func intersectCurve3(a, b Curve3) []Point3 {
	pts := dispatch2D(a, b)
	out := make([]Point3, 0, len(pts))
	for _, p := range pts {
		out = append(out, Point3FromPt(p))
	}
	return out
}

func dispatch2D(a, b Curve3) []Pt {
	switch a.kind {
	case CurveKindLine:
		al := lineOf(a)
		switch b.kind {
		case CurveKindLine:
			return IntersectionSegmentSegment(al, lineOf(b))
		case CurveKindCircle:
			return IntersectionSegmentCircle(al, circleOf(b))
		case CurveKindArc:
			return IntersectionSegmentArc(al, arcOf(b))
		case CurveKindBezier:
			return IntersectionSegmentBezier(al, b.bezier2())
		}
	case CurveKindCircle:
		ac := circleOf(a)
		switch b.kind {
		case CurveKindLine:
			return IntersectionSegmentCircle(lineOf(b), ac)
		case CurveKindCircle:
			return IntersectionCircleCircle(ac, circleOf(b))
		case CurveKindArc:
			return IntersectionCircleArc(ac, arcOf(b))
		case CurveKindBezier:
			return IntersectionBezierCircle(b.bezier2(), ac)
		}
	case CurveKindArc:
		aa := arcOf(a)
		switch b.kind {
		case CurveKindLine:
			return IntersectionSegmentArc(lineOf(b), aa)
		case CurveKindCircle:
			return IntersectionCircleArc(circleOf(b), aa)
		case CurveKindArc:
			return IntersectionArcArc(aa, arcOf(b))
		case CurveKindBezier:
			return IntersectionBezierArc(b.bezier2(), aa)
		}
	case CurveKindBezier:
		ab := a.bezier2()
		switch b.kind {
		case CurveKindLine:
			return IntersectionSegmentBezier(lineOf(b), ab)
		case CurveKindCircle:
			return IntersectionBezierCircle(ab, circleOf(b))
		case CurveKindArc:
			return IntersectionBezierArc(ab, arcOf(b))
		case CurveKindBezier:
			return IntersectionBezierBezier(ab, b.bezier2())
		}
	}
	return nil
}

// lineOf returns the Segment for a planarized Line curve.
func lineOf(c Curve3) Segment {
	return SegmentPt(c.pts[0].Pt2(), c.pts[1].Pt2())
}

// circleOf returns the Circle for a planarized Circle curve, centered at
// its local-plane origin projected into the shared 2D frame.
func circleOf(c Curve3) Circle {
	return CirclePt(c.pts[0].Pt2(), c.radius)
}

// arcOf returns the Arc for a planarized Arc curve, routing start/sweep
// through the same V-flip localPlane applies for a -Z normal (see
// localPlane, arc2, Sample). Without this, an arc stored with normal -Z
// would intersect as its own Y-mirror about the center: localPlane's V
// flips to (0,-1,0) in that case, so the world angle at local parameter
// theta is -theta, not theta.
func arcOf(c Curve3) Arc {
	start, sweep := c.start, c.sweep
	_, _, k := c.normal.IJK()
	if IsEqual(k, -1) {
		start, sweep = -start, -sweep
	}
	return ArcPt(c.pts[0].Pt2(), c.radius, start, sweep)
}
