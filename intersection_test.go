package alchemy

import (
	"math"
	"testing"
)

func TestSegmentIntersection(t *testing.T) {
	segSegTests := []struct {
		a, b Segment
		pts  []Pt
	}{
		{
			//0
			SegmentPt(PtXy(-1, 0), PtXy(1, 0)), SegmentPt(PtXy(0, -1), PtXy(0, 1)),
			[]Pt{PtXy(0, 0)},
		}, {
			SegmentPt(PtXy(0, 0), PtXy(4, 4)), SegmentPt(PtXy(0, 4), PtXy(4, 0)),
			[]Pt{PtXy(2, 2)},
		}, {
			// carrier lines cross at (2,0), outside a's extent
			SegmentPt(PtXy(-1, 0), PtXy(1, 0)), SegmentPt(PtXy(2, -1), PtXy(2, 1)),
			nil,
		}, {
			// parallel, never collinear
			SegmentPt(PtXy(0, 0), PtXy(1, 0)), SegmentPt(PtXy(0, 1), PtXy(1, 1)),
			nil,
		}, {
			// collinear with a shared sub-segment
			SegmentPt(PtXy(0, 0), PtXy(2, 0)), SegmentPt(PtXy(1, 0), PtXy(3, 0)),
			[]Pt{PtXy(1, 0), PtXy(2, 0)},
		}, {
			//5 collinear, touching end to end
			SegmentPt(PtXy(0, 0), PtXy(1, 0)), SegmentPt(PtXy(1, 0), PtXy(2, 0)),
			[]Pt{PtXy(1, 0)},
		}, {
			// collinear, disjoint
			SegmentPt(PtXy(0, 0), PtXy(1, 0)), SegmentPt(PtXy(2, 0), PtXy(3, 0)),
			nil,
		},
	}
	for h, test := range segSegTests {
		a, b := test.a, test.b
		pts := IntersectionSegmentSegment(a, b)
		if len(pts) != len(test.pts) {
			t.Fatalf("[%d]IntersectionSegmentSegment(%v, %v) (length) failed. %v != %v",
				h, a, b, pts, test.pts)
		}
		for i := 0; i < len(pts); i++ {
			if !IsEqualPair(pts[i], test.pts[i]) {
				t.Errorf("[%d][%d]IntersectionSegmentSegment(%v, %v) failed. %v != %v",
					h, i, a, b, pts[i], test.pts[i])
			}
		}
	}
}

func TestSegmentCircleIntersection(t *testing.T) {
	segCircleTests := []struct {
		a   Segment
		c   Circle
		pts []Pt
	}{
		{
			//0 secant through the center
			SegmentPt(PtXy(-2, 0), PtXy(2, 0)), CirclePt(PtXy(0, 0), 1),
			[]Pt{PtXy(1, 0), PtXy(-1, 0)},
		}, {
			// tangent at the top
			SegmentPt(PtXy(-2, 1), PtXy(2, 1)), CirclePt(PtXy(0, 0), 1),
			[]Pt{PtXy(0, 1)},
		}, {
			// carrier line misses entirely
			SegmentPt(PtXy(-2, 3), PtXy(2, 3)), CirclePt(PtXy(0, 0), 1),
			nil,
		}, {
			// secant clipped to the segment's extent
			SegmentPt(PtXy(0, 0), PtXy(2, 0)), CirclePt(PtXy(0, 0), 1),
			[]Pt{PtXy(1, 0)},
		},
	}
	for h, test := range segCircleTests {
		pts := IntersectionSegmentCircle(test.a, test.c)
		if len(pts) != len(test.pts) {
			t.Fatalf("[%d]IntersectionSegmentCircle(%v, %v) (length) failed. %v != %v",
				h, test.a, test.c, pts, test.pts)
		}
		for i := 0; i < len(pts); i++ {
			if !IsEqualPair(pts[i], test.pts[i]) {
				t.Errorf("[%d][%d]IntersectionSegmentCircle(%v, %v) failed. %v != %v",
					h, i, test.a, test.c, pts[i], test.pts[i])
			}
		}
	}
}

func TestCircleCircleIntersection(t *testing.T) {
	sin60 := Length(math.Sqrt(3) / 2)
	circleCircleTests := []struct {
		a, b Circle
		pts  []Pt
	}{
		{
			//0 two crossings
			CirclePt(PtXy(0, 0), 1), CirclePt(PtXy(1, 0), 1),
			[]Pt{PtXy(0.5, sin60), PtXy(0.5, -sin60)},
		}, {
			// externally tangent
			CirclePt(PtXy(0, 0), 1), CirclePt(PtXy(2, 0), 1),
			[]Pt{PtXy(1, 0)},
		}, {
			// concentric
			CirclePt(PtXy(0, 0), 1), CirclePt(PtXy(0, 0), 2),
			nil,
		}, {
			// separate
			CirclePt(PtXy(0, 0), 1), CirclePt(PtXy(5, 0), 1),
			nil,
		}, {
			// one strictly inside the other
			CirclePt(PtXy(0, 0), 3), CirclePt(PtXy(1, 0), 1),
			nil,
		},
	}
	for h, test := range circleCircleTests {
		pts := IntersectionCircleCircle(test.a, test.b)
		if len(pts) != len(test.pts) {
			t.Fatalf("[%d]IntersectionCircleCircle(%v, %v) (length) failed. %v != %v",
				h, test.a, test.b, pts, test.pts)
		}
		for i := 0; i < len(pts); i++ {
			if !IsEqualPair(pts[i], test.pts[i]) {
				t.Errorf("[%d][%d]IntersectionCircleCircle(%v, %v) failed. %v != %v",
					h, i, test.a, test.b, pts[i], test.pts[i])
			}
		}
	}
}

func TestSegmentArcIntersection(t *testing.T) {
	cos30 := Length(math.Sqrt(3) / 2)
	upper := ArcPt(PtXy(0, 0), 1, 0, Radians(math.Pi))
	segArcTests := []struct {
		a   Segment
		arc Arc
		pts []Pt
	}{
		{
			//0 crosses the spanned half twice
			SegmentPt(PtXy(-2, 0.5), PtXy(2, 0.5)), upper,
			[]Pt{PtXy(cos30, 0.5), PtXy(-cos30, 0.5)},
		}, {
			// crosses only the unspanned half
			SegmentPt(PtXy(-2, -0.5), PtXy(2, -0.5)), upper,
			nil,
		},
	}
	for h, test := range segArcTests {
		pts := IntersectionSegmentArc(test.a, test.arc)
		if len(pts) != len(test.pts) {
			t.Fatalf("[%d]IntersectionSegmentArc(%v, %v) (length) failed. %v != %v",
				h, test.a, test.arc, pts, test.pts)
		}
		for i := 0; i < len(pts); i++ {
			if !IsEqualPair(pts[i], test.pts[i]) {
				t.Errorf("[%d][%d]IntersectionSegmentArc(%v, %v) failed. %v != %v",
					h, i, test.a, test.arc, pts[i], test.pts[i])
			}
		}
	}
}

func TestArcArcIntersection(t *testing.T) {
	sin60 := Length(math.Sqrt(3) / 2)
	a := ArcPt(PtXy(0, 0), 1, 0, Radians(math.Pi))
	b := ArcPt(PtXy(1, 0), 1, 0, Radians(math.Pi))
	pts := IntersectionArcArc(a, b)
	if len(pts) != 1 {
		t.Fatalf("IntersectionArcArc(%v, %v) (length) failed. got %v, want 1 point", a, b, pts)
	}
	if !IsEqualPair(pts[0], PtXy(0.5, sin60)) {
		t.Errorf("IntersectionArcArc(%v, %v) failed. %v != %v", a, b, pts[0], PtXy(0.5, sin60))
	}
}

func TestSegmentBezierIntersection(t *testing.T) {
	bez := BezierPt(PtXy(0, 0), PtXy(1, 2), PtXy(2, -2), PtXy(3, 0))
	seg := SegmentPt(PtXy(1.5, -3), PtXy(1.5, 3))
	pts := IntersectionSegmentBezier(seg, bez)
	if len(pts) != 1 {
		t.Fatalf("IntersectionSegmentBezier(%v, %v) (length) failed. got %v, want 1 point", seg, bez, pts)
	}
	if !IsEqualPair(pts[0], PtXy(1.5, 0)) {
		t.Errorf("IntersectionSegmentBezier(%v, %v) failed. %v != %v", seg, bez, pts[0], PtXy(1.5, 0))
	}
}

func TestBezierCircleIntersection(t *testing.T) {
	// A degenerate bezier along x=1.5 crossing a circle centered on it.
	bez := BezierPt(PtXy(1.5, -2), PtXy(1.5, -1), PtXy(1.5, 1), PtXy(1.5, 2))
	c := CirclePt(PtXy(1.5, 0), 1)
	pts := IntersectionBezierCircle(bez, c)
	if len(pts) != 2 {
		t.Fatalf("IntersectionBezierCircle(%v, %v) (length) failed. got %v, want 2 points", bez, c, pts)
	}
	want := []Pt{PtXy(1.5, -1), PtXy(1.5, 1)}
	for i := 0; i < len(pts); i++ {
		if !IsEqualPair(pts[i], want[i]) {
			t.Errorf("[%d]IntersectionBezierCircle(%v, %v) failed. %v != %v", i, bez, c, pts[i], want[i])
		}
	}
}

func TestBezierBezierIntersection(t *testing.T) {
	a := BezierPt(PtXy(0, 0), PtXy(1, 2), PtXy(2, -2), PtXy(3, 0))
	b := BezierPt(PtXy(1.5, -2), PtXy(1.5, -1), PtXy(1.5, 1), PtXy(1.5, 2))
	pts := IntersectionBezierBezier(a, b)
	if len(pts) == 0 {
		t.Fatalf("IntersectionBezierBezier(%v, %v) found no crossing", a, b)
	}
	// Subdivision converges to ~0.005 boxes; verify every reported point
	// clusters around the single true crossing at (1.5, 0).
	for i, p := range pts {
		x, y := p.XY()
		if math.Abs(float64(x-1.5)) > 0.05 || math.Abs(float64(y)) > 0.05 {
			t.Errorf("[%d]IntersectionBezierBezier(%v, %v) failed. %v not near (1.5, 0)", i, a, b, p)
		}
	}
}
