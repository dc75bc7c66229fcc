package alchemy

import (
	"math"
	"testing"
)

func TestCurve3LineEndpointsAndLength(t *testing.T) {
	a := Point3Xyz(0, 0, 0)
	b := Point3Xyz(3, 4, 0)
	line := NewLine3(a, b)

	begin, end := line.Endpoints()
	if !AlmostPoint3(begin, a) || !AlmostPoint3(end, b) {
		t.Fatalf("Endpoints() = (%v, %v), want (%v, %v)", begin, end, a, b)
	}
	if !Almost(line.Length(), 5) {
		t.Fatalf("Length() = %v, want 5", line.Length())
	}
	if line.IsClosed() {
		t.Fatalf("a line must never report itself as closed")
	}
}

func TestCurve3CircleIsClosedAndLength(t *testing.T) {
	c := NewCircle3(Point3Origin, 2, UnitZ)
	if !c.IsClosed() {
		t.Fatalf("a full circle must be closed")
	}
	begin, end := c.Endpoints()
	if !AlmostPoint3(begin, end) {
		t.Fatalf("a full circle's begin/end must coincide, got %v / %v", begin, end)
	}
	want := Length(2 * math.Pi * 2)
	if !Almost(c.Length(), want) {
		t.Fatalf("Length() = %v, want %v", c.Length(), want)
	}
}

func TestCurve3ArcPartialSweepIsOpen(t *testing.T) {
	a := NewArc3(Point3Origin, 1, UnitZ, 0, Radians(math.Pi/2))
	if a.IsClosed() {
		t.Fatalf("a quarter arc must not be closed")
	}
	want := Length(math.Pi / 2)
	if !Almost(a.Length(), want) {
		t.Fatalf("Length() = %v, want %v", a.Length(), want)
	}
}

func TestCurve3ArcFullSweepIsClosed(t *testing.T) {
	a := NewArc3(Point3Origin, 1, UnitZ, 0, Radians(2*math.Pi))
	if !a.IsClosed() {
		t.Fatalf("a full-sweep arc must be closed")
	}
}

func TestCurve3LineSplitAtSinglePoint(t *testing.T) {
	horiz := NewLine3(Point3Xyz(-1, 0, 0), Point3Xyz(1, 0, 0))
	vert := NewLine3(Point3Xyz(0, -1, 0), Point3Xyz(0, 1, 0))

	pieces := horiz.Split(vert)
	if len(pieces) != 2 {
		t.Fatalf("len(pieces) = %d, want 2", len(pieces))
	}
	for _, piece := range pieces {
		if piece.Kind() != CurveKindLine {
			t.Fatalf("split piece changed kind: got %v", piece.Kind())
		}
		if !Almost(piece.Length(), 1) {
			t.Fatalf("split piece length = %v, want 1", piece.Length())
		}
	}
}

func TestCurve3SplitMultiDedupesCoincidentParams(t *testing.T) {
	base := NewLine3(Point3Xyz(-2, 0, 0), Point3Xyz(2, 0, 0))
	// Two crossers through the same point (0,0,0): splitParams must not
	// produce two interior parameters that collapse the middle fragment
	// to zero length.
	crossA := NewLine3(Point3Xyz(0, -1, 0), Point3Xyz(0, 1, 0))
	crossB := NewLine3(Point3Xyz(0, -2, 0), Point3Xyz(0, 2, 0))

	pieces := base.SplitMulti([]Curve3{crossA, crossB})
	if len(pieces) != 2 {
		t.Fatalf("len(pieces) = %d, want 2 (deduped crossing point)", len(pieces))
	}
}

func TestCurve3SplitMultiNoIntersectionReturnsOriginal(t *testing.T) {
	base := NewLine3(Point3Xyz(0, 0, 0), Point3Xyz(1, 0, 0))
	other := NewLine3(Point3Xyz(0, 5, 0), Point3Xyz(1, 5, 0))

	pieces := base.SplitMulti([]Curve3{other})
	if len(pieces) != 1 {
		t.Fatalf("len(pieces) = %d, want 1 (no intersection)", len(pieces))
	}
	if pieces[0].ID() != base.ID() {
		t.Fatalf("unsplit curve must keep its original identity")
	}
}

func TestCurve3UnsplitCircleStaysCircleKind(t *testing.T) {
	c := NewCircle3(Point3Origin, 1, UnitZ)
	pieces := c.SplitMulti(nil)
	if len(pieces) != 1 || pieces[0].Kind() != CurveKindCircle {
		t.Fatalf("an unsplit circle must remain CurveKindCircle, got %+v", pieces)
	}
}

func TestCurve3CircleSplitIntoArcs(t *testing.T) {
	c := NewCircle3(Point3Origin, 1, UnitZ)
	line := NewLine3(Point3Xyz(-2, 0, 0), Point3Xyz(2, 0, 0))

	pieces := c.Split(line)
	if len(pieces) < 2 {
		t.Fatalf("len(pieces) = %d, want at least 2", len(pieces))
	}
	var total Length
	for _, piece := range pieces {
		if piece.Kind() != CurveKindArc {
			t.Fatalf("a circle split by a line must yield arcs, got %v", piece.Kind())
		}
		total += piece.Length()
	}
	if !Almost(total, c.Length()) {
		t.Fatalf("split fragments must cover the whole circle: got total length %v, want %v", total, c.Length())
	}
}

func TestCurve3TransformAssignsFreshIdentity(t *testing.T) {
	line := NewLine3(Point3Origin, Point3Xyz(1, 0, 0))
	moved := line.Transform(Matrix4Identity)
	if moved.ID() == line.ID() {
		t.Fatalf("Transform must assign a fresh identity")
	}
	a, b := moved.Endpoints()
	wantA, wantB := line.Endpoints()
	if !AlmostPoint3(a, wantA) || !AlmostPoint3(b, wantB) {
		t.Fatalf("identity transform must not move endpoints")
	}
}

func TestCurve3ArcWithNegativeZNormalIntersectsAtTrueGeometry(t *testing.T) {
	// A half-turn arc with normal -Z: localPlane flips V to (0,-1,0), so the
	// true world path sweeps the lower semicircle (y <= 0), not its
	// upper-semicircle mirror. A line crossing the lower semicircle must
	// intersect it; arcOf building the 2D Arc straight from start/sweep
	// without the same flip would test against the mirrored upper half and
	// miss the crossing entirely.
	negZ := Vec3Ijk(0, 0, -1)
	lower := NewArc3(Point3Origin, 1, negZ, 0, Radians(math.Pi))
	begin, end := lower.Endpoints()
	if begin.Y() > EPS || end.Y() > EPS {
		t.Fatalf("lower-semicircle arc endpoints must have y <= 0, got %v / %v", begin, end)
	}

	crosser := NewLine3(Point3Xyz(-2, -0.5, 0), Point3Xyz(2, -0.5, 0))
	pts := intersectCurve3(lower, crosser)
	if len(pts) != 2 {
		t.Fatalf("len(pts) = %d, want 2 intersections against the lower semicircle", len(pts))
	}
	for _, p := range pts {
		if !Almost(p.Y(), -0.5) {
			t.Fatalf("intersection point %v should lie on y=-0.5, not its mirror", p)
		}
	}
}

func TestCurve3BezierSplitPreservesEndpoints(t *testing.T) {
	bez := NewBezier3(
		Point3Xyz(0, 0, 0), Point3Xyz(1, 2, 0), Point3Xyz(2, -2, 0), Point3Xyz(3, 0, 0),
	)
	crosser := NewLine3(Point3Xyz(1.5, -3, 0), Point3Xyz(1.5, 3, 0))
	pieces := bez.Split(crosser)
	if len(pieces) < 2 {
		t.Fatalf("len(pieces) = %d, want at least 2", len(pieces))
	}
	begin, _ := pieces[0].Endpoints()
	_, end := pieces[len(pieces)-1].Endpoints()
	wantBegin, wantEnd := bez.Endpoints()
	if !AlmostPoint3(begin, wantBegin) || !AlmostPoint3(end, wantEnd) {
		t.Fatalf("split fragments must retrace the original curve's endpoints")
	}
}
