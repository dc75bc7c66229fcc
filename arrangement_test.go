package alchemy

import "testing"

func trimmedLine(a, b Point3) TrimmedCurve {
	return newTrimmedCurve(NewLine3(a, b), NewLine3(a, b))
}

func TestRemoveDanglingSegmentsDropsUnshared(t *testing.T) {
	// A closed triangle plus one loose whisker hanging off a vertex.
	p0, p1, p2 := Point3Xyz(0, 0, 0), Point3Xyz(1, 0, 0), Point3Xyz(0, 1, 0)
	whiskerEnd := Point3Xyz(5, 5, 0)

	fragments := []TrimmedCurve{
		trimmedLine(p0, p1),
		trimmedLine(p1, p2),
		trimmedLine(p2, p0),
		trimmedLine(p0, whiskerEnd),
	}

	kept, _ := removeDanglingSegments(fragments)
	if len(kept) != 3 {
		t.Fatalf("len(kept) = %d, want 3 (whisker removed)", len(kept))
	}
	for _, f := range kept {
		if AlmostPoint3(f.Bounds[1], whiskerEnd) || AlmostPoint3(f.Bounds[0], whiskerEnd) {
			t.Fatalf("whisker fragment survived dangling-segment removal")
		}
	}
}

func TestRemoveDanglingSegmentsIsIdempotent(t *testing.T) {
	p0, p1, p2 := Point3Xyz(0, 0, 0), Point3Xyz(1, 0, 0), Point3Xyz(0, 1, 0)
	fragments := []TrimmedCurve{
		trimmedLine(p0, p1),
		trimmedLine(p1, p2),
		trimmedLine(p2, p0),
	}
	once, _ := removeDanglingSegments(fragments)
	twice, _ := removeDanglingSegments(once)
	if len(once) != len(twice) {
		t.Fatalf("dangling removal not idempotent: once=%d twice=%d", len(once), len(twice))
	}
}

func TestRemoveDanglingSegmentsCascades(t *testing.T) {
	// A chain a-b-c-d where d is unshared; removing d-c dangles c-b in turn.
	a, b, c, d := Point3Xyz(0, 0, 0), Point3Xyz(1, 0, 0), Point3Xyz(2, 0, 0), Point3Xyz(3, 0, 0)
	fragments := []TrimmedCurve{
		trimmedLine(a, b),
		trimmedLine(b, c),
		trimmedLine(c, d),
	}
	kept, _ := removeDanglingSegments(fragments)
	if len(kept) != 0 {
		t.Fatalf("len(kept) = %d, want 0: an open chain has no shared far endpoints", len(kept))
	}
}

func TestRemoveDanglingSegmentsKeepsClosedCircleAlways(t *testing.T) {
	circle := newTrimmedCurve(NewCircle3(Point3Origin, 1, UnitZ), NewCircle3(Point3Origin, 1, UnitZ))
	kept, _ := removeDanglingSegments([]TrimmedCurve{circle})
	if len(kept) != 1 {
		t.Fatalf("a standalone closed fragment must never be treated as dangling")
	}
}

func TestRemoveDanglingSegmentsDropsZeroLength(t *testing.T) {
	p := Point3Xyz(0, 0, 0)
	degenerate := trimmedLine(p, p)
	kept, diags := removeDanglingSegments([]TrimmedCurve{degenerate})
	if len(kept) != 0 {
		t.Fatalf("a zero-length fragment must be dropped")
	}
	if len(diags) != 1 || diags[0].Kind != DiagDegenerateCurve {
		t.Fatalf("expected one DegenerateCurve diagnostic, got %+v", diags)
	}
}

func TestBuildIslandsPartitionsByConnectivity(t *testing.T) {
	// Two disjoint triangles.
	a0, a1, a2 := Point3Xyz(0, 0, 0), Point3Xyz(1, 0, 0), Point3Xyz(0, 1, 0)
	b0, b1, b2 := Point3Xyz(10, 0, 0), Point3Xyz(11, 0, 0), Point3Xyz(10, 1, 0)

	fragments := []TrimmedCurve{
		trimmedLine(a0, a1), trimmedLine(a1, a2), trimmedLine(a2, a0),
		trimmedLine(b0, b1), trimmedLine(b1, b2), trimmedLine(b2, b0),
	}
	islands := buildIslands(fragments)
	if len(islands) != 2 {
		t.Fatalf("len(islands) = %d, want 2", len(islands))
	}
	for _, island := range islands {
		if len(island) != 3 {
			t.Fatalf("each triangle island should have 3 fragments, got %d", len(island))
		}
	}
}

func TestClockwiseSign(t *testing.T) {
	a := PtXy(0, 0)
	b := PtXy(1, 0)
	// The measure is the 2D cross product of (b-a) and (c-b): walking along
	// +x, a turn toward +y is positive (clockwise in the screen-down frame),
	// a turn toward -y is negative, straight ahead is zero.
	up := PtXy(1, 1)
	down := PtXy(1, -1)
	straight := PtXy(2, 0)

	if clockwise(a, b, up) <= 0 {
		t.Fatalf("turn toward +y must measure positive, got %v", clockwise(a, b, up))
	}
	if clockwise(a, b, down) >= 0 {
		t.Fatalf("turn toward -y must measure negative, got %v", clockwise(a, b, down))
	}
	if !IsZero(clockwise(a, b, straight)) {
		t.Fatalf("continuing straight must measure zero, got %v", clockwise(a, b, straight))
	}
}

func TestSignedAreaOrientation(t *testing.T) {
	ccwSquare := []Pt{PtXy(0, 0), PtXy(1, 0), PtXy(1, 1), PtXy(0, 1)}
	cwSquare := []Pt{PtXy(0, 0), PtXy(0, 1), PtXy(1, 1), PtXy(1, 0)}

	if signedArea(ccwSquare) <= 0 {
		t.Fatalf("counter-clockwise square must have positive signed area, got %v", signedArea(ccwSquare))
	}
	if signedArea(cwSquare) >= 0 {
		t.Fatalf("clockwise square must have negative signed area, got %v", signedArea(cwSquare))
	}
	if isClockwise(ccwSquare) {
		t.Fatalf("counter-clockwise square must not be reported as clockwise")
	}
	if !isClockwise(cwSquare) {
		t.Fatalf("clockwise square must be reported as clockwise")
	}
}

func TestBuildLoopsFromIslandFindsSingleSquareFace(t *testing.T) {
	p0, p1, p2, p3 := Point3Xyz(0, 0, 0), Point3Xyz(1, 0, 0), Point3Xyz(1, 1, 0), Point3Xyz(0, 1, 0)
	island := []TrimmedCurve{
		trimmedLine(p0, p1),
		trimmedLine(p1, p2),
		trimmedLine(p2, p3),
		trimmedLine(p3, p0),
	}
	loops, _ := buildLoopsFromIsland(island, false, 16)
	if len(loops) != 1 {
		t.Fatalf("len(loops) = %d, want 1 inner face", len(loops))
	}
	if len(loops[0]) != 4 {
		t.Fatalf("len(loops[0]) = %d, want 4 fragments", len(loops[0]))
	}

	withOuter, _ := buildLoopsFromIsland(island, true, 16)
	if len(withOuter) != len(loops)+1 {
		t.Fatalf("include_outer must add exactly the one clockwise boundary: got %d, want %d", len(withOuter), len(loops)+1)
	}
}

func TestSortByClockwiseDetectsTie(t *testing.T) {
	start := Point3Xyz(0, 0, 0)
	end := Point3Xyz(1, 0, 0)
	// Two candidates whose far ends coincide turn by exactly the same
	// amount from (start->end): the winner is indistinguishable.
	candidates := []TrimmedCurve{
		trimmedLine(end, Point3Xyz(2, 1, 0)),
		trimmedLine(end, Point3Xyz(2, 1, 0)),
	}
	if ambiguous := sortByClockwise(start, end, candidates); !ambiguous {
		t.Fatalf("expected a tie between two candidates with identical turn measure")
	}
}

func TestSortByClockwiseNoTieForDistinctTurns(t *testing.T) {
	start := Point3Xyz(0, 0, 0)
	end := Point3Xyz(1, 0, 0)
	candidates := []TrimmedCurve{
		trimmedLine(end, Point3Xyz(2, 1, 0)),
		trimmedLine(end, Point3Xyz(2, -1, 0)),
	}
	if ambiguous := sortByClockwise(start, end, candidates); ambiguous {
		t.Fatalf("distinct turn measures must not be reported as ambiguous")
	}
}
