package alchemy

import "testing"

func TestPolygonContainsPt(t *testing.T) {
	square := PolygonPt(PtXy(0, 0), PtXy(4, 0), PtXy(4, 4), PtXy(0, 4))
	containsTests := []struct {
		pt       Pt
		expected bool
	}{
		{PtXy(2, 2), true},
		{PtXy(0.1, 3.9), true},
		{PtXy(5, 2), false},
		{PtXy(-1, 2), false},
		{PtXy(2, 5), false},
		{PtXy(2, -1), false},
	}
	for h, test := range containsTests {
		if got := square.ContainsPt(test.pt); got != test.expected {
			t.Errorf("[%d]ContainsPt(%v) failed. %v != %v", h, test.pt, got, test.expected)
		}
	}

	concave := PolygonPt(PtXy(0, 0), PtXy(6, 0), PtXy(6, 6), PtXy(3, 2), PtXy(0, 6))
	if !concave.ContainsPt(PtXy(1, 1)) {
		t.Errorf("point in the solid part of a concave polygon must be inside")
	}
	if concave.ContainsPt(PtXy(3, 5)) {
		t.Errorf("point in the notch of a concave polygon must be outside")
	}
}

func TestClipToRectangleSegment(t *testing.T) {
	rect := RectanglePt(PtXy(0, 0), PtXy(4, 4))
	clipTests := []struct {
		s        Segment
		expected []Segment
	}{
		{
			//0 fully inside
			SegmentPt(PtXy(1, 1), PtXy(3, 3)),
			[]Segment{SegmentPt(PtXy(1, 1), PtXy(3, 3))},
		}, {
			// crossing left to right
			SegmentPt(PtXy(-2, 2), PtXy(6, 2)),
			[]Segment{SegmentPt(PtXy(0, 2), PtXy(4, 2))},
		}, {
			// fully outside
			SegmentPt(PtXy(-2, 5), PtXy(6, 5)),
			nil,
		},
	}
	for h, test := range clipTests {
		clipped := ClipToRectangleSegment(rect, test.s)
		if len(clipped) != len(test.expected) {
			t.Fatalf("[%d]ClipToRectangleSegment(%v) (length) failed. %v != %v",
				h, test.s, clipped, test.expected)
		}
		for i := 0; i < len(clipped); i++ {
			if !IsEqualPair(clipped[i].Begin(), test.expected[i].Begin()) ||
				!IsEqualPair(clipped[i].End(), test.expected[i].End()) {
				t.Errorf("[%d][%d]ClipToRectangleSegment(%v) failed. %v != %v",
					h, i, test.s, clipped[i], test.expected[i])
			}
		}
	}
}
