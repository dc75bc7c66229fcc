package alchemy

import (
	"math"
	"testing"
)

func TestArcEndpoints(t *testing.T) {
	upper := ArcPt(PtXy(0, 0), 1, 0, Radians(math.Pi))
	if !IsEqualPair(upper.Begin(), PtXy(1, 0)) {
		t.Errorf("Begin() failed. %v != %v", upper.Begin(), PtXy(1, 0))
	}
	if !IsEqualPair(upper.End(), PtXy(-1, 0)) {
		t.Errorf("End() failed. %v != %v", upper.End(), PtXy(-1, 0))
	}
}

func TestArcContainsTheta(t *testing.T) {
	containsTests := []struct {
		a        Arc
		theta    Radians
		expected bool
	}{
		{
			//0
			ArcPt(PtXy(0, 0), 1, 0, Radians(math.Pi)), Radians(math.Pi / 2), true,
		}, {
			ArcPt(PtXy(0, 0), 1, 0, Radians(math.Pi)), Radians(-math.Pi / 2), false,
		}, {
			// negative sweep travels clockwise
			ArcPt(PtXy(0, 0), 1, 0, Radians(-math.Pi/2)), Radians(-math.Pi / 4), true,
		}, {
			ArcPt(PtXy(0, 0), 1, 0, Radians(-math.Pi/2)), Radians(math.Pi / 4), false,
		}, {
			// span endpoints are inclusive
			ArcPt(PtXy(0, 0), 1, 0, Radians(math.Pi)), Radians(math.Pi), true,
		},
	}
	for h, test := range containsTests {
		if got := test.a.ContainsTheta(test.theta); got != test.expected {
			t.Errorf("[%d]%v.ContainsTheta(%v) failed. %v != %v",
				h, test.a, test.theta, got, test.expected)
		}
	}
}

func TestArcIsClosed(t *testing.T) {
	if ArcPt(PtXy(0, 0), 1, 0, Radians(math.Pi)).IsClosed() {
		t.Errorf("a half-turn arc must not be closed")
	}
	if !ArcPt(PtXy(0, 0), 1, 0, Radians(2*math.Pi)).IsClosed() {
		t.Errorf("a full-turn arc must be closed")
	}
	if !ArcPt(PtXy(0, 0), 1, 0, Radians(-2*math.Pi)).IsClosed() {
		t.Errorf("a negative full-turn arc must be closed")
	}
}

func TestArcSplitAtTheta(t *testing.T) {
	upper := ArcPt(PtXy(0, 0), 1, 0, Radians(math.Pi))
	first, second := upper.SplitAtTheta(Radians(math.Pi / 2))
	if !IsEqualPair(first.Begin(), upper.Begin()) || !IsEqualPair(first.End(), PtXy(0, 1)) {
		t.Errorf("first half failed. (%v, %v) != (%v, %v)",
			first.Begin(), first.End(), upper.Begin(), PtXy(0, 1))
	}
	if !IsEqualPair(second.Begin(), PtXy(0, 1)) || !IsEqualPair(second.End(), upper.End()) {
		t.Errorf("second half failed. (%v, %v) != (%v, %v)",
			second.Begin(), second.End(), PtXy(0, 1), upper.End())
	}
}

func TestArcBoundingBox(t *testing.T) {
	upper := ArcPt(PtXy(0, 0), 1, 0, Radians(math.Pi))
	bb := upper.BoundingBox()
	if !IsEqualPair(bb.MinPt(), PtXy(-1, 0)) || !IsEqualPair(bb.MaxPt(), PtXy(1, 1)) {
		t.Errorf("BoundingBox() failed. (%v, %v) != (%v, %v)",
			bb.MinPt(), bb.MaxPt(), PtXy(-1, 0), PtXy(1, 1))
	}
}
