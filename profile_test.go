package alchemy

import "testing"

func squareWire(minX, minY, maxX, maxY Length) Wire {
	p0 := Point3Xyz(minX, minY, 0)
	p1 := Point3Xyz(maxX, minY, 0)
	p2 := Point3Xyz(maxX, maxY, 0)
	p3 := Point3Xyz(minX, maxY, 0)
	return Wire{
		trimmedLine(p0, p1),
		trimmedLine(p1, p2),
		trimmedLine(p2, p3),
		trimmedLine(p3, p0),
	}
}

func TestBuildProfilesSimpleHole(t *testing.T) {
	outer := squareWire(0, 0, 10, 10)
	hole := squareWire(2, 2, 8, 8)

	profiles := buildProfiles([]Wire{outer, hole}, 16)
	if len(profiles) != 2 {
		t.Fatalf("len(profiles) = %d, want 2 (outer-with-hole, hole-alone)", len(profiles))
	}

	var outerProfile, holeProfile Profile
	for _, p := range profiles {
		if len(p) == 2 {
			outerProfile = p
		} else {
			holeProfile = p
		}
	}
	if len(outerProfile) != 2 {
		t.Fatalf("expected one profile with the outer wire plus one hole")
	}
	if len(holeProfile) != 1 {
		t.Fatalf("expected the hole wire to also surface as its own standalone profile")
	}
}

func TestBuildProfilesNestedHolesAreSeparateProfiles(t *testing.T) {
	outer := squareWire(0, 0, 20, 20)
	mid := squareWire(4, 4, 16, 16)
	inner := squareWire(8, 8, 12, 12)

	profiles := buildProfiles([]Wire{outer, mid, inner}, 16)
	// outer+mid, mid+inner, inner-alone: every wire gets a profile, and a
	// hole-of-a-hole never becomes a grandchild hole of the outermost wire.
	if len(profiles) != 3 {
		t.Fatalf("len(profiles) = %d, want 3", len(profiles))
	}

	var sawOuterWithOneHole, sawMidWithOneHole, sawInnerAlone bool
	for _, p := range profiles {
		switch {
		case len(p) == 2 && samePtApprox(p[0], outer):
			sawOuterWithOneHole = true
			if !samePtApprox(p[1], mid) {
				t.Fatalf("outer's hole should be mid, not inner (no grandchild nesting)")
			}
		case len(p) == 2 && samePtApprox(p[0], mid):
			sawMidWithOneHole = true
			if !samePtApprox(p[1], inner) {
				t.Fatalf("mid's hole should be inner")
			}
		case len(p) == 1 && samePtApprox(p[0], inner):
			sawInnerAlone = true
		}
	}
	if !sawOuterWithOneHole || !sawMidWithOneHole || !sawInnerAlone {
		t.Fatalf("missing expected profile shape, got %d profiles", len(profiles))
	}
}

func samePtApprox(w Wire, other Wire) bool {
	if len(w) != len(other) {
		return false
	}
	for h := range w {
		if !AlmostPoint3(w[h].Bounds[0], other[h].Bounds[0]) || !AlmostPoint3(w[h].Bounds[1], other[h].Bounds[1]) {
			return false
		}
	}
	return true
}

func TestIsOutermostHole(t *testing.T) {
	// indices: 0=outer, 1=mid, 2=inner
	enclosedBy := [][]int{
		{},     // outer
		{0},    // mid enclosed by outer
		{0, 1}, // inner enclosed by outer and mid
	}
	if !isOutermostHole(1, 0, enclosedBy) {
		t.Fatalf("mid must be the outermost hole of outer")
	}
	if isOutermostHole(2, 0, enclosedBy) {
		t.Fatalf("inner must not be treated as a hole of outer (it's a hole of mid)")
	}
	if !isOutermostHole(2, 1, enclosedBy) {
		t.Fatalf("inner must be the outermost hole of mid")
	}
}
