package alchemy

// buildProfiles nests regions into profiles: every wire becomes the outer
// boundary of its own profile, whether or not it is itself enclosed by
// another wire (a wire can be simultaneously a hole of one profile and the
// outer boundary of its own), and collects every other wire that is
// enclosed by it but not enclosed by any wire enclosed by it in turn (the
// immediate, outermost holes only). This is what makes a circle nested
// inside another circle surface as two profiles: the outer circle with the
// inner as its hole, and the inner circle again on its own.
func buildProfiles(regions []Wire, tesselationResolution int) []Profile {
	if len(regions) == 0 {
		return nil
	}

	polylines := make([][]Pt, len(regions))
	for h, wire := range regions {
		polylines[h] = wirePolyline(wire, tesselationResolution)
	}

	enclosedBy := make([][]int, len(regions))
	for h := range regions {
		for k := range regions {
			if h == k {
				continue
			}
			if wireInWire(polylines[h], polylines[k]) {
				enclosedBy[h] = append(enclosedBy[h], k)
			}
		}
	}

	profiles := make([]Profile, 0, len(regions))
	for h, wire := range regions {
		profile := Profile{wire}
		for k := range regions {
			if k == h {
				continue
			}
			if !containsInt(enclosedBy[k], h) {
				continue
			}
			if isOutermostHole(k, h, enclosedBy) {
				profile = append(profile, regions[k])
			}
		}
		profiles = append(profiles, profile)
	}
	return profiles
}

// isOutermostHole reports whether candidate (enclosed in outer) is not
// itself enclosed by some other wire that is, in turn, enclosed in outer:
// only the immediate child holes of outer belong to its profile, nested
// holes-of-holes become separate profiles of their own.
func isOutermostHole(candidate, outer int, enclosedBy [][]int) bool {
	for _, mid := range enclosedBy[candidate] {
		if mid == outer {
			continue
		}
		if containsInt(enclosedBy[mid], outer) {
			return false
		}
	}
	return true
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// wireInWire reports whether every vertex of inner lies within outer,
// tested via ray-casting point-in-polygon against outer's sampled polyline.
func wireInWire(inner, outer []Pt) bool {
	if len(inner) == 0 || len(outer) < 3 {
		return false
	}
	boundary := PolygonPt(outer...)
	for _, p := range inner {
		if !boundary.ContainsPt(p) {
			return false
		}
	}
	return true
}
