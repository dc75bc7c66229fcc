package alchemy

import (
	"sort"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvlath/core"
)

// getRegions partitions the split curve set into standalone circle wires
// and line-like fragments, prunes dangling segments from the latter,
// partitions what remains into connected islands, and enumerates each
// island's faces by leftmost-turn traversal.
func getRegions(cut []TrimmedCurve, includeOuter bool, tesselationResolution int) ([]Wire, []Diagnostic) {
	var circles []TrimmedCurve
	var others []TrimmedCurve
	for _, tc := range cut {
		if tc.Cache.Kind() == CurveKindCircle {
			circles = append(circles, tc)
		} else {
			others = append(others, tc)
		}
	}

	var diags []Diagnostic
	others, danglingDiags := removeDanglingSegments(others)
	diags = append(diags, danglingDiags...)

	islands := buildIslands(others)

	var regions []Wire
	for _, island := range islands {
		loops, loopDiags := buildLoopsFromIsland(island, includeOuter, tesselationResolution)
		regions = append(regions, loops...)
		diags = append(diags, loopDiags...)
	}

	for _, circle := range circles {
		regions = append(regions, Wire{circle})
	}

	return regions, diags
}

// removeDanglingSegments iteratively drops fragments with at least one
// unshared endpoint (or zero length), until a fixpoint is reached. Closed
// fragments (start almost equals end) are always kept regardless of
// sharing. Idempotent: calling it again on its own output is a no-op.
func removeDanglingSegments(fragments []TrimmedCurve) ([]TrimmedCurve, []Diagnostic) {
	var diags []Diagnostic
	for {
		startLen := len(fragments)
		kept := fragments[:0:0]
		for _, elem := range fragments {
			if elem.IsZeroLength() {
				diags = append(diags, Diagnostic{Kind: DiagDegenerateCurve, Message: elem.Cache.String()})
				continue
			}
			if elem.IsClosed() {
				kept = append(kept, elem)
				continue
			}
			if endpointsShared(elem, fragments) {
				kept = append(kept, elem)
			}
		}
		fragments = kept
		if len(fragments) == startLen {
			break
		}
	}
	return fragments, diags
}

// endpointsShared reports whether both of elem's endpoints are matched by
// some other fragment's endpoint (a fragment with different bounds).
func endpointsShared(elem TrimmedCurve, all []TrimmedCurve) bool {
	for _, p := range elem.Bounds {
		matched := false
		for _, other := range all {
			if elem.BoundsEqual(other) {
				continue
			}
			if AlmostPoint3(p, other.Bounds[0]) || AlmostPoint3(p, other.Bounds[1]) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// buildIslands partitions fragments into maximal connected components under
// endpoint adjacency, using lvlath's core.Graph for the connectivity BFS.
// Vertices are keyed by fragment identity (a UUID string), never by point
// coordinates, since hashed containers on points are unsafe under
// epsilon-equality; adjacency edges are computed with AlmostPoint3 before
// insertion.
func buildIslands(fragments []TrimmedCurve) [][]TrimmedCurve {
	if len(fragments) == 0 {
		return nil
	}

	g := core.NewGraph(core.WithDirected(false))
	idxByKey := make(map[string]int, len(fragments))
	keys := make([]string, len(fragments))
	for h, f := range fragments {
		k := fragmentKey(f)
		keys[h] = k
		idxByKey[k] = h
		_ = g.AddVertex(k)
	}

	for i := 0; i < len(fragments); i++ {
		for j := i + 1; j < len(fragments); j++ {
			if fragmentsAdjacent(fragments[i], fragments[j]) {
				_, _ = g.AddEdge(keys[i], keys[j], 0)
			}
		}
	}

	visited := make(map[string]bool, len(fragments))
	var islands [][]TrimmedCurve
	for _, root := range keys {
		if visited[root] {
			continue
		}
		var members []int
		queue := []string{root}
		visited[root] = true
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			members = append(members, idxByKey[id])
			neighbors, _ := g.NeighborIDs(id)
			for _, n := range neighbors {
				if !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}
		// NeighborIDs sorts by vertex key, which is a per-run UUID, so the
		// BFS visit order is not reproducible across runs. Restore input
		// order within the island: the loop finder's start-edge iteration
		// and its tie-breaks follow island order, and must be stable.
		sort.Ints(members)
		island := make([]TrimmedCurve, len(members))
		for h, m := range members {
			island[h] = fragments[m]
		}
		islands = append(islands, island)
	}
	return islands
}

// fragmentKey derives the vertex key for a fragment: its cache curve's UUID.
// Every fragment carries its own cache identity (splitting constructs fresh
// sub-curves), so the key is unique per fragment.
func fragmentKey(f TrimmedCurve) string {
	return f.id().String()
}

func fragmentsAdjacent(a, b TrimmedCurve) bool {
	for _, pa := range a.Bounds {
		for _, pb := range b.Bounds {
			if AlmostPoint3(pa, pb) {
				return true
			}
		}
	}
	return false
}

// buildLoopsFromIsland enumerates every minimal closed face of one island's
// embedded planar graph via leftmost-turn traversal, tracking per-directed
// -edge use so each directed edge contributes to at most one face.
func buildLoopsFromIsland(island []TrimmedCurve, includeOuter bool, tesselationResolution int) ([]Wire, []Diagnostic) {
	var regions []Wire
	var diags []Diagnostic
	usedForward := make(map[uuid.UUID]bool)
	usedBackward := make(map[uuid.UUID]bool)

	for _, startElem := range island {
		for i := 0; i < 2; i++ {
			startPoint := startElem.Bounds[i]
			loop, ok := buildLoop(startPoint, startElem, nil, island, usedForward, usedBackward, &diags)
			if ok {
				straightenBounds(loop)
				regions = append(regions, loop)
			}
		}
	}

	if !includeOuter {
		regions = removeOuterLoop(regions, tesselationResolution)
	}
	return regions, diags
}

// buildLoop extends path from startPoint along startElem, then follows the
// most-clockwise incident fragment at each new vertex until the path
// returns to its own first edge. Recursion
// always terminates because each directed edge is claimed in
// usedForward/usedBackward before its neighbors are examined, so no edge
// direction can be revisited. A dead end (no incident fragment at all)
// surfaces a DiagOpenRegion diagnostic through diags and drops the
// in-progress wire; an already-claimed directed edge is a normal
// consequence of enumerating both endpoints of every fragment and is not
// diagnosed.
func buildLoop(
	startPoint Point3,
	startElem TrimmedCurve,
	path Wire,
	island []TrimmedCurve,
	usedForward, usedBackward map[uuid.UUID]bool,
	diags *[]Diagnostic,
) (Wire, bool) {
	id := startElem.id()
	if AlmostPoint3(startPoint, startElem.Bounds[0]) {
		if usedForward[id] {
			return nil, false
		}
		usedForward[id] = true
	} else {
		if usedBackward[id] {
			return nil, false
		}
		usedBackward[id] = true
	}

	path = append(path, startElem)
	endPoint := startElem.OtherBound(startPoint)

	var connected []TrimmedCurve
	for _, other := range island {
		if other.id() == id {
			continue
		}
		if AlmostPoint3(endPoint, other.Bounds[0]) || AlmostPoint3(endPoint, other.Bounds[1]) {
			connected = append(connected, other)
		}
	}

	if len(connected) == 0 {
		*diags = append(*diags, Diagnostic{
			Kind:    DiagOpenRegion,
			Message: "traversal dead-ended at " + startElem.Cache.String() + ": no incident fragment to continue the loop",
		})
		return nil, false
	}

	if sortByClockwise(startPoint, endPoint, connected) {
		*diags = append(*diags, Diagnostic{
			Kind:    DiagNumericallyAmbiguous,
			Message: "clockwise tie-break at a shared vertex near " + endPoint.String(),
		})
	}
	next := connected[0]

	if path[0].id() == next.id() {
		return path, true
	}

	return buildLoop(endPoint, next, path, island, usedForward, usedBackward, diags)
}

// sortByClockwise orders candidates in place by the clockwise turn measure
// from (start -> end) to (end -> candidate's other end), most clockwise
// first: that is the leftmost turn when walking anti-clockwise around a
// face. Returns true if the winning candidate's turn measure was within EPS
// of the runner-up's, meaning the tie-break fell back on input order rather
// than a clear geometric winner.
func sortByClockwise(start, end Point3, candidates []TrimmedCurve) bool {
	turn := make([]Length, len(candidates))
	for h, c := range candidates {
		final := c.OtherBound(end)
		turn[h] = clockwise(start.Pt2(), end.Pt2(), final.Pt2())
	}
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && turn[j-1] < turn[j]; j-- {
			turn[j-1], turn[j] = turn[j], turn[j-1]
			candidates[j-1], candidates[j] = candidates[j], candidates[j-1]
		}
	}
	return len(turn) > 1 && Almost(turn[0], turn[1])
}

// clockwise returns a signed turn measure from segment (a->b) to segment
// (b->c), positive for clockwise, via the 2D cross product of (b-a) and
// (c-b). Ties are broken by whatever stable order the caller's sort
// provides.
func clockwise(a, b, c Pt) Length {
	return a.VectorTo(b).Cross(b.VectorTo(c))
}

// straightenBounds orients each fragment's bounds in place so that
// bounds[1] chains into the next fragment's bounds[0] all the way around
// the loop. Base/Cache are untouched; flipping a fragment's orientation is
// a pure bounds-swap. The first fragment is anchored against whichever of
// the second fragment's bounds it touches; every later fragment then chains
// off its predecessor's (already fixed) far bound.
func straightenBounds(wire Wire) {
	if len(wire) < 2 {
		return
	}
	if !AlmostPoint3(wire[0].Bounds[1], wire[1].Bounds[0]) &&
		!AlmostPoint3(wire[0].Bounds[1], wire[1].Bounds[1]) {
		wire[0] = wire[0].reversed()
	}
	for h := 1; h < len(wire); h++ {
		if !AlmostPoint3(wire[h].Bounds[0], wire[h-1].Bounds[1]) {
			wire[h] = wire[h].reversed()
		}
	}
}

// removeOuterLoop discards every wire whose signed polygon area (from its
// sampled polyline) is clockwise: the unique outer boundary of a planar
// arrangement is clockwise, all inner faces are counter-clockwise.
func removeOuterLoop(loops []Wire, tesselationResolution int) []Wire {
	if len(loops) <= 1 {
		return loops
	}
	kept := loops[:0:0]
	for _, wire := range loops {
		if !isClockwise(wirePolyline(wire, tesselationResolution)) {
			kept = append(kept, wire)
		}
	}
	return kept
}

// isClockwise reports whether a sampled polyline winds clockwise via the
// shoelace formula's signed area.
func isClockwise(pts []Pt) bool {
	return signedArea(pts) < 0
}

// signedArea is the shoelace-formula signed area of a polyline: positive
// for counter-clockwise winding, negative for clockwise.
func signedArea(pts []Pt) Length {
	var sum Length
	n := len(pts)
	for h := 0; h < n; h++ {
		a, b := pts[h], pts[(h+1)%n]
		ax, ay := a.XY()
		bx, by := b.XY()
		sum += ax*by - bx*ay
	}
	return sum / 2
}

// wirePolyline samples every fragment in the wire at `steps` points,
// producing the polyline used for area/containment tests. Fragments whose
// bounds were flipped by straightenBounds are sampled back to front, so the
// polyline always advances in the wire's own winding direction.
func wirePolyline(wire Wire, steps int) []Pt {
	var pts []Pt
	for _, tc := range wire {
		begin, _ := tc.Cache.Endpoints()
		flipped := !AlmostPoint3(tc.Bounds[0], begin)
		for h := 0; h < steps; h++ {
			t := float64(h) / float64(steps)
			if flipped {
				t = 1 - t
			}
			pts = append(pts, tc.Cache.Sample(t).Pt2())
		}
	}
	return pts
}
