package alchemy

import (
	"fmt"

	"github.com/google/uuid"
)

// TrimmedCurve is a planar-graph half-segment: a sub-interval of a base
// curve produced by the split pass. Base is the uncut original (so
// multiple TrimmedCurves can share the same base curve identity), Bounds
// are this fragment's actual endpoints, and Cache is the split sub-curve
// itself, used for fast re-evaluation (length, sampling) without
// re-splitting. Two TrimmedCurves compare equal iff their bounds match,
// per BoundsEqual.
type TrimmedCurve struct {
	Base   Curve3
	Bounds [2]Point3
	Cache  Curve3
}

// newTrimmedCurve wraps a split fragment against its uncut base curve.
func newTrimmedCurve(base, fragment Curve3) TrimmedCurve {
	b, e := fragment.Endpoints()
	return TrimmedCurve{Base: base, Bounds: [2]Point3{b, e}, Cache: fragment}
}

// BoundsEqual reports whether two fragments occupy the same endpoints
// within EPS, in either direction.
func (t TrimmedCurve) BoundsEqual(o TrimmedCurve) bool {
	return (AlmostPoint3(t.Bounds[0], o.Bounds[0]) && AlmostPoint3(t.Bounds[1], o.Bounds[1])) ||
		(AlmostPoint3(t.Bounds[0], o.Bounds[1]) && AlmostPoint3(t.Bounds[1], o.Bounds[0]))
}

// IsZeroLength reports whether this fragment's cache curve has
// (near) zero length.
func (t TrimmedCurve) IsZeroLength() bool {
	return Almost(t.Cache.Length(), 0)
}

// IsClosed reports whether this fragment's own bounds coincide (full
// circles, closed arcs, closed splines) — such fragments are never
// dangling regardless of whether another fragment shares an endpoint.
func (t TrimmedCurve) IsClosed() bool {
	return AlmostPoint3(t.Bounds[0], t.Bounds[1])
}

// OtherBound returns whichever of the fragment's two bounds is not p.
func (t TrimmedCurve) OtherBound(p Point3) Point3 {
	if AlmostPoint3(t.Bounds[0], p) {
		return t.Bounds[1]
	}
	return t.Bounds[0]
}

// reversed returns a copy of t with bounds flipped; Base and Cache are
// untouched since curves in this engine are symmetric under reversal at
// the profile level.
func (t TrimmedCurve) reversed() TrimmedCurve {
	t.Bounds[0], t.Bounds[1] = t.Bounds[1], t.Bounds[0]
	return t
}

// id returns the stable identity used to key the used-direction sets during
// loop discovery: the cache curve's own identity. Splitting constructs fresh
// sub-curves (see Curve3.subCurve), so the id is unique per fragment even
// when several fragments descend from one base curve.
func (t TrimmedCurve) id() uuid.UUID { return t.Cache.ID() }

// Wire is an ordered sequence of TrimmedCurves forming a closed loop:
// wire[i].Bounds[1] almost equals wire[i+1].Bounds[0], wrapping around.
type Wire []TrimmedCurve

// Profile is an outer wire (profile[0]) plus zero or more hole wires
// (profile[1:]), each inside the outer and none nested inside another. Every
// wire keeps the orientation it was found with: faces from the loop
// traversal run counter-clockwise and a standalone circle follows its own
// parameterization. Hole wires are not reversed to clockwise, and with
// Options.IncludeOuter the clockwise outer boundary is also returned as a
// profile[0].
type Profile []Wire

// Sketch owns a mutable collection of curves on a single work plane. Region
// computation takes a read-only snapshot at the call site; no mutation of
// the sketch occurs during GetProfiles.
type Sketch struct {
	Elements  []Curve3
	WorkPlane Matrix4
}

// NewSketch creates an empty sketch on the default XY work plane.
func NewSketch() *Sketch {
	return &Sketch{WorkPlane: PlaneXY.AsTransform()}
}

// NewSketchOnPlane creates an empty sketch on the given work plane.
func NewSketchOnPlane(plane Plane) *Sketch {
	return &Sketch{WorkPlane: plane.AsTransform()}
}

// Add appends a curve to the sketch, in world-frame coordinates.
func (s *Sketch) Add(c Curve3) { s.Elements = append(s.Elements, c) }

// GetPlanarizedElements clones every sketch curve into work-plane-local
// coordinates and keeps only those whose endpoints both land within EPS of
// z=0. The clone is deep; the sketch's own curves are untouched.
func (s *Sketch) GetPlanarizedElements() ([]Curve3, []Diagnostic) {
	inv := s.WorkPlane.Invert()
	var out []Curve3
	var diags []Diagnostic
	for _, elem := range s.Elements {
		local := elem.Transform(inv)
		b, e := local.Endpoints()
		if Almost(b.Z(), 0) && Almost(e.Z(), 0) {
			out = append(out, local)
		} else {
			diags = append(diags, Diagnostic{Kind: DiagOffPlaneCurve, Message: local.String()})
		}
	}
	return out, diags
}

// AllSplit computes, for every planarized curve, its split against every
// other curve in the set, and wraps each fragment as a TrimmedCurve. The
// result length equals Sigma over curves of (number_of_splits + 1).
func AllSplit(elements []Curve3) []TrimmedCurve {
	var out []TrimmedCurve
	for _, elem := range elements {
		for _, fragment := range elem.SplitMulti(elements) {
			out = append(out, newTrimmedCurve(elem, fragment))
		}
	}
	return out
}

// GetProfiles is the sketch's single public operation: it planarizes the
// sketch's curves, splits them, discovers faces, nests holes into outer
// wires, and transforms the resulting profiles back into the sketch's
// world frame.
func (s *Sketch) GetProfiles(opts Options) (profiles []Profile, diags []Diagnostic, err error) {
	if !s.WorkPlane.IsInvertible() {
		return nil, nil, newPipelineError("inconsistent work-plane transform: singular matrix")
	}
	if opts.TesselationResolution <= 0 {
		opts.TesselationResolution = DefaultOptions().TesselationResolution
	}

	// The arrangement stage is numerically delicate (near-singular
	// intersections, islands with unexpected topology); surface a
	// catastrophic failure there as a PipelineError rather than letting it
	// escape as a bare panic.
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if !ok {
				rerr = fmt.Errorf("%v", r)
			}
			profiles, diags, err = nil, nil, wrapPipelineError(rerr, "region computation failed")
		}
	}()

	planar, planarDiags := s.GetPlanarizedElements()
	diags = planarDiags
	cut := AllSplit(planar)
	regions, regionDiags := getRegions(cut, opts.IncludeOuter, opts.TesselationResolution)
	diags = append(diags, regionDiags...)

	profiles = buildProfiles(regions, opts.TesselationResolution)

	for h, profile := range profiles {
		for w, wire := range profile {
			// A hole wire shares its backing array with its own profile's
			// outer wire, so each wire is transformed into a fresh slice.
			worldWire := make(Wire, len(wire))
			for c, tc := range wire {
				worldWire[c] = TrimmedCurve{
					Base:   tc.Base.Transform(s.WorkPlane),
					Bounds: [2]Point3{s.WorkPlane.TransformPoint(tc.Bounds[0]), s.WorkPlane.TransformPoint(tc.Bounds[1])},
					Cache:  tc.Cache.Transform(s.WorkPlane),
				}
			}
			profiles[h][w] = worldWire
		}
	}

	return profiles, diags, nil
}
