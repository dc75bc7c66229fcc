package alchemy

import (
	"fmt"

	"github.com/google/uuid"
)

// CurveKind tags the variant a Curve3 carries. The set is closed: no
// virtual dispatch table is needed, only a switch per operation.
type CurveKind uint

const (
	CurveKindLine CurveKind = iota
	CurveKindCircle
	CurveKindArc
	CurveKindBezier
)

func (k CurveKind) String() string {
	switch k {
	case CurveKindLine:
		return "Line"
	case CurveKindCircle:
		return "Circle"
	case CurveKindArc:
		return "Arc"
	case CurveKindBezier:
		return "BezierSpline"
	default:
		return "Unknown"
	}
}

// Curve3 is a tagged-union curve living in the sketch's world frame (or, once
// planarized by a Sketch, in work-plane-local coordinates at z=0). It carries
// a stable identity used by the region finder to key its used-direction sets,
// since hashing on endpoint coordinates is unsafe under epsilon-equality.
//
// Field meaning depends on kind:
//   - Line:    pts[0], pts[1] are the endpoints.
//   - Circle:  pts[0] is the center, radius is the radius, normal is the
//     circle's plane normal.
//   - Arc:     same as Circle, plus start/sweep angles measured in the
//     plane spanned by normal.
//   - Bezier:  pts[0..3] are the four control points.
type Curve3 struct {
	id     uuid.UUID
	kind   CurveKind
	pts    [4]Point3
	radius Length
	start  Radians
	sweep  Radians
	normal Vec3
}

// NewLine3 creates a world-frame line segment between two endpoints.
func NewLine3(a, b Point3) Curve3 {
	return Curve3{id: uuid.New(), kind: CurveKindLine, pts: [4]Point3{a, b}}
}

// NewCircle3 creates a world-frame circle with the given center, radius, and
// plane normal.
func NewCircle3(center Point3, radius Length, normal Vec3) Curve3 {
	return Curve3{id: uuid.New(), kind: CurveKindCircle, pts: [4]Point3{center}, radius: radius, normal: normal.Normalize()}
}

// NewArc3 creates a world-frame arc: the circular arc of the given center,
// radius, and plane normal, spanning from start to start+sweep.
func NewArc3(center Point3, radius Length, normal Vec3, start, sweep Radians) Curve3 {
	return Curve3{id: uuid.New(), kind: CurveKindArc, pts: [4]Point3{center}, radius: radius, normal: normal.Normalize(), start: start, sweep: sweep}
}

// NewBezier3 creates a world-frame cubic Bezier spline from its four control
// points.
func NewBezier3(p1, p2, p3, p4 Point3) Curve3 {
	return Curve3{id: uuid.New(), kind: CurveKindBezier, pts: [4]Point3{p1, p2, p3, p4}}
}

// ID returns the curve's stable identity.
func (c Curve3) ID() uuid.UUID { return c.id }

// Kind returns which variant this curve is.
func (c Curve3) Kind() CurveKind { return c.kind }

// Endpoints returns the curve's begin and end point. For closed curves
// (full circles, closed splines) these are equal.
func (c Curve3) Endpoints() (Point3, Point3) {
	switch c.kind {
	case CurveKindLine:
		return c.pts[0], c.pts[1]
	case CurveKindCircle:
		p := c.localPlane().AsTransform().TransformPoint(Point3Xyz(c.radius, 0, 0))
		return p, p
	case CurveKindArc:
		local2 := c.arc2().Begin()
		begin := c.localPlane().AsTransform().TransformPoint(Point3FromPt(local2))
		local2 = c.arc2().End()
		end := c.localPlane().AsTransform().TransformPoint(Point3FromPt(local2))
		return begin, end
	case CurveKindBezier:
		return c.pts[0], c.pts[3]
	}
	return Point3Origin, Point3Origin
}

// IsClosed reports whether the curve's start and end coincide by
// construction: full circles and closed (full-sweep) arcs. Zero-length
// degenerate lines are handled separately by the dangling-segment pass, not
// here.
func (c Curve3) IsClosed() bool {
	switch c.kind {
	case CurveKindCircle:
		return true
	case CurveKindArc:
		return c.arc2().IsClosed()
	default:
		return false
	}
}

// localPlane returns the plane this curve's center-based geometry (Circle,
// Arc) is expressed against: origin at the center, normal as stored. Once a
// curve has been planarized its normal is always +/-Z; in that common case
// this returns the trivial basis aligned with the shared work-plane frame so
// that angles measured here agree with dispatch2D's circleOf/arcOf, which
// skip this indirection entirely for speed. Only curves that have not yet
// been planarized (arbitrary normal) fall back to PlaneFromNormal.
func (c Curve3) localPlane() Plane {
	i, j, k := c.normal.IJK()
	if IsZero(i) && IsZero(j) && IsEqual(k, 1) {
		return Plane{Origin: c.pts[0], U: Vec3Ijk(1, 0, 0), V: Vec3Ijk(0, 1, 0)}
	}
	if IsZero(i) && IsZero(j) && IsEqual(k, -1) {
		return Plane{Origin: c.pts[0], U: Vec3Ijk(1, 0, 0), V: Vec3Ijk(0, -1, 0)}
	}
	return PlaneFromNormal(c.pts[0], c.normal)
}

// arc2 projects this Arc/Circle down to the 2D Arc type, centered at the
// plane's local origin (0,0).
func (c Curve3) arc2() Arc {
	return ArcPt(PtXy(0, 0), c.radius, c.start, c.sweep)
}

// Length returns the curve's arc length.
func (c Curve3) Length() Length {
	switch c.kind {
	case CurveKindLine:
		a, b := c.pts[0], c.pts[1]
		return a.VectorTo(b).Magnitude()
	case CurveKindCircle:
		return Length(2 * 3.14159265358979323846 * float64(c.radius))
	case CurveKindArc:
		sweep := c.sweep
		if sweep < 0 {
			sweep = -sweep
		}
		return c.radius * Length(sweep)
	case CurveKindBezier:
		for _, p := range c.pts {
			if !Almost(p.Z(), 0) {
				return c.approxLength3(64)
			}
		}
		return c.bezier2().Length()
	}
	return 0
}

// approxLength3 sums chord lengths over a fixed world-frame sampling, for
// curves that have not been planarized (control points off z=0), where the
// quadrature in the 2D layer does not apply.
func (c Curve3) approxLength3(steps int) Length {
	var sum Length
	prev := c.Sample(0)
	for h := 1; h <= steps; h++ {
		curr := c.Sample(float64(h) / float64(steps))
		sum += prev.VectorTo(curr).Magnitude()
		prev = curr
	}
	return sum
}

// bezier2 projects a planarized Bezier curve down to the 2D Bezier type.
// Valid only once the curve has been planarized (z almost 0 on all
// control points).
func (c Curve3) bezier2() Bezier {
	return BezierPt(c.pts[0].Pt2(), c.pts[1].Pt2(), c.pts[2].Pt2(), c.pts[3].Pt2())
}

// Sample returns the point at parameter t in [0,1].
func (c Curve3) Sample(t float64) Point3 {
	switch c.kind {
	case CurveKindLine:
		a, b := c.pts[0], c.pts[1]
		v := a.VectorTo(b)
		return a.Add(v.Scale(Length(t)))
	case CurveKindCircle:
		theta := Radians(t * 2 * 3.14159265358979323846)
		local := PtXy(0, 0).Add(VectorFromTheta(theta).Scale(c.radius))
		return c.localPlane().AsTransform().TransformPoint(Point3FromPt(local))
	case CurveKindArc:
		local := c.arc2().PtAtT(t)
		return c.localPlane().AsTransform().TransformPoint(Point3FromPt(local))
	case CurveKindBezier:
		return bezierPoint3(c.pts, t)
	}
	return Point3Origin
}

// bezierPoint3 evaluates the cubic at t by de Casteljau reduction directly on
// the world-frame control points, so sampling stays valid both before
// planarization and after a profile is transformed back to world
// coordinates.
func bezierPoint3(pts [4]Point3, t float64) Point3 {
	lerp := func(a, b Point3) Point3 {
		return a.Add(a.VectorTo(b).Scale(Length(t)))
	}
	p01, p12, p23 := lerp(pts[0], pts[1]), lerp(pts[1], pts[2]), lerp(pts[2], pts[3])
	p012, p123 := lerp(p01, p12), lerp(p12, p23)
	return lerp(p012, p123)
}

// Transform applies a world-frame transform to the curve, returning a new
// curve with a fresh identity.
func (c Curve3) Transform(m Matrix4) Curve3 {
	out := c
	out.id = uuid.New()
	for h := range out.pts {
		out.pts[h] = m.TransformPoint(out.pts[h])
	}
	if c.kind == CurveKindCircle || c.kind == CurveKindArc {
		out.normal = m.TransformVector(out.normal).Normalize()
	}
	return out
}

func (c Curve3) String() string {
	b, e := c.Endpoints()
	return fmt.Sprintf("%s(%v -> %v)", c.kind, b, e)
}

// Split partitions a curve at every intersection with other, returning
// sub-curves ordered along the parameter direction that together retrace
// the original curve. Valid once both curves are planarized into the same
// work-plane-local frame (z almost 0).
func (c Curve3) Split(other Curve3) []Curve3 {
	return c.SplitMulti([]Curve3{other})
}

// SplitMulti splits c at every intersection against every curve in others,
// then returns the resulting sub-curves. Each sub-curve is a freshly
// constructed curve with its own identity; the uncut original is returned
// as-is (keeping its identity) when nothing intersects it.
func (c Curve3) SplitMulti(others []Curve3) []Curve3 {
	ts := c.splitParams(others)
	if len(ts) == 0 {
		return []Curve3{c}
	}
	return c.sliceAtParams(ts)
}

// splitParams collects every parameter t in (0,1) at which c crosses any
// curve in others, deduplicated within epsilon and sorted ascending.
func (c Curve3) splitParams(others []Curve3) []float64 {
	var ts []float64
	for _, other := range others {
		if other.id == c.id {
			continue
		}
		pts := intersectCurve3(c, other)
		for _, p := range pts {
			t := c.paramAt(p)
			if t > 0 && t < 1 && !IsEqual(t, 0) && !IsEqual(t, 1) {
				ts = append(ts, t)
			}
		}
	}
	sortFloats(ts)
	return dedupFloats(ts)
}

func sortFloats(ts []float64) {
	for i := 1; i < len(ts); i++ {
		for j := i; j > 0 && ts[j-1] > ts[j]; j-- {
			ts[j-1], ts[j] = ts[j], ts[j-1]
		}
	}
}

func dedupFloats(ts []float64) []float64 {
	if len(ts) == 0 {
		return ts
	}
	out := ts[:1]
	for _, t := range ts[1:] {
		if !IsEqual(t, out[len(out)-1]) {
			out = append(out, t)
		}
	}
	return out
}

// paramAt returns the parameter t in [0,1] at which c passes through p
// (assumed to already lie on c).
func (c Curve3) paramAt(p Point3) float64 {
	switch c.kind {
	case CurveKindLine:
		a, b := c.pts[0], c.pts[1]
		total := a.VectorTo(b).Magnitude()
		if IsZero(total) {
			return 0
		}
		return float64(a.VectorTo(p).Magnitude() / total)
	case CurveKindCircle:
		local := c.localPlane().AsTransform().Invert().TransformPoint(p).Pt2()
		theta := PtXy(0, 0).VectorTo(local).Angle().Normalize()
		return float64(theta) / (2 * 3.14159265358979323846)
	case CurveKindArc:
		local := c.localPlane().AsTransform().Invert().TransformPoint(p).Pt2()
		theta := PtXy(0, 0).VectorTo(local).Angle()
		span := c.arc2().sweep
		start := c.arc2().start.Normalize()
		d := (theta.Normalize() - start).Normalize()
		if span < 0 {
			full := Radians(2 * 3.14159265358979323846)
			d = full - d
			span = -span
		}
		if IsZero(Length(span)) {
			return 0
		}
		return float64(d / span)
	case CurveKindBezier:
		bez2 := c.bezier2()
		local := p.Pt2()
		best, bestDist := 0.0, Length(1e18)
		for step := 0; step <= 200; step++ {
			t := float64(step) / 200
			d := bez2.PtAtT(t).VectorTo(local).Magnitude()
			if d < bestDist {
				bestDist, best = d, t
			}
		}
		return best
	}
	return 0
}

// sliceAtParams cuts c into len(ts)+1 sub-curves at the given sorted
// interior parameters.
func (c Curve3) sliceAtParams(ts []float64) []Curve3 {
	bounds := append([]float64{0}, ts...)
	bounds = append(bounds, 1)
	out := make([]Curve3, 0, len(bounds)-1)
	for h := 0; h < len(bounds)-1; h++ {
		out = append(out, c.subCurve(bounds[h], bounds[h+1]))
	}
	return out
}

// subCurve returns the portion of c between parameters t0 and t1, preserving
// variant shape (an arc sliced from an arc stays an arc). The sub-curve is a
// new curve with a fresh identity: the region finder keys its per-directed
// -edge bookkeeping on fragment identity, so two fragments cut from the same
// original must never compare equal.
func (c Curve3) subCurve(t0, t1 float64) Curve3 {
	switch c.kind {
	case CurveKindLine:
		return NewLine3(c.Sample(t0), c.Sample(t1))
	case CurveKindCircle:
		full := Radians(2 * 3.14159265358979323846)
		return NewArc3(c.pts[0], c.radius, c.normal, Radians(t0)*full, Radians(t1-t0)*full)
	case CurveKindArc:
		return NewArc3(c.pts[0], c.radius, c.normal, c.start+Radians(t0)*c.sweep, Radians(t1-t0)*c.sweep)
	case CurveKindBezier:
		b2 := c.bezier2()
		_, right := b2.SplitAtT(t0)
		rescaled := (t1 - t0) / (1 - t0)
		if IsZero(Length(1 - t0)) {
			rescaled = 0
		}
		left, _ := right.SplitAtT(rescaled)
		pts := left.Points()
		return NewBezier3(
			Point3FromPt(pts[0]), Point3FromPt(pts[1]), Point3FromPt(pts[2]), Point3FromPt(pts[3]),
		)
	}
	return c
}
