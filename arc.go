package alchemy

import "fmt"

// Arc represents a circular arc: a Circle restricted to the angular span
// from start to start+sweep, both ends included. A positive sweep travels anti-clockwise, matching
// VectorFromTheta's convention; a negative sweep travels clockwise. An arc
// whose |sweep| is a full turn behaves like a Circle for dangling/closure
// purposes (see IsClosed).
type Arc struct {
	c     Pt
	r     Length
	start Radians
	sweep Radians
}

// ArcPt creates an arc at a specific center, with the given radius, starting
// angle, and signed angular sweep.
func ArcPt(c Pt, r Length, start, sweep Radians) Arc {
	if r < 0 {
		r = -r
	}
	return Arc{c: c, r: r, start: start, sweep: sweep}
}

// ArcFromEndpoints builds the arc of the given circle that runs from theta1
// to theta2 travelling anti-clockwise (sweep >= 0). Swapping theta1 and
// theta2 gives the complementary arc, which covers the clockwise path from
// theta1 to theta2.
func ArcFromEndpoints(c Pt, r Length, theta1, theta2 Radians) Arc {
	sweep := theta2.Normalize() - theta1.Normalize()
	if sweep < 0 {
		sweep += Radians(2 * 3.14159265358979323846)
	}
	return ArcPt(c, r, theta1, sweep)
}

// Center returns the arc's center point.
func (a Arc) Center() Pt { return a.c }

// Radius returns the arc's radius.
func (a Arc) Radius() Length { return a.r }

// Angles returns the starting angle and the signed sweep.
func (a Arc) Angles() (Radians, Radians) { return a.start, a.sweep }

// Circle returns the full circle this arc is a restriction of.
func (a Arc) Circle() Circle { return CirclePt(a.c, a.r) }

// IsClosed reports whether the arc's sweep covers a full turn, making it
// behave like a closed curve (start almost equals end) for dangling-segment
// purposes.
func (a Arc) IsClosed() bool {
	full := Radians(2 * 3.14159265358979323846)
	s := a.sweep
	if s < 0 {
		s = -s
	}
	return IsEqual(s, full) || s > full
}

// PtAtTheta returns the point on the underlying circle at the provided angle,
// independent of whether theta falls within this arc's span.
func (a Arc) PtAtTheta(theta Radians) Pt {
	return a.Circle().PtAtTheta(theta)
}

// PtAtT returns the point at parameter t in [0,1], linearly interpolating the
// angular span from start to start+sweep.
func (a Arc) PtAtT(t float64) Pt {
	theta := a.start + Radians(t)*a.sweep
	return a.PtAtTheta(theta)
}

// Begin returns the arc's starting point.
func (a Arc) Begin() Pt { return a.PtAtTheta(a.start) }

// End returns the arc's ending point.
func (a Arc) End() Pt { return a.PtAtTheta(a.start + a.sweep) }

// ContainsTheta reports whether theta (radians, any representative) falls
// within the arc's angular span.
func (a Arc) ContainsTheta(theta Radians) bool {
	span := a.sweep
	start := a.start.Normalize()
	t := theta.Normalize()
	d := (t - start).Normalize()
	if span < 0 {
		full := Radians(2 * 3.14159265358979323846)
		if !IsZero(d) {
			d = full - d
		}
		span = -span
	}
	return d <= span || IsEqual(d, span)
}

// BoundingBox returns the axis-aligned bounding box of the arc, accounting
// for the cardinal points (0, π/2, π, 3π/2) that fall within its span.
func (a Arc) BoundingBox() Rectangle {
	pts := []Pt{a.Begin(), a.End()}
	half := Radians(3.14159265358979323846 / 2)
	for k := 0; k < 4; k++ {
		theta := Radians(k) * half
		if a.ContainsTheta(theta) {
			pts = append(pts, a.PtAtTheta(theta))
		}
	}
	lx, mx, ly, my := LimitsPts(pts)
	return RectanglePt(PtXy(lx, ly), PtXy(mx, my))
}

// OrErr returns a floating point error if center, radius, or angles are in
// error.
func (a Arc) OrErr() (Arc, *FloatingPointError) {
	if _, err := a.c.OrErr(); err != nil {
		return a, err
	} else if _, err := a.r.OrErr(); err != nil {
		return a, err
	} else if _, err := a.start.OrErr(); err != nil {
		return a, err
	} else if _, err := a.sweep.OrErr(); err != nil {
		return a, err
	}
	return a, nil
}

// SplitAtTheta splits the arc into two arcs at the given angle, which must
// fall within the arc's span.
func (a Arc) SplitAtTheta(theta Radians) (Arc, Arc) {
	span := (theta.Normalize() - a.start.Normalize()).Normalize()
	if a.sweep < 0 {
		span = -(a.start.Normalize() - theta.Normalize()).Normalize()
	}
	return ArcPt(a.c, a.r, a.start, span), ArcPt(a.c, a.r, theta, a.sweep-span)
}

// String returns a human readable description of the arc.
func (a Arc) String() string {
	return fmt.Sprintf("Arc(%v, r=%s, %v..%v)", a.c, HumanFormat(9, a.r), a.start, a.start+a.sweep)
}
