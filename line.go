package alchemy

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SlopeType is the type (direction) of the slope of a line.
type SlopeType uint

const (
	LINE_DIRECTION_UNKNOWN SlopeType = iota
	LINE_DIRECTION_HORIZONTAL
	LINE_DIRECTION_VERTICAL
	LINE_DIRECTION_SAME
	LINE_DIRECTION_MIXED
)

// Line is an infinite line in the implicit form ax+by+c=0, in
// work-plane-local coordinates. IntersectionSegmentBezier and
// IntersectionSegmentCircle build one from a Segment's endpoints to feed the
// IntersectionLine* family; Segment is the bounded counterpart.
type Line struct {
	abc mgl64.Vec3
	s   SlopeType
}

// LineAbc creates a Line for the coefficients of a line. Expected format is
// ax+by+c=0. Values of a, b, or c that are close to zero are treated as zero.
func LineAbc(a, b, c Length) Line {
	return LineFromVec3(mgl64.Vec3{float64(a), float64(b), float64(c)})
}

// LineFromVec3 creates a Line based on the provided Vec3. Expected format is
// abc[0]x+abc[1]y+abc[2]=0. Values in abc that are close to zero are treated as
// zero.
func LineFromVec3(abc mgl64.Vec3) Line {
	if IsZero(abc[2]) {
		abc[2] = 0
	}

	var s SlopeType
	switch {
	case IsZero(abc[0]) && IsZero(abc[1]):
		abc[0], abc[1] = 0, 0
		s = LINE_DIRECTION_UNKNOWN
	case IsZero(abc[0]) && !IsZero(abc[1]):
		abc[0] = 0
		s = LINE_DIRECTION_HORIZONTAL
	case !IsZero(abc[0]) && IsZero(abc[1]):
		abc[1] = 0
		s = LINE_DIRECTION_VERTICAL
	case Signbit(abc[0]) != Signbit(abc[1]):
		s = LINE_DIRECTION_SAME
	default:
		s = LINE_DIRECTION_MIXED
	}
	return Line{
		abc: abc,
		s:   s,
	}
}

// LineFromVector creates a Line from a point and a vector. The vector is used
// to compute the slope (a and b values), and the point is used to compute the
// intercept (c value). Values of a, b, or c that are close to zero are treated
// as zero.
func LineFromVector(p1 Pt, v Vector) Line {
	b, a := v.Units()
	c := p1.X()*a - p1.Y()*b
	return LineAbc(a, -b, -c)
}

// LineFromPt create a line from two points. A line is a linear equation in the
// implicit format (ax+by+c=0). See \c Segment if you want to create a line that
// only exists between two points.
func LineFromPt(p1, p2 Pt) Line { return LineFromVector(p1, p1.VectorTo(p2)) }

// Abc returns the coefficients of the linear equation.
func (le Line) Abc() (Length, Length, Length) {
	return Length(le.abc[0]), Length(le.abc[1]), Length(le.abc[2])
}

// Angle returns the angle of the line, with positive X axis as being zero radians.
func (le Line) Angle() Radians {
	return le.Vector().Angle()
}

// IsHorizontal returns true if the line is a horizontal line (no rise).
func (le Line) IsHorizontal() bool { return le.s == LINE_DIRECTION_HORIZONTAL }

// IsVertical returns true if the line is a vertical line (no run).
func (le Line) IsVertical() bool { return le.s == LINE_DIRECTION_VERTICAL }

// IsUnknown returns true if the linear function has no slope (no rise, no
// run).
func (le Line) IsUnknown() bool { return le.s == LINE_DIRECTION_UNKNOWN }

// NormalizeUnit adjusts the coefficients of the linear function to have a unit
// length of 1. Will cause the line to be in error if \c IsUnknown is true.
func (le Line) NormalizeUnit() Line {
	d := math.Hypot(le.abc[0], le.abc[1])
	return LineFromVec3(mgl64.Vec3{le.abc[0] / d, le.abc[1] / d, le.abc[2] / d})
}

// OrErr checks all the coefficients of the linear function and returns a
// floating point error if any of them are non-real floating point values (NaN,
// Inf, LINE_DIRECTION_UNKNOWN).
func (le Line) OrErr() (Line, *FloatingPointError) {
	if le.s == LINE_DIRECTION_UNKNOWN {
		return le, &FloatingPointError{math.Inf(1)}
	}
	a, b, c := le.Abc()
	if _, err := a.OrErr(); err != nil {
		return le, err
	} else if _, err = b.OrErr(); err != nil {
		return le, err
	} else if _, err = c.OrErr(); err != nil {
		return le, err
	}
	return le, nil
}

// String returns a human readable representation of the linear function.
func (le Line) String() string {
	var str string
	switch le.s {
	case LINE_DIRECTION_UNKNOWN:
		str = fmt.Sprintf("0x+0y=%s",
			HumanFormat(9, -le.abc[2]))
	case LINE_DIRECTION_HORIZONTAL:
		str = fmt.Sprintf("%sy=%s",
			HumanFormat(9, le.abc[1]),
			HumanFormat(9, -le.abc[2]))
	case LINE_DIRECTION_VERTICAL:
		str = fmt.Sprintf("%sx=%s",
			HumanFormat(9, le.abc[0]),
			HumanFormat(9, -le.abc[2]))
	case LINE_DIRECTION_SAME:
		fallthrough
	default:
		ab := '+'
		b := le.abc[1]
		if Signbit(b) {
			ab = '-'
			b = -b
		}
		bc := '+'
		c := le.abc[2]
		if Signbit(c) {
			bc = '-'
			c = -c
		}
		str = fmt.Sprintf("%sx%c%sy%c%s=0",
			HumanFormat(9, le.abc[0]),
			ab,
			HumanFormat(9, b),
			bc,
			HumanFormat(9, c),
		)
	}
	return str
}

// Vector returns the vector of the line, in the direction of A, normalized to
// a magnitude of 1.
func (le Line) Vector() Vector {
	le = le.NormalizeUnit()
	ij := mgl64.Vec2{-le.abc[1], le.abc[0]}
	return VectorFromVec2(ij)
}

// XForY returns the X value for a given Y. Returns \c NaN if \c IsHorizontal()
// or \c IsUnknown() are true.
func (le Line) XForY(y Length) Length {
	switch le.s {
	case LINE_DIRECTION_VERTICAL:
		return Length(-le.abc[2] / le.abc[0])
	case LINE_DIRECTION_HORIZONTAL:
		fallthrough
	case LINE_DIRECTION_UNKNOWN:
		return Length(math.NaN())
	}

	a, b, c := le.Abc()
	return b*y/-a - c/a
}

// YForX returns the Y value for a given X. Returns \c NaN if \c IsVertical()
// or \c IsUnknown() are true.
func (le Line) YForX(x Length) Length {
	switch le.s {
	case LINE_DIRECTION_HORIZONTAL:
		return Length(-le.abc[2] / le.abc[1])
	case LINE_DIRECTION_VERTICAL:
		fallthrough
	case LINE_DIRECTION_UNKNOWN:
		return Length(math.NaN())
	}

	a, b, c := le.Abc()
	return -a*x/b - c/b
}

// RotateOrTranslateToXAxis rotates (or translates) \c pts so that the
// provided line becomes the X-axis. IntersectionLineBezier uses this to
// turn a line/Bezier intersection into a root-find: once the line is the
// X-axis, the Bezier's own Y polynomial's roots are the crossing params.
func RotateOrTranslateToXAxis(a Line, pts []Pt) []Pt {
	switch {
	case a.IsUnknown():
		return pts
	case a.IsHorizontal():
		y := a.YForX(0)
		if !IsZero(y) {
			trans := PtXy(0, y).VectorTo(PtOrig)
			pts = TranslatePts(trans, pts)
		}
	default:
		x := a.XForY(0)
		origin := PtXy(x, 0)
		theta := -a.Angle()
		pts = RotatePts(theta, origin, pts)
	}
	return pts
}

// Segment is a bounded fragment of a Line between two endpoints: the 2D
// shape intersect3.go's lineOf projects a planarized Curve3 Line into.
type Segment struct {
	b, e Pt
}

// SegmentPt creates a new segment using the provided points.
func SegmentPt(begin, end Pt) Segment {
	return Segment{
		b: begin,
		e: end,
	}
}

func (s Segment) Begin() Pt              { return s.b }
func (s Segment) BoundingBox() Rectangle { return RectanglePt(s.b, s.e) }
func (s Segment) End() Pt                { return s.e }
func (s Segment) Length() Length         { return s.b.VectorTo(s.e).Magnitude() }
func (s Segment) Angle() Radians         { return s.b.VectorTo(s.e).Angle() }
func (s Segment) Points() []Pt           { return []Pt{s.b, s.e} }
func (s Segment) OrErr() (Segment, *FloatingPointError) {
	if _, err := s.b.OrErr(); err != nil {
		return s, err
	} else if _, err = s.e.OrErr(); err != nil {
		return s, err
	}
	return s, nil
}
func (s Segment) String() string {
	return fmt.Sprintf("Segment(%v, %v)", s.b, s.e)
}
