package alchemy

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point3 is a point in the sketch's world frame (the frame the caller's
// solid-modeling kernel works in). All curve sampling, length, and transform
// operations that don't require planar-graph math operate directly on
// Point3; the arrangement engine itself runs on the work-plane-local Pt type
// after planarization (see GetPlanarizedElements).
type Point3 struct {
	xyz mgl64.Vec3
}

// Point3Xyz creates a 3D point from its coordinates.
func Point3Xyz(x, y, z Length) Point3 {
	return Point3{xyz: mgl64.Vec3{float64(x), float64(y), float64(z)}}
}

// Point3Origin is the origin of the world frame.
var Point3Origin = Point3Xyz(0, 0, 0)

func (p Point3) X() Length { return Length(p.xyz[0]) }
func (p Point3) Y() Length { return Length(p.xyz[1]) }
func (p Point3) Z() Length { return Length(p.xyz[2]) }

// XYZ returns all three coordinates.
func (p Point3) XYZ() (Length, Length, Length) { return p.X(), p.Y(), p.Z() }

func (p Point3) String() string {
	return fmt.Sprintf("Point3({%s, %s, %s})",
		HumanFormat(9, p.X()), HumanFormat(9, p.Y()), HumanFormat(9, p.Z()))
}

// Add offsets p by vector v.
func (p Point3) Add(v Vec3) Point3 {
	return Point3{xyz: p.xyz.Add(v.ijk)}
}

// VectorTo returns the vector from p to b.
func (p Point3) VectorTo(b Point3) Vec3 {
	return Vec3{ijk: b.xyz.Sub(p.xyz)}
}

// AlmostPoint3 tests whether two world-frame points are within EPS on every
// axis, the tolerance used throughout the engine for endpoint coincidence.
func AlmostPoint3(a, b Point3) bool {
	return Almost(a.X(), b.X()) && Almost(a.Y(), b.Y()) && Almost(a.Z(), b.Z())
}

// Pt2 projects this point onto its local XY, discarding Z. Valid only for
// points already expressed in work-plane-local coordinates (post
// planarization), where Z is expected to be almost zero.
func (p Point3) Pt2() Pt { return PtXy(p.X(), p.Y()) }

// Point3FromPt lifts a work-plane-local 2D point back into Point3 at z=0.
func Point3FromPt(p Pt) Point3 {
	x, y := p.XY()
	return Point3Xyz(x, y, 0)
}

// Vec3 is a direction and magnitude in the world frame.
type Vec3 struct {
	ijk mgl64.Vec3
}

// Vec3Ijk creates a vector from its components.
func Vec3Ijk(i, j, k Length) Vec3 {
	return Vec3{ijk: mgl64.Vec3{float64(i), float64(j), float64(k)}}
}

// UnitZ is the world +Z axis, the default sketch-plane normal.
var UnitZ = Vec3Ijk(0, 0, 1)

func (v Vec3) IJK() (Length, Length, Length) {
	return Length(v.ijk[0]), Length(v.ijk[1]), Length(v.ijk[2])
}

func (v Vec3) String() string {
	i, j, k := v.IJK()
	return fmt.Sprintf("Vec3(%s, %s, %s)", HumanFormat(9, i), HumanFormat(9, j), HumanFormat(9, k))
}

// Magnitude returns the vector's length.
func (v Vec3) Magnitude() Length {
	return Length(v.ijk.Len())
}

// Normalize returns a unit-length copy of v. Returns the zero vector if v is
// degenerate.
func (v Vec3) Normalize() Vec3 {
	m := v.Magnitude()
	if IsZero(m) {
		return Vec3{}
	}
	return Vec3{ijk: v.ijk.Mul(1 / float64(m))}
}

// Cross returns the cross product v x n.
func (v Vec3) Cross(n Vec3) Vec3 {
	return Vec3{ijk: v.ijk.Cross(n.ijk)}
}

// Dot returns the dot product v . n.
func (v Vec3) Dot(n Vec3) Length {
	return Length(v.ijk.Dot(n.ijk))
}

// Scale scales the vector by m.
func (v Vec3) Scale(m Length) Vec3 {
	return Vec3{ijk: v.ijk.Mul(float64(m))}
}

// Matrix4 is a 4x4 affine transform, column-major to match mgl64's
// convention.
type Matrix4 struct {
	m mgl64.Mat4
}

// Matrix4Identity is the identity transform.
var Matrix4Identity = Matrix4{m: mgl64.Ident4()}

// Matrix4Cols builds a Matrix4 from four homogeneous columns: u, v, normal,
// and origin. This is exactly the Plane -> Matrix4 mapping described in the
// data model: [u|v|n|origin].
func Matrix4Cols(u, v, n Vec3, origin Point3) Matrix4 {
	ux, uy, uz := u.IJK()
	vx, vy, vz := v.IJK()
	nx, ny, nz := n.IJK()
	ox, oy, oz := origin.XYZ()
	return Matrix4{m: mgl64.Mat4{
		float64(ux), float64(uy), float64(uz), 0,
		float64(vx), float64(vy), float64(vz), 0,
		float64(nx), float64(ny), float64(nz), 0,
		float64(ox), float64(oy), float64(oz), 1,
	}}
}

// TransformPoint applies the transform to a point (translation included).
func (mat Matrix4) TransformPoint(p Point3) Point3 {
	v := mat.m.Mul4x1(mgl64.Vec4{float64(p.X()), float64(p.Y()), float64(p.Z()), 1})
	return Point3Xyz(Length(v[0]), Length(v[1]), Length(v[2]))
}

// TransformVector applies the transform to a vector (no translation).
func (mat Matrix4) TransformVector(v Vec3) Vec3 {
	i, j, k := v.IJK()
	r := mat.m.Mul4x1(mgl64.Vec4{float64(i), float64(j), float64(k), 0})
	return Vec3Ijk(Length(r[0]), Length(r[1]), Length(r[2]))
}

// IsInvertible reports whether the transform has a non-zero determinant.
func (mat Matrix4) IsInvertible() bool {
	return !Almost(Length(math.Abs(mat.m.Det())), 0)
}

// Invert returns the inverse transform. Matches the invariant that
// applying work_plane then its inverse returns the original point within
// EPS; callers should not call Invert on a singular matrix.
func (mat Matrix4) Invert() Matrix4 {
	return Matrix4{m: mat.m.Inv()}
}

// Mul composes two transforms: (a.Mul(b)).TransformPoint(p) == a.TransformPoint(b.TransformPoint(p)).
func (a Matrix4) Mul(b Matrix4) Matrix4 {
	return Matrix4{m: a.m.Mul4(b.m)}
}

// Plane is a work plane: an origin plus two in-plane basis vectors. The
// normal is derived, not stored, as u x v. Convertible to/from a Matrix4
// via AsTransform/PlaneFromTransform.
type Plane struct {
	Origin Point3
	U, V   Vec3
}

// PlaneXY is the default work plane: the world XY plane with standard basis.
var PlaneXY = Plane{
	Origin: Point3Origin,
	U:      Vec3Ijk(1, 0, 0),
	V:      Vec3Ijk(0, 1, 0),
}

// PlaneFromNormal builds a plane through origin whose normal is the given
// vector, choosing an arbitrary but deterministic in-plane basis.
func PlaneFromNormal(origin Point3, normal Vec3) Plane {
	n := normal.Normalize()
	// Pick whichever world axis is least aligned with n to seed a
	// perpendicular basis vector, then complete the right-handed frame.
	ni, nj, nk := n.IJK()
	var seed Vec3
	if math.Abs(float64(ni)) <= math.Abs(float64(nj)) && math.Abs(float64(ni)) <= math.Abs(float64(nk)) {
		seed = Vec3Ijk(1, 0, 0)
	} else if math.Abs(float64(nj)) <= math.Abs(float64(nk)) {
		seed = Vec3Ijk(0, 1, 0)
	} else {
		seed = Vec3Ijk(0, 0, 1)
	}
	u := n.Cross(seed).Normalize()
	v := n.Cross(u)
	return Plane{Origin: origin, U: u, V: v}
}

// Normal returns u x v.
func (p Plane) Normal() Vec3 { return p.U.Cross(p.V) }

// ContainsPoint reports whether a world-frame point lies on the plane
// within EPS.
func (p Plane) ContainsPoint(pt Point3) bool {
	d := p.Origin.VectorTo(pt).Normalize().Dot(p.Normal().Normalize())
	return AlmostPoint3(p.Origin, pt) || Almost(Length(math.Abs(float64(d))), 0)
}

// AsTransform returns the plane-local-to-world Matrix4, [u|v|n|origin].
func (p Plane) AsTransform() Matrix4 {
	return Matrix4Cols(p.U, p.V, p.Normal(), p.Origin)
}

// PlaneFromTransform recovers a Plane from a Matrix4 built by AsTransform.
func PlaneFromTransform(m Matrix4) Plane {
	origin := m.TransformPoint(Point3Origin)
	u := m.TransformVector(Vec3Ijk(1, 0, 0))
	v := m.TransformVector(Vec3Ijk(0, 1, 0))
	return Plane{Origin: origin, U: u, V: v}
}
