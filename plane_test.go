package alchemy

import (
	"math"
	"testing"
)

func TestPlaneFromNormalBuildsOrthonormalFrame(t *testing.T) {
	normals := []Vec3{
		Vec3Ijk(0, 0, 1),
		Vec3Ijk(0, 0, -1),
		Vec3Ijk(1, 0, 0),
		Vec3Ijk(1, 1, 1),
		Vec3Ijk(-2, 5, 0.5),
	}
	for h, n := range normals {
		p := PlaneFromNormal(Point3Origin, n)
		if !Almost(p.U.Magnitude(), 1) || !Almost(p.V.Magnitude(), 1) {
			t.Errorf("[%d]PlaneFromNormal(%v) basis not unit length: |u|=%v |v|=%v",
				h, n, p.U.Magnitude(), p.V.Magnitude())
		}
		if !Almost(p.U.Dot(p.V), 0) {
			t.Errorf("[%d]PlaneFromNormal(%v) basis not orthogonal: u.v=%v", h, n, p.U.Dot(p.V))
		}
		want := n.Normalize()
		got := p.Normal().Normalize()
		if !Almost(got.Dot(want), 1) {
			t.Errorf("[%d]PlaneFromNormal(%v) normal failed. %v != %v", h, n, got, want)
		}
	}
}

func TestPlaneTransformRoundTrip(t *testing.T) {
	plane := PlaneFromNormal(Point3Xyz(5, -2, 7), Vec3Ijk(1, 1, 1))
	m := plane.AsTransform()
	inv := m.Invert()

	locals := []Point3{
		Point3Origin,
		Point3Xyz(1, 0, 0),
		Point3Xyz(-3, 2.5, 0),
		Point3Xyz(0.25, -0.75, 4),
	}
	for h, local := range locals {
		back := inv.TransformPoint(m.TransformPoint(local))
		if !AlmostPoint3(back, local) {
			t.Errorf("[%d]round trip failed. %v != %v", h, back, local)
		}
	}
}

func TestPlaneFromTransformRecoversBasis(t *testing.T) {
	plane := PlaneFromNormal(Point3Xyz(1, 2, 3), Vec3Ijk(0, 1, 0))
	recovered := PlaneFromTransform(plane.AsTransform())
	if !AlmostPoint3(recovered.Origin, plane.Origin) {
		t.Errorf("origin failed. %v != %v", recovered.Origin, plane.Origin)
	}
	if !Almost(recovered.U.Dot(plane.U), 1) || !Almost(recovered.V.Dot(plane.V), 1) {
		t.Errorf("basis failed. (%v, %v) != (%v, %v)",
			recovered.U, recovered.V, plane.U, plane.V)
	}
}

func TestMatrix4IsInvertible(t *testing.T) {
	if !Matrix4Identity.IsInvertible() {
		t.Errorf("the identity transform must be invertible")
	}
	singular := Matrix4Cols(Vec3Ijk(0, 0, 0), Vec3Ijk(0, 0, 0), Vec3Ijk(0, 0, 0), Point3Origin)
	if singular.IsInvertible() {
		t.Errorf("an all-zero transform must not be invertible")
	}
}

func TestMatrix4MulComposes(t *testing.T) {
	a := PlaneFromNormal(Point3Xyz(1, 0, 0), Vec3Ijk(0, 0, 1)).AsTransform()
	b := PlaneFromNormal(Point3Xyz(0, 2, 0), Vec3Ijk(0, 1, 0)).AsTransform()
	p := Point3Xyz(0.5, -1, 2)
	composed := a.Mul(b).TransformPoint(p)
	sequenced := a.TransformPoint(b.TransformPoint(p))
	if !AlmostPoint3(composed, sequenced) {
		t.Errorf("composition failed. %v != %v", composed, sequenced)
	}
}

func TestPlaneContainsPoint(t *testing.T) {
	plane := PlaneXY
	if !plane.ContainsPoint(Point3Xyz(3, -4, 0)) {
		t.Errorf("a z=0 point must lie on the XY plane")
	}
	if plane.ContainsPoint(Point3Xyz(3, -4, math.Pi)) {
		t.Errorf("an off-plane point must not lie on the XY plane")
	}
}
