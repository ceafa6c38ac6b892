// Copyright 2021 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/orrery/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const StandardTol = float32(1.0e-5)

func TolAssertEqualVector(t *testing.T, tol float32, vt, va Vector3) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
	tolassert.EqualTol(t, vt.Z, va.Z, tol)
}

func TestQuatEuler(t *testing.T) {
	vx := Vec3(1, 0, 0)

	TolAssertEqualVector(t, StandardTol, Vec3(0, 0, -1), vx.MulQuat(NewQuatEuler(Vec3(0, Pi/2, 0))))
	TolAssertEqualVector(t, StandardTol, Vec3(0, 1, 0), vx.MulQuat(NewQuatEuler(Vec3(0, 0, Pi/2))))
	// intrinsic XYZ: Y is applied to the vector before X
	TolAssertEqualVector(t, StandardTol, Vec3(0, 1, 0), vx.MulQuat(NewQuatEuler(Vec3(Pi/2, Pi/2, 0))))

	e := Vec3(0.3, -0.7, 1.1)
	qe := NewQuatEuler(e)
	qp := NewQuatAxisAngle(Vec3(1, 0, 0), e.X).Mul(NewQuatAxisAngle(Vec3(0, 1, 0), e.Y)).Mul(NewQuatAxisAngle(Vec3(0, 0, 1), e.Z))
	tolassert.EqualTol(t, qe.X, qp.X, StandardTol)
	tolassert.EqualTol(t, qe.Y, qp.Y, StandardTol)
	tolassert.EqualTol(t, qe.Z, qp.Z, StandardTol)
	tolassert.EqualTol(t, qe.W, qp.W, StandardTol)
}

func TestQuatMulOrder(t *testing.T) {
	tilt := NewQuatAxisAngle(Vec3(0, 0, 1), Pi/2)
	spin := NewQuatAxisAngle(Vec3(0, 1, 0), Pi/2)
	// spin first, then tilt
	v := Vec3(1, 0, 0).MulQuat(tilt.Mul(spin))
	TolAssertEqualVector(t, StandardTol, Vec3(0, 0, -1), v)
	TolAssertEqualVector(t, StandardTol, Vec3(1, 0, 0), v.MulQuat(tilt.Mul(spin).Inverse()))
}

func TestMatrixTransformInverse(t *testing.T) {
	var m Matrix4
	m.SetTransform(Vec3(1, 2, 3), NewQuatAxisAngle(Vec3(0, 1, 0), 0.5), Vec3(2, 2, 2))
	inv, err := m.Inverse()
	require.NoError(t, err)
	id := m.Mul(inv)
	for i := range id {
		exp := float32(0)
		if i%5 == 0 {
			exp = 1
		}
		tolassert.EqualTol(t, exp, id[i], StandardTol)
	}
	p := Vec3(4, -1, 2)
	TolAssertEqualVector(t, 1e-4, p, p.MulMatrix4(&m).MulMatrix4(inv))
	tolassert.EqualTol(t, 2, m.MaxScaleOnAxis(), StandardTol)
	assert.Equal(t, Vec3(1, 2, 3), m.Position())

	var z Matrix4
	_, err = z.Inverse()
	assert.ErrorIs(t, err, ErrSingular)
}

func TestMatrixMulOrder(t *testing.T) {
	var tr, rot Matrix4
	tr.SetTransform(Vec3(10, 0, 0), NewQuatIdentity(), Vec3(1, 1, 1))
	rot.SetRotationFromQuat(NewQuatAxisAngle(Vec3(0, 1, 0), Pi/2))
	// rotate first then translate
	TolAssertEqualVector(t, StandardTol, Vec3(10, 0, -1), Vec3(1, 0, 0).MulMatrix4(tr.Mul(&rot)))
	// translate first then rotate
	TolAssertEqualVector(t, 1e-4, Vec3(0, 0, -11), Vec3(1, 0, 0).MulMatrix4(rot.Mul(&tr)))
}

func TestPerspective(t *testing.T) {
	var prjn Matrix4
	prjn.SetPerspective(90, 1, 1, 100)
	c := Vec3(0, 0, -10).MulProjection(&prjn)
	tolassert.EqualTol(t, 0, c.X, StandardTol)
	tolassert.EqualTol(t, 0, c.Y, StandardTol)
	near := Vec3(0, 0, -1).MulProjection(&prjn)
	tolassert.EqualTol(t, -1, near.Z, 1e-4)
	far := Vec3(0, 0, -100).MulProjection(&prjn)
	tolassert.EqualTol(t, 1, far.Z, 1e-4)
	edge := Vec3(10, 0, -10).MulProjection(&prjn)
	tolassert.EqualTol(t, 1, edge.X, 1e-4)
}

func TestLookAt(t *testing.T) {
	var q Quat
	q.SetFromRotationMatrix(NewLookAt(Vec3(0, 0, 10), Vec3(0, 0, 0), Vec3(0, 1, 0)))
	assert.True(t, q.IsIdentity() || Abs(q.W) > 0.9999)

	q.SetFromRotationMatrix(NewLookAt(Vec3(10, 0, 0), Vec3(0, 0, 0), Vec3(0, 1, 0)))
	// camera looks down its -Z axis
	TolAssertEqualVector(t, StandardTol, Vec3(-1, 0, 0), Vec3(0, 0, -1).MulQuat(q))

	// degenerate up vector still produces a valid rotation
	m := NewLookAt(Vec3(0, 10, 0), Vec3(0, 0, 0), Vec3(0, 1, 0))
	assert.False(t, IsNaN(m[0]))
}

func TestRaySphere(t *testing.T) {
	ray := NewRay(Vec3(0, 0, 10), Vec3(0, 0, -1))
	d, ok := ray.IntersectSphere(NewSphere(Vec3(0, 0, 0), 2))
	assert.True(t, ok)
	tolassert.EqualTol(t, 8, d, StandardTol)
	TolAssertEqualVector(t, StandardTol, Vec3(0, 0, 2), ray.At(d))

	_, ok = ray.IntersectSphere(NewSphere(Vec3(5, 0, 0), 2))
	assert.False(t, ok)
	_, ok = ray.IntersectSphere(NewSphere(Vec3(0, 0, 20), 2))
	assert.False(t, ok)

	inside := NewRay(Vec3(0, 0, 0), Vec3(1, 0, 0))
	d, ok = inside.IntersectSphere(NewSphere(Vec3(0, 0, 0), 3))
	assert.True(t, ok)
	tolassert.EqualTol(t, 3, d, StandardTol)
}

func TestRayBox(t *testing.T) {
	ray := NewRay(Vec3(0, 0, 10), Vec3(0, 0, -1))
	d, ok := ray.IntersectBox(B3(-1, -1, -1, 1, 1, 1))
	assert.True(t, ok)
	tolassert.EqualTol(t, 9, d, StandardTol)
	_, ok = ray.IntersectBox(B3(2, 2, -1, 3, 3, 1))
	assert.False(t, ok)
}

func TestBox3(t *testing.T) {
	b := B3Empty()
	assert.True(t, b.IsEmpty())
	b.ExpandByPoints([]Vector3{Vec3(-1, 0, 2), Vec3(3, -2, 0)})
	assert.Equal(t, Vec3(1, -1, 1), b.Center())
	assert.Equal(t, Vec3(4, 2, 2), b.Size())
	assert.True(t, b.ContainsPoint(Vec3(0, -1, 1)))

	var m Matrix4
	m.SetTransform(Vec3(10, 0, 0), NewQuatIdentity(), Vec3(2, 2, 2))
	mb := b.MulMatrix4(&m)
	assert.Equal(t, Vec3(8, -4, 0), mb.Min)
	assert.Equal(t, Vec3(16, 0, 4), mb.Max)
}

func TestSphereMatrix(t *testing.T) {
	var m Matrix4
	m.SetTransform(Vec3(0, 5, 0), NewQuatIdentity(), Vec3(1, 3, 1))
	s := NewSphere(Vec3(1, 0, 0), 2).MulMatrix4(&m)
	assert.Equal(t, Vec3(1, 5, 0), s.Center)
	tolassert.EqualTol(t, 6, s.Radius, StandardTol)
}
