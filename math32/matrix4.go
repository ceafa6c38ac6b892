// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "errors"

// ErrSingular is returned when inverting a matrix with a zero determinant.
var ErrSingular = errors.New("math32: matrix is singular")

// Matrix4 is 4x4 matrix organized internally as column matrix.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() *Matrix4 {
	m := &Matrix4{}
	m.SetIdentity()
	return m
}

// Set sets all the elements of this matrix row by row starting at row1, column1,
// row1, column2, row1, column3 and so forth.
func (m *Matrix4) Set(n11, n12, n13, n14, n21, n22, n23, n24, n31, n32, n33, n34, n41, n42, n43, n44 float32) {
	m[0] = n11
	m[4] = n12
	m[8] = n13
	m[12] = n14
	m[1] = n21
	m[5] = n22
	m[9] = n23
	m[13] = n24
	m[2] = n31
	m[6] = n32
	m[10] = n33
	m[14] = n34
	m[3] = n41
	m[7] = n42
	m[11] = n43
	m[15] = n44
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix4) SetIdentity() {
	m.Set(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Position returns the translation component of this matrix.
func (m *Matrix4) Position() Vector3 {
	return Vec3(m[12], m[13], m[14])
}

// SetTransform sets this matrix to a transformation matrix for the specified position,
// rotation specified by the quaternion and scale.
func (m *Matrix4) SetTransform(pos Vector3, quat Quat, scale Vector3) {
	x, y, z, w := quat.X, quat.Y, quat.Z, quat.W
	x2, y2, z2 := x+x, y+y, z+z
	xx, xy, xz := x*x2, x*y2, x*z2
	yy, yz, zz := y*y2, y*z2, z*z2
	wx, wy, wz := w*x2, w*y2, w*z2

	m[0] = (1 - (yy + zz)) * scale.X
	m[1] = (xy + wz) * scale.X
	m[2] = (xz - wy) * scale.X
	m[3] = 0
	m[4] = (xy - wz) * scale.Y
	m[5] = (1 - (xx + zz)) * scale.Y
	m[6] = (yz + wx) * scale.Y
	m[7] = 0
	m[8] = (xz + wy) * scale.Z
	m[9] = (yz - wx) * scale.Z
	m[10] = (1 - (xx + yy)) * scale.Z
	m[11] = 0
	m[12] = pos.X
	m[13] = pos.Y
	m[14] = pos.Z
	m[15] = 1
}

// SetRotationFromQuat sets this matrix as a rotation matrix from the specified quaternion.
func (m *Matrix4) SetRotationFromQuat(q Quat) {
	m.SetTransform(Vector3{}, q, Vec3(1, 1, 1))
}

// MulMatrices sets this matrix as matrix multiplication a by b (i.e., a*b).
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	var r Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += a[k*4+row] * b[col*4+k]
			}
			r[col*4+row] = s
		}
	}
	*m = r
}

// Mul returns this matrix times other matrix (this matrix is unchanged)
func (m *Matrix4) Mul(other *Matrix4) *Matrix4 {
	nm := &Matrix4{}
	nm.MulMatrices(m, other)
	return nm
}

// SetInverse sets this matrix to the inverse of the src matrix.
// If the src matrix cannot be inverted returns [ErrSingular]
// and leaves this matrix unchanged.
func (m *Matrix4) SetInverse(src *Matrix4) error {
	// Gauss-Jordan elimination with partial pivoting. Because the inverse
	// of the transpose is the transpose of the inverse, the storage order
	// does not matter here.
	a := *src
	inv := *Identity4()
	for c := 0; c < 4; c++ {
		p := c
		for r := c + 1; r < 4; r++ {
			if Abs(a[r*4+c]) > Abs(a[p*4+c]) {
				p = r
			}
		}
		if Abs(a[p*4+c]) < 1e-12 {
			return ErrSingular
		}
		if p != c {
			for k := 0; k < 4; k++ {
				a[p*4+k], a[c*4+k] = a[c*4+k], a[p*4+k]
				inv[p*4+k], inv[c*4+k] = inv[c*4+k], inv[p*4+k]
			}
		}
		d := 1 / a[c*4+c]
		for k := 0; k < 4; k++ {
			a[c*4+k] *= d
			inv[c*4+k] *= d
		}
		for r := 0; r < 4; r++ {
			if r == c {
				continue
			}
			f := a[r*4+c]
			if f == 0 {
				continue
			}
			for k := 0; k < 4; k++ {
				a[r*4+k] -= f * a[c*4+k]
				inv[r*4+k] -= f * inv[c*4+k]
			}
		}
	}
	*m = inv
	return nil
}

// Inverse returns the inverse of this matrix.
// If the matrix cannot be inverted returns error.
func (m *Matrix4) Inverse() (*Matrix4, error) {
	nm := &Matrix4{}
	err := nm.SetInverse(m)
	return nm, err
}

// MaxScaleOnAxis returns the maximum scale value of the 3 axes.
func (m *Matrix4) MaxScaleOnAxis() float32 {
	scaleXSq := m[0]*m[0] + m[1]*m[1] + m[2]*m[2]
	scaleYSq := m[4]*m[4] + m[5]*m[5] + m[6]*m[6]
	scaleZSq := m[8]*m[8] + m[9]*m[9] + m[10]*m[10]
	return Sqrt(Max(scaleXSq, Max(scaleYSq, scaleZSq)))
}

// SetPerspective sets this matrix to a perspective projection matrix
// with the specified vertical field of view in degrees,
// aspect ratio (width / height) and near and far planes.
func (m *Matrix4) SetPerspective(fov, aspect, near, far float32) {
	ymax := near * Tan(DegToRad(fov*0.5))
	ymin := -ymax
	xmin := ymin * aspect
	xmax := ymax * aspect
	m.SetFrustum(xmin, xmax, ymin, ymax, near, far)
}

// SetFrustum sets this matrix to a projection frustum matrix bounded by the specified planes.
func (m *Matrix4) SetFrustum(left, right, bottom, top, near, far float32) {
	m[0] = 2 * near / (right - left)
	m[1] = 0
	m[2] = 0
	m[3] = 0
	m[4] = 0
	m[5] = 2 * near / (top - bottom)
	m[6] = 0
	m[7] = 0
	m[8] = (right + left) / (right - left)
	m[9] = (top + bottom) / (top - bottom)
	m[10] = -(far + near) / (far - near)
	m[11] = -1
	m[12] = 0
	m[13] = 0
	m[14] = -(2 * far * near) / (far - near)
	m[15] = 0
}

// SetOrthographic sets this matrix to an orthographic projection matrix
// centered on the view axis with the given width and height.
func (m *Matrix4) SetOrthographic(width, height, near, far float32) {
	p := far - near
	m.Set(
		2/width, 0, 0, 0,
		0, 2/height, 0, 0,
		0, 0, -2/p, -(far+near)/p,
		0, 0, 0, 1,
	)
}

// NewLookAt returns Matrix4 matrix as view transform matrix with origin at eye,
// looking at target and using the up vector.
func NewLookAt(eye, target, up Vector3) *Matrix4 {
	rotMat := &Matrix4{}
	rotMat.SetIdentity()
	z := eye.Sub(target)
	if z.LengthSquared() == 0 {
		z.Z = 1
	}
	z = z.Normal()
	x := up.Cross(z)
	if x.LengthSquared() == 0 { // up and z are parallel
		if Abs(up.Z) == 1 {
			z.X += 0.0001
		} else {
			z.Z += 0.0001
		}
		z = z.Normal()
		x = up.Cross(z)
	}
	x = x.Normal()
	y := z.Cross(x)

	rotMat[0] = x.X
	rotMat[1] = x.Y
	rotMat[2] = x.Z
	rotMat[4] = y.X
	rotMat[5] = y.Y
	rotMat[6] = y.Z
	rotMat[8] = z.X
	rotMat[9] = z.Y
	rotMat[10] = z.Z
	return rotMat
}
