// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

// lookAt builds a view matrix from the camera basis and position.
func lookAt[T Float](eye, zAxis, up Vector3[T]) Matrix4[T] {
	xAxis := up.Cross(zAxis).Normalize()
	yAxis := zAxis.Cross(xAxis)
	return Matrix4[T]{
		xAxis.X, yAxis.X, zAxis.X, 0,
		xAxis.Y, yAxis.Y, zAxis.Y, 0,
		xAxis.Z, yAxis.Z, zAxis.Z, 0,
		-xAxis.Dot(eye), -yAxis.Dot(eye), -zAxis.Dot(eye), 1,
	}
}

// LookAtLH returns a left-handed view matrix for a camera at eye
// looking at the point at, with the given up direction.
func LookAtLH[T Float](eye, at, up Vector3[T]) Matrix4[T] {
	return lookAt(eye, at.Sub(eye).Normalize(), up)
}

// LookAtRH returns a right-handed view matrix for a camera at eye
// looking at the point at, with the given up direction.
func LookAtRH[T Float](eye, at, up Vector3[T]) Matrix4[T] {
	return lookAt(eye, eye.Sub(at).Normalize(), up)
}

// LookAtLHUp is [LookAtLH] with +Y as the up direction.
func LookAtLHUp[T Float](eye, at Vector3[T]) Matrix4[T] {
	return LookAtLH(eye, at, Vector3[T]{0, 1, 0})
}

// LookAtRHUp is [LookAtRH] with +Y as the up direction.
func LookAtRHUp[T Float](eye, at Vector3[T]) Matrix4[T] {
	return LookAtRH(eye, at, Vector3[T]{0, 1, 0})
}

// PerspectiveLH returns a left-handed perspective projection for a view
// volume of the given width and height at the near plane. Depth maps
// to [0, 1].
func PerspectiveLH[T Float](width, height, near, far T) Matrix4[T] {
	q := far / (far - near)
	return Matrix4[T]{
		2 * near / width, 0, 0, 0,
		0, 2 * near / height, 0, 0,
		0, 0, q, 1,
		0, 0, -near * q, 0,
	}
}

// PerspectiveRH is the right-handed form of [PerspectiveLH].
func PerspectiveRH[T Float](width, height, near, far T) Matrix4[T] {
	q := far / (near - far)
	return Matrix4[T]{
		2 * near / width, 0, 0, 0,
		0, 2 * near / height, 0, 0,
		0, 0, q, -1,
		0, 0, near * q, 0,
	}
}

// PerspectiveFovLH returns a left-handed perspective projection from a
// vertical field of view in radians and a width / height aspect ratio.
func PerspectiveFovLH[T Float](fovy, aspect, near, far T) Matrix4[T] {
	s, c := SinCos(fovy / 2)
	h := c / s
	w := h / aspect
	q := far / (far - near)
	return Matrix4[T]{
		w, 0, 0, 0,
		0, h, 0, 0,
		0, 0, q, 1,
		0, 0, -near * q, 0,
	}
}

// PerspectiveFovRH is the right-handed form of [PerspectiveFovLH].
func PerspectiveFovRH[T Float](fovy, aspect, near, far T) Matrix4[T] {
	s, c := SinCos(fovy / 2)
	h := c / s
	w := h / aspect
	q := far / (near - far)
	return Matrix4[T]{
		w, 0, 0, 0,
		0, h, 0, 0,
		0, 0, q, -1,
		0, 0, near * q, 0,
	}
}

// PerspectiveOffCenterLH returns a left-handed perspective projection
// for an off-center view volume given at the near plane.
func PerspectiveOffCenterLH[T Float](left, right, bottom, top, near, far T) Matrix4[T] {
	q := far / (far - near)
	return Matrix4[T]{
		2 * near / (right - left), 0, 0, 0,
		0, 2 * near / (top - bottom), 0, 0,
		(left + right) / (left - right), (top + bottom) / (bottom - top), q, 1,
		0, 0, -near * q, 0,
	}
}

// PerspectiveOffCenterRH is the right-handed form of [PerspectiveOffCenterLH].
func PerspectiveOffCenterRH[T Float](left, right, bottom, top, near, far T) Matrix4[T] {
	q := far / (near - far)
	return Matrix4[T]{
		2 * near / (right - left), 0, 0, 0,
		0, 2 * near / (top - bottom), 0, 0,
		(left + right) / (right - left), (top + bottom) / (top - bottom), q, -1,
		0, 0, near * q, 0,
	}
}

// OrthoLH returns a left-handed orthographic projection for a view
// volume of the given width and height centered on the Z axis.
func OrthoLH[T Float](width, height, near, far T) Matrix4[T] {
	q := 1 / (far - near)
	return Matrix4[T]{
		2 / width, 0, 0, 0,
		0, 2 / height, 0, 0,
		0, 0, q, 0,
		0, 0, -near * q, 1,
	}
}

// OrthoRH is the right-handed form of [OrthoLH].
func OrthoRH[T Float](width, height, near, far T) Matrix4[T] {
	q := 1 / (near - far)
	return Matrix4[T]{
		2 / width, 0, 0, 0,
		0, 2 / height, 0, 0,
		0, 0, q, 0,
		0, 0, near * q, 1,
	}
}

// OrthoOffCenterLH returns a left-handed orthographic projection for an
// off-center view volume.
func OrthoOffCenterLH[T Float](left, right, bottom, top, near, far T) Matrix4[T] {
	q := 1 / (far - near)
	return Matrix4[T]{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, q, 0,
		(left + right) / (left - right), (top + bottom) / (bottom - top), -near * q, 1,
	}
}

// OrthoOffCenterRH is the right-handed form of [OrthoOffCenterLH].
func OrthoOffCenterRH[T Float](left, right, bottom, top, near, far T) Matrix4[T] {
	q := 1 / (near - far)
	return Matrix4[T]{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, q, 0,
		(left + right) / (left - right), (top + bottom) / (bottom - top), near * q, 1,
	}
}

// SetObliqueClipping replaces the near plane of the left-handed
// perspective projection m by the view space clip plane, keeping the
// far plane where it was as closely as the new depth column allows.
// The camera must be on the negative side of the plane (D < 0).
// Depth precision is traded for the clipping; see Lengyel, "Oblique
// View Frustum Depth Projection and Clipping".
func (m *Matrix4[T]) SetObliqueClipping(clip Plane[T]) {
	q := Vector4[T]{
		(Sign(clip.A) - m[8]) / m[0],
		(Sign(clip.B) - m[9]) / m[5],
		1,
		(1 - m[10]) / m[14],
	}
	c := 1 / clip.Dot(q)
	m[2] = clip.A * c
	m[6] = clip.B * c
	m[10] = clip.C * c
	m[14] = clip.D * c
}

// ObliqueClipping returns a copy of proj with its near plane replaced
// by the clip plane. See [Matrix4.SetObliqueClipping].
func ObliqueClipping[T Float](proj Matrix4[T], clip Plane[T]) Matrix4[T] {
	proj.SetObliqueClipping(clip)
	return proj
}
