// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

import "golang.org/x/exp/constraints"

// ComputeNormal writes a normal for every vertex of the indexed triangle
// list into normals, which must have len(positions) elements. Each
// triangle adds its un-normalized face normal (v1 - v0) x (v2 - v0) to
// its three vertices, so larger triangles weigh more, and the sums are
// then normalized. Vertices used by no triangle get a zero normal.
func ComputeNormal[T Float, I constraints.Integer](normals []Vector3[T], indices []I, positions []Vector3[T]) {
	n := len(positions)
	for i := range normals[:n] {
		normals[i] = Vector3[T]{}
	}

	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := int(indices[i]), int(indices[i+1]), int(indices[i+2])
		fn := FaceNormal(positions[i0], positions[i1], positions[i2])
		normals[i0].SetAdd(fn)
		normals[i1].SetAdd(fn)
		normals[i2].SetAdd(fn)
	}

	for i := range normals[:n] {
		if ls := normals[i].LengthSquared(); ls > 0 {
			normals[i] = normals[i].MulScalar(RecipSqrt(ls))
		}
	}
}

// ComputeTangent writes a tangent frame for every vertex of the indexed
// triangle list. tangents and binormals must have len(positions)
// elements; texcoords and normals are per vertex inputs.
//
// Each triangle contributes the tangent and binormal from its
// texture coordinate Jacobian, or (1, 0, 0) and (0, 1, 0) when the
// mapping is degenerate. Per vertex the summed tangent is made
// orthogonal to the normal and normalized; its W is the handedness, -1
// when the summed binormal points against cross(normal, tangent). The
// binormal is rewritten as cross(normal, tangent), so W * binormal is
// the texture space V direction. A vertex with a zero normal, such as
// one no triangle references, gets the frame (1, 0, 0, 1), (0, 1, 0).
func ComputeTangent[T Float, I constraints.Integer](tangents []Vector4[T], binormals []Vector3[T],
	indices []I, positions []Vector3[T], texcoords []Vector2[T], normals []Vector3[T]) {

	n := len(positions)
	acc := make([]Vector3[T], n)
	for i := range binormals[:n] {
		binormals[i] = Vector3[T]{}
	}

	eps := Epsilon[T]()
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := int(indices[i]), int(indices[i+1]), int(indices[i+2])
		x1 := positions[i1].Sub(positions[i0])
		x2 := positions[i2].Sub(positions[i0])
		d1 := texcoords[i1].Sub(texcoords[i0])
		d2 := texcoords[i2].Sub(texcoords[i0])

		var tangent, binormal Vector3[T]
		den := d1.X*d2.Y - d2.X*d1.Y
		if Abs(den) < eps {
			tangent = Vector3[T]{1, 0, 0}
			binormal = Vector3[T]{0, 1, 0}
		} else {
			r := 1 / den
			tangent = x1.MulScalar(d2.Y).Sub(x2.MulScalar(d1.Y)).MulScalar(r)
			binormal = x2.MulScalar(d1.X).Sub(x1.MulScalar(d2.X)).MulScalar(r)
		}

		for _, vi := range [3]int{i0, i1, i2} {
			acc[vi].SetAdd(tangent)
			binormals[vi].SetAdd(binormal)
		}
	}

	for i := range n {
		nv := normals[i]
		if nv.LengthSquared() <= eps {
			tangents[i] = Vector4[T]{1, 0, 0, 1}
			binormals[i] = Vector3[T]{0, 1, 0}
			continue
		}
		t := acc[i].Sub(nv.MulScalar(nv.Dot(acc[i])))
		if ls := t.LengthSquared(); ls > eps {
			t = t.MulScalar(RecipSqrt(ls))
		} else {
			t = orthogonal(nv)
		}

		b := nv.Cross(t)
		var w T = 1
		if b.Dot(binormals[i]) < 0 {
			w = -1
		}
		tangents[i] = Vector4FromVector3(t, w)
		binormals[i] = b
	}
}
