// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vertexbuf

import (
	"fmt"

	"github.com/ljporljp/KlayGE/math3d"
)

// ComputeNormals computes area weighted vertex normals from the
// triangles of the buffer and writes them into the normal stream,
// allocating a packed one if there is none, and sets the [Normals]
// option. Vertices used by no triangle get a zero normal.
func (vb *VertexBuffer) ComputeNormals() error {
	if err := vb.Validate(); err != nil {
		return err
	}
	n := vb.NumVertices
	if len(vb.Normals.Data) == 0 {
		vb.Normals = Packed(n, 3)
	} else if err := vb.Normals.check("normals", n, 3); err != nil {
		return err
	}
	vb.Options.SetFlag(true, Normals)

	normals := make([]math3d.Vector3f, n)
	math3d.ComputeNormal(normals, vb.TriangleIndices(), vb.positions())
	for i, nv := range normals {
		vb.SetNormal(i, nv)
	}
	return nil
}

// ComputeTangents computes the tangent frames of the vertices from the
// given texture coordinate set and the normals, and writes them into
// the tangent and binormal streams, allocating packed ones if needed.
// Tangent W is the handedness; the binormal is cross(normal, tangent).
func (vb *VertexBuffer) ComputeTangents(set int) error {
	if err := vb.Validate(); err != nil {
		return err
	}
	if !vb.Options.Has(Normals) {
		return fmt.Errorf("%w: tangents need normals", ErrMissingStream)
	}
	if !vb.Options.Has(TextureCoords) || set < 0 || set >= len(vb.TexCoords) {
		return fmt.Errorf("%w: texture coordinates %d", ErrMissingStream, set)
	}
	if d := vb.TexCoords[set].dim(); d < 2 {
		return fmt.Errorf("%w: tangents need 2 dimensions, set %d has %d", ErrTexCoords, set, d)
	}

	n := vb.NumVertices
	if len(vb.Tangents.Data) == 0 {
		vb.Tangents = Packed(n, 4)
	}
	if len(vb.Binormals.Data) == 0 {
		vb.Binormals = Packed(n, 3)
	}

	texcoords := make([]math3d.Vector2f, n)
	normals := make([]math3d.Vector3f, n)
	for i := range n {
		texcoords[i] = vb.TexCoord(set, i)
		normals[i] = vb.Normal(i)
	}
	tangents := make([]math3d.Vector4f, n)
	binormals := make([]math3d.Vector3f, n)
	math3d.ComputeTangent(tangents, binormals, vb.TriangleIndices(), vb.positions(), texcoords, normals)
	for i := range n {
		vb.SetTangent(i, tangents[i])
		vb.SetBinormal(i, binormals[i])
	}
	return nil
}

// Bounds returns the axis-aligned box, bounding sphere and principal
// axis oriented box of the vertex positions.
func (vb *VertexBuffer) Bounds() (math3d.AABBoxf, math3d.Spheref, math3d.OBBoxf) {
	points := vb.positions()
	return math3d.ComputeAABBoxSlice(points), math3d.ComputeSphereSlice(points), math3d.ComputeOBBoxSlice(points)
}
