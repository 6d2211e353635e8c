// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vertexbuf

import (
	"slices"
	"testing"

	"github.com/ljporljp/KlayGE/base/tolassert"
	"github.com/ljporljp/KlayGE/math3d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quad returns an indexed unit quad in the XY plane with interleaved
// positions and texture coordinates.
func quad() *VertexBuffer {
	buf := []float32{
		0, 0, 0, 0, 0,
		1, 0, 0, 1, 0,
		1, 1, 0, 1, 1,
		0, 1, 0, 0, 1,
	}
	vb := &VertexBuffer{
		Type:        TriangleList,
		NumVertices: 4,
		Positions:   Stream{Data: buf, Stride: 5},
	}
	vb.AddTexCoords(Stream{Data: buf[3:], Stride: 5}, 2)
	vb.SetIndices([]uint16{0, 1, 2, 0, 2, 3})
	return vb
}

func TestAccessors(t *testing.T) {
	vb := quad()
	require.NoError(t, vb.Validate())
	assert.Equal(t, math3d.Vec3[float32](1, 1, 0), vb.Position(2))
	assert.Equal(t, math3d.Vec2[float32](0, 1), vb.TexCoord(0, 3))
	assert.Equal(t, 2, vb.NumPrimitives())
	assert.Len(t, slices.Collect(vb.Points()), 4)

	vb.Diffuses = ColorStream{Data: []uint32{0xff0000ff, 0, 0xffff0000, 0, 0, 0, 0x80000000}, Stride: 2}
	c := vb.Diffuse(1)
	assert.True(t, c.IsEqualTol(math3d.NewColor[float32](1, 0, 0, 1), 1e-6), "%v", c)
	assert.Equal(t, uint32(0xff0000ff), vb.Diffuses.At(0))
}

func TestComputeNormals(t *testing.T) {
	vb := quad()
	require.NoError(t, vb.ComputeNormals())
	assert.True(t, vb.Options.Has(Normals))
	assert.Len(t, vb.Normals.Data, 12)
	for i := range 4 {
		assert.Equal(t, math3d.Vec3[float32](0, 0, 1), vb.Normal(i))
	}

	// strided output into an existing stream
	out := make([]float32, 4*6)
	vb.Normals = Stream{Data: out[3:], Stride: 6}
	require.NoError(t, vb.ComputeNormals())
	assert.Equal(t, float32(1), out[3+2])
	assert.Equal(t, float32(0), out[0])
	assert.Equal(t, float32(1), out[3*6+3+2])

	vb.Normals = Stream{Data: make([]float32, 5)}
	assert.ErrorIs(t, vb.ComputeNormals(), ErrStreamLength)
}

func TestComputeTangents(t *testing.T) {
	vb := quad()
	assert.ErrorIs(t, vb.ComputeTangents(0), ErrMissingStream)
	require.NoError(t, vb.ComputeNormals())
	assert.ErrorIs(t, vb.ComputeTangents(1), ErrMissingStream)

	require.NoError(t, vb.ComputeTangents(0))
	for i := range 4 {
		tan := vb.Tangent(i)
		tolassert.EqualTol(t, 1, tan.X, 1e-6)
		tolassert.EqualTol(t, 0, tan.Y, 1e-6)
		assert.Equal(t, float32(1), tan.W)
		b := vb.Binormal(i)
		tolassert.EqualTol(t, 1, b.Y, 1e-6)
	}

	// mirrored V flips the handedness
	flipped := []float32{0, 1, 1, 1, 1, 0, 0, 0}
	vb.TexCoords = nil
	vb.AddTexCoords(Stream{Data: flipped}, 2)
	require.NoError(t, vb.ComputeTangents(0))
	assert.Equal(t, float32(-1), vb.Tangent(0).W)

	vb.AddTexCoords(Stream{Data: make([]float32, 4)}, 1)
	assert.ErrorIs(t, vb.ComputeTangents(1), ErrTexCoords)
}

func TestComputeTangentsUnreferenced(t *testing.T) {
	vb := quad().SetIndices([]uint16{0, 1, 2})
	require.NoError(t, vb.ComputeNormals())
	require.NoError(t, vb.ComputeTangents(0))
	assert.Equal(t, math3d.Vector3f{}, vb.Normal(3))
	assert.Equal(t, math3d.Vector4f{X: 1, W: 1}, vb.Tangent(3))
	assert.Equal(t, math3d.Vec3[float32](0, 1, 0), vb.Binormal(3))
	for i := range 3 {
		tolassert.EqualTol(t, 1, vb.Tangent(i).X, 1e-6)
	}
}

func TestTriangles(t *testing.T) {
	strip := New(TriangleStrip, make([]float32, 4*3))
	assert.Equal(t, [][3]int{{0, 1, 2}, {2, 1, 3}}, slices.Collect(strip.Triangles()))
	assert.Equal(t, []uint32{0, 1, 2, 2, 1, 3}, strip.TriangleIndices())

	fan := New(TriangleFan, make([]float32, 5*3))
	assert.Equal(t, [][3]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 4}}, slices.Collect(fan.Triangles()))
	assert.Equal(t, 3, fan.NumPrimitives())

	indexed := New(TriangleFan, make([]float32, 5*3)).SetIndices([]uint16{4, 3, 2, 1})
	assert.Equal(t, [][3]int{{4, 3, 2}, {4, 2, 1}}, slices.Collect(indexed.Triangles()))

	lines := New(LineList, make([]float32, 4*3))
	assert.Empty(t, slices.Collect(lines.Triangles()))
	assert.Nil(t, lines.TriangleIndices())
	assert.Equal(t, 2, lines.NumPrimitives())

	// stopping early
	n := 0
	for range fan.Triangles() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestValidate(t *testing.T) {
	vb := New(TriangleList, make([]float32, 4*3))
	assert.ErrorIs(t, vb.Validate(), ErrIndexCount)
	vb.SetIndices([]uint16{0, 1, 2, 1, 2, 4})
	assert.ErrorIs(t, vb.Validate(), ErrIndexRange)
	vb.Indices[5] = 3
	assert.NoError(t, vb.Validate())

	vb.Options.SetFlag(true, Normals)
	assert.ErrorIs(t, vb.Validate(), ErrMissingStream)
	vb.Normals = Stream{Data: make([]float32, 12), Stride: 2}
	assert.ErrorIs(t, vb.Validate(), ErrStreamLength)
	vb.Normals.Stride = 0
	assert.NoError(t, vb.Validate())

	vb.Options.SetFlag(true, Speculars)
	assert.ErrorIs(t, vb.Validate(), ErrMissingStream)
	vb.Speculars = ColorStream{Data: make([]uint32, 4)}
	assert.NoError(t, vb.Validate())

	vb.Options.SetFlag(true, BlendIndices)
	assert.ErrorIs(t, vb.Validate(), ErrMissingStream)
	vb.BlendWeights = make([]BlendData, 3)
	assert.ErrorIs(t, vb.Validate(), ErrStreamLength)
	vb.BlendWeights = make([]BlendData, 4)
	assert.NoError(t, vb.Validate())

	vb.Options.SetFlag(true, TextureCoords)
	assert.ErrorIs(t, vb.Validate(), ErrMissingStream)
	for range MaxTexCoordSets + 1 {
		vb.AddTexCoords(Packed(4, 2), 2)
	}
	assert.ErrorIs(t, vb.Validate(), ErrTexCoords)
	vb.TexCoords = vb.TexCoords[:2]
	vb.TexCoords[1].Dim = 5
	assert.ErrorIs(t, vb.Validate(), ErrTexCoords)
	vb.TexCoords[1].Dim = 3
	assert.ErrorIs(t, vb.Validate(), ErrStreamLength)
	vb.TexCoords[1] = TexCoordSet{Stream: Packed(4, 3), Dim: 3}
	assert.NoError(t, vb.Validate())

	short := New(TriangleList, make([]float32, 8))
	assert.ErrorIs(t, short.Validate(), ErrIndexCount)
	short.NumVertices = 3
	assert.ErrorIs(t, short.Validate(), ErrStreamLength)
}

func TestBounds(t *testing.T) {
	vb := New(PointList, []float32{-1, 0, 2, 3, 4, -2, 1, 3, 1, 0, 1, -1})
	aabb, sphere, obb := vb.Bounds()
	assert.Equal(t, math3d.NewAABBox(math3d.Vec3[float32](-1, 0, -2), math3d.Vec3[float32](3, 4, 2)), aabb)
	assert.Equal(t, math3d.Vec3[float32](1, 2, 0), sphere.Center)
	tolassert.EqualTol(t, 12, sphere.Radius*sphere.Radius, 1e-4)

	grown := obb
	grown.Extent = obb.Extent.AddScalar(1e-3)
	for p := range vb.Points() {
		assert.LessOrEqual(t, p.DistanceToSquared(sphere.Center), sphere.Radius*sphere.Radius*1.0001)
		assert.True(t, grown.ContainsPoint(p), "%v", p)
	}
}

func TestEnums(t *testing.T) {
	var bt BufferType
	require.NoError(t, bt.UnmarshalText([]byte("trianglestrip")))
	assert.Equal(t, TriangleStrip, bt)
	assert.Equal(t, "TriangleStrip", bt.String())
	assert.Error(t, bt.SetString("quads"))
	assert.Equal(t, "17", BufferType(17).String())
	assert.True(t, TriangleFan.IsTriangles())
	assert.False(t, LineStrip.IsTriangles())

	var o VertexOptions
	require.NoError(t, o.SetString("normals | TextureCoords,Diffuses"))
	assert.True(t, o.HasAll(Normals, TextureCoords, Diffuses))
	assert.False(t, o.Has(Speculars))
	assert.True(t, o.HasAny(Speculars, Diffuses))
	assert.False(t, o.HasAny(BlendWeights, BlendIndices))
	assert.Equal(t, 3, o.Len())
	assert.Equal(t, "Normals|Diffuses|TextureCoords", o.String())
	text, err := o.MarshalText()
	require.NoError(t, err)
	var back VertexOptions
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, o, back)
	assert.Error(t, o.SetString("Normals|Bones"))

	o = back
	o.SetFlag(false, Normals, Diffuses)
	assert.Equal(t, "TextureCoords", o.String())
}
