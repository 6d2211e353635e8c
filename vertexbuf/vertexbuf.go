// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vertexbuf describes the layout of vertex data handed to a
// renderer: strided float streams for positions, normals, tangents and
// texture coordinates, packed colors, blend data and optional 16 bit
// indices. It owns no GPU resources. It reads the streams into
// [math3d] values to derive normals, tangent frames and bounds, and
// writes the derived attributes back.
package vertexbuf

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/ljporljp/KlayGE/math3d"
)

// MaxTexCoordSets is the largest number of texture coordinate sets.
const MaxTexCoordSets = 8

var (
	// ErrIndexCount is returned when the vertex or index count does not
	// form whole primitives of the buffer type.
	ErrIndexCount = errors.New("vertexbuf: count does not form whole primitives")

	// ErrIndexRange is returned when an index refers past the last vertex.
	ErrIndexRange = errors.New("vertexbuf: index out of range")

	// ErrStreamLength is returned when a stream is too short for the
	// number of vertices, or its stride is smaller than a vertex.
	ErrStreamLength = errors.New("vertexbuf: stream too short")

	// ErrMissingStream is returned when an option or operation needs a
	// stream that has no data.
	ErrMissingStream = errors.New("vertexbuf: missing stream")

	// ErrTexCoords is returned for an invalid texture coordinate layout.
	ErrTexCoords = errors.New("vertexbuf: invalid texture coordinates")
)

// VertexBuffer is a set of vertex streams and the topology that
// connects them. The streams present are given by Options; Positions
// is always required. Tangents has 4 components per vertex, W being
// the handedness of the frame.
type VertexBuffer struct {
	Type    BufferType
	Options VertexOptions

	// NumVertices applies to all the streams.
	NumVertices int

	Positions Stream
	Normals   Stream
	Tangents  Stream
	Binormals Stream

	Diffuses  ColorStream
	Speculars ColorStream

	// TexCoords holds up to [MaxTexCoordSets] sets.
	TexCoords []TexCoordSet

	// BlendWeights has one entry per vertex, used by both the
	// [BlendWeights] and [BlendIndices] options.
	BlendWeights []BlendData

	// UseIndices makes Indices reference the vertices of each primitive
	// rather than taking the vertices in order.
	UseIndices bool
	Indices    []uint16
}

// New returns a buffer of the given topology over packed xyz positions.
func New(typ BufferType, positions []float32) *VertexBuffer {
	return &VertexBuffer{
		Type:        typ,
		NumVertices: len(positions) / 3,
		Positions:   Stream{Data: positions},
	}
}

// SetIndices sets the index list and turns on UseIndices.
func (vb *VertexBuffer) SetIndices(indices []uint16) *VertexBuffer {
	vb.Indices = indices
	vb.UseIndices = true
	return vb
}

// AddTexCoords adds a texture coordinate set of dim components and
// sets the [TextureCoords] option.
func (vb *VertexBuffer) AddTexCoords(s Stream, dim int) *VertexBuffer {
	vb.TexCoords = append(vb.TexCoords, TexCoordSet{Stream: s, Dim: dim})
	vb.Options.SetFlag(true, TextureCoords)
	return vb
}

// Validate checks that every stream named by Options holds
// NumVertices vertices, as do the tangent and binormal streams when
// they have data, and that the indices or vertices form whole
// primitives. The error wraps one of the package sentinel errors.
func (vb *VertexBuffer) Validate() error {
	n := vb.NumVertices
	if n < 0 {
		return fmt.Errorf("%w: %d vertices", ErrStreamLength, n)
	}
	if err := vb.Positions.check("positions", n, 3); err != nil {
		return err
	}
	if vb.Options.Has(Normals) {
		if err := vb.Normals.check("normals", n, 3); err != nil {
			return err
		}
	}
	if len(vb.Tangents.Data) > 0 {
		if err := vb.Tangents.check("tangents", n, 4); err != nil {
			return err
		}
	}
	if len(vb.Binormals.Data) > 0 {
		if err := vb.Binormals.check("binormals", n, 3); err != nil {
			return err
		}
	}
	if vb.Options.Has(Diffuses) {
		if err := vb.Diffuses.check("diffuses", n); err != nil {
			return err
		}
	}
	if vb.Options.Has(Speculars) {
		if err := vb.Speculars.check("speculars", n); err != nil {
			return err
		}
	}
	if vb.Options.Has(TextureCoords) {
		if err := vb.validateTexCoords(); err != nil {
			return err
		}
	}
	if vb.Options.HasAny(BlendWeights, BlendIndices) {
		if n > 0 && len(vb.BlendWeights) == 0 {
			return fmt.Errorf("%w: blend weights", ErrMissingStream)
		}
		if len(vb.BlendWeights) < n {
			return fmt.Errorf("%w: blend weights has %d values, need %d", ErrStreamLength, len(vb.BlendWeights), n)
		}
	}
	return vb.validateIndices()
}

func (vb *VertexBuffer) validateTexCoords() error {
	sets := len(vb.TexCoords)
	if sets == 0 {
		return fmt.Errorf("%w: texture coordinates", ErrMissingStream)
	}
	if sets > MaxTexCoordSets {
		return fmt.Errorf("%w: %d sets, at most %d", ErrTexCoords, sets, MaxTexCoordSets)
	}
	for i, tc := range vb.TexCoords {
		if d := tc.dim(); d < 1 || d > 4 {
			return fmt.Errorf("%w: set %d has %d dimensions", ErrTexCoords, i, d)
		}
		if err := tc.check(fmt.Sprintf("texture coordinates %d", i), vb.NumVertices, tc.dim()); err != nil {
			return err
		}
	}
	return nil
}

func (vb *VertexBuffer) validateIndices() error {
	count := vb.NumVertices
	if vb.UseIndices {
		count = len(vb.Indices)
		for i, idx := range vb.Indices {
			if int(idx) >= vb.NumVertices {
				return fmt.Errorf("%w: index %d is %d with %d vertices", ErrIndexRange, i, idx, vb.NumVertices)
			}
		}
	}
	if !vb.Type.validCount(count) {
		return fmt.Errorf("%w: %d for %v", ErrIndexCount, count, vb.Type)
	}
	return nil
}

// count returns the number of vertex references of the primitives.
func (vb *VertexBuffer) count() int {
	if vb.UseIndices {
		return len(vb.Indices)
	}
	return vb.NumVertices
}

// index returns the vertex of the i-th reference.
func (vb *VertexBuffer) index(i int) int {
	if vb.UseIndices {
		return int(vb.Indices[i])
	}
	return i
}

// NumPrimitives returns the number of points, lines or triangles.
func (vb *VertexBuffer) NumPrimitives() int {
	return vb.Type.primitives(vb.count())
}

// Position returns the position of vertex i.
func (vb *VertexBuffer) Position(i int) math3d.Vector3f {
	d := vb.Positions.At(i, 3)
	return math3d.Vec3(d[0], d[1], d[2])
}

// Normal returns the normal of vertex i.
func (vb *VertexBuffer) Normal(i int) math3d.Vector3f {
	d := vb.Normals.At(i, 3)
	return math3d.Vec3(d[0], d[1], d[2])
}

// SetNormal sets the normal of vertex i.
func (vb *VertexBuffer) SetNormal(i int, n math3d.Vector3f) {
	n.ToSlice(vb.Normals.At(i, 3), 0)
}

// Tangent returns the tangent of vertex i, W being its handedness.
func (vb *VertexBuffer) Tangent(i int) math3d.Vector4f {
	d := vb.Tangents.At(i, 4)
	return math3d.Vec4(d[0], d[1], d[2], d[3])
}

// SetTangent sets the tangent of vertex i.
func (vb *VertexBuffer) SetTangent(i int, t math3d.Vector4f) {
	t.ToSlice(vb.Tangents.At(i, 4), 0)
}

// Binormal returns the binormal of vertex i.
func (vb *VertexBuffer) Binormal(i int) math3d.Vector3f {
	d := vb.Binormals.At(i, 3)
	return math3d.Vec3(d[0], d[1], d[2])
}

// SetBinormal sets the binormal of vertex i.
func (vb *VertexBuffer) SetBinormal(i int, b math3d.Vector3f) {
	b.ToSlice(vb.Binormals.At(i, 3), 0)
}

// TexCoord returns the first two components of vertex i in the given
// texture coordinate set. One dimensional sets give V = 0.
func (vb *VertexBuffer) TexCoord(set, i int) math3d.Vector2f {
	tc := vb.TexCoords[set]
	d := tc.At(i, tc.dim())
	if len(d) == 1 {
		return math3d.Vec2(d[0], 0)
	}
	return math3d.Vec2(d[0], d[1])
}

// Diffuse returns the diffuse color of vertex i.
func (vb *VertexBuffer) Diffuse(i int) math3d.Colorf {
	return math3d.ColorFromARGB[float32](vb.Diffuses.At(i))
}

// Specular returns the specular color of vertex i.
func (vb *VertexBuffer) Specular(i int) math3d.Colorf {
	return math3d.ColorFromARGB[float32](vb.Speculars.At(i))
}

// Points returns the vertex positions in order.
func (vb *VertexBuffer) Points() iter.Seq[math3d.Vector3f] {
	return func(yield func(math3d.Vector3f) bool) {
		for i := range vb.NumVertices {
			if !yield(vb.Position(i)) {
				return
			}
		}
	}
}

// Triangles returns the vertex indices of each triangle, expanding
// strips and fans to lists. Odd triangles of a strip are emitted with
// their first two vertices swapped so all triangles keep the winding
// of the first. Topologies other than triangles yield nothing.
func (vb *VertexBuffer) Triangles() iter.Seq[[3]int] {
	return func(yield func([3]int) bool) {
		n := vb.count()
		switch vb.Type {
		case TriangleList:
			for i := 0; i+2 < n; i += 3 {
				if !yield([3]int{vb.index(i), vb.index(i + 1), vb.index(i + 2)}) {
					return
				}
			}
		case TriangleStrip:
			for i := 0; i+2 < n; i++ {
				tri := [3]int{vb.index(i), vb.index(i + 1), vb.index(i + 2)}
				if i%2 == 1 {
					tri[0], tri[1] = tri[1], tri[0]
				}
				if !yield(tri) {
					return
				}
			}
		case TriangleFan:
			for i := 1; i+1 < n; i++ {
				if !yield([3]int{vb.index(0), vb.index(i), vb.index(i + 1)}) {
					return
				}
			}
		}
	}
}

// TriangleIndices returns [VertexBuffer.Triangles] flattened to an
// indexed triangle list.
func (vb *VertexBuffer) TriangleIndices() []uint32 {
	if !vb.Type.IsTriangles() {
		return nil
	}
	indices := make([]uint32, 0, 3*vb.NumPrimitives())
	for tri := range vb.Triangles() {
		indices = append(indices, uint32(tri[0]), uint32(tri[1]), uint32(tri[2]))
	}
	return indices
}

func (vb *VertexBuffer) positions() []math3d.Vector3f {
	return slices.Collect(vb.Points())
}
