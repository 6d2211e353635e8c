// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"fmt"
	"os"

	"github.com/ljporljp/KlayGE/vertexbuf"
)

// Document is the file form of a mesh. All streams are packed; the
// number of vertices is given by Positions, three values per vertex.
// A document without a type is a triangle list.
//
// In TOML:
//
//	name = "quad"
//	type = "TriangleList"
//	positions = [0.0, 0.0, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0, 0.0]
//	indices = [0, 1, 2, 0, 2, 3]
//
//	[[texcoords]]
//	dim = 2
//	data = [0.0, 0.0, 1.0, 0.0, 1.0, 1.0, 0.0, 1.0]
type Document struct {
	Name      string               `toml:"name,omitempty" yaml:"name,omitempty"`
	Type      vertexbuf.BufferType `toml:"type" yaml:"type"`
	Positions []float32            `toml:"positions" yaml:"positions,flow"`
	Normals   []float32            `toml:"normals,omitempty" yaml:"normals,omitempty,flow"`
	Tangents  []float32            `toml:"tangents,omitempty" yaml:"tangents,omitempty,flow"`
	Diffuses  []uint32             `toml:"diffuses,omitempty" yaml:"diffuses,omitempty,flow"`
	Speculars []uint32             `toml:"speculars,omitempty" yaml:"speculars,omitempty,flow"`
	TexCoords []TexCoords          `toml:"texcoords,omitempty" yaml:"texcoords,omitempty"`
	Indices   []uint16             `toml:"indices,omitempty" yaml:"indices,omitempty,flow"`
}

// TexCoords is one texture coordinate set of a [Document].
type TexCoords struct {
	Dim  int       `toml:"dim,omitempty" yaml:"dim,omitempty"`
	Data []float32 `toml:"data" yaml:"data,flow"`
}

// VertexBuffer returns the validated vertex buffer of the document.
// The buffer streams alias the document slices.
func (d *Document) VertexBuffer() (*vertexbuf.VertexBuffer, error) {
	if len(d.Positions)%3 != 0 {
		return nil, fmt.Errorf("%w: %d position values are not xyz triples", vertexbuf.ErrStreamLength, len(d.Positions))
	}
	vb := vertexbuf.New(d.Type, d.Positions)
	if len(d.Normals) > 0 {
		vb.Normals = vertexbuf.Stream{Data: d.Normals}
		vb.Options.SetFlag(true, vertexbuf.Normals)
	}
	if len(d.Tangents) > 0 {
		vb.Tangents = vertexbuf.Stream{Data: d.Tangents}
	}
	if len(d.Diffuses) > 0 {
		vb.Diffuses = vertexbuf.ColorStream{Data: d.Diffuses}
		vb.Options.SetFlag(true, vertexbuf.Diffuses)
	}
	if len(d.Speculars) > 0 {
		vb.Speculars = vertexbuf.ColorStream{Data: d.Speculars}
		vb.Options.SetFlag(true, vertexbuf.Speculars)
	}
	for _, tc := range d.TexCoords {
		vb.AddTexCoords(vertexbuf.Stream{Data: tc.Data}, tc.Dim)
	}
	if len(d.Indices) > 0 {
		vb.SetIndices(d.Indices)
	}
	if err := vb.Validate(); err != nil {
		return nil, err
	}
	return vb, nil
}

// NewDocument returns the document of the mesh, with every stream
// copied out packed, including derived normals and tangents.
func NewDocument(m *Mesh) *Document {
	vb := m.VertexBuffer
	n := vb.NumVertices
	d := &Document{Name: m.Name, Type: vb.Type}
	d.Positions = make([]float32, 0, 3*n)
	for p := range vb.Points() {
		d.Positions = append(d.Positions, p.X, p.Y, p.Z)
	}
	if vb.Options.Has(vertexbuf.Normals) {
		d.Normals = make([]float32, 3*n)
		for i := range n {
			vb.Normal(i).ToSlice(d.Normals, 3*i)
		}
	}
	if len(vb.Tangents.Data) > 0 {
		d.Tangents = make([]float32, 4*n)
		for i := range n {
			vb.Tangent(i).ToSlice(d.Tangents, 4*i)
		}
	}
	if vb.Options.Has(vertexbuf.Diffuses) {
		d.Diffuses = make([]uint32, n)
		for i := range n {
			d.Diffuses[i] = vb.Diffuses.At(i)
		}
	}
	if vb.Options.Has(vertexbuf.Speculars) {
		d.Speculars = make([]uint32, n)
		for i := range n {
			d.Speculars[i] = vb.Speculars.At(i)
		}
	}
	if vb.Options.Has(vertexbuf.TextureCoords) {
		for _, tc := range vb.TexCoords {
			dim := tc.Dim
			if dim == 0 {
				dim = 2
			}
			data := make([]float32, 0, dim*n)
			for i := range n {
				data = append(data, tc.At(i, dim)...)
			}
			d.TexCoords = append(d.TexCoords, TexCoords{Dim: tc.Dim, Data: data})
		}
	}
	if vb.UseIndices {
		d.Indices = append([]uint16(nil), vb.Indices...)
	}
	return d
}

// Save writes the document to path, in the format given by its extension.
func (d *Document) Save(path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	b, err := f.Marshal(d)
	if err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return os.WriteFile(path, b, 0666)
}
