// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vertexbuf

import "fmt"

// Stream is a strided view of per vertex float32 data. Stride is the
// number of elements from the start of one vertex to the next; 0 means
// the components are packed. Interleaved layouts share one backing
// array, with each stream starting at its own offset:
//
//	buf := []float32{x, y, z, u, v, x, y, z, u, v}
//	pos := Stream{Data: buf, Stride: 5}
//	uv := Stream{Data: buf[3:], Stride: 5}
type Stream struct {
	Data   []float32
	Stride int
}

// Packed returns a packed stream of n vertices with dim components each.
func Packed(n, dim int) Stream {
	return Stream{Data: make([]float32, n*dim)}
}

func (s Stream) step(dim int) int {
	if s.Stride == 0 {
		return dim
	}
	return s.Stride
}

// At returns the dim components of vertex i, aliasing the stream data.
func (s Stream) At(i, dim int) []float32 {
	o := i * s.step(dim)
	return s.Data[o : o+dim : o+dim]
}

// need returns the number of elements n vertices of dim components use.
func (s Stream) need(n, dim int) int {
	if n == 0 {
		return 0
	}
	return (n-1)*s.step(dim) + dim
}

func (s Stream) check(name string, n, dim int) error {
	if n > 0 && len(s.Data) == 0 {
		return fmt.Errorf("%w: %s", ErrMissingStream, name)
	}
	if s.Stride != 0 && s.Stride < dim {
		return fmt.Errorf("%w: %s stride %d is less than %d components", ErrStreamLength, name, s.Stride, dim)
	}
	if need := s.need(n, dim); len(s.Data) < need {
		return fmt.Errorf("%w: %s has %d values, %d vertices need %d", ErrStreamLength, name, len(s.Data), n, need)
	}
	return nil
}

// ColorStream is a strided view of per vertex colors packed as
// 0xAARRGGBB. Stride 0 means packed.
type ColorStream struct {
	Data   []uint32
	Stride int
}

// At returns the color of vertex i.
func (s ColorStream) At(i int) uint32 {
	if s.Stride == 0 {
		return s.Data[i]
	}
	return s.Data[i*s.Stride]
}

func (s ColorStream) check(name string, n int) error {
	if n > 0 && len(s.Data) == 0 {
		return fmt.Errorf("%w: %s", ErrMissingStream, name)
	}
	need := n
	if s.Stride > 1 && n > 0 {
		need = (n-1)*s.Stride + 1
	}
	if len(s.Data) < need {
		return fmt.Errorf("%w: %s has %d values, %d vertices need %d", ErrStreamLength, name, len(s.Data), n, need)
	}
	return nil
}

// TexCoordSet is one set of texture coordinates with Dim components
// (1 to 4) per vertex. A zero Dim means 2.
type TexCoordSet struct {
	Stream
	Dim int
}

func (t TexCoordSet) dim() int {
	if t.Dim == 0 {
		return 2
	}
	return t.Dim
}

// BlendData is the blending information of one vertex.
type BlendData struct {
	WeightCount uint32
	WeightIndex uint32
	BlendWeight float32
}
