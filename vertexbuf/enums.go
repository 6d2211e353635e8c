// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vertexbuf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ljporljp/KlayGE/bitflag"
)

// BufferType is the primitive topology of a [VertexBuffer].
type BufferType int32 //enums:enum

const (
	PointList BufferType = iota
	LineList
	LineStrip
	TriangleList
	TriangleStrip
	TriangleFan

	bufferTypeN
)

var _BufferTypeNames = [...]string{"PointList", "LineList", "LineStrip", "TriangleList", "TriangleStrip", "TriangleFan"}

// String returns the string representation of this BufferType value.
func (i BufferType) String() string {
	if i >= 0 && i < bufferTypeN {
		return _BufferTypeNames[i]
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the BufferType value from its string representation,
// ignoring case, and returns an error if the string is invalid.
func (i *BufferType) SetString(s string) error {
	for v, name := range _BufferTypeNames {
		if strings.EqualFold(name, s) {
			*i = BufferType(v)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type BufferType", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i BufferType) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *BufferType) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// IsTriangles returns whether the topology describes triangles.
func (i BufferType) IsTriangles() bool {
	return i == TriangleList || i == TriangleStrip || i == TriangleFan
}

// validCount returns whether n vertices (or indices) form whole primitives.
func (i BufferType) validCount(n int) bool {
	switch i {
	case LineList:
		return n%2 == 0
	case LineStrip:
		return n == 0 || n >= 2
	case TriangleList:
		return n%3 == 0
	case TriangleStrip, TriangleFan:
		return n == 0 || n >= 3
	}
	return true
}

// primitives returns the number of primitives formed by n vertices.
func (i BufferType) primitives(n int) int {
	switch i {
	case LineList:
		return n / 2
	case LineStrip:
		return max(n-1, 0)
	case TriangleList:
		return n / 3
	case TriangleStrip, TriangleFan:
		return max(n-2, 0)
	}
	return n
}

// VertexOption is the bit position of an optional vertex component.
type VertexOption int32 //enums:bitflag

const (
	// Normals is set when vertex normals are included (for lighting).
	Normals VertexOption = iota

	// Diffuses is set when diffuse vertex colors are included.
	Diffuses

	// Speculars is set when specular vertex colors are included.
	Speculars

	// TextureCoords is set when at least one texture coordinate set is included.
	TextureCoords

	// BlendWeights is set when vertex blend weights are included.
	BlendWeights

	// BlendIndices is set when vertex blend indices are included.
	BlendIndices

	vertexOptionN
)

var _VertexOptionNames = [...]string{"Normals", "Diffuses", "Speculars", "TextureCoords", "BlendWeights", "BlendIndices"}

func (i VertexOption) String() string {
	if i >= 0 && i < vertexOptionN {
		return _VertexOptionNames[i]
	}
	return strconv.FormatInt(int64(i), 10)
}

// VertexOptions is the set of optional components present in a
// [VertexBuffer], one bit per [VertexOption].
type VertexOptions int64

func ints(flags []VertexOption) []int {
	is := make([]int, len(flags))
	for i, f := range flags {
		is[i] = int(f)
	}
	return is
}

// Has returns whether the given option is set.
func (o VertexOptions) Has(f VertexOption) bool {
	return bitflag.Has(o, int(f))
}

// HasAll returns whether all of the given options are set.
func (o VertexOptions) HasAll(f ...VertexOption) bool {
	return bitflag.HasAll(o, ints(f)...)
}

// HasAny returns whether any of the given options is set.
func (o VertexOptions) HasAny(f ...VertexOption) bool {
	return bitflag.HasAny(o, ints(f)...)
}

// SetFlag sets or clears the given options.
func (o *VertexOptions) SetFlag(on bool, f ...VertexOption) {
	bitflag.SetState(o, on, ints(f)...)
}

// Len returns the number of options that are set.
func (o VertexOptions) Len() int {
	return bitflag.Count(o)
}

// String returns the set options joined by "|".
func (o VertexOptions) String() string {
	var names []string
	for f := range vertexOptionN {
		if o.Has(f) {
			names = append(names, f.String())
		}
	}
	return strings.Join(names, "|")
}

// SetString sets the options from names separated by "|" or ",",
// ignoring case and surrounding space. An empty string clears all options.
func (o *VertexOptions) SetString(s string) error {
	*o = 0
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		found := false
		for v, name := range _VertexOptionNames {
			if strings.EqualFold(name, part) {
				o.SetFlag(true, VertexOption(v))
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%q is not a valid value for type VertexOptions", part)
		}
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (o VertexOptions) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (o *VertexOptions) UnmarshalText(text []byte) error { return o.SetString(string(text)) }
