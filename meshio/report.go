// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/ljporljp/KlayGE/math3d"
	"github.com/ljporljp/KlayGE/vertexbuf"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Report describes a mesh and the attributes derived from it.
type Report struct {
	// RunID identifies the run that produced the report.
	RunID string `toml:"run_id" yaml:"run_id"`

	Name       string                  `toml:"name" yaml:"name"`
	Path       string                  `toml:"path,omitempty" yaml:"path,omitempty"`
	Type       vertexbuf.BufferType    `toml:"type" yaml:"type"`
	Options    vertexbuf.VertexOptions `toml:"options" yaml:"options"`
	Vertices   int                     `toml:"vertices" yaml:"vertices"`
	Primitives int                     `toml:"primitives" yaml:"primitives"`

	// Digest is the hex xxhash64 of the positions in vertex order.
	Digest string `toml:"digest" yaml:"digest"`

	Bounds *Bounds `toml:"bounds,omitempty" yaml:"bounds,omitempty"`
}

// Bounds is the file form of the bounding volumes of a mesh.
type Bounds struct {
	Min          [3]float32 `toml:"min" yaml:"min,flow"`
	Max          [3]float32 `toml:"max" yaml:"max,flow"`
	SphereCenter [3]float32 `toml:"sphere_center" yaml:"sphere_center,flow"`
	SphereRadius float32    `toml:"sphere_radius" yaml:"sphere_radius"`
	OBBCenter    [3]float32 `toml:"obb_center" yaml:"obb_center,flow"`
	OBBRotation  [4]float32 `toml:"obb_rotation" yaml:"obb_rotation,flow"`
	OBBExtent    [3]float32 `toml:"obb_extent" yaml:"obb_extent,flow"`
}

func array3(v math3d.Vector3f) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// NewBounds returns the file form of the given bounding volumes.
func NewBounds(aabb math3d.AABBoxf, sphere math3d.Spheref, obb math3d.OBBoxf) *Bounds {
	r := obb.Rotation
	return &Bounds{
		Min:          array3(aabb.Min),
		Max:          array3(aabb.Max),
		SphereCenter: array3(sphere.Center),
		SphereRadius: sphere.Radius,
		OBBCenter:    array3(obb.Center),
		OBBRotation:  [4]float32{r.X, r.Y, r.Z, r.W},
		OBBExtent:    array3(obb.Extent),
	}
}

// NewReport returns the report of the mesh for the given run, without bounds.
func NewReport(m *Mesh, run uuid.UUID) *Report {
	return &Report{
		RunID:      run.String(),
		Name:       m.Name,
		Path:       m.Path,
		Type:       m.Type,
		Options:    m.Options,
		Vertices:   m.NumVertices,
		Primitives: m.NumPrimitives(),
		Digest:     fmt.Sprintf("%016x", PositionDigest(m.VertexBuffer)),
	}
}

// PositionDigest returns the xxhash64 of the little endian positions of
// the vertices in order, so the same positions hash the same whatever
// the stream layout.
func PositionDigest(vb *vertexbuf.VertexBuffer) uint64 {
	d := xxhash.New()
	var buf [12]byte
	for p := range vb.Points() {
		binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(p.X))
		binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(p.Y))
		binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(p.Z))
		d.Write(buf[:])
	}
	return d.Sum64()
}

// WriteReports writes the reports to w in the format: one YAML
// document per report, or a TOML array of [[report]] tables.
func WriteReports(w io.Writer, f Format, reports []*Report) error {
	switch f {
	case TOML:
		enc := toml.NewEncoder(w)
		return enc.Encode(struct {
			Reports []*Report `toml:"report"`
		}{reports})
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, r := range reports {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}
