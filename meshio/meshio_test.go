// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/ljporljp/KlayGE/math3d"
	"github.com/ljporljp/KlayGE/vertexbuf"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const quadTOML = `
name = "quad"
type = "TriangleList"
positions = [0.0, 0.0, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0, 0.0]
diffuses = [0xffff0000, 0xff00ff00, 0xff0000ff, 0xffffffff]
indices = [0, 1, 2, 0, 2, 3]

[[texcoords]]
dim = 2
data = [0.0, 0.0, 1.0, 0.0, 1.0, 1.0, 0.0, 1.0]
`

const stripYAML = `
type: trianglestrip
positions: [0, 0, 0, 1, 0, 0, 0, 1, 0, 1, 1, 0]
texcoords:
  - data: [0, 0, 1, 0, 0, 1, 1, 1]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0666))
	return path
}

func TestLoadTOML(t *testing.T) {
	m, err := Load(writeFile(t, "quad.toml", quadTOML))
	require.NoError(t, err)
	assert.Equal(t, "quad", m.Name)
	assert.Equal(t, vertexbuf.TriangleList, m.Type)
	assert.Equal(t, 4, m.NumVertices)
	assert.Equal(t, 2, m.NumPrimitives())
	assert.True(t, m.UseIndices)
	assert.True(t, m.Options.HasAll(vertexbuf.Diffuses, vertexbuf.TextureCoords))
	assert.Equal(t, math3d.Vec2[float32](1, 1), m.TexCoord(0, 2))
	c := m.Diffuse(1)
	assert.True(t, c.IsEqualTol(math3d.NewColor[float32](0, 1, 0, 1), 1e-6), "%v", c)

	require.NoError(t, m.ComputeNormals())
	assert.Equal(t, math3d.Vec3[float32](0, 0, 1), m.Normal(3))
}

func TestLoadYAML(t *testing.T) {
	m, err := Load(writeFile(t, "strip.yml", stripYAML))
	require.NoError(t, err)
	assert.Equal(t, "strip", m.Name)
	assert.Equal(t, vertexbuf.TriangleStrip, m.Type)
	assert.Equal(t, 2, m.NumPrimitives())
	assert.False(t, m.UseIndices)

	require.NoError(t, m.ComputeNormals())
	require.NoError(t, m.ComputeTangents(0))
	for i := range m.NumVertices {
		assert.Equal(t, math3d.Vec3[float32](0, 0, 1), m.Normal(i))
		assert.Equal(t, float32(1), m.Tangent(i).W)
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeFile(t, "mesh.obj", quadTOML))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "odd.yaml", "positions: [0, 0, 0, 1]\n"))
	assert.ErrorIs(t, err, vertexbuf.ErrStreamLength)

	_, err = Load(writeFile(t, "list.yaml", "positions: [0, 0, 0, 1, 0, 0]\n"))
	assert.ErrorIs(t, err, vertexbuf.ErrIndexCount)

	_, err = Load(writeFile(t, "range.toml", "positions = [0.0, 0.0, 0.0]\nindices = [0, 0, 1]\n"))
	assert.ErrorIs(t, err, vertexbuf.ErrIndexRange)

	_, err = Load(writeFile(t, "unknown.yaml", "positions: []\ncolour: red\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "type.toml", "type = \"Quads\"\npositions = []\n"))
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	for s, want := range map[string]Format{"toml": TOML, ".TOML": TOML, "yaml": YAML, "yml": YAML} {
		f, err := ParseFormat(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, f, s)
	}
	_, err := ParseFormat("json")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	var f Format
	require.NoError(t, f.Set("yaml"))
	assert.Equal(t, YAML, f)
	assert.Equal(t, "yaml", f.String())
	assert.Equal(t, "format", f.Type())
	assert.Error(t, f.Set("xml"))
}

func TestPositionDigest(t *testing.T) {
	packed := vertexbuf.New(vertexbuf.PointList, []float32{1, 2, 3, 4, 5, 6})
	interleaved := &vertexbuf.VertexBuffer{
		Type:        vertexbuf.PointList,
		NumVertices: 2,
		Positions:   vertexbuf.Stream{Data: []float32{1, 2, 3, 9, 4, 5, 6}, Stride: 4},
	}
	assert.Equal(t, PositionDigest(packed), PositionDigest(interleaved))

	moved := vertexbuf.New(vertexbuf.PointList, []float32{1, 2, 3, 4, 5, 7})
	assert.NotEqual(t, PositionDigest(packed), PositionDigest(moved))
}

func TestWriteReports(t *testing.T) {
	m, err := Read(strings.NewReader(quadTOML), TOML)
	require.NoError(t, err)
	run := uuid.New()
	r := NewReport(m, run)
	r.Bounds = NewBounds(m.Bounds())
	assert.Equal(t, run.String(), r.RunID)
	assert.Len(t, r.Digest, 16)
	assert.Equal(t, [3]float32{1, 1, 0}, r.Bounds.Max)
	assert.Equal(t, [3]float32{0.5, 0.5, 0}, r.Bounds.SphereCenter)

	var b bytes.Buffer
	require.NoError(t, WriteReports(&b, TOML, []*Report{r, r}))
	var tdoc struct {
		Report []map[string]any `toml:"report"`
	}
	require.NoError(t, toml.Unmarshal(b.Bytes(), &tdoc))
	require.Len(t, tdoc.Report, 2)
	assert.Equal(t, "quad", tdoc.Report[0]["name"])
	assert.Equal(t, "TriangleList", tdoc.Report[0]["type"])
	assert.Equal(t, "Diffuses|TextureCoords", tdoc.Report[1]["options"])

	b.Reset()
	require.NoError(t, WriteReports(&b, YAML, []*Report{r, r}))
	dec := yaml.NewDecoder(&b)
	n := 0
	for {
		var doc map[string]any
		if dec.Decode(&doc) != nil {
			break
		}
		assert.Equal(t, r.Digest, doc["digest"])
		assert.Equal(t, 4, doc["vertices"])
		n++
	}
	assert.Equal(t, 2, n)

	assert.ErrorIs(t, WriteReports(&b, Format(7), nil), ErrUnknownFormat)
}

func TestSaveDocument(t *testing.T) {
	m, err := Read(strings.NewReader(quadTOML), TOML)
	require.NoError(t, err)
	require.NoError(t, m.ComputeNormals())
	require.NoError(t, m.ComputeTangents(0))

	doc := NewDocument(m)
	assert.Len(t, doc.Normals, 12)
	assert.Len(t, doc.Tangents, 16)
	for _, ext := range []string{"toml", "yaml"} {
		path := filepath.Join(t.TempDir(), "out."+ext)
		require.NoError(t, doc.Save(path))
		back, err := Load(path)
		require.NoError(t, err, ext)
		assert.Equal(t, doc, NewDocument(back), ext)
		assert.Equal(t, PositionDigest(m.VertexBuffer), PositionDigest(back.VertexBuffer), ext)
	}
	assert.ErrorIs(t, doc.Save(filepath.Join(t.TempDir(), "out.json")), ErrUnknownFormat)
}
