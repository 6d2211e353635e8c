// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshio reads mesh documents in TOML or YAML into
// [vertexbuf.VertexBuffer] values, and writes reports of the
// attributes derived from them.
package meshio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ljporljp/KlayGE/vertexbuf"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a document encoding.
type Format int32

const (
	// TOML is github.com/pelletier/go-toml/v2 encoding (.toml).
	TOML Format = iota

	// YAML is gopkg.in/yaml.v3 encoding (.yaml, .yml).
	YAML
)

// ErrUnknownFormat is returned for a file extension or format name
// that is not TOML or YAML.
var ErrUnknownFormat = errors.New("meshio: unknown format")

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int32(f))
}

// ParseFormat returns the format named s: toml, yaml or yml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath returns the format of the file from its extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Set implements the pflag.Value interface, so a Format can be a flag.
func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Type implements the pflag.Value interface.
func (f *Format) Type() string { return "format" }

// Marshal encodes v in the format.
func (f Format) Marshal(v any) ([]byte, error) {
	switch f {
	case TOML:
		return toml.Marshal(v)
	case YAML:
		var b bytes.Buffer
		enc := yaml.NewEncoder(&b)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return b.Bytes(), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// Decode decodes the document read from r in the format into v.
// Unknown keys are an error.
func (f Format) Decode(r io.Reader, v any) error {
	switch f {
	case TOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		return dec.Decode(v)
	}
	return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// Mesh is a vertex buffer loaded from a document.
type Mesh struct {
	// Name is the document name, or the file base name when it has none.
	Name string

	// Path is the file the mesh was loaded from.
	Path string

	*vertexbuf.VertexBuffer
}

// Load reads the mesh document at path, in the format given by its
// extension, and returns its validated vertex buffer.
func Load(path string) (*Mesh, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	m, err := Read(file, f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	m.Path = path
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m, nil
}

// Read decodes a mesh document in the format from r and returns its
// validated vertex buffer.
func Read(r io.Reader, f Format) (*Mesh, error) {
	doc := Document{Type: vertexbuf.TriangleList}
	if err := f.Decode(r, &doc); err != nil {
		return nil, fmt.Errorf("decoding %v: %w", f, err)
	}
	vb, err := doc.VertexBuffer()
	if err != nil {
		return nil, err
	}
	return &Mesh{Name: doc.Name, VertexBuffer: vb}, nil
}
