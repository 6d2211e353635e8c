// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/ljporljp/KlayGE/base/logx"
	"github.com/ljporljp/KlayGE/meshio"
	"github.com/ljporljp/KlayGE/vertexbuf"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/sync/errgroup"
)

// computeFunc derives attributes of a loaded mesh in place.
type computeFunc func(m *meshio.Mesh, o *options) error

func computeNormals(m *meshio.Mesh, _ *options) error {
	return m.ComputeNormals()
}

func computeTangents(m *meshio.Mesh, o *options) error {
	if !m.Options.Has(vertexbuf.Normals) {
		if err := m.ComputeNormals(); err != nil {
			return err
		}
	}
	return m.ComputeTangents(o.set)
}

// job is one invocation of a subcommand over a list of files.
type job struct {
	*options

	// compute is nil for a job that only reports.
	compute computeFunc

	// bounds adds the bounding volumes to the reports.
	bounds bool

	runID uuid.UUID
}

// run processes the files concurrently, at most jobs at a time, and
// writes their reports to w in the order of the files. The first
// error stops the job and nothing is written.
func (j *job) run(ctx context.Context, w io.Writer, paths []string) error {
	j.runID = uuid.New()
	if j.output != "" && j.compute != nil {
		if err := j.prepareOutput(paths); err != nil {
			return err
		}
	}

	reports := make([]*meshio.Report, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(j.jobs, 1))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := j.process(path)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := meshio.WriteReports(w, j.format, reports); err != nil {
		return err
	}
	slog.Debug(logx.SuccessColor("done"), "run", j.runID, "files", len(paths))
	return nil
}

// prepareOutput expands a leading ~ in the output directory, checks
// that no two files would be written to the same path, and creates it.
func (j *job) prepareOutput(paths []string) error {
	dir, err := homedir.Expand(j.output)
	if err != nil {
		return err
	}
	j.output = dir
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		out := j.outputPath(path)
		if prev, ok := seen[out]; ok {
			return fmt.Errorf("%s and %s would both be written to %s", prev, path, out)
		}
		seen[out] = path
	}
	return os.MkdirAll(j.output, 0777)
}

func (j *job) outputPath(path string) string {
	return filepath.Join(j.output, filepath.Base(path))
}

// process loads one file, derives its attributes and returns its report.
func (j *job) process(path string) (*meshio.Report, error) {
	m, err := meshio.Load(path)
	if err != nil {
		return nil, err
	}
	if j.compute != nil {
		if err := j.compute(m, j.options); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	r := meshio.NewReport(m, j.runID)
	if j.bounds {
		r.Bounds = meshio.NewBounds(m.Bounds())
	}
	if j.output != "" && j.compute != nil {
		out := j.outputPath(path)
		if err := meshio.NewDocument(m).Save(out); err != nil {
			return nil, err
		}
		slog.Debug("wrote", "path", out)
	}
	slog.Info("processed", "path", path, "vertices", r.Vertices, "primitives", r.Primitives)
	return r, nil
}
