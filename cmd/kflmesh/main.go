// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command kflmesh loads mesh documents, derives normals, tangent
// frames or bounding volumes from them, and prints a report for each.
//
//	kflmesh normals -o out meshes/*.toml
//	kflmesh tangents --set 1 ship.yaml
//	kflmesh bounds --format toml ship.yaml crate.toml
package main

import (
	"context"
	"os"
	"runtime"

	"github.com/ljporljp/KlayGE/base/errors"
	"github.com/ljporljp/KlayGE/base/logx"
	"github.com/ljporljp/KlayGE/meshio"
	"github.com/spf13/cobra"
)

func main() {
	logx.SetDefaultLogger()
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		errors.Log(err)
		os.Exit(1)
	}
}

// options are the flags shared by all subcommands.
type options struct {
	format  meshio.Format
	jobs    int
	level   string
	verbose bool
	quiet   bool
	output  string
	set     int
}

func newRootCmd() *cobra.Command {
	o := &options{format: meshio.YAML}
	root := &cobra.Command{
		Use:           "kflmesh",
		Short:         "Derive vertex attributes and bounds of mesh documents",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setLevel()
		},
	}
	pf := root.PersistentFlags()
	pf.VarP(&o.format, "format", "f", "report format: toml or yaml")
	pf.IntVarP(&o.jobs, "jobs", "j", runtime.NumCPU(), "number of files processed at once")
	pf.StringVar(&o.level, "log-level", "", "log level: debug, info, warn or error")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "log each processed file")
	pf.BoolVarP(&o.quiet, "quiet", "q", false, "log errors only")
	pf.StringVarP(&o.output, "output", "o", "", "directory to write the updated mesh documents to")

	root.AddCommand(
		newCommand(o, "normals", "Compute area weighted vertex normals", computeNormals),
		tangentsCmd(o),
		newCommand(o, "bounds", "Compute the bounding box, sphere and oriented box", nil),
	)
	return root
}

func tangentsCmd(o *options) *cobra.Command {
	cmd := newCommand(o, "tangents", "Compute tangent frames, and normals when missing", computeTangents)
	cmd.Flags().IntVar(&o.set, "set", 0, "texture coordinate set the tangents follow")
	return cmd
}

func newCommand(o *options, name, short string, compute computeFunc) *cobra.Command {
	return &cobra.Command{
		Use:   name + " files...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job := &job{options: o, compute: compute, bounds: compute == nil}
			return job.run(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}
}

// setLevel sets [logx.UserLevel] from the flags. An explicit
// --log-level wins over -v and -q.
func (o *options) setLevel() error {
	switch {
	case o.level != "":
		l, err := logx.ParseLevel(o.level)
		if err != nil {
			return err
		}
		logx.UserLevel = l
	case o.verbose || o.quiet:
		logx.UserLevel = logx.LevelFromFlags(false, o.verbose, o.quiet)
	}
	return nil
}
