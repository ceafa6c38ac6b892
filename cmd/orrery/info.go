// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"cogentcore.org/orrery/body"
	"cogentcore.org/orrery/system"
	"github.com/spf13/cobra"
)

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info [body]",
		Short: "Show the information record of a body, or list the bodies",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tb, err := opts.table()
			if err != nil {
				return err
			}
			sys, err := system.Assemble(tb, system.Options{})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				return listBodies(w, sys)
			}
			bd, err := sys.Body(args[0])
			if err != nil {
				return err
			}
			return writeInfo(w, bd)
		},
	}
}

// listBodies writes one line per body with its orbit.
func listBodies(w io.Writer, sys *system.System) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDISTANCE\tECCENTRICITY\tPERIOD (DAYS)\tMOONS")
	for _, bd := range sys.Bodies.Values() {
		bc := bd.Config
		fmt.Fprintf(tw, "%s\t%g\t%g\t%g\t%d\n", bc.Name, bc.OrbitDistance, bc.Eccentricity, bc.OrbitPeriodDays, len(bd.Satellites))
	}
	return tw.Flush()
}

// writeInfo writes the information record of bd.
func writeInfo(w io.Writer, bd *body.Body) error {
	info := bd.Info()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, bd.Name())
	for _, f := range []struct{ label, value string }{
		{"Radius", info.Radius},
		{"Tilt", info.Tilt},
		{"Rotation", info.Rotation},
		{"Orbit", info.Orbit},
		{"Distance", info.Distance},
		{"Moons", info.Moons},
	} {
		if f.value != "" {
			fmt.Fprintf(tw, "  %s:\t%s\n", f.label, f.value)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if d := strings.TrimSpace(info.Description); d != "" {
		fmt.Fprintf(w, "\n%s\n", d)
	}
	return nil
}
