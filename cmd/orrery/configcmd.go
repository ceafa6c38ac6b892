// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd(opts *options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the system configuration",
		Long:  "Config prints the --config table, or the built-in one, which is a starting point for a new configuration file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tb, err := opts.table()
			if err != nil {
				return err
			}
			switch format {
			case "toml":
				return tb.WriteTOML(cmd.OutOrStdout())
			case "yaml", "yml":
				return tb.WriteYAML(cmd.OutOrStdout())
			}
			return fmt.Errorf("unknown format %q (want toml or yaml)", format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "toml", "output format: toml or yaml")
	return cmd
}
