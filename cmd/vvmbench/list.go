// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-longvec/vvm"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the detected dispatch level and the registered variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := vvm.CurrentLevel()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "dispatch level:\t%s\n", level)
			fmt.Fprintf(w, "register:\t%d bytes, %d-byte aligned, %d per file\n\n", vvm.RegisterSize, vvm.Alignment, vvm.RegisterCount)

			fmt.Fprintln(w, "KIND\tNAME\tLEVEL\tWIDTH\tNT\tSUPPORTED")
			for _, v := range vvm.Load4Variants() {
				fmt.Fprintf(w, "load\t%s\t%s\t%d\t-\t%v\n", v.Name, v.Level, v.Width, level.Supports(v.Level))
			}
			for _, v := range vvm.Store4Variants() {
				nt := "-"
				if v.NonTemporal {
					nt = "yes"
				}
				fmt.Fprintf(w, "store\t%s\t%s\t%d\t%s\t%v\n", v.Name, v.Level, v.Width, nt, level.Supports(v.Level))
			}
			a.log.Debug("listed variants", "level", level, "noSimd", vvm.NoSimdEnv())
			return w.Flush()
		},
	}
}
