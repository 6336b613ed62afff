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
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-longvec/vvm"
)

type benchOptions struct {
	stride int
	count  int
	iters  int
}

func (o benchOptions) validate() error {
	if o.count < 1 || o.count > vvm.Lanes32 {
		return fmt.Errorf("--count must be in [1, %d], got %d", vvm.Lanes32, o.count)
	}
	if o.stride == 0 {
		return fmt.Errorf("--stride must be non-zero")
	}
	if o.iters <= 0 {
		return fmt.Errorf("--iters must be positive, got %d", o.iters)
	}
	return nil
}

// result is the throughput of one variant.
type result struct {
	kind, name string
	perOp      time.Duration
	mbps       float64
}

func (a *app) benchCmd() *cobra.Command {
	var opts benchOptions
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure load and store throughput of every supported variant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			results := a.bench(opts)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintf(w, "KIND\tNAME\tNS/OP\tMB/S\t\n")
			for _, r := range results {
				fmt.Fprintf(w, "%s\t%s\t%d\t%.0f\t\n", r.kind, r.name, r.perOp.Nanoseconds(), r.mbps)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&opts.stride, "stride", 16, "stream stride in bytes; negative walks backwards")
	cmd.Flags().IntVar(&opts.count, "count", vvm.Lanes32, "elements per operation")
	cmd.Flags().IntVar(&opts.iters, "iters", 100000, "operations per variant")
	return cmd
}

func (a *app) bench(opts benchOptions) []result {
	span := (opts.count-1)*max(opts.stride, -opts.stride) + 4
	buf := make([]byte, span)
	off := 0
	if opts.stride < 0 {
		off = span - 4
	}
	reg := vvm.NewRegister()
	a.log.Info("benchmarking", "level", vvm.CurrentLevel(), "stride", opts.stride, "count", opts.count, "iters", opts.iters)

	var results []result
	measure := func(kind, name string, fn func()) {
		fn()
		start := time.Now()
		for range opts.iters {
			fn()
		}
		elapsed := time.Since(start)
		perOp := elapsed / time.Duration(opts.iters)
		mbps := float64(4*opts.count*opts.iters) / elapsed.Seconds() / 1e6
		a.log.Debug("variant measured", "kind", kind, "name", name, "elapsed", elapsed)
		results = append(results, result{kind: kind, name: name, perOp: perOp, mbps: mbps})
	}

	for _, v := range vvm.SupportedLoad4() {
		measure("load", v.Name, func() { v.Fn(reg, buf, off, opts.stride, opts.count) })
	}
	for _, v := range vvm.SupportedStore4() {
		measure("store", v.Name, func() { v.Fn(reg, buf, off, opts.stride, opts.count) })
		vvm.StoreFence()
	}
	return results
}
