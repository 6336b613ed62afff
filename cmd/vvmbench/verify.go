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
	"bytes"
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-longvec/vvm"
)

type verifyOptions struct {
	trials int
	seed   uint64
}

func (a *app) verifyCmd() *cobra.Command {
	var opts verifyOptions
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every supported variant against the reference on random streams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.trials <= 0 {
				return fmt.Errorf("--trials must be positive, got %d", opts.trials)
			}
			if err := a.verify(cmd.Context(), opts); err != nil {
				return fmt.Errorf("verify: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d load and %d store variants agree over %d trials\n",
				len(vvm.SupportedLoad4()), len(vvm.SupportedStore4()), opts.trials)
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.trials, "trials", 200, "random streams per variant")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "random seed")
	return cmd
}

// verify runs one goroutine per variant. The first mismatch cancels the
// others.
func (a *app) verify(ctx context.Context, opts verifyOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	g, ctx := errgroup.WithContext(ctx)
	for i, v := range vvm.SupportedLoad4() {
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(opts.seed, uint64(i)))
			if err := checkLoad(ctx, v, rng, opts.trials); err != nil {
				return err
			}
			a.log.Debug("load variant verified", "name", v.Name, "trials", opts.trials)
			return nil
		})
	}
	for i, v := range vvm.SupportedStore4() {
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(opts.seed, 1000+uint64(i)))
			if err := checkStore(ctx, v, rng, opts.trials); err != nil {
				return err
			}
			a.log.Debug("store variant verified", "name", v.Name, "trials", opts.trials)
			return nil
		})
	}
	return g.Wait()
}

// trial is one random stream shape.
type trial struct {
	stride, count int
}

func randomTrial(rng *rand.Rand) trial {
	stride := 4 * (1 + rng.IntN(8))
	switch rng.IntN(6) {
	case 0:
		stride = -stride
	case 1:
		stride = 1 + rng.IntN(40)
	case 2:
		stride = -(1 + rng.IntN(40))
	case 3:
		stride = 0
	}
	return trial{stride: stride, count: rng.IntN(vvm.Lanes32 + 1)}
}

// randomStream returns a filled buffer and the start offset for tr, with a
// guard on both sides of the span.
func randomStream(rng *rand.Rand, tr trial) ([]byte, int) {
	const guard = 64
	span := 4
	if tr.count > 0 {
		span = (tr.count-1)*max(tr.stride, -tr.stride) + 4
	}
	buf := make([]byte, span+2*guard)
	for i := range buf {
		buf[i] = byte(rng.Uint32())
	}
	off := guard
	if tr.stride < 0 && tr.count > 0 {
		off += (tr.count - 1) * -tr.stride
	}
	return buf, off
}

func checkLoad(ctx context.Context, v vvm.LoadVariant, rng *rand.Rand, trials int) error {
	for range trials {
		if err := ctx.Err(); err != nil {
			return err
		}
		tr := randomTrial(rng)
		src, off := randomStream(rng, tr)

		var want, got vvm.Register
		wantNext := vvm.LoadPlain4(&want, src, off, tr.stride, tr.count)
		gotNext := v.Fn(&got, src, off, tr.stride, tr.count)
		if gotNext != wantNext {
			return fmt.Errorf("load %s: stride %d count %d: returned offset %d, want %d",
				v.Name, tr.stride, tr.count, gotNext, wantNext)
		}
		if i := firstDiff(want.Bytes(), got.Bytes()); i >= 0 {
			return fmt.Errorf("load %s: stride %d count %d: register byte %d differs",
				v.Name, tr.stride, tr.count, i)
		}
	}
	return nil
}

// checkStore compares v against StorePlain4 and checks that loading the
// written stream back reproduces the register.
func checkStore(ctx context.Context, v vvm.StoreVariant, rng *rand.Rand, trials int) error {
	for range trials {
		if err := ctx.Err(); err != nil {
			return err
		}
		tr := randomTrial(rng)
		base, off := randomStream(rng, tr)
		var src vvm.Register
		for i := range src.Bytes() {
			src.Bytes()[i] = byte(rng.Uint32())
		}

		want := bytes.Clone(base)
		got := bytes.Clone(base)
		wantNext := vvm.StorePlain4(&src, want, off, tr.stride, tr.count)
		gotNext := v.Fn(&src, got, off, tr.stride, tr.count)
		vvm.StoreFence()
		if gotNext != wantNext {
			return fmt.Errorf("store %s: stride %d count %d: returned offset %d, want %d",
				v.Name, tr.stride, tr.count, gotNext, wantNext)
		}
		if i := firstDiff(want, got); i >= 0 {
			return fmt.Errorf("store %s: stride %d count %d: buffer byte %d differs",
				v.Name, tr.stride, tr.count, i)
		}

		// Overlapping strides overwrite earlier elements, so the round trip
		// only holds for strides of at least one element.
		if max(tr.stride, -tr.stride) < 4 {
			continue
		}
		var back vvm.Register
		vvm.LoadPlain4(&back, got, off, tr.stride, tr.count)
		if i := firstDiff(src.Bytes()[:4*tr.count], back.Bytes()[:4*tr.count]); i >= 0 {
			return fmt.Errorf("store %s: stride %d count %d: round trip byte %d differs",
				v.Name, tr.stride, tr.count, i)
		}
	}
	return nil
}

func firstDiff(a, b []byte) int {
	for i := range min(len(a), len(b)) {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return min(len(a), len(b))
	}
	return -1
}
