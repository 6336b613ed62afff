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

package math_test

import (
	stdmath "math"
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/go-longvec/vvm"
	vvmmath "github.com/ajroetker/go-longvec/vvm/contrib/math"
)

// checkAgainst runs fn over xs in register-sized batches and compares every
// lane against ref evaluated in float64.
func checkAgainst(t *testing.T, name string, xs []float32, fn func(src, dst *vvm.Register, n int), ref func(float64) float64) {
	t.Helper()
	src, dst := vvm.NewRegister(), vvm.NewRegister()
	worst := 0.0
	for start := 0; start < len(xs); start += vvm.Lanes32 {
		n := min(vvm.Lanes32, len(xs)-start)
		copy(src.Float32s(), xs[start:start+n])
		fn(src, dst, n)
		for i, got := range dst.Float32s()[:n] {
			x := xs[start+i]
			want := ref(float64(x))
			relErr := stdmath.Abs(float64(got)-want) / stdmath.Abs(want)
			if want == 0 {
				relErr = stdmath.Abs(float64(got))
			}
			if relErr > vvmmath.SinMaxRelError {
				t.Errorf("%s(%v) = %v, want %v (rel err %.3g)", name, x, got, want, relErr)
			}
			worst = max(worst, relErr)
		}
	}
	t.Logf("%s: worst relative error %.3g over %d inputs", name, worst, len(xs))
}

func uniform(rng *rand.Rand, n int, lo, hi float64) []float32 {
	xs := make([]float32, n)
	for i := range xs {
		xs[i] = float32(lo + (hi-lo)*rng.Float64())
	}
	return xs
}

func TestSinFloatAccuracy(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	domains := []struct {
		name   string
		lo, hi float64
	}{
		{"small", -1e-3, 1e-3},
		{"primary", -stdmath.Pi / 4, stdmath.Pi / 4},
		{"period", -2 * stdmath.Pi, 2 * stdmath.Pi},
		{"hundreds", -500, 500},
		{"1e4", -1e4, 1e4},
		{"1e5", -1e5, 1e5},
		{"1e6", 1e6, 2e6},
		{"1e7", -1e7, 1e7},
	}
	for _, d := range domains {
		t.Run(d.name, func(t *testing.T) {
			xs := uniform(rng, 4096, d.lo, d.hi)
			checkAgainst(t, "SinFloat", xs, vvmmath.SinFloat, stdmath.Sin)
			checkAgainst(t, "CosFloat", xs, vvmmath.CosFloat, stdmath.Cos)
		})
	}
}

// Inputs next to multiples of pi/2 have results far below 1, where a
// reduction with a short pi loses every significant bit.
func TestSinFloatNearZeros(t *testing.T) {
	var xs []float32
	for k := 1; k <= 2000; k++ {
		c := float32(float64(k) * stdmath.Pi / 2)
		xs = append(xs, c)
		up, down := c, c
		for range 4 {
			up = stdmath.Nextafter32(up, float32(stdmath.Inf(1)))
			down = stdmath.Nextafter32(down, float32(stdmath.Inf(-1)))
			xs = append(xs, up, down)
		}
	}
	checkAgainst(t, "SinFloat", xs, vvmmath.SinFloat, stdmath.Sin)
	checkAgainst(t, "CosFloat", xs, vvmmath.CosFloat, stdmath.Cos)
}

func TestSinFloatHugeInputs(t *testing.T) {
	xs := []float32{
		1 << 20, -(1 << 20), 1e8, -1e8, 3.4e38, -3.4e38,
		stdmath.MaxFloat32, stdmath.Nextafter32(1<<20, 0),
	}
	checkAgainst(t, "SinFloat", xs, vvmmath.SinFloat, stdmath.Sin)
	checkAgainst(t, "CosFloat", xs, vvmmath.CosFloat, stdmath.Cos)
}

func TestSinFloatSpecialValues(t *testing.T) {
	negZero := float32(stdmath.Copysign(0, -1))
	inputs := []float32{
		0, negZero,
		float32(stdmath.Inf(1)), float32(stdmath.Inf(-1)),
		float32(stdmath.NaN()),
		stdmath.SmallestNonzeroFloat32, 1e-30,
	}
	src, sinOut, cosOut := vvm.NewRegister(), vvm.NewRegister(), vvm.NewRegister()
	copy(src.Float32s(), inputs)
	vvmmath.SinFloat(src, sinOut, len(inputs))
	vvmmath.CosFloat(src, cosOut, len(inputs))
	s, c := sinOut.Float32s(), cosOut.Float32s()

	if s[0] != 0 || stdmath.Signbit(float64(s[0])) {
		t.Errorf("Sin(+0) = %v, want +0", s[0])
	}
	if s[1] != 0 || !stdmath.Signbit(float64(s[1])) {
		t.Errorf("Sin(-0) = %v, want -0", s[1])
	}
	if c[0] != 1 || c[1] != 1 {
		t.Errorf("Cos(±0) = %v, %v, want 1", c[0], c[1])
	}
	for i := 2; i <= 4; i++ {
		if !stdmath.IsNaN(float64(s[i])) {
			t.Errorf("Sin(%v) = %v, want NaN", inputs[i], s[i])
		}
		if !stdmath.IsNaN(float64(c[i])) {
			t.Errorf("Cos(%v) = %v, want NaN", inputs[i], c[i])
		}
	}
	if s[5] != inputs[5] || s[6] != inputs[6] {
		t.Errorf("Sin(tiny) = %v, %v, want the input back", s[5], s[6])
	}
}

func TestSinFloatAliasing(t *testing.T) {
	r := vvm.NewRegister()
	lanes := r.Float32s()
	for i := range lanes {
		lanes[i] = float32(i) * 0.1
	}
	vvmmath.SinFloat(r, r, vvm.Lanes32)
	for i, got := range lanes {
		want := float32(stdmath.Sin(float64(float32(i) * 0.1)))
		if stdmath.Abs(float64(got-want)) > 1e-6 {
			t.Fatalf("lane %d = %v, want %v", i, got, want)
		}
	}
}

func TestSinFloatLeavesTailUntouched(t *testing.T) {
	src, dst := vvm.NewRegister(), vvm.NewRegister()
	for i := range dst.Float32s() {
		dst.Float32s()[i] = -7
	}
	vvmmath.SinFloat(src, dst, 10)
	for i, got := range dst.Float32s() {
		if i < 10 && got != 0 {
			t.Errorf("lane %d = %v, want sin(0) = 0", i, got)
		}
		if i >= 10 && got != -7 {
			t.Fatalf("lane %d = %v, want untouched -7", i, got)
		}
	}
}

func TestSinFloatPanicsOnBadCount(t *testing.T) {
	r := vvm.NewRegister()
	tests := []struct {
		name string
		fn   func(src, dst *vvm.Register, n int)
		n    int
		want string
	}{
		{"SinFloat", vvmmath.SinFloat, -1, "vvm: SinFloat: lane count -1 outside [0, 256]"},
		{"SinFloat", vvmmath.SinFloat, vvm.Lanes32 + 1, "vvm: SinFloat: lane count 257 outside [0, 256]"},
		{"CosFloat", vvmmath.CosFloat, 300, "vvm: CosFloat: lane count 300 outside [0, 256]"},
	}
	for _, tt := range tests {
		func() {
			defer func() {
				got := recover()
				if got != tt.want {
					t.Errorf("%s(count=%d) panicked with %v, want %q", tt.name, tt.n, got, tt.want)
				}
			}()
			tt.fn(r, r, tt.n)
		}()
	}
}

func BenchmarkSinFloat(b *testing.B) {
	src, dst := vvm.NewRegister(), vvm.NewRegister()
	for i := range src.Float32s() {
		src.Float32s()[i] = float32(i) * 0.37
	}
	b.Run("Register", func(b *testing.B) {
		b.SetBytes(vvm.RegisterSize)
		for i := 0; i < b.N; i++ {
			vvmmath.SinFloat(src, dst, vvm.Lanes32)
		}
	})
	b.Run("Stdlib", func(b *testing.B) {
		b.SetBytes(vvm.RegisterSize)
		in, out := src.Float32s(), dst.Float32s()
		for i := 0; i < b.N; i++ {
			for j, x := range in {
				out[j] = float32(stdmath.Sin(float64(x)))
			}
		}
	})
}
