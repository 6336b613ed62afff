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

package vvm

import (
	"bytes"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadStreamElementSizes(t *testing.T) {
	rng := newRNG(t)
	for _, elemSize := range []int{1, 2, 3, 4, 8, 12} {
		for _, stride := range []int{elemSize, 2 * elemSize, elemSize + 5, -elemSize, -3 * elemSize} {
			for _, count := range []int{0, 1, 3, 7, 16, 33, RegisterSize / elemSize} {
				span := elemSize
				if count > 0 {
					span = (count-1)*abs(stride) + elemSize
				}
				src := make([]byte, span+16)
				for i := range src {
					src[i] = byte(rng.UintN(256))
				}
				off := 8
				if stride < 0 && count > 0 {
					off += (count - 1) * -stride
				}

				var want Register
				sentinel(&want)
				for i := range count {
					p := off + i*stride
					copy(want.b[i*elemSize:(i+1)*elemSize], src[p:p+elemSize])
				}

				var got Register
				sentinel(&got)
				next := LoadStream(&got, src, off, elemSize, stride, count)
				if wantNext := off + count*stride; next != wantNext {
					t.Errorf("elem=%d stride=%d count=%d: returned %d, want %d", elemSize, stride, count, next, wantNext)
				}
				if diff := cmp.Diff(want.b[:], got.b[:]); diff != "" {
					t.Errorf("elem=%d stride=%d count=%d: (-want +got):\n%s", elemSize, stride, count, diff)
				}
			}
		}
	}
}

// Ten 4-byte floats at a 16-byte stride: lanes 0..9 hold the first field
// of each struct and the cursor advances by 160 bytes. Storing them
// contiguously yields the selected values in order.
func TestLoadStridedFloats(t *testing.T) {
	rows := make([]float32, 4*10)
	for i := range 10 {
		rows[4*i] = float32(i) + 0.5
		rows[4*i+1] = -1
		rows[4*i+2] = -2
		rows[4*i+3] = -3
	}
	src := AsBytes(rows)

	for _, v := range Load4Variants() {
		r := NewRegister()
		next := v.Fn(r, src, 0, 16, 10)
		if next != 160 {
			t.Errorf("%s: returned offset %d, want 160", v.Name, next)
		}
		lanes := r.Float32s()
		for i := range 10 {
			if lanes[i] != float32(i)+0.5 {
				t.Errorf("%s: lane %d = %v, want %v", v.Name, i, lanes[i], float32(i)+0.5)
			}
		}
		for i := 10; i < Lanes32; i++ {
			if lanes[i] != 0 {
				t.Fatalf("%s: lane %d = %v, want untouched 0", v.Name, i, lanes[i])
			}
		}

		out := make([]float32, 10)
		if end := Store4(r, AsBytes(out), 0, 4, 10); end != 40 {
			t.Errorf("%s: contiguous store returned %d, want 40", v.Name, end)
		}
		for i, got := range out {
			if got != float32(i)+0.5 {
				t.Errorf("%s: stored element %d = %v, want %v", v.Name, i, got, float32(i)+0.5)
			}
		}
	}
}

func TestLoadPreservesBits(t *testing.T) {
	// NaN payloads and signed zero must survive a load unchanged.
	vals := []uint32{
		0x7fc00001, 0xffc12345, 0x7f800001, // NaNs
		math.Float32bits(float32(math.Inf(1))),
		0x80000000, 0, 1,
	}
	src := AsBytes(vals)
	for _, v := range Load4Variants() {
		var r Register
		v.Fn(&r, src, 0, 4, len(vals))
		if got := r.Uint32s()[:len(vals)]; !cmp.Equal(vals, got) {
			t.Errorf("%s: bits changed: got %#x, want %#x", v.Name, got, vals)
		}
	}
}

func TestLoad(t *testing.T) {
	src := make([]byte, 200)
	for i := range src {
		src[i] = byte(i)
	}
	var r Register
	next := Load(&r, src, 10, 2, 50)
	if next != 110 {
		t.Errorf("Load returned %d, want 110", next)
	}
	if !bytes.Equal(r.b[:100], src[10:110]) {
		t.Error("Load copied the wrong bytes")
	}
	if r.b[100] != 0 {
		t.Error("Load wrote past count")
	}
}

// The returned offset is the start of the next batch, so consecutive loads
// walk a long stream without recomputation.
func TestLoadChaining(t *testing.T) {
	const total = 1000
	const stride = 12
	vals := make([]uint32, total*stride/4)
	for i := range total {
		vals[i*stride/4] = uint32(i)
	}
	src := AsBytes(vals)

	var r Register
	off, seen := 0, 0
	for seen < total {
		n := min(Lanes32, total-seen)
		off = Load4(&r, src, off, stride, n)
		for i, got := range r.Uint32s()[:n] {
			if got != uint32(seen+i) {
				t.Fatalf("element %d = %d", seen+i, got)
			}
		}
		seen += n
	}
	if off != total*stride {
		t.Errorf("final offset %d, want %d", off, total*stride)
	}
}

func TestLoadEmptyStream(t *testing.T) {
	// count == 0 touches nothing, so any offset is accepted.
	var r Register
	sentinel(&r)
	if got := LoadStream(&r, nil, 12345, 4, 16, 0); got != 12345 {
		t.Errorf("LoadStream returned %d, want 12345", got)
	}
	if r.b[0] != 0xA5 {
		t.Error("empty load modified the register")
	}
}

func TestLoadStreamContractViolations(t *testing.T) {
	buf := make([]byte, 64)
	var r Register
	expectPanic(t, "zero element size", func() { LoadStream(&r, buf, 0, 0, 4, 1) })
	expectPanic(t, "negative count", func() { LoadStream(&r, buf, 0, 4, 4, -1) })
	expectPanic(t, "register overflow", func() { LoadStream(&r, make([]byte, 4096), 0, 8, 8, 129) })
	expectPanic(t, "past end", func() { LoadStream(&r, buf, 60, 4, 4, 2) })
	expectPanic(t, "negative offset", func() { LoadStream(&r, buf, -4, 4, 4, 1) })
	expectPanic(t, "negative stride underflow", func() { LoadStream(&r, buf, 4, 4, -8, 2) })
	expectPanic(t, "Load past end", func() { Load(&r, buf, 0, 4, 17) })
	expectPanic(t, "wrapping stride", func() { LoadStream(&r, buf, 0, 4, hugeStride, 5) })
	expectPanic(t, "wrapping negative stride", func() { LoadStream(&r, buf, 60, 4, -hugeStride, 5) })
	expectPanic(t, "huge offset", func() { LoadStream(&r, buf, math.MaxInt-1, 4, 4, 1) })
}
