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
	"math/rand/v2"
	"strconv"
	"testing"
)

// hugeStride is large enough that count*stride wraps for a full register.
const hugeStride = 1 << (strconv.IntSize - 2)

// testCounts covers empty, tiny, every tail size around the 4/8/16 block
// widths, and full registers.
var testCounts = []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 12, 15, 16, 17, 31, 32, 33, 63, 64, 65, 100, 255, 256}

// testStrides covers contiguous, array-of-structs, odd, overlapping and
// negative strides, and the degenerate stride 0.
var testStrides = []int{4, 8, 12, 16, 20, 64, 6, 5, 3, 0, -4, -8, -12, -16, -6, -5}

// streamBuffer returns a random buffer and the start offset for a cursor of
// count 4-byte elements at the given stride, with guard bytes around the
// span so over-reads and over-writes land inside the allocation.
func streamBuffer(rng *rand.Rand, stride, count int) ([]byte, int) {
	const guard = 32
	span := 4
	if count > 0 {
		span = (count-1)*abs(stride) + 4
	}
	buf := make([]byte, span+2*guard)
	for i := range buf {
		buf[i] = byte(rng.UintN(256))
	}
	off := guard
	if stride < 0 && count > 0 {
		off += (count - 1) * -stride
	}
	return buf, off
}

func newRNG(t testing.TB) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewPCG(0x5eed, uint64(len(t.Name()))))
}

// sentinel fills r with a recognizable pattern so writes past count show up.
func sentinel(r *Register) {
	for i := range r.b {
		r.b[i] = 0xA5
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// expectPanic fails the test unless fn panics.
func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
