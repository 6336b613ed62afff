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

// Elementwise float32 operations. Each reads the first count lanes of its
// sources and writes the matching lanes of dst; lanes at count and beyond
// are left untouched. dst may alias either source: lane i is only ever
// computed from lane i. Results follow IEEE-754 single precision,
// including NaN and infinity propagation.

// AddFloat sets dst[i] = a[i] + b[i] for the first count float32 lanes.
// It starts as the portable loop and is replaced at init by a vector
// implementation when one is built in and supported.
var AddFloat func(a, b, dst *Register, count int) = addFloatBase

func addFloatBase(a, b, dst *Register, count int) {
	checkLanes("AddFloat", count)
	x, y, z := a.Float32s()[:count], b.Float32s()[:count], dst.Float32s()[:count]
	i := 0
	for ; i+8 <= count; i += 8 {
		va, vb := *(*[8]float32)(x[i:]), *(*[8]float32)(y[i:])
		*(*[8]float32)(z[i:]) = [8]float32{
			va[0] + vb[0], va[1] + vb[1], va[2] + vb[2], va[3] + vb[3],
			va[4] + vb[4], va[5] + vb[5], va[6] + vb[6], va[7] + vb[7],
		}
	}
	for ; i < count; i++ {
		z[i] = x[i] + y[i]
	}
}

// SubFloat sets dst[i] = a[i] - b[i] for the first count float32 lanes.
func SubFloat(a, b, dst *Register, count int) {
	checkLanes("SubFloat", count)
	x, y, z := a.Float32s()[:count], b.Float32s()[:count], dst.Float32s()[:count]
	i := 0
	for ; i+8 <= count; i += 8 {
		va, vb := *(*[8]float32)(x[i:]), *(*[8]float32)(y[i:])
		*(*[8]float32)(z[i:]) = [8]float32{
			va[0] - vb[0], va[1] - vb[1], va[2] - vb[2], va[3] - vb[3],
			va[4] - vb[4], va[5] - vb[5], va[6] - vb[6], va[7] - vb[7],
		}
	}
	for ; i < count; i++ {
		z[i] = x[i] - y[i]
	}
}

// MulFloat sets dst[i] = a[i] * b[i] for the first count float32 lanes.
func MulFloat(a, b, dst *Register, count int) {
	checkLanes("MulFloat", count)
	x, y, z := a.Float32s()[:count], b.Float32s()[:count], dst.Float32s()[:count]
	i := 0
	for ; i+8 <= count; i += 8 {
		va, vb := *(*[8]float32)(x[i:]), *(*[8]float32)(y[i:])
		*(*[8]float32)(z[i:]) = [8]float32{
			va[0] * vb[0], va[1] * vb[1], va[2] * vb[2], va[3] * vb[3],
			va[4] * vb[4], va[5] * vb[5], va[6] * vb[6], va[7] * vb[7],
		}
	}
	for ; i < count; i++ {
		z[i] = x[i] * y[i]
	}
}
