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

package math

import (
	"fmt"
	stdmath "math"

	"github.com/ajroetker/go-longvec/vvm"
)

// SinFloat sets dst[i] = sin(src[i]) for the first count float32 lanes.
// dst may alias src. The error bound is SinMaxRelError; see the package
// documentation for special values.
func SinFloat(src, dst *vvm.Register, count int) {
	checkLanes("SinFloat", count)
	in, out := src.Float32s()[:count], dst.Float32s()[:count]
	for i, x := range in {
		out[i] = sin32(x)
	}
}

// CosFloat sets dst[i] = cos(src[i]) for the first count float32 lanes.
// dst may alias src.
func CosFloat(src, dst *vvm.Register, count int) {
	checkLanes("CosFloat", count)
	in, out := src.Float32s()[:count], dst.Float32s()[:count]
	for i, x := range in {
		out[i] = cos32(x)
	}
}

func checkLanes(op string, count int) {
	if count < 0 || count > vvm.Lanes32 {
		panic(fmt.Sprintf("vvm: %s: lane count %d outside [0, %d]", op, count, vvm.Lanes32))
	}
}

func sin32(x float32) float32 {
	return float32(sinCos64(float64(x), 0))
}

func cos32(x float32) float32 {
	return float32(sinCos64(float64(x), 1))
}

// sinCos64 returns sin(x) for shift 0 and cos(x) = sin(x + pi/2) for
// shift 1. The argument is reduced to r in [-pi/4, pi/4] with quadrant k,
// then the quadrant picks the sin or cos kernel and the sign.
func sinCos64(x float64, shift int) float64 {
	switch {
	case stdmath.IsNaN(x) || stdmath.IsInf(x, 0):
		return stdmath.NaN()
	case stdmath.Abs(x) >= reduceLimit:
		// Rare; defer to the library's Payne-Hanek reduction.
		if shift == 0 {
			return stdmath.Sin(x)
		}
		return stdmath.Cos(x)
	}

	if x == 0 && shift == 0 {
		return x // keeps the sign of zero
	}

	var k float64
	r := x
	if stdmath.Abs(x) > pio4 {
		k = stdmath.RoundToEven(x * twoOverPi)
		r = x - k*pio2_1
		r -= k * pio2_2
		r -= k * pio2_3
		r -= k * pio2_3t
	}

	switch (int(k) + shift) & 3 {
	case 0:
		return kernelSin(r)
	case 1:
		return kernelCos(r)
	case 2:
		return -kernelSin(r)
	default:
		return -kernelCos(r)
	}
}

func kernelSin(r float64) float64 {
	z := r * r
	p := sinS5 + z*sinS6
	p = sinS4 + z*p
	p = sinS3 + z*p
	p = sinS2 + z*p
	p = sinS1 + z*p
	return r + r*z*p
}

func kernelCos(r float64) float64 {
	z := r * r
	p := cosC5 + z*cosC6
	p = cosC4 + z*p
	p = cosC3 + z*p
	p = cosC2 + z*p
	p = cosC1 + z*p
	return 1 - 0.5*z + z*z*p
}
