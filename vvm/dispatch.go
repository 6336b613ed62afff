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
	"os"
	"strconv"
)

// DispatchLevel represents the instruction set a variant needs, or the best
// one detected on this machine.
type DispatchLevel int

const (
	// DispatchScalar indicates portable Go with no instruction set
	// requirement.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Supports reports whether code requiring level req can run on a machine
// detected at level d. Scalar code runs everywhere; x86 levels are ordered
// SSE2 < AVX2 < AVX512; NEON only satisfies NEON.
func (d DispatchLevel) Supports(req DispatchLevel) bool {
	switch req {
	case DispatchScalar:
		return true
	case DispatchSSE2, DispatchAVX2, DispatchAVX512:
		return d >= req && d <= DispatchAVX512
	case DispatchNEON:
		return d == DispatchNEON
	default:
		return false
	}
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// CurrentLevel returns the instruction set detected for this runtime.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the detected level,
// e.g. "avx2", "neon" or "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv checks if the VVM_NO_SIMD environment variable is set.
// When set, only scalar variants are reported as supported regardless of
// CPU capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("VVM_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
