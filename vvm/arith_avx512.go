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
//go:build amd64 && goexperiment.simd

package vvm

import "simd/archsimd"

// Runs after the AVX2 init and takes precedence over it.
func init() {
	if NoSimdEnv() || !archsimd.X86.AVX512() {
		return
	}
	AddFloat = addFloatAVX512
}

func addFloatAVX512(a, b, dst *Register, count int) {
	checkLanes("AddFloat", count)
	x, y, z := a.Float32s()[:count], b.Float32s()[:count], dst.Float32s()[:count]
	i := 0
	for ; i+16 <= count; i += 16 {
		archsimd.LoadFloat32x16Slice(x[i:]).Add(archsimd.LoadFloat32x16Slice(y[i:])).StoreSlice(z[i:])
	}
	if i < count {
		archsimd.LoadFloat32x16SlicePart(x[i:]).Add(archsimd.LoadFloat32x16SlicePart(y[i:])).StoreSlicePart(z[i:])
	}
}
