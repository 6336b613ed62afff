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

import (
	"simd/archsimd"
	"unsafe"
)

// This file provides the AVX-512 loader. It sorts after the AVX2 file, so
// when both register it replaces LoadAVX2 as the default.

func init() {
	if NoSimdEnv() || !archsimd.X86.AVX512() {
		return
	}
	registerLoad4(LoadVariant{Name: "avx512", Level: DispatchAVX512, Width: 16, Fn: LoadAVX512})
	Load4 = LoadAVX512
}

var (
	// permEven picks lanes 0, 2, ..., 30 of a concatenated pair.
	permEven = [16]uint32{0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24, 26, 28, 30}
	// permQuarter picks lanes 0, 4, ..., 28 into both halves.
	permQuarter = [16]uint32{0, 4, 8, 12, 16, 20, 24, 28, 0, 4, 8, 12, 16, 20, 24, 28}
	// permJoin takes the low halves of x and y.
	permJoin = [16]uint32{0, 1, 2, 3, 4, 5, 6, 7, 16, 17, 18, 19, 20, 21, 22, 23}
)

// LoadAVX512 moves sixteen lanes per 512-bit register. Contiguous runs
// finish with a masked partial load and store. Stride 8 and 16 are
// deinterleaved with VPERMI2D; other strides are gathered into a block.
func LoadAVX512(dst *Register, src []byte, off, stride, count int) int {
	checkCursor("LoadAVX512", len(src), off, 4, stride, count)
	if count == 0 {
		return off
	}
	out := dst.Uint32s()[:count]
	s := unsafe.Pointer(&src[off])

	i := 0
	switch stride {
	case 4:
		in := unsafe.Slice((*uint32)(s), count)
		for ; i+16 <= count; i += 16 {
			archsimd.LoadUint32x16Slice(in[i:]).StoreSlice(out[i:])
		}
		if i < count {
			archsimd.LoadUint32x16SlicePart(in[i:]).StoreSlicePart(out[i:])
		}
		return off + 4*count
	case 8:
		// Whole-struct reads end at the start of element i+16.
		idx := archsimd.LoadUint32x16(&permEven)
		for ; i+16 < count; i += 16 {
			w := unsafe.Slice((*uint32)(unsafe.Add(s, 8*i)), 32)
			a := archsimd.LoadUint32x16Slice(w[0:16])
			b := archsimd.LoadUint32x16Slice(w[16:32])
			a.ConcatPermute(b, idx).StoreSlice(out[i:])
		}
	case 16:
		idx := archsimd.LoadUint32x16(&permQuarter)
		join := archsimd.LoadUint32x16(&permJoin)
		for ; i+16 < count; i += 16 {
			w := unsafe.Slice((*uint32)(unsafe.Add(s, 16*i)), 64)
			lo := archsimd.LoadUint32x16Slice(w[0:16]).ConcatPermute(archsimd.LoadUint32x16Slice(w[16:32]), idx)
			hi := archsimd.LoadUint32x16Slice(w[32:48]).ConcatPermute(archsimd.LoadUint32x16Slice(w[48:64]), idx)
			lo.ConcatPermute(hi, join).StoreSlice(out[i:])
		}
	default:
		var blk [16]uint32
		for ; i+16 <= count; i += 16 {
			gatherBlock(blk[:], s, i, stride)
			archsimd.LoadUint32x16(&blk).StoreSlice(out[i:])
		}
		if rem := count - i; rem > 0 {
			gatherBlock(blk[:rem], s, i, stride)
			archsimd.LoadUint32x16SlicePart(blk[:rem]).StoreSlicePart(out[i:])
		}
		return off + count*stride
	}
	for ; i < count; i++ {
		out[i] = *(*uint32)(unsafe.Add(s, i*stride))
	}
	return off + count*stride
}
