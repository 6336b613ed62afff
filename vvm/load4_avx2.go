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

// This file provides the AVX2 loaders. They are only built with
// GOEXPERIMENT=simd and only registered when the CPU reports AVX2.

func init() {
	if NoSimdEnv() || !archsimd.X86.AVX2() {
		return
	}
	registerLoad4(LoadVariant{Name: "avx2", Level: DispatchAVX2, Width: 8, Fn: LoadAVX2})
	registerLoad4(LoadVariant{Name: "shuffle-avx2", Level: DispatchAVX2, Width: 8, Fn: LoadShuffleAVX2})
	Load4 = LoadAVX2
}

// Lane selections for the deinterleaving loads: field 0 of 8-byte structs
// sits in even lanes, field 0 of 16-byte structs in lanes 0 and 4.
var (
	permPairs = [8]uint32{0, 2, 4, 6, 0, 2, 4, 6}
	permQuads = [8]uint32{0, 4, 0, 4, 0, 4, 0, 4}
	mergeLow2 = []int32{-1, -1, 0, 0, -1, -1, 0, 0}
)

// LoadAVX2 moves eight lanes per 256-bit register. Contiguous runs are
// loaded directly; strided runs are gathered into a block first. The tail
// is copied lane by lane.
func LoadAVX2(dst *Register, src []byte, off, stride, count int) int {
	checkCursor("LoadAVX2", len(src), off, 4, stride, count)
	if count == 0 {
		return off
	}
	out := dst.Uint32s()[:count]
	s := unsafe.Pointer(&src[off])
	i := loadAVX2(out, s, stride)
	for ; i < count; i++ {
		out[i] = *(*uint32)(unsafe.Add(s, i*stride))
	}
	return off + count*stride
}

// LoadShuffleAVX2 is LoadShuffle4 with VPERMD doing the lane selection.
// For stride 8 one 512-bit span of pairs, and for stride 16 two of quads,
// are permuted and merged into eight lanes. Other strides use LoadAVX2's
// path.
func LoadShuffleAVX2(dst *Register, src []byte, off, stride, count int) int {
	checkCursor("LoadShuffleAVX2", len(src), off, 4, stride, count)
	if count == 0 {
		return off
	}
	out := dst.Uint32s()[:count]
	s := unsafe.Pointer(&src[off])

	// A step reads whole structs up to the start of element i+8, so it
	// runs only while that element exists.
	i := 0
	switch stride {
	case 8:
		idx := archsimd.LoadUint32x8(&permPairs)
		for ; i+8 < count; i += 8 {
			w := unsafe.Slice((*uint32)(unsafe.Add(s, 8*i)), 16)
			lo := archsimd.LoadUint32x8Slice(w[0:8]).Permute(idx)
			hi := archsimd.LoadUint32x8Slice(w[8:16]).Permute(idx)
			lo.SetHi(hi.GetLo()).StoreSlice(out[i:])
		}
	case 16:
		idx := archsimd.LoadUint32x8(&permQuads)
		sel := archsimd.LoadInt32x8Slice(mergeLow2).ToMask()
		for ; i+8 < count; i += 8 {
			w := unsafe.Slice((*uint32)(unsafe.Add(s, 16*i)), 32)
			p0 := archsimd.LoadUint32x8Slice(w[0:8]).Permute(idx)
			p1 := archsimd.LoadUint32x8Slice(w[8:16]).Permute(idx)
			p2 := archsimd.LoadUint32x8Slice(w[16:24]).Permute(idx)
			p3 := archsimd.LoadUint32x8Slice(w[24:32]).Permute(idx)
			lo := p0.Merge(p1, sel)
			hi := p2.Merge(p3, sel)
			lo.SetHi(hi.GetLo()).StoreSlice(out[i:])
		}
	default:
		i = loadAVX2(out, s, stride)
	}
	for ; i < count; i++ {
		out[i] = *(*uint32)(unsafe.Add(s, i*stride))
	}
	return off + count*stride
}

// loadAVX2 fills out in whole 8-lane steps and returns the number of lanes
// written.
func loadAVX2(out []uint32, s unsafe.Pointer, stride int) int {
	count := len(out)
	i := 0
	if stride == 4 {
		in := unsafe.Slice((*uint32)(s), count)
		for ; i+8 <= count; i += 8 {
			archsimd.LoadUint32x8Slice(in[i:]).StoreSlice(out[i:])
		}
		return i
	}
	var blk [8]uint32
	for ; i+8 <= count; i += 8 {
		gatherBlock(blk[:], s, i, stride)
		archsimd.LoadUint32x8(&blk).StoreSlice(out[i:])
	}
	return i
}
