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

import "unsafe"

// LoadStream reads count elements of elemSize bytes from src, starting at
// byte offset off and spaced stride bytes apart, and packs them
// contiguously into dst starting at offset 0. It returns off+count*stride.
//
// stride may be negative or not a multiple of elemSize. count*elemSize
// must not exceed RegisterSize and every element must lie inside src;
// violations panic.
func LoadStream(dst *Register, src []byte, off, elemSize, stride, count int) int {
	checkCursor("LoadStream", len(src), off, elemSize, stride, count)
	if count == 0 {
		return off
	}
	if stride == elemSize {
		copy(dst.b[:count*elemSize], src[off:off+count*elemSize])
		return off + count*stride
	}

	d := unsafe.Pointer(&dst.b[0])
	s := unsafe.Pointer(&src[off])
	switch elemSize {
	case 1:
		for i := range count {
			*(*uint8)(unsafe.Add(d, i)) = *(*uint8)(unsafe.Add(s, i*stride))
		}
	case 2:
		for i := range count {
			*(*uint16)(unsafe.Add(d, 2*i)) = *(*uint16)(unsafe.Add(s, i*stride))
		}
	case 4:
		loadUnroll4(d, s, stride, count)
	case 8:
		for i := range count {
			*(*uint64)(unsafe.Add(d, 8*i)) = *(*uint64)(unsafe.Add(s, i*stride))
		}
	default:
		for i := range count {
			p := off + i*stride
			copy(dst.b[i*elemSize:(i+1)*elemSize], src[p:p+elemSize])
		}
	}
	return off + count*stride
}

// Load is LoadStream with stride == elemSize: count elements are read
// sequentially from src[off:]. It returns off+count*elemSize.
func Load(dst *Register, src []byte, off, elemSize, count int) int {
	checkCursor("Load", len(src), off, elemSize, elemSize, count)
	n := count * elemSize
	copy(dst.b[:n], src[off:off+n])
	return off + n
}
