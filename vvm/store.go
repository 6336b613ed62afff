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

// StoreStream writes the first count elements of elemSize bytes from src to
// dst, starting at byte offset off and spaced stride bytes apart. It
// returns off+count*stride.
//
// stride may be negative or not a multiple of elemSize. The same bounds as
// LoadStream apply; violations panic.
func StoreStream(src *Register, dst []byte, off, elemSize, stride, count int) int {
	checkCursor("StoreStream", len(dst), off, elemSize, stride, count)
	if count == 0 {
		return off
	}
	if stride == elemSize {
		copy(dst[off:off+count*elemSize], src.b[:count*elemSize])
		return off + count*stride
	}

	s := unsafe.Pointer(&src.b[0])
	d := unsafe.Pointer(&dst[off])
	switch elemSize {
	case 1:
		for i := range count {
			*(*uint8)(unsafe.Add(d, i*stride)) = *(*uint8)(unsafe.Add(s, i))
		}
	case 2:
		for i := range count {
			*(*uint16)(unsafe.Add(d, i*stride)) = *(*uint16)(unsafe.Add(s, 2*i))
		}
	case 4:
		storeUnroll4(d, s, stride, count)
	case 8:
		for i := range count {
			*(*uint64)(unsafe.Add(d, i*stride)) = *(*uint64)(unsafe.Add(s, 8*i))
		}
	default:
		for i := range count {
			p := off + i*stride
			copy(dst[p:p+elemSize], src.b[i*elemSize:(i+1)*elemSize])
		}
	}
	return off + count*stride
}

// Store is StoreStream with stride == elemSize. It returns
// off+count*elemSize.
func Store(src *Register, dst []byte, off, elemSize, count int) int {
	checkCursor("Store", len(dst), off, elemSize, elemSize, count)
	n := count * elemSize
	copy(dst[off:off+n], src.b[:n])
	return off + n
}
