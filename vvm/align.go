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

// alignedBytes allocates a zeroed byte slice of the given size whose first
// element sits on an Alignment boundary. The slack before the boundary is
// never handed out.
func alignedBytes(size int) []byte {
	buf := make([]byte, size+Alignment-1)
	ptr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	offset := 0
	if mod := int(ptr % Alignment); mod != 0 {
		offset = Alignment - mod
	}
	return buf[offset : offset+size : offset+size]
}

func isAligned(p unsafe.Pointer) bool {
	return uintptr(p)%Alignment == 0
}
