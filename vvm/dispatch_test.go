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

import "testing"

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestDispatchLevelSupports(t *testing.T) {
	tests := []struct {
		have, req DispatchLevel
		want      bool
	}{
		{DispatchScalar, DispatchScalar, true},
		{DispatchScalar, DispatchSSE2, false},
		{DispatchSSE2, DispatchSSE2, true},
		{DispatchSSE2, DispatchAVX2, false},
		{DispatchAVX2, DispatchSSE2, true},
		{DispatchAVX512, DispatchAVX2, true},
		{DispatchAVX512, DispatchNEON, false},
		{DispatchNEON, DispatchScalar, true},
		{DispatchNEON, DispatchNEON, true},
		{DispatchNEON, DispatchSSE2, false},
	}
	for _, tt := range tests {
		if got := tt.have.Supports(tt.req); got != tt.want {
			t.Errorf("%v.Supports(%v) = %v, want %v", tt.have, tt.req, got, tt.want)
		}
	}
}

func TestCurrentLevel(t *testing.T) {
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, CurrentLevel() = %v", CurrentName(), CurrentLevel())
	}
	if !CurrentLevel().Supports(DispatchScalar) {
		t.Error("current level must support scalar code")
	}
	t.Logf("dispatch level: %s", CurrentName())
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"0", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv("VVM_NO_SIMD", tt.val)
			if got := NoSimdEnv(); got != tt.want {
				t.Errorf("NoSimdEnv() with %q = %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}
