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

// Package math provides transcendental functions over vvm registers.
//
// # Accuracy
//
// SinFloat and CosFloat evaluate in double precision and round once to
// float32. For every finite input the result differs from the float64
// math.Sin (math.Cos) of the same input by at most SinMaxRelError relative
// error. Special values:
//   - Sin(±0) = ±0
//   - Sin(±Inf) = Cos(±Inf) = NaN
//   - Sin(NaN) = Cos(NaN) = NaN
package math
