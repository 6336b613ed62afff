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

// SinMaxRelError is the documented relative error bound of SinFloat and
// CosFloat against a float64 reference: one float32 ulp at 1.0 (2^-23).
const SinMaxRelError = 1.0 / (1 << 23)

// reduceLimit bounds the inputs handled by the inline Cody-Waite reduction.
// k = round(x*2/pi) stays below 2^20, so k times each 33-bit piece of pi/2
// is exact in float64.
const reduceLimit = 1 << 20

// pi/2 split into 33-bit pieces (fdlibm rem_pio2).
const (
	pio2_1  = 1.57079632673412561417e+00
	pio2_2  = 6.07710050630396597660e-11
	pio2_3  = 2.02226624871116645580e-21
	pio2_3t = 8.47842766036889956997e-32

	twoOverPi = 6.36619772367581382433e-01
	pio4      = 7.85398163397448278999e-01
)

// Kernel coefficients on [-pi/4, pi/4] (fdlibm k_sin / k_cos).
const (
	sinS1 = -1.66666666666666324348e-01
	sinS2 = 8.33333333332248946124e-03
	sinS3 = -1.98412698298579493134e-04
	sinS4 = 2.75573137070700676789e-06
	sinS5 = -2.50507602534068634195e-08
	sinS6 = 1.58969099521155010221e-10

	cosC1 = 4.16666666666666019037e-02
	cosC2 = -1.38888888888741095749e-03
	cosC3 = 2.48015872894767294178e-05
	cosC4 = -2.75573143513906633035e-07
	cosC5 = 2.08757232129817482790e-09
	cosC6 = -1.13596475577881948265e-11
)
