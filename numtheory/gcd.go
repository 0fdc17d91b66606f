/*

SPDX-Copyright: Copyright (c) The ETRU helpers Authors
SPDX-License-Identifier: Apache-2.0
Copyright 2026 The ETRU helpers Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

// Package numtheory implements the machine-integer number theory used by ETRU
// key generation: the extended Euclidean algorithm and trial-division
// primality tests over the rational and Eisenstein integers.
package numtheory

import (
	"math"

	"github.com/etru/helpers"
)

var errOverflow = &helpers.DomainError{Op: "egcd", Reason: "intermediate value overflows int64"}

// ExtendedGCD returns g = gcd(a, b) along with the Bézout coefficients x and y
// such that
//
//	a*x + b*y == g
//
// The result is normalized so that g >= 0. The bare recursion stops at
// (a, 1, 0) once b is 0, letting g carry the sign of a; ExtendedGCD instead
// negates the whole triple when g comes out negative. So ExtendedGCD(a, 0) is
// (a, 1, 0) for positive a but (-a, -1, 0) for negative a.
//
// gcd(0, 0) is undefined and, like any intermediate overflow of int64, is
// reported as a *helpers.DomainError.
func ExtendedGCD(a, b int64) (g, x, y int64, err error) {
	if a == 0 && b == 0 {
		return 0, 0, 0, &helpers.DomainError{Op: "egcd", Reason: "gcd(0, 0) is undefined"}
	}

	g, x, y, err = egcd(a, b)
	if err != nil {
		return 0, 0, 0, err
	}
	if g < 0 {
		if g == math.MinInt64 || x == math.MinInt64 || y == math.MinInt64 {
			return 0, 0, 0, errOverflow
		}
		g, x, y = -g, -x, -y
	}
	return g, x, y, nil
}

// egcd descends on (b, a mod b) until b is zero. Depth is O(log min(|a|, |b|)).
func egcd(a, b int64) (int64, int64, int64, error) {
	if b == 0 {
		return a, 1, 0, nil
	}

	q, r, ok := floorDivMod(a, b)
	if !ok {
		return 0, 0, 0, errOverflow
	}
	g, x1, y1, err := egcd(b, r)
	if err != nil {
		return 0, 0, 0, err
	}

	qy, ok := mul(q, y1)
	if !ok {
		return 0, 0, 0, errOverflow
	}
	y, ok := sub(x1, qy)
	if !ok {
		return 0, 0, 0, errOverflow
	}
	return g, y1, y, nil
}

// floorDivMod returns floor(a/b) and the remainder with the sign of b.
func floorDivMod(a, b int64) (q, r int64, ok bool) {
	if a == math.MinInt64 && b == -1 {
		return 0, 0, false
	}
	q, r = a/b, a%b
	if r != 0 && (r < 0) != (b < 0) {
		q--
		r += b
	}
	return q, r, true
}

func mul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	c := a * b
	return c, c/b == a
}

func sub(a, b int64) (int64, bool) {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) {
		return 0, false
	}
	return c, true
}
