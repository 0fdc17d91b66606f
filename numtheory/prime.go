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

package numtheory

import (
	"math"
	"math/big"

	"github.com/etru/helpers"
)

// IsPrime reports whether n is prime by trial division with every i in
// [2, floor(sqrt(n))]. Values below 2, including 0, 1 and all negatives, are
// not prime.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	return noDivisor(n)
}

// IsPrimeLegacy reproduces the primality test of the original C++ helpers,
// whose empty loop range made every n < 4 prime, including 0, 1 and the
// negatives. Use it only to regenerate keys made with those helpers.
func IsPrimeLegacy(n int64) bool {
	if n < 4 {
		return true
	}
	return noDivisor(n)
}

func noDivisor(n int64) bool {
	limit := isqrt(n)
	for i := int64(2); i <= limit; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// isqrt returns floor(sqrt(n)) for n >= 0, correcting the float64 estimate.
func isqrt(n int64) int64 {
	u := uint64(n)
	r := uint64(math.Sqrt(float64(n)))
	for r*r > u {
		r--
	}
	for (r+1)*(r+1) <= u {
		r++
	}
	return int64(r)
}

// EisensteinNorm returns N(x + yω) = x² - xy + y². A norm outside the int64
// range is a *helpers.DomainError.
func EisensteinNorm(x, y int64) (int64, error) {
	bx, by := big.NewInt(x), big.NewInt(y)
	var n, t big.Int
	n.Mul(bx, bx)
	t.Mul(bx, by)
	n.Sub(&n, &t)
	t.Mul(by, by)
	n.Add(&n, &t)
	if !n.IsInt64() {
		return 0, &helpers.DomainError{Op: "norm", Reason: "norm of " + bx.String() + " + " + by.String() + "ω overflows int64"}
	}
	return n.Int64(), nil
}

// IsEisensteinPrime reports whether x + yω has a rational prime norm, which is
// sufficient for it to be prime in Z[ω]. Elements whose norm is not prime are
// reported as not prime even though some, such as 2, are.
func IsEisensteinPrime(x, y int64) (bool, error) {
	return eisensteinPrime(x, y, IsPrime)
}

// IsEisensteinPrimeLegacy is IsEisensteinPrime with the norm tested by
// IsPrimeLegacy, so units (norm 1) and zero are reported prime as they were by
// the original helpers.
func IsEisensteinPrimeLegacy(x, y int64) (bool, error) {
	return eisensteinPrime(x, y, IsPrimeLegacy)
}

func eisensteinPrime(x, y int64, test func(int64) bool) (bool, error) {
	n, err := EisensteinNorm(x, y)
	if err != nil {
		return false, err
	}
	return test(n), nil
}
