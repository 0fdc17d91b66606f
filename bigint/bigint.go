/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC
Modifications copyright 2026 The ETRU helpers Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

// Package bigint wraps math/big.Int as an immutable value type with the small
// set of operations the base converters need: decimal parsing, sign
// inspection, division by a small divisor and radix digit expansion.
package bigint

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/etru/helpers"
)

// MaxRadix is the largest radix supported by FromDigits and Digits.
const MaxRadix = 65536

// Int is an arbitrary-precision integer. The zero value is 0.
// Methods never modify the receiver; every result is a fresh value.
type Int struct {
	v *big.Int
}

// Zero is the integer 0.
var Zero = Int{}

func (x Int) val() *big.Int {
	if x.v == nil {
		return new(big.Int)
	}
	return x.v
}

// FromBig returns an Int holding a copy of b.
func FromBig(b *big.Int) Int {
	return Int{v: new(big.Int).Set(b)}
}

// Parse reads an optionally signed decimal numeral. Leading zeros are
// accepted and dropped. An empty string, a bare sign or any character other
// than an ASCII digit after the sign yields a *helpers.ParseError.
func Parse(s string) (Int, error) {
	if s == "" {
		return Zero, &helpers.ParseError{Input: s, Pos: -1, Reason: "empty numeral"}
	}

	digits, off := s, 0
	if s[0] == '-' || s[0] == '+' {
		digits, off = s[1:], 1
	}
	if digits == "" {
		return Zero, &helpers.ParseError{Input: s, Pos: -1, Reason: "sign without digits"}
	}

	if _, err := helpers.Decimal.Encode(digits); err != nil {
		var pe *helpers.ParseError
		if errors.As(err, &pe) {
			return Zero, &helpers.ParseError{Input: s, Pos: pe.Pos + off, Reason: pe.Reason}
		}
		return Zero, err
	}

	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Zero, &helpers.ParseError{Input: s, Pos: -1, Reason: "not a decimal numeral"}
	}
	return Int{v: x}, nil
}

// Sign returns -1, 0 or +1.
func (x Int) Sign() int {
	return x.val().Sign()
}

// IsZero reports whether x == 0.
func (x Int) IsZero() bool {
	return x.Sign() == 0
}

// IsNegative reports whether x < 0. Zero is never negative.
func (x Int) IsNegative() bool {
	return x.Sign() < 0
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return Int{v: new(big.Int).Abs(x.val())}
}

// Neg returns -x.
func (x Int) Neg() Int {
	return Int{v: new(big.Int).Neg(x.val())}
}

// Big returns a copy of x as a *big.Int.
func (x Int) Big() *big.Int {
	return new(big.Int).Set(x.val())
}

// DivModSmall divides x by d and returns the quotient and the Euclidean
// remainder, which always lies in [0, d). A zero divisor is a
// *helpers.DomainError.
func (x Int) DivModSmall(d uint) (Int, uint, error) {
	if d == 0 {
		return Zero, 0, &helpers.DomainError{Op: "divmod", Reason: "division by zero"}
	}
	var q, m big.Int
	q.DivMod(x.val(), new(big.Int).SetUint64(uint64(d)), &m)
	return Int{v: &q}, uint(m.Uint64()), nil
}

// MulAddSmall returns x*m + a.
func (x Int) MulAddSmall(m, a uint) Int {
	var r big.Int
	r.Mul(x.val(), new(big.Int).SetUint64(uint64(m)))
	r.Add(&r, new(big.Int).SetUint64(uint64(a)))
	return Int{v: &r}
}

// String renders x as a canonical decimal numeral: no leading zeros and a
// "-" prefix only for negative values.
func (x Int) String() string {
	return x.val().String()
}

// FromDigits constructs an Int from an array of uint16, where each element represents
// one digit in the given radix. The array is arranged with the most significant digit in element 0,
// down to the least significant digit in element len-1. An empty array is 0.
func FromDigits(s []uint16, radix uint64) (Int, error) {
	if err := checkRadix(radix); err != nil {
		return Zero, err
	}

	maxv := radix - 1
	x := Zero
	for i, v := range s {
		if uint64(v) > maxv {
			return Zero, fmt.Errorf("value at %d out of range: got %d - expected 0..%d", i, v, maxv)
		}
		x = x.MulAddSmall(uint(radix), uint(v))
	}
	return x, nil
}

// Digits returns the digits of |x| in the given radix, most significant digit
// in element 0. Zero has the single digit 0.
func (x Int) Digits(radix uint64) ([]uint16, error) {
	if err := checkRadix(radix); err != nil {
		return nil, err
	}

	var r []uint16
	v := x.Abs()
	for {
		q, m, err := v.DivModSmall(uint(radix))
		if err != nil {
			return nil, err
		}
		r = append(r, uint16(m))
		v = q
		if v.IsZero() {
			break
		}
	}
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return r, nil
}

func checkRadix(radix uint64) error {
	if radix < 2 || radix > MaxRadix {
		return &helpers.DomainError{Op: "radix", Reason: fmt.Sprintf("radix %d not in [2..%d]", radix, MaxRadix)}
	}
	return nil
}
