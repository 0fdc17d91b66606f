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

// Package base7 converts arbitrary-precision integers between their decimal
// and base 7 numeral forms, and encodes text messages as base 7 digit strings
// for the ETRU ring R_p.
package base7

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etru/helpers"
	"github.com/etru/helpers/bigint"
)

const radix = 7

// ToBase7 converts an optionally signed decimal numeral to its canonical base 7
// form: digits '0'..'6', most significant first, no leading zeros, and a "-"
// prefix for negative values. Malformed input yields a *helpers.ParseError.
func ToBase7(decimal string) (string, error) {
	x, err := bigint.Parse(decimal)
	if err != nil {
		return "", err
	}
	return format(x)
}

func format(x bigint.Int) (string, error) {
	ds, err := x.Digits(radix)
	if err != nil {
		return "", err
	}
	s, err := helpers.Septenary.Decode(ds)
	if err != nil {
		return "", err
	}
	if x.IsNegative() {
		return "-" + s, nil
	}
	return s, nil
}

// FromBase7 converts a base 7 numeral, optionally prefixed by "-", to its
// canonical decimal form. Negative zero is rendered as "0".
func FromBase7(s string) (string, error) {
	x, err := parse(s)
	if err != nil {
		return "", err
	}
	return x.String(), nil
}

func parse(s string) (bigint.Int, error) {
	digits, off := s, 0
	neg := strings.HasPrefix(s, "-")
	if neg {
		digits, off = s[1:], 1
	}
	if digits == "" {
		reason := "empty numeral"
		if off > 0 {
			reason = "sign without digits"
		}
		return bigint.Zero, &helpers.ParseError{Input: s, Pos: -1, Reason: reason}
	}

	ds, err := helpers.Septenary.Encode(digits)
	if err != nil {
		var pe *helpers.ParseError
		if errors.As(err, &pe) {
			return bigint.Zero, &helpers.ParseError{Input: s, Pos: pe.Pos + off, Reason: pe.Reason}
		}
		return bigint.Zero, err
	}

	acc, err := bigint.FromDigits(ds, radix)
	if err != nil {
		return bigint.Zero, err
	}
	if neg {
		acc = acc.Neg()
	}
	return acc, nil
}

// Element is the Eisenstein integer X + Yω.
type Element struct {
	X int64 `json:"x" yaml:"x"`
	Y int64 `json:"y" yaml:"y"`
}

func (e Element) String() string {
	return fmt.Sprintf("%d%+dω", e.X, e.Y)
}

// Ring lists the elements of R_p = {0, ±1, ±ω, ±(1+ω)} indexed by base 7 digit.
var Ring = [radix]Element{
	{0, 0},
	{1, 0},
	{-1, 0},
	{0, 1},
	{0, -1},
	{1, 1},
	{-1, -1},
}

// Digits returns the ordinal of every digit of an unsigned base 7 numeral,
// most significant first. Each ordinal indexes Ring.
func Digits(s string) ([]uint16, error) {
	if s == "" {
		return nil, &helpers.ParseError{Input: s, Pos: -1, Reason: "empty numeral"}
	}
	return helpers.Septenary.Encode(s)
}

// ToRing maps an unsigned base 7 numeral to its sequence of R_p elements.
func ToRing(s string) ([]Element, error) {
	ds, err := Digits(s)
	if err != nil {
		return nil, err
	}
	es := make([]Element, len(ds))
	for i, d := range ds {
		es[i] = Ring[d]
	}
	return es, nil
}

// FromRing is the inverse of ToRing. An element outside R_p is a
// *helpers.ParseError at its index.
func FromRing(es []Element) (string, error) {
	ds := make([]uint16, len(es))
	for i, e := range es {
		d, ok := ringIndex(e)
		if !ok {
			return "", &helpers.ParseError{Input: fmt.Sprint(es), Pos: i, Reason: fmt.Sprintf("%s is not in R_p", e)}
		}
		ds[i] = d
	}
	return helpers.Septenary.Decode(ds)
}

func ringIndex(e Element) (uint16, bool) {
	for i, r := range Ring {
		if r == e {
			return uint16(i), true
		}
	}
	return 0, false
}
