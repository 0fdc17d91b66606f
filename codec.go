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

package helpers

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// maxRadix is the largest alphabet a Codec supports; ordinals are uint16.
const maxRadix = 65536

var (
	// Decimal is the digit alphabet of base 10 numerals.
	Decimal = mustCodec("0123456789")

	// Septenary is the digit alphabet of base 7 numerals. The ordinal of each
	// digit is also its index into the ETRU ring R_p.
	Septenary = mustCodec("0123456")
)

// Codec supports the conversion of an arbitrary alphabet into ordinal
// values from 0 to length of alphabet-1.
// Element 'rtu' (rune-to-uint16) supports the mapping from runes to ordinal values.
// Element 'utr' (uint16-to-rune) supports the mapping from ordinal values to runes.
type Codec struct {
	rtu map[rune]uint16
	utr []rune
}

// NewCodec builds a Codec from the set of unique characters taken from the string s.
// The string contains arbitrary Utf-8 characters.
// It is an error to try to construct a codec from an alphabet with more the 65536 characters.
func NewCodec(s string) (Codec, error) {
	var ret Codec
	ret.rtu = make(map[rune]uint16)
	ret.utr = make([]rune, 0, utf8.RuneCountInString(s))

	for _, rv := range s {
		// duplicates are tolerated, but ignored.
		if _, ok := ret.rtu[rv]; ok {
			continue
		}
		if len(ret.utr) == maxRadix {
			return ret, fmt.Errorf("alphabet must contain no more than %d characters", maxRadix)
		}
		ret.rtu[rv] = uint16(len(ret.utr))
		ret.utr = append(ret.utr, rv)
	}
	return ret, nil
}

func mustCodec(s string) Codec {
	c, err := NewCodec(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Radix returns the size of the alphabet supported by the Codec.
func (a *Codec) Radix() int {
	return len(a.utr)
}

// Encode the supplied string as an array of ordinal values giving the
// position of each character in the alphabet.
// A character outside the alphabet yields a *ParseError carrying its position.
func (a *Codec) Encode(s string) ([]uint16, error) {
	ret := make([]uint16, 0, utf8.RuneCountInString(s))
	i := 0
	for _, rv := range s {
		v, ok := a.rtu[rv]
		if !ok {
			return ret, &ParseError{Input: s, Pos: i, Reason: fmt.Sprintf("character %q is not a digit", rv)}
		}
		ret = append(ret, v)
		i++
	}
	return ret, nil
}

// Decode constructs a string from an array of ordinal values where each
// value specifies the position of the character in the alphabet.
// It is an error for the array to contain values outside the boundary of the
// alphabet.
func (a *Codec) Decode(n []uint16) (string, error) {
	var sb strings.Builder
	sb.Grow(len(n))
	for i, v := range n {
		if int(v) > len(a.utr)-1 {
			return sb.String(), fmt.Errorf("numeral at position %d out of range: %d not in [0..%d]", i, v, len(a.utr)-1)
		}
		sb.WriteRune(a.utr[v])
	}
	return sb.String(), nil
}
