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

package base7

import (
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/etru/helpers"
	"github.com/etru/helpers/bigint"
)

// EncodeMessage reads the UTF-8 bytes of text as a big-endian unsigned integer
// and returns it in base 7. The empty message encodes as "0". When maxDigits is
// positive, a longer encoding is a *helpers.DomainError; the caller is expected
// to split the message into blocks.
func EncodeMessage(text string, maxDigits int) (string, error) {
	x := bigint.FromBig(new(big.Int).SetBytes([]byte(text)))
	s, err := format(x)
	if err != nil {
		return "", err
	}
	if maxDigits > 0 && len(s) > maxDigits {
		return "", &helpers.DomainError{
			Op:     "encode",
			Reason: fmt.Sprintf("message needs %d digits, limit is %d", len(s), maxDigits),
		}
	}
	return s, nil
}

// DecodeMessage is the inverse of EncodeMessage. The digits must form a
// non-negative base 7 numeral whose value is valid UTF-8.
func DecodeMessage(digits string) (string, error) {
	x, err := parse(digits)
	if err != nil {
		return "", err
	}
	if x.IsNegative() {
		return "", &helpers.ParseError{Input: digits, Pos: 0, Reason: "message numeral is negative"}
	}

	b := x.Big().Bytes()
	if !utf8.Valid(b) {
		return "", &helpers.ParseError{Input: digits, Pos: -1, Reason: "decoded bytes are not valid UTF-8"}
	}
	return string(b), nil
}
