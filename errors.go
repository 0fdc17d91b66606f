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

package helpers

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("malformed numeral")

	// ErrDomain is matched by every *DomainError.
	ErrDomain = errors.New("input outside domain")
)

// ParseError reports an input string that is not a well-formed numeral in the
// expected base. Pos is the rune offset of the offending character, or -1 when
// the input as a whole is at fault (empty, bare sign).
type ParseError struct {
	Input  string
	Pos    int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("parse %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("parse %q: %s at position %d", e.Input, e.Reason, e.Pos)
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// DomainError reports a mathematically undefined input, or a result that does
// not fit the machine integer range.
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// Is reports whether target is ErrDomain.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}
