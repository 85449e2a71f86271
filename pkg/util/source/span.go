// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package source

import "strings"

// Span represents a contiguous slice of the original input string.  Instead of
// representing this as a string slice, however, it is useful to retain the
// physical indices.  This allows errors to point at the offending text, and
// allows parsers to recurse over nested regions without reallocating.
type Span struct {
	// The first byte of this span in the original string.
	start int
	// One past the final byte of this span in the original string.
	end int
}

// NewSpan constructs a new span whilst checking the internal invariants are
// maintained.
func NewSpan(start int, end int) Span {
	if start > end {
		panic("invalid span")
	}

	return Span{start, end}
}

// Start returns the starting index of this span in the original string.
func (p Span) Start() int {
	return p.start
}

// End returns one past the last index of this span in the original string.
func (p Span) End() int {
	return p.end
}

// Length returns the number of bytes covered by this span in the original
// string.
func (p Span) Length() int {
	return p.end - p.start
}

// IsEmpty checks whether this span covers no text at all.
func (p Span) IsEmpty() bool {
	return p.start == p.end
}

// Sub returns the span covering the region [start,end) relative to the start
// of this span.
func (p Span) Sub(start int, end int) Span {
	if start < 0 || end > p.Length() {
		panic("sub-span out of bounds")
	}

	return NewSpan(p.start+start, p.start+end)
}

// Text extracts the text covered by this span from the original string.
func (p Span) Text(input string) string {
	return input[p.start:p.end]
}

// Trim returns the largest sub-span which neither starts nor ends with
// whitespace.
func (p Span) Trim(input string) Span {
	var (
		text    = p.Text(input)
		trimmed = strings.TrimLeft(text, " \t\r\n")
		start   = len(text) - len(trimmed)
	)
	//
	trimmed = strings.TrimRight(trimmed, " \t\r\n")
	//
	return p.Sub(start, start+len(trimmed))
}
