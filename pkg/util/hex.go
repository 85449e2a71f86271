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
package util

// HexDigit returns the value of a given hexadecimal digit (in either case), or
// false if it is not a hexadecimal digit.
func HexDigit(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	//
	return 0, false
}

// HexByte returns the byte denoted by exactly two hexadecimal digits, or false
// if the given text is not of this form.
func HexByte(text string) (byte, bool) {
	if len(text) != 2 {
		return 0, false
	}
	//
	hi, ok1 := HexDigit(text[0])
	lo, ok2 := HexDigit(text[1])
	//
	return hi<<4 | lo, ok1 && ok2
}
