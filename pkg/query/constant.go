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
package query

import (
	"math/big"
	"strings"

	"github.com/mmg1/ropium/pkg/util"
)

// ParseConstant parses a token as an integer constant, trying decimal first,
// then hexadecimal (with or without a "0x" prefix) and, finally, binary (with
// or without a "0b" prefix).  If none of these succeed then None is returned.
// No range checking is performed.  Since "0b" consists of hex digits, a token
// such as "0b11" is read as hex (i.e. 0xb11).
func ParseConstant(token string) util.Option[big.Int] {
	var value big.Int
	//
	if _, ok := value.SetString(token, 10); ok {
		return util.Some(value)
	} else if value, ok := parsePrefixed(token, 16, "0x", "0X"); ok {
		return util.Some(value)
	} else if value, ok := parsePrefixed(token, 2, "0b", "0B"); ok {
		return util.Some(value)
	}
	//
	return util.None[big.Int]()
}

// Parse a (possibly signed) integer in a given base, where the digits may be
// preceded by one of the given prefixes.
func parsePrefixed(token string, base int, prefixes ...string) (big.Int, bool) {
	var (
		value  big.Int
		sign   string
		digits = token
	)
	//
	if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		sign, digits = digits[:1], digits[1:]
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(digits, prefix) {
			digits = digits[len(prefix):]
			break
		}
	}
	// Reject empty or doubly signed digits
	if digits == "" || digits[0] == '-' || digits[0] == '+' {
		return value, false
	}
	//
	_, ok := value.SetString(sign+digits, base)
	//
	return value, ok
}
