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
package constraint

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mmg1/ropium/pkg/arch"
	"github.com/mmg1/ropium/pkg/util"
	"github.com/mmg1/ropium/pkg/util/source"
)

// ParseBadBytes parses a comma-separated list of bytes which gadget addresses
// must avoid, such as "00,0A,ff".  Each byte must consist of exactly two hex
// digits.
func ParseBadBytes(input string) ([]byte, error) {
	var bytes []byte
	//
	for _, item := range split(input) {
		text := item.Text(input)
		//
		if item.IsEmpty() {
			return nil, source.NewSyntaxError(source.EmptyArgument, input, item, "missing bad byte after ','")
		} else if b, ok := util.HexByte(text); ok {
			bytes = append(bytes, b)
		} else {
			return nil, source.NewSyntaxError(source.InvalidByte, input, item,
				fmt.Sprintf("'%s' is not a valid byte", text))
		}
	}
	//
	return bytes, nil
}

// Registers provides the set of register names recognised when parsing lists
// of registers.
type Registers interface {
	IsSupportedRegister(name string) bool
	RegisterOf(name string) arch.Register
}

// ParseKeepRegs parses a comma-separated list of registers which gadgets must
// not clobber, such as "rax,rcx,rdi".  The result contains each register once,
// in order of first appearance.
func ParseKeepRegs(input string, registers Registers) ([]arch.Register, error) {
	var regs []arch.Register
	//
	for _, item := range split(input) {
		name := item.Text(input)
		//
		if !registers.IsSupportedRegister(name) {
			return nil, source.NewSyntaxError(source.UnsupportedRegister, input, item,
				fmt.Sprintf("'%s' is not a valid register", name))
		} else if reg := registers.RegisterOf(name); !slices.Contains(regs, reg) {
			regs = append(regs, reg)
		}
	}
	//
	return regs, nil
}

// Split a comma-separated list into the spans of its items.
func split(input string) []source.Span {
	var (
		spans []source.Span
		start = 0
	)
	//
	for {
		end := strings.IndexByte(input[start:], ',')
		//
		if end < 0 {
			return append(spans, source.NewSpan(start, len(input)))
		}
		//
		spans = append(spans, source.NewSpan(start, start+end))
		start += end + 1
	}
}
