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
package arch

import (
	"fmt"
	"slices"
	"strings"
)

// Register identifies a register of a given architecture.  The identifier is
// stable for a given architecture (i.e. it is the register's position in the
// architecture's register table), and is what a gadget database indexes by.
type Register struct {
	Id   uint
	Name string
}

func (r Register) String() string {
	return r.Name
}

// Architecture describes the read-only properties of a target which parsing
// depends upon: its word size, and the set of registers which can be named.
type Architecture struct {
	name string
	// Word size (in bits)
	bits uint
	// Register table, indexed by register id.
	registers []string
}

// NewArchitecture constructs a new architecture with a given name, word size
// and register table.  Registers are assigned identifiers in the order given.
func NewArchitecture(name string, bits uint, registers ...string) *Architecture {
	return &Architecture{name, bits, registers}
}

// Name returns the name of this architecture.
func (a *Architecture) Name() string {
	return a.name
}

// Bits returns the word size of this architecture.
func (a *Architecture) Bits() uint {
	return a.bits
}

// IsSupportedRegister checks whether a given name identifies a register of this
// architecture.
func (a *Architecture) IsSupportedRegister(name string) bool {
	return slices.Contains(a.registers, name)
}

// RegisterOf returns the register with the given name.  This panics if no such
// register exists, hence IsSupportedRegister should be checked first.
func (a *Architecture) RegisterOf(name string) Register {
	if id := slices.Index(a.registers, name); id >= 0 {
		return Register{uint(id), name}
	}
	//
	panic(fmt.Sprintf("unknown register \"%s\" for %s", name, a.name))
}

// Registers returns all registers of this architecture, ordered by id.
func (a *Architecture) Registers() []Register {
	regs := make([]Register, len(a.registers))
	//
	for i, name := range a.registers {
		regs[i] = Register{uint(i), name}
	}
	//
	return regs
}

// X86 is the 32-bit Intel architecture.
var X86 = NewArchitecture("x86", 32,
	"eax", "ebx", "ecx", "edx", "esi", "edi", "esp", "ebp", "eip")

// X64 is the 64-bit Intel architecture.
var X64 = NewArchitecture("x64", 64,
	"rax", "rbx", "rcx", "rdx", "rsi", "rdi", "rsp", "rbp", "rip",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15")

var architectures = []*Architecture{X86, X64}

// Lookup returns the architecture with a given name (ignoring case), if one
// exists.
func Lookup(name string) (*Architecture, bool) {
	for _, a := range architectures {
		if strings.EqualFold(a.name, name) {
			return a, true
		}
	}
	//
	return nil, false
}

// Names returns the names of all known architectures.
func Names() []string {
	names := make([]string, len(architectures))
	//
	for i, a := range architectures {
		names[i] = a.name
	}
	//
	return names
}
