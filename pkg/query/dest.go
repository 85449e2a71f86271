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
	"fmt"
	"math/big"

	"github.com/mmg1/ropium/pkg/arch"
)

// DestType identifies the shape of a query's destination.
type DestType uint8

// DEST_REG represents a register destination.
const DEST_REG DestType = 0

// DEST_MEM represents a register-relative memory destination.
const DEST_MEM DestType = 1

// DEST_CSTMEM represents a memory destination at a fixed address.
const DEST_CSTMEM DestType = 2

func (t DestType) String() string {
	switch t {
	case DEST_REG:
		return "REG"
	case DEST_MEM:
		return "MEM"
	case DEST_CSTMEM:
		return "CSTMEM"
	}
	//
	return fmt.Sprintf("dest(%d)", uint8(t))
}

// Dest represents the location assigned by a query.  The set of destinations is
// closed, and consists of RegDest, MemDest and ConstantMemDest.  As for Expr,
// destinations are immutable.
type Dest interface {
	// Type returns the tag identifying the shape of this destination.
	Type() DestType
	// String returns this destination in the syntax accepted by the parser.
	String() string
	//
	isDest()
}

// RegDest is a register.
type RegDest struct {
	Reg arch.Register
}

// MemDest is the memory at a register-relative address.
type MemDest struct {
	Base arch.Register
	Op   Binop
	Cst  big.Int
}

// ConstantMemDest is the memory at a fixed address.
type ConstantMemDest struct {
	Addr big.Int
}

// Type implementation for Dest interface.
func (d RegDest) Type() DestType { return DEST_REG }

// Type implementation for Dest interface.
func (d MemDest) Type() DestType { return DEST_MEM }

// Type implementation for Dest interface.
func (d ConstantMemDest) Type() DestType { return DEST_CSTMEM }

func (d RegDest) String() string {
	return d.Reg.Name
}

func (d MemDest) String() string {
	return fmt.Sprintf("mem(%s)", applyBinop(d.Base.Name, d.Op, &d.Cst))
}

func (d ConstantMemDest) String() string {
	return fmt.Sprintf("mem(%#x)", &d.Addr)
}

func (d RegDest) isDest()         {}
func (d MemDest) isDest()         {}
func (d ConstantMemDest) isDest() {}

// Reshape an expression into the destination it denotes, if it denotes one.
// Only bare registers and memory references (i.e. those whose outermost
// operation is "+0") are destinations.
func destOf(expr Expr) (Dest, bool) {
	switch e := expr.(type) {
	case RegBinopCst:
		if e.Op == ADD && e.Cst.Sign() == 0 {
			return RegDest{e.Reg}, true
		}
	case MemBinopCst:
		if e.Op == ADD && e.Cst.Sign() == 0 {
			return MemDest{e.Base, e.AddrOp, e.AddrCst}, true
		}
	case ConstantMem:
		return ConstantMemDest(e), true
	case Constant, Int80, Syscall:
	}
	//
	return nil, false
}
