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

// AssignType identifies the shape of an expression assigned by a query.
type AssignType uint8

// CST represents a bare constant.
const CST AssignType = 0

// REG_BINOP_CST represents a register combined with a constant.
const REG_BINOP_CST AssignType = 1

// MEM_BINOP_CST represents a value loaded from a register-relative address,
// combined with a constant.
const MEM_BINOP_CST AssignType = 2

// CSTMEM represents a value loaded from a constant address.
const CSTMEM AssignType = 3

// INT80 represents the "int 0x80" interrupt.
const INT80 AssignType = 4

// SYSCALL represents the "syscall" instruction.
const SYSCALL AssignType = 5

func (t AssignType) String() string {
	switch t {
	case CST:
		return "CST"
	case REG_BINOP_CST:
		return "REG_BINOP_CST"
	case MEM_BINOP_CST:
		return "MEM_BINOP_CST"
	case CSTMEM:
		return "CSTMEM"
	case INT80:
		return "INT80"
	case SYSCALL:
		return "SYSCALL"
	}
	//
	return fmt.Sprintf("assign(%d)", uint8(t))
}

// Expr represents a parsed expression.  The set of expressions is closed, and
// consists of Constant, RegBinopCst, MemBinopCst, ConstantMem, Int80 and
// Syscall.  Constants are held by value, and copies of an expression share
// their backing words.  Hence, expressions are immutable and constants must be
// copied (e.g. with new(big.Int).Set) before any arithmetic.
type Expr interface {
	// Type returns the tag identifying the shape of this expression.
	Type() AssignType
	// String returns this expression in the syntax accepted by the parser.
	String() string
	//
	isExpr()
}

// Constant is a bare constant.
type Constant struct {
	Value big.Int
}

// RegBinopCst applies a binary operation with a constant to a register.
type RegBinopCst struct {
	Reg arch.Register
	Op  Binop
	Cst big.Int
}

// MemBinopCst applies a binary operation with a constant to a value loaded from
// memory, where the address is itself a register combined with a constant.
type MemBinopCst struct {
	// Address
	Base    arch.Register
	AddrOp  Binop
	AddrCst big.Int
	// Operation applied to loaded value
	Op  Binop
	Cst big.Int
}

// ConstantMem is a value loaded from a fixed address.
type ConstantMem struct {
	Addr big.Int
}

// Int80 is the special form "int80".
type Int80 struct{}

// Syscall is the special form "syscall".
type Syscall struct{}

// Type implementation for Expr interface.
func (e Constant) Type() AssignType { return CST }

// Type implementation for Expr interface.
func (e RegBinopCst) Type() AssignType { return REG_BINOP_CST }

// Type implementation for Expr interface.
func (e MemBinopCst) Type() AssignType { return MEM_BINOP_CST }

// Type implementation for Expr interface.
func (e ConstantMem) Type() AssignType { return CSTMEM }

// Type implementation for Expr interface.
func (e Int80) Type() AssignType { return INT80 }

// Type implementation for Expr interface.
func (e Syscall) Type() AssignType { return SYSCALL }

func (e Constant) String() string {
	return e.Value.String()
}

func (e RegBinopCst) String() string {
	return applyBinop(e.Reg.Name, e.Op, &e.Cst)
}

func (e MemBinopCst) String() string {
	mem := fmt.Sprintf("mem(%s)", applyBinop(e.Base.Name, e.AddrOp, &e.AddrCst))
	return applyBinop(mem, e.Op, &e.Cst)
}

func (e ConstantMem) String() string {
	return fmt.Sprintf("mem(%#x)", &e.Addr)
}

func (e Int80) String() string {
	return "int80"
}

func (e Syscall) String() string {
	return "syscall"
}

func (e Constant) isExpr()    {}
func (e RegBinopCst) isExpr() {}
func (e MemBinopCst) isExpr() {}
func (e ConstantMem) isExpr() {}
func (e Int80) isExpr()       {}
func (e Syscall) isExpr()     {}

// Render an operand combined with a constant, omitting the identity "+0".
func applyBinop(operand string, op Binop, cst *big.Int) string {
	if op == ADD && cst.Sign() == 0 {
		return operand
	}
	//
	return fmt.Sprintf("%s%s%d", operand, op, cst)
}
