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
	"strings"

	"github.com/mmg1/ropium/pkg/arch"
	"github.com/mmg1/ropium/pkg/util/source"
)

// Context provides the (read-only) properties of the target architecture which
// parsing depends upon.
type Context interface {
	// Bits returns the word size of the target.
	Bits() uint
	// IsSupportedRegister checks whether a name identifies a register.
	IsSupportedRegister(name string) bool
	// RegisterOf returns the register with a given (supported) name.
	RegisterOf(name string) arch.Register
}

// ParseExpression parses one side of a query into one of the expression shapes
// CST, REG_BINOP_CST, MEM_BINOP_CST or CSTMEM.  The context determines which
// register names are recognised, and bounds the constants which may appear as
// right operands.
func ParseExpression(input string, ctx Context) (Expr, error) {
	p := newParser(input, ctx)
	//
	expr, err := p.parseExpr(source.NewSpan(0, len(input)))
	//
	if err != nil {
		return nil, err
	}
	//
	return expr, nil
}

// Parser for expressions over a given input string.  Subexpressions are
// identified by their span in the input, rather than by being sliced out.
type parser struct {
	input string
	ctx   Context
	// One more than the largest permitted right operand.
	limit big.Int
}

func newParser(input string, ctx Context) *parser {
	p := &parser{input: input, ctx: ctx}
	p.limit.Lsh(big.NewInt(1), ctx.Bits())
	//
	return p
}

func (p *parser) parseExpr(span source.Span) (Expr, *source.SyntaxError) {
	if span.IsEmpty() {
		return nil, p.syntaxError(source.EmptyExpression, span, "empty expression")
	}
	// Is it a memory reference?
	if address, ok, err := p.parseMemoryForm(span); err != nil {
		return nil, err
	} else if ok {
		return p.parseMemory(address)
	}
	// Is it a binary operation?
	if index, op, ok := p.findBinop(span); ok {
		return p.parseBinop(span, index, op)
	}
	//
	text := span.Text(p.input)
	// Is it a register?
	if p.ctx.IsSupportedRegister(text) {
		return RegBinopCst{p.ctx.RegisterOf(text), ADD, big.Int{}}, nil
	}
	// Is it a constant?
	if value, ok := ParseConstant(text).Get(); ok {
		return Constant{value}, nil
	}
	//
	return nil, p.syntaxError(source.UnsupportedExpression, span,
		fmt.Sprintf("expression not supported: %s", text))
}

// Parse the address of a memory reference, producing either a register-relative
// load or a load from a fixed address.
func (p *parser) parseMemory(address source.Span) (Expr, *source.SyntaxError) {
	expr, err := p.parseExpr(address)
	//
	if err != nil {
		// Not an expression, but perhaps still a constant?
		if value, ok := ParseConstant(address.Text(p.input)).Get(); ok {
			return ConstantMem{value}, nil
		}
		//
		return nil, p.syntaxError(source.UnsupportedAddress, address,
			fmt.Sprintf("invalid or unsupported address (%s)", err.Message()))
	}
	//
	switch e := expr.(type) {
	case RegBinopCst:
		return MemBinopCst{e.Reg, e.Op, e.Cst, ADD, big.Int{}}, nil
	case Constant:
		return ConstantMem{e.Value}, nil
	default:
		return nil, p.syntaxError(source.UnsupportedAddress, address,
			fmt.Sprintf("address not supported: %s", address.Text(p.input)))
	}
}

// Parse a binary operation whose operator is at the given index.
func (p *parser) parseBinop(span source.Span, index int, op Binop) (Expr, *source.SyntaxError) {
	var (
		operator = source.NewSpan(index, index+1)
		lhs      = source.NewSpan(span.Start(), index)
		rhs      = source.NewSpan(index+1, span.End())
	)
	// Check for both operands
	if rhs.IsEmpty() {
		return nil, p.syntaxError(source.MissingRightOperand, operator, "missing right operand")
	} else if lhs.IsEmpty() {
		return nil, p.syntaxError(source.MissingLeftOperand, operator, "missing left operand")
	}
	// Check right operand is a (sufficiently small) constant
	cst, ok := ParseConstant(rhs.Text(p.input)).Get()
	//
	if !ok {
		return nil, p.syntaxError(source.RightOperandMustBeConstant, rhs,
			fmt.Sprintf("only constants can be used as right operands (got '%s')", rhs.Text(p.input)))
	} else if cst.CmpAbs(&p.limit) > 0 {
		return nil, p.syntaxError(source.ConstantTooLarge, rhs,
			fmt.Sprintf("constant %s is too big", rhs.Text(p.input)))
	}
	// Parse left operand as either a register or memory reference.
	text := lhs.Text(p.input)
	//
	if p.ctx.IsSupportedRegister(text) {
		return RegBinopCst{p.ctx.RegisterOf(text), op, cst}, nil
	} else if address, ok, err := p.parseMemoryForm(lhs); err != nil {
		return nil, err
	} else if ok {
		expr, err := p.parseExpr(address)
		//
		if err != nil {
			return nil, err
		} else if e, ok := expr.(RegBinopCst); ok {
			return MemBinopCst{e.Reg, e.Op, e.Cst, op, cst}, nil
		}
		//
		return nil, p.syntaxError(source.UnsupportedAddress, address,
			fmt.Sprintf("address not supported: %s", address.Text(p.input)))
	}
	//
	return nil, p.syntaxError(source.UnsupportedOperand, lhs, fmt.Sprintf("operand not supported: %s", text))
}

// Check whether a given span is a memory reference "mem(...)" in its entirety,
// and return the span of its address if so.  A "mem(" whose parenthesis is
// never closed is an error, whilst one whose parenthesis closes before the end
// of the span is simply not a memory reference.
func (p *parser) parseMemoryForm(span source.Span) (source.Span, bool, *source.SyntaxError) {
	const prefix = "mem("
	//
	if !strings.HasPrefix(span.Text(p.input), prefix) {
		return span, false, nil
	}
	//
	depth := 0
	//
	for i := span.Start() + len(prefix) - 1; i < span.End(); i++ {
		switch p.input[i] {
		case '(':
			depth++
		case ')':
			if depth--; depth == 0 {
				if i != span.End()-1 {
					return span, false, nil
				}
				//
				return source.NewSpan(span.Start()+len(prefix), i), true, nil
			}
		}
	}
	//
	return span, false, p.syntaxError(source.MissingParenthesis, span,
		fmt.Sprintf("missing parenthesis after %s", span.Text(p.input)))
}

// Find the rightmost binary operator in a given span which is not enclosed in
// parentheses.
func (p *parser) findBinop(span source.Span) (int, Binop, bool) {
	depth := 0
	//
	for i := span.End() - 1; i >= span.Start(); i-- {
		c := p.input[i]
		//
		switch {
		case c == ')':
			depth++
		case c == '(':
			depth = max(depth-1, 0)
		case depth == 0:
			if op, ok := binopOf(c); ok {
				return i, op, true
			}
		}
	}
	//
	return 0, 0, false
}

func (p *parser) syntaxError(kind source.ErrorKind, span source.Span, msg string) *source.SyntaxError {
	return source.NewSyntaxError(kind, p.input, span, msg)
}
