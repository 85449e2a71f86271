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

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a syntax error so that callers can distinguish failures
// programmatically, rather than by inspecting messages.
type ErrorKind uint

const (
	// EmptyExpression signals an expression with no text.
	EmptyExpression ErrorKind = iota
	// InvalidQuery signals a query which is neither a keyword nor of the form
	// "dst=src".
	InvalidQuery
	// UnsupportedDestination signals a left-hand side which is not a bare
	// register or memory reference.
	UnsupportedDestination
	// UnsupportedExpression signals text which is neither a register, a
	// constant nor an operator expression.
	UnsupportedExpression
	// UnsupportedOperand signals the left operand of a binary operator which is
	// neither a register nor a memory reference.
	UnsupportedOperand
	// UnsupportedAddress signals a memory reference whose address is not
	// supported.
	UnsupportedAddress
	// MissingLeftOperand signals a binary operator in first position.
	MissingLeftOperand
	// MissingRightOperand signals a binary operator in last position.
	MissingRightOperand
	// RightOperandMustBeConstant signals a right operand which is not a
	// literal constant.
	RightOperandMustBeConstant
	// ConstantTooLarge signals a constant outside the range of the target
	// architecture.
	ConstantTooLarge
	// MissingParenthesis signals an opening parenthesis which is never closed.
	MissingParenthesis
	// InvalidCall signals a function call without a name or an argument list.
	InvalidCall
	// UnterminatedString signals a string literal without closing quote.
	UnterminatedString
	// InvalidEscape signals a malformed "\xHH" escape within a string literal.
	InvalidEscape
	// MalformedArgumentSeparator signals an argument not followed by ',' or ')'.
	MalformedArgumentSeparator
	// InvalidOperand signals an argument which is not a valid constant.
	InvalidOperand
	// ExtraArgument signals text following the end of a function call.
	ExtraArgument
	// EmptyArgument signals an argument position with no content.
	EmptyArgument
	// InvalidByte signals a byte which is not exactly two hex digits.
	InvalidByte
	// UnsupportedRegister signals a name which is not a register of the target
	// architecture.
	UnsupportedRegister
)

var errorKindNames = []string{
	"empty expression",
	"invalid query",
	"unsupported destination",
	"unsupported expression",
	"unsupported operand",
	"unsupported address",
	"missing left operand",
	"missing right operand",
	"right operand must be constant",
	"constant too large",
	"missing parenthesis",
	"invalid call",
	"unterminated string",
	"invalid escape",
	"malformed argument separator",
	"invalid operand",
	"extra argument",
	"empty argument",
	"invalid byte",
	"unsupported register",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	//
	return fmt.Sprintf("unknown(%d)", uint(k))
}

// SyntaxError is a structured error which retains the span of the original
// string where an error occurred, along with its kind and an error message.
type SyntaxError struct {
	kind ErrorKind
	// Span of the string being parsed where error arose.
	span Span
	// Offending text
	text string
	// Error message being reported
	msg string
}

// NewSyntaxError constructs a syntax error of a given kind over a given span of
// some input string.  The offending text is extracted from the input.
func NewSyntaxError(kind ErrorKind, input string, span Span, msg string) *SyntaxError {
	return &SyntaxError{kind, span, span.Text(input), msg}
}

// Kind returns the kind of this error.
func (p *SyntaxError) Kind() ErrorKind {
	return p.kind
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Text returns the offending text.
func (p *SyntaxError) Text() string {
	return p.text
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d:%s", p.span.Start(), p.span.End(), p.Message())
}

// KindOf extracts the kind of a syntax error from an arbitrary error, provided
// one is wrapped within.
func KindOf(err error) (ErrorKind, bool) {
	var serr *SyntaxError
	//
	if errors.As(err, &serr) {
		return serr.kind, true
	}
	//
	return 0, false
}

// IsKind checks whether a given error is a syntax error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	//
	return ok && k == kind
}
