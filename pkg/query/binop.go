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

import "fmt"

// Binop identifies one of the binary operations which can be applied to a
// register or memory value in a query.  The right operand of a binary operation
// is always a constant.
type Binop uint8

// ADD represents integer addition
const ADD Binop = 0

// SUB represents integer subtraction
const SUB Binop = 1

// MUL represents integer multiplication
const MUL Binop = 2

// DIV represents integer division
const DIV Binop = 3

// AND represents bitwise conjunction
const AND Binop = 4

// OR represents bitwise disjunction
const OR Binop = 5

// BINOPS captures the set of binary operations
var BINOPS = []Binop{ADD, SUB, MUL, DIV, AND, OR}

func (op Binop) String() string {
	switch op {
	case ADD:
		return "+"
	case SUB:
		return "-"
	case MUL:
		return "*"
	case DIV:
		return "/"
	case AND:
		return "&"
	case OR:
		return "|"
	}
	//
	return fmt.Sprintf("binop(%d)", uint8(op))
}

// Determine the binary operation (if any) denoted by a given character.  Both
// '^' and '&' denote AND.
func binopOf(c byte) (Binop, bool) {
	switch c {
	case '+':
		return ADD, true
	case '-':
		return SUB, true
	case '*':
		return MUL, true
	case '/':
		return DIV, true
	case '^', '&':
		return AND, true
	case '|':
		return OR, true
	}
	//
	return 0, false
}
