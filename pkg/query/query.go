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
	"strings"

	"github.com/mmg1/ropium/pkg/util/source"
)

// Query represents a request for gadgets which assign a given expression
// (Source) to a given location (Dest).  For the special forms INT80 and
// SYSCALL, there is no destination.
type Query struct {
	Dest   Dest
	Source Expr
}

func (q Query) String() string {
	if q.Dest == nil {
		return q.Source.String()
	}
	//
	return fmt.Sprintf("%s=%s", q.Dest, q.Source)
}

// ParseQuery parses a query of the form "dst=src", or one of the keywords
// "int80" and "syscall".  The destination must be a bare register, or a memory
// reference, whilst the source can be any expression.
func ParseQuery(input string, ctx Context) (Query, error) {
	switch input {
	case "int80":
		return Query{nil, Int80{}}, nil
	case "syscall":
		return Query{nil, Syscall{}}, nil
	}
	//
	lhs, rhs, ok := splitQuery(input)
	//
	if !ok {
		return Query{}, source.NewSyntaxError(source.InvalidQuery, input, source.NewSpan(0, len(input)),
			fmt.Sprintf("invalid semantic query: %s", input))
	}
	//
	p := newParser(input, ctx)
	// Parse destination
	expr, err := p.parseExpr(lhs)
	if err != nil {
		return Query{}, err
	}
	//
	dest, ok := destOf(expr)
	if !ok {
		return Query{}, p.syntaxError(source.UnsupportedDestination, lhs,
			fmt.Sprintf("left operand '%s' is invalid or not yet supported", lhs.Text(input)))
	}
	// Parse assigned value
	if expr, err = p.parseExpr(rhs); err != nil {
		return Query{}, err
	}
	//
	return Query{dest, expr}, nil
}

// Split a query on its first '=', producing the spans of both sides.  This
// fails unless both sides are non-empty.
func splitQuery(input string) (source.Span, source.Span, bool) {
	var (
		index = strings.IndexByte(input, '=')
		empty = source.NewSpan(0, 0)
	)
	//
	if index <= 0 || index == len(input)-1 {
		return empty, empty, false
	}
	//
	return source.NewSpan(0, index), source.NewSpan(index+1, len(input)), true
}
