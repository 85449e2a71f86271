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
package call

import (
	"math/big"
	"strconv"
	"strings"
)

// Call represents a parsed function call "name(arg1,...,argn)", such as
// those used to describe calls made by a ROP chain.
type Call struct {
	Name string
	Args []Arg
}

func (c Call) String() string {
	var builder strings.Builder
	//
	builder.WriteString(c.Name)
	builder.WriteString("(")
	//
	for i, arg := range c.Args {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(arg.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

// Arg represents a single argument of a function call, which is either an
// IntArg or a StringArg.  Arguments are immutable, so integer values must be
// copied before any arithmetic.
type Arg interface {
	// Kind describes the kind of this argument (e.g. "integer").
	Kind() string
	String() string
	//
	isArg()
}

// IntArg is an integer constant argument.
type IntArg struct {
	Value big.Int
}

// StringArg is a string argument.  The value holds the decoded bytes of the
// literal, and need not be valid UTF-8.
type StringArg struct {
	Value string
}

// Kind implementation for Arg interface.
func (a IntArg) Kind() string { return "integer" }

// Kind implementation for Arg interface.
func (a StringArg) Kind() string { return "string" }

func (a IntArg) String() string {
	return a.Value.String()
}

func (a StringArg) String() string {
	return strconv.Quote(a.Value)
}

func (a IntArg) isArg()    {}
func (a StringArg) isArg() {}

// Int constructs an integer argument.
func Int(value int64) IntArg {
	var arg IntArg
	//
	arg.Value.SetInt64(value)
	//
	return arg
}

// String constructs a string argument.
func String(value string) StringArg {
	return StringArg{value}
}
