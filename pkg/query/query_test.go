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
	"testing"

	"github.com/mmg1/ropium/pkg/arch"
	"github.com/mmg1/ropium/pkg/util/assert"
	"github.com/mmg1/ropium/pkg/util/source"
)

func TestParseQuery_01(t *testing.T) {
	query := checkQuery(t, "rax=rbx+4", "rax=rbx+4")
	dest := query.Dest.(RegDest)
	src := query.Source.(RegBinopCst)
	//
	assert.Equal(t, DEST_REG, dest.Type())
	assert.Equal(t, arch.X64.RegisterOf("rax"), dest.Reg)
	assert.Equal(t, arch.X64.RegisterOf("rbx"), src.Reg)
	assert.Equal(t, ADD, src.Op)
	assert.Equal(t, 4, src.Cst)
}

func TestParseQuery_02(t *testing.T) {
	query := checkQuery(t, "mem(rsp)=0", "mem(rsp)=0")
	dest := query.Dest.(MemDest)
	//
	assert.Equal(t, DEST_MEM, dest.Type())
	assert.Equal(t, arch.X64.RegisterOf("rsp"), dest.Base)
	assert.Equal(t, ADD, dest.Op)
	assert.Equal(t, 0, dest.Cst)
	assert.Equal(t, CST, query.Source.Type())
	assert.Equal(t, 0, query.Source.(Constant).Value)
}

func TestParseQuery_03(t *testing.T) {
	query := checkQuery(t, "int80", "int80")
	//
	assert.True(t, query.Dest == nil)
	assert.Equal(t, INT80, query.Source.Type())
	//
	query = checkQuery(t, "syscall", "syscall")
	//
	assert.True(t, query.Dest == nil)
	assert.Equal(t, SYSCALL, query.Source.Type())
}

func TestParseQuery_04(t *testing.T) {
	query := checkQuery(t, "mem(rdi-8)=mem(rsi+0x10)*2", "mem(rdi-8)=mem(rsi+16)*2")
	dest := query.Dest.(MemDest)
	// The address offset is retained by the destination
	assert.Equal(t, SUB, dest.Op)
	assert.Equal(t, 8, dest.Cst)
	assert.Equal(t, MEM_BINOP_CST, query.Source.Type())
}

func TestParseQuery_05(t *testing.T) {
	query := checkQuery(t, "mem(0x601000)=rax", "mem(0x601000)=rax")
	//
	assert.Equal(t, DEST_CSTMEM, query.Dest.Type())
	assert.Equal(t, 0x601000, query.Dest.(ConstantMemDest).Addr)
	//
	checkQuery(t, "rcx=mem(0x601000)", "rcx=mem(0x601000)")
	checkQuery(t, "rcx=0b1010", "rcx=10")
}

func TestParseQuery_06(t *testing.T) {
	checkQueryError(t, "rax", source.InvalidQuery)
	checkQueryError(t, "rax=", source.InvalidQuery)
	checkQueryError(t, "=rax", source.InvalidQuery)
	checkQueryError(t, "=", source.InvalidQuery)
	checkQueryError(t, "", source.InvalidQuery)
	checkQueryError(t, "int80=1", source.UnsupportedExpression)
}

func TestParseQuery_07(t *testing.T) {
	checkQueryError(t, "rax+1=rbx", source.UnsupportedDestination)
	checkQueryError(t, "mem(rax)+1=rbx", source.UnsupportedDestination)
	checkQueryError(t, "0x10=rbx", source.UnsupportedDestination)
	checkQueryError(t, "foo=rbx", source.UnsupportedExpression)
	checkQueryError(t, "rax==rbx", source.UnsupportedExpression)
	checkQueryError(t, "rax=rbx+rcx", source.RightOperandMustBeConstant)
}

func TestParseQuery_08(t *testing.T) {
	_, err := ParseQuery("rax=mem(rbx", arch.X64)
	serr := err.(*source.SyntaxError)
	// Spans are relative to the whole query
	assert.Equal(t, source.MissingParenthesis, serr.Kind())
	assert.Equal(t, source.NewSpan(4, 11), serr.Span())
}

func TestParseQuery_09(t *testing.T) {
	first, err := ParseQuery("mem(rax+8)=rbx+4", arch.X64)
	assert.NoError(t, err)
	second, err := ParseQuery("mem(rax+8)=rbx+4", arch.X64)
	assert.NoError(t, err)
	// Arithmetic on a copied constant leaves the query unchanged
	src := first.Source.(RegBinopCst)
	cst := new(big.Int).Set(&src.Cst)
	cst.Add(cst, big.NewInt(1))
	//
	assert.Equal(t, 5, cst)
	assert.Equal(t, "mem(rax+8)=rbx+4", first.String())
	// Separate parses never share constants
	src.Cst.Add(&src.Cst, big.NewInt(1))
	assert.Equal(t, "mem(rax+8)=rbx+4", second.String())
}

// ==================================================================
// Framework
// ==================================================================

func checkQuery(t *testing.T, input string, expected string) Query {
	t.Helper()
	//
	query, err := ParseQuery(input, arch.X64)
	//
	assert.NoError(t, err, "failed parsing \"%s\"", input)
	assert.Equal(t, expected, query.String())
	//
	return query
}

func checkQueryError(t *testing.T, input string, kind source.ErrorKind) {
	t.Helper()
	//
	_, err := ParseQuery(input, arch.X64)
	//
	assert.Error(t, err, "unexpected success parsing \"%s\"", input)
	//
	actual, _ := source.KindOf(err)
	assert.Equal(t, kind, actual, "incorrect error for \"%s\" (%v)", input, err)
}
