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
	"testing"

	"github.com/mmg1/ropium/pkg/arch"
	"github.com/mmg1/ropium/pkg/util/assert"
	"github.com/mmg1/ropium/pkg/util/source"
)

func TestBadBytes_01(t *testing.T) {
	bytes, err := ParseBadBytes("00,0A,ff,32,C7")
	//
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x0a, 0xff, 0x32, 0xc7}, bytes)
}

func TestBadBytes_02(t *testing.T) {
	checkBadBytesError(t, "", source.EmptyArgument)
	checkBadBytesError(t, "00,", source.EmptyArgument)
	checkBadBytesError(t, "00,,01", source.EmptyArgument)
	checkBadBytesError(t, "0", source.InvalidByte)
	checkBadBytesError(t, "000", source.InvalidByte)
	checkBadBytesError(t, "0g", source.InvalidByte)
	checkBadBytesError(t, "00, 01", source.InvalidByte)
}

func TestKeepRegs_01(t *testing.T) {
	regs, err := ParseKeepRegs("rax,rcx,rdi,rax", arch.X64)
	//
	assert.NoError(t, err)
	assert.Equal(t, []arch.Register{
		arch.X64.RegisterOf("rax"),
		arch.X64.RegisterOf("rcx"),
		arch.X64.RegisterOf("rdi"),
	}, regs)
}

func TestKeepRegs_02(t *testing.T) {
	_, err := ParseKeepRegs("eax,rbx", arch.X64)
	serr := err.(*source.SyntaxError)
	//
	assert.Equal(t, source.UnsupportedRegister, serr.Kind())
	assert.Equal(t, "eax", serr.Text())
	//
	_, err = ParseKeepRegs("eax,", arch.X86)
	//
	assert.True(t, source.IsKind(err, source.UnsupportedRegister))
}

func checkBadBytesError(t *testing.T, input string, kind source.ErrorKind) {
	t.Helper()
	//
	_, err := ParseBadBytes(input)
	//
	assert.True(t, source.IsKind(err, kind), "incorrect error for \"%s\" (%v)", input, err)
}
