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
	"testing"

	"github.com/mmg1/ropium/pkg/util/assert"
)

func TestArchitecture_01(t *testing.T) {
	assert.True(t, X64.IsSupportedRegister("rax"))
	assert.True(t, X64.IsSupportedRegister("r15"))
	assert.False(t, X64.IsSupportedRegister("eax"))
	assert.False(t, X64.IsSupportedRegister("RAX"))
	assert.Equal(t, uint(64), X64.Bits())
}

func TestArchitecture_02(t *testing.T) {
	rbx := X64.RegisterOf("rbx")
	//
	assert.Equal(t, Register{1, "rbx"}, rbx)
	assert.Equal(t, "rbx", rbx.String())
	assert.Equal(t, rbx, X64.Registers()[rbx.Id])
}

func TestArchitecture_03(t *testing.T) {
	a, ok := Lookup("X86")
	//
	assert.True(t, ok)
	assert.Equal(t, uint(32), a.Bits())
	assert.Equal(t, []string{"x86", "x64"}, Names())
	//
	_, ok = Lookup("arm")
	assert.False(t, ok)
}
