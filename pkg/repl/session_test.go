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
package repl

import (
	"bytes"
	"errors"
	"io"

	gomock "github.com/golang/mock/gomock"
	"github.com/mmg1/ropium/pkg/arch"
	"github.com/mmg1/ropium/pkg/query"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Session", func() {
	var (
		mockCtrl     *gomock.Controller
		mockReader   *MockLineReader
		mockSearcher *MockSearcher
		out          *bytes.Buffer
		session      *Session
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockReader = NewMockLineReader(mockCtrl)
		mockSearcher = NewMockSearcher(mockCtrl)
		out = new(bytes.Buffer)

		session = NewSession(mockReader, out, arch.X64, mockSearcher)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should ignore empty lines", func() {
		Expect(session.Execute("")).To(Equal(CONTINUE))
		Expect(session.Execute("   ")).To(Equal(CONTINUE))
		Expect(out.String()).To(BeEmpty())
	})

	It("should leave on main and exit", func() {
		Expect(session.Execute("main")).To(Equal(MAIN))
		Expect(session.Execute("exit")).To(Equal(EXIT))
	})

	It("should hand parsed queries to the searcher", func() {
		var found query.Query

		mockSearcher.EXPECT().
			Search(gomock.Any(), Options{}).
			DoAndReturn(func(q query.Query, _ Options) error {
				found = q
				return nil
			})

		Expect(session.Execute("find rax=rbx+4")).To(Equal(CONTINUE))
		Expect(found.String()).To(Equal("rax=rbx+4"))
		Expect(found.Dest).To(Equal(query.RegDest{Reg: arch.X64.RegisterOf("rax")}))
	})

	It("should pass search options", func() {
		var opts Options

		mockSearcher.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ query.Query, o Options) error {
				opts = o
				return nil
			})

		session.Execute("find -b 00,0a --keep-regs rbx,rbp mem(rsp)=rax")

		Expect(opts.BadBytes).To(Equal([]byte{0x00, 0x0a}))
		Expect(opts.KeepRegs).To(Equal([]arch.Register{
			arch.X64.RegisterOf("rbx"),
			arch.X64.RegisterOf("rbp"),
		}))
	})

	It("should report special forms", func() {
		mockSearcher.EXPECT().
			Search(query.Query{Source: query.Syscall{}}, Options{}).
			Return(nil)

		session.Execute("find syscall")
	})

	It("should highlight syntax errors", func() {
		session.Execute("find rax=rbx+rcx")

		Expect(out.String()).To(ContainSubstring("only constants can be used as right operands"))
		Expect(out.String()).To(ContainSubstring("\trax=rbx+rcx\n\t        ^^^\n"))
	})

	It("should report invalid options", func() {
		session.Execute("find -b 0g rax=1")
		Expect(out.String()).To(ContainSubstring("'0g' is not a valid byte"))

		out.Reset()
		session.Execute("find -k rax,foo rax=1")
		Expect(out.String()).To(ContainSubstring("'foo' is not a valid register"))
	})

	It("should require exactly one query", func() {
		session.Execute("find")
		Expect(out.String()).To(ContainSubstring("expected exactly one query"))

		out.Reset()
		session.Execute("find rax=1 rbx=2")
		Expect(out.String()).To(ContainSubstring("expected exactly one query"))
	})

	It("should report search failures", func() {
		mockSearcher.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			Return(errors.New("no gadget found"))

		session.Execute("find rax=0")

		Expect(out.String()).To(ContainSubstring("error: no gadget found"))
	})

	It("should list registers", func() {
		session.Execute("registers")

		Expect(out.String()).To(HavePrefix("x64 registers: rax, rbx, rcx"))
	})

	It("should report unknown commands", func() {
		Expect(session.Execute("gadgets")).To(Equal(CONTINUE))
		Expect(out.String()).To(ContainSubstring("unknown command 'gadgets'"))
	})

	It("should run until main", func() {
		gomock.InOrder(
			mockReader.EXPECT().ReadLine().Return("help", nil),
			mockReader.EXPECT().ReadLine().Return("", nil),
			mockReader.EXPECT().ReadLine().Return("main", nil),
		)

		outcome, err := session.Run()

		Expect(err).NotTo(HaveOccurred())
		Expect(outcome).To(Equal(MAIN))
		Expect(out.String()).To(ContainSubstring("Semantic-Mode Commands"))
	})

	It("should exit at end of input", func() {
		mockReader.EXPECT().ReadLine().Return("", io.EOF)

		outcome, err := session.Run()

		Expect(err).NotTo(HaveOccurred())
		Expect(outcome).To(Equal(EXIT))
	})

	It("should propagate input failures", func() {
		failure := errors.New("terminal closed")
		mockReader.EXPECT().ReadLine().Return("", failure)

		outcome, err := session.Run()

		Expect(err).To(MatchError(failure))
		Expect(outcome).To(Equal(EXIT))
	})
})

var _ = Describe("PrintError", func() {
	It("should print plain errors", func() {
		out := new(bytes.Buffer)

		PrintError(out, "rax=1", errors.New("boom"))

		Expect(out.String()).To(Equal("error: boom\n"))
	})

	It("should highlight at least one character", func() {
		out := new(bytes.Buffer)
		_, err := query.ParseQuery("rax=rbx+", arch.X64)

		PrintError(out, "rax=rbx+", err)

		Expect(out.String()).To(Equal("error: missing right operand\n\trax=rbx+\n\t       ^\n"))
	})
})
