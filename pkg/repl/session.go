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
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mmg1/ropium/pkg/arch"
	"github.com/mmg1/ropium/pkg/constraint"
	"github.com/mmg1/ropium/pkg/query"
	"github.com/mmg1/ropium/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// LineReader provides lines of user input.  This is satisfied by the terminal
// of golang.org/x/term, amongst others.
type LineReader interface {
	ReadLine() (string, error)
}

// Options constrain the gadgets which a search may use.
type Options struct {
	// Bytes which must not appear in gadget addresses.
	BadBytes []byte
	// Registers which gadgets must preserve.
	KeepRegs []arch.Register
}

// Searcher is responsible for finding gadgets (or chains of gadgets) matching
// a given query.
type Searcher interface {
	Search(q query.Query, opts Options) error
}

// Outcome indicates how a session was left.
type Outcome uint8

// CONTINUE indicates the session remains active.
const CONTINUE Outcome = 0

// MAIN indicates the user returned to the main menu.
const MAIN Outcome = 1

// EXIT indicates the user wants to quit entirely.
const EXIT Outcome = 2

// Commands available in semantic mode
const (
	cmdFind      = "find"
	cmdRegisters = "registers"
	cmdHelp      = "help"
	cmdMain      = "main"
	cmdExit      = "exit"
)

const helpText = `Semantic-Mode Commands

	find:		find gadgets/ropchains (e.g. find rax=rbx+8)
	registers:	show available registers

	help:		show this help
	main:		return to the main menu
	exit:		exit ropium
`

// Session is an interactive "semantic mode" session, where the user enters
// queries describing the effect of the gadgets they are looking for.
type Session struct {
	reader   LineReader
	out      io.Writer
	target   *arch.Architecture
	searcher Searcher
}

// NewSession constructs a new session reading commands from a given reader,
// and writing responses to a given writer.
func NewSession(reader LineReader, out io.Writer, target *arch.Architecture, searcher Searcher) *Session {
	return &Session{reader, out, target, searcher}
}

// Run executes commands until the user leaves the session, or input is
// exhausted (which is treated as EXIT).
func (s *Session) Run() (Outcome, error) {
	for {
		line, err := s.reader.ReadLine()
		//
		if errors.Is(err, io.EOF) {
			return EXIT, nil
		} else if err != nil {
			return EXIT, err
		}
		//
		if outcome := s.Execute(line); outcome != CONTINUE {
			return outcome, nil
		}
	}
}

// Execute a single line of input.
func (s *Session) Execute(line string) Outcome {
	args := strings.Fields(line)
	//
	if len(args) == 0 {
		return CONTINUE
	}
	//
	switch args[0] {
	case cmdFind:
		s.find(args[1:])
	case cmdRegisters:
		s.registers()
	case cmdHelp:
		s.printf("%s", helpText)
	case cmdMain:
		return MAIN
	case cmdExit:
		return EXIT
	default:
		s.printf("error: unknown command '%s'\n", args[0])
	}
	//
	s.printf("\n")
	//
	return CONTINUE
}

func (s *Session) find(args []string) {
	var (
		flags    = pflag.NewFlagSet(cmdFind, pflag.ContinueOnError)
		badBytes = flags.StringP("bad-bytes", "b", "", "bytes to avoid in gadget addresses (e.g. 00,0a)")
		keepRegs = flags.StringP("keep-regs", "k", "", "registers which must not be clobbered (e.g. rax,rbx)")
		opts     Options
	)
	//
	flags.SetOutput(s.out)
	//
	if err := flags.Parse(args); err != nil {
		// pflag has already reported the problem
		return
	} else if flags.NArg() != 1 {
		s.printf("error: expected exactly one query (e.g. find rax=rbx+8)\n")
		return
	}
	//
	input := flags.Arg(0)
	q, err := query.ParseQuery(input, s.target)
	//
	if err != nil {
		PrintError(s.out, input, err)
		return
	}
	//
	if *badBytes != "" {
		if opts.BadBytes, err = constraint.ParseBadBytes(*badBytes); err != nil {
			PrintError(s.out, *badBytes, err)
			return
		}
	}
	//
	if *keepRegs != "" {
		if opts.KeepRegs, err = constraint.ParseKeepRegs(*keepRegs, s.target); err != nil {
			PrintError(s.out, *keepRegs, err)
			return
		}
	}
	//
	log.Debugf("searching for %s (%d bad bytes, %d kept registers)", q, len(opts.BadBytes), len(opts.KeepRegs))
	//
	if err := s.searcher.Search(q, opts); err != nil {
		s.printf("error: %s\n", err)
	}
}

func (s *Session) registers() {
	var names []string
	//
	for _, reg := range s.target.Registers() {
		names = append(names, reg.Name)
	}
	//
	s.printf("%s registers: %s\n", s.target.Name(), strings.Join(names, ", "))
}

func (s *Session) printf(format string, args ...any) {
	// Output errors are not recoverable here
	_, _ = fmt.Fprintf(s.out, format, args...)
}

// PrintError reports an error arising from parsing a given input.  Syntax
// errors additionally highlight the offending text within the input.
func PrintError(out io.Writer, input string, err error) {
	var serr *source.SyntaxError
	//
	if !errors.As(err, &serr) {
		_, _ = fmt.Fprintf(out, "error: %s\n", err)
		return
	}
	//
	span := serr.Span()
	// Highlight at least one character
	length := max(1, span.Length())
	//
	_, _ = fmt.Fprintf(out, "error: %s\n\t%s\n\t%s%s\n", serr.Message(), input,
		strings.Repeat(" ", span.Start()), strings.Repeat("^", length))
}
