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
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mmg1/ropium/pkg/repl"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	"golang.org/x/term"
)

const prompt = "(semantic)> "

// semanticCmd represents the semantic command
var semanticCmd = &cobra.Command{
	Use:   "semantic [flags]",
	Short: "Enter gadget queries interactively.",
	Long: `Enter gadget queries interactively using a terminal-based environment.
	When standard input is not a terminal, commands are read line-by-line.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			reader repl.LineReader
			out    io.Writer
			banner = "Type 'help' for a list of commands."
		)
		//
		configureLogging(cmd)
		//
		target := GetArchitecture(cmd)
		//
		if term.IsTerminal(0) {
			state, err := term.MakeRaw(0)
			if err != nil {
				fmt.Println(err)
				atexit.Exit(2)
			}
			// Ensure terminal restored however we exit
			atexit.Register(func() { _ = term.Restore(0, state) })
			//
			screen := struct {
				io.Reader
				io.Writer
			}{os.Stdin, os.Stdout}
			terminal := term.NewTerminal(screen, prompt)
			reader, out = terminal, terminal
			banner = string(terminal.Escape.Cyan) + banner + string(terminal.Escape.Reset)
		} else {
			reader, out = &lineReader{bufio.NewScanner(os.Stdin)}, os.Stdout
		}
		//
		session := repl.NewSession(reader, out, target, reportSearcher{out})
		_, _ = fmt.Fprintf(out, "%s\n", banner)
		//
		outcome, err := session.Run()
		//
		log.Debugf("semantic session ended (outcome %d)", outcome)
		//
		if err != nil {
			_, _ = fmt.Fprintf(out, "error: %s\n", err)
			atexit.Exit(2)
		}
	},
}

// lineReader reads lines from a non-interactive input stream.
type lineReader struct {
	scanner *bufio.Scanner
}

func (p *lineReader) ReadLine() (string, error) {
	if p.scanner.Scan() {
		return p.scanner.Text(), nil
	} else if err := p.scanner.Err(); err != nil {
		return "", err
	}
	//
	return "", io.EOF
}

func init() {
	rootCmd.AddCommand(semanticCmd)
}
