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
	"fmt"
	"os"
	"strings"

	"github.com/mmg1/ropium/pkg/constraint"
	"github.com/mmg1/ropium/pkg/query"
	"github.com/mmg1/ropium/pkg/repl"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query [flags] query",
	Short: "Parse a gadget query.",
	Long: `Parse a gadget query (e.g. "rax=mem(rsp+8)") against the target
	architecture, and report its structure.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			atexit.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		var (
			target = GetArchitecture(cmd)
			input  = strings.Join(args, " ")
			opts   repl.Options
		)
		//
		log.Debugf("parsing query \"%s\"", input)
		//
		q, err := query.ParseQuery(input, target)
		if err != nil {
			repl.PrintError(os.Stdout, input, err)
			atexit.Exit(2)
		}
		//
		if badBytes := GetString(cmd, "bad-bytes"); badBytes != "" {
			if opts.BadBytes, err = constraint.ParseBadBytes(badBytes); err != nil {
				repl.PrintError(os.Stdout, badBytes, err)
				atexit.Exit(2)
			}
		}
		//
		if keepRegs := GetString(cmd, "keep-regs"); keepRegs != "" {
			if opts.KeepRegs, err = constraint.ParseKeepRegs(keepRegs, target); err != nil {
				repl.PrintError(os.Stdout, keepRegs, err)
				atexit.Exit(2)
			}
		}
		//
		if err = (reportSearcher{os.Stdout}).Search(q, opts); err != nil {
			fmt.Println(err)
			atexit.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringP("bad-bytes", "b", "", "bytes to avoid in gadget addresses (e.g. 00,0a)")
	queryCmd.Flags().StringP("keep-regs", "k", "", "registers which must not be clobbered (e.g. rax,rbx)")
}
