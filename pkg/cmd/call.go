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

	"github.com/mmg1/ropium/pkg/call"
	"github.com/mmg1/ropium/pkg/repl"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// callCmd represents the call command
var callCmd = &cobra.Command{
	Use:   "call [flags] call",
	Short: "Parse a function call.",
	Long: `Parse a function call (e.g. 'execve("/bin/sh\x00", 0, 0)') which a
	ROP chain should make, and report its arguments.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			atexit.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		input := strings.Join(args, " ")
		//
		log.Debugf("parsing call \"%s\"", input)
		//
		c, err := call.Parse(input)
		if err != nil {
			repl.PrintError(os.Stdout, input, err)
			atexit.Exit(2)
		}
		//
		fmt.Printf("function: %s\n", c.Name)
		//
		for i, arg := range c.Args {
			fmt.Printf("arg %d: %s %s\n", i, arg.Kind(), arg)
		}
	},
}

func init() {
	rootCmd.AddCommand(callCmd)
}
