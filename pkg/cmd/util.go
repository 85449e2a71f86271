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
	"io"
	"strings"

	"github.com/mmg1/ropium/pkg/arch"
	"github.com/mmg1/ropium/pkg/query"
	"github.com/mmg1/ropium/pkg/repl"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		atexit.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		atexit.Exit(2)
	}

	return r
}

// GetArchitecture gets the target architecture selected by the "arch" flag, or
// exits if it is unknown.
func GetArchitecture(cmd *cobra.Command) *arch.Architecture {
	name := GetString(cmd, "arch")
	target, ok := arch.Lookup(name)
	//
	if !ok {
		fmt.Printf("unknown architecture \"%s\" (expected one of %s)\n", name, strings.Join(arch.Names(), ", "))
		atexit.Exit(2)
	}
	//
	log.Debugf("targeting %s (%d bits)", target.Name(), target.Bits())
	//
	return target
}

// Configure log level
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// reportSearcher stands in for a gadget search engine, by reporting the queries
// it would be given.
type reportSearcher struct {
	out io.Writer
}

func (p reportSearcher) Search(q query.Query, opts repl.Options) error {
	printQuery(p.out, q)
	//
	if len(opts.BadBytes) > 0 {
		fmt.Fprintf(p.out, "bad bytes:   % x\n", opts.BadBytes)
	}
	//
	if len(opts.KeepRegs) > 0 {
		fmt.Fprintf(p.out, "keep regs:   %v\n", opts.KeepRegs)
	}
	//
	return nil
}

// Print the structure of a parsed query.
func printQuery(out io.Writer, q query.Query) {
	if q.Dest != nil {
		fmt.Fprintf(out, "destination: %s %s\n", q.Dest.Type(), q.Dest)
	}
	//
	fmt.Fprintf(out, "source:      %s %s\n", q.Source.Type(), q.Source)
}
