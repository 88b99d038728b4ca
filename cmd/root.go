// Copyright 2020 Silvio Böhler
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cmd is the main command file for Cobra
package cmd

import (
	"fmt"
	"os"

	"github.com/sboehler/txnlog/cmd/commands"
	"github.com/sboehler/txnlog/cmd/completion"
	"github.com/sboehler/txnlog/cmd/flags"

	"github.com/spf13/cobra"
)

// CreateCmd creates the root command with all subcommands.
func CreateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "txnlog",
		Short: "txnlog reads MPS7 transaction logs",
		Long:  `txnlog decodes MPS7 transaction logs and reports totals, autopay counts and user balances.`,

		SilenceUsage: true,
	}
	flags.SetupConfig(c)
	c.AddCommand(commands.CreatePrintCommand())
	c.AddCommand(commands.CreateBalanceCommand())
	c.AddCommand(commands.CreateSummaryCommand())
	c.AddCommand(commands.CreateExportCommand())
	c.AddCommand(completion.CreateCmd(c))
	return c
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	c := CreateCmd()
	if err := c.Execute(); err != nil {
		fmt.Fprintln(c.ErrOrStderr(), err)
		os.Exit(1)
	}
}
