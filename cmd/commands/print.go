// Copyright 2021 Silvio Böhler
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

package commands

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sboehler/txnlog/cmd/flags"
	"github.com/sboehler/txnlog/lib/report"
	"github.com/sboehler/txnlog/lib/source"

	"github.com/spf13/cobra"
)

// CreatePrintCommand creates the command.
func CreatePrintCommand() *cobra.Command {
	var r printRunner

	cmd := &cobra.Command{
		Use:   "print <file>",
		Short: "print the records of a transaction log",
		Long: `Print the records of the given MPS7 transaction log, followed by the debit and credit totals` +
			` and the number of started and ended autopays. With --user, print only the balance of that user.`,

		Args: cobra.ExactArgs(1),

		Run: r.run,
	}
	r.setupFlags(cmd)
	return cmd
}

type printRunner struct {
	user     flags.UserFlag
	location flags.LocationFlag
}

func (r *printRunner) setupFlags(c *cobra.Command) {
	c.Flags().VarP(&r.user, "user", "u", "print the balance of the given user")
	c.Flags().Var(&r.location, "location", "time zone of the timestamps")
}

func (r *printRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func (r *printRunner) execute(cmd *cobra.Command, args []string) error {
	cfg, err := flags.Config(cmd)
	if err != nil {
		return err
	}
	res, err := source.ParseFile(args[0])
	if err != nil {
		return err
	}
	w := bufio.NewWriter(cmd.OutOrStdout())
	defer w.Flush()
	if id, ok := r.user.Value(); ok {
		return report.UserBalance(w, res, id)
	}
	listing := report.Listing{Location: r.location.ValueOr(cfg.TimeLocation())}
	return listing.Render(w, res)
}
