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
	"github.com/sboehler/txnlog/lib/aggregate"
	"github.com/sboehler/txnlog/lib/common/compare"
	"github.com/sboehler/txnlog/lib/common/table"
	"github.com/sboehler/txnlog/lib/ledger"
	"github.com/sboehler/txnlog/lib/report"
	"github.com/sboehler/txnlog/lib/source"

	"github.com/spf13/cobra"
)

// CreateBalanceCommand creates the command.
func CreateBalanceCommand() *cobra.Command {
	r := balanceRunner{
		sort: flags.NewChoiceFlag("user", "balance"),
	}

	cmd := &cobra.Command{
		Use:   "balance <file> [<user id>...]",
		Short: "compute user balances",
		Long: `Compute the credits, debits and balance of users in the given MPS7 transaction log. Without user ids,` +
			` the users of the configuration file are reported, or all users if none are configured.`,

		Args: cobra.MinimumNArgs(1),

		Run: r.run,
	}
	r.setupFlags(cmd)
	return cmd
}

type balanceRunner struct {
	color bool
	sort  flags.ChoiceFlag
	desc  bool
}

func (r *balanceRunner) setupFlags(c *cobra.Command) {
	c.Flags().BoolVar(&r.color, "color", true, "print output in color")
	c.Flags().Var(&r.sort, "sort", "sort order")
	c.Flags().BoolVar(&r.desc, "desc", false, "sort in descending order")
}

func (r *balanceRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func (r *balanceRunner) execute(cmd *cobra.Command, args []string) error {
	cfg, err := flags.Config(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("color") {
		r.color = cfg.Color
	}
	users, err := flags.ParseUsers(args[1:])
	if err != nil {
		return err
	}
	if len(users) == 0 {
		users = cfg.UserIDs()
	}
	res, err := source.ParseFile(args[0])
	if err != nil {
		return err
	}
	for _, w := range res.Warnings() {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}
	entries, err := r.selectEntries(res, users)
	if err != nil {
		return err
	}
	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()
	tr := table.TextRenderer{Color: r.color}
	return tr.Render(report.Balances(entries), out)
}

func (r *balanceRunner) selectEntries(res *aggregate.Result, users []uint64) ([]*ledger.Entry, error) {
	var c compare.Compare[*ledger.Entry] = ledger.ByUserID
	if r.sort.Value() == "balance" {
		c = ledger.ByBalance
	}
	if r.desc {
		c = compare.Desc(c)
	}
	if len(users) == 0 {
		return res.Ledger.SortedEntries(c), nil
	}
	var entries []*ledger.Entry
	for _, id := range users {
		e, ok := aggregate.LookupUser(res.Ledger, id)
		if !ok {
			return nil, fmt.Errorf("no transactions for user %d", id)
		}
		entries = append(entries, e)
	}
	compare.Sort(entries, c)
	return entries, nil
}
