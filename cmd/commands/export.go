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
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/sboehler/txnlog/cmd/flags"
	"github.com/sboehler/txnlog/lib/aggregate"
	"github.com/sboehler/txnlog/lib/common/table"
	"github.com/sboehler/txnlog/lib/report"
	"github.com/sboehler/txnlog/lib/source"
)

// CreateExportCommand creates the command.
func CreateExportCommand() *cobra.Command {
	r := exportRunner{
		report: flags.NewChoiceFlag("records", "users", "totals"),
	}

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "export a transaction log as CSV",
		Long: `Export the records, the user balances or the totals of the given MPS7 transaction log in CSV format.` +
			` With --output, the file is replaced atomically.`,

		Args: cobra.ExactArgs(1),

		Run: r.run,
	}
	r.setupFlags(cmd)
	return cmd
}

type exportRunner struct {
	report   flags.ChoiceFlag
	output   string
	location flags.LocationFlag
}

func (r *exportRunner) setupFlags(c *cobra.Command) {
	c.Flags().VarP(&r.report, "report", "r", "what to export")
	c.Flags().StringVarP(&r.output, "output", "o", "", "output file (default stdout)")
	c.Flags().Var(&r.location, "location", "time zone of the timestamps")
}

func (r *exportRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func (r *exportRunner) execute(cmd *cobra.Command, args []string) error {
	cfg, err := flags.Config(cmd)
	if err != nil {
		return err
	}
	res, err := source.ParseFile(args[0])
	if err != nil {
		return err
	}
	for _, w := range res.Warnings() {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}
	var (
		buf bytes.Buffer
		csv table.CSVRenderer
	)
	if err := csv.Render(r.table(res, cfg.TimeLocation()), &buf); err != nil {
		return err
	}
	if r.output == "" || r.output == "-" {
		_, err := buf.WriteTo(cmd.OutOrStdout())
		return err
	}
	return atomic.WriteFile(r.output, &buf)
}

func (r *exportRunner) table(res *aggregate.Result, def *time.Location) *table.Table {
	switch r.report.Value() {
	case "users":
		return report.Balances(res.Ledger.Entries())
	case "totals":
		return report.Totals(res.Stats)
	}
	return report.Records(res, r.location.ValueOr(def))
}
