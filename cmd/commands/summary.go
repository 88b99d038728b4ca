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
	"context"
	"fmt"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/sboehler/txnlog/cmd/flags"
	"github.com/sboehler/txnlog/lib/common/cpr"
	"github.com/sboehler/txnlog/lib/common/table"
	"github.com/sboehler/txnlog/lib/report"
	"github.com/sboehler/txnlog/lib/source"
)

// CreateSummaryCommand creates the command.
func CreateSummaryCommand() *cobra.Command {
	var r summaryRunner

	cmd := &cobra.Command{
		Use:   "summary <file>...",
		Short: "summarize transaction logs",
		Long: `Parse the given MPS7 transaction logs in parallel and print one line of totals per file.` +
			` Files which cannot be parsed are reported and make the command fail after the summary is printed.`,

		Args: cobra.MinimumNArgs(1),

		Run: r.run,
	}
	r.setupFlags(cmd)
	return cmd
}

type summaryRunner struct {
	concurrency int
	progress    bool
	color       bool
}

func (r *summaryRunner) setupFlags(c *cobra.Command) {
	c.Flags().IntVarP(&r.concurrency, "concurrency", "j", 4, "number of files parsed in parallel")
	c.Flags().BoolVar(&r.progress, "progress", false, "show a progress bar")
	c.Flags().BoolVar(&r.color, "color", true, "print output in color")
}

func (r *summaryRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func (r *summaryRunner) execute(cmd *cobra.Command, args []string) error {
	cfg, err := flags.Config(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("concurrency") {
		r.concurrency = cfg.Concurrency
	}
	if !cmd.Flags().Changed("color") {
		r.color = cfg.Color
	}
	var bar *pb.ProgressBar
	if r.progress {
		bar = pb.New(len(args)).SetWriter(cmd.ErrOrStderr()).Start()
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rows, err := cpr.Map(ctx, r.concurrency, args, func(ctx context.Context, path string) (report.SummaryRow, error) {
		if bar != nil {
			defer bar.Increment()
		}
		res, err := source.ParseFile(path)
		return report.SummaryRow{Path: path, Result: res, Err: err}, nil
	})
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}
	out := bufio.NewWriter(cmd.OutOrStdout())
	tr := table.TextRenderer{Color: r.color}
	var errs error
	for _, row := range rows {
		errs = multierr.Append(errs, row.Err)
		if row.Result != nil {
			for _, w := range row.Result.Warnings() {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %s\n", row.Path, w)
			}
		}
	}
	return multierr.Combine(tr.Render(report.Summary(rows), out), out.Flush(), errs)
}
