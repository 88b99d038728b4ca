// Copyright 2023 Silvio Böhler
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

package report

import (
	"strconv"

	"github.com/sboehler/txnlog/lib/aggregate"
	"github.com/sboehler/txnlog/lib/common/table"
	"github.com/sboehler/txnlog/lib/ledger"
)

// Balances renders ledger entries.
func Balances(entries []*ledger.Entry) *table.Table {
	tbl := table.New(4)
	tbl.AddSeparatorRow()
	tbl.AddRow().
		AddText("User", table.Left).
		AddText("Credits", table.Right).
		AddText("Debits", table.Right).
		AddText("Balance", table.Right)
	tbl.AddSeparatorRow()
	for _, e := range entries {
		tbl.AddRow().
			AddText(strconv.FormatUint(e.UserID, 10), table.Left).
			AddCurrency(e.CreditSum).
			AddCurrency(e.DebitSum).
			AddCurrency(e.Balance())
	}
	tbl.AddSeparatorRow()
	return tbl
}

// Totals renders the statistics of a single result.
func Totals(stats aggregate.Stats) *table.Table {
	tbl := table.New(2)
	tbl.AddSeparatorRow()
	tbl.AddRow().AddText("Total debit amount", table.Left).AddCurrency(stats.Debits())
	tbl.AddRow().AddText("Total credit amount", table.Left).AddCurrency(stats.Credits())
	tbl.AddRow().AddText("Total autopay started", table.Left).AddInt(stats.AutopaysStarted())
	tbl.AddRow().AddText("Total autopay ended", table.Left).AddInt(stats.AutopaysEnded())
	tbl.AddRow().AddText("Declared records", table.Left).AddInt(int(stats.DeclaredLength))
	tbl.AddRow().AddText("Parsed records", table.Left).AddInt(stats.ParsedCount)
	tbl.AddSeparatorRow()
	return tbl
}

// SummaryRow is the outcome of parsing one file.
type SummaryRow struct {
	Path   string
	Result *aggregate.Result
	Err    error
}

// Status describes the outcome.
func (s SummaryRow) Status() string {
	switch {
	case s.Err != nil && s.Result == nil:
		return "failed"
	case s.Err != nil:
		return "incomplete"
	case s.Result.Stats.Overrun != "":
		return "overrun"
	}
	return "ok"
}

// Summary renders one row per file.
func Summary(rows []SummaryRow) *table.Table {
	tbl := table.New(8)
	tbl.AddSeparatorRow()
	tbl.AddRow().
		AddText("File", table.Left).
		AddText("Declared", table.Right).
		AddText("Parsed", table.Right).
		AddText("Debits", table.Right).
		AddText("Credits", table.Right).
		AddText("Started", table.Right).
		AddText("Ended", table.Right).
		AddText("Status", table.Left)
	tbl.AddSeparatorRow()
	for _, s := range rows {
		row := tbl.AddRow().AddText(s.Path, table.Left)
		if s.Result == nil {
			row.AddEmpty().AddEmpty().AddEmpty().AddEmpty().AddEmpty().AddEmpty()
		} else {
			stats := s.Result.Stats
			row.AddInt(int(stats.DeclaredLength)).
				AddInt(stats.ParsedCount).
				AddCurrency(stats.Debits()).
				AddCurrency(stats.Credits()).
				AddInt(stats.AutopaysStarted()).
				AddInt(stats.AutopaysEnded())
		}
		row.AddText(s.Status(), table.Left)
	}
	tbl.AddSeparatorRow()
	return tbl
}
