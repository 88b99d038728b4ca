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

// Package report renders parse results.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/sboehler/txnlog/lib/aggregate"
	"github.com/sboehler/txnlog/lib/common/table"
	"github.com/sboehler/txnlog/lib/mps7"
)

// TimeFormat is the layout of timestamps in reports.
const TimeFormat = "2006-01-02 15:04:05"

const rule = "---------------------------------------------------------------------------"

// Row formats a single event as a listing row.
func Row(e mps7.Event, loc *time.Location) string {
	return fmt.Sprintf("%5d | %-13s | %s | %-20d | %6s",
		e.Offset,
		e.Kind,
		e.Timestamp.In(loc).Format(TimeFormat),
		e.UserID,
		amount(e))
}

func amount(e mps7.Event) string {
	if !e.HasAmount() {
		return ""
	}
	return e.Amount.String()
}

// Listing writes the list of folded events followed by the totals and the
// overrun diagnostic, if any.
type Listing struct {
	Location *time.Location
}

// Render renders the listing of the given result.
func (l Listing) Render(w io.Writer, res *aggregate.Result) error {
	loc := l.Location
	if loc == nil {
		loc = time.Local
	}
	lines := []string{
		rule,
		"byte  | kind          | timestamp           | user_id              | amt",
		rule,
	}
	for _, e := range res.Events {
		lines = append(lines, Row(e, loc))
	}
	lines = append(lines,
		rule,
		fmt.Sprintf("   Total debit amount | $%s", res.Stats.Debits()),
		fmt.Sprintf("  Total credit amount | $%s", res.Stats.Credits()),
		fmt.Sprintf("Total autopay started | %d", res.Stats.AutopaysStarted()),
		fmt.Sprintf("  Total autopay ended | %d", res.Stats.AutopaysEnded()),
	)
	for _, warning := range res.Warnings() {
		lines = append(lines, rule, fmt.Sprintf("!!! ERROR !!! %s", warning))
	}
	lines = append(lines, rule)
	return writeLines(w, lines)
}

// UserBalance writes the balance line of a single user.
func UserBalance(w io.Writer, res *aggregate.Result, id uint64) error {
	u, ok := aggregate.LookupUser(res.Ledger, id)
	if !ok {
		return fmt.Errorf("no transactions for user %d", id)
	}
	return writeLines(w, []string{
		rule,
		fmt.Sprintf("Balance for User %d is $%s", id, u.Balance()),
		rule,
	})
}

func writeLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := io.WriteString(w, l); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Records renders the folded events as a table.
func Records(res *aggregate.Result, loc *time.Location) *table.Table {
	tbl := table.New(5)
	tbl.AddRow().
		AddText("byte", table.Left).
		AddText("kind", table.Left).
		AddText("timestamp", table.Left).
		AddText("user_id", table.Left).
		AddText("amount", table.Right)
	for _, e := range res.Events {
		row := tbl.AddRow().
			AddInt(e.Offset).
			AddText(e.Kind.String(), table.Left).
			AddText(e.Timestamp.In(loc).Format(TimeFormat), table.Left).
			AddText(strconv.FormatUint(e.UserID, 10), table.Left)
		if e.HasAmount() {
			row.AddCurrency(e.Amount)
		} else {
			row.AddEmpty()
		}
	}
	return tbl
}
