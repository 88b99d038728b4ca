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
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/sboehler/txnlog/lib/aggregate"
	"github.com/sboehler/txnlog/lib/common/table"
	"github.com/sboehler/txnlog/lib/currency"
	"github.com/sboehler/txnlog/lib/mps7"
	"github.com/sboehler/txnlog/lib/mps7/mps7test"
)

var cst = time.FixedZone("CST", -6*60*60)

func TestRow(t *testing.T) {
	e := mps7.Event{
		Offset:    1,
		Kind:      mps7.Debit,
		Timestamp: time.Unix(1512540000, 0),
		UserID:    2456938384156277127,
		Amount:    currency.FromFloat(42.4),
	}

	got := Row(e, cst)

	want := "    1 | Debit         | 2017-12-06 00:00:00 | 2456938384156277127  |  42.40"
	if got != want {
		t.Errorf("Row() =\n%q, want\n%q", got, want)
	}
}

func TestRowAutopay(t *testing.T) {
	e := mps7.Event{
		Offset:    30,
		Kind:      mps7.StartAutopay,
		Timestamp: time.Unix(0, 0),
		UserID:    7,
	}

	got := Row(e, time.UTC)

	want := "   30 | StartAutopay  | 1970-01-01 00:00:00 | 7                    |       "
	if got != want {
		t.Errorf("Row() =\n%q, want\n%q", got, want)
	}
}

func parse(t *testing.T, buf []byte) *aggregate.Result {
	t.Helper()
	res, err := aggregate.Parse(buf)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestListing(t *testing.T) {
	res := parse(t, mps7test.New().
		Length(2).
		Credit(0, 5, 1000.5).
		EndAutopay(60, 5).
		Debit(120, 5, 1).
		Bytes())
	var buf bytes.Buffer

	if err := (Listing{Location: time.UTC}).Render(&buf, res); err != nil {
		t.Fatalf("Render() returned unexpected error: %v", err)
	}

	want := strings.Join([]string{
		rule,
		"byte  | kind          | timestamp           | user_id              | amt",
		rule,
		"    9 | Credit        | 1970-01-01 00:00:00 | 5                    | 1000.50",
		"   30 | EndAutopay    | 1970-01-01 00:01:00 | 5                    |       ",
		rule,
		"   Total debit amount | $0.00",
		"  Total credit amount | $1000.50",
		"Total autopay started | 0",
		"  Total autopay ended | 1",
		rule,
		"!!! ERROR !!! Expected length to be 2. Actual length 3. Dropping overrun.",
		rule,
		"",
	}, "\n")
	if diff := cmp.Diff(buf.String(), want); diff != "" {
		t.Fatalf("unexpected diff (+got/-want):\n%s", diff)
	}
}

func TestUserBalance(t *testing.T) {
	res := parse(t, mps7test.New().Credit(0, 5, 10).Debit(0, 5, 52.4).Bytes())
	var buf bytes.Buffer

	if err := UserBalance(&buf, res, 5); err != nil {
		t.Fatalf("UserBalance() returned unexpected error: %v", err)
	}

	want := rule + "\nBalance for User 5 is $-42.40\n" + rule + "\n"
	if diff := cmp.Diff(buf.String(), want); diff != "" {
		t.Fatalf("unexpected diff (+got/-want):\n%s", diff)
	}
	if err := UserBalance(&buf, res, 6); err == nil {
		t.Errorf("UserBalance() for unknown user returned no error")
	}
}

func TestUserBalanceAutopayOnly(t *testing.T) {
	res := parse(t, mps7test.New().StartAutopay(0, 9).Credit(0, 5, 10).Bytes())
	var buf bytes.Buffer

	if err := UserBalance(&buf, res, 9); err != nil {
		t.Fatalf("UserBalance() returned unexpected error: %v", err)
	}

	want := rule + "\nBalance for User 9 is $0.00\n" + rule + "\n"
	if diff := cmp.Diff(buf.String(), want); diff != "" {
		t.Fatalf("unexpected diff (+got/-want):\n%s", diff)
	}
}

func TestBalances(t *testing.T) {
	res := parse(t, mps7test.New().Credit(0, 5, 10).Debit(0, 12, 2.5).Bytes())
	var (
		buf bytes.Buffer
		r   = table.TextRenderer{Color: false}
	)

	if err := r.Render(Balances(res.Ledger.Entries()), &buf); err != nil {
		t.Fatalf("Render() returned unexpected error: %v", err)
	}

	want := "" +
		"+------+---------+--------+---------+\n" +
		"| User | Credits | Debits | Balance |\n" +
		"+------+---------+--------+---------+\n" +
		"| 5    |   10.00 |   0.00 |   10.00 |\n" +
		"| 12   |    0.00 |   2.50 |   -2.50 |\n" +
		"+------+---------+--------+---------+\n"
	if diff := cmp.Diff(buf.String(), want); diff != "" {
		t.Fatalf("unexpected diff (+got/-want):\n%s", diff)
	}
}

func TestRecordsCSV(t *testing.T) {
	res := parse(t, mps7test.New().Debit(0, 5, 1).StartAutopay(3600, 6).Bytes())
	var (
		buf bytes.Buffer
		r   table.CSVRenderer
	)

	if err := r.Render(Records(res, time.UTC), &buf); err != nil {
		t.Fatalf("Render() returned unexpected error: %v", err)
	}

	want := "byte,kind,timestamp,user_id,amount\n" +
		"9,Debit,1970-01-01 00:00:00,5,1.00\n" +
		"30,StartAutopay,1970-01-01 01:00:00,6,\n"
	if diff := cmp.Diff(buf.String(), want); diff != "" {
		t.Fatalf("unexpected diff (+got/-want):\n%s", diff)
	}
}

func TestSummaryStatus(t *testing.T) {
	ok := parse(t, mps7test.New().EndAutopay(0, 1).Bytes())
	overrun := parse(t, mps7test.New().Length(0).EndAutopay(0, 1).Bytes())
	tests := []struct {
		row  SummaryRow
		want string
	}{
		{SummaryRow{Path: "a", Result: ok}, "ok"},
		{SummaryRow{Path: "b", Result: overrun}, "overrun"},
		{SummaryRow{Path: "c", Result: ok, Err: errors.New("x")}, "incomplete"},
		{SummaryRow{Path: "d", Err: errors.New("x")}, "failed"},
	}
	for _, test := range tests {
		if got := test.row.Status(); got != test.want {
			t.Errorf("%s: Status() = %q, want %q", test.row.Path, got, test.want)
		}
	}
}
