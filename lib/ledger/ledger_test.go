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

package ledger

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sboehler/txnlog/lib/currency"
	"github.com/sboehler/txnlog/lib/mps7"
)

func TestAccumulateCredit(t *testing.T) {
	e := NewEntry(1)
	e.Accumulate(mps7.Credit, currency.FromFloat(100))
	if got := e.CreditSum.String(); got != "100.00" {
		t.Errorf("CreditSum = %s, want 100.00", got)
	}
	e.Accumulate(mps7.Credit, currency.FromFloat(50))
	if got := e.CreditSum.String(); got != "150.00" {
		t.Errorf("CreditSum = %s, want 150.00", got)
	}
	if !e.DebitSum.IsZero() {
		t.Errorf("DebitSum = %s, want 0.00", e.DebitSum)
	}
}

func TestAccumulateDebit(t *testing.T) {
	e := NewEntry(1)
	e.Accumulate(mps7.Debit, currency.FromFloat(100))
	e.Accumulate(mps7.Debit, currency.FromFloat(50))
	if got := e.DebitSum.String(); got != "150.00" {
		t.Errorf("DebitSum = %s, want 150.00", got)
	}
}

func TestAccumulateIgnoresAutopay(t *testing.T) {
	e := NewEntry(1)
	e.Accumulate(mps7.StartAutopay, currency.FromFloat(10))
	e.Accumulate(mps7.EndAutopay, currency.FromFloat(10))
	if !e.CreditSum.IsZero() || !e.DebitSum.IsZero() {
		t.Errorf("got %s / %s, want zero sums", e.CreditSum, e.DebitSum)
	}
}

func TestBalance(t *testing.T) {
	e := NewEntry(1)
	if got := e.Balance().String(); got != "0.00" {
		t.Errorf("Balance() = %s, want 0.00", got)
	}
	steps := []struct {
		kind   mps7.Kind
		amount float64
		want   string
	}{
		{mps7.Credit, 100, "100.00"},
		{mps7.Debit, 50, "50.00"},
		{mps7.Debit, 75.257, "-25.26"},
		{mps7.Credit, 0.01, "-25.25"},
	}
	for _, s := range steps {
		e.Accumulate(s.kind, currency.FromFloat(s.amount))
		if got := e.Balance(); got.String() != s.want {
			t.Errorf("after %v %v: Balance() = %s, want %s", s.kind, s.amount, got, s.want)
		}
		if want := e.CreditSum.Sub(e.DebitSum); !e.Balance().Equal(want) {
			t.Errorf("Balance() = %s, want %s", e.Balance(), want)
		}
	}
}

func TestLedger(t *testing.T) {
	l := New()
	l.Upsert(3).Accumulate(mps7.Credit, currency.FromFloat(5))
	l.Upsert(1).Accumulate(mps7.Debit, currency.FromFloat(7))
	l.Upsert(2).Accumulate(mps7.Credit, currency.FromFloat(1))
	l.Upsert(3).Accumulate(mps7.Credit, currency.FromFloat(5))

	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
	e, ok := l.Lookup(3)
	if !ok || e.CreditSum.String() != "10.00" {
		t.Errorf("Lookup(3) = %v, %t, want credit sum 10.00", e, ok)
	}
	if _, ok := l.Lookup(4); ok {
		t.Errorf("Lookup(4) found an entry")
	}

	if diff := cmp.Diff(ids(l.Entries()), []uint64{1, 2, 3}); diff != "" {
		t.Errorf("Entries() (+got/-want):\n%s", diff)
	}
	if diff := cmp.Diff(ids(l.SortedEntries(ByBalance)), []uint64{1, 2, 3}); diff != "" {
		t.Errorf("SortedEntries(ByBalance) (+got/-want):\n%s", diff)
	}
}

func TestNilLedger(t *testing.T) {
	var l *Ledger
	if _, ok := l.Lookup(1); ok {
		t.Errorf("Lookup on nil ledger found an entry")
	}
	if l.Len() != 0 || len(l.Entries()) != 0 {
		t.Errorf("nil ledger is not empty")
	}
}

func ids(es []*Entry) []uint64 {
	var res []uint64
	for _, e := range es {
		res = append(res, e.UserID)
	}
	return res
}
