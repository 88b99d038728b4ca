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

// Package ledger keeps per-user credit and debit totals.
package ledger

import (
	"github.com/sboehler/txnlog/lib/currency"
	"github.com/sboehler/txnlog/lib/mps7"
)

// Entry holds the running totals of a single user.
type Entry struct {
	UserID    uint64
	CreditSum currency.Currency
	DebitSum  currency.Currency
}

// NewEntry creates an entry with zero sums.
func NewEntry(id uint64) *Entry {
	return &Entry{
		UserID:    id,
		CreditSum: currency.Zero,
		DebitSum:  currency.Zero,
	}
}

// Accumulate adds the amount to the credit or debit sum. Other kinds are
// ignored.
func (e *Entry) Accumulate(kind mps7.Kind, amount currency.Currency) {
	switch kind {
	case mps7.Credit:
		e.CreditSum = e.CreditSum.Add(amount)
	case mps7.Debit:
		e.DebitSum = e.DebitSum.Add(amount)
	}
}

// Balance returns credits minus debits.
func (e *Entry) Balance() currency.Currency {
	return e.CreditSum.Sub(e.DebitSum)
}
