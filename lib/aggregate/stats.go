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

package aggregate

import (
	"fmt"

	"github.com/sboehler/txnlog/lib/currency"
	"github.com/sboehler/txnlog/lib/mps7"
)

// Stats are the aggregate statistics of a parse.
type Stats struct {
	// KindCounts counts StartAutopay and EndAutopay events.
	KindCounts map[mps7.Kind]int
	// AmountTotals sums the amounts of Debit and Credit events.
	AmountTotals map[mps7.Kind]currency.Currency

	DeclaredLength uint32
	ParsedCount    int

	// Overrun is set if more records were parsed than declared.
	Overrun string
}

func newStats(declared uint32) Stats {
	return Stats{
		KindCounts: map[mps7.Kind]int{
			mps7.StartAutopay: 0,
			mps7.EndAutopay:   0,
		},
		AmountTotals: map[mps7.Kind]currency.Currency{
			mps7.Debit:  currency.Zero,
			mps7.Credit: currency.Zero,
		},
		DeclaredLength: declared,
	}
}

// FoldedCount returns the number of records folded into the statistics.
func (s Stats) FoldedCount() int {
	if uint64(s.ParsedCount) > uint64(s.DeclaredLength) {
		return int(s.DeclaredLength)
	}
	return s.ParsedCount
}

// Debits returns the total debit amount.
func (s Stats) Debits() currency.Currency {
	return s.AmountTotals[mps7.Debit]
}

// Credits returns the total credit amount.
func (s Stats) Credits() currency.Currency {
	return s.AmountTotals[mps7.Credit]
}

// AutopaysStarted returns the number of StartAutopay events.
func (s Stats) AutopaysStarted() int {
	return s.KindCounts[mps7.StartAutopay]
}

// AutopaysEnded returns the number of EndAutopay events.
func (s Stats) AutopaysEnded() int {
	return s.KindCounts[mps7.EndAutopay]
}

func overrunMessage(declared uint32, parsed int) string {
	return fmt.Sprintf("Expected length to be %d. Actual length %d. Dropping overrun.", declared, parsed)
}
