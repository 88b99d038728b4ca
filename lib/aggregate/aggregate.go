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

// Package aggregate folds MPS7 events into statistics and a user ledger.
package aggregate

import (
	"github.com/sboehler/txnlog/lib/ledger"
	"github.com/sboehler/txnlog/lib/mps7"
)

// State is the state of an aggregator.
type State int

const (
	// Active means that no more records than declared have been seen.
	Active State = iota
	// Overrun means that more records than declared have been seen.
	Overrun
)

func (s State) String() string {
	switch s {
	case Active:
		return "Active"
	case Overrun:
		return "Overrun"
	}
	return "unknown"
}

// Aggregator folds events into statistics. Events beyond the declared
// length are counted but not folded.
type Aggregator struct {
	state  State
	stats  Stats
	ledger *ledger.Ledger
	events []mps7.Event
}

// New creates an aggregator for the given declared length.
func New(declared uint32) *Aggregator {
	return &Aggregator{
		stats:  newStats(declared),
		ledger: ledger.New(),
	}
}

// Add processes an event.
func (a *Aggregator) Add(e mps7.Event) {
	a.stats.ParsedCount++
	if uint64(a.stats.ParsedCount) > uint64(a.stats.DeclaredLength) {
		a.state = Overrun
		return
	}
	u := a.ledger.Upsert(e.UserID)
	switch e.Kind {
	case mps7.StartAutopay, mps7.EndAutopay:
		a.stats.KindCounts[e.Kind]++
	case mps7.Debit, mps7.Credit:
		a.stats.AmountTotals[e.Kind] = a.stats.AmountTotals[e.Kind].Add(e.Amount)
		u.Accumulate(e.Kind, e.Amount)
	}
	a.events = append(a.events, e)
}

// State returns the current state.
func (a *Aggregator) State() State {
	return a.state
}

// Finish completes the aggregation. The overrun diagnostic needs the total
// number of parsed records and is therefore only produced here.
func (a *Aggregator) Finish() *Result {
	stats := a.stats
	if a.state == Overrun {
		stats.Overrun = overrunMessage(stats.DeclaredLength, stats.ParsedCount)
	}
	return &Result{
		Stats:  stats,
		Events: a.events,
		Ledger: a.ledger,
	}
}
