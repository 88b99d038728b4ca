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
	"github.com/sboehler/txnlog/lib/ledger"
	"github.com/sboehler/txnlog/lib/mps7"
)

// Result is the result of parsing an MPS7 buffer.
type Result struct {
	Header mps7.Header
	Stats  Stats
	// Events are the folded events in buffer order.
	Events []mps7.Event
	Ledger *ledger.Ledger
	// Incomplete is set if the walk was aborted by a decode error.
	Incomplete bool
}

// Warnings returns the non-fatal diagnostics of the parse.
func (r *Result) Warnings() []string {
	if r.Stats.Overrun == "" {
		return nil
	}
	return []string{r.Stats.Overrun}
}

// Parse decodes and aggregates the given buffer. Format errors are returned
// without a result. On a decode error, the partial result is returned along
// with the error and marked as incomplete.
func Parse(buf []byte) (*Result, error) {
	h, err := mps7.ReadHeader(buf)
	if err != nil {
		return nil, err
	}
	var (
		agg = New(h.Length)
		w   = mps7.NewWalker(buf)
	)
	for w.Next() {
		agg.Add(w.Event())
	}
	res := agg.Finish()
	res.Header = h
	if err := w.Err(); err != nil {
		res.Incomplete = true
		return res, err
	}
	return res, nil
}

// LookupUser returns the ledger entry of the given user.
func LookupUser(l *ledger.Ledger, id uint64) (*ledger.Entry, bool) {
	return l.Lookup(id)
}
