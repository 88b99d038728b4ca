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
	"golang.org/x/exp/maps"

	"github.com/sboehler/txnlog/lib/common/compare"
)

// Ledger is a collection of entries keyed by user id.
type Ledger struct {
	entries map[uint64]*Entry
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{entries: make(map[uint64]*Entry)}
}

// Upsert returns the entry for the given user, creating it if necessary.
func (l *Ledger) Upsert(id uint64) *Entry {
	e, ok := l.entries[id]
	if !ok {
		e = NewEntry(id)
		l.entries[id] = e
	}
	return e
}

// Lookup returns the entry for the given user.
func (l *Ledger) Lookup(id uint64) (*Entry, bool) {
	if l == nil {
		return nil, false
	}
	e, ok := l.entries[id]
	return e, ok
}

// Len returns the number of users.
func (l *Ledger) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// Entries returns the entries sorted by user id.
func (l *Ledger) Entries() []*Entry {
	return l.SortedEntries(ByUserID)
}

// SortedEntries returns the entries in the given order.
func (l *Ledger) SortedEntries(c compare.Compare[*Entry]) []*Entry {
	if l == nil {
		return nil
	}
	res := maps.Values(l.entries)
	compare.Sort(res, c)
	return res
}

// ByUserID orders entries by ascending user id.
func ByUserID(e1, e2 *Entry) compare.Order {
	return compare.Ordered(e1.UserID, e2.UserID)
}

// ByBalance orders entries by ascending balance, then by user id.
func ByBalance(e1, e2 *Entry) compare.Order {
	if o := compare.Currency(e1.Balance(), e2.Balance()); o != compare.Equal {
		return o
	}
	return ByUserID(e1, e2)
}
