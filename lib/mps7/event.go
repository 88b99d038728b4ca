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

package mps7

import (
	"errors"
	"math"
	"time"

	"github.com/sboehler/txnlog/lib/currency"
)

// Frame sizes.
const (
	// MinFrameSize is the size of kind, timestamp and user id.
	MinFrameSize = 1 + 4 + 8
	// AmountFrameSize is the size of a frame with an amount field.
	AmountFrameSize = MinFrameSize + 8
)

// FrameSize returns the size of a frame of the given kind.
func FrameSize(k Kind) int {
	if k.HasAmount() {
		return AmountFrameSize
	}
	return MinFrameSize
}

// Event is a decoded record.
type Event struct {
	// Offset is the position of the kind byte in the buffer.
	Offset    int
	Kind      Kind
	Timestamp time.Time
	UserID    uint64
	// Amount is zero for autopay events.
	Amount currency.Currency
}

// HasAmount returns true if the event carries an amount.
func (e Event) HasAmount() bool {
	return e.Kind.HasAmount()
}

// Decode decodes the record at the start of w. The offset is the position of
// w in the surrounding buffer and is used for error messages and the event's
// Offset. Only the bytes of the record's frame are read.
func Decode(w []byte, offset int) (Event, error) {
	if len(w) < MinFrameSize {
		var k Kind
		if len(w) > 0 {
			k = Kind(int8(w[0]))
		}
		return Event{}, &TruncatedRecordError{Offset: offset, Kind: k, Want: MinFrameSize, Got: len(w)}
	}
	kind, err := ParseKind(w[0])
	if err != nil {
		var ike *InvalidKindError
		if errors.As(err, &ike) {
			ike.Offset = offset
		}
		return Event{}, err
	}
	if size := FrameSize(kind); len(w) < size {
		return Event{}, &TruncatedRecordError{Offset: offset, Kind: kind, Want: size, Got: len(w)}
	}
	e := Event{
		Offset:    offset,
		Kind:      kind,
		Timestamp: time.Unix(int64(byteOrder.Uint32(w[1:5])), 0),
		UserID:    byteOrder.Uint64(w[5:MinFrameSize]),
	}
	if kind.HasAmount() {
		f := math.Float64frombits(byteOrder.Uint64(w[MinFrameSize:AmountFrameSize]))
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Event{}, &NonFiniteAmountError{Offset: offset, Value: f}
		}
		e.Amount = currency.FromFloat(f)
	}
	return e, nil
}
