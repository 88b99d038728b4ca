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

// Package mps7test builds MPS7 buffers for tests.
package mps7test

import (
	"encoding/binary"
	"math"

	"github.com/sboehler/txnlog/lib/mps7"
)

// Builder builds an MPS7 buffer.
type Builder struct {
	version  byte
	length   uint32
	explicit bool
	count    uint32
	records  []byte
}

// New creates a builder for a version 1 buffer.
func New() *Builder {
	return &Builder{version: 1}
}

// Version sets the version byte.
func (b *Builder) Version(v byte) *Builder {
	b.version = v
	return b
}

// Length sets the declared length. By default, the declared length is the
// number of records added.
func (b *Builder) Length(n uint32) *Builder {
	b.length, b.explicit = n, true
	return b
}

// Debit adds a debit record.
func (b *Builder) Debit(ts uint32, user uint64, amount float64) *Builder {
	return b.record(mps7.Debit, ts, user, amount)
}

// Credit adds a credit record.
func (b *Builder) Credit(ts uint32, user uint64, amount float64) *Builder {
	return b.record(mps7.Credit, ts, user, amount)
}

// StartAutopay adds a start autopay record.
func (b *Builder) StartAutopay(ts uint32, user uint64) *Builder {
	return b.record(mps7.StartAutopay, ts, user, 0)
}

// EndAutopay adds an end autopay record.
func (b *Builder) EndAutopay(ts uint32, user uint64) *Builder {
	return b.record(mps7.EndAutopay, ts, user, 0)
}

// Raw appends raw bytes after the records added so far.
func (b *Builder) Raw(bs ...byte) *Builder {
	b.records = append(b.records, bs...)
	return b
}

func (b *Builder) record(k mps7.Kind, ts uint32, user uint64, amount float64) *Builder {
	var buf [mps7.AmountFrameSize]byte
	buf[0] = byte(k)
	binary.BigEndian.PutUint32(buf[1:5], ts)
	binary.BigEndian.PutUint64(buf[5:mps7.MinFrameSize], user)
	size := mps7.FrameSize(k)
	if k.HasAmount() {
		binary.BigEndian.PutUint64(buf[mps7.MinFrameSize:], math.Float64bits(amount))
	}
	b.records = append(b.records, buf[:size]...)
	b.count++
	return b
}

// Bytes returns the buffer.
func (b *Builder) Bytes() []byte {
	length := b.count
	if b.explicit {
		length = b.length
	}
	res := make([]byte, mps7.HeaderSize, mps7.HeaderSize+len(b.records))
	copy(res, mps7.Magic[:])
	res[4] = b.version
	binary.BigEndian.PutUint32(res[5:mps7.HeaderSize], length)
	return append(res, b.records...)
}
