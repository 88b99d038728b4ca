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

package mps7_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/sboehler/txnlog/lib/currency"
	"github.com/sboehler/txnlog/lib/mps7"
	"github.com/sboehler/txnlog/lib/mps7/mps7test"
)

var currencyComparer = cmp.Comparer(func(a, b currency.Currency) bool { return a.Equal(b) })

func TestParseKind(t *testing.T) {
	tests := []struct {
		input byte
		want  mps7.Kind
		name  string
	}{
		{0, mps7.Debit, "Debit"},
		{1, mps7.Credit, "Credit"},
		{2, mps7.StartAutopay, "StartAutopay"},
		{3, mps7.EndAutopay, "EndAutopay"},
	}
	for _, test := range tests {
		got, err := mps7.ParseKind(test.input)
		if err != nil {
			t.Fatalf("ParseKind(%d) returned unexpected error: %v", test.input, err)
		}
		if got != test.want {
			t.Errorf("ParseKind(%d) = %v, want %v", test.input, got, test.want)
		}
		if got.String() != test.name {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), test.name)
		}
	}
}

func TestParseKindInvalid(t *testing.T) {
	for _, b := range []byte{4, 0xff, 0x7f, 0x80} {
		_, err := mps7.ParseKind(b)
		var ike *mps7.InvalidKindError
		if !errors.As(err, &ike) {
			t.Fatalf("ParseKind(%#x) = %v, want InvalidKindError", b, err)
		}
		if ike.Value != int8(b) || ike.Offset != 0 {
			t.Errorf("got %+v, want offset 0, value %d", ike, int8(b))
		}
	}
}

func TestFrameSize(t *testing.T) {
	tests := []struct {
		kind mps7.Kind
		want int
	}{
		{mps7.Debit, 21},
		{mps7.Credit, 21},
		{mps7.StartAutopay, 13},
		{mps7.EndAutopay, 13},
	}
	for _, test := range tests {
		if got := mps7.FrameSize(test.kind); got != test.want {
			t.Errorf("FrameSize(%v) = %d, want %d", test.kind, got, test.want)
		}
	}
}

func TestCheckMagic(t *testing.T) {
	tests := []struct {
		input []byte
		want  error
	}{
		{[]byte("MPS7"), nil},
		{[]byte("MPS7 followed by anything"), nil},
		{[]byte("MPS6"), mps7.ErrBadMagic},
		{[]byte("nope"), mps7.ErrBadMagic},
		{[]byte("mps7"), mps7.ErrBadMagic},
		{[]byte("MPS"), mps7.ErrBadMagic},
		{nil, mps7.ErrBadMagic},
	}
	for _, test := range tests {
		if got := mps7.CheckMagic(test.input); !errors.Is(got, test.want) {
			t.Errorf("CheckMagic(%q) = %v, want %v", test.input, got, test.want)
		}
	}
}

func TestReadHeader(t *testing.T) {
	buf := mps7test.New().Version(1).Length(25).Bytes()

	got, err := mps7.ReadHeader(buf)

	if err != nil {
		t.Fatalf("ReadHeader() returned unexpected error: %v", err)
	}
	want := mps7.Header{Magic: mps7.Magic, Version: 1, Length: 25}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Fatalf("unexpected diff (+got/-want):\n%s", diff)
	}
}

func TestReadHeaderErrors(t *testing.T) {
	if _, err := mps7.ReadHeader([]byte("MPS7\x01\x00")); !errors.Is(err, mps7.ErrShortHeader) {
		t.Errorf("ReadHeader(short) = %v, want %v", err, mps7.ErrShortHeader)
	}
	if _, err := mps7.ReadHeader([]byte("NOPE\x01\x00\x00\x00\x01")); !errors.Is(err, mps7.ErrBadMagic) {
		t.Errorf("ReadHeader(bad magic) = %v, want %v", err, mps7.ErrBadMagic)
	}
}

func TestDecode(t *testing.T) {
	buf := mps7test.New().
		Debit(1512540000, 2456938384156277127, 42.4).
		StartAutopay(1393108945, 4136353673894269217).
		Bytes()

	tests := []struct {
		offset int
		want   mps7.Event
	}{
		{
			offset: 9,
			want: mps7.Event{
				Offset:    9,
				Kind:      mps7.Debit,
				Timestamp: time.Unix(1512540000, 0),
				UserID:    2456938384156277127,
				Amount:    currency.FromFloat(42.4),
			},
		},
		{
			offset: 30,
			want: mps7.Event{
				Offset:    30,
				Kind:      mps7.StartAutopay,
				Timestamp: time.Unix(1393108945, 0),
				UserID:    4136353673894269217,
			},
		},
	}
	for _, test := range tests {
		got, err := mps7.Decode(buf[test.offset:], test.offset)
		if err != nil {
			t.Fatalf("Decode() returned unexpected error: %v", err)
		}
		if diff := cmp.Diff(got, test.want, currencyComparer); diff != "" {
			t.Fatalf("unexpected diff (+got/-want):\n%s", diff)
		}
	}
}

func TestDecodeAmountIsRounded(t *testing.T) {
	buf := mps7test.New().Credit(0, 1, 384.61670768).Bytes()

	got, err := mps7.Decode(buf[mps7.HeaderSize:], mps7.HeaderSize)

	if err != nil {
		t.Fatalf("Decode() returned unexpected error: %v", err)
	}
	if got.Amount.String() != "384.62" {
		t.Errorf("Amount = %s, want 384.62", got.Amount)
	}
}

func TestDecodeAutopayIgnoresTrailingBytes(t *testing.T) {
	buf := mps7test.New().EndAutopay(7, 8).Bytes()

	got, err := mps7.Decode(buf[mps7.HeaderSize:], mps7.HeaderSize)

	if err != nil {
		t.Fatalf("Decode() returned unexpected error: %v", err)
	}
	if got.HasAmount() || !got.Amount.IsZero() {
		t.Errorf("autopay event has amount %s", got.Amount)
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Run("invalid kind", func(t *testing.T) {
		for _, k := range []byte{4, 0xff} {
			buf := append([]byte{k}, make([]byte, 20)...)
			_, err := mps7.Decode(buf, 42)
			var ike *mps7.InvalidKindError
			if !errors.As(err, &ike) {
				t.Fatalf("Decode() = %v, want InvalidKindError", err)
			}
			if ike.Offset != 42 || ike.Value != int8(k) {
				t.Errorf("got %+v, want offset 42, value %d", ike, int8(k))
			}
		}
	})
	t.Run("non-finite amount", func(t *testing.T) {
		for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			buf := mps7test.New().Debit(0, 1, f).Bytes()
			_, err := mps7.Decode(buf[mps7.HeaderSize:], mps7.HeaderSize)
			var nfe *mps7.NonFiniteAmountError
			if !errors.As(err, &nfe) {
				t.Errorf("Decode(%v) = %v, want NonFiniteAmountError", f, err)
			}
		}
	})
	t.Run("truncated", func(t *testing.T) {
		buf := mps7test.New().Credit(0, 1, 1).Bytes()
		_, err := mps7.Decode(buf[mps7.HeaderSize:len(buf)-1], mps7.HeaderSize)
		var tre *mps7.TruncatedRecordError
		if !errors.As(err, &tre) {
			t.Fatalf("Decode() = %v, want TruncatedRecordError", err)
		}
		if tre.Want != 21 || tre.Got != 20 || tre.Kind != mps7.Credit {
			t.Errorf("got %+v", tre)
		}
	})
}
