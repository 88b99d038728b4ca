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

// Package currency implements exact monetary values with two decimal places.
package currency

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Places is the number of decimal places of a currency value.
const Places = 2

// Currency is a monetary value with exactly two decimal places.
type Currency struct {
	value decimal.Decimal
}

// Zero is the zero value.
var Zero = Currency{decimal.New(0, -Places)}

var five = big.NewInt(5)

// FromFloat converts f to a currency value. The exact binary value of f is
// rounded half to even to two decimal places. FromFloat panics if f is NaN
// or infinite.
func FromFloat(f float64) Currency {
	return FromDecimal(exact(f))
}

// FromDecimal rounds d half to even to two decimal places.
func FromDecimal(d decimal.Decimal) Currency {
	return Currency{d.RoundBank(Places)}
}

// exact returns the decimal expansion of f without any rounding. The
// denominator of a finite float is a power of two, so n/2^k == n*5^k/10^k.
func exact(f float64) decimal.Decimal {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		panic("currency: non-finite value")
	}
	k := r.Denom().BitLen() - 1
	n := new(big.Int).Exp(five, big.NewInt(int64(k)), nil)
	n.Mul(n, r.Num())
	return decimal.NewFromBigInt(n, int32(-k))
}

// Decimal returns the underlying decimal.
func (c Currency) Decimal() decimal.Decimal {
	return c.value
}

// Add returns c + d.
func (c Currency) Add(d Currency) Currency {
	return Currency{c.value.Add(d.value)}
}

// Sub returns c - d.
func (c Currency) Sub(d Currency) Currency {
	return Currency{c.value.Sub(d.value)}
}

// Neg returns -c.
func (c Currency) Neg() Currency {
	return Currency{c.value.Neg()}
}

// Equal tests whether both values are equal.
func (c Currency) Equal(d Currency) bool {
	return c.value.Equal(d.value)
}

// IsZero returns true if c is zero.
func (c Currency) IsZero() bool {
	return c.value.IsZero()
}

// Sign returns -1, 0 or 1 depending on the sign of c.
func (c Currency) Sign() int {
	return c.value.Sign()
}

func (c Currency) String() string {
	return c.value.StringFixed(Places)
}
