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

import "fmt"

// Kind is the type of a record.
type Kind int8

// Record kinds, in the order of their discriminant values.
const (
	Debit Kind = iota
	Credit
	StartAutopay
	EndAutopay
)

var kindNames = [...]string{
	Debit:        "Debit",
	Credit:       "Credit",
	StartAutopay: "StartAutopay",
	EndAutopay:   "EndAutopay",
}

func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int8(k))
}

// Valid returns true if the kind is one of the four defined kinds.
func (k Kind) Valid() bool {
	return k >= Debit && k <= EndAutopay
}

// HasAmount returns true if records of this kind carry an amount field.
func (k Kind) HasAmount() bool {
	return k == Debit || k == Credit
}

// ParseKind interprets b as a signed discriminant.
func ParseKind(b byte) (Kind, error) {
	switch k := Kind(int8(b)); k {
	case Debit, Credit, StartAutopay, EndAutopay:
		return k, nil
	default:
		return k, &InvalidKindError{Value: int8(b)}
	}
}

// Kinds returns all kinds in discriminant order.
func Kinds() []Kind {
	return []Kind{Debit, Credit, StartAutopay, EndAutopay}
}
