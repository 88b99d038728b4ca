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
	"fmt"
)

var (
	// ErrBadMagic is returned when a buffer does not start with the MPS7 magic.
	ErrBadMagic = errors.New("data must be MPS7")

	// ErrShortHeader is returned when a buffer is too short to hold a header.
	ErrShortHeader = errors.New("buffer too short for MPS7 header")
)

// InvalidKindError is returned for a discriminant outside of 0-3.
type InvalidKindError struct {
	Offset int
	Value  int8
}

func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("offset %d: invalid record kind %d", e.Offset, e.Value)
}

// NonFiniteAmountError is returned when an amount field decodes to NaN or
// an infinity.
type NonFiniteAmountError struct {
	Offset int
	Value  float64
}

func (e *NonFiniteAmountError) Error() string {
	return fmt.Sprintf("offset %d: non-finite amount %v", e.Offset, e.Value)
}

// TruncatedRecordError is returned when a record's frame extends past the
// end of the buffer.
type TruncatedRecordError struct {
	Offset    int
	Kind      Kind
	Want, Got int
}

func (e *TruncatedRecordError) Error() string {
	return fmt.Sprintf("offset %d: truncated %s record: need %d bytes, have %d", e.Offset, e.Kind, e.Want, e.Got)
}
