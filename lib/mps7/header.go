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
	"bytes"
	"encoding/binary"
)

// Magic is the tag every MPS7 buffer starts with.
var Magic = [4]byte{'M', 'P', 'S', '7'}

// HeaderSize is the size of the header in bytes. Records start right after it.
const HeaderSize = 9

// byteOrder is the byte order of all multi-byte fields.
var byteOrder binary.ByteOrder = binary.BigEndian

// Header is the MPS7 header.
type Header struct {
	Magic   [4]byte
	Version byte
	// Length is the declared number of records.
	Length uint32
}

// CheckMagic checks that b starts with the MPS7 magic.
func CheckMagic(b []byte) error {
	if len(b) < len(Magic) || !bytes.Equal(b[:len(Magic)], Magic[:]) {
		return ErrBadMagic
	}
	return nil
}

// ReadHeader decodes the header at the start of b. The version is not
// validated.
func ReadHeader(b []byte) (Header, error) {
	if err := CheckMagic(b); err != nil {
		return Header{}, err
	}
	if len(b) < HeaderSize {
		return Header{}, ErrShortHeader
	}
	return Header{
		Magic:   Magic,
		Version: b[4],
		Length:  byteOrder.Uint32(b[5:HeaderSize]),
	}, nil
}
