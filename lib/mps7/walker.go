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

// Walker walks the records of an MPS7 buffer. The frame length of each
// record depends on its kind, so framing and decoding are interleaved.
//
// Usage follows bufio.Scanner:
//
//	w := mps7.NewWalker(buf)
//	for w.Next() {
//		e := w.Event()
//	}
//	if err := w.Err(); err != nil {
//	}
type Walker struct {
	buf []byte
	// pos is the offset of the next frame.
	pos   int
	count int
	event Event
	err   error
}

// NewWalker creates a walker positioned at the first record. It does not
// check the header.
func NewWalker(buf []byte) *Walker {
	return NewWalkerAt(buf, HeaderSize)
}

// NewWalkerAt creates a walker positioned at the given offset.
func NewWalkerAt(buf []byte, offset int) *Walker {
	return &Walker{buf: buf, pos: offset}
}

// Next decodes the next record. It returns false at the end of the buffer or
// after an error. Fewer than MinFrameSize remaining bytes mark the normal
// end of the stream.
func (w *Walker) Next() bool {
	if w.err != nil || len(w.buf)-w.pos < MinFrameSize {
		return false
	}
	e, err := Decode(w.buf[w.pos:], w.pos)
	if err != nil {
		w.err = err
		return false
	}
	w.event = e
	w.pos += FrameSize(e.Kind)
	w.count++
	return true
}

// Event returns the most recently decoded event.
func (w *Walker) Event() Event {
	return w.event
}

// Err returns the error which stopped the walk, if any.
func (w *Walker) Err() error {
	return w.err
}

// Offset returns the offset of the next frame.
func (w *Walker) Offset() int {
	return w.pos
}

// Count returns the number of records decoded so far.
func (w *Walker) Count() int {
	return w.count
}

// Remaining returns the number of bytes after the last decoded frame.
func (w *Walker) Remaining() int {
	if w.pos > len(w.buf) {
		return 0
	}
	return len(w.buf) - w.pos
}
