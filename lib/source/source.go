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

// Package source reads MPS7 logs from files.
package source

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"

	"github.com/sboehler/txnlog/lib/aggregate"
)

// ReadFile reads the whole file at path.
func ReadFile(path string) (b []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open file %q: %w", path, err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	return Read(f)
}

// Read reads the whole buffer from r.
func Read(r io.Reader) ([]byte, error) {
	return io.ReadAll(r)
}

// ParseFile reads and parses the file at path. Parse errors are prefixed
// with the path; partial results are passed on.
func ParseFile(path string) (*aggregate.Result, error) {
	b, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	res, err := aggregate.Parse(b)
	if err != nil {
		return res, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}
