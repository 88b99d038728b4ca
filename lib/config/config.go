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

// Package config loads txnlog configuration files.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"
)

// Config is the configuration of the txnlog commands.
type Config struct {
	// Color enables colored output.
	Color bool `yaml:"color"`
	// Location is the time zone used to display timestamps.
	Location string `yaml:"location"`
	// Concurrency is the number of files parsed in parallel.
	Concurrency int `yaml:"concurrency"`
	// Users are reported by the balance command if no users are given.
	Users []string `yaml:"users"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Color:       true,
		Location:    "Local",
		Concurrency: 4,
	}
}

// Load reads the configuration file at path. Missing keys take their
// default values.
func Load(path string) (cfg Config, err error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	return Decode(f)
}

// Decode decodes a configuration in yaml format.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Validate checks the configuration.
func (c Config) Validate() error {
	var err error
	if _, e := time.LoadLocation(c.Location); e != nil {
		err = multierr.Append(err, fmt.Errorf("invalid location %q: %w", c.Location, e))
	}
	if c.Concurrency < 1 {
		err = multierr.Append(err, fmt.Errorf("invalid concurrency %d: must be positive", c.Concurrency))
	}
	for _, u := range c.Users {
		if _, e := strconv.ParseUint(u, 10, 64); e != nil {
			err = multierr.Append(err, fmt.Errorf("invalid user id %q", u))
		}
	}
	return err
}

// UserIDs returns the configured users.
func (c Config) UserIDs() []uint64 {
	var res []uint64
	for _, u := range c.Users {
		id, err := strconv.ParseUint(u, 10, 64)
		if err != nil {
			continue
		}
		res = append(res, id)
	}
	return res
}

// TimeLocation returns the configured location.
func (c Config) TimeLocation() *time.Location {
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return time.Local
	}
	return loc
}
