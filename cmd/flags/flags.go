// Copyright 2021 Silvio Böhler
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

package flags

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sboehler/txnlog/lib/config"
)

// UserFlag manages a flag to select a user id.
type UserFlag struct {
	id  uint64
	set bool
}

var _ pflag.Value = (*UserFlag)(nil)

func (uf UserFlag) String() string {
	if !uf.set {
		return ""
	}
	return strconv.FormatUint(uf.id, 10)
}

// Set implements pflag.Value.
func (uf *UserFlag) Set(v string) error {
	id, err := ParseUser(v)
	if err != nil {
		return err
	}
	uf.id, uf.set = id, true
	return nil
}

// Type implements pflag.Value.
func (uf UserFlag) Type() string {
	return "<user id>"
}

// Value returns the user id and whether the flag has been set.
func (uf UserFlag) Value() (uint64, bool) {
	return uf.id, uf.set
}

// ParseUser parses a user id.
func ParseUser(v string) (uint64, error) {
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id %q: must be an unsigned 64-bit integer", v)
	}
	return id, nil
}

// ParseUsers parses a list of user ids.
func ParseUsers(vs []string) ([]uint64, error) {
	var res []uint64
	for _, v := range vs {
		id, err := ParseUser(v)
		if err != nil {
			return nil, err
		}
		res = append(res, id)
	}
	return res, nil
}

// LocationFlag manages a flag to select a time zone.
type LocationFlag struct {
	loc *time.Location
}

var _ pflag.Value = (*LocationFlag)(nil)

func (lf LocationFlag) String() string {
	if lf.loc == nil {
		return ""
	}
	return lf.loc.String()
}

// Set implements pflag.Value.
func (lf *LocationFlag) Set(v string) error {
	loc, err := time.LoadLocation(v)
	if err != nil {
		return err
	}
	lf.loc = loc
	return nil
}

// Type implements pflag.Value.
func (lf LocationFlag) Type() string {
	return "<zone>"
}

// ValueOr returns the location, or def if the flag has not been set.
func (lf LocationFlag) ValueOr(def *time.Location) *time.Location {
	if lf.loc == nil {
		return def
	}
	return lf.loc
}

// ChoiceFlag manages a flag which takes one of a fixed set of values.
type ChoiceFlag struct {
	choices []string
	val     string
}

var _ pflag.Value = (*ChoiceFlag)(nil)

// NewChoiceFlag creates a flag with the given choices. The first choice is
// the default.
func NewChoiceFlag(choices ...string) ChoiceFlag {
	return ChoiceFlag{choices: choices, val: choices[0]}
}

func (cf ChoiceFlag) String() string {
	return cf.val
}

// Set implements pflag.Value.
func (cf *ChoiceFlag) Set(v string) error {
	for _, c := range cf.choices {
		if c == v {
			cf.val = v
			return nil
		}
	}
	return fmt.Errorf("invalid value %q, expected one of %s", v, strings.Join(cf.choices, ", "))
}

// Type implements pflag.Value.
func (cf ChoiceFlag) Type() string {
	return strings.Join(cf.choices, "|")
}

// Value returns the selected choice.
func (cf ChoiceFlag) Value() string {
	return cf.val
}

// ConfigFlag is the name of the persistent flag holding the config path.
const ConfigFlag = "config"

// SetupConfig adds the config flag to the given command.
func SetupConfig(cmd *cobra.Command) {
	cmd.PersistentFlags().String(ConfigFlag, "", "configuration file in yaml format")
}

// Config loads the configuration file given on the command line. Without a
// config flag, the default configuration is returned.
func Config(cmd *cobra.Command) (config.Config, error) {
	f := cmd.Flag(ConfigFlag)
	if f == nil || f.Value.String() == "" {
		return config.Default(), nil
	}
	return config.Load(f.Value.String())
}
