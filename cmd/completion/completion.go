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

// Package completion generates shell completion scripts.
package completion

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// CreateCmd creates the completion command for the given root.
func CreateCmd(rootCmd *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "completion [bash|zsh|fish]",
		Short: "output shell completion code [bash|zsh|fish]",
		Long: `To load completions:

Bash:

$ source <(txnlog completion bash)

Zsh:

# If shell completion is not already enabled in your environment you will need
# to enable it. You can execute the following once:

$ echo "autoload -U compinit; compinit" >> ~/.zshrc

# To load completions for each session, execute once:
$ txnlog completion zsh > "${fpath[1]}/_txnlog"

Fish:

$ txnlog completion fish > ~/.config/fish/completions/txnlog.fish
`,

		ValidArgs: []string{"bash", "zsh", "fish"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),

		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(rootCmd, args[0], cmd.OutOrStdout())
		},
	}
	return c
}

func generate(rootCmd *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return rootCmd.GenBashCompletion(w)
	case "zsh":
		if err := rootCmd.GenZshCompletion(w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "\ncompdef _%[1]s %[1]s\n", rootCmd.Name())
		return err
	case "fish":
		return rootCmd.GenFishCompletion(w, true)
	}
	return fmt.Errorf("unknown shell: %s", shell)
}
