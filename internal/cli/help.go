// Copyright 2020 Dragonchain, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/shared"
)

const docsURL = "https://docs.dragonchain.com"

// commandHelp describes one command for machine consumption.
type commandHelp struct {
	Name        string     `json:"name"`
	Short       string     `json:"short"`
	Long        string     `json:"long,omitempty"`
	Usage       string     `json:"usage"`
	Aliases     []string   `json:"aliases,omitempty"`
	Flags       []flagHelp `json:"flags,omitempty"`
	Subcommands []string   `json:"subcommands,omitempty"`
}

type flagHelp struct {
	Name      string `json:"name"`
	Shorthand string `json:"shorthand,omitempty"`
	Usage     string `json:"usage"`
	Default   string `json:"default,omitempty"`
	Required  bool   `json:"required,omitempty"`
}

// helpDocument is the payload of 'dctl help --json'.
type helpDocument struct {
	Commands    []commandHelp `json:"commands,omitempty"`
	Command     *commandHelp  `json:"command,omitempty"`
	GlobalFlags []flagHelp    `json:"global_flags"`
	DocsURL     string        `json:"docs_url"`
}

// NewHelpCommand replaces Cobra's built-in help with one that can also emit
// machine-readable command metadata, so agents and scripts can discover the
// CLI surface without scraping help text.
func NewHelpCommand(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "help [command]",
		Short: "Help about any command",
		Long: `Help shows usage for dctl or for one of its commands.

With --json the same information comes back as structured metadata
(commands, flags, defaults) instead of formatted text.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if shared.GetJSON() {
					return shared.EmitJSON(cmd.OutOrStdout(), describeRoot(rootCmd))
				}
				return rootCmd.Help()
			}

			target, _, err := rootCmd.Find(args)
			if err != nil {
				return shared.NewUsageError(fmt.Sprintf("unknown command %q", args[0]), err)
			}
			if shared.GetJSON() {
				doc := helpDocument{
					GlobalFlags: describeFlags(rootCmd.PersistentFlags()),
					DocsURL:     docsURL,
				}
				h := describeCommand(target)
				doc.Command = &h
				return shared.EmitJSON(cmd.OutOrStdout(), doc)
			}
			return target.Help()
		},
	}
}

func describeRoot(rootCmd *cobra.Command) helpDocument {
	doc := helpDocument{
		GlobalFlags: describeFlags(rootCmd.PersistentFlags()),
		DocsURL:     docsURL,
	}
	for _, c := range rootCmd.Commands() {
		if !c.IsAvailableCommand() {
			continue
		}
		doc.Commands = append(doc.Commands, describeCommand(c))
	}
	return doc
}

func describeCommand(cmd *cobra.Command) commandHelp {
	h := commandHelp{
		Name:    cmd.Name(),
		Short:   cmd.Short,
		Long:    cmd.Long,
		Usage:   cmd.UseLine(),
		Aliases: cmd.Aliases,
		Flags:   describeFlags(cmd.NonInheritedFlags()),
	}
	for _, sub := range cmd.Commands() {
		if !sub.IsAvailableCommand() {
			continue
		}
		h.Subcommands = append(h.Subcommands, sub.Name())
	}
	return h
}

func describeFlags(fs *pflag.FlagSet) []flagHelp {
	var flags []flagHelp
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		flags = append(flags, flagHelp{
			Name:      f.Name,
			Shorthand: f.Shorthand,
			Usage:     f.Usage,
			Default:   f.DefValue,
			// MarkFlagRequired records itself as a completion annotation.
			Required: len(f.Annotations[cobra.BashCompOneRequiredFlag]) > 0,
		})
	})
	return flags
}
