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

// Package txtype implements 'dctl txtype' for transaction type management.
package txtype

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/shared"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/dragonchain"
)

// NewCommand creates the txtype command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "txtype",
		Short: "Manage transaction types",
	}
	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newGetCommand())
	cmd.AddCommand(newCreateCommand())
	cmd.AddCommand(newDeleteCommand())
	return cmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered transaction types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.ListTransactionTypes(cmd.Context())
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}
}

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TYPE",
		Short: "Fetch a transaction type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.GetTransactionType(cmd.Context(), args[0])
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}
}

func newCreateCommand() *cobra.Command {
	var indexesFile string

	cmd := &cobra.Command{
		Use:   "create TYPE",
		Short: "Register a transaction type",
		Long: `Register a transaction type. Custom payload indexes may be declared in a
YAML or JSON file passed with --indexes-file:

  - path: "item.price"
    field_name: price
    type: number
    options:
      sortable: true

Indexes are fixed at creation. To change them, delete the type and
register it again.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var indexes []dragonchain.CustomIndexField
			if indexesFile != "" {
				parsed, err := loadIndexes(indexesFile)
				if err != nil {
					return err
				}
				indexes = parsed
			}

			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.CreateTransactionType(cmd.Context(), args[0], indexes)
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}

	cmd.Flags().StringVar(&indexesFile, "indexes-file", "", "YAML or JSON file declaring custom payload indexes")

	return cmd
}

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete TYPE",
		Short: "Remove a transaction type",
		Long: `Remove a transaction type. Transactions already recorded under the type
stay on the ledger.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.DeleteTransactionType(cmd.Context(), args[0])
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}
}

// indexFileEntry mirrors one custom index declaration in an indexes file.
// YAML is a superset of JSON, so one decoder covers both formats.
type indexFileEntry struct {
	Path      string `yaml:"path"`
	FieldName string `yaml:"field_name"`
	Type      string `yaml:"type"`
	Options   *struct {
		NoIndex   *bool    `yaml:"no_index"`
		Separator *string  `yaml:"separator"`
		NoStem    *bool    `yaml:"no_stem"`
		Weight    *float64 `yaml:"weight"`
		Sortable  *bool    `yaml:"sortable"`
	} `yaml:"options"`
}

func loadIndexes(path string) ([]dragonchain.CustomIndexField, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, shared.NewUsageError(fmt.Sprintf("failed to read %s", path), err)
	}
	var entries []indexFileEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, shared.NewUsageError(fmt.Sprintf("invalid indexes file %s", path), err)
	}

	fields := make([]dragonchain.CustomIndexField, 0, len(entries))
	for _, e := range entries {
		field := dragonchain.CustomIndexField{
			Path:      e.Path,
			FieldName: e.FieldName,
			Type:      dragonchain.IndexType(e.Type),
		}
		if e.Options != nil {
			field.Options = &dragonchain.CustomIndexOptions{
				NoIndex:   e.Options.NoIndex,
				Separator: e.Options.Separator,
				NoStem:    e.Options.NoStem,
				Weight:    e.Options.Weight,
				Sortable:  e.Options.Sortable,
			}
		}
		fields = append(fields, field)
	}
	return fields, nil
}
