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

// Package block implements 'dctl block' and its subcommands.
package block

import (
	"github.com/spf13/cobra"

	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/shared"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/dragonchain"
)

// NewCommand creates the block command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Inspect and query blocks",
	}
	cmd.AddCommand(newGetCommand())
	cmd.AddCommand(newQueryCommand())
	return cmd
}

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get BLOCK_ID",
		Short: "Fetch a block by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.GetBlock(cmd.Context(), args[0])
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}
}

func newQueryCommand() *cobra.Command {
	var (
		query      string
		offset     int
		limit      int
		sortBy     string
		descending bool
		idsOnly    bool
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Search blocks with a redisearch query",
		Long: `Search blocks. The query uses redisearch syntax, for example '*' for
everything or '@block_id:[61000 62000]' for a block range.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.QueryBlocks(cmd.Context(), dragonchain.BlockQuery{
				Query:          query,
				Offset:         offset,
				Limit:          limit,
				SortBy:         sortBy,
				SortDescending: descending,
				IDsOnly:        idsOnly,
			})
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}

	cmd.Flags().StringVar(&query, "query", "*", "Redisearch query string")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of results to skip")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum results to return (default 10)")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "Indexed field to sort on")
	cmd.Flags().BoolVar(&descending, "descending", false, "Sort in descending order")
	cmd.Flags().BoolVar(&idsOnly, "ids-only", false, "Return block ids instead of full objects")

	return cmd
}
