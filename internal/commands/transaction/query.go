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

package transaction

import (
	"github.com/spf13/cobra"

	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/shared"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/dragonchain"
)

func newQueryCommand() *cobra.Command {
	var (
		txnType    string
		query      string
		verbatim   bool
		offset     int
		limit      int
		sortBy     string
		descending bool
		idsOnly    bool
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Search transactions with a redisearch query",
		Long: `Search transactions of one type. The query uses redisearch syntax, for
example '*' for everything or '@tag:{invoice}' for tag matches.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.QueryTransactions(cmd.Context(), dragonchain.TransactionQuery{
				TransactionType: txnType,
				Query:           query,
				Verbatim:        verbatim,
				Offset:          offset,
				Limit:           limit,
				SortBy:          sortBy,
				SortDescending:  descending,
				IDsOnly:         idsOnly,
			})
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}

	cmd.Flags().StringVarP(&txnType, "type", "t", "", "Transaction type to search within (required)")
	cmd.Flags().StringVar(&query, "query", "*", "Redisearch query string")
	cmd.Flags().BoolVar(&verbatim, "verbatim", false, "Disable stemming on the search terms")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of results to skip")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum results to return (default 10)")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "Indexed field to sort on")
	cmd.Flags().BoolVar(&descending, "descending", false, "Sort in descending order")
	cmd.Flags().BoolVar(&idsOnly, "ids-only", false, "Return transaction ids instead of full objects")
	cmd.MarkFlagRequired("type")

	return cmd
}
