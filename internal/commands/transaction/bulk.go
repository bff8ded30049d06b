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
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/shared"
	"github.com/dragonchain/dragonchain-sdk-go/internal/history"
	"github.com/dragonchain/dragonchain-sdk-go/internal/log"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/dragonchain"
)

// bulkEntry is one element of the bulk submission file, named like the wire
// format.
type bulkEntry struct {
	TransactionType string `json:"txn_type"`
	Payload         any    `json:"payload"`
	Tag             string `json:"tag,omitempty"`
}

func newBulkCommand() *cobra.Command {
	var (
		file      string
		noHistory bool
	)

	cmd := &cobra.Command{
		Use:   "bulk",
		Short: "Post many transactions in one request",
		Long: `Post a JSON array of transactions in a single request. Each element is
an object with "txn_type", "payload" and an optional "tag".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return shared.NewUsageError("failed to read bulk file", err)
			}
			var entries []bulkEntry
			if err := json.Unmarshal(data, &entries); err != nil {
				return shared.NewUsageError("bulk file must be a JSON array of transactions", err)
			}

			transactions := make([]dragonchain.BulkTransaction, 0, len(entries))
			for _, e := range entries {
				transactions = append(transactions, dragonchain.BulkTransaction{
					TransactionType: e.TransactionType,
					Payload:         e.Payload,
					Tag:             e.Tag,
				})
			}

			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.CreateBulkTransaction(cmd.Context(), transactions)
			if err != nil {
				return shared.FromError(err)
			}
			if result.OK && !noHistory {
				recordBulkSubmissions(cmd, client.DragonchainID(), entries)
			}
			return shared.EmitResult(cmd, result)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with the transactions to post (required)")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Skip recording these submissions in the local history log")
	cmd.MarkFlagRequired("file")

	return cmd
}

// recordBulkSubmissions logs each bulk entry. The chain does not report
// which assigned id belongs to which entry, so ids stay empty here.
func recordBulkSubmissions(cmd *cobra.Command, chainID string, entries []bulkEntry) {
	path, err := historyPath()
	if err != nil {
		shared.Logger().Warn("skipping history records", log.Error(err))
		return
	}
	store, err := history.Open(path)
	if err != nil {
		shared.Logger().Warn("skipping history records", log.Error(err))
		return
	}
	defer store.Close()

	for _, e := range entries {
		err := store.Append(cmd.Context(), history.Entry{
			DragonchainID:   chainID,
			TransactionType: e.TransactionType,
			Tag:             e.Tag,
		})
		if err != nil {
			shared.Logger().Warn("failed to record history entry", log.Error(err))
			return
		}
	}
}
