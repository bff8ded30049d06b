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
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dragonchain/dragonchain-sdk-go/internal/cli/format"
	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/shared"
	"github.com/dragonchain/dragonchain-sdk-go/internal/history"
)

func newHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List transactions submitted from this machine",
		Long: `List the local log of transactions posted through dctl, newest first.
The --chain flag narrows the list to one chain.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := historyPath()
			if err != nil {
				return shared.NewConfigurationError("failed to locate history database", err)
			}
			store, err := history.Open(path)
			if err != nil {
				return shared.NewConfigurationError("failed to open history database", err)
			}
			defer store.Close()

			entries, err := store.List(cmd.Context(), shared.GetChain(), limit)
			if err != nil {
				return shared.NewRequestError("failed to list history", err)
			}

			if shared.GetJSON() {
				return shared.EmitJSON(cmd.OutOrStdout(), historyJSON(entries))
			}

			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no recorded submissions")
				return nil
			}
			for _, e := range entries {
				id := e.TransactionID
				if id == "" {
					id = "-"
				}
				line := fmt.Sprintf("%s  %-36s  %s", e.SubmittedAt.Local().Format(time.RFC3339), id, e.TransactionType)
				if e.Tag != "" {
					line += "  " + e.Tag
				}
				if format.IsTTY() {
					line += "  " + format.RenderLabel(e.DragonchainID)
				} else {
					line += "  " + e.DragonchainID
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to show (0 for all)")

	return cmd
}

type historyEntryJSON struct {
	ID              string    `json:"id"`
	DragonchainID   string    `json:"dragonchain_id"`
	TransactionType string    `json:"txn_type"`
	TransactionID   string    `json:"transaction_id,omitempty"`
	Tag             string    `json:"tag,omitempty"`
	SubmittedAt     time.Time `json:"submitted_at"`
}

func historyJSON(entries []history.Entry) []historyEntryJSON {
	out := make([]historyEntryJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, historyEntryJSON{
			ID:              e.ID,
			DragonchainID:   e.DragonchainID,
			TransactionType: e.TransactionType,
			TransactionID:   e.TransactionID,
			Tag:             e.Tag,
			SubmittedAt:     e.SubmittedAt,
		})
	}
	return out
}
