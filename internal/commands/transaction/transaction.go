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

// Package transaction implements 'dctl transaction' and its subcommands.
package transaction

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/shared"
	"github.com/dragonchain/dragonchain-sdk-go/internal/history"
	"github.com/dragonchain/dragonchain-sdk-go/internal/log"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/dragonchain"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/transport"
)

// NewCommand creates the transaction command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"txn"},
		Short:   "Post and query transactions",
	}
	cmd.AddCommand(newCreateCommand())
	cmd.AddCommand(newBulkCommand())
	cmd.AddCommand(newGetCommand())
	cmd.AddCommand(newQueryCommand())
	cmd.AddCommand(newHistoryCommand())
	return cmd
}

func newCreateCommand() *cobra.Command {
	var (
		txnType     string
		payload     string
		payloadFile string
		tag         string
		callback    string
		noHistory   bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Post a new transaction",
		Long: `Post a new transaction to the chain. The payload is sent as parsed JSON
when it parses as JSON, otherwise as a plain string.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if payload != "" && payloadFile != "" {
				return shared.NewUsageError("--payload and --payload-file are mutually exclusive", nil)
			}
			if payloadFile != "" {
				data, err := os.ReadFile(payloadFile)
				if err != nil {
					return shared.NewUsageError("failed to read payload file", err)
				}
				payload = string(data)
			}

			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.CreateTransaction(cmd.Context(), dragonchain.CreateTransactionRequest{
				TransactionType: txnType,
				Payload:         parsePayload(payload),
				Tag:             tag,
				CallbackURL:     callback,
			})
			if err != nil {
				return shared.FromError(err)
			}
			if result.OK && !noHistory {
				recordSubmission(cmd, client.DragonchainID(), txnType, tag, result)
			}
			return shared.EmitResult(cmd, result)
		},
	}

	cmd.Flags().StringVarP(&txnType, "type", "t", "", "Transaction type to post under (required)")
	cmd.Flags().StringVarP(&payload, "payload", "p", "", "Transaction payload")
	cmd.Flags().StringVar(&payloadFile, "payload-file", "", "Read the payload from a file")
	cmd.Flags().StringVar(&tag, "tag", "", "Searchable tag string")
	cmd.Flags().StringVar(&callback, "callback", "", "URL the chain calls once the transaction reaches a block")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Skip recording this submission in the local history log")
	cmd.MarkFlagRequired("type")

	return cmd
}

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TRANSACTION_ID",
		Short: "Fetch a transaction by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.GetTransaction(cmd.Context(), args[0])
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}
}

// parsePayload sends valid JSON as its parsed value so objects keep their
// structure on the chain, and anything else as a plain string.
func parsePayload(payload string) any {
	var parsed any
	if err := json.Unmarshal([]byte(payload), &parsed); err == nil {
		return parsed
	}
	return payload
}

// recordSubmission appends to the local history log. Failures only warn;
// the transaction is already on the chain.
func recordSubmission(cmd *cobra.Command, chainID, txnType, tag string, result *transport.Result) {
	path, err := historyPath()
	if err != nil {
		shared.Logger().Warn("skipping history record", log.Error(err))
		return
	}
	store, err := history.Open(path)
	if err != nil {
		shared.Logger().Warn("skipping history record", log.Error(err))
		return
	}
	defer store.Close()

	entry := history.Entry{
		DragonchainID:   chainID,
		TransactionType: txnType,
		Tag:             tag,
	}
	if body, ok := result.Response.(map[string]any); ok {
		if id, ok := body["transaction_id"].(string); ok {
			entry.TransactionID = id
		}
	}
	if err := store.Append(cmd.Context(), entry); err != nil {
		shared.Logger().Warn("failed to record history entry", log.Error(err))
	}
}

// historyPath resolves the history database location, honoring the
// DRAGONCHAIN_HISTORY_PATH override.
func historyPath() (string, error) {
	if path := os.Getenv("DRAGONCHAIN_HISTORY_PATH"); path != "" {
		return path, nil
	}
	return history.DefaultPath()
}
