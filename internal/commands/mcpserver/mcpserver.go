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

// Package mcpserver implements 'dctl mcp', which serves chain operations
// over the Model Context Protocol.
package mcpserver

import (
	"github.com/spf13/cobra"

	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/shared"
	"github.com/dragonchain/dragonchain-sdk-go/internal/mcp"
)

// NewCommand creates the mcp command.
func NewCommand() *cobra.Command {
	var (
		callsPerMinute   int
		submitsPerMinute int
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve chain operations over the Model Context Protocol",
		Long: `Run an MCP server on stdio, exposing the chain to AI assistants as tools
for reading status, blocks, transactions and verifications, and for
submitting transactions. Transaction submission has its own, stricter
rate limit.

Credentials resolve the same way as for every other command. The server
runs until its client closes stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			v, _, _ := shared.GetVersion()
			srv, err := mcp.NewServer(client, mcp.Config{
				Version:          v,
				Logger:           shared.Logger(),
				CallsPerMinute:   callsPerMinute,
				SubmitsPerMinute: submitsPerMinute,
			})
			if err != nil {
				return shared.NewRequestError("failed to start MCP server", err)
			}
			if err := srv.Run(cmd.Context()); err != nil {
				return shared.NewRequestError("MCP server stopped", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&callsPerMinute, "calls-per-minute", 0, "Tool call rate limit (default 100)")
	cmd.Flags().IntVar(&submitsPerMinute, "submits-per-minute", 0, "Transaction submission rate limit (default 10)")

	return cmd
}
