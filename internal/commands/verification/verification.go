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

// Package verification implements 'dctl verification' and its subcommands.
package verification

import (
	"github.com/spf13/cobra"

	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/shared"
)

// NewCommand creates the verification command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verification",
		Short: "Inspect interchain verifications",
	}
	cmd.AddCommand(newGetCommand())
	cmd.AddCommand(newPendingCommand())
	return cmd
}

func newGetCommand() *cobra.Command {
	var level int

	cmd := &cobra.Command{
		Use:   "get BLOCK_ID",
		Short: "Fetch verifications for a block",
		Long: `Fetch the interchain verifications recorded for a block. With --level
only that verification level (2 through 5) is returned.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.GetVerifications(cmd.Context(), args[0], level)
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}

	cmd.Flags().IntVar(&level, "level", 0, "Verification level 2 through 5 (0 for all levels)")

	return cmd
}

func newPendingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pending BLOCK_ID",
		Short: "List chains still expected to verify a block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.GetPendingVerifications(cmd.Context(), args[0])
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}
}
