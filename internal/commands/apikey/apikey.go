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

// Package apikey implements 'dctl apikey' for chain api key management.
package apikey

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/shared"
)

// NewCommand creates the apikey command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apikey",
		Short: "Manage chain api keys",
	}
	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newGetCommand())
	cmd.AddCommand(newCreateCommand())
	cmd.AddCommand(newUpdateCommand())
	cmd.AddCommand(newDeleteCommand())
	return cmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List api keys",
		Long:  `List the chain's api keys. Key secrets are never returned.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.ListAPIKeys(cmd.Context())
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}
}

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY_ID",
		Short: "Fetch an api key's metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.GetAPIKey(cmd.Context(), args[0])
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}
}

func newCreateCommand() *cobra.Command {
	var nickname string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Generate a new api key pair",
		Long: `Generate a new api key pair. The response is the only time the chain
reveals the key secret, so store it immediately.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.CreateAPIKey(cmd.Context(), nickname)
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}

	cmd.Flags().StringVar(&nickname, "nickname", "", "Human readable name for the key")

	return cmd
}

func newUpdateCommand() *cobra.Command {
	var nickname string

	cmd := &cobra.Command{
		Use:   "update KEY_ID",
		Short: "Rename an api key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.UpdateAPIKey(cmd.Context(), args[0], nickname)
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}

	cmd.Flags().StringVar(&nickname, "nickname", "", "New name for the key (required)")
	cmd.MarkFlagRequired("nickname")

	return cmd
}

func newDeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete KEY_ID",
		Short: "Revoke an api key",
		Long: `Revoke an api key. Requests signed with it fail from then on, including
any services still holding the key.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			confirmed, err := shared.Confirm(fmt.Sprintf("Revoke api key %s? This cannot be undone.", args[0]), yes)
			if err != nil {
				return err
			}
			if !confirmed {
				return shared.NewUsageError("aborted", nil)
			}

			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.DeleteAPIKey(cmd.Context(), args[0])
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
