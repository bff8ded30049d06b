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

// Package interchain implements 'dctl interchain' for managing wallets on
// other blockchains.
package interchain

import (
	"github.com/spf13/cobra"

	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/shared"
)

// NewCommand creates the interchain command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interchain",
		Short: "Manage interchain networks",
		Long: `Manage wallets the chain holds on other blockchains. Level 5 chains use
these to anchor verifications into public networks.`,
	}
	cmd.AddCommand(newBitcoinCommand())
	cmd.AddCommand(newEthereumCommand())
	cmd.AddCommand(newGetCommand())
	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newDeleteCommand())
	cmd.AddCommand(newDefaultCommand())
	cmd.AddCommand(newAddressesCommand())
	return cmd
}

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get BLOCKCHAIN NAME",
		Short: "Fetch an interchain network",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.GetInterchainNetwork(cmd.Context(), args[0], args[1])
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list BLOCKCHAIN",
		Short: "List the networks registered for a blockchain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.ListInterchainNetworks(cmd.Context(), args[0])
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}
}

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete BLOCKCHAIN NAME",
		Short: "Remove an interchain network",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.DeleteInterchainNetwork(cmd.Context(), args[0], args[1])
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}
}

func newDefaultCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "default",
		Short: "Manage the default interchain network",
		Long: `Manage the network a level 5 chain anchors its verifications to when no
network is named explicitly.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Show the default interchain network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.GetDefaultInterchainNetwork(cmd.Context())
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set BLOCKCHAIN NAME",
		Short: "Set the default interchain network",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.SetDefaultInterchainNetwork(cmd.Context(), args[0], args[1])
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	})

	return cmd
}

func newAddressesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "addresses",
		Short: "List the chain's public blockchain addresses",
		Long: `List the chain's public blockchain addresses. Deprecated on Dragonchain
4.2.0 and later, where 'interchain list' replaces it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.GetPublicBlockchainAddresses(cmd.Context())
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}
}
