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

package interchain

import (
	"github.com/spf13/cobra"

	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/shared"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/dragonchain"
)

func newEthereumCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ethereum",
		Short: "Manage ethereum interchain networks",
	}
	cmd.AddCommand(newEthereumCreateCommand())
	cmd.AddCommand(newEthereumUpdateCommand())
	cmd.AddCommand(newEthereumSignCommand())
	return cmd
}

func ethereumConfigFlags(cmd *cobra.Command, privateKey, rpcAddress *string, chainID *int) {
	cmd.Flags().StringVar(privateKey, "private-key", "", "Base64 or hex encoded private key (generated when omitted)")
	cmd.Flags().StringVar(rpcAddress, "rpc-address", "", "Ethereum RPC node address")
	cmd.Flags().IntVar(chainID, "chain-id", 0, "Ethereum chain id (derived when omitted)")
}

func ethereumConfigFromFlags(cmd *cobra.Command, privateKey, rpcAddress string, chainID int) dragonchain.EthereumInterchainConfig {
	cfg := dragonchain.EthereumInterchainConfig{
		PrivateKey: privateKey,
		RPCAddress: rpcAddress,
	}
	if cmd.Flags().Changed("chain-id") {
		cfg.ChainID = dragonchain.Int(chainID)
	}
	return cfg
}

func newEthereumCreateCommand() *cobra.Command {
	var (
		privateKey string
		rpcAddress string
		chainID    int
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Register an ethereum network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			cfg := ethereumConfigFromFlags(cmd, privateKey, rpcAddress, chainID)
			result, err := client.CreateEthereumInterchain(cmd.Context(), args[0], cfg)
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}

	ethereumConfigFlags(cmd, &privateKey, &rpcAddress, &chainID)

	return cmd
}

func newEthereumUpdateCommand() *cobra.Command {
	var (
		privateKey string
		rpcAddress string
		chainID    int
	)

	cmd := &cobra.Command{
		Use:   "update NAME",
		Short: "Update an ethereum network",
		Long:  `Update an ethereum network. Only the settings given as flags change.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			cfg := ethereumConfigFromFlags(cmd, privateKey, rpcAddress, chainID)
			result, err := client.UpdateEthereumInterchain(cmd.Context(), args[0], cfg)
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}

	ethereumConfigFlags(cmd, &privateKey, &rpcAddress, &chainID)

	return cmd
}

func newEthereumSignCommand() *cobra.Command {
	var (
		to       string
		value    string
		data     string
		gasPrice string
		gas      string
		nonce    string
	)

	cmd := &cobra.Command{
		Use:   "sign NAME",
		Short: "Sign an ethereum transaction with a network's key",
		Long: `Sign an ethereum transaction with the named network's private key. The
signed transaction is returned, not broadcast. Numeric fields are hex
encoded strings, for example --value 0xde0b6b3a7640000 for one ether.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.SignEthereumTransaction(cmd.Context(), args[0], dragonchain.EthereumTransaction{
				To:       to,
				Value:    value,
				Data:     data,
				GasPrice: gasPrice,
				Gas:      gas,
				Nonce:    nonce,
			})
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Destination address (required)")
	cmd.Flags().StringVar(&value, "value", "", "Amount to send in wei, hex encoded (required)")
	cmd.Flags().StringVar(&data, "data", "", "Transaction input data")
	cmd.Flags().StringVar(&gasPrice, "gas-price", "", "Gas price in wei, hex encoded (estimated when omitted)")
	cmd.Flags().StringVar(&gas, "gas", "", "Gas limit, hex encoded (estimated when omitted)")
	cmd.Flags().StringVar(&nonce, "nonce", "", "Transaction nonce, hex encoded (derived when omitted)")
	cmd.MarkFlagRequired("to")
	cmd.MarkFlagRequired("value")

	return cmd
}
