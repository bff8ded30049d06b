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
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/shared"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/dragonchain"
)

func newBitcoinCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bitcoin",
		Short: "Manage bitcoin interchain networks",
	}
	cmd.AddCommand(newBitcoinCreateCommand())
	cmd.AddCommand(newBitcoinUpdateCommand())
	cmd.AddCommand(newBitcoinSignCommand())
	return cmd
}

// bitcoinConfigFlags binds the flags shared by bitcoin create and update.
// Pointer fields only fill in when their flag was given, so updates leave
// unmentioned settings alone.
func bitcoinConfigFlags(cmd *cobra.Command, testnet, utxoScan *bool, privateKey, rpcAddress, rpcAuth *string) {
	cmd.Flags().BoolVar(testnet, "testnet", false, "Use testnet3 instead of mainnet")
	cmd.Flags().StringVar(privateKey, "private-key", "", "Base64 or WIF encoded private key (generated when omitted)")
	cmd.Flags().StringVar(rpcAddress, "rpc-address", "", "Bitcoin core RPC node address")
	cmd.Flags().StringVar(rpcAuth, "rpc-authorization", "", "Base64 user:pass for the RPC node")
	cmd.Flags().BoolVar(utxoScan, "utxo-scan", false, "Rescan the wallet's UTXOs")
}

func bitcoinConfigFromFlags(cmd *cobra.Command, testnet, utxoScan bool, privateKey, rpcAddress, rpcAuth string) dragonchain.BitcoinInterchainConfig {
	cfg := dragonchain.BitcoinInterchainConfig{
		PrivateKey:       privateKey,
		RPCAddress:       rpcAddress,
		RPCAuthorization: rpcAuth,
	}
	if cmd.Flags().Changed("testnet") {
		cfg.Testnet = dragonchain.Bool(testnet)
	}
	if cmd.Flags().Changed("utxo-scan") {
		cfg.UTXOScan = dragonchain.Bool(utxoScan)
	}
	return cfg
}

func newBitcoinCreateCommand() *cobra.Command {
	var (
		testnet    bool
		utxoScan   bool
		privateKey string
		rpcAddress string
		rpcAuth    string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Register a bitcoin network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			cfg := bitcoinConfigFromFlags(cmd, testnet, utxoScan, privateKey, rpcAddress, rpcAuth)
			result, err := client.CreateBitcoinInterchain(cmd.Context(), args[0], cfg)
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}

	bitcoinConfigFlags(cmd, &testnet, &utxoScan, &privateKey, &rpcAddress, &rpcAuth)

	return cmd
}

func newBitcoinUpdateCommand() *cobra.Command {
	var (
		testnet    bool
		utxoScan   bool
		privateKey string
		rpcAddress string
		rpcAuth    string
	)

	cmd := &cobra.Command{
		Use:   "update NAME",
		Short: "Update a bitcoin network",
		Long:  `Update a bitcoin network. Only the settings given as flags change.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			cfg := bitcoinConfigFromFlags(cmd, testnet, utxoScan, privateKey, rpcAddress, rpcAuth)
			result, err := client.UpdateBitcoinInterchain(cmd.Context(), args[0], cfg)
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}

	bitcoinConfigFlags(cmd, &testnet, &utxoScan, &privateKey, &rpcAddress, &rpcAuth)

	return cmd
}

func newBitcoinSignCommand() *cobra.Command {
	var (
		outputs         []string
		satoshisPerByte int
		data            string
		change          string
	)

	cmd := &cobra.Command{
		Use:   "sign NAME",
		Short: "Sign a bitcoin transaction with a network's key",
		Long: `Sign a bitcoin transaction with the named network's private key. The
signed transaction is returned, not broadcast. Each --output takes
ADDRESS:BTC, for example --output 1BvBMSE...:0.027`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseBitcoinOutputs(outputs)
			if err != nil {
				return err
			}

			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.SignBitcoinTransaction(cmd.Context(), args[0], dragonchain.BitcoinTransaction{
				Outputs:         parsed,
				SatoshisPerByte: satoshisPerByte,
				Data:            data,
				ChangeAddress:   change,
			})
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}

	cmd.Flags().StringArrayVar(&outputs, "output", nil, "Recipient as ADDRESS:BTC (repeatable)")
	cmd.Flags().IntVar(&satoshisPerByte, "satoshis-per-byte", 0, "Fee rate (estimated when omitted)")
	cmd.Flags().StringVar(&data, "data", "", "String to embed as a null-data output")
	cmd.Flags().StringVar(&change, "change", "", "Change address (default the sending address)")

	return cmd
}

func parseBitcoinOutputs(specs []string) ([]dragonchain.BitcoinTransactionOutput, error) {
	outputs := make([]dragonchain.BitcoinTransactionOutput, 0, len(specs))
	for _, spec := range specs {
		addr, amount, found := strings.Cut(spec, ":")
		if !found || addr == "" {
			return nil, shared.NewUsageError(fmt.Sprintf("invalid output %q, want ADDRESS:BTC", spec), nil)
		}
		value, err := strconv.ParseFloat(amount, 64)
		if err != nil {
			return nil, shared.NewUsageError(fmt.Sprintf("invalid amount in output %q", spec), err)
		}
		outputs = append(outputs, dragonchain.BitcoinTransactionOutput{To: addr, Value: value})
	}
	return outputs, nil
}
